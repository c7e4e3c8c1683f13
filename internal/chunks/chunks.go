// Package chunks maintains the renderable view of the grid: a fixed
// partition into rectangular chunks, each holding one mesh per detail
// level. Meshes are disposable flat buffers resampled from the
// authoritative grid on every change; a thin sync step on the rendering
// side copies them into engine-owned geometry.
package chunks

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/terrain"
)

// Fixed chunk partition. Segment counts must divide evenly.
const (
	ChunksX = 4
	ChunksZ = 4

	segsPerChunkX = terrain.Width / ChunksX
	segsPerChunkZ = terrain.Depth / ChunksZ
)

// Strides are the vertex decimation factors of the detail levels:
// full, half and quarter resolution. Every stride divides the chunk
// segment count, so decimated levels land exactly on shared boundary
// vertices and chunk seams stay crack-free.
var Strides = [...]int{1, 2, 4}

// Level distance thresholds: a chunk farther than distances[i] from the
// camera may drop to level i+1.
var levelDistances = [...]float64{6000, 12000}

// LevelMesh is one detail level of one chunk: positions, colors and
// normals as flat float32 buffers plus a static triangle index buffer.
type LevelMesh struct {
	Stride    int
	VertsX    int
	VertsZ    int
	Positions []float32 // 3 per vertex
	Colors    []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex
	Indices   []uint32
}

// Chunk is one rectangular tile of the terrain with all detail levels.
type Chunk struct {
	CX, CZ int
	Levels []*LevelMesh

	center mgl64.Vec3 // planar center used for level selection
}

// Set holds the full chunk partition.
type Set struct {
	Chunks []*Chunk
}

// NewSet builds the partition with empty vertex buffers and static
// index topology. Call Sync before first use.
func NewSet() *Set {
	s := &Set{}
	for cz := 0; cz < ChunksZ; cz++ {
		for cx := 0; cx < ChunksX; cx++ {
			c := &Chunk{CX: cx, CZ: cz}
			for _, stride := range Strides {
				c.Levels = append(c.Levels, newLevelMesh(stride))
			}
			wx := (float64(cx)+0.5)/ChunksX*terrain.WorldSizeX - terrain.WorldSizeX/2
			wz := (float64(cz)+0.5)/ChunksZ*terrain.WorldSizeZ - terrain.WorldSizeZ/2
			c.center = mgl64.Vec3{wx, 0, wz}
			s.Chunks = append(s.Chunks, c)
		}
	}
	return s
}

func newLevelMesh(stride int) *LevelMesh {
	vx := segsPerChunkX/stride + 1
	vz := segsPerChunkZ/stride + 1
	lm := &LevelMesh{
		Stride:    stride,
		VertsX:    vx,
		VertsZ:    vz,
		Positions: make([]float32, 3*vx*vz),
		Colors:    make([]float32, 3*vx*vz),
		Normals:   make([]float32, 3*vx*vz),
	}
	for z := 0; z < vz-1; z++ {
		for x := 0; x < vx-1; x++ {
			a := uint32(z*vx + x)
			b := a + 1
			c := a + uint32(vx)
			d := c + 1
			lm.Indices = append(lm.Indices, a, c, b, b, c, d)
		}
	}
	return lm
}

// Sync resamples every chunk's every detail level from the grid and
// recomputes per-level normals. Decimated levels sample the
// authoritative grid directly at even strides; they never resample a
// finer level, so a shared boundary vertex reads the same height at
// every level.
func (s *Set) Sync(g *terrain.Grid) {
	for _, c := range s.Chunks {
		for _, lm := range c.Levels {
			c.resample(g, lm)
		}
	}
}

func (c *Chunk) resample(g *terrain.Grid, lm *LevelMesh) {
	baseX := c.CX * segsPerChunkX
	baseZ := c.CZ * segsPerChunkZ

	i := 0
	for z := 0; z < lm.VertsZ; z++ {
		gz := baseZ + z*lm.Stride
		for x := 0; x < lm.VertsX; x++ {
			gx := baseX + x*lm.Stride
			p := g.WorldPos(gx, gz)
			r, gr, b := g.ColorAt(gx, gz)

			lm.Positions[i] = float32(p.X())
			lm.Positions[i+1] = float32(p.Y())
			lm.Positions[i+2] = float32(p.Z())
			lm.Colors[i] = float32(r)
			lm.Colors[i+1] = float32(gr)
			lm.Colors[i+2] = float32(b)
			i += 3
		}
	}
	recomputeNormals(g, lm, baseX, baseZ)
}

// recomputeNormals derives vertex normals from central differences of
// the authoritative grid at the level's own stride. Each level keeps an
// independent normal field; decimated normals only approximate the
// full-res ones, an accepted visual trade-off.
func recomputeNormals(g *terrain.Grid, lm *LevelMesh, baseX, baseZ int) {
	stepX := float64(lm.Stride) / terrain.Width * terrain.WorldSizeX
	stepZ := float64(lm.Stride) / terrain.Depth * terrain.WorldSizeZ

	i := 0
	for z := 0; z < lm.VertsZ; z++ {
		gz := baseZ + z*lm.Stride
		for x := 0; x < lm.VertsX; x++ {
			gx := baseX + x*lm.Stride

			hl := heightClamped(g, gx-lm.Stride, gz)
			hr := heightClamped(g, gx+lm.Stride, gz)
			hd := heightClamped(g, gx, gz-lm.Stride)
			hu := heightClamped(g, gx, gz+lm.Stride)

			n := mgl64.Vec3{(hl - hr) / (2 * stepX), 1, (hd - hu) / (2 * stepZ)}
			if l := n.Len(); l > 0 {
				n = n.Mul(1 / l)
			}
			lm.Normals[i] = float32(n.X())
			lm.Normals[i+1] = float32(n.Y())
			lm.Normals[i+2] = float32(n.Z())
			i += 3
		}
	}
}

func heightClamped(g *terrain.Grid, x, z int) float64 {
	if x < 0 {
		x = 0
	} else if x > terrain.Width {
		x = terrain.Width
	}
	if z < 0 {
		z = 0
	} else if z > terrain.Depth {
		z = terrain.Depth
	}
	return g.Height[terrain.Index(x, z)]
}

// LevelFor picks the visible detail level for a chunk from the planar
// camera distance to the chunk center.
func (c *Chunk) LevelFor(camera mgl64.Vec3) int {
	dx := camera.X() - c.center.X()
	dz := camera.Z() - c.center.Z()
	d := math.Hypot(dx, dz)
	for i, limit := range levelDistances {
		if d < limit {
			return i
		}
	}
	return len(Strides) - 1
}
