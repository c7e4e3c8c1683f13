package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Grid is one immutable snapshot of the terrain: a dense height field and
// an index-aligned color field (three linear-RGB channels per vertex).
//
// Consumers never mutate a snapshot in place; every edit produces a fresh
// pair of slices. That convention is what makes undo/redo and the chunk
// resync safe without any locking.
type Grid struct {
	Height []float64 // len VertsX*VertsZ, row-major
	Color  []float64 // len 3*VertsX*VertsZ, interleaved RGB
}

// NewFlat returns a grid with every vertex at the given elevation and
// colors derived from the height/color ramp.
func NewFlat(elevation float64) *Grid {
	g := &Grid{
		Height: make([]float64, VertsX*VertsZ),
		Color:  make([]float64, 3*VertsX*VertsZ),
	}
	r, gr, b := RampColor(elevation)
	for i := range g.Height {
		g.Height[i] = elevation
		g.Color[3*i] = r
		g.Color[3*i+1] = gr
		g.Color[3*i+2] = b
	}
	return g
}

// Clone returns a deep copy suitable for copy-on-write edits.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Height: make([]float64, len(g.Height)),
		Color:  make([]float64, len(g.Color)),
	}
	copy(out.Height, g.Height)
	copy(out.Color, g.Color)
	return out
}

// Index returns the linear index of the vertex at grid coordinate (x, z).
func Index(x, z int) int {
	return z*VertsX + x
}

// HeightAt returns the elevation at grid coordinate (x, z).
func (g *Grid) HeightAt(x, z int) float64 {
	return g.Height[Index(x, z)]
}

// ColorAt returns the linear RGB color at grid coordinate (x, z).
func (g *Grid) ColorAt(x, z int) (r, gr, b float64) {
	i := 3 * Index(x, z)
	return g.Color[i], g.Color[i+1], g.Color[i+2]
}

// WorldPos maps a grid coordinate to its world-space position.
// The mapping is the single affine transform shared by every component:
// x/Width-0.5 spans [-0.5, 0.5] which scales to the world extent.
func (g *Grid) WorldPos(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		(float64(x)/Width - 0.5) * WorldSizeX,
		g.Height[Index(x, z)],
		(float64(z)/Depth - 0.5) * WorldSizeZ,
	}
}

// GridCoord is the inverse planar mapping: world XZ to fractional grid
// coordinates. Results may lie outside [0, Width]x[0, Depth].
func GridCoord(worldX, worldZ float64) (fx, fz float64) {
	fx = (worldX/WorldSizeX + 0.5) * Width
	fz = (worldZ/WorldSizeZ + 0.5) * Depth
	return fx, fz
}

// SampleHeight returns the bilinearly interpolated elevation at a world
// position, clamping to the grid border outside the terrain.
func (g *Grid) SampleHeight(worldX, worldZ float64) float64 {
	fx, fz := GridCoord(worldX, worldZ)
	x0 := clampInt(int(fx), 0, Width-1)
	z0 := clampInt(int(fz), 0, Depth-1)
	x1 := x0 + 1
	z1 := z0 + 1

	sx := clampFloat(fx-float64(x0), 0, 1)
	sz := clampFloat(fz-float64(z0), 0, 1)

	h00 := g.Height[Index(x0, z0)]
	h10 := g.Height[Index(x1, z0)]
	h01 := g.Height[Index(x0, z1)]
	h11 := g.Height[Index(x1, z1)]

	south := h00*(1-sx) + h10*sx
	north := h01*(1-sx) + h11*sx
	return south*(1-sz) + north*sz
}

// Recolor returns a copy of the grid with the full color field re-derived
// from the height field via the ramp. Heights are shared semantics but
// copied anyway so the result is an independent snapshot.
func (g *Grid) Recolor() *Grid {
	out := g.Clone()
	for i, h := range out.Height {
		r, gr, b := RampColor(h)
		out.Color[3*i] = r
		out.Color[3*i+1] = gr
		out.Color[3*i+2] = b
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
