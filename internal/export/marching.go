// Package export extracts an exportable surface from a grid snapshot by
// marching squares over the sea-level isoline, and serializes it to a
// standard container format.
package export

import (
	"github.com/driftpeak/terracarve/internal/terrain"
)

// Vertex is one exported surface vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Mesh is the extracted surface: deduplicated vertices, triangle
// indices and smooth per-vertex normals.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Cell node ids used by the case table: 0-3 are the quad corners
// (x,z), (x+1,z), (x+1,z+1), (x,z+1); 4-7 are the crossing points on
// the edges between consecutive corners, starting with corner0-corner1.
const (
	nC0 = iota
	nC1
	nC2
	nC3
	nE0
	nE1
	nE2
	nE3
)

// caseTriangles maps the 4-bit inside mask to triangles over cell
// nodes, wound counter-clockwise seen from above. The saddle cases 5
// and 10 deliberately emit both diagonal corner triangles without
// center-sample disambiguation; the coastline there may look connected
// or split inconsistently. Known modeling simplification.
var caseTriangles = [16][][3]int{
	0:  {},
	1:  {{nC0, nE3, nE0}},
	2:  {{nE1, nC1, nE0}},
	3:  {{nC0, nE3, nE1}, {nC0, nE1, nC1}},
	4:  {{nE2, nC2, nE1}},
	5:  {{nC0, nE3, nE0}, {nE2, nC2, nE1}},
	6:  {{nE2, nC2, nC1}, {nE2, nC1, nE0}},
	7:  {{nC0, nE3, nE2}, {nC0, nE2, nC2}, {nC0, nC2, nC1}},
	8:  {{nE3, nC3, nE2}},
	9:  {{nC0, nC3, nE2}, {nC0, nE2, nE0}},
	10: {{nE3, nC3, nE2}, {nE1, nC1, nE0}},
	11: {{nC0, nC3, nE2}, {nC0, nE2, nE1}, {nC0, nE1, nC1}},
	12: {{nE3, nC3, nC2}, {nE3, nC2, nE1}},
	13: {{nC0, nC3, nC2}, {nC0, nC2, nE1}, {nC0, nE1, nE0}},
	14: {{nE3, nC3, nC2}, {nE3, nC2, nC1}, {nE3, nC1, nE0}},
	15: {{nC0, nC3, nC2}, {nC0, nC2, nC1}},
}

// vertexKey canonically identifies a shared output vertex: either a
// grid corner or a crossing point on a horizontal/vertical grid edge.
type vertexKey struct {
	kind int // 0 corner, 1 horizontal edge, 2 vertical edge
	x, z int
}

// Extract triangulates the above-sea-level region of the grid. It
// returns nil, false when no vertex is above sea level. Crossing points
// on boundary edges interpolate position and color together at the
// sea-level isovalue.
func Extract(g *terrain.Grid) (*Mesh, bool) {
	inside := func(x, z int) bool {
		return g.Height[terrain.Index(x, z)] >= terrain.SeaLevel
	}

	any := false
	for _, h := range g.Height {
		if h >= terrain.SeaLevel {
			any = true
			break
		}
	}
	if !any {
		return nil, false
	}

	m := &Mesh{}
	lookup := make(map[vertexKey]uint32)

	emit := func(key vertexKey, v Vertex) uint32 {
		if idx, ok := lookup[key]; ok {
			return idx
		}
		idx := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		lookup[key] = idx
		return idx
	}

	cornerVertex := func(x, z int) Vertex {
		p := g.WorldPos(x, z)
		r, gr, b := g.ColorAt(x, z)
		return Vertex{
			Position: [3]float32{float32(p.X()), float32(p.Y()), float32(p.Z())},
			Color:    [3]float32{float32(r), float32(gr), float32(b)},
		}
	}

	// edgeVertex interpolates the sea-level crossing between two grid
	// vertices. The same parametric t positions the point and blends
	// the color, and its height is the isovalue by construction.
	edgeVertex := func(x0, z0, x1, z1 int) Vertex {
		h0 := g.Height[terrain.Index(x0, z0)]
		h1 := g.Height[terrain.Index(x1, z1)]
		t := (terrain.SeaLevel - h0) / (h1 - h0)

		p0 := g.WorldPos(x0, z0)
		p1 := g.WorldPos(x1, z1)
		r0, g0, b0 := g.ColorAt(x0, z0)
		r1, g1, b1 := g.ColorAt(x1, z1)
		return Vertex{
			Position: [3]float32{
				float32(p0.X() + (p1.X()-p0.X())*t),
				float32(terrain.SeaLevel),
				float32(p0.Z() + (p1.Z()-p0.Z())*t),
			},
			Color: [3]float32{
				float32(r0 + (r1-r0)*t),
				float32(g0 + (g1-g0)*t),
				float32(b0 + (b1-b0)*t),
			},
		}
	}

	for cz := 0; cz < terrain.Depth; cz++ {
		for cx := 0; cx < terrain.Width; cx++ {
			mask := 0
			if inside(cx, cz) {
				mask |= 1
			}
			if inside(cx+1, cz) {
				mask |= 2
			}
			if inside(cx+1, cz+1) {
				mask |= 4
			}
			if inside(cx, cz+1) {
				mask |= 8
			}
			if mask == 0 {
				continue
			}

			node := func(n int) uint32 {
				switch n {
				case nC0:
					return emit(vertexKey{0, cx, cz}, cornerVertex(cx, cz))
				case nC1:
					return emit(vertexKey{0, cx + 1, cz}, cornerVertex(cx+1, cz))
				case nC2:
					return emit(vertexKey{0, cx + 1, cz + 1}, cornerVertex(cx+1, cz+1))
				case nC3:
					return emit(vertexKey{0, cx, cz + 1}, cornerVertex(cx, cz+1))
				case nE0:
					return emit(vertexKey{1, cx, cz}, edgeVertex(cx, cz, cx+1, cz))
				case nE1:
					return emit(vertexKey{2, cx + 1, cz}, edgeVertex(cx+1, cz, cx+1, cz+1))
				case nE2:
					return emit(vertexKey{1, cx, cz + 1}, edgeVertex(cx, cz+1, cx+1, cz+1))
				default: // nE3
					return emit(vertexKey{2, cx, cz}, edgeVertex(cx, cz, cx, cz+1))
				}
			}

			for _, tri := range caseTriangles[mask] {
				m.Indices = append(m.Indices,
					node(tri[0]), node(tri[1]), node(tri[2]))
			}
		}
	}

	smoothNormals(m)
	return m, true
}
