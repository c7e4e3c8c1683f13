package export

import (
	"github.com/go-gl/mathgl/mgl64"
)

// smoothNormals recomputes per-vertex normals by accumulating area-
// weighted face normals over shared vertices. Dedup during extraction
// means shared coastline and corner vertices average naturally.
func smoothNormals(m *Mesh) {
	acc := make([]mgl64.Vec3, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a := toVec(m.Vertices[ia].Position)
		b := toVec(m.Vertices[ib].Position)
		c := toVec(m.Vertices[ic].Position)

		// Unnormalized cross product: magnitude carries the face area,
		// so large faces dominate the average.
		n := b.Sub(a).Cross(c.Sub(a))
		acc[ia] = acc[ia].Add(n)
		acc[ib] = acc[ib].Add(n)
		acc[ic] = acc[ic].Add(n)
	}

	for i := range m.Vertices {
		n := acc[i]
		if n.Len() < 1e-12 {
			n = mgl64.Vec3{0, 1, 0}
		} else {
			n = n.Normalize()
		}
		m.Vertices[i].Normal = [3]float32{float32(n.X()), float32(n.Y()), float32(n.Z())}
	}
}

func toVec(p [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}
