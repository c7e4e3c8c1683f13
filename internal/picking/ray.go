// Package picking turns camera rays into world-space brush points on
// the terrain heightfield.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/terrain"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray using the
// inverse view-projection matrix of the camera.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj mgl64.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // flip Y

	nearWorld := invViewProj.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})

	if w := nearWorld.W(); w != 0 {
		nearWorld = nearWorld.Mul(1 / w)
	}
	if w := farWorld.W(); w != 0 {
		farWorld = farWorld.Mul(1 / w)
	}

	origin := nearWorld.Vec3()
	dir := farWorld.Vec3().Sub(origin)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: dir}
}

// IntersectPlaneY intersects the ray with the horizontal plane at the
// given elevation. Used as a fallback when the ray misses the terrain.
func (r Ray) IntersectPlaneY(planeY float64) (mgl64.Vec3, bool) {
	if math.Abs(r.Direction.Y()) < 1e-6 {
		return mgl64.Vec3{}, false // parallel to plane
	}
	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return mgl64.Vec3{}, false // behind the origin
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// March parameters for the heightfield intersection: coarse steps find
// the first below-surface sample, bisection refines the crossing.
const (
	marchStep    = 40.0
	marchMaxDist = 80000.0
	bisectRounds = 24
)

// IntersectHeightfield walks the ray across the grid and returns the
// first surface hit. The result's planar position always lies within
// the terrain bounds.
func (r Ray) IntersectHeightfield(g *terrain.Grid) (mgl64.Vec3, bool) {
	above := func(t float64) (mgl64.Vec3, bool) {
		p := r.Origin.Add(r.Direction.Mul(t))
		return p, p.Y() >= g.SampleHeight(p.X(), p.Z())
	}

	prevT := 0.0
	if _, ok := above(0); !ok {
		return mgl64.Vec3{}, false // starting underground
	}

	for t := marchStep; t <= marchMaxDist; t += marchStep {
		p, ok := above(t)
		if ok {
			prevT = t
			continue
		}
		// Crossing between prevT and t; bisect.
		lo, hi := prevT, t
		for i := 0; i < bisectRounds; i++ {
			mid := (lo + hi) / 2
			if _, up := above(mid); up {
				lo = mid
			} else {
				hi = mid
			}
		}
		p = r.Origin.Add(r.Direction.Mul(hi))
		if !inBounds(p) {
			return mgl64.Vec3{}, false
		}
		p[1] = g.SampleHeight(p.X(), p.Z())
		return p, true
	}
	return mgl64.Vec3{}, false
}

func inBounds(p mgl64.Vec3) bool {
	return p.X() >= -terrain.WorldSizeX/2 && p.X() <= terrain.WorldSizeX/2 &&
		p.Z() >= -terrain.WorldSizeZ/2 && p.Z() <= terrain.WorldSizeZ/2
}
