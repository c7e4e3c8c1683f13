// Package brush implements the terrain sculpting tools. Every tool is a
// pure function over a grid snapshot: it never mutates its input, and
// vertices outside the brush disc are carried through bit-identical.
package brush

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/palette"
	"github.com/driftpeak/terracarve/internal/terrain"
)

// Tool selects which sculpting algorithm Apply runs.
type Tool int

const (
	Raise Tool = iota
	Lower
	Flatten
	Smooth
	Paint
	Plane
)

// String returns the tool name for logs and config files.
func (t Tool) String() string {
	switch t {
	case Raise:
		return "raise"
	case Lower:
		return "lower"
	case Flatten:
		return "flatten"
	case Smooth:
		return "smooth"
	case Paint:
		return "paint"
	case Plane:
		return "plane"
	}
	return "unknown"
}

// ParseTool maps a config/script name back to a Tool.
func ParseTool(name string) (Tool, bool) {
	for _, t := range []Tool{Raise, Lower, Flatten, Smooth, Paint, Plane} {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Settings holds the user-adjustable brush shape. Size is the diameter
// in world units; the working radius is Size/2.
type Settings struct {
	Size float64
}

// Options carries per-stroke inputs. Target is the height sampled once
// at stroke start (required by Flatten and Plane). Exactly one of
// PaintColor or Texture must be set for the Paint tool.
type Options struct {
	Strength float64

	Target *float64

	PaintColor *[3]float64 // linear RGB

	Texture      *palette.Texture
	TextureAngle float64 // brush-local rotation in radians
	TextureScale float64 // world units covered by one texture tile
	TextureBlend float64 // independent strength for texture painting
}

// Tuning constants. raiseIntensity converts the unitless strength into
// world-unit height change per application. planeStrength is fixed and
// lower than user strengths so Plane stays stable at large brush sizes.
const (
	raiseIntensity = 15.0
	planeStrength  = 0.12
	planeCoreRatio = 0.8
)

// Apply runs one brush stamp centered at the world-space point and
// returns a new grid snapshot. The second return value is false when the
// tool is missing a required option; the caller treats that as a silent
// no-op and must not commit anything.
func Apply(g *terrain.Grid, point mgl64.Vec3, tool Tool, s Settings, opts Options) (*terrain.Grid, bool) {
	radius := s.Size / 2
	if radius <= 0 {
		return nil, false
	}
	switch tool {
	case Flatten, Plane:
		if opts.Target == nil {
			return nil, false
		}
	case Paint:
		if opts.PaintColor == nil && opts.Texture == nil {
			return nil, false
		}
	}

	out := g.Clone()
	forEachVertexInDisc(point, radius, func(x, z int, d float64) {
		switch tool {
		case Raise:
			raiseLower(out, x, z, d, radius, opts.Strength, +1)
		case Lower:
			raiseLower(out, x, z, d, radius, opts.Strength, -1)
		case Flatten:
			flatten(out, x, z, d, radius, opts.Strength, *opts.Target)
		case Smooth:
			smooth(g, out, x, z, d, radius, opts.Strength)
		case Paint:
			paint(out, x, z, d, radius, point, opts)
		case Plane:
			plane(out, x, z, d, radius, *opts.Target)
		}
	})
	return out, true
}

// forEachVertexInDisc visits every grid vertex whose planar world
// distance to the center is strictly inside the radius. Only the
// bounding rectangle of the disc is scanned; the contract is still
// full-grid equivalence outside the disc.
func forEachVertexInDisc(center mgl64.Vec3, radius float64, fn func(x, z int, d float64)) {
	fx, fz := terrain.GridCoord(center.X(), center.Z())
	rx := radius / terrain.WorldSizeX * terrain.Width
	rz := radius / terrain.WorldSizeZ * terrain.Depth

	minX := clampInt(int(math.Floor(fx-rx)), 0, terrain.Width)
	maxX := clampInt(int(math.Ceil(fx+rx)), 0, terrain.Width)
	minZ := clampInt(int(math.Floor(fz-rz)), 0, terrain.Depth)
	maxZ := clampInt(int(math.Ceil(fz+rz)), 0, terrain.Depth)

	for z := minZ; z <= maxZ; z++ {
		wz := (float64(z)/terrain.Depth - 0.5) * terrain.WorldSizeZ
		for x := minX; x <= maxX; x++ {
			wx := (float64(x)/terrain.Width - 0.5) * terrain.WorldSizeX
			dx := wx - center.X()
			dz := wz - center.Z()
			d := math.Hypot(dx, dz)
			if d >= radius {
				continue
			}
			fn(x, z, d)
		}
	}
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
