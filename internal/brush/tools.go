package brush

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/terrain"
)

// raiseLower applies the Raise (dir=+1) or Lower (dir=-1) tool to one
// vertex. Heights are clamped to [SeaFloor, MaxElevation] and the color
// is pulled toward the ramp color of the new height.
func raiseLower(g *terrain.Grid, x, z int, d, radius, strength, dir float64) {
	w := strength * Falloff(d, radius)
	i := terrain.Index(x, z)

	h := g.Height[i] + dir*w*raiseIntensity
	if h < terrain.SeaFloor {
		h = terrain.SeaFloor
	}
	if h > terrain.MaxElevation {
		h = terrain.MaxElevation
	}
	g.Height[i] = h
	blendRamp(g, i, h, w)
}

// flatten pulls the vertex toward the height sampled at stroke start.
// Repeated application converges on the target without overshooting.
func flatten(g *terrain.Grid, x, z int, d, radius, strength, target float64) {
	w := strength * Falloff(d, radius)
	i := terrain.Index(x, z)

	h := g.Height[i] + (target-g.Height[i])*w
	g.Height[i] = h
	blendRamp(g, i, h, w)
}

// plane raises terrain toward the target plane and never lowers it.
// Vertices already at or above the target are left untouched.
func plane(g *terrain.Grid, x, z int, d, radius, target float64) {
	i := terrain.Index(x, z)
	if g.Height[i] >= target {
		return
	}
	w := planeStrength * planeFalloff(d, radius)

	h := g.Height[i] + (target-g.Height[i])*w
	g.Height[i] = h
	blendRamp(g, i, h, w)
}

// smooth blends the vertex toward the mean of its 3x3 neighborhood.
// Neighborhood reads come from the unmodified input snapshot so the
// result does not depend on iteration order.
func smooth(src, g *terrain.Grid, x, z int, d, radius, strength float64) {
	var sumH, sumR, sumG, sumB float64
	n := 0
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			nx, nz := x+dx, z+dz
			if nx < 0 || nx > terrain.Width || nz < 0 || nz > terrain.Depth {
				continue
			}
			j := terrain.Index(nx, nz)
			sumH += src.Height[j]
			sumR += src.Color[3*j]
			sumG += src.Color[3*j+1]
			sumB += src.Color[3*j+2]
			n++
		}
	}
	meanH := sumH / float64(n)
	meanR := sumR / float64(n)
	meanG := sumG / float64(n)
	meanB := sumB / float64(n)

	w := strength * Falloff(d, radius)
	i := terrain.Index(x, z)
	g.Height[i] += (meanH - g.Height[i]) * w
	g.Color[3*i] += (meanR - g.Color[3*i]) * w
	g.Color[3*i+1] += (meanG - g.Color[3*i+1]) * w
	g.Color[3*i+2] += (meanB - g.Color[3*i+2]) * w
}

// paint recolors land vertices only; submerged terrain keeps its color
// and heights are never touched.
func paint(g *terrain.Grid, x, z int, d, radius float64, center mgl64.Vec3, opts Options) {
	i := terrain.Index(x, z)
	if g.Height[i] < terrain.SeaLevel {
		return
	}

	if opts.Texture != nil {
		paintTexture(g, i, x, z, d, radius, center, opts)
		return
	}

	w := opts.Strength * Falloff(d, radius)
	c := *opts.PaintColor
	g.Color[3*i] += (c[0] - g.Color[3*i]) * w
	g.Color[3*i+1] += (c[1] - g.Color[3*i+1]) * w
	g.Color[3*i+2] += (c[2] - g.Color[3*i+2]) * w
}

// paintTexture samples the brush texture in rotated, tiled brush-local
// UV space. The texture stores linear RGB already (converted on import),
// so the sampled color blends directly into the grid's linear colors.
func paintTexture(g *terrain.Grid, i, x, z int, d, radius float64, center mgl64.Vec3, opts Options) {
	scale := opts.TextureScale
	if scale <= 0 {
		scale = radius * 2
	}

	wx := (float64(x)/terrain.Width - 0.5) * terrain.WorldSizeX
	wz := (float64(z)/terrain.Depth - 0.5) * terrain.WorldSizeZ
	dx := wx - center.X()
	dz := wz - center.Z()

	sin, cos := math.Sincos(opts.TextureAngle)
	u := (dx*cos - dz*sin) / scale
	v := (dx*sin + dz*cos) / scale

	r, gr, b := opts.Texture.Sample(u, v)

	w := opts.TextureBlend * Falloff(d, radius)
	g.Color[3*i] += (r - g.Color[3*i]) * w
	g.Color[3*i+1] += (gr - g.Color[3*i+1]) * w
	g.Color[3*i+2] += (b - g.Color[3*i+2]) * w
}

// blendRamp pulls a vertex color toward the ramp color for its new
// height by the given weight.
func blendRamp(g *terrain.Grid, i int, h, w float64) {
	r, gr, b := terrain.RampColor(h)
	g.Color[3*i] += (r - g.Color[3*i]) * w
	g.Color[3*i+1] += (gr - g.Color[3*i+1]) * w
	g.Color[3*i+2] += (b - g.Color[3*i+2]) * w
}
