package procgen

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/driftpeak/terracarve/internal/brush"
	"github.com/driftpeak/terracarve/internal/terrain"
)

// Generator produces grids from Params. The noise source is seeded once
// at construction; a given (seed, params) pair always yields the same
// grid.
type Generator struct {
	noise *perlin.Perlin
	seed  int64
}

// New creates a generator with the given noise seed.
func New(seed int64) *Generator {
	// Single-iteration Perlin instance: octave composition is done here
	// so persistence/lacunarity come from Params, not the library.
	return &Generator{
		noise: perlin.NewPerlin(2, 2, 1, seed),
		seed:  seed,
	}
}

// Seed returns the noise seed the generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Generate synthesizes a complete grid: fractal noise, reshaping,
// feature composition, sea-floor clamp and a full ramp recolor.
func (g *Generator) Generate(p Params) (*terrain.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := &terrain.Grid{
		Height: make([]float64, terrain.VertsX*terrain.VertsZ),
		Color:  make([]float64, 3*terrain.VertsX*terrain.VertsZ),
	}

	// Maximum possible amplitude sum, used to normalize into [0,1].
	maxAmp := 0.0
	amp := 1.0
	for i := 0; i < p.Base.Octaves; i++ {
		maxAmp += amp
		amp *= p.Base.Persistence
	}

	for z := 0; z <= terrain.Depth; z++ {
		wz := (float64(z)/terrain.Depth - 0.5) * terrain.WorldSizeZ
		for x := 0; x <= terrain.Width; x++ {
			wx := (float64(x)/terrain.Width - 0.5) * terrain.WorldSizeX
			out.Height[terrain.Index(x, z)] = g.baseHeight(wx, wz, p.Base, maxAmp)
		}
	}

	for _, f := range p.Features {
		applyFeature(out, f)
	}

	for i, h := range out.Height {
		if h < terrain.SeaFloor {
			out.Height[i] = terrain.SeaFloor
		}
		r, gr, b := terrain.RampColor(out.Height[i])
		out.Color[3*i] = r
		out.Color[3*i+1] = gr
		out.Color[3*i+2] = b
	}
	return out, nil
}

// baseHeight evaluates the fractal noise stack at one world position.
func (g *Generator) baseHeight(wx, wz float64, b BaseParams, maxAmp float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := b.BaseFrequency
	for i := 0; i < b.Octaves; i++ {
		sum += g.noise.Noise2D(wx*freq, wz*freq) * amp
		amp *= b.Persistence
		freq *= b.Lacunarity
	}

	// Perlin output is signed; recenter the normalized sum into [0,1]
	// before the exponent reshapes the distribution.
	n := sum/maxAmp*0.5 + 0.5
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	return math.Pow(n, b.Exponent) * b.HeightScale
}

// applyFeature blends heights toward the feature target inside its
// radius using the same smoothstep falloff as the brush engine.
// Raising features skip vertices already above the target; lowering
// features skip vertices already below it.
func applyFeature(out *terrain.Grid, f Feature) {
	fx, fz := terrain.GridCoord(f.X, f.Z)
	rx := f.Radius / terrain.WorldSizeX * terrain.Width
	rz := f.Radius / terrain.WorldSizeZ * terrain.Depth

	minX := clampInt(int(math.Floor(fx-rx)), 0, terrain.Width)
	maxX := clampInt(int(math.Ceil(fx+rx)), 0, terrain.Width)
	minZ := clampInt(int(math.Floor(fz-rz)), 0, terrain.Depth)
	maxZ := clampInt(int(math.Ceil(fz+rz)), 0, terrain.Depth)

	for z := minZ; z <= maxZ; z++ {
		wz := (float64(z)/terrain.Depth - 0.5) * terrain.WorldSizeZ
		for x := minX; x <= maxX; x++ {
			wx := (float64(x)/terrain.Width - 0.5) * terrain.WorldSizeX
			d := math.Hypot(wx-f.X, wz-f.Z)
			if d >= f.Radius {
				continue
			}
			i := terrain.Index(x, z)
			h := out.Height[i]
			if f.Type.raises() && h >= f.Height {
				continue
			}
			if !f.Type.raises() && h <= f.Height {
				continue
			}
			w := brush.Falloff(d, f.Radius)
			out.Height[i] = h + (f.Height-h)*w
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
