// Package procgen synthesizes terrain from fractal noise parameters and
// composes named features (mountains, lakes, ridges, valleys) on top.
package procgen

import (
	"fmt"
)

// FeatureType names one of the supported terrain features.
type FeatureType string

const (
	FeatureMountain FeatureType = "mountain"
	FeatureRidge    FeatureType = "ridge"
	FeatureLake     FeatureType = "lake"
	FeatureValley   FeatureType = "valley"
)

// raises reports whether the feature only raises terrain toward its
// target height; lakes and valleys only lower.
func (f FeatureType) raises() bool {
	return f == FeatureMountain || f == FeatureRidge
}

func (f FeatureType) valid() bool {
	switch f {
	case FeatureMountain, FeatureRidge, FeatureLake, FeatureValley:
		return true
	}
	return false
}

// BaseParams controls the fractal noise synthesis.
type BaseParams struct {
	Octaves       int     `yaml:"octaves"`
	Persistence   float64 `yaml:"persistence"`
	Lacunarity    float64 `yaml:"lacunarity"`
	BaseFrequency float64 `yaml:"base_frequency"`
	Exponent      float64 `yaml:"exponent"`
	HeightScale   float64 `yaml:"height_scale"`
}

// Feature is one localized height adjustment blended over the base noise.
type Feature struct {
	Type   FeatureType `yaml:"type"`
	X      float64     `yaml:"x"`
	Z      float64     `yaml:"z"`
	Radius float64     `yaml:"radius"`
	Height float64     `yaml:"height"`
}

// Params is the full generator input. It is also the interchange
// structure handed across the boundary to external parameter producers,
// so Validate guards everything before any generation happens.
type Params struct {
	Base     BaseParams `yaml:"base"`
	Features []Feature  `yaml:"features"`
}

// DefaultParams returns parameters that produce a pleasant island-ish
// starting terrain.
func DefaultParams() Params {
	return Params{
		Base: BaseParams{
			Octaves:       5,
			Persistence:   0.5,
			Lacunarity:    2.0,
			BaseFrequency: 0.0003,
			Exponent:      1.8,
			HeightScale:   800,
		},
	}
}

// Validate rejects malformed parameters. Generation is all-or-nothing:
// a validation failure must leave the current grid untouched.
func (p Params) Validate() error {
	b := p.Base
	if b.Octaves < 1 {
		return fmt.Errorf("octaves must be >= 1, got %d", b.Octaves)
	}
	if b.Persistence <= 0 {
		return fmt.Errorf("persistence must be > 0, got %v", b.Persistence)
	}
	if b.Lacunarity <= 0 {
		return fmt.Errorf("lacunarity must be > 0, got %v", b.Lacunarity)
	}
	if b.BaseFrequency <= 0 {
		return fmt.Errorf("base_frequency must be > 0, got %v", b.BaseFrequency)
	}
	if b.Exponent <= 0 {
		return fmt.Errorf("exponent must be > 0, got %v", b.Exponent)
	}
	for i, f := range p.Features {
		if !f.Type.valid() {
			return fmt.Errorf("feature %d: unknown type %q", i, f.Type)
		}
		if f.Radius <= 0 {
			return fmt.Errorf("feature %d: radius must be > 0, got %v", i, f.Radius)
		}
	}
	return nil
}
