// Package config handles tool configuration loading and management.
package config

// Config holds all terracarve settings.
type Config struct {
	Brush     BrushConfig     `yaml:"brush"`
	Generator GeneratorConfig `yaml:"generator"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BrushConfig holds the default brush shape and strength.
type BrushConfig struct {
	Size     float64 `yaml:"size"`     // diameter in world units
	Strength float64 `yaml:"strength"` // 0..1
}

// GeneratorConfig holds procedural generation defaults.
type GeneratorConfig struct {
	Seed          int64   `yaml:"seed"`
	Octaves       int     `yaml:"octaves"`
	Persistence   float64 `yaml:"persistence"`
	Lacunarity    float64 `yaml:"lacunarity"`
	BaseFrequency float64 `yaml:"base_frequency"`
	Exponent      float64 `yaml:"exponent"`
	HeightScale   float64 `yaml:"height_scale"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	OutputPath string `yaml:"output_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Brush: BrushConfig{
			Size:     1200,
			Strength: 0.5,
		},
		Generator: GeneratorConfig{
			Seed:          42,
			Octaves:       5,
			Persistence:   0.5,
			Lacunarity:    2.0,
			BaseFrequency: 0.0003,
			Exponent:      1.8,
			HeightScale:   800,
		},
		Export: ExportConfig{
			OutputPath: "terrain.obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
