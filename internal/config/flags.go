package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSeed     = flag.Int64("seed", 0, "Noise seed for procedural generation")
	flagOut      = flag.String("out", "", "Export output path")
	flagSize     = flag.Float64("brush-size", 0, "Default brush diameter in world units")
	flagStrength = flag.Float64("brush-strength", 0, "Default brush strength (0..1)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Generator.Seed = *flagSeed
	}
	if *flagOut != "" {
		cfg.Export.OutputPath = *flagOut
	}
	if *flagSize > 0 {
		cfg.Brush.Size = *flagSize
	}
	if *flagStrength > 0 {
		cfg.Brush.Strength = *flagStrength
	}
}
