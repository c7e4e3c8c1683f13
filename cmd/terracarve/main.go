// Package main is the headless terracarve pipeline: generate terrain,
// replay a sculpt script over it and export the surface as OBJ.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/driftpeak/terracarve/internal/config"
	"github.com/driftpeak/terracarve/internal/editor"
	"github.com/driftpeak/terracarve/internal/export"
	"github.com/driftpeak/terracarve/internal/logger"
	"github.com/driftpeak/terracarve/internal/procgen"
)

var (
	flagParams = flag.String("params", "", "Path to generator params YAML (default: generator settings from config)")
	flagScript = flag.String("script", "", "Path to sculpt script YAML to replay")
	flagFlat   = flag.Bool("flat", false, "Start from a flat sea-floor grid instead of generating")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("=== TerraCarve ===")
	log.Sugar().Debugf("Config: %+v", cfg)

	if err := run(cfg, log); err != nil {
		log.Error("pipeline failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	session := editor.NewSession(editor.Config{
		Seed:      cfg.Generator.Seed,
		BrushSize: cfg.Brush.Size,
		Strength:  cfg.Brush.Strength,
		Logger:    log,
	})

	if !*flagFlat {
		params, err := generatorParams(cfg)
		if err != nil {
			return err
		}
		if err := session.Generate(params); err != nil {
			return err
		}
	}

	if *flagScript != "" {
		script, err := loadScript(*flagScript)
		if err != nil {
			return fmt.Errorf("loading sculpt script: %w", err)
		}
		if err := script.Replay(session); err != nil {
			return fmt.Errorf("replaying sculpt script: %w", err)
		}
		log.Info("sculpt script replayed",
			zap.String("path", *flagScript),
			zap.Int("strokes", len(script.Strokes)))
	}

	mesh, ok := session.Export()
	if !ok {
		log.Warn("nothing above sea level, no mesh written")
		return nil
	}

	if err := export.WriteOBJFile(cfg.Export.OutputPath, mesh); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Export.OutputPath, err)
	}

	log.Info("mesh exported",
		zap.String("path", cfg.Export.OutputPath),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", len(mesh.Indices)/3))
	return nil
}

// generatorParams resolves the generator input: an explicit params file
// wins over the generator section of the config.
func generatorParams(cfg *config.Config) (procgen.Params, error) {
	if *flagParams != "" {
		return loadParams(*flagParams)
	}
	p := procgen.DefaultParams()
	p.Base = procgen.BaseParams{
		Octaves:       cfg.Generator.Octaves,
		Persistence:   cfg.Generator.Persistence,
		Lacunarity:    cfg.Generator.Lacunarity,
		BaseFrequency: cfg.Generator.BaseFrequency,
		Exponent:      cfg.Generator.Exponent,
		HeightScale:   cfg.Generator.HeightScale,
	}
	return p, nil
}
