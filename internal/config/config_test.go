package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test brush defaults
	if cfg.Brush.Size != 1200 {
		t.Errorf("expected brush size 1200, got %v", cfg.Brush.Size)
	}
	if cfg.Brush.Strength != 0.5 {
		t.Errorf("expected brush strength 0.5, got %v", cfg.Brush.Strength)
	}

	// Test generator defaults
	if cfg.Generator.Octaves != 5 {
		t.Errorf("expected octaves 5, got %d", cfg.Generator.Octaves)
	}
	if cfg.Generator.Persistence != 0.5 {
		t.Errorf("expected persistence 0.5, got %v", cfg.Generator.Persistence)
	}
	if cfg.Generator.Lacunarity != 2.0 {
		t.Errorf("expected lacunarity 2.0, got %v", cfg.Generator.Lacunarity)
	}
	if cfg.Generator.HeightScale != 800 {
		t.Errorf("expected height scale 800, got %v", cfg.Generator.HeightScale)
	}

	// Test export defaults
	if cfg.Export.OutputPath != "terrain.obj" {
		t.Errorf("expected output path terrain.obj, got %s", cfg.Export.OutputPath)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
brush:
  size: 2400
  strength: 0.8

generator:
  seed: 99
  octaves: 7
  persistence: 0.45
  lacunarity: 2.2
  base_frequency: 0.0005
  exponent: 2.0
  height_scale: 1000

export:
  output_path: "island.obj"

logging:
  level: "debug"
  log_file: "sculpt.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Brush.Size != 2400 {
		t.Errorf("expected brush size 2400, got %v", cfg.Brush.Size)
	}
	if cfg.Brush.Strength != 0.8 {
		t.Errorf("expected brush strength 0.8, got %v", cfg.Brush.Strength)
	}
	if cfg.Generator.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Generator.Seed)
	}
	if cfg.Generator.Octaves != 7 {
		t.Errorf("expected octaves 7, got %d", cfg.Generator.Octaves)
	}
	if cfg.Generator.BaseFrequency != 0.0005 {
		t.Errorf("expected base frequency 0.0005, got %v", cfg.Generator.BaseFrequency)
	}
	if cfg.Export.OutputPath != "island.obj" {
		t.Errorf("expected output path island.obj, got %s", cfg.Export.OutputPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sculpt.log" {
		t.Errorf("expected log file sculpt.log, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one section; everything else keeps defaults.
	yamlContent := `
brush:
  size: 600
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Brush.Size != 600 {
		t.Errorf("expected brush size 600, got %v", cfg.Brush.Size)
	}
	if cfg.Generator.Octaves != 5 {
		t.Errorf("partial load clobbered generator defaults: %d", cfg.Generator.Octaves)
	}
	if cfg.Export.OutputPath != "terrain.obj" {
		t.Errorf("partial load clobbered export defaults: %s", cfg.Export.OutputPath)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Brush.Size = 3000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Brush.Size != 3000 {
		t.Errorf("round trip lost brush size: %v", loaded.Brush.Size)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
