package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != "disc" {
		t.Errorf("expected preset disc, got %s", cfg.Preset)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("window dimensions should be positive")
	}
	if cfg.Mesh.Stacks < 2 || cfg.Mesh.Slices < 3 {
		t.Error("mesh resolution too low to form a sphere")
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	data := []byte("preset: cloud\nboundary: periodic\nghost:\n  x: 2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Preset != "cloud" {
		t.Errorf("expected preset cloud, got %s", cfg.Preset)
	}
	if cfg.Ghost.X != 2 {
		t.Errorf("expected ghost x 2, got %d", cfg.Ghost.X)
	}
	// Unset fields keep their defaults.
	if cfg.Window.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt, got %f", cfg.Dt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Preset = "binary"
	cfg.Output.CaptureDir = "frames"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Preset != "binary" || got.Output.CaptureDir != "frames" {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cloud")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Boundary != "periodic" {
		t.Errorf("expected periodic boundary, got %s", cfg.Boundary)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) < 3 {
		t.Errorf("expected at least 3 presets, got %d", len(presets))
	}
}
