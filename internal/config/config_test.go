package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "hammer" {
		t.Errorf("expected scenario hammer, got %s", cfg.Scenario)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate_BadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown scenario", func(c *Config) { c.Scenario = "rocket" }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"unknown mass", func(c *Config) { c.Hammer.Mass = "feather" }},
		{"unknown speed", func(c *Config) { c.Hammer.Speed = "warp" }},
		{"bad mass scale", func(c *Config) { c.Orbit.MassScale = 3.7 }},
		{"zero trail cap", func(c *Config) { c.Orbit.TrailCap = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "orbit"
	cfg.Orbit.MassScale = 1.5
	cfg.Hammer.Mass = "heavy"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Scenario != "orbit" || loaded.Orbit.MassScale != 1.5 || loaded.Hammer.Mass != "heavy" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scenario: hammer\nhammer:\n  mass: feather\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown mass category")
	}
}

func TestHammerParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hammer.Mass = "heavy"
	cfg.Hammer.Speed = "fast"

	p, err := cfg.HammerParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Mass != 10 {
		t.Errorf("expected mass 10, got %v", p.Mass)
	}
	if p.SwingStep <= 0 {
		t.Errorf("expected positive swing step, got %v", p.SwingStep)
	}
}

func TestOrbitParams_ClampsDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orbit.Distance = 10000

	p := cfg.OrbitParams()
	if p.InitDistance != p.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", p.MaxDistance, p.InitDistance)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hammer", "sledge")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Hammer.Mass != "heavy" || cfg.Hammer.Speed != "fast" {
		t.Errorf("unexpected sledge preset: %+v", cfg.Hammer)
	}
	if err := cfg.Normalized().Validate(); err != nil {
		t.Errorf("normalized preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("hammer", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "sledge") != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("orbit")) == 0 {
		t.Error("expected presets for orbit")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}
