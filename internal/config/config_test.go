package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "pendulum" {
		t.Errorf("expected scenario pendulum, got %s", cfg.Scenario)
	}
	if cfg.Ticks <= 0 {
		t.Error("ticks should be positive")
	}
	if cfg.Incline.Angle != 20 || cfg.Incline.Friction != 0.3 {
		t.Errorf("unexpected incline defaults %+v", cfg.Incline)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("incline", "static")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Incline.Angle != 10 || cfg.Incline.Friction != 1.0 {
		t.Errorf("expected 10°/1.0, got %+v", cfg.Incline)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected defaults to fill the rest, got data dir %q", cfg.DataDir)
	}

	cfg.Incline.Angle = 44
	if GetPreset("incline", "static").Incline.Angle != 10 {
		t.Error("preset was modified through the returned config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("incline", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "default")
	if cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("incline")
	want := []string{"default", "flat", "slide", "static", "steep"}
	if !reflect.DeepEqual(presets, want) {
		t.Errorf("expected %v, got %v", want, presets)
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for scenario := range Presets {
		for _, name := range ListPresets(scenario) {
			if err := GetPreset(scenario, name).Validate(); err != nil {
				t.Errorf("%s/%s: %v", scenario, name, err)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"scenario", func(c *Config) { c.Scenario = "cartpole" }},
		{"ticks", func(c *Config) { c.Ticks = 0 }},
		{"fps", func(c *Config) { c.FPS = -1 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"angle", func(c *Config) { c.Incline.Angle = 46 }},
		{"friction", func(c *Config) { c.Incline.Friction = 0.05 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physlab.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "incline"
	cfg.Incline = InclineConfig{Angle: 30, Friction: 0.1}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}

	exp := loaded.Experiment()
	if exp.Scenario != "incline" || exp.Incline.AngleDeg != 30 {
		t.Errorf("unexpected experiment config %+v", exp)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physlab.yaml")
	if err := os.WriteFile(path, []byte("scenario: freefall\nticks: 120\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario != "freefall" || cfg.Ticks != 120 || cfg.FPS != DefaultFPS {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physlab.yaml")
	if err := os.WriteFile(path, []byte("incline:\n  angle: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
