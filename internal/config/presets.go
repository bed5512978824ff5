package config

import "sort"

var Presets = map[string]map[string]*Config{
	"freefall": {
		"default": {Scenario: "freefall", Ticks: 300, FPS: 60},
		"long":    {Scenario: "freefall", Ticks: 900, FPS: 60},
	},
	"pendulum": {
		"default": {Scenario: "pendulum", Ticks: 600, FPS: 60},
		"settle":  {Scenario: "pendulum", Ticks: 5000, FPS: 60},
	},
	"incline": {
		"default": {
			Scenario: "incline", Ticks: 300, FPS: 60,
			Incline: InclineConfig{Angle: 20, Friction: 0.3},
		},
		"static": {
			Scenario: "incline", Ticks: 300, FPS: 60,
			Incline: InclineConfig{Angle: 10, Friction: 1.0},
		},
		"slide": {
			Scenario: "incline", Ticks: 300, FPS: 60,
			Incline: InclineConfig{Angle: 30, Friction: 0.1},
		},
		"steep": {
			Scenario: "incline", Ticks: 300, FPS: 60,
			Incline: InclineConfig{Angle: 45, Friction: 0.1},
		},
		"flat": {
			Scenario: "incline", Ticks: 300, FPS: 60,
			Incline: InclineConfig{Angle: 0, Friction: 0.5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	out := DefaultConfig()
	out.Scenario = cfg.Scenario
	out.Ticks = cfg.Ticks
	out.FPS = cfg.FPS
	if scenario == "incline" {
		out.Incline = cfg.Incline
	}
	return out
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
