package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
)

const (
	DefaultScenario = "pendulum"
	DefaultTicks    = 600
	DefaultFPS      = 60
	DefaultDataDir  = ".physlab"
	DefaultLogLevel = "info"
	DefaultTheme    = "default"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Scenario string        `yaml:"scenario"`
	Ticks    int           `yaml:"ticks"`
	FPS      int           `yaml:"fps"`
	DataDir  string        `yaml:"data_dir"`
	LogLevel string        `yaml:"log_level"`
	Theme    string        `yaml:"theme"`
	Incline  InclineConfig `yaml:"incline"`
}

type InclineConfig struct {
	Angle    float64 `yaml:"angle"`
	Friction float64 `yaml:"friction"`
}

func (c InclineConfig) Params() kinematics.InclineParams {
	return kinematics.InclineParams{AngleDeg: c.Angle, Friction: c.Friction}
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: DefaultScenario,
		Ticks:    DefaultTicks,
		FPS:      DefaultFPS,
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Incline: InclineConfig{
			Angle:    kinematics.DefaultAngle,
			Friction: kinematics.DefaultFriction,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var scenarios = map[string]bool{"freefall": true, "pendulum": true, "incline": true}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c *Config) Validate() error {
	switch {
	case !scenarios[c.Scenario]:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalid, c.Scenario)
	case c.Ticks <= 0:
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalid, c.Ticks)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.LogLevel != "" && !logLevels[c.LogLevel]:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	case c.Incline.Angle < kinematics.MinAngle || c.Incline.Angle > kinematics.MaxAngle:
		return fmt.Errorf("%w: incline angle %.1f outside [%g, %g]", ErrInvalid, c.Incline.Angle, kinematics.MinAngle, kinematics.MaxAngle)
	case c.Incline.Friction < kinematics.MinFriction || c.Incline.Friction > kinematics.MaxFriction:
		return fmt.Errorf("%w: incline friction %.2f outside [%g, %g]", ErrInvalid, c.Incline.Friction, kinematics.MinFriction, kinematics.MaxFriction)
	}
	return nil
}

// Experiment converts the file settings into a headless run.
func (c *Config) Experiment() experiment.Config {
	return experiment.Config{
		Scenario: c.Scenario,
		Ticks:    c.Ticks,
		FPS:      c.FPS,
		Incline:  c.Incline.Params(),
	}
}
