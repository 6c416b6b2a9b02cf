package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vector2/internal/common"
)

// Config holds the visualizer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Movers  MoversConfig  `yaml:"movers"`
	Compass CompassConfig `yaml:"compass"`
	Seed    int64         `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MoversConfig struct {
	Count    int     `yaml:"count"`
	MaxSpeed float32 `yaml:"max_speed"`
	MaxForce float32 `yaml:"max_force"`
}

type CompassConfig struct {
	Start          Vec2Def `yaml:"start"`
	DegreesPerTick float32 `yaml:"degrees_per_tick"`
	Length         float32 `yaml:"length"`
}

type Vec2Def struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (d Vec2Def) Vector() common.Vector2 {
	return common.New(d.X, d.Y)
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
			Title:  "Vector2 Playground",
		},
		Movers: MoversConfig{
			Count:    24,
			MaxSpeed: 4,
			MaxForce: 0.1,
		},
		Compass: CompassConfig{
			Start:          Vec2Def{X: 0, Y: 1},
			DegreesPerTick: 1.5,
			Length:         40,
		},
		Seed: 1,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Movers.Count < 0 {
		errs = append(errs, fmt.Errorf("movers.count must not be negative, got %d", c.Movers.Count))
	}
	if c.Movers.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("movers.max_speed must be positive, got %v", c.Movers.MaxSpeed))
	}
	if c.Movers.MaxForce <= 0 {
		errs = append(errs, fmt.Errorf("movers.max_force must be positive, got %v", c.Movers.MaxForce))
	}
	if c.Compass.Length <= 0 {
		errs = append(errs, fmt.Errorf("compass.length must be positive, got %v", c.Compass.Length))
	}
	return errors.Join(errs...)
}
