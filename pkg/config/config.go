// Package config holds the render configuration loaded from config.yaml.
// Scene contents are deliberately not configurable here; only the canvas,
// viewport, and output settings are.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewportCfg describes the projection plane.
type ViewportCfg struct {
	Width    float64 `yaml:"width"`    // Vw
	Height   float64 `yaml:"height"`   // Vh
	Distance float64 `yaml:"distance"` // d, camera to projection plane
}

// RGB is an opaque color in config form.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// OutputCfg describes where and how rendered frames are written.
type OutputCfg struct {
	Dir    string `yaml:"dir"`    // output directory, created if missing
	Format string `yaml:"format"` // "png" | "webp"
}

// Config is the full render configuration.
type Config struct {
	Width       int         `yaml:"width"`  // canvas width in pixels
	Height      int         `yaml:"height"` // canvas height in pixels
	Viewport    ViewportCfg `yaml:"viewport"`
	Background  RGB         `yaml:"background"`
	Workers     int         `yaml:"workers"`     // 0 = one per CPU
	Supersample int         `yaml:"supersample"` // render scale factor, 1 = off
	Output      OutputCfg   `yaml:"output"`
}

// Default returns the reference configuration: 800x600 canvas, unit viewport
// at distance 1, white background.
func Default() *Config {
	return &Config{
		Width:  800,
		Height: 600,
		Viewport: ViewportCfg{
			Width:    1.0,
			Height:   1.0,
			Distance: 1.0,
		},
		Background:  RGB{R: 255, G: 255, B: 255},
		Workers:     0,
		Supersample: 1,
		Output: OutputCfg{
			Dir:    "output",
			Format: "png",
		},
	}
}

// Load reads a config file. Missing fields keep their zero values; callers
// typically start from Default and let the file override.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config back to a file.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects configurations the renderer cannot construct from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 || c.Viewport.Distance <= 0 {
		return fmt.Errorf("viewport parameters must be positive, got %+v", c.Viewport)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("supersample factor must be >= 1, got %d", c.Supersample)
	}
	if c.Output.Format != "png" && c.Output.Format != "webp" {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
