// Package config holds the application settings shared by every host.
package config

import (
	"fmt"
	"os"

	"doom-fire/internal/fire"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the settings for a doom-fire session.
type Config struct {
	Fire fire.Config `yaml:"fire"`

	// Scale is the window pixel size of one grid cell.
	Scale int `yaml:"scale"`
	// FrameRate is the display refresh rate of the window and terminal hosts.
	FrameRate int  `yaml:"frame_rate"`
	ShowHUD   bool `yaml:"show_hud"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fire:      fire.DefaultConfig(),
		Scale:     3,
		FrameRate: 60,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bind attaches the configuration to the provided FlagSet. Values already in
// c become the flag defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Fire.Width, "width", c.Fire.Width, "grid width in cells")
	fs.IntVar(&c.Fire.Height, "height", c.Fire.Height, "grid height in cells")
	fs.Int64Var(&c.Fire.Seed, "seed", c.Fire.Seed, "seed for the spread randomness")
	fs.IntVar(&c.Fire.TickRate, "tps", c.Fire.TickRate, "simulation ticks per second")
	fs.Float64Var(&c.Fire.StrokeRadius, "radius", c.Fire.StrokeRadius, "stroke radius in cells")
	fs.Float64Var(&c.Fire.Falloff, "falloff", c.Fire.Falloff, "stroke intensity falloff exponent")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FrameRate, "fps", c.FrameRate, "display refresh rate")
	fs.BoolVar(&c.ShowHUD, "hud", c.ShowHUD, "show the parameter HUD")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Fire.Validate(); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", fire.ErrInvalidConfig, c.Scale)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %d", fire.ErrInvalidConfig, c.FrameRate)
	}
	return nil
}
