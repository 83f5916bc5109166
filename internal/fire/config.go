package fire

import (
	"fmt"
	"strconv"
	"time"
)

// Config controls an Engine.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// TickRate is the number of simulation steps per second.
	TickRate int `yaml:"tick_rate"`

	StrokeRadius float64 `yaml:"stroke_radius"`
	Falloff      float64 `yaml:"falloff"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        320,
		Height:       168,
		Seed:         42,
		TickRate:     30,
		StrokeRadius: DefaultStrokeRadius,
		Falloff:      DefaultFalloff,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// over the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the recognised keys of cfg (w, h, seed, tps, radius,
// falloff) parsed over it. Unparseable or out-of-range values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TickRate = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.StrokeRadius = parsed
		}
	}
	if v, ok := cfg["falloff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Falloff = parsed
		}
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.StrokeRadius <= 0 {
		return fmt.Errorf("%w: stroke_radius must be positive, got %g", ErrInvalidConfig, c.StrokeRadius)
	}
	if c.Falloff <= 0 {
		return fmt.Errorf("%w: falloff must be positive, got %g", ErrInvalidConfig, c.Falloff)
	}
	return nil
}

// TickPeriod returns the duration of one simulation step.
func (c Config) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Brush returns the stroke shape described by the config.
func (c Config) Brush() Brush {
	return Brush{Radius: float32(c.StrokeRadius), Falloff: c.Falloff}
}
