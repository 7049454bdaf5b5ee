package app

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the startup parameters for the simulation.
type Config struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	IntervalMS int   `yaml:"interval_ms"`
	BlockSize  int   `yaml:"block_size"`
	Seed       int64 `yaml:"seed"`
	Scale      int   `yaml:"scale"`
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Width:      32,
		Height:     32,
		IntervalMS: 200,
		BlockSize:  8,
		Seed:       42,
		Scale:      16,
	}
}

// Bind attaches the configuration to the provided FlagSet. Flags layer on
// top of whatever LoadFile already set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "tick interval in milliseconds")
	fs.IntVar(&c.BlockSize, "block", c.BlockSize, "transition dispatch block size")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial randomization")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
}

// LoadFile overlays values from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("app: parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the simulation cannot start with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.IntervalMS <= 0 {
		return fmt.Errorf("app: invalid tick interval %dms", c.IntervalMS)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("app: invalid block size %d", c.BlockSize)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("app: invalid scale %d", c.Scale)
	}
	return nil
}

// Interval returns the tick interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}
