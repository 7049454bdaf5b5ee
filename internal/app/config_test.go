package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Fatalf("default grid %dx%d, want 32x32", cfg.Width, cfg.Height)
	}
	if cfg.Interval() != 200*time.Millisecond {
		t.Fatalf("default interval %v, want 200ms", cfg.Interval())
	}
	if cfg.BlockSize != 8 {
		t.Fatalf("default block size %d, want 8", cfg.BlockSize)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegpu.yaml")
	if err := os.WriteFile(path, []byte("width: 64\ninterval_ms: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 {
		t.Fatalf("width = %d, want 64", cfg.Width)
	}
	if cfg.Height != 32 {
		t.Fatalf("height = %d, want 32 (default kept)", cfg.Height)
	}
	if cfg.IntervalMS != 50 {
		t.Fatalf("interval = %dms, want 50", cfg.IntervalMS)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifegpu.yaml")
	if err := os.WriteFile(path, []byte("block_size: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-block", "16"}); err != nil {
		t.Fatal(err)
	}
	if cfg.BlockSize != 16 {
		t.Fatalf("block size = %d, want 16", cfg.BlockSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.IntervalMS = 0 },
		func(c *Config) { c.BlockSize = 0 },
		func(c *Config) { c.Scale = 0 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
