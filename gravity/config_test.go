package gravity

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative_attract", func(c *Config) { c.AttractForce = -1 }, false},
		{"nan_speed", func(c *Config) { c.MovementSpeed = math.NaN() }, false},
		{"inf_offset", func(c *Config) { c.AnchorOffset[1] = math.Inf(1) }, false},
		{"bad_mode", func(c *Config) { c.Mode = Mode(9) }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, err)
			}
		})
	}
}

func TestCarrierConfigValidate(t *testing.T) {
	cfg := DefaultCarrierConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.SwingMagnitude >= 0 {
		t.Fatalf("default swing magnitude should pull back, got %v", cfg.SwingMagnitude)
	}
	cfg.ActiveDuration = -2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"attraction": ModeAttraction,
		"Repulsion":  ModeRepulsion,
		" hook ":     ModeHook,
		"":           ModeAttraction,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("vortex"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if ModeHook.HUDIndex() != 2 || ModeHook.String() != "hook" {
		t.Fatalf("unexpected hook presentation: %d %q", ModeHook.HUDIndex(), ModeHook)
	}
}
