package main

import (
	"testing"

	flag "github.com/spf13/pflag"
)

func TestOverrides_OnlyChangedApplied(t *testing.T) {
	var o overrides
	fs := flag.NewFlagSet("irmode", flag.ContinueOnError)
	o.register(fs)
	if err := fs.Parse([]string{"--mode-pin=5", "--raw-dir", "/tmp/raw", "--log-level=debug"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := DefaultConfig()
	o.apply(fs, &c)

	if c.ModePin != 5 || c.CommandDir != "/tmp/raw" || c.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", c)
	}
	if c.ActionPin != 24 || c.Device != DefaultDevice {
		t.Errorf("unset flags overwrote config: action=%d device=%q", c.ActionPin, c.Device)
	}
}

func TestOverrides_ExplicitZeroPin(t *testing.T) {
	var o overrides
	fs := flag.NewFlagSet("irmode", flag.ContinueOnError)
	o.register(fs)
	if err := fs.Parse([]string{"--action-pin=0"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := DefaultConfig()
	o.apply(fs, &c)
	if c.ActionPin != 0 {
		t.Errorf("ActionPin = %d, want explicit 0", c.ActionPin)
	}
}
