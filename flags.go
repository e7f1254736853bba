package main

import (
	flag "github.com/spf13/pflag"
)

// overrides are command-line values that take precedence over the config
// file.  Only flags given explicitly are applied.
type overrides struct {
	logLevel  string
	modePin   int
	actionPin int
	rawDir    string
	device    string
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&o.modePin, "mode-pin", 0, "BCM number of the mode button input")
	fs.IntVar(&o.actionPin, "action-pin", 0, "BCM number of the action button input")
	fs.StringVar(&o.rawDir, "raw-dir", "", "Directory holding <command>.raw files")
	fs.StringVar(&o.device, "device", "", "LIRC transmit device")
}

// apply copies explicitly set flags onto c.  The caller re-validates.
func (o *overrides) apply(fs *flag.FlagSet, c *Config) {
	if fs.Changed("log-level") {
		c.LogLevel = o.logLevel
	}
	if fs.Changed("mode-pin") {
		c.ModePin = o.modePin
	}
	if fs.Changed("action-pin") {
		c.ActionPin = o.actionPin
	}
	if fs.Changed("raw-dir") {
		c.CommandDir = o.rawDir
	}
	if fs.Changed("device") {
		c.Device = o.device
	}
}
