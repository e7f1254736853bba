package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// DefaultConfigPath is where install puts the config file.
const DefaultConfigPath = "/etc/irmode.conf"

// Config is the controller configuration, decoded from a TOML file.  Pins use
// BCM numbering.  Durations are in milliseconds; zero means the default.
type Config struct {
	ModePin   int
	ActionPin int

	CommandDir string
	Device     string
	IRCtl      string

	ModeDebounceMs   int64
	ActionDebounceMs int64
	SettleMs         int64
	PollIntervalMs   int64

	AutoIntervalMs int64
	AutoSequence   []string
	ManualActive   string
	ManualOff      string

	LogLevel string
	LogFile  string

	Scan ScanConfig
}

// ScanConfig configures the diagnostic variant scanner.
type ScanConfig struct {
	DebounceMs   int64
	ReleaseGapMs int64
	Base         []int
	Values       []int
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		ModePin:          23,
		ActionPin:        24,
		CommandDir:       DefaultCommandDir,
		Device:           DefaultDevice,
		IRCtl:            DefaultIRCtl,
		ModeDebounceMs:   DefaultModeDebounce.Milliseconds(),
		ActionDebounceMs: DefaultActionDebounce.Milliseconds(),
		SettleMs:         DefaultSettleDelay.Milliseconds(),
		PollIntervalMs:   DefaultPollInterval.Milliseconds(),
		AutoIntervalMs:   DefaultAutoInterval.Milliseconds(),
		AutoSequence:     append([]string(nil), DefaultAutoSequence...),
		ManualActive:     DefaultManualActive,
		ManualOff:        DefaultManualOff,
		LogLevel:         "info",
		Scan: ScanConfig{
			DebounceMs:   DefaultScanDebounce.Milliseconds(),
			ReleaseGapMs: DefaultReleaseGap.Milliseconds(),
			Base:         append([]int(nil), DefaultScanBase...),
			Values:       append([]int(nil), DefaultScanValues...),
		},
	}
}

// LoadConfig reads the TOML file at path on top of the defaults.  A missing
// file is not an error: the defaults are returned as-is and nothing is
// written.  The result has been validated.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate fills unset fields with defaults and checks the rest.
func (c *Config) Validate() error {
	def := DefaultConfig()
	setDefault := func(v *int64, d int64) {
		if *v == 0 {
			*v = d
		}
	}
	setDefault(&c.ModeDebounceMs, def.ModeDebounceMs)
	setDefault(&c.ActionDebounceMs, def.ActionDebounceMs)
	setDefault(&c.SettleMs, def.SettleMs)
	setDefault(&c.PollIntervalMs, def.PollIntervalMs)
	setDefault(&c.AutoIntervalMs, def.AutoIntervalMs)
	setDefault(&c.Scan.DebounceMs, def.Scan.DebounceMs)
	setDefault(&c.Scan.ReleaseGapMs, def.Scan.ReleaseGapMs)
	if c.Device == "" {
		c.Device = def.Device
	}
	if c.IRCtl == "" {
		c.IRCtl = def.IRCtl
	}
	if c.ManualActive == "" {
		c.ManualActive = def.ManualActive
	}
	if c.ManualOff == "" {
		c.ManualOff = def.ManualOff
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Scan.Base) == 0 {
		c.Scan.Base = def.Scan.Base
	}
	if len(c.Scan.Values) == 0 {
		c.Scan.Values = def.Scan.Values
	}

	if c.ModePin < 0 {
		return &ConfigError{Field: "ModePin", Value: c.ModePin, Message: "must not be negative"}
	}
	if c.ActionPin < 0 {
		return &ConfigError{Field: "ActionPin", Value: c.ActionPin, Message: "must not be negative"}
	}
	if c.ModePin == c.ActionPin {
		return &ConfigError{Field: "ActionPin", Value: c.ActionPin, Message: "must differ from ModePin"}
	}
	if strings.TrimSpace(c.CommandDir) == "" {
		return &ConfigError{Field: "CommandDir", Message: "must not be empty"}
	}
	if len(c.AutoSequence) == 0 {
		return &ConfigError{Field: "AutoSequence", Message: "needs at least one command"}
	}
	for i, name := range c.AutoSequence {
		if strings.TrimSpace(name) == "" || strings.ContainsRune(name, '/') {
			return &ConfigError{Field: fmt.Sprintf("AutoSequence[%d]", i), Value: name, Message: "invalid command name"}
		}
	}
	for field, v := range map[string]int64{
		"ModeDebounceMs":    c.ModeDebounceMs,
		"ActionDebounceMs":  c.ActionDebounceMs,
		"SettleMs":          c.SettleMs,
		"PollIntervalMs":    c.PollIntervalMs,
		"AutoIntervalMs":    c.AutoIntervalMs,
		"Scan.DebounceMs":   c.Scan.DebounceMs,
		"Scan.ReleaseGapMs": c.Scan.ReleaseGapMs,
	} {
		if v < 0 {
			return &ConfigError{Field: field, Value: v, Message: "must not be negative"}
		}
	}
	for i, v := range c.Scan.Base {
		if v <= 0 {
			return &ConfigError{Field: fmt.Sprintf("Scan.Base[%d]", i), Value: v, Message: "must be positive"}
		}
	}
	for i, v := range c.Scan.Values {
		if v <= 0 {
			return &ConfigError{Field: fmt.Sprintf("Scan.Values[%d]", i), Value: v, Message: "must be positive"}
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &ConfigError{Field: "LogLevel", Value: c.LogLevel, Message: err.Error()}
	}
	return nil
}

func ms(v int64) time.Duration { return time.Duration(v) * time.Millisecond }

// Loop returns the control loop settings.
func (c Config) Loop() LoopConfig {
	return LoopConfig{
		ModePin:        c.ModePin,
		ActionPin:      c.ActionPin,
		ModeDebounce:   ms(c.ModeDebounceMs),
		ActionDebounce: ms(c.ActionDebounceMs),
		Settle:         ms(c.SettleMs),
		Poll:           ms(c.PollIntervalMs),
	}
}

func (c Config) AutoInterval() time.Duration { return ms(c.AutoIntervalMs) }

func (c ScanConfig) Debounce() time.Duration   { return ms(c.DebounceMs) }
func (c ScanConfig) ReleaseGap() time.Duration { return ms(c.ReleaseGapMs) }
