package main

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandMissing is reported when a command has no .raw resource in
	// the command directory.
	ErrCommandMissing = errors.New("command resource not found")
	// ErrInputClosed is returned by readers used after Close.
	ErrInputClosed = errors.New("input reader closed")
	// ErrUnknownPin is returned when a pin was never registered with the reader.
	ErrUnknownPin = errors.New("unknown input pin")
)

// InputError wraps a fault reading a digital input.  The control loop treats
// every InputError as fatal: an undefined pin level cannot be reasoned about.
type InputError struct {
	Pin int
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read GPIO%d: %v", e.Pin, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ConfigError) Error() string {
	msg := "config: " + e.Field
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	return msg + ": " + e.Message
}
