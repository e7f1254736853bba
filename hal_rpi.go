//go:build linux && (arm || arm64) && !disablegpio

// This file provides the Raspberry Pi GPIO backend using the periph.io
// library.  When building for other platforms, or with the build tag
// "disablegpio", hal.go is used instead.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	// Use the new periph module layout.  See https://periph.io/news/2020/a_new_start/
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// initGPIO initialises periph host state.  Returning an error here prevents
// the controller from starting.
func initGPIO() error {
	_, err := host.Init()
	return err
}

type periphInputs struct {
	pins   map[int]gpio.PinIO
	closed bool
}

// openInputs configures each pin, addressed by BCM number, as an input with
// the internal pull-up enabled.  On failure every pin configured so far is
// released again.
func openInputs(log logrus.FieldLogger, pins ...int) (InputReader, error) {
	in := &periphInputs{pins: make(map[int]gpio.PinIO, len(pins))}
	for _, pin := range pins {
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", pin))
		if p == nil {
			in.Close()
			return nil, fmt.Errorf("GPIO%d: %w", pin, ErrUnknownPin)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			in.Close()
			return nil, fmt.Errorf("configure GPIO%d: %w", pin, err)
		}
		in.pins[pin] = p
		log.WithFields(logrus.Fields{
			"Pin":  pin,
			"Name": p.Name(),
		}).Debugln("input registered")
	}
	return in, nil
}

func (in *periphInputs) Read(pin int) (bool, error) {
	if in.closed {
		return false, ErrInputClosed
	}
	p, ok := in.pins[pin]
	if !ok {
		return false, ErrUnknownPin
	}
	return p.Read() == gpio.High, nil
}

// Close halts every registered pin.  It is idempotent.
func (in *periphInputs) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	var first error
	for pin, p := range in.pins {
		if err := p.Halt(); err != nil && first == nil {
			first = fmt.Errorf("release GPIO%d: %w", pin, err)
		}
	}
	return first
}
