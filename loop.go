package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultSettleDelay  = 50 * time.Millisecond
	DefaultPollInterval = 10 * time.Millisecond
)

// LoopConfig holds the control loop's pins and timing.
type LoopConfig struct {
	ModePin        int
	ActionPin      int
	ModeDebounce   time.Duration
	ActionDebounce time.Duration
	Settle         time.Duration
	Poll           time.Duration
}

// ControlLoop polls the mode and action buttons at a fixed cadence and
// drives the active mode.  All of its state is owned by the goroutine
// calling Run.
type ControlLoop struct {
	cfg    LoopConfig
	inputs InputReader
	modes  *ModeRegistry
	log    logrus.FieldLogger

	modeBtn   *Debouncer
	actionBtn *Debouncer

	prevAction bool
	lastSwitch time.Time
	lastTick   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewControlLoop returns a loop reading inputs and driving modes.
func NewControlLoop(cfg LoopConfig, inputs InputReader, modes *ModeRegistry, log logrus.FieldLogger) *ControlLoop {
	return &ControlLoop{
		cfg:       cfg,
		inputs:    inputs,
		modes:     modes,
		log:       log,
		modeBtn:   NewDebouncer(cfg.ModeDebounce),
		actionBtn: NewDebouncer(cfg.ActionDebounce),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Run enters the initial mode and polls until ctx is cancelled or an input
// read fails.  Cancellation is only observed between iterations.  The input
// reader is closed before Run returns on every path; a cancelled run returns
// nil.
func (l *ControlLoop) Run(ctx context.Context) error {
	defer func() {
		if cerr := l.inputs.Close(); cerr != nil {
			l.log.WithError(cerr).Warnln("release inputs")
		}
		l.log.Infoln("inputs released")
	}()

	if err := l.Start(); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			l.log.Infoln("interrupted, stopping")
			return nil
		}
		if err := l.Step(); err != nil {
			return err
		}
		l.sleep(l.cfg.Poll)
	}
}

// Start enters the active mode and seeds both debouncers and the previous
// action level from the current pin levels.
func (l *ControlLoop) Start() error {
	now := l.now()
	modePressed, err := buttonPressed(l.inputs, l.cfg.ModePin)
	if err != nil {
		return err
	}
	actionPressed, err := buttonPressed(l.inputs, l.cfg.ActionPin)
	if err != nil {
		return err
	}
	l.modeBtn.Update(modePressed, now)
	l.prevAction, _ = l.actionBtn.Update(actionPressed, now)
	l.lastTick = now

	m := l.modes.Active()
	l.log.WithField("Mode", m.Name()).Infoln("starting")
	m.Enter()
	return nil
}

// Step runs one iteration: mode button, action button, then a tick of the
// active mode.
func (l *ControlLoop) Step() error {
	now := l.now()
	dt := now.Sub(l.lastTick)
	l.lastTick = now

	modePressed, err := buttonPressed(l.inputs, l.cfg.ModePin)
	if err != nil {
		return err
	}
	if pressed, changed := l.modeBtn.Update(modePressed, now); changed && pressed {
		l.switchMode(now)
		l.sleep(l.cfg.Settle)
	}

	actionPressed, err := buttonPressed(l.inputs, l.cfg.ActionPin)
	if err != nil {
		return err
	}
	if pressed, changed := l.actionBtn.Update(actionPressed, l.now()); changed && pressed != l.prevAction {
		l.prevAction = pressed
		l.log.WithField("Pressed", pressed).Debugln("action button")
		l.modes.Active().OnActionEdge(pressed)
	}

	l.modes.Active().Tick(dt)
	return nil
}

func (l *ControlLoop) switchMode(now time.Time) {
	old := l.modes.Active()
	old.Exit()
	next := l.modes.Cycle()
	fields := logrus.Fields{
		"From": old.Name(),
		"To":   next.Name(),
	}
	if !l.lastSwitch.IsZero() {
		fields["Since"] = now.Sub(l.lastSwitch).String()
	}
	l.log.WithFields(fields).Infoln("mode switched")
	l.lastSwitch = now
	next.Enter()
}

// Active returns the mode currently being driven.
func (l *ControlLoop) Active() Mode { return l.modes.Active() }
