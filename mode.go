package main

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultAutoInterval is how long automatic mode holds each command.
const DefaultAutoInterval = time.Second

// Default command names.
var DefaultAutoSequence = []string{"blue", "yellow", "white", "green"}

const (
	DefaultManualActive = "blue"
	DefaultManualOff    = "off"
)

// AutoMode cycles through a fixed sequence of commands, transmitting the next
// one each time the interval elapses.  The action input is ignored.
type AutoMode struct {
	tx       CommandTransmitter
	log      logrus.FieldLogger
	sequence []string
	interval time.Duration

	idx     int
	elapsed time.Duration
}

// NewAutoMode returns an automatic mode cycling sequence every interval.
func NewAutoMode(tx CommandTransmitter, log logrus.FieldLogger, sequence []string, interval time.Duration) *AutoMode {
	return &AutoMode{
		tx:       tx,
		log:      log.WithField("Mode", "automatic"),
		sequence: sequence,
		interval: interval,
	}
}

func (*AutoMode) Name() string { return "automatic" }
func (*AutoMode) sealed()      {}

// Enter restarts the cycle and transmits its first command.
func (m *AutoMode) Enter() {
	m.idx = 0
	m.elapsed = 0
	m.log.Infoln("mode entered")
	m.send()
}

func (m *AutoMode) Exit() {
	m.log.Debugln("mode exited")
}

// Tick accumulates dt.  Once a full interval has accumulated the cycle moves
// to the next command; any remainder past the interval is discarded.
func (m *AutoMode) Tick(dt time.Duration) {
	if len(m.sequence) == 0 {
		return
	}
	m.elapsed += dt
	if m.elapsed < m.interval {
		return
	}
	m.elapsed = 0
	m.idx = (m.idx + 1) % len(m.sequence)
	m.send()
}

// OnActionEdge does nothing: automatic mode does not react to the action
// button.
func (*AutoMode) OnActionEdge(bool) {}

// Index returns the position of the last transmitted command.
func (m *AutoMode) Index() int { return m.idx }

func (m *AutoMode) send() {
	if len(m.sequence) == 0 {
		return
	}
	m.tx.Send(m.sequence[m.idx])
}

// ManualMode mirrors the action button: pressed transmits the active
// command, released transmits off.
type ManualMode struct {
	tx     CommandTransmitter
	log    logrus.FieldLogger
	active string
	off    string
}

// NewManualMode returns a manual mode using the given command names.
func NewManualMode(tx CommandTransmitter, log logrus.FieldLogger, active, off string) *ManualMode {
	return &ManualMode{
		tx:     tx,
		log:    log.WithField("Mode", "manual"),
		active: active,
		off:    off,
	}
}

func (*ManualMode) Name() string { return "manual" }
func (*ManualMode) sealed()      {}

// Enter turns the appliance off.
func (m *ManualMode) Enter() {
	m.log.Infoln("mode entered")
	m.tx.Send(m.off)
}

func (m *ManualMode) Exit() {
	m.log.Debugln("mode exited")
}

func (*ManualMode) Tick(time.Duration) {}

// OnActionEdge transmits the active command on press and off on release.
func (m *ManualMode) OnActionEdge(pressed bool) {
	if pressed {
		m.tx.Send(m.active)
		return
	}
	if !m.tx.Send(m.off) {
		m.log.WithField("Command", m.off).Errorln("off command not sent, appliance may still be on")
	}
}
