package main

import "time"

// CommandTransmitter sends a named infrared command to the appliance.  Send
// reports whether the command was dispatched; false means the command could
// not be resolved and the attempt has been abandoned.  Callers never retry.
type CommandTransmitter interface {
	Send(name string) bool
}

// Mode is one of the controller's operating modes.  The set is closed:
// AutoMode and ManualMode are the only implementations.
type Mode interface {
	Name() string
	Enter()
	Exit()
	Tick(dt time.Duration)
	OnActionEdge(pressed bool)

	sealed()
}

// ModeDescriptor is a static description of a mode, used for logging and by
// the CLI when listing the cycle.
type ModeDescriptor struct {
	Name     string  
	Sequence []string // commands cycled, in order
	Interval time.Duration
}

// Describe returns the descriptor for m.
func Describe(m Mode) ModeDescriptor {
	switch m := m.(type) {
	case *AutoMode:
		seq := make([]string, len(m.sequence))
		copy(seq, m.sequence)
		return ModeDescriptor{Name: m.Name(), Sequence: seq, Interval: m.interval}
	case *ManualMode:
		return ModeDescriptor{Name: m.Name(), Sequence: []string{m.active, m.off}}
	default:
		panic("unknown mode type")
	}
}
