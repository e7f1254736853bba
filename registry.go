package main

// ModeRegistry is the fixed, ordered cycle of modes selected by the mode
// button.  The first mode is active initially.
type ModeRegistry struct {
	modes []Mode
	idx   int
}

// NewModeRegistry builds a registry over modes.  It panics when modes is
// empty since exactly one mode must always be active.
func NewModeRegistry(modes ...Mode) *ModeRegistry {
	if len(modes) == 0 {
		panic("mode registry needs at least one mode")
	}
	return &ModeRegistry{modes: modes}
}

// Active returns the current mode.
func (r *ModeRegistry) Active() Mode { return r.modes[r.idx] }

// Index returns the position of the current mode in the cycle.
func (r *ModeRegistry) Index() int { return r.idx }

// Len returns the number of modes in the cycle.
func (r *ModeRegistry) Len() int { return len(r.modes) }

// All returns the modes in cycle order.
func (r *ModeRegistry) All() []Mode {
	return append([]Mode(nil), r.modes...)
}

// Cycle advances to the next mode, wrapping at the end, and returns it.  It
// does not call Exit or Enter; the control loop owns that ordering.
func (r *ModeRegistry) Cycle() Mode {
	r.idx = (r.idx + 1) % len(r.modes)
	return r.modes[r.idx]
}
