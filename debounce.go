package main

import "time"

// Debounce windows.  These match the bounce profile of the tactile switches
// the controller was built around; change them through the config file rather
// than here.
const (
	DefaultModeDebounce   = 180 * time.Millisecond
	DefaultActionDebounce = 180 * time.Millisecond
	DefaultScanDebounce   = 250 * time.Millisecond
)

// Debouncer filters a noisy boolean input.  A new level is accepted only once
// it has been sampled continuously for the hold window and at least the hold
// window has passed since the previous accepted change.  The zero value is
// not usable; call NewDebouncer.
type Debouncer struct {
	hold time.Duration

	seeded     bool
	stable     bool
	changedAt  time.Time
	pending    bool
	candidate  bool
	candidateT time.Time
}

// NewDebouncer returns a Debouncer with the given hold window.
func NewDebouncer(hold time.Duration) *Debouncer {
	return &Debouncer{hold: hold}
}

// Update feeds one raw sample taken at now.  It returns the debounced level
// and whether that level changed with this sample.  The first sample seeds
// the stable level and never reports a change.
func (d *Debouncer) Update(sample bool, now time.Time) (stable, changed bool) {
	if !d.seeded {
		d.seeded = true
		d.stable = sample
		d.changedAt = now
		return d.stable, false
	}

	if sample == d.stable {
		d.pending = false
		return d.stable, false
	}

	if !d.pending || d.candidate != sample {
		d.pending = true
		d.candidate = sample
		d.candidateT = now
	}

	if now.Sub(d.candidateT) < d.hold || now.Sub(d.changedAt) < d.hold {
		return d.stable, false
	}

	d.stable = sample
	d.changedAt = now
	d.pending = false
	return d.stable, true
}

// Stable returns the last accepted level.
func (d *Debouncer) Stable() bool { return d.stable }
