package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultReleaseGap is the pause after the action button is released before
// the scanner arms for the next variant.
const DefaultReleaseGap = 150 * time.Millisecond

// DefaultScanBase is a captured raw frame of the appliance remote, in
// microseconds, starting with a pulse.
var DefaultScanBase = []int{
	1400, 1400, 700, 700, 700, 1400, 700, 2800,
	700, 2100, 1400, 700, 700, 700, 700, 1400,
	1400, 2800, 1400, 2800, 700,
}

// DefaultScanValues are the candidate durations substituted into the base
// frame.
var DefaultScanValues = []int{700, 1400, 2100, 2800}

// Variant is the base frame with one position replaced.
type Variant struct {
	Index   int
	Value   int
	Pattern []int
}

// Variants returns every single-position substitution of base by a value
// from values, skipping substitutions that would leave the frame unchanged.
// Variants are ordered by position, then by value order.
func Variants(base, values []int) []Variant {
	var out []Variant
	for i := range base {
		for _, v := range values {
			if base[i] == v {
				continue
			}
			p := make([]int, len(base))
			copy(p, base)
			p[i] = v
			out = append(out, Variant{Index: i, Value: v, Pattern: p})
		}
	}
	return out
}

// PulseSender transmits a raw pulse/space pattern.
type PulseSender interface {
	SendPulses(pattern []int) error
}

// Scanner steps through frame variants, sending one per press of the action
// button so the operator can watch which one the appliance reacts to.
type Scanner struct {
	inputs InputReader
	tx     PulseSender
	pin    int
	cfg    ScanConfig
	poll   time.Duration
	log    logrus.FieldLogger

	btn   *Debouncer
	now   func() time.Time
	sleep func(time.Duration)
}

// NewScanner returns a scanner reading the action button on pin.
func NewScanner(cfg ScanConfig, inputs InputReader, pin int, tx PulseSender, log logrus.FieldLogger) *Scanner {
	return &Scanner{
		inputs: inputs,
		tx:     tx,
		pin:    pin,
		cfg:    cfg,
		poll:   DefaultPollInterval,
		log:    log,
		btn:    NewDebouncer(cfg.Debounce()),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Run walks every variant until they are exhausted or ctx is cancelled.  It
// returns the number of variants sent.  Like the control loop it releases the
// inputs before returning, and a cancelled scan is not an error.
func (s *Scanner) Run(ctx context.Context) (int, error) {
	defer func() {
		if err := s.inputs.Close(); err != nil {
			s.log.WithError(err).Warnln("release inputs")
		}
		s.log.Infoln("scanner stopped")
	}()

	variants := Variants(s.cfg.Base, s.cfg.Values)
	s.log.WithField("Variants", len(variants)).Infoln("scanner started, press the action button to send each variant")

	sent := 0
	for _, v := range variants {
		lg := s.log.WithFields(logrus.Fields{
			"Index": v.Index,
			"Value": v.Value,
		})
		lg.Infoln("ready to test")

		if ok, err := s.waitFor(ctx, true); !ok {
			return sent, err
		}
		lg.Infoln("sending variant")
		if err := s.tx.SendPulses(v.Pattern); err != nil {
			lg.WithError(err).Errorln("variant not sent")
		} else {
			sent++
		}
		if ok, err := s.waitFor(ctx, false); !ok {
			return sent, err
		}
		s.sleep(s.cfg.ReleaseGap())
	}
	return sent, nil
}

// waitFor polls until the debounced button level equals pressed.  It returns
// false when ctx is cancelled (with a nil error) or the input fails.
func (s *Scanner) waitFor(ctx context.Context, pressed bool) (bool, error) {
	for {
		if ctx.Err() != nil {
			return false, nil
		}
		raw, err := buttonPressed(s.inputs, s.pin)
		if err != nil {
			return false, err
		}
		if level, _ := s.btn.Update(raw, s.now()); level == pressed {
			return true, nil
		}
		s.sleep(s.poll)
	}
}
