package main

import (
	"time"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{t: t0} }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

// fakeInputs reports raw pin levels.  Pins not in high default to high
// (released).  level, when set, overrides high for every pin.
type fakeInputs struct {
	high   map[int]bool
	errs   map[int]error
	level  func(pin int) bool
	reads  int
	closed int
}

func newFakeInputs() *fakeInputs {
	return &fakeInputs{high: map[int]bool{}, errs: map[int]error{}}
}

func (f *fakeInputs) press(pin int)   { f.high[pin] = false }
func (f *fakeInputs) release(pin int) { f.high[pin] = true }

func (f *fakeInputs) Read(pin int) (bool, error) {
	f.reads++
	if f.closed > 0 {
		return false, ErrInputClosed
	}
	if err := f.errs[pin]; err != nil {
		return false, err
	}
	if f.level != nil {
		return f.level(pin), nil
	}
	if v, ok := f.high[pin]; ok {
		return v, nil
	}
	return true, nil
}

func (f *fakeInputs) Close() error {
	f.closed++
	return nil
}

// recordTx records every command it is asked to send.  Commands in missing
// fail.
type recordTx struct {
	sent    []string
	missing map[string]bool
}

func (r *recordTx) Send(name string) bool {
	r.sent = append(r.sent, name)
	return !r.missing[name]
}

// traceMode appends its hook calls to a shared trace.
type traceMode struct {
	name  string
	trace *[]string
}

func (m *traceMode) Name() string        { return m.name }
func (m *traceMode) Enter()              { *m.trace = append(*m.trace, m.name+".enter") }
func (m *traceMode) Exit()               { *m.trace = append(*m.trace, m.name+".exit") }
func (m *traceMode) Tick(time.Duration)  {}
func (m *traceMode) OnActionEdge(p bool) { *m.trace = append(*m.trace, m.name+".action") }
func (*traceMode) sealed()               {}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
