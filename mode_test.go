package main

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestAutoMode_CyclesEverySecond(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewAutoMode(tx, log, []string{"blue", "yellow", "white", "green"}, time.Second)

	m.Enter()
	for i := 0; i < 6; i++ {
		m.Tick(time.Second)
	}

	want := []string{"blue", "yellow", "white", "green", "blue", "yellow", "white"}
	if !equalStrings(tx.sent, want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
	if m.Index() != 2 {
		t.Errorf("Index() = %d, want 2", m.Index())
	}
}

func TestAutoMode_EnterRestartsCycle(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewAutoMode(tx, log, []string{"blue", "yellow", "white"}, time.Second)

	m.Enter()
	m.Tick(time.Second)
	m.Tick(600 * time.Millisecond)
	m.Exit()
	m.Enter()
	m.Tick(600 * time.Millisecond)

	want := []string{"blue", "yellow", "blue"}
	if !equalStrings(tx.sent, want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
}

func TestAutoMode_RemainderDiscarded(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewAutoMode(tx, log, []string{"blue", "yellow", "white"}, time.Second)

	m.Enter()
	m.Tick(1500 * time.Millisecond)
	m.Tick(500 * time.Millisecond)

	want := []string{"blue", "yellow"}
	if !equalStrings(tx.sent, want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
}

func TestAutoMode_IgnoresActionButton(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewAutoMode(tx, log, DefaultAutoSequence, time.Second)

	m.Enter()
	m.OnActionEdge(true)
	m.OnActionEdge(false)

	if !equalStrings(tx.sent, []string{"blue"}) {
		t.Fatalf("sent %v, want only the enter command", tx.sent)
	}
}

func TestAutoMode_FailedSendRetriedNextCycle(t *testing.T) {
	tx := &recordTx{missing: map[string]bool{"yellow": true}}
	log, _ := test.NewNullLogger()
	m := NewAutoMode(tx, log, []string{"blue", "yellow"}, time.Second)

	m.Enter()
	for i := 0; i < 3; i++ {
		m.Tick(time.Second)
	}
	want := []string{"blue", "yellow", "blue", "yellow"}
	if !equalStrings(tx.sent, want) {
		t.Fatalf("sent %v, want %v", tx.sent, want)
	}
}

func TestManualMode_PressRelease(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewManualMode(tx, log, "blue", "off")

	m.OnActionEdge(true)
	m.OnActionEdge(false)

	if !equalStrings(tx.sent, []string{"blue", "off"}) {
		t.Fatalf("sent %v, want [blue off]", tx.sent)
	}
}

func TestManualMode_EnterSendsOff(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()
	m := NewManualMode(tx, log, "blue", "off")

	m.Enter()
	m.Tick(5 * time.Second)

	if !equalStrings(tx.sent, []string{"off"}) {
		t.Fatalf("sent %v, want [off]", tx.sent)
	}
}

func TestManualMode_MissingOffLogged(t *testing.T) {
	tx := &recordTx{missing: map[string]bool{"off": true}}
	log, hook := test.NewNullLogger()
	m := NewManualMode(tx, log, "blue", "off")

	m.OnActionEdge(true)
	m.OnActionEdge(false)

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error entry, got %v", entry)
	}
	if entry.Data["Command"] != "off" {
		t.Errorf("Command field = %v, want off", entry.Data["Command"])
	}
}

func TestDescribe(t *testing.T) {
	tx := &recordTx{}
	log, _ := test.NewNullLogger()

	auto := Describe(NewAutoMode(tx, log, []string{"blue", "green"}, 2*time.Second))
	if auto.Name != "automatic" || auto.Interval != 2*time.Second || !equalStrings(auto.Sequence, []string{"blue", "green"}) {
		t.Errorf("automatic descriptor = %+v", auto)
	}
	manual := Describe(NewManualMode(tx, log, "red", "off"))
	if manual.Name != "manual" || !equalStrings(manual.Sequence, []string{"red", "off"}) {
		t.Errorf("manual descriptor = %+v", manual)
	}
}
