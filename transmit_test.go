package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type runCall struct {
	name string
	args []string
}

func newTestTransmitter(t *testing.T) (*IRTransmitter, *test.Hook, *[]runCall) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blue.raw"), []byte("pulse 700\n"), 0644); err != nil {
		t.Fatal(err)
	}
	log, hook := test.NewNullLogger()
	tx := NewIRTransmitter(dir, "/dev/lirc0", "ir-ctl", log)
	var calls []runCall
	tx.run = func(name string, args ...string) error {
		calls = append(calls, runCall{name: name, args: args})
		return nil
	}
	return tx, hook, &calls
}

func TestIRTransmitter_SendPresent(t *testing.T) {
	tx, _, calls := newTestTransmitter(t)

	if !tx.Send("blue") {
		t.Fatal("Send(blue) = false, want true")
	}
	if len(*calls) != 1 {
		t.Fatalf("ir-ctl invoked %d times, want 1", len(*calls))
	}
	c := (*calls)[0]
	want := []string{"-d", "/dev/lirc0", "--send", tx.Path("blue")}
	if c.name != "ir-ctl" || !equalStrings(c.args, want) {
		t.Errorf("invoked %s %v, want ir-ctl %v", c.name, c.args, want)
	}
}

func TestIRTransmitter_SendMissing(t *testing.T) {
	tx, hook, calls := newTestTransmitter(t)

	if tx.Send("green") {
		t.Fatal("Send(green) = true for a missing resource")
	}
	if len(*calls) != 0 {
		t.Errorf("ir-ctl invoked for a missing resource")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error entry, got %v", entry)
	}
	err, _ := entry.Data[logrus.ErrorKey].(error)
	if !errors.Is(err, ErrCommandMissing) {
		t.Errorf("logged error = %v, want ErrCommandMissing", err)
	}
	if !strings.HasSuffix(entry.Data["Path"].(string), "green.raw") {
		t.Errorf("Path field = %v", entry.Data["Path"])
	}
}

func TestIRTransmitter_IRCtlFailureStillDispatched(t *testing.T) {
	tx, hook, _ := newTestTransmitter(t)
	tx.run = func(string, ...string) error { return errors.New("exit status 1") }

	if !tx.Send("blue") {
		t.Fatal("Send(blue) = false, want true once ir-ctl was invoked")
	}
	found := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			found = true
		}
	}
	if !found {
		t.Error("expected ir-ctl failure to be logged as a warning")
	}
}

func TestIRTransmitter_SendPulses(t *testing.T) {
	tx, _, _ := newTestTransmitter(t)
	var path, content string
	tx.run = func(name string, args ...string) error {
		path = args[len(args)-1]
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		content = string(b)
		return nil
	}

	if err := tx.SendPulses([]int{1400, 700, 2100}); err != nil {
		t.Fatalf("SendPulses: %v", err)
	}
	want := "pulse 1400\nspace 700\npulse 2100\n"
	if content != want {
		t.Errorf("pattern file = %q, want %q", content, want)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("pattern file %s not removed", path)
	}
}

func TestIRTransmitter_SendPulsesEmpty(t *testing.T) {
	tx, _, calls := newTestTransmitter(t)
	if err := tx.SendPulses(nil); err == nil {
		t.Fatal("expected error for empty pattern")
	}
	if len(*calls) != 0 {
		t.Error("ir-ctl invoked for empty pattern")
	}
}
