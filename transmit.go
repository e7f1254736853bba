package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCommandDir = "./raw"
	DefaultDevice     = "/dev/lirc0"
	DefaultIRCtl      = "ir-ctl"
)

// IRTransmitter sends pre-recorded raw pulse files through ir-ctl.  Command
// names resolve to <dir>/<name>.raw.
type IRTransmitter struct {
	dir    string
	device string
	irctl  string
	log    logrus.FieldLogger

	// run executes ir-ctl; swapped out in tests.
	run func(name string, args ...string) error
}

// NewIRTransmitter returns a transmitter for the given command directory and
// LIRC device.
func NewIRTransmitter(dir, device, irctl string, log logrus.FieldLogger) *IRTransmitter {
	return &IRTransmitter{
		dir:    dir,
		device: device,
		irctl:  irctl,
		log:    log,
		run:    runCommand,
	}
}

// Path returns the resource path for a command name.
func (t *IRTransmitter) Path(name string) string {
	return filepath.Join(t.dir, name+".raw")
}

// Send transmits the named command.  It returns false, after logging, when
// the command's resource does not exist.  Once ir-ctl has been invoked the
// command counts as dispatched even if ir-ctl reports a failure.
func (t *IRTransmitter) Send(name string) bool {
	path := t.Path(name)
	lg := t.log.WithFields(logrus.Fields{
		"Command": name,
		"Path":    path,
	})
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrCommandMissing
		}
		lg.WithError(err).Errorln("command not sent")
		return false
	}
	if err := t.run(t.irctl, "-d", t.device, "--send", path); err != nil {
		lg.WithError(err).Warnln("ir-ctl failed")
	}
	lg.Debugln("command sent")
	return true
}

// SendPulses transmits a raw pattern of alternating pulse and space
// durations in microseconds, starting with a pulse.  The pattern is written
// to a temporary file in ir-ctl's text format and removed afterwards.
func (t *IRTransmitter) SendPulses(pattern []int) error {
	if len(pattern) == 0 {
		return errors.New("empty pulse pattern")
	}
	f, err := os.CreateTemp("", "irmode-*.raw")
	if err != nil {
		return fmt.Errorf("create pattern file: %w", err)
	}
	defer os.Remove(f.Name())

	w := bufio.NewWriter(f)
	writePulses(w, pattern)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write pattern file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write pattern file: %w", err)
	}

	if err := t.run(t.irctl, "-d", t.device, "--send", f.Name()); err != nil {
		return fmt.Errorf("send pattern: %w", err)
	}
	t.log.WithField("Length", len(pattern)).Debugln("pattern sent")
	return nil
}

func writePulses(w *bufio.Writer, pattern []int) {
	for i, d := range pattern {
		kind := "pulse"
		if i%2 == 1 {
			kind = "space"
		}
		fmt.Fprintf(w, "%s %d\n", kind, d)
	}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(out.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
