package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// newLogger builds the process logger.  Entries go to stderr and, when
// LogFile is set, are also appended to that file.  Colours are only used when
// stderr is a terminal.  The returned closer releases the log file.
func newLogger(cfg Config) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	tty := term.IsTerminal(int(os.Stderr.Fd()))
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: !tty || cfg.LogFile != "",
		FullTimestamp: true,
	})

	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(io.MultiWriter(os.Stderr, f))
		closer = f
	} else {
		l.SetOutput(os.Stderr)
	}
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
