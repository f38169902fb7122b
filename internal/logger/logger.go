// Package logger wraps logrus so the rest of the codebase never imports it
// directly. A fullscreen TUI owns stdout and stderr, so diagnostics go to a
// file (or nowhere) — never to the terminal the grid is drawn on.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Aliases expose the underlying types without leaking the logrus import.
type (
	Logger = logrus.Logger
	Entry  = logrus.Entry
	Fields = logrus.Fields
)

var root = logrus.New()

func init() {
	// Until SetupFile runs, drop everything: writing to stderr would
	// corrupt the alternate-screen TUI.
	root.SetOutput(io.Discard)
	root.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
}

// SetupFile redirects all logging to the given path, creating parent
// directories as needed. Returns a closer for the underlying file.
func SetupFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	root.SetOutput(f)
	return f, nil
}

// SetLevel adjusts the root logger's verbosity from a string level name.
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	root.SetLevel(parsed)
	return nil
}

// Named returns an entry tagged with a component field.
func Named(component string) *Entry {
	e := logrus.NewEntry(root)
	if component != "" {
		e = e.WithField("component", component)
	}
	return e
}
