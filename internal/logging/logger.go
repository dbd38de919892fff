// Package logging builds the leveled stderr logger shared by all packages.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "gorep"

// New returns a logger writing to w at the given level name
// (debug, info, warn, error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	}), nil
}

// ParseLevel converts a level name into a log.Level. An empty name selects info.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	return lvl, nil
}

// Discard returns a logger that drops everything. Intended for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
