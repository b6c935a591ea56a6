// Package logger builds the structured loggers used by the binaries.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Prefix string
}

// New creates a logger writing to w.
// An unknown level falls back to info and is reported through the logger itself.
func New(w io.Writer, opts Options) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           log.InfoLevel,
	})

	if opts.Level == "" {
		return l
	}
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		l.Warn("unknown log level, using info", "level", opts.Level)
		return l
	}
	l.SetLevel(level)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile creates a logger appending to the file at path.
// An empty path yields a discarding logger. The returned close function
// must be called on shutdown.
func OpenFile(path string, opts Options) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opts), f.Close, nil
}
