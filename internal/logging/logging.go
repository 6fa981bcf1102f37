// Package logging builds the diagnostics logger used across the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Level  string
	Format string
	Prefix string
}

// New creates a leveled logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "todo"
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: false,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a string log level, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
