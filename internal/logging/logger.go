// Package logging defines the Logger used across aaptkit and its
// charmbracelet/log backed implementation for the CLI.
package logging

import (
	"io"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Logger provides structured logging.
// This interface allows library packages to stay independent of the
// logging backend chosen by the binary.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs warning-level messages with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})
}

// noopLogger is a Logger implementation that does nothing.
type noopLogger struct{}

func (n noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n noopLogger) Error(msg string, keysAndValues ...interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return noopLogger{}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return l
}

// charmLogger adapts a charmbracelet logger to Logger.
type charmLogger struct {
	l *clog.Logger
}

func (c charmLogger) Debug(msg string, keysAndValues ...interface{}) { c.l.Debug(msg, keysAndValues...) }
func (c charmLogger) Info(msg string, keysAndValues ...interface{})  { c.l.Info(msg, keysAndValues...) }
func (c charmLogger) Warn(msg string, keysAndValues ...interface{})  { c.l.Warn(msg, keysAndValues...) }
func (c charmLogger) Error(msg string, keysAndValues ...interface{}) { c.l.Error(msg, keysAndValues...) }

// New returns a Logger writing to w at the named level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(w io.Writer, level string) Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "aaptkit",
	})
	l.SetLevel(ParseLevel(level))
	return charmLogger{l: l}
}

// ParseLevel converts a level name to a charmbracelet log level.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
