// Package logger wraps slog with the few conveniences the service needs.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the application logger. It embeds slog.Logger so handlers and
// services log through the standard structured methods.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text records to stdout at the given level.
// Level follows slog semantics: 0 is info, -4 is debug, 4 is warn.
func New(level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// With returns a Logger whose entries carry the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
