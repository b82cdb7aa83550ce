package logging

import (
	"io"
	"log/slog"
)

// Error wraps an error for structured logging, tolerating nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// String mirrors slog.String so call sites only import this package.
func String(key, value string) slog.Attr { return slog.String(key, value) }

// Int mirrors slog.Int.
func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithComponent tags a logger with a component attribute that the
// console handler renders as the message prefix.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String("component", component))
}
