package otel

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger. Setting DEBUG in the environment
// lowers the level without a config change.
func NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
