package app

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger instance tagged with
// runID. It does not set the global logger, allowing for isolated logger
// instances.
func newLogger(levelStr, formatStr string, w io.Writer, runID string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With("run_id", runID)
}
