package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/svgrot/internal/format"
)

// Streams bundles the process I/O the App is allowed to touch.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	logger  *slog.Logger
	config  *Config
	encoder *format.Encoder
}

// NewApp is the constructor for the main application. Results are written
// to streams.Out and logs to streams.Err.
func NewApp(streams Streams, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Err, uuid.NewString())
	logger.Debug("Logger configured successfully.", "command", cfg.Command)

	return &App{
		streams: streams,
		logger:  logger,
		config:  cfg,
		encoder: format.NewEncoder(streams.Out, cfg.Output, cfg.Precision),
	}
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
