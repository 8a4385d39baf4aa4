package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
)

// Command names the operation the App performs.
type Command string

const (
	CommandRotate Command = "rotate"
	CommandPath   Command = "path"
	CommandBatch  Command = "batch"
)

// MaxPrecision is the largest number of fractional digits accepted.
const MaxPrecision = 17

// RotateArgs holds the already parsed operands of the rotate command.
type RotateArgs struct {
	Points geom.PointSet
	Angle  float64
	Center geom.Point
}

// PathArgs holds the operands of the path command. Data takes precedence
// over File; with neither set the path data is read from stdin.
type PathArgs struct {
	Data      string
	File      string
	Rotate    bool
	Angle     float64
	Center    geom.Point
	Multiline bool
	Absolute  bool
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command Command

	LogFormat string
	LogLevel  string
	Output    format.Kind
	Precision int
	Workers   int

	Rotate     RotateArgs
	Path       PathArgs
	BatchPaths []string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandRotate:
		if len(cfg.Rotate.Points) == 0 {
			return nil, errors.New("rotate requires at least one point")
		}
	case CommandPath:
	case CommandBatch:
		if len(cfg.BatchPaths) == 0 {
			return nil, errors.New("batch requires at least one file or directory")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return nil, fmt.Errorf("precision must be between 0 and %d", MaxPrecision)
	}
	if cfg.Workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}
	if cfg.Output == "" {
		cfg.Output = format.Text
	}

	return &cfg, nil
}
