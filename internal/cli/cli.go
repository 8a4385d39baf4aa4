package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/svgrot/internal/app"
	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/geom"
)

// Exit codes.
const (
	ExitInvalidInput = 1
	ExitUsage        = 2
)

// errNotNumbers is shown when the angle or separate center coordinates are
// not numbers.
const errNotNumbers = "Angle and center coordinates must be numbers."

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(msg string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(msg, args...)}
}

func inputError(err error) *ExitError {
	return &ExitError{Code: ExitInvalidInput, Message: err.Error(), Err: err}
}

const usageText = `
svgrot - rotate 2D points and reformat SVG path data.

Usage:
  svgrot [options] rotate POINTS ANGLE CENTER
  svgrot [options] rotate POINTS ANGLE CX CY
  svgrot [options] path [path options] [PATH_DATA]
  svgrot [options] batch FILE_OR_DIR...

Arguments:
  POINTS
    A single point "(x,y)" or a list "[(x,y) (x,y)]".
  ANGLE
    Rotation in degrees. Positive angles turn counterclockwise.
  CENTER
    The pivot as "(cx,cy)", or two separate numbers CX CY.
  FILE_OR_DIR
    A batch .hcl file or a directory containing .hcl files.

Options:
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("svgrot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text', 'json' or 'yaml'.")
	oFlag := flagSet.String("o", "", "Result format (shorthand).")
	precisionFlag := flagSet.Int("precision", format.DefaultPrecision, "Fractional digits kept before trailing zeros are trimmed.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers for batch jobs.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	outputName := *outputFlag
	if *oFlag != "" {
		outputName = *oFlag
	}
	outputKind, err := format.ParseKind(outputName)
	if err != nil {
		return nil, false, usageError("invalid output: %s", err)
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		Command:   app.Command(flagSet.Arg(0)),
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Output:    outputKind,
		Precision: *precisionFlag,
		Workers:   *workersFlag,
	}
	rest := flagSet.Args()[1:]

	switch cfg.Command {
	case app.CommandRotate:
		if err := parseRotate(rest, &cfg); err != nil {
			return nil, false, err
		}
	case app.CommandPath:
		shouldExit, err := parsePath(rest, output, &cfg)
		if err != nil || shouldExit {
			return nil, shouldExit, err
		}
	case app.CommandBatch:
		cfg.BatchPaths = rest
	default:
		return nil, false, usageError("unknown command %q: must be 'rotate', 'path' or 'batch'", cfg.Command)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "command", config.Command)
	return config, false, nil
}

// parseRotate reads the positional rotate operands. They are not run through
// a FlagSet so that negative angles such as -90 are not taken for flags.
func parseRotate(args []string, cfg *app.Config) error {
	if len(args) != 3 && len(args) != 4 {
		return usageError("rotate expects POINTS ANGLE CENTER or POINTS ANGLE CX CY, got %d arguments", len(args))
	}

	points, err := geom.ParsePoints(args[0])
	if err != nil {
		return inputError(err)
	}

	angle, ok := parseNumber(args[1])
	if !ok {
		return &ExitError{Code: ExitInvalidInput, Message: errNotNumbers}
	}

	var center geom.Point
	if len(args) == 3 {
		center, err = geom.ParseCenter(args[2])
		if err != nil {
			return inputError(err)
		}
	} else {
		cx, okX := parseNumber(args[2])
		cy, okY := parseNumber(args[3])
		if !okX || !okY {
			return &ExitError{Code: ExitInvalidInput, Message: errNotNumbers}
		}
		center = geom.Pt(cx, cy)
	}

	cfg.Rotate = app.RotateArgs{Points: points, Angle: angle, Center: center}
	return nil
}

func parsePath(args []string, output io.Writer, cfg *app.Config) (bool, error) {
	flagSet := flag.NewFlagSet("svgrot path", flag.ContinueOnError)
	flagSet.SetOutput(output)

	fileFlag := flagSet.String("f", "", "Read path data from FILE. .gz, .svgz and .zst files are decompressed; '-' is stdin.")
	angleFlag := flagSet.String("angle", "", "Rotate the path by this many degrees.")
	centerFlag := flagSet.String("center", "(0,0)", "Pivot for -angle as \"(cx,cy)\".")
	multilineFlag := flagSet.Bool("multiline", false, "Write one command per line.")
	absoluteFlag := flagSet.Bool("absolute", false, "Convert relative commands to absolute ones.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	pathArgs := app.PathArgs{
		Data:      strings.Join(flagSet.Args(), " "),
		File:      *fileFlag,
		Multiline: *multilineFlag,
		Absolute:  *absoluteFlag,
	}
	if pathArgs.Data != "" && pathArgs.File != "" {
		return false, usageError("path accepts PATH_DATA or -f FILE, not both")
	}

	if *angleFlag != "" {
		angle, ok := parseNumber(*angleFlag)
		if !ok {
			return false, &ExitError{Code: ExitInvalidInput, Message: errNotNumbers}
		}
		center, err := geom.ParseCenter(*centerFlag)
		if err != nil {
			return false, inputError(err)
		}
		pathArgs.Rotate = true
		pathArgs.Angle = angle
		pathArgs.Center = center
	}

	cfg.Path = pathArgs
	return false, nil
}

// parseNumber parses a finite number.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
