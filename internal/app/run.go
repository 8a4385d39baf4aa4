package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/svgrot/internal/batch"
	"github.com/specialistvlad/svgrot/internal/ctxlog"
	"github.com/specialistvlad/svgrot/internal/format"
	"github.com/specialistvlad/svgrot/internal/fsutil"
	"github.com/specialistvlad/svgrot/internal/geom"
	"github.com/specialistvlad/svgrot/internal/svgpath"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	switch a.config.Command {
	case CommandRotate:
		err = a.runRotate(ctx)
	case CommandPath:
		err = a.runPath(ctx)
	case CommandBatch:
		err = a.runBatch(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "failed", err != nil)
	return err
}

func (a *App) runRotate(ctx context.Context) error {
	args := a.config.Rotate
	logger := ctxlog.FromContext(ctx)
	logger.Info("Rotating points.", "count", len(args.Points), "angle", args.Angle, "center_x", args.Center.X, "center_y", args.Center.Y)

	rotated := args.Points.Rotate(args.Angle, args.Center)
	if !rotated.IsFinite() {
		return geom.ErrOutOfRange
	}
	return a.encoder.EncodeOne(format.Result{Points: rotated})
}

func (a *App) runPath(ctx context.Context) error {
	args := a.config.Path
	logger := ctxlog.FromContext(ctx)

	data := args.Data
	if data == "" {
		source := args.File
		if source == "" {
			source = fsutil.StdinName
		}
		logger.Debug("Reading path data.", "source", source)
		raw, err := fsutil.ReadFile(source, a.streams.In)
		if err != nil {
			return fmt.Errorf("failed to read path data: %w", err)
		}
		data = string(raw)
	}

	data = strings.TrimSpace(data)
	if data == "" {
		return svgpath.ErrNoData
	}

	opts := svgpath.Options{
		Precision: a.config.Precision,
		Multiline: args.Multiline,
		Absolute:  args.Absolute,
	}
	if args.Rotate {
		opts.Rotation = &svgpath.Rotation{Angle: args.Angle, Center: args.Center}
	}
	logger.Info("Reformatting path.", "bytes", len(data), "rotate", args.Rotate, "absolute", args.Absolute)

	d, err := svgpath.Reformat(data, opts)
	if err != nil {
		return fmt.Errorf("failed to reformat path: %w", err)
	}
	return a.encoder.EncodeOne(format.Result{Path: d})
}

func (a *App) runBatch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	plan, err := batch.Load(ctx, a.config.BatchPaths...)
	if err != nil {
		return err
	}
	if len(plan.Jobs) == 0 {
		logger.Warn("No jobs found in batch, nothing to do.")
		return nil
	}

	logger.Info("Starting batch.", "jobs", len(plan.Jobs), "workers", a.config.Workers)
	results, err := batch.Run(ctx, plan, a.config.Workers, a.config.Precision)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	logger.Info("Batch finished.", "jobs", len(results))

	return a.encoder.EncodeAll(results)
}
