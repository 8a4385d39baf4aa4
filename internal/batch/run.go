package batch

import (
	"context"
	"fmt"

	"github.com/specialistvlad/svgrot/internal/ctxlog"
	"github.com/specialistvlad/svgrot/internal/format"
	"golang.org/x/sync/errgroup"
)

// Run executes the plan with at most workers jobs in flight. Results are
// returned in plan order. The first failing job cancels the remaining ones.
func Run(ctx context.Context, plan *Plan, workers, precision int) ([]format.Result, error) {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	results := make([]format.Result, len(plan.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range plan.Jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Debug("Running job.", "job", job.Name, "kind", job.Kind, "source", job.Source)

			res, err := job.Execute(precision)
			if err != nil {
				return fmt.Errorf("%s %q failed: %w", job.Kind, job.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("All jobs finished.", "count", len(results))
	return results, nil
}
