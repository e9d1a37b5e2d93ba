package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/41008896/treediff/pkg/models"
)

// execute processes every task and returns one slot per task, in task
// order, so the result never depends on the number of workers
func (e *Engine) execute(ctx context.Context, tasks []fileTask) ([]*models.Outcome, error) {
	results := make([]*models.Outcome, len(tasks))

	if e.operation.MaxWorkers <= 1 {
		for i, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = e.process(ctx, t)
			e.progress.Increment(t.path)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.operation.MaxWorkers)

	for i, t := range tasks {
		if gctx.Err() != nil {
			break
		}
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns its slot
			results[i] = e.process(gctx, t)
			e.progress.Increment(t.path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
