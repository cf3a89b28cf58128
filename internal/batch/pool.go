package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every item with at most workers calls in flight and
// returns the results in input order. fn cannot fail; a cancelled ctx stops
// scheduling new items and is reported once all started calls return.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) R) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]R, len(items))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
