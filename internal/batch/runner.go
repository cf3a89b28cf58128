package batch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"kino/internal/game"
	"kino/internal/logging"
	"kino/internal/resolver"
)

// Resolver is the per-item pipeline the runner fans out.
type Resolver interface {
	Resolve(ctx context.Context, kind game.Kind, externalID string) resolver.Result
	ResolveDiscoverPage(ctx context.Context, page int) resolver.Result
}

// Runner executes pipelines over a bounded pool.
type Runner struct {
	resolver Resolver
	workers  int
	logger   *slog.Logger
}

// NewRunner creates a Runner with the given concurrency bound.
func NewRunner(r Resolver, workers int, logger *slog.Logger) *Runner {
	return &Runner{
		resolver: r,
		workers:  workers,
		logger:   logging.NewComponentLogger(logger, "batch"),
	}
}

// Report is the flattened games of a run and the counts behind them.
type Report struct {
	Games   []game.Game
	Summary Summary
}

// Fetch resolves the first limit ids (all when limit is 0) and flattens the
// accepted games in input order. It only fails when ctx is cancelled.
func (r *Runner) Fetch(ctx context.Context, kind game.Kind, ids []string, limit int) (Report, error) {
	ids = Truncate(ids, limit)
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("fetching games",
		logging.String(logging.FieldKind, kind.Name),
		logging.Int("ids", len(ids)),
		logging.Int("workers", r.workers),
	)

	start := time.Now()
	progress := progressTracker(logger, len(ids))
	results, err := Map(ctx, r.workers, ids, func(ctx context.Context, id string) resolver.Result {
		defer progress()
		return r.resolver.Resolve(ctx, kind, id)
	})
	if err != nil {
		return Report{}, fmt.Errorf("fetch %s games: %w", kind.Name, err)
	}
	return r.report(logger, kind.Name, len(ids), results, time.Since(start)), nil
}

// Discover resolves discover pages 1..pages.
func (r *Runner) Discover(ctx context.Context, pages int) (Report, error) {
	pageNumbers := make([]int, 0, max(pages, 0))
	for page := 1; page <= pages; page++ {
		pageNumbers = append(pageNumbers, page)
	}
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("discovering titles",
		logging.Int("pages", pages),
		logging.Int("workers", r.workers),
	)

	start := time.Now()
	progress := progressTracker(logger, pages)
	results, err := Map(ctx, r.workers, pageNumbers, func(ctx context.Context, page int) resolver.Result {
		defer progress()
		return r.resolver.ResolveDiscoverPage(ctx, page)
	})
	if err != nil {
		return Report{}, fmt.Errorf("discover titles: %w", err)
	}
	return r.report(logger, game.Title.Name, pages, results, time.Since(start)), nil
}

func (r *Runner) report(logger *slog.Logger, kind string, requested int, results []resolver.Result, elapsed time.Duration) Report {
	var outcome resolver.Outcome
	games := make([]game.Game, 0, len(results))
	for _, result := range results {
		outcome.Add(result.Outcome)
		games = append(games, result.Games...)
	}
	summary := NewSummary(kind, requested, outcome)
	summary.Duration = elapsed
	summary.DurationMillis = elapsed.Milliseconds()

	logger.Info("batch complete",
		logging.Int("requested", summary.Requested),
		logging.Int("resolved", summary.Resolved),
		logging.Int("accepted", summary.Accepted),
		logging.Int("rejected", outcome.RejectedTotal()),
		logging.Int("upstream_errors", summary.UpstreamErrors),
		logging.Duration("elapsed", elapsed),
	)
	return Report{Games: games, Summary: summary}
}

// progressTracker returns a callback to invoke once per finished item; it
// logs at every 10% of total.
func progressTracker(logger *slog.Logger, total int) func() {
	sampler := logging.NewProgressSampler(10)
	var done atomic.Int64
	return func() {
		n := int(done.Add(1))
		if percent, ok := sampler.Observe(n, total); ok {
			logger.Info("progress",
				logging.Int("done", n),
				logging.Int("total", total),
				logging.Float64("percent", math.Round(percent)),
			)
		}
	}
}

// Truncate returns the first limit ids; limit 0 keeps all of them.
func Truncate(ids []string, limit int) []string {
	if limit <= 0 || limit >= len(ids) {
		return ids
	}
	return ids[:limit]
}
