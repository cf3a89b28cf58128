package resolver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"kino/internal/game"
	"kino/internal/logging"
	"kino/internal/tmdb"
)

const (
	eventUpstreamError = "tmdb_request_failed"
	eventNoMatch       = "tmdb_no_match"
	eventRejected      = "game_rejected"
)

// Resolver builds accepted games from TMDB. It holds no per-call state and is
// safe for concurrent use.
type Resolver struct {
	api     tmdb.API
	builder *game.Builder
	logger  *slog.Logger
}

// New creates a Resolver. A nil logger discards output.
func New(api tmdb.API, builder *game.Builder, logger *slog.Logger) *Resolver {
	return &Resolver{
		api:     api,
		builder: builder,
		logger:  logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve looks up externalID and returns every accepted game for the TMDB
// entities of kind it maps to. It never fails: problems are logged and
// reflected in the Outcome.
func (r *Resolver) Resolve(ctx context.Context, kind game.Kind, externalID string) Result {
	ctx = logging.WithKind(logging.WithExternalID(ctx, externalID), kind.Name)
	logger := logging.WithContext(ctx, r.logger)

	var result Result
	found, err := r.api.Find(ctx, externalID, tmdb.ExternalSourceIMDb)
	if err != nil {
		r.upstreamFailure(ctx, logger, "tmdb find failed", err)
		result.Outcome.UpstreamErrors++
		return result
	}

	matches := found.PersonResults
	if kind.Subject == game.SubjectTitle {
		matches = found.MovieResults
	}
	if len(matches) == 0 {
		logging.WarnWithContext(logger, "no tmdb match for identifier", eventNoMatch,
			logging.String("subject", kind.Subject.String()),
			logging.String(logging.FieldErrorHint, "verify the identifier and --type match"),
			logging.String(logging.FieldImpact, "identifier skipped"),
		)
		result.Outcome.Unmatched++
		return result
	}

	for _, match := range matches {
		var candidate game.Game
		switch kind.Subject {
		case game.SubjectTitle:
			movie, err := r.api.MovieDetails(ctx, match.ID)
			if err != nil {
				r.upstreamFailure(ctx, logger, "tmdb movie details failed", err, logging.Int64("tmdb_id", match.ID))
				result.Outcome.UpstreamErrors++
				continue
			}
			candidate = r.builder.BuildMovie(movie)
		default:
			person, err := r.api.PersonDetails(ctx, match.ID)
			if err != nil {
				r.upstreamFailure(ctx, logger, "tmdb person details failed", err, logging.Int64("tmdb_id", match.ID))
				result.Outcome.UpstreamErrors++
				continue
			}
			var skips []game.Skip
			candidate, skips = r.builder.BuildPerson(kind, person)
			logSkips(logger, match.ID, skips)
		}
		r.accept(logger, candidate, &result)
	}
	return result
}

// ResolveDiscoverPage builds title games for every movie on one discover page.
func (r *Resolver) ResolveDiscoverPage(ctx context.Context, page int) Result {
	ctx = logging.WithKind(ctx, game.Title.Name)
	logger := logging.WithContext(ctx, r.logger).With(logging.Int("page", page))

	var result Result
	resp, err := r.api.DiscoverMovies(ctx, page)
	if err != nil {
		r.upstreamFailure(ctx, logger, "tmdb discover failed", err)
		result.Outcome.UpstreamErrors++
		return result
	}
	logger.Debug("discover page fetched", logging.Int("results", len(resp.Results)))

	for _, entry := range resp.Results {
		movie, err := r.api.MovieDetails(ctx, entry.ID)
		if err != nil {
			r.upstreamFailure(ctx, logger, "tmdb movie details failed", err, logging.Int64("tmdb_id", entry.ID))
			result.Outcome.UpstreamErrors++
			continue
		}
		r.accept(logger.With(logging.Int64("tmdb_id", entry.ID)), r.builder.BuildMovie(movie), &result)
	}
	return result
}

func (r *Resolver) accept(logger *slog.Logger, candidate game.Game, result *Result) {
	result.Outcome.Resolved++
	if err := game.Validate(candidate); err != nil {
		var rejection *game.Rejection
		reason := game.Reason("invalid")
		attrs := []logging.Attr{
			logging.Int64("tmdb_id", candidate.Answer.ID),
			logging.String("title", candidate.Answer.DisplayTitle()),
			logging.Error(err),
		}
		if errors.As(err, &rejection) {
			reason = rejection.Reason
			attrs = append(attrs, logging.String("reason", string(rejection.Reason)))
			if rejection.Field != "" {
				attrs = append(attrs, logging.String("field", rejection.Field))
			}
		}
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "TMDB data for this entry is incomplete"))
		logging.WarnWithContext(logger, "game rejected", eventRejected, attrs...)
		result.Outcome.reject(reason, 1)
		return
	}
	logger.Debug("game accepted",
		logging.Int64("tmdb_id", candidate.Answer.ID),
		logging.String("title", candidate.Answer.DisplayTitle()),
	)
	result.Outcome.Accepted++
	result.Games = append(result.Games, candidate)
}

func (r *Resolver) upstreamFailure(ctx context.Context, logger *slog.Logger, msg string, err error, attrs ...logging.Attr) {
	if ctx.Err() != nil {
		logger.Debug(msg, logging.Args(append(attrs, logging.Error(err))...)...)
		return
	}
	attrs = append(attrs,
		logging.Error(err),
		logging.String(logging.FieldErrorHint, upstreamHint(err)),
	)
	logging.ErrorWithContext(logger, msg, eventUpstreamError, attrs...)
}

func logSkips(logger *slog.Logger, tmdbID int64, skips []game.Skip) {
	for _, skip := range skips {
		attrs := []any{
			logging.Int64("tmdb_id", tmdbID),
			logging.String("credit", skip.Title),
			logging.String("reason", string(skip.Reason)),
		}
		switch skip.Reason {
		case game.SkipExcludedGenre:
			attrs = append(attrs, logging.Any("genre_ids", skip.GenreIDs))
		case game.SkipFutureRelease:
			attrs = append(attrs, logging.String("release_date", skip.Release))
		}
		logger.Debug("credit skipped", attrs...)
	}
}

func upstreamHint(err error) string {
	switch {
	case tmdb.IsStatus(err, http.StatusUnauthorized):
		return "check TMDB_API_TOKEN or tmdb.api_token"
	case tmdb.IsStatus(err, http.StatusNotFound):
		return "verify the identifier exists on TMDB"
	case tmdb.IsStatus(err, http.StatusTooManyRequests):
		return "lower fetch.workers and retry later"
	default:
		return "check network connectivity and TMDB status"
	}
}
