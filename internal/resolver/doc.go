// Package resolver turns external identifiers into accepted games.
//
// A Resolver maps an IMDb id to TMDB ids with the find endpoint, fetches the
// details of every candidate, builds a game with the configured kind and
// applies the acceptance rules. Upstream failures and rejected candidates are
// logged and counted in an Outcome; they never propagate as errors, so one bad
// identifier cannot stop a batch.
package resolver
