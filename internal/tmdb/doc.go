// Package tmdb provides the minimal TMDB API client used to build Game objects.
//
// It authenticates requests with a v4 read access token (bearer) and exposes
// lookup by external id, person details with movie credits, movie details
// with credits, discover pages, and a token check. Responses are strongly
// typed; nullable upstream fields are pointers so callers can tell "absent"
// from "empty". Options allow tests to supply custom HTTP clients without
// modifying production code.
package tmdb
