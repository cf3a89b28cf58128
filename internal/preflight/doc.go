// Package preflight provides readiness checks for the filesystem paths and
// the TMDB credentials kino depends on.
//
// The CLI "kino check" command runs RunAll and renders the results; any
// failed check makes the command exit non-zero. Individual checks are
// exported so callers can probe a single dependency.
package preflight
