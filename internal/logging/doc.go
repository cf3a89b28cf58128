// Package logging assembles structured slog loggers and formatting helpers used
// across kino commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, stamps every line with the run id of the invocation, and exposes
// context-aware helpers so resolver and batch code can tag log lines with the
// external identifier being resolved and the entity kind. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
