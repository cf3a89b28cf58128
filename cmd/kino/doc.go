// Package main hosts the kino CLI entrypoint and command graph.
//
// The Cobra-based command tree turns IMDb list exports and TMDB discover
// pages into Game object files for the guessing game, checks that TMDB and
// the output directory are usable, and scaffolds configuration. It
// centralizes configuration resolution, run ids, and structured logging setup
// so subcommands can focus on flags and output.
//
// Keep this package lean: the resolver, batch, and game packages do the work;
// commands here only wire them together and render summaries.
package main
