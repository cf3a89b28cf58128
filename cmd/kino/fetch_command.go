package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kino/internal/config"
	"kino/internal/game"
	"kino/internal/imdblist"
	"kino/internal/logging"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		file       string
		output     string
		typ        string
		director   bool
		escapeHTML bool
		workers    int
		jsonOut    bool
		kind       game.Kind
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Build games from an IMDb list export",
		Long: `Build Game objects for the people or titles listed in an IMDb list export.

Each identifier is resolved through TMDB, shaped into a Game object and kept
only when it is complete. The accepted games are shuffled and written to the
output file (".json" is appended when missing).`,
		Example: `  kino fetch --file ./kino-actors.csv --type person --output actors --limit 1000
  kino fetch --file ./kino-movies.csv --type title --output movies.json
  kino fetch --file ./kino-directors.csv --type person --director --output directors`,
		// Overrides the root hook: --type is checked before configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := game.ParseKind(typ, director)
			if err != nil {
				return err
			}
			kind = parsed
			_, err = ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("limit") {
				if limit < 0 {
					return errors.New("--limit must be zero (all) or positive")
				}
			} else {
				limit = cfg.Fetch.DefaultLimit
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return errors.New("--workers must be at least 1")
				}
			} else {
				workers = cfg.Fetch.Workers
			}

			listPath, err := config.ExpandPath(strings.TrimSpace(file))
			if err != nil {
				return fmt.Errorf("resolve --file: %w", err)
			}
			ids, err := imdblist.Load(listPath, cfg.Fetch.IDColumn)
			if err != nil {
				return err
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runner, err := ctx.newRunner(cfg, logger, workers)
			if err != nil {
				return err
			}

			report, err := runner.Fetch(cmd.Context(), kind, ids, limit)
			if err != nil {
				logger.Warn("run cancelled; no output written", logging.Error(err))
				return err
			}
			return ctx.finishRun(cmd, cfg, logger, report, runOptions{
				output:     output,
				escapeHTML: escapeHTML,
				jsonOut:    jsonOut,
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of ids to process from the top of the list (default fetch.default_limit, 0 = all)")
	cmd.Flags().StringVar(&file, "file", "", "IMDb list export (CSV)")
	cmd.Flags().StringVar(&output, "output", "", "Output file name")
	cmd.Flags().StringVar(&typ, "type", "", "Entity type: person or title")
	cmd.Flags().BoolVar(&director, "director", false, "Use directing credits (requires --type person)")
	cmd.Flags().BoolVar(&escapeHTML, "escape-html", false, "HTML-escape every string value before writing")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent identifiers (default fetch.workers)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run summary as JSON")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
