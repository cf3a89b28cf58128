package main

import (
	"errors"

	"github.com/spf13/cobra"

	"kino/internal/logging"
)

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	var (
		pages      int
		output     string
		escapeHTML bool
		workers    int
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Build title games from TMDB discover pages",
		Long: `Build title Game objects for the most-voted live-action movies on TMDB.

Pages 1..N of /discover/movie (sorted by vote count, animation excluded) are
fetched in parallel and every result goes through the same shaping and
acceptance rules as "kino fetch --type title".`,
		Example: `  kino discover --pages 50 --output movies`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pages") {
				if pages < 1 {
					return errors.New("--pages must be at least 1")
				}
			} else {
				pages = cfg.Discover.Pages
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return errors.New("--workers must be at least 1")
				}
			} else {
				workers = cfg.Discover.Workers
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runner, err := ctx.newRunner(cfg, logger, workers)
			if err != nil {
				return err
			}

			report, err := runner.Discover(cmd.Context(), pages)
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

	cmd.Flags().IntVar(&pages, "pages", 0, "Number of discover pages (default discover.pages)")
	cmd.Flags().StringVar(&output, "output", "", "Output file name")
	cmd.Flags().BoolVar(&escapeHTML, "escape-html", false, "HTML-escape every string value before writing")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent pages (default discover.workers)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run summary as JSON")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
