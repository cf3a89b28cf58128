package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"kino/internal/batch"
	"kino/internal/config"
	"kino/internal/logging"
)

type runOptions struct {
	output     string
	escapeHTML bool
	jsonOut    bool
}

// finishRun shuffles and exports the accepted games, then prints the summary.
func (c *commandContext) finishRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, report batch.Report, opts runOptions) error {
	batch.Shuffle(report.Games)

	path := batch.OutputPath(cfg.Output.Dir, opts.output)
	escape := opts.escapeHTML || cfg.Output.EscapeHTML
	if err := batch.Export(path, report.Games, escape); err != nil {
		return fmt.Errorf("export games: %w", err)
	}
	logger.Info("games exported",
		logging.String("output", path),
		logging.Int("games", len(report.Games)),
		logging.Bool("escape_html", escape),
	)

	summary := report.Summary
	summary.RunID = c.runID
	summary.Output = path
	return printSummary(cmd, summary, opts.jsonOut)
}
