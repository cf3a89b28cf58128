package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kino/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "check",
		Short:       "Verify configuration, TMDB credentials and output directory",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []preflight.Result{}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				results = append(results, preflight.Result{Name: "Configuration", Detail: err.Error()})
			} else {
				detail := ctx.configPath
				if !ctx.configFile {
					detail = fmt.Sprintf("defaults and environment (no file at %s)", ctx.configPath)
				}
				results = append(results, preflight.Result{Name: "Configuration", Passed: true, Detail: detail})
				results = append(results, preflight.RunAll(cmd.Context(), cfg)...)
			}

			if jsonOut {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					rows = append(rows, []string{result.Name, passFail(result.Passed), result.Detail})
				}
				view := tableView{headers: []string{"Check", "Status", "Detail"}, rows: rows}
				fmt.Fprintln(cmd.OutOrStdout(), view.render())
			}

			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	return cmd
}
