package preflight

import (
	"context"
	"time"

	"kino/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Output directory (always checked, defaults to the working directory)
	outputDir := cfg.Output.Dir
	if outputDir == "" {
		outputDir = "."
	}
	results = append(results, CheckDirectoryAccess("Output directory", outputDir))

	// Log directory (when configured)
	if cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir))
	}

	timeout := time.Duration(cfg.TMDB.TimeoutSeconds) * time.Second
	results = append(results, CheckTMDB(ctx, cfg.TMDB.BaseURL, cfg.TMDB.APIToken, timeout))

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return true
		}
	}
	return false
}
