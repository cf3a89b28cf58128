package batch

import (
	"time"

	"kino/internal/resolver"
)

// Summary reports the counts of one run.
type Summary struct {
	RunID          string         `json:"run_id,omitempty"`
	Kind           string         `json:"kind"`
	Requested      int            `json:"requested"`
	Unmatched      int            `json:"unmatched"`
	Resolved       int            `json:"resolved"`
	Accepted       int            `json:"accepted"`
	Rejected       map[string]int `json:"rejected"`
	UpstreamErrors int            `json:"upstream_errors"`
	Output         string         `json:"output,omitempty"`
	Duration       time.Duration  `json:"-"`
	DurationMillis int64          `json:"duration_ms"`
}

// NewSummary converts an aggregated outcome into a Summary.
func NewSummary(kind string, requested int, outcome resolver.Outcome) Summary {
	rejected := make(map[string]int, len(outcome.Rejected))
	for reason, count := range outcome.Rejected {
		rejected[string(reason)] = count
	}
	return Summary{
		Kind:           kind,
		Requested:      requested,
		Unmatched:      outcome.Unmatched,
		Resolved:       outcome.Resolved,
		Accepted:       outcome.Accepted,
		Rejected:       rejected,
		UpstreamErrors: outcome.UpstreamErrors,
	}
}
