package resolver

import (
	"maps"
	"slices"

	"kino/internal/game"
)

// Outcome counts what happened while resolving one or more identifiers.
type Outcome struct {
	// Unmatched counts identifiers the find endpoint returned no candidate for.
	Unmatched      int
	Resolved       int
	Accepted       int
	Rejected       map[game.Reason]int
	UpstreamErrors int
}

// Add folds other into o.
func (o *Outcome) Add(other Outcome) {
	o.Unmatched += other.Unmatched
	o.Resolved += other.Resolved
	o.Accepted += other.Accepted
	o.UpstreamErrors += other.UpstreamErrors
	for reason, count := range other.Rejected {
		o.reject(reason, count)
	}
}

// RejectedTotal sums rejections across reasons.
func (o Outcome) RejectedTotal() int {
	total := 0
	for _, count := range o.Rejected {
		total += count
	}
	return total
}

// Reasons returns the rejection reasons seen, sorted.
func (o Outcome) Reasons() []game.Reason {
	return slices.Sorted(maps.Keys(o.Rejected))
}

func (o *Outcome) reject(reason game.Reason, count int) {
	if o.Rejected == nil {
		o.Rejected = make(map[game.Reason]int)
	}
	o.Rejected[reason] += count
}

// Result is the accepted games of one pipeline plus its Outcome.
type Result struct {
	Games   []game.Game
	Outcome Outcome
}
