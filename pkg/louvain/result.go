package louvain

import (
	"time"
)

// Result contains the outcome of a detection run.
type Result struct {
	// RunID uniquely identifies the run across logs and metrics.
	RunID string
	// Communities maps each original vertex id to its final community id.
	Communities []int
	// NumCommunities is the number of distinct final communities.
	NumCommunities int
	// Modularity is the score of the final assignment on the input graph.
	Modularity float64
	// Phases is the number of coarsening phases executed.
	Phases int
	// Passes is the total number of inner-loop passes across all phases.
	Passes int
	// Moves is the total number of committed vertex moves.
	Moves int
	// Converged is false when the run stopped on a pass or phase budget
	// rather than by reaching a fixed point. The assignment is still the
	// best one found; budget exhaustion is informational, not a failure.
	Converged bool
	// Runtime is the wall-clock duration of the run.
	Runtime time.Duration
}

// countCommunities returns the number of distinct ids in an assignment.
func countCommunities(assignment []int) int {
	seen := make(map[int]struct{}, 64)
	for _, c := range assignment {
		seen[c] = struct{}{}
	}
	return len(seen)
}
