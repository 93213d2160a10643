// Package louvain implements parallel multi-phase community detection by
// modularity maximization. Vertices start in singleton communities, moves
// with positive modularity gain are applied in parallel batches scheduled by
// graph coloring, and converged phases are coarsened into smaller graphs
// until no further improvement is possible.
package louvain

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/graphmason/communities/pkg/logging"
	"github.com/graphmason/communities/pkg/metrics"
	"github.com/graphmason/communities/pkg/validation"
)

// Strategy selects the synchronization policy that governs when per-vertex
// community decisions become visible to concurrently executing workers.
type Strategy int

const (
	// FullSync evaluates every vertex of a color class against a snapshot
	// taken at the start of the class and commits all moves in a barrier
	// step at its end. Order-independent; runs until a pass produces no
	// modularity gain.
	FullSync Strategy = iota
	// EarlyTerminate commits each move as soon as it is computed and stops
	// the inner loop once the fraction of moved vertices falls below
	// MinMovedFraction. Fastest, trades determinism for throughput.
	EarlyTerminate
	// FullSyncEarlyTerminate keeps FullSync's barrier semantics per pass but
	// adopts the early-exit threshold. The default production strategy.
	FullSyncEarlyTerminate
)

// ErrUnknownStrategy is returned when parsing an unrecognized strategy name.
var ErrUnknownStrategy = errors.New("unknown sync strategy")

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case FullSync:
		return "fullSync"
	case EarlyTerminate:
		return "earlyTerminate"
	case FullSyncEarlyTerminate:
		return "fullSyncEarlyTerminate"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a configuration name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "fullSync":
		return FullSync, nil
	case "earlyTerminate":
		return EarlyTerminate, nil
	case "fullSyncEarlyTerminate":
		return FullSyncEarlyTerminate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures a detection run.
type Options struct {
	// SyncStrategy selects the commit/visibility policy.
	SyncStrategy Strategy
	// ConvergenceEpsilon is the minimum modularity gain per pass required to
	// keep iterating the inner loop.
	ConvergenceEpsilon float64
	// MinMovedFraction is the early-terminate threshold: the inner loop
	// exits once moved vertices / total vertices drops below it.
	MinMovedFraction float64
	// MaxPasses caps the inner loop within one phase.
	MaxPasses int
	// MaxPhases caps the number of coarsening phases.
	MaxPhases int
	// NumThreads is the worker pool size. Zero means runtime.NumCPU().
	NumThreads int
	// UseColoring schedules batches by graph coloring; when false every
	// vertex forms its own batch.
	UseColoring bool

	// Logger receives structured progress output. Nil means no output.
	Logger logging.Logger
	// Metrics receives run instrumentation. Nil disables it.
	Metrics *metrics.Registry
}

// DefaultOptions returns the default detection configuration.
func DefaultOptions() Options {
	return Options{
		SyncStrategy:       FullSyncEarlyTerminate,
		ConvergenceEpsilon: 1e-6,
		MinMovedFraction:   0.01,
		MaxPasses:          25,
		MaxPhases:          20,
		NumThreads:         runtime.NumCPU(),
		UseColoring:        true,
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	return validation.NewConfigValidator("Options").
		OneOf("SyncStrategy", o.SyncStrategy.String(),
			[]string{"fullSync", "earlyTerminate", "fullSyncEarlyTerminate"}).
		PositiveFloat("ConvergenceEpsilon", o.ConvergenceEpsilon).
		RangeFloat("MinMovedFraction", o.MinMovedFraction, 0, 1).
		Positive("MaxPasses", o.MaxPasses).
		Positive("MaxPhases", o.MaxPhases).
		NonNegative("NumThreads", o.NumThreads).
		Error()
}
