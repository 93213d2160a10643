package louvain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/graphmason/communities/pkg/coloring"
	"github.com/graphmason/communities/pkg/graph"
	"github.com/graphmason/communities/pkg/logging"
	"github.com/graphmason/communities/pkg/parallel"
)

// Engine drives the multi-phase detection loop: inner-loop passes of the
// configured synchronization strategy until local convergence, then
// coarsening, repeated on the reduced graph until no merge occurs or the
// phase budget expires. Final labels are projected back through the phase
// mappings to the original vertex set.
//
// An Engine owns a worker pool and may be reused for several runs; Close
// releases the pool.
type Engine struct {
	opts Options
	pool *parallel.WorkerPool
	log  logging.Logger
}

// New creates an Engine with the given options.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	pool, err := parallel.NewWorkerPool(opts.NumThreads)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &Engine{opts: opts, pool: pool, log: log}, nil
}

// Close shuts down the engine's worker pool.
func (e *Engine) Close() {
	e.pool.Close()
}

// Detect runs community detection on g and returns the final assignment.
// It fails fast with graph.ErrEmptyGraph on a zero-vertex graph; every
// other condition resolves to a valid result. Cancellation is honored
// between passes and phases; a canceled run returns the best assignment
// found so far together with the context's error.
func (e *Engine) Detect(ctx context.Context, g *graph.Graph) (*Result, error) {
	if g.NumVertices() == 0 {
		return nil, graph.ErrEmptyGraph
	}

	start := time.Now()
	runID := uuid.NewString()
	log := e.log.With(
		logging.Component("louvain"),
		logging.RunID(runID),
		logging.Strategy(e.opts.SyncStrategy.String()),
	)

	if m := e.opts.Metrics; m != nil {
		m.UpdateGraphMetrics(g.NumVertices(), g.NumEdges(), g.TotalWeight())
	}

	result := &Result{RunID: runID, Converged: true}

	// Edgeless graph: every vertex stays its own community, modularity is
	// zero by definition, and no pass could change that.
	if g.TotalWeight() <= 0 {
		result.Communities = identityAssignment(g.NumVertices())
		result.NumCommunities = g.NumVertices()
		result.Runtime = time.Since(start)
		e.recordRun(result)
		return result, nil
	}

	chain, err := e.runPhases(ctx, g, log, result)
	if chain == nil && err != nil {
		return nil, err
	}

	result.Communities = projectChain(chain, g.NumVertices())
	result.NumCommunities = countCommunities(result.Communities)
	result.Modularity = Modularity(g, result.Communities)
	result.Runtime = time.Since(start)

	log.Info("detection finished",
		logging.Communities(result.NumCommunities),
		logging.Modularity(result.Modularity),
		logging.Int("phases", result.Phases),
		logging.Int("passes", result.Passes),
		logging.Bool("converged", result.Converged),
		logging.Latency(result.Runtime),
	)
	e.recordRun(result)
	return result, err
}

// runPhases executes the outer loop and returns the mapping chain, one
// assignment per phase. A non-nil error is only ever a context error.
func (e *Engine) runPhases(ctx context.Context, g *graph.Graph, log logging.Logger, result *Result) ([][]int, error) {
	working := g
	var chain [][]int

	for phase := 0; phase < e.opts.MaxPhases; phase++ {
		phaseStart := time.Now()
		phaseLog := log.With(logging.Phase(phase))

		state := newCommunityState(working)
		classes := e.colorClasses(working, phase)
		runner := newPassRunner(working, state, classes, e.pool, e.opts.SyncStrategy.commitPolicy())

		tw := working.TotalWeight()
		qPrev := state.modularity(tw)
		innerConverged := false

		for pass := 1; pass <= e.opts.MaxPasses; pass++ {
			if err := ctx.Err(); err != nil {
				chain = append(chain, snapshotAssignment(state))
				result.Converged = false
				return chain, err
			}

			passStart := time.Now()
			moved := runner.runPass()
			q := state.modularity(tw)
			passGain := q - qPrev
			qPrev = q

			result.Passes++
			result.Moves += moved
			if m := e.opts.Metrics; m != nil {
				m.RecordPass(e.opts.SyncStrategy.String(), moved, time.Since(passStart))
			}
			phaseLog.Debug("pass complete",
				logging.Pass(pass),
				logging.Moves(moved),
				logging.Modularity(q),
			)

			if e.opts.SyncStrategy.converged(passGain, moved, working.NumVertices(), &e.opts) {
				innerConverged = true
				break
			}
		}
		if !innerConverged {
			result.Converged = false
		}

		coarse, remap, err := coarsen(working, state.assignment)
		if err != nil {
			return nil, err
		}
		chain = append(chain, remap)
		result.Phases++
		if m := e.opts.Metrics; m != nil {
			m.RecordPhase(e.opts.SyncStrategy.String(), time.Since(phaseStart))
		}
		phaseLog.Info("phase complete",
			logging.Vertices(working.NumVertices()),
			logging.Communities(coarse.NumVertices()),
			logging.Modularity(qPrev),
			logging.Latency(time.Since(phaseStart)),
		)

		// No merge means further phases cannot improve anything.
		if coarse.NumVertices() == working.NumVertices() {
			return chain, nil
		}
		working = coarse

		if err := ctx.Err(); err != nil {
			result.Converged = false
			return chain, err
		}
	}

	// Phase budget expired while coarsening was still making progress.
	result.Converged = false
	return chain, nil
}

// colorClasses computes the batch schedule for one phase's graph.
func (e *Engine) colorClasses(g *graph.Graph, phase int) [][]int {
	if !e.opts.UseColoring {
		return coloring.Singletons(g.NumVertices()).Classes
	}
	asg := coloring.Partition(g)
	if phase == 0 {
		if m := e.opts.Metrics; m != nil {
			m.SetColorClasses(asg.NumColors)
		}
	}
	return asg.Classes
}

func (e *Engine) recordRun(result *Result) {
	m := e.opts.Metrics
	if m == nil {
		return
	}
	status := "converged"
	if !result.Converged {
		status = "budget_exhausted"
	}
	m.RecordRun(e.opts.SyncStrategy.String(), status, result.Modularity, result.NumCommunities, result.Runtime)
}

// Detect is a convenience wrapper that builds an Engine, runs one detection,
// and releases the pool.
func Detect(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	engine, err := New(opts)
	if err != nil {
		return nil, err
	}
	defer engine.Close()
	return engine.Detect(ctx, g)
}

// projectChain composes the per-phase mappings in order, translating every
// original vertex to its final community id.
func projectChain(chain [][]int, numVertices int) []int {
	labels := identityAssignment(numVertices)
	for _, mapping := range chain {
		for v := range labels {
			labels[v] = mapping[labels[v]]
		}
	}
	return labels
}

func identityAssignment(n int) []int {
	labels := make([]int, n)
	for v := range labels {
		labels[v] = v
	}
	return labels
}

// snapshotAssignment copies the current assignment relabeled densely so a
// canceled run still projects through a valid mapping chain.
func snapshotAssignment(state *communityState) []int {
	n := len(state.assignment)
	newID := make([]int, n)
	for i := range newID {
		newID[i] = -1
	}
	next := 0
	out := make([]int, n)
	for v := 0; v < n; v++ {
		c := state.assignment[v]
		if newID[c] < 0 {
			newID[c] = next
			next++
		}
		out[v] = newID[c]
	}
	return out
}
