package louvain

import (
	"sync/atomic"

	"github.com/graphmason/communities/pkg/graph"
	"github.com/graphmason/communities/pkg/parallel"
)

// commitPolicy controls when a computed move becomes visible to other
// workers. The three public strategies are combinations of a commit policy
// and an exit rule sharing one pass runner.
type commitPolicy int

const (
	// commitDeferred holds moves until the end of the color class and
	// applies them behind a barrier; every vertex of the class evaluates
	// against the same snapshot.
	commitDeferred commitPolicy = iota
	// commitImmediate applies each move as soon as it is computed; later
	// vertices of the same class may observe it through the aggregates.
	commitImmediate
)

func (s Strategy) commitPolicy() commitPolicy {
	if s == EarlyTerminate {
		return commitImmediate
	}
	return commitDeferred
}

// converged reports whether the inner loop should stop after a pass that
// moved the given number of vertices and gained the given modularity.
func (s Strategy) converged(passGain float64, moved, numVertices int, opts *Options) bool {
	if moved == 0 {
		return true
	}
	switch s {
	case FullSync:
		return passGain < opts.ConvergenceEpsilon
	case EarlyTerminate:
		return float64(moved)/float64(numVertices) < opts.MinMovedFraction
	default: // FullSyncEarlyTerminate
		return passGain < opts.ConvergenceEpsilon ||
			float64(moved)/float64(numVertices) < opts.MinMovedFraction
	}
}

// passRunner executes inner-loop passes over the color classes of one
// phase's graph. The pending arrays are reused across passes.
type passRunner struct {
	g       *graph.Graph
	state   *communityState
	eval    evaluator
	classes [][]int
	pool    *parallel.WorkerPool
	policy  commitPolicy

	pending []move // per-vertex pending move, valid when hasMove[v]
	hasMove []bool
}

func newPassRunner(g *graph.Graph, state *communityState, classes [][]int, pool *parallel.WorkerPool, policy commitPolicy) *passRunner {
	return &passRunner{
		g:       g,
		state:   state,
		eval:    evaluator{g: g, state: state, m: g.TotalWeight() / 2},
		classes: classes,
		pool:    pool,
		policy:  policy,
		pending: make([]move, g.NumVertices()),
		hasMove: make([]bool, g.NumVertices()),
	}
}

// runPass offers every vertex one move opportunity, class by class, and
// returns the number of committed moves. Classes later in the order always
// observe all earlier classes' moves; visibility within a class follows the
// commit policy.
func (r *passRunner) runPass() int {
	var moved atomic.Int64

	for _, class := range r.classes {
		switch r.policy {
		case commitDeferred:
			// Evaluate the whole class against the frozen state. The
			// ForEachChunk barrier separates evaluation from commit.
			r.pool.ForEach(class, func(v int) {
				m, ok := r.eval.bestMove(v)
				r.hasMove[v] = ok
				if ok {
					r.pending[v] = m
				}
			})
			// Commit sequentially in vertex order. Commit cost is
			// O(moves); a fixed order keeps the aggregate sums
			// bit-identical across thread counts.
			for _, v := range class {
				if !r.hasMove[v] {
					continue
				}
				m := r.pending[v]
				r.state.apply(m, r.g.Degree(v), r.g.SelfLoop(v))
				moved.Add(1)
			}
		case commitImmediate:
			r.pool.ForEach(class, func(v int) {
				m, ok := r.eval.bestMove(v)
				if !ok {
					return
				}
				r.state.apply(m, r.g.Degree(v), r.g.SelfLoop(v))
				moved.Add(1)
			})
		}
	}

	return int(moved.Load())
}
