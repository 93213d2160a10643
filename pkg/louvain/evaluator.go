package louvain

import (
	"github.com/graphmason/communities/pkg/graph"
	"github.com/graphmason/communities/pkg/pools"
)

// move is one pending vertex relocation. weightToFrom and weightToTo are the
// vertex's edge weight into the source and destination communities at
// evaluation time; commit needs both to adjust the internal-weight
// aggregates.
type move struct {
	vertex       int
	from, to     int
	weightToFrom float64
	weightToTo   float64
	gain         float64
}

// evaluator computes, for one vertex at a time, the modularity delta of
// relocating it into each distinct community among its neighbors. It is a
// pure read over the graph and the community state; committing a move is the
// strategy's job.
type evaluator struct {
	g     *graph.Graph
	state *communityState
	m     float64 // total edge weight, half the summed degrees
}

// gainOf evaluates the gain of placing a vertex with the given degree into a
// community: weightToC/m - degree*tot(c)/(2*m^2). The difference of two such
// gains is exactly the modularity change of the relocation, provided the
// caller excludes the vertex's own degree from tot when evaluating its
// current community.
func (e *evaluator) gainOf(weightToC, tot, degree float64) float64 {
	return weightToC/e.m - degree*tot/(2*e.m*e.m)
}

// bestMove returns the highest-gain relocation for v, or ok=false when no
// neighbor community strictly beats staying put. Gains are compared against
// the stay option with v's contribution removed from its current community's
// aggregate; exact ties between candidates resolve to the lowest community
// id, making the choice independent of evaluation order.
func (e *evaluator) bestMove(v int) (move, bool) {
	cur := e.state.assignment[v]

	scratch := pools.GetWeightMap()
	defer pools.PutWeightMap(scratch)

	neighbors, weights := e.g.Neighbors(v)
	for i, u := range neighbors {
		scratch[e.state.assignment[u]] += weights[i]
	}

	degree := e.g.Degree(v)
	stay := e.gainOf(scratch[cur], e.state.tot[cur].Load()-degree, degree)

	bestTo := -1
	bestDelta := 0.0
	var bestWeight float64
	for c, weightToC := range scratch {
		if c == cur {
			continue
		}
		delta := e.gainOf(weightToC, e.state.tot[c].Load(), degree) - stay
		if delta > bestDelta || (delta == bestDelta && delta > 0 && c < bestTo) {
			bestTo = c
			bestDelta = delta
			bestWeight = weightToC
		}
	}

	if bestTo < 0 {
		return move{}, false
	}
	return move{
		vertex:       v,
		from:         cur,
		to:           bestTo,
		weightToFrom: scratch[cur],
		weightToTo:   bestWeight,
		gain:         bestDelta,
	}, true
}
