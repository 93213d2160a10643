package louvain

import (
	"math"
	"sync/atomic"

	"github.com/graphmason/communities/pkg/graph"
)

// atomicFloat64 is a float64 with fetch-and-add semantics, built on a CAS
// loop over the raw bits. Workers moving vertices into or out of the same
// community from different color-class chunks race only on these counters.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func (f *atomicFloat64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *atomicFloat64) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *atomicFloat64) Add(delta float64) {
	for {
		old := f.bits.Load()
		updated := math.Float64bits(math.Float64frombits(old) + delta)
		if f.bits.CompareAndSwap(old, updated) {
			return
		}
	}
}

// communityState is the mutable shared state of one phase: the community
// assignment and the per-community aggregates the gain formula needs.
// Community ids within a phase are vertex ids of the phase's graph, so the
// aggregate arrays are dense.
type communityState struct {
	assignment []int // vertex -> community id

	tot []atomicFloat64 // per-community summed weighted degree
	in  []atomicFloat64 // per-community internal weight (doubled edges + doubled self loops)
}

// newCommunityState places every vertex in its own community.
func newCommunityState(g *graph.Graph) *communityState {
	n := g.NumVertices()
	cs := &communityState{
		assignment: make([]int, n),
		tot:        make([]atomicFloat64, n),
		in:         make([]atomicFloat64, n),
	}
	for v := 0; v < n; v++ {
		cs.assignment[v] = v
		cs.tot[v].Store(g.Degree(v))
		cs.in[v].Store(2 * g.SelfLoop(v))
	}
	return cs
}

// apply commits one vertex move, transferring the vertex's degree and its
// doubled community-internal weight between the aggregates. Increments are
// atomic; the assignment write is race-free because no two vertices of one
// batch are adjacent.
func (cs *communityState) apply(m move, degree, selfLoop float64) {
	cs.assignment[m.vertex] = m.to
	cs.tot[m.from].Add(-degree)
	cs.tot[m.to].Add(degree)
	cs.in[m.from].Add(-(2*m.weightToFrom + 2*selfLoop))
	cs.in[m.to].Add(2*m.weightToTo + 2*selfLoop)
}

// modularity computes the partition quality from the aggregates:
// sum over communities of in/tw - (tot/tw)^2. Zero when tw is zero.
func (cs *communityState) modularity(totalWeight float64) float64 {
	if totalWeight <= 0 {
		return 0
	}
	var q float64
	for c := range cs.tot {
		tot := cs.tot[c].Load()
		if tot == 0 {
			continue
		}
		q += cs.in[c].Load()/totalWeight - (tot/totalWeight)*(tot/totalWeight)
	}
	return q
}
