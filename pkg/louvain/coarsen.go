package louvain

import (
	"sort"

	"github.com/graphmason/communities/pkg/graph"
	"github.com/graphmason/communities/pkg/pools"
)

// coarsen collapses the communities of g into vertices of a new graph.
// Surviving community ids are relabeled densely to [0, M) in order of their
// lowest member vertex, inter-community edge weights are summed, and
// intra-community weight plus prior self loops fold into the new vertices'
// self loops. The remap slice translates each vertex of g to its coarse
// vertex id.
//
// Total edge weight is preserved: coarsening changes the representation,
// never the modularity of the partition it encodes.
func coarsen(g *graph.Graph, assignment []int) (*graph.Graph, []int, error) {
	n := g.NumVertices()

	// Dense relabeling, deterministic via vertex order.
	newID := make([]int, n)
	for i := range newID {
		newID[i] = -1
	}
	numCommunities := 0
	remap := make([]int, n)
	for v := 0; v < n; v++ {
		c := assignment[v]
		if newID[c] < 0 {
			newID[c] = numCommunities
			numCommunities++
		}
		remap[v] = newID[c]
	}

	selfLoops := make([]float64, numCommunities)
	rows := make([]map[int]float64, numCommunities)

	for v := 0; v < n; v++ {
		cu := remap[v]
		selfLoops[cu] += g.SelfLoop(v)

		neighbors, weights := g.Neighbors(v)
		for i, u := range neighbors {
			if u < v {
				continue // visit each undirected edge once
			}
			cv := remap[u]
			if cu == cv {
				selfLoops[cu] += weights[i]
				continue
			}
			if rows[cu] == nil {
				rows[cu] = make(map[int]float64)
			}
			rows[cu][cv] += weights[i]
		}
	}

	// Emit rows in sorted order so the coarse graph's adjacency layout is
	// reproducible run to run.
	b := graph.NewBuilder(numCommunities)
	for c := 0; c < numCommunities; c++ {
		if selfLoops[c] > 0 {
			b.AddEdge(c, c, selfLoops[c])
		}
		if rows[c] == nil {
			continue
		}
		targets := pools.GetIntSlice(len(rows[c]))
		for t := range rows[c] {
			targets = append(targets, t)
		}
		sort.Ints(targets)
		for _, t := range targets {
			b.AddEdge(c, t, rows[c][t])
		}
		pools.PutIntSlice(targets)
	}

	coarse, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return coarse, remap, nil
}
