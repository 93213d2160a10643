package louvain

import (
	"github.com/graphmason/communities/pkg/graph"
)

// Modularity computes the modularity of a community assignment on g. The
// assignment must map every vertex of g to a community id. A graph with no
// edges has modularity 0 by definition.
func Modularity(g *graph.Graph, assignment []int) float64 {
	tw := g.TotalWeight()
	if tw <= 0 {
		return 0
	}

	maxC := 0
	for _, c := range assignment {
		if c > maxC {
			maxC = c
		}
	}

	tot := make([]float64, maxC+1)
	in := make([]float64, maxC+1)

	for v := 0; v < g.NumVertices(); v++ {
		c := assignment[v]
		tot[c] += g.Degree(v)
		in[c] += 2 * g.SelfLoop(v)

		neighbors, weights := g.Neighbors(v)
		for i, u := range neighbors {
			if assignment[u] == c {
				in[c] += weights[i] // both endpoints contribute, doubling internal edges
			}
		}
	}

	var q float64
	for c := range tot {
		if tot[c] == 0 {
			continue
		}
		q += in[c]/tw - (tot[c]/tw)*(tot[c]/tw)
	}
	return q
}
