package graph

// Graph is an immutable, undirected, weighted graph in compressed sparse row
// form. Each undirected edge is stored twice, once from each endpoint; self
// loops are kept out of the adjacency and tracked per vertex instead.
//
// A Graph is read-only after construction and safe for unsynchronized
// concurrent reads.
type Graph struct {
	offsets   []int     // len = numVertices+1; adjacency row boundaries
	neighbors []int     // concatenated neighbor ids
	weights   []float64 // edge weight parallel to neighbors
	selfLoops []float64 // per-vertex self-loop weight
	degrees   []float64 // per-vertex weighted degree (incident weights + 2*selfLoop)

	numEdges    int     // undirected edge count, self loops included
	totalWeight float64 // sum of all weighted degrees (the modularity normalization constant)
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges returns the number of undirected edges, counting self loops once.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// Neighbors returns the neighbor ids and edge weights of v as shared
// read-only slices. Self loops are not included; use SelfLoop.
func (g *Graph) Neighbors(v int) ([]int, []float64) {
	start, end := g.offsets[v], g.offsets[v+1]
	return g.neighbors[start:end], g.weights[start:end]
}

// Degree returns the weighted degree of v: the sum of incident edge weights,
// with a self loop contributing twice its weight.
func (g *Graph) Degree(v int) float64 {
	return g.degrees[v]
}

// SelfLoop returns the self-loop weight of v.
func (g *Graph) SelfLoop(v int) float64 {
	return g.selfLoops[v]
}

// TotalWeight returns the sum of all weighted degrees, i.e. twice the sum of
// edge weights plus self-loop contributions. Zero for a graph with no edges.
func (g *Graph) TotalWeight() float64 {
	return g.totalWeight
}

// TotalEdgeWeight returns the sum of edge weights counting each undirected
// edge and each self loop once. Coarsening preserves this quantity.
func (g *Graph) TotalEdgeWeight() float64 {
	var sum float64
	for i := range g.weights {
		sum += g.weights[i]
	}
	sum /= 2 // each undirected edge is stored twice
	for _, s := range g.selfLoops {
		sum += s
	}
	return sum
}
