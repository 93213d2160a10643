package graph

import "math"

// Edge represents one undirected weighted edge of the input.
type Edge struct {
	U, V   int
	Weight float64
}

// Builder accumulates edges and produces an immutable Graph.
// Duplicate edges between the same pair are allowed; their weights sum.
type Builder struct {
	numVertices int
	edges       []Edge
}

// NewBuilder creates a builder for a graph with the given vertex count.
// Vertices are identified by ints in [0, numVertices).
func NewBuilder(numVertices int) *Builder {
	return &Builder{numVertices: numVertices}
}

// AddEdge records an undirected edge between u and v. Validation is deferred
// to Build so callers can stream edges without per-edge error handling.
func (b *Builder) AddEdge(u, v int, weight float64) {
	b.edges = append(b.edges, Edge{U: u, V: v, Weight: weight})
}

// Build validates the accumulated edges and constructs the Graph.
// It fails with a MalformedError if any weight is negative or any endpoint
// falls outside [0, numVertices).
func (b *Builder) Build() (*Graph, error) {
	n := b.numVertices

	for _, e := range b.edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, &MalformedError{Op: "Build", U: e.U, V: e.V, Weight: e.Weight, Cause: ErrNonFiniteWeight}
		}
		if e.Weight < 0 {
			return nil, &MalformedError{Op: "Build", U: e.U, V: e.V, Weight: e.Weight, Cause: ErrNegativeWeight}
		}
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, &MalformedError{Op: "Build", U: e.U, V: e.V, Cause: ErrVertexOutOfRange}
		}
	}

	g := &Graph{
		offsets:   make([]int, n+1),
		selfLoops: make([]float64, n),
		degrees:   make([]float64, n),
	}

	// First pass: count adjacency rows, fold self loops aside.
	counts := make([]int, n)
	halfEdges := 0
	for _, e := range b.edges {
		if e.U == e.V {
			g.selfLoops[e.U] += e.Weight
			continue
		}
		counts[e.U]++
		counts[e.V]++
		halfEdges += 2
	}

	for v := 0; v < n; v++ {
		g.offsets[v+1] = g.offsets[v] + counts[v]
	}

	// Second pass: fill adjacency.
	g.neighbors = make([]int, halfEdges)
	g.weights = make([]float64, halfEdges)
	next := make([]int, n)
	copy(next, g.offsets[:n])
	for _, e := range b.edges {
		if e.U == e.V {
			continue
		}
		g.neighbors[next[e.U]] = e.V
		g.weights[next[e.U]] = e.Weight
		next[e.U]++
		g.neighbors[next[e.V]] = e.U
		g.weights[next[e.V]] = e.Weight
		next[e.V]++
	}

	// Derived per-vertex degree and the phase's normalization constant.
	for v := 0; v < n; v++ {
		d := 2 * g.selfLoops[v]
		start, end := g.offsets[v], g.offsets[v+1]
		for i := start; i < end; i++ {
			d += g.weights[i]
		}
		g.degrees[v] = d
		g.totalWeight += d
	}

	g.numEdges = halfEdges / 2
	for _, s := range g.selfLoops {
		if s > 0 {
			g.numEdges++
		}
	}

	return g, nil
}

// FromEdges constructs a Graph directly from an edge slice.
func FromEdges(numVertices int, edges []Edge) (*Graph, error) {
	b := NewBuilder(numVertices)
	b.edges = edges
	return b.Build()
}
