package graph

import (
	"errors"
	"math"
	"testing"
)

// buildTestGraph builds a graph from edges, failing the test on error
func buildTestGraph(t *testing.T, numVertices int, edges []Edge) *Graph {
	t.Helper()

	g, err := FromEdges(numVertices, edges)
	if err != nil {
		t.Fatalf("FromEdges failed: %v", err)
	}
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestBuild_Triangle tests CSR construction on a weighted triangle
func TestBuild_Triangle(t *testing.T) {
	g := buildTestGraph(t, 3, []Edge{
		{U: 0, V: 1, Weight: 1.0},
		{U: 1, V: 2, Weight: 2.0},
		{U: 2, V: 0, Weight: 3.0},
	})

	if g.NumVertices() != 3 {
		t.Errorf("Expected 3 vertices, got %d", g.NumVertices())
	}
	if g.NumEdges() != 3 {
		t.Errorf("Expected 3 edges, got %d", g.NumEdges())
	}

	wantDegrees := []float64{4.0, 3.0, 5.0}
	for v, want := range wantDegrees {
		if got := g.Degree(v); !almostEqual(got, want) {
			t.Errorf("Degree(%d) = %g, want %g", v, got, want)
		}
	}

	if got := g.TotalWeight(); !almostEqual(got, 12.0) {
		t.Errorf("TotalWeight() = %g, want 12", got)
	}
	if got := g.TotalEdgeWeight(); !almostEqual(got, 6.0) {
		t.Errorf("TotalEdgeWeight() = %g, want 6", got)
	}
}

// TestBuild_NeighborsSymmetric tests that every edge appears from both endpoints
func TestBuild_NeighborsSymmetric(t *testing.T) {
	g := buildTestGraph(t, 4, []Edge{
		{U: 0, V: 1, Weight: 1.0},
		{U: 1, V: 2, Weight: 1.0},
		{U: 2, V: 3, Weight: 1.0},
	})

	for v := 0; v < g.NumVertices(); v++ {
		neighbors, weights := g.Neighbors(v)
		for i, u := range neighbors {
			back, backWeights := g.Neighbors(u)
			found := false
			for j, w := range back {
				if w == v && almostEqual(backWeights[j], weights[i]) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Edge (%d,%d) not mirrored in Neighbors(%d)", v, u, u)
			}
		}
	}
}

// TestBuild_SelfLoop tests that self loops stay out of adjacency but count in degree
func TestBuild_SelfLoop(t *testing.T) {
	g := buildTestGraph(t, 2, []Edge{
		{U: 0, V: 1, Weight: 1.0},
		{U: 0, V: 0, Weight: 2.5},
	})

	neighbors, _ := g.Neighbors(0)
	if len(neighbors) != 1 || neighbors[0] != 1 {
		t.Errorf("Neighbors(0) = %v, want [1]", neighbors)
	}

	if got := g.SelfLoop(0); !almostEqual(got, 2.5) {
		t.Errorf("SelfLoop(0) = %g, want 2.5", got)
	}

	// Self loop contributes twice to the weighted degree
	if got := g.Degree(0); !almostEqual(got, 6.0) {
		t.Errorf("Degree(0) = %g, want 6", got)
	}
	if got := g.NumEdges(); got != 2 {
		t.Errorf("NumEdges() = %d, want 2", got)
	}
	if got := g.TotalEdgeWeight(); !almostEqual(got, 3.5) {
		t.Errorf("TotalEdgeWeight() = %g, want 3.5", got)
	}
}

// TestBuild_DuplicateEdges tests that parallel edges accumulate in the degree
func TestBuild_DuplicateEdges(t *testing.T) {
	g := buildTestGraph(t, 2, []Edge{
		{U: 0, V: 1, Weight: 1.0},
		{U: 1, V: 0, Weight: 0.5},
	})

	if got := g.Degree(0); !almostEqual(got, 1.5) {
		t.Errorf("Degree(0) = %g, want 1.5", got)
	}
	if got := g.TotalWeight(); !almostEqual(got, 3.0) {
		t.Errorf("TotalWeight() = %g, want 3", got)
	}
}

// TestBuild_NegativeWeight tests rejection of negative edge weights
func TestBuild_NegativeWeight(t *testing.T) {
	_, err := FromEdges(2, []Edge{{U: 0, V: 1, Weight: -1.0}})
	if err == nil {
		t.Fatal("Expected error for negative weight, got nil")
	}

	if !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("Expected ErrNegativeWeight, got %v", err)
	}
	if !errors.Is(err, ErrMalformedGraph) {
		t.Errorf("Expected error to match ErrMalformedGraph, got %v", err)
	}

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedError, got %T", err)
	}
	if malformed.U != 0 || malformed.V != 1 {
		t.Errorf("Expected endpoints (0,1), got (%d,%d)", malformed.U, malformed.V)
	}
}

// TestBuild_NonFiniteWeight tests rejection of NaN and infinite weights
func TestBuild_NonFiniteWeight(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEdges(2, []Edge{{U: 0, V: 1, Weight: tc.weight}})
			if err == nil {
				t.Fatal("Expected error for non-finite weight, got nil")
			}
			if !errors.Is(err, ErrNonFiniteWeight) {
				t.Errorf("Expected ErrNonFiniteWeight, got %v", err)
			}
			if !errors.Is(err, ErrMalformedGraph) {
				t.Errorf("Expected error to match ErrMalformedGraph, got %v", err)
			}
		})
	}
}

// TestBuild_VertexOutOfRange tests rejection of out-of-range endpoints
func TestBuild_VertexOutOfRange(t *testing.T) {
	cases := []Edge{
		{U: -1, V: 0, Weight: 1.0},
		{U: 0, V: 3, Weight: 1.0},
		{U: 5, V: 1, Weight: 1.0},
	}
	for _, e := range cases {
		_, err := FromEdges(3, []Edge{e})
		if err == nil {
			t.Errorf("Expected error for edge (%d,%d), got nil", e.U, e.V)
			continue
		}
		if !errors.Is(err, ErrVertexOutOfRange) {
			t.Errorf("Edge (%d,%d): expected ErrVertexOutOfRange, got %v", e.U, e.V, err)
		}
	}
}

// TestBuild_NoEdges tests a vertex-only graph
func TestBuild_NoEdges(t *testing.T) {
	g := buildTestGraph(t, 4, nil)

	if g.NumVertices() != 4 {
		t.Errorf("Expected 4 vertices, got %d", g.NumVertices())
	}
	if g.NumEdges() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.NumEdges())
	}
	if g.TotalWeight() != 0 {
		t.Errorf("Expected zero total weight, got %g", g.TotalWeight())
	}
	for v := 0; v < 4; v++ {
		neighbors, _ := g.Neighbors(v)
		if len(neighbors) != 0 {
			t.Errorf("Neighbors(%d) = %v, want empty", v, neighbors)
		}
	}
}

// TestBuilder_Streaming tests the incremental AddEdge path
func TestBuilder_Streaming(t *testing.T) {
	b := NewBuilder(3)
	b.AddEdge(0, 1, 1.0)
	b.AddEdge(1, 2, 1.0)

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.NumEdges() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.NumEdges())
	}
	if !almostEqual(g.Degree(1), 2.0) {
		t.Errorf("Degree(1) = %g, want 2", g.Degree(1))
	}
}
