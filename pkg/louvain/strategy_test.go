package louvain

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/graphmason/communities/pkg/graph"
)

// TestCommitPolicy tests the strategy-to-policy mapping
func TestCommitPolicy(t *testing.T) {
	if FullSync.commitPolicy() != commitDeferred {
		t.Error("FullSync should defer commits")
	}
	if FullSyncEarlyTerminate.commitPolicy() != commitDeferred {
		t.Error("FullSyncEarlyTerminate should defer commits")
	}
	if EarlyTerminate.commitPolicy() != commitImmediate {
		t.Error("EarlyTerminate should commit immediately")
	}
}

// TestConverged tests each strategy's inner-loop exit rule
func TestConverged(t *testing.T) {
	opts := DefaultOptions() // epsilon 1e-6, minMoved 0.01

	cases := []struct {
		name     string
		strategy Strategy
		passGain float64
		moved    int
		vertices int
		want     bool
	}{
		{"zero moves stops everything", FullSync, 1.0, 0, 100, true},
		{"fullSync keeps going on gain", FullSync, 0.1, 50, 100, false},
		{"fullSync stops below epsilon", FullSync, 1e-9, 50, 100, true},
		{"fullSync ignores moved fraction", FullSync, 0.1, 1, 1000, false},
		{"earlyTerminate stops on low fraction", EarlyTerminate, 0.5, 1, 1000, true},
		{"earlyTerminate keeps going on fraction", EarlyTerminate, 1e-9, 500, 1000, false},
		{"hybrid stops below epsilon", FullSyncEarlyTerminate, 1e-9, 500, 1000, true},
		{"hybrid stops on low fraction", FullSyncEarlyTerminate, 0.5, 1, 1000, true},
		{"hybrid keeps going otherwise", FullSyncEarlyTerminate, 0.1, 500, 1000, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.strategy.converged(tc.passGain, tc.moved, tc.vertices, &opts)
			if got != tc.want {
				t.Errorf("converged(%g, %d, %d) = %v, want %v", tc.passGain, tc.moved, tc.vertices, got, tc.want)
			}
		})
	}
}

// ringOfCliques builds k cliques of the given size joined into a ring by
// single unit edges
func ringOfCliques(t *testing.T, k, size int) *graph.Graph {
	t.Helper()

	n := k * size
	var edges []graph.Edge
	for c := 0; c < k; c++ {
		base := c * size
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				edges = append(edges, graph.Edge{U: base + i, V: base + j, Weight: 1})
			}
		}
		next := ((c+1)%k)*size
		edges = append(edges, graph.Edge{U: base, V: next, Weight: 1})
	}

	g, err := graph.FromEdges(n, edges)
	if err != nil {
		t.Fatalf("FromEdges failed: %v", err)
	}
	return g
}

// TestStrategies_RingOfCliques tests that all strategies land close to each
// other on a graph with planted structure
func TestStrategies_RingOfCliques(t *testing.T) {
	g := ringOfCliques(t, 6, 5)

	scores := make(map[Strategy]float64)
	for _, strategy := range []Strategy{FullSync, EarlyTerminate, FullSyncEarlyTerminate} {
		opts := DefaultOptions()
		opts.SyncStrategy = strategy
		opts.NumThreads = 2

		result, err := Detect(context.Background(), g, opts)
		if err != nil {
			t.Fatalf("Detect(%v) failed: %v", strategy, err)
		}
		if result.Modularity < 0.55 {
			t.Errorf("%v: modularity %g, expected planted cliques to score above 0.55", strategy, result.Modularity)
		}
		scores[strategy] = result.Modularity
	}

	// Throughput-oriented strategies trade a bounded amount of quality
	if diff := math.Abs(scores[FullSync] - scores[EarlyTerminate]); diff > 0.15 {
		t.Errorf("EarlyTerminate diverged from FullSync by %g", diff)
	}
	if diff := math.Abs(scores[FullSync] - scores[FullSyncEarlyTerminate]); diff > 0.15 {
		t.Errorf("FullSyncEarlyTerminate diverged from FullSync by %g", diff)
	}
}

// TestRunPass_ImmediateVisibility tests that EarlyTerminate converges on a
// noisy graph without violating assignment validity
func TestRunPass_ImmediateVisibility(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 40
	var edges []graph.Edge
	for i := 0; i < 3*n; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, graph.Edge{U: u, V: v, Weight: 1})
	}
	g := buildTestGraph(t, n, edges)

	opts := DefaultOptions()
	opts.SyncStrategy = EarlyTerminate
	opts.NumThreads = 4

	result, err := Detect(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if len(result.Communities) != n {
		t.Fatalf("Expected %d labels, got %d", n, len(result.Communities))
	}
	for v, c := range result.Communities {
		if c < 0 || c >= result.NumCommunities {
			t.Errorf("Vertex %d has out-of-range community %d", v, c)
		}
	}
}
