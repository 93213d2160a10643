// Package coloring assigns vertices to independent sets so the detection
// engine can mutate per-vertex state in parallel without read/write
// conflicts between adjacent vertices.
package coloring

import (
	"github.com/graphmason/communities/pkg/graph"
)

// Assignment maps each vertex to a color such that no edge connects two
// vertices of the same color, plus the derived ordered color classes.
type Assignment struct {
	Colors    []int   // vertex -> color index
	Classes   [][]int // color index -> member vertices, in vertex order
	NumColors int
}

// denseDegreeThreshold is the average-degree cutoff beyond which greedy
// coloring would produce many tiny classes; singleton batches are cheaper.
const denseDegreeThreshold = 256

// Greedy colors g with the sequential greedy heuristic: vertices are
// processed in id order and each receives the smallest color not used by an
// already-colored neighbor. The result is not a minimum coloring, only a
// valid one, which is all batch scheduling needs.
func Greedy(g *graph.Graph) *Assignment {
	n := g.NumVertices()
	colors := make([]int, n)
	for v := range colors {
		colors[v] = -1
	}

	numColors := 0
	used := make([]int, 0, 64) // used[c] == v marks color c taken by a neighbor of v
	for v := 0; v < n; v++ {
		neighbors, _ := g.Neighbors(v)
		for _, u := range neighbors {
			if c := colors[u]; c >= 0 {
				for len(used) <= c {
					used = append(used, -1)
				}
				used[c] = v
			}
		}

		color := 0
		for color < len(used) && used[color] == v {
			color++
		}
		colors[v] = color
		if color+1 > numColors {
			numColors = color + 1
		}
	}

	return buildClasses(colors, numColors)
}

// Singletons returns the degenerate assignment with one vertex per class,
// used when coloring overhead is not worthwhile.
func Singletons(n int) *Assignment {
	colors := make([]int, n)
	classes := make([][]int, n)
	for v := 0; v < n; v++ {
		colors[v] = v
		classes[v] = []int{v}
	}
	return &Assignment{Colors: colors, Classes: classes, NumColors: n}
}

// Partition colors g with Greedy unless the graph is dense enough that the
// coloring would degenerate, in which case it falls back to Singletons.
func Partition(g *graph.Graph) *Assignment {
	n := g.NumVertices()
	if n == 0 {
		return &Assignment{}
	}
	if g.NumEdges()*2/n > denseDegreeThreshold {
		return Singletons(n)
	}
	return Greedy(g)
}

// Validate reports whether a holds the independence invariant on g:
// color(u) != color(v) for every edge (u,v).
func (a *Assignment) Validate(g *graph.Graph) bool {
	for v := 0; v < g.NumVertices(); v++ {
		neighbors, _ := g.Neighbors(v)
		for _, u := range neighbors {
			if u != v && a.Colors[u] == a.Colors[v] {
				return false
			}
		}
	}
	return true
}

func buildClasses(colors []int, numColors int) *Assignment {
	counts := make([]int, numColors)
	for _, c := range colors {
		counts[c]++
	}
	classes := make([][]int, numColors)
	for c := range classes {
		classes[c] = make([]int, 0, counts[c])
	}
	for v, c := range colors {
		classes[c] = append(classes[c], v)
	}
	return &Assignment{Colors: colors, Classes: classes, NumColors: numColors}
}
