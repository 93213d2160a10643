package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// ReadEdgeList parses a whitespace-separated edge list from r.
// Each non-empty line is "u v" or "u v weight"; lines starting with '#' or
// '%' are comments. Unweighted edges default to weight 1.0. The vertex count
// is the highest id seen plus one.
func ReadEdgeList(r io.Reader) ([]Edge, int, error) {
	var edges []Edge
	maxID := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, 0, fmt.Errorf("line %d: expected 2 or 3 fields, got %d: %w", lineNo, len(fields), ErrMalformedGraph)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNo, fields[0], ErrMalformedGraph)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNo, fields[1], ErrMalformedGraph)
		}
		if u < 0 || v < 0 {
			return nil, 0, fmt.Errorf("line %d: negative vertex id: %w", lineNo, ErrVertexOutOfRange)
		}

		weight := 1.0
		if len(fields) == 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: invalid weight %q: %w", lineNo, fields[2], ErrMalformedGraph)
			}
		}

		edges = append(edges, Edge{U: u, V: v, Weight: weight})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading edge list: %w", err)
	}

	return edges, maxID + 1, nil
}

// LoadEdgeList reads an edge-list file and builds a Graph. Files with a
// ".sz" or ".snappy" extension are decompressed with snappy on the fly.
func LoadEdgeList(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".sz", ".snappy":
		r = snappy.NewReader(f)
	}

	edges, numVertices, err := ReadEdgeList(r)
	if err != nil {
		return nil, err
	}
	return FromEdges(numVertices, edges)
}

// WriteEdgeList writes g in the text edge-list format understood by
// ReadEdgeList, each undirected edge once, self loops as "v v w".
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < g.NumVertices(); v++ {
		if s := g.SelfLoop(v); s > 0 {
			if _, err := fmt.Fprintf(bw, "%d %d %g\n", v, v, s); err != nil {
				return err
			}
		}
		neighbors, weights := g.Neighbors(v)
		for i, u := range neighbors {
			if v < u { // emit each undirected edge once
				if _, err := fmt.Fprintf(bw, "%d %d %g\n", v, u, weights[i]); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
