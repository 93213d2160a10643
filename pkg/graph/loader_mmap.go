package graph

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/mmap"
)

// binaryRecordSize is the fixed width of one edge record in the binary
// format: u uint32, v uint32, weight float64, all little-endian.
const binaryRecordSize = 16

// LoadBinaryEdgeList memory-maps a fixed-record binary edge-list file and
// builds a Graph. The format is intended for large inputs where text parsing
// dominates load time.
func LoadBinaryEdgeList(path string) (*Graph, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap edge list: %w", err)
	}
	defer r.Close()

	size := r.Len()
	if size%binaryRecordSize != 0 {
		return nil, fmt.Errorf("binary edge list truncated: %d bytes: %w", size, ErrMalformedGraph)
	}

	numRecords := size / binaryRecordSize
	edges := make([]Edge, 0, numRecords)
	maxID := -1

	buf := make([]byte, binaryRecordSize)
	for i := 0; i < numRecords; i++ {
		if _, err := r.ReadAt(buf, int64(i)*binaryRecordSize); err != nil {
			return nil, fmt.Errorf("read edge record %d: %w", i, err)
		}

		u := int(binary.LittleEndian.Uint32(buf[0:4]))
		v := int(binary.LittleEndian.Uint32(buf[4:8]))
		weight := math.Float64frombits(binary.LittleEndian.Uint64(buf[8:16]))

		edges = append(edges, Edge{U: u, V: v, Weight: weight})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}

	return FromEdges(maxID+1, edges)
}
