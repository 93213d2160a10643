// Package pools provides object pooling for reducing GC pressure.
//
// The detection engine evaluates millions of candidate moves, each needing a
// small scratch map of neighbor-community weights and a slice of community
// ids. Pooling those keeps the inner loop allocation-free:
//
//   - WeightMapPool: map[int]float64 scratch for per-community edge weights
//   - IntSlicePool: pooling for community id and vertex slices
package pools
