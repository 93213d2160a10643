package pools

import (
	"sync"
)

// WeightMapPool pools map[int]float64 scratch maps used to accumulate edge
// weight per neighbor community during move evaluation.
type WeightMapPool struct {
	pool sync.Pool
}

// NewWeightMapPool creates a new weight map pool.
func NewWeightMapPool() *WeightMapPool {
	return &WeightMapPool{
		pool: sync.Pool{
			New: func() any {
				return make(map[int]float64, 16)
			},
		},
	}
}

// Get returns a cleared map from the pool.
func (p *WeightMapPool) Get() map[int]float64 {
	m, ok := p.pool.Get().(map[int]float64)
	if !ok {
		return make(map[int]float64, 16)
	}
	clear(m)
	return m
}

// Put returns a map to the pool.
func (p *WeightMapPool) Put(m map[int]float64) {
	if m == nil || len(m) > 4096 {
		return // Don't pool nil or very large maps
	}
	p.pool.Put(m)
}

// Default global weight map pool
var defaultWeightMapPool = NewWeightMapPool()

// GetWeightMap returns a weight map from the default pool.
func GetWeightMap() map[int]float64 {
	return defaultWeightMapPool.Get()
}

// PutWeightMap returns a weight map to the default pool.
func PutWeightMap(m map[int]float64) {
	defaultWeightMapPool.Put(m)
}
