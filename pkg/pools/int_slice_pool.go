package pools

import (
	"sync"
)

// IntSlicePool pools slices of int for community id and vertex collections.
type IntSlicePool struct {
	small  sync.Pool // <= 16 elements
	medium sync.Pool // <= 64 elements
	large  sync.Pool // <= 256 elements
}

// NewIntSlicePool creates a new int slice pool.
func NewIntSlicePool() *IntSlicePool {
	return &IntSlicePool{
		small: sync.Pool{
			New: func() any {
				s := make([]int, 0, 16)
				return &s
			},
		},
		medium: sync.Pool{
			New: func() any {
				s := make([]int, 0, 64)
				return &s
			},
		},
		large: sync.Pool{
			New: func() any {
				s := make([]int, 0, 256)
				return &s
			},
		},
	}
}

// Get returns an int slice with at least the requested capacity.
func (p *IntSlicePool) Get(size int) []int {
	var pool *sync.Pool
	switch {
	case size <= 16:
		pool = &p.small
	case size <= 64:
		pool = &p.medium
	case size <= 256:
		pool = &p.large
	default:
		return make([]int, 0, size)
	}

	sp, ok := pool.Get().(*[]int)
	if !ok || cap(*sp) < size {
		return make([]int, 0, size)
	}
	return (*sp)[:0]
}

// Default global int slice pool
var defaultIntSlicePool = NewIntSlicePool()

// GetIntSlice returns an int slice from the default pool.
func GetIntSlice(size int) []int {
	return defaultIntSlicePool.Get(size)
}

// PutIntSlice returns an int slice to the default pool.
func PutIntSlice(s []int) {
	defaultIntSlicePool.Put(s)
}

// Put returns an int slice to the pool.
func (p *IntSlicePool) Put(s []int) {
	c := cap(s)
	switch {
	case c <= 0:
		return
	case c <= 16:
		s = s[:0]
		p.small.Put(&s)
	case c <= 64:
		s = s[:0]
		p.medium.Put(&s)
	case c <= 256:
		s = s[:0]
		p.large.Put(&s)
	}
}
