// Package pool provides typed object pooling for scratch buffers used while
// computing flag suggestions.
package pool

import "sync"

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called before reuse
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// IntSlicePool hands out int slices of a requested length
type IntSlicePool struct {
	pool   *Pool[[]int]
	maxCap int
}

// NewIntSlicePool creates a pool whose fresh slices start at defaultCap and
// which drops slices grown beyond maxCap instead of keeping them alive.
func NewIntSlicePool(defaultCap, maxCap int) *IntSlicePool {
	return &IntSlicePool{
		pool: NewPoolWithReset(
			func() *[]int {
				slice := make([]int, 0, defaultCap)
				return &slice
			},
			func(slice *[]int) {
				*slice = (*slice)[:0]
			},
		),
		maxCap: maxCap,
	}
}

// Get returns a slice of length n. Contents are unspecified.
func (p *IntSlicePool) Get(n int) *[]int {
	slice := p.pool.Get()
	if cap(*slice) < n {
		*slice = make([]int, n)
	}
	*slice = (*slice)[:n]
	return slice
}

// Put returns slice to the pool
func (p *IntSlicePool) Put(slice *[]int) {
	if slice == nil || cap(*slice) > p.maxCap {
		return
	}
	p.pool.Put(slice)
}
