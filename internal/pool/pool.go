// Package pool provides a typed sync.Pool used for marshalling scratch buffers.
package pool

import "sync"

// Pool is a generic wrapper around sync.Pool. When a reset function is
// configured it runs on every Put, so Get never returns dirty state.
type Pool[T any] struct {
	internal sync.Pool
	reset    func(T)
}

// New creates a new Pool with the given constructor.
func New[T any](newFn func() T) *Pool[T] {
	return NewWithReset(newFn, nil)
}

// NewWithReset creates a Pool whose items are reset before they are reused.
func NewWithReset[T any](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
		reset: reset,
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	if p.reset != nil {
		p.reset(item)
	}
	p.internal.Put(item)
}
