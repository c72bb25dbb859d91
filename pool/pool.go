// Package pool implements a "default into uninitialized" / "clone into
// uninitialized" pool-integration layer over the container types: a pool
// hands out reset, logically-empty containers and reclaims them by
// resetting before the next Get rather than on Put, the same allocate-
// cheap/reuse-aggressively shape as an event-loop's own chunk pool.
package pool

import "sync"

// Resettable is satisfied by every container's pointer-receiver Reset
// method: it clears the container back to its empty state so a pooled
// instance can be handed out again without carrying stale elements.
type Resettable interface {
	Reset()
}

// Pool hands out reset instances of T, pooling the underlying allocations.
// T is expected to be a pointer-to-container type (*chunk.Chunk[A],
// *ringbuffer.RingBuffer[A], *sparsechunk.SparseChunk[A], or
// *inlinearray.InlineArray[A,Host]), each of which implements Resettable.
type Pool[T Resettable] struct {
	inner sync.Pool
}

// New returns a Pool whose items are produced by newItem when the
// underlying sync.Pool is empty. newItem must return a container ready for
// use (e.g. chunk.New[int](64)).
func New[T Resettable](newItem func() T) *Pool[T] {
	p := &Pool[T]{}
	p.inner.New = func() any { return newItem() }
	return p
}

// Get returns an item from the pool, resetting it first so the caller
// always observes an empty container — the "default into uninitialized"
// pool operation, where "uninitialized" here means "whatever stale
// instance the pool happened to hold."
func (p *Pool[T]) Get() T {
	v := p.inner.Get().(T)
	v.Reset()
	return v
}

// Put returns v to the pool for reuse. It does not reset v; the next Get
// does that, so Put is cheap even under contention.
func (p *Pool[T]) Put(v T) {
	p.inner.Put(v)
}

// Cloner is satisfied by container types exposing the "clone into
// uninitialized" pool operation: deep-copy src's elements into dst, which
// must already be reset.
type Cloner[T any, A any] interface {
	CloneInto(dst T, cloneElem func(A) A)
}

// GetClone draws a reset instance from the pool and deep-copies src's
// elements into it via src's CloneInto, returning the populated clone.
func GetClone[T interface {
	Resettable
	Cloner[T, A]
}, A any](p *Pool[T], src T, cloneElem func(A) A) T {
	dst := p.Get()
	src.CloneInto(dst, cloneElem)
	return dst
}
