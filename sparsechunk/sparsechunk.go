// Package sparsechunk implements SparseChunk, a fixed-capacity inline sparse
// map from an index in [0, N) to a value, using package bitmap to track
// which indices are occupied.
package sparsechunk

import (
	"fmt"
	"iter"

	"golang.org/x/exp/maps"

	"github.com/joeycumines/go-sizedchunks/bitmap"
)

// SparseChunk is an inline sparse array: slot i holds a live value iff occ's
// bit i is set. The zero value is not usable — build one with New.
type SparseChunk[A any] struct {
	data []A
	occ  *bitmap.Bitmap
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("sparsechunk: "+format, args...))
}

// New returns an empty SparseChunk with capacity n.
func New[A any](n int) *SparseChunk[A] {
	if n < 0 {
		panicf("new: negative capacity %d", n)
	}
	return &SparseChunk[A]{data: make([]A, n), occ: bitmap.New(n)}
}

// Unit returns a SparseChunk of capacity n with index i set to v.
func Unit[A any](n, i int, v A) *SparseChunk[A] {
	c := New[A](n)
	c.Insert(i, v)
	return c
}

// Pair returns a SparseChunk of capacity n with index i1 set to v1 and index
// i2 set to v2.
func Pair[A any](n, i1 int, v1 A, i2 int, v2 A) *SparseChunk[A] {
	c := New[A](n)
	c.Insert(i1, v1)
	c.Insert(i2, v2)
	return c
}

func (c *SparseChunk[A]) checkRange(i int) {
	if i < 0 || i >= len(c.data) {
		panicf("index out of range: %d (capacity %d)", i, len(c.data))
	}
}

// Len reports the number of occupied slots.
func (c *SparseChunk[A]) Len() int { return c.occ.Len() }

// Cap reports the fixed capacity N.
func (c *SparseChunk[A]) Cap() int { return len(c.data) }

// IsEmpty reports whether no slots are occupied.
func (c *SparseChunk[A]) IsEmpty() bool { return c.occ.IsEmpty() }

// Insert sets index i to v. If i was already occupied, its old value is
// returned alongside true; otherwise the zero value and false. It panics if
// i is out of range.
func (c *SparseChunk[A]) Insert(i int, v A) (A, bool) {
	c.checkRange(i)
	if c.occ.Get(i) {
		old := c.data[i]
		c.data[i] = v
		return old, true
	}
	c.occ.Set(i, true)
	c.data[i] = v
	var zero A
	return zero, false
}

// Remove clears index i, returning its value and true if it was occupied, or
// the zero value and false otherwise. It panics if i is out of range.
func (c *SparseChunk[A]) Remove(i int) (A, bool) {
	c.checkRange(i)
	if !c.occ.Get(i) {
		var zero A
		return zero, false
	}
	v := c.data[i]
	var zero A
	c.data[i] = zero
	c.occ.Set(i, false)
	return v, true
}

// Get returns the value at index i and whether it is occupied.
func (c *SparseChunk[A]) Get(i int) (A, bool) {
	if i < 0 || i >= len(c.data) || !c.occ.Get(i) {
		var zero A
		return zero, false
	}
	return c.data[i], true
}

// GetPtr returns a pointer to the value at index i, or nil if unoccupied or
// out of range. The pointer aliases the chunk's backing storage.
func (c *SparseChunk[A]) GetPtr(i int) *A {
	if i < 0 || i >= len(c.data) || !c.occ.Get(i) {
		return nil
	}
	return &c.data[i]
}

// At returns the value at index i. It panics if i is absent or out of
// range.
func (c *SparseChunk[A]) At(i int) A {
	v, ok := c.Get(i)
	if !ok {
		panicf("at: index %d absent or out of range (capacity %d)", i, len(c.data))
	}
	return v
}

// Pop removes and returns the value at the smallest occupied index, or
// (zero, false) if the chunk is empty.
func (c *SparseChunk[A]) Pop() (A, bool) {
	idx, ok := c.occ.FirstIndex()
	if !ok {
		var zero A
		return zero, false
	}
	v, _ := c.Remove(idx)
	return v, true
}

// FirstIndex returns the smallest occupied index, if any.
func (c *SparseChunk[A]) FirstIndex() (int, bool) {
	return c.occ.FirstIndex()
}

// Values yields occupied values in ascending index order.
func (c *SparseChunk[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := range c.occ.Indices() {
			if !yield(c.data[i]) {
				return
			}
		}
	}
}

// Entries yields (index, value) pairs in ascending index order.
func (c *SparseChunk[A]) Entries() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i := range c.occ.Indices() {
			if !yield(i, c.data[i]) {
				return
			}
		}
	}
}

// Drain yields (index, value) pairs in ascending index order, removing each
// as it is yielded. If the consumer stops early, every remaining occupied
// slot is still cleared.
func (c *SparseChunk[A]) Drain() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for {
			idx, ok := c.occ.FirstIndex()
			if !ok {
				return
			}
			v, _ := c.Remove(idx)
			if !yield(idx, v) {
				c.Clear()
				return
			}
		}
	}
}

// Slot is one position of the capacity-N index space, as produced by
// Slots walking every index in [0, N), present or not.
type Slot[A any] struct {
	Index   int
	Value   A
	Present bool
}

// Slots walks every index in [0, N), reporting whether each is occupied.
func (c *SparseChunk[A]) Slots() iter.Seq[Slot[A]] {
	return func(yield func(Slot[A]) bool) {
		for i := 0; i < len(c.data); i++ {
			s := Slot[A]{Index: i, Present: c.occ.Get(i)}
			if s.Present {
				s.Value = c.data[i]
			}
			if !yield(s) {
				return
			}
		}
	}
}

// ToMap copies the occupied entries out into a freshly allocated map.
func (c *SparseChunk[A]) ToMap() map[int]A {
	m := make(map[int]A, c.Len())
	for i, v := range c.Entries() {
		m[i] = v
	}
	return m
}

// Clear drops every occupied value and empties the occupancy map.
func (c *SparseChunk[A]) Clear() {
	var zero A
	for i := range c.occ.Indices() {
		c.data[i] = zero
	}
	c.occ = bitmap.New(len(c.data))
}

// CloneFunc builds an independent copy of c, applying cloneElem to every
// occupied value. Clone is always explicit, even when A happens to be
// trivially copyable, since cloning the occupancy bitmap and the values are
// two separate steps.
func (c *SparseChunk[A]) CloneFunc(cloneElem func(A) A) *SparseChunk[A] {
	out := New[A](len(c.data))
	for i, v := range c.Entries() {
		out.Insert(i, cloneElem(v))
	}
	return out
}

// Clone returns a structural copy of c; for value-typed A this is a fully
// independent container.
func (c *SparseChunk[A]) Clone() *SparseChunk[A] {
	return c.CloneFunc(func(a A) A { return a })
}

// Equal reports whether a and b have identical occupancy and identical
// values at every occupied index.
func Equal[A comparable](a, b *SparseChunk[A]) bool {
	if !a.occ.Equal(b.occ) {
		return false
	}
	for i := range a.occ.Indices() {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualMap reports whether c holds exactly the entries of m.
func EqualMap[A comparable](c *SparseChunk[A], m map[int]A) bool {
	return maps.Equal(c.ToMap(), m)
}

// Reset clears c back to the empty state, for reuse from a pool. See
// package pool.
func (c *SparseChunk[A]) Reset() {
	c.Clear()
}

// CloneInto deep-copies c's occupied entries into dst, which must have at
// least c's capacity and be logically empty (as after Reset).
func (c *SparseChunk[A]) CloneInto(dst *SparseChunk[A], cloneElem func(A) A) {
	if len(dst.data) < len(c.data) {
		panicf("clone_into: destination capacity %d smaller than source %d", len(dst.data), len(c.data))
	}
	for i, v := range c.Entries() {
		dst.Insert(i, cloneElem(v))
	}
}
