// Package chunk implements Chunk, a fixed-capacity, contiguous sliding
// window over an inline backing array. It is the deque kernel to reach for
// when slice exposure matters more than guaranteed O(1) ends; see
// package ringbuffer for the wrap-around alternative.
package chunk

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Chunk is a deque backed by a single pre-allocated slice of capacity N. The
// live elements occupy the half-open window [left, right); everything
// outside it is zero-valued. The zero value of Chunk is not usable — build
// one with New or one of the other constructors.
type Chunk[A any] struct {
	data        []A
	left, right int
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("chunk: "+format, args...))
}

// New returns an empty Chunk with capacity n.
func New[A any](n int) *Chunk[A] {
	if n < 0 {
		panicf("new: negative capacity %d", n)
	}
	return &Chunk[A]{data: make([]A, n)}
}

// Unit returns a Chunk of capacity n holding the single element a, positioned
// roughly centered in the backing array so it can absorb pushes to either
// end before a recenter is needed.
func Unit[A any](n int, a A) *Chunk[A] {
	if n < 1 {
		panicf("unit: capacity %d too small for one element", n)
	}
	c := New[A](n)
	c.left = (n - 1) / 2
	c.right = c.left + 1
	c.data[c.left] = a
	return c
}

// Pair returns a Chunk of capacity n holding a followed by b.
func Pair[A any](n int, a, b A) *Chunk[A] {
	if n < 2 {
		panicf("pair: capacity %d too small for two elements", n)
	}
	c := New[A](n)
	c.left = (n - 2) / 2
	c.right = c.left + 2
	c.data[c.left] = a
	c.data[c.left+1] = b
	return c
}

// FromSlice builds a Chunk of capacity n from xs, in order. It panics if xs
// has more than n elements.
func FromSlice[A any](n int, xs []A) *Chunk[A] {
	if len(xs) > n {
		panicf("from_slice: %d elements exceed capacity %d", len(xs), n)
	}
	c := New[A](n)
	copy(c.data, xs)
	c.right = len(xs)
	return c
}

// CollectFrom moves the next k values out of next into a new Chunk of
// capacity n. It panics if k exceeds n or next is exhausted before yielding
// k values.
func CollectFrom[A any](n int, next func() (A, bool), k int) *Chunk[A] {
	if k > n {
		panicf("collect_from: count %d exceeds capacity %d", k, n)
	}
	c := New[A](n)
	for i := 0; i < k; i++ {
		v, ok := next()
		if !ok {
			panicf("collect_from: iterator exhausted after %d of %d elements", i, k)
		}
		c.data[i] = v
	}
	c.right = k
	return c
}

// DrainFrom moves every element out of other, in order, into a freshly
// constructed Chunk of the same capacity. other is left empty.
func DrainFrom[A any](other *Chunk[A]) *Chunk[A] {
	c := New[A](cap(other.data))
	c.Append(other)
	return c
}

// FromFront takes the first k elements of other into a new Chunk of the same
// capacity, leaving the remainder of other in place.
func FromFront[A any](other *Chunk[A], k int) *Chunk[A] {
	if k > other.Len() {
		panicf("from_front: count %d exceeds length %d", k, other.Len())
	}
	c := New[A](cap(other.data))
	copy(c.data[:k], other.data[other.left:other.left+k])
	var zero A
	for i := 0; i < k; i++ {
		other.data[other.left+i] = zero
	}
	other.left += k
	c.right = k
	return c
}

// FromBack takes the last k elements of other into a new Chunk of the same
// capacity, leaving the remainder of other in place.
func FromBack[A any](other *Chunk[A], k int) *Chunk[A] {
	if k > other.Len() {
		panicf("from_back: count %d exceeds length %d", k, other.Len())
	}
	c := New[A](cap(other.data))
	copy(c.data[:k], other.data[other.right-k:other.right])
	var zero A
	for i := 0; i < k; i++ {
		other.data[other.right-k+i] = zero
	}
	other.right -= k
	c.right = k
	return c
}

// Len reports the number of live elements.
func (c *Chunk[A]) Len() int { return c.right - c.left }

// Cap reports the fixed capacity N.
func (c *Chunk[A]) Cap() int { return cap(c.data) }

// IsEmpty reports whether the chunk holds no elements.
func (c *Chunk[A]) IsEmpty() bool { return c.right == c.left }

// IsFull reports whether the chunk is at capacity.
func (c *Chunk[A]) IsFull() bool { return c.Len() == cap(c.data) }

// Slice exposes the live window as a slice aliasing the backing array.
// Mutating it mutates the chunk; it is invalidated by any operation that
// moves the window (a push that triggers a recenter, insert, remove, etc).
func (c *Chunk[A]) Slice() []A { return c.data[c.left:c.right] }

// Get returns the element at logical index i, or the zero value and false if
// i is out of range.
func (c *Chunk[A]) Get(i int) (A, bool) {
	if i < 0 || i >= c.Len() {
		var zero A
		return zero, false
	}
	return c.data[c.left+i], true
}

// At returns the element at logical index i. It panics if i is out of range.
func (c *Chunk[A]) At(i int) A {
	if i < 0 || i >= c.Len() {
		panicf("at: index %d out of range (len %d)", i, c.Len())
	}
	return c.data[c.left+i]
}

// Set overwrites the element at logical index i. It panics if i is out of
// range.
func (c *Chunk[A]) Set(i int, v A) {
	if i < 0 || i >= c.Len() {
		panicf("set: index %d out of range (len %d)", i, c.Len())
	}
	c.data[c.left+i] = v
}

// recenter repositions the live window within the backing array via a
// single bulk move, biasing the target so the side the caller needs (left
// when needLeft, otherwise right) ends up with at least one free slot
// whenever any free capacity exists at all. A plain midpoint split can
// round every free slot onto the side the caller does NOT need (e.g. one
// free slot total rounds to newLeft == 0, leaving no room on the left), so
// needLeft nudges the target away from 0 in that single-slot case.
func (c *Chunk[A]) recenter(needLeft bool) {
	length := c.Len()
	n := cap(c.data)
	free := n - length
	newLeft := free / 2
	if needLeft && newLeft == 0 && free > 0 {
		newLeft = 1
	}
	if newLeft == c.left {
		return
	}
	copy(c.data[newLeft:newLeft+length], c.data[c.left:c.right])
	var zero A
	if newLeft > c.left {
		hi := newLeft
		if hi > c.right {
			hi = c.right
		}
		for i := c.left; i < hi; i++ {
			c.data[i] = zero
		}
	} else {
		lo := newLeft + length
		if lo < c.left {
			lo = c.left
		}
		for i := lo; i < c.right; i++ {
			c.data[i] = zero
		}
	}
	c.left, c.right = newLeft, newLeft+length
}

// PushFront prepends v. It panics if the chunk is full.
func (c *Chunk[A]) PushFront(v A) {
	if c.IsFull() {
		panicf("push_front: chunk at capacity %d", cap(c.data))
	}
	if c.left == 0 {
		c.recenter(true)
	}
	c.left--
	c.data[c.left] = v
}

// PushBack appends v. It panics if the chunk is full.
func (c *Chunk[A]) PushBack(v A) {
	if c.IsFull() {
		panicf("push_back: chunk at capacity %d", cap(c.data))
	}
	if c.right == cap(c.data) {
		c.recenter(false)
	}
	c.data[c.right] = v
	c.right++
}

// PopFront removes and returns the first element, or (zero, false) if empty.
func (c *Chunk[A]) PopFront() (A, bool) {
	if c.IsEmpty() {
		var zero A
		return zero, false
	}
	v := c.data[c.left]
	var zero A
	c.data[c.left] = zero
	c.left++
	return v, true
}

// PopBack removes and returns the last element, or (zero, false) if empty.
func (c *Chunk[A]) PopBack() (A, bool) {
	if c.IsEmpty() {
		var zero A
		return zero, false
	}
	c.right--
	v := c.data[c.right]
	var zero A
	c.data[c.right] = zero
	return v, true
}

// Insert places v at logical index i, shifting whichever side of the window
// is shorter. It panics if i > Len() or the chunk is full.
func (c *Chunk[A]) Insert(i int, v A) {
	length := c.Len()
	if i > length {
		panicf("insert: index %d exceeds length %d", i, length)
	}
	if length == cap(c.data) {
		panicf("insert: chunk at capacity %d", cap(c.data))
	}
	if i <= length-i {
		if c.left == 0 {
			c.recenter(true)
		}
		copy(c.data[c.left-1:c.left-1+i], c.data[c.left:c.left+i])
		c.data[c.left-1+i] = v
		c.left--
	} else {
		if c.right == cap(c.data) {
			c.recenter(false)
		}
		copy(c.data[c.left+i+1:c.right+1], c.data[c.left+i:c.right])
		c.data[c.left+i] = v
		c.right++
	}
}

// InsertFrom inserts every element of xs at logical index i, in order. It
// panics if i > Len() or the combined length would exceed capacity.
func (c *Chunk[A]) InsertFrom(i int, xs []A) {
	length := c.Len()
	if i > length {
		panicf("insert_from: index %d exceeds length %d", i, length)
	}
	m := len(xs)
	n := cap(c.data)
	if length+m > n {
		panicf("insert_from: combined length %d exceeds capacity %d", length+m, n)
	}
	if m == 0 {
		return
	}
	old := make([]A, length)
	copy(old, c.Slice())
	var zero A
	for k := c.left; k < c.right; k++ {
		c.data[k] = zero
	}
	newLen := length + m
	newLeft := (n - newLen) / 2
	copy(c.data[newLeft:newLeft+i], old[:i])
	copy(c.data[newLeft+i:newLeft+i+m], xs)
	copy(c.data[newLeft+i+m:newLeft+newLen], old[i:])
	c.left = newLeft
	c.right = newLeft + newLen
}

// InsertOrdered inserts v at its binary-search position, assuming the chunk
// is already sorted ascending. It panics if the chunk is full.
func InsertOrdered[A constraints.Ordered](c *Chunk[A], v A) {
	if c.IsFull() {
		panicf("insert_ordered: chunk at capacity %d", cap(c.data))
	}
	pos, _ := slices.BinarySearch(c.Slice(), v)
	c.Insert(pos, v)
}

// Remove deletes and returns the element at logical index i, shifting
// whichever side of the window is shorter. It panics if i >= Len().
func (c *Chunk[A]) Remove(i int) A {
	length := c.Len()
	if i >= length {
		panicf("remove: index %d out of range (len %d)", i, length)
	}
	v := c.data[c.left+i]
	var zero A
	if i <= length-1-i {
		copy(c.data[c.left+1:c.left+1+i], c.data[c.left:c.left+i])
		c.data[c.left] = zero
		c.left++
	} else {
		copy(c.data[c.left+i:c.right-1], c.data[c.left+i+1:c.right])
		c.data[c.right-1] = zero
		c.right--
	}
	return v
}

// DropLeft discards the first i elements. It panics if i > Len().
func (c *Chunk[A]) DropLeft(i int) {
	length := c.Len()
	if i > length {
		panicf("drop_left: count %d exceeds length %d", i, length)
	}
	var zero A
	for k := c.left; k < c.left+i; k++ {
		c.data[k] = zero
	}
	c.left += i
}

// DropRight retains only the first i elements, discarding the rest. It
// panics if i > Len().
func (c *Chunk[A]) DropRight(i int) {
	length := c.Len()
	if i > length {
		panicf("drop_right: count %d exceeds length %d", i, length)
	}
	var zero A
	for k := c.left + i; k < c.right; k++ {
		c.data[k] = zero
	}
	c.right = c.left + i
}

// SplitOff removes the elements from logical index i onward into a new
// Chunk, which it returns; self retains [0, i). It panics if i > Len().
func (c *Chunk[A]) SplitOff(i int) *Chunk[A] {
	length := c.Len()
	if i > length {
		panicf("split_off: index %d exceeds length %d", i, length)
	}
	out := New[A](cap(c.data))
	tail := length - i
	copy(out.data[:tail], c.data[c.left+i:c.right])
	var zero A
	for k := c.left + i; k < c.right; k++ {
		c.data[k] = zero
	}
	c.right = c.left + i
	out.right = tail
	return out
}

// Append moves every element of other to the back of c. It panics if the
// combined length would exceed capacity.
func (c *Chunk[A]) Append(other *Chunk[A]) {
	if c.Len()+other.Len() > cap(c.data) {
		panicf("append: combined length %d exceeds capacity %d", c.Len()+other.Len(), cap(c.data))
	}
	var zero A
	for other.left < other.right {
		if c.right == cap(c.data) {
			c.recenter(false)
		}
		room := cap(c.data) - c.right
		take := other.Len()
		if take > room {
			take = room
		}
		copy(c.data[c.right:c.right+take], other.data[other.left:other.left+take])
		c.right += take
		for k := 0; k < take; k++ {
			other.data[other.left+k] = zero
		}
		other.left += take
	}
	other.left, other.right = 0, 0
}

// DrainFromFront moves the first k elements of other onto the back of c. It
// panics if k exceeds other's length or the combined length would exceed
// capacity.
func (c *Chunk[A]) DrainFromFront(other *Chunk[A], k int) {
	if k > other.Len() {
		panicf("drain_from_front: count %d exceeds length %d", k, other.Len())
	}
	if c.Len()+k > cap(c.data) {
		panicf("drain_from_front: combined length %d exceeds capacity %d", c.Len()+k, cap(c.data))
	}
	var zero A
	for k > 0 {
		if c.right == cap(c.data) {
			c.recenter(false)
		}
		room := cap(c.data) - c.right
		take := k
		if take > room {
			take = room
		}
		copy(c.data[c.right:c.right+take], other.data[other.left:other.left+take])
		c.right += take
		for i := 0; i < take; i++ {
			other.data[other.left+i] = zero
		}
		other.left += take
		k -= take
	}
}

// DrainFromBack moves the last k elements of other onto the front of c. It
// panics if k exceeds other's length or the combined length would exceed
// capacity.
func (c *Chunk[A]) DrainFromBack(other *Chunk[A], k int) {
	if k > other.Len() {
		panicf("drain_from_back: count %d exceeds length %d", k, other.Len())
	}
	if c.Len()+k > cap(c.data) {
		panicf("drain_from_back: combined length %d exceeds capacity %d", c.Len()+k, cap(c.data))
	}
	var zero A
	for k > 0 {
		if c.left == 0 {
			c.recenter(true)
		}
		room := c.left
		take := k
		if take > room {
			take = room
		}
		copy(c.data[c.left-take:c.left], other.data[other.right-take:other.right])
		c.left -= take
		for i := 0; i < take; i++ {
			other.data[other.right-take+i] = zero
		}
		other.right -= take
		k -= take
	}
}

// Clear drops every live element and resets the window to the origin.
func (c *Chunk[A]) Clear() {
	var zero A
	for k := c.left; k < c.right; k++ {
		c.data[k] = zero
	}
	c.left, c.right = 0, 0
}

// Drain returns a front-to-back, single-use iterator that removes elements
// as it yields them. If the consumer stops early (including by a panic
// unwinding through a range loop), every element not yet yielded is still
// cleared and the chunk still ends up empty.
func (c *Chunk[A]) Drain() iter.Seq[A] {
	return func(yield func(A) bool) {
		var zero A
		defer func() {
			for c.left < c.right {
				c.data[c.left] = zero
				c.left++
			}
			c.left, c.right = 0, 0
		}()
		for c.left < c.right {
			v := c.data[c.left]
			c.data[c.left] = zero
			c.left++
			if !yield(v) {
				return
			}
		}
	}
}

// DrainBack is Drain's back-to-front counterpart.
func (c *Chunk[A]) DrainBack() iter.Seq[A] {
	return func(yield func(A) bool) {
		var zero A
		defer func() {
			for c.right > c.left {
				c.right--
				c.data[c.right] = zero
			}
			c.left, c.right = 0, 0
		}()
		for c.right > c.left {
			c.right--
			v := c.data[c.right]
			c.data[c.right] = zero
			if !yield(v) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (c *Chunk[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := c.left; i < c.right; i++ {
			if !yield(c.data[i]) {
				return
			}
		}
	}
}

// ValuesBack yields elements back to front.
func (c *Chunk[A]) ValuesBack() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := c.right - 1; i >= c.left; i-- {
			if !yield(c.data[i]) {
				return
			}
		}
	}
}

// All yields (logical index, element) pairs front to back.
func (c *Chunk[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i := c.left; i < c.right; i++ {
			if !yield(i-c.left, c.data[i]) {
				return
			}
		}
	}
}

// CloneFunc builds an independent copy of c, applying cloneElem to every
// live element. If cloneElem panics partway through, the partially built
// clone's own length metadata still matches how many elements it actually
// holds, so it remains internally consistent even though the caller never
// gets to use it.
func (c *Chunk[A]) CloneFunc(cloneElem func(A) A) *Chunk[A] {
	out := New[A](cap(c.data))
	out.left = c.left
	out.right = c.left
	for i := c.left; i < c.right; i++ {
		out.data[i] = cloneElem(c.data[i])
		out.right = i + 1
	}
	return out
}

// Clone returns a structural copy of c; for value-typed A this is a fully
// independent container.
func (c *Chunk[A]) Clone() *Chunk[A] {
	return c.CloneFunc(func(a A) A { return a })
}

// Equal reports whether a and b hold the same elements in the same order,
// irrespective of window position or capacity.
func Equal[A comparable](a, b *Chunk[A]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// Reset clears c back to the empty state, for reuse from a pool. See
// package pool.
func (c *Chunk[A]) Reset() {
	c.Clear()
}

// CloneInto deep-copies c's elements into dst, which must have at least c's
// capacity and be logically empty (as after Reset). It is the "clone into
// uninitialized storage" half of the pool-integration contract in package
// pool.
func (c *Chunk[A]) CloneInto(dst *Chunk[A], cloneElem func(A) A) {
	if cap(dst.data) < cap(c.data) {
		panicf("clone_into: destination capacity %d smaller than source %d", cap(dst.data), cap(c.data))
	}
	dst.left = c.left
	dst.right = c.left
	for i := c.left; i < c.right; i++ {
		dst.data[i] = cloneElem(c.data[i])
		dst.right = i + 1
	}
}
