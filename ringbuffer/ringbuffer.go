// Package ringbuffer implements RingBuffer, a fixed-capacity wrap-around
// deque: O(1) push/pop at both ends with no recentring ever required, at the
// cost of never exposing a contiguous slice. See package chunk for the
// slice-exposing alternative.
package ringbuffer

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// RingBuffer is a deque backed by a single pre-allocated slice of capacity n,
// indexed by an origin (the physical slot holding logical index 0) and a
// length. The zero value is not usable — build one with New or one of the
// other constructors.
type RingBuffer[A any] struct {
	data   []A
	origin ringIndex
	length int
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("ringbuffer: "+format, args...))
}

// New returns an empty RingBuffer with capacity n.
func New[A any](n int) *RingBuffer[A] {
	if n < 0 {
		panicf("new: negative capacity %d", n)
	}
	data := make([]A, n)
	if n == 0 {
		return &RingBuffer[A]{data: data, origin: newRingIndex(1, 0)}
	}
	return &RingBuffer[A]{data: data, origin: newRingIndex(n, 0)}
}

// Unit returns a RingBuffer of capacity n holding the single element a.
func Unit[A any](n int, a A) *RingBuffer[A] {
	if n < 1 {
		panicf("unit: capacity %d too small for one element", n)
	}
	r := New[A](n)
	r.data[0] = a
	r.length = 1
	return r
}

// Pair returns a RingBuffer of capacity n holding a followed by b.
func Pair[A any](n int, a, b A) *RingBuffer[A] {
	if n < 2 {
		panicf("pair: capacity %d too small for two elements", n)
	}
	r := New[A](n)
	r.data[0] = a
	r.data[1] = b
	r.length = 2
	return r
}

// FromSlice builds a RingBuffer of capacity n from xs, in order. It panics
// if xs has more than n elements.
func FromSlice[A any](n int, xs []A) *RingBuffer[A] {
	if len(xs) > n {
		panicf("from_slice: %d elements exceed capacity %d", len(xs), n)
	}
	r := New[A](n)
	copy(r.data, xs)
	r.length = len(xs)
	return r
}

// CollectFrom moves the next k values out of next into a new RingBuffer of
// capacity n. It panics if k exceeds n or next is exhausted before yielding
// k values.
func CollectFrom[A any](n int, next func() (A, bool), k int) *RingBuffer[A] {
	if k > n {
		panicf("collect_from: count %d exceeds capacity %d", k, n)
	}
	r := New[A](n)
	for i := 0; i < k; i++ {
		v, ok := next()
		if !ok {
			panicf("collect_from: iterator exhausted after %d of %d elements", i, k)
		}
		r.data[i] = v
	}
	r.length = k
	return r
}

// DrainFrom moves every element out of other, in order, into a freshly
// constructed RingBuffer of the same capacity. other is left empty.
func DrainFrom[A any](other *RingBuffer[A]) *RingBuffer[A] {
	r := New[A](len(other.data))
	r.Append(other)
	return r
}

// FromFront takes the first k elements of other into a new RingBuffer of the
// same capacity, leaving the remainder of other in place.
func FromFront[A any](other *RingBuffer[A], k int) *RingBuffer[A] {
	if k > other.Len() {
		panicf("from_front: count %d exceeds length %d", k, other.Len())
	}
	out := New[A](len(other.data))
	for i := 0; i < k; i++ {
		out.data[i] = other.data[other.phys(i)]
	}
	out.length = k
	other.dropFrontN(k)
	return out
}

// FromBack takes the last k elements of other into a new RingBuffer of the
// same capacity, leaving the remainder of other in place.
func FromBack[A any](other *RingBuffer[A], k int) *RingBuffer[A] {
	if k > other.Len() {
		panicf("from_back: count %d exceeds length %d", k, other.Len())
	}
	out := New[A](len(other.data))
	start := other.Len() - k
	for i := 0; i < k; i++ {
		out.data[i] = other.data[other.phys(start+i)]
	}
	out.length = k
	other.dropBackN(k)
	return out
}

func (r *RingBuffer[A]) phys(i int) int {
	return r.origin.Add(i).Int()
}

func (r *RingBuffer[A]) dropFrontN(k int) {
	var zero A
	for i := 0; i < k; i++ {
		r.data[r.phys(i)] = zero
	}
	r.origin = r.origin.Add(k)
	r.length -= k
}

func (r *RingBuffer[A]) dropBackN(k int) {
	var zero A
	length := r.Len()
	for i := 0; i < k; i++ {
		r.data[r.phys(length-1-i)] = zero
	}
	r.length -= k
}

// Len reports the number of live elements.
func (r *RingBuffer[A]) Len() int { return r.length }

// Cap reports the fixed capacity N.
func (r *RingBuffer[A]) Cap() int { return len(r.data) }

// IsEmpty reports whether the buffer holds no elements.
func (r *RingBuffer[A]) IsEmpty() bool { return r.length == 0 }

// IsFull reports whether the buffer is at capacity.
func (r *RingBuffer[A]) IsFull() bool { return r.length == len(r.data) }

// Get returns the element at logical index i, or the zero value and false if
// i is out of range.
func (r *RingBuffer[A]) Get(i int) (A, bool) {
	if i < 0 || i >= r.length {
		var zero A
		return zero, false
	}
	return r.data[r.phys(i)], true
}

// At returns the element at logical index i. It panics if i is out of
// range.
func (r *RingBuffer[A]) At(i int) A {
	if i < 0 || i >= r.length {
		panicf("at: index %d out of range (len %d)", i, r.length)
	}
	return r.data[r.phys(i)]
}

// Set overwrites the element at logical index i. It panics if i is out of
// range.
func (r *RingBuffer[A]) Set(i int, v A) {
	if i < 0 || i >= r.length {
		panicf("set: index %d out of range (len %d)", i, r.length)
	}
	r.data[r.phys(i)] = v
}

// PushFront prepends v. It panics if the buffer is full.
func (r *RingBuffer[A]) PushFront(v A) {
	if r.IsFull() {
		panicf("push_front: buffer at capacity %d", len(r.data))
	}
	r.origin.Dec()
	r.data[r.origin.Int()] = v
	r.length++
}

// PushBack appends v. It panics if the buffer is full.
func (r *RingBuffer[A]) PushBack(v A) {
	if r.IsFull() {
		panicf("push_back: buffer at capacity %d", len(r.data))
	}
	r.data[r.phys(r.length)] = v
	r.length++
}

// PopFront removes and returns the first element, or (zero, false) if empty.
func (r *RingBuffer[A]) PopFront() (A, bool) {
	if r.IsEmpty() {
		var zero A
		return zero, false
	}
	idx := r.origin.Int()
	v := r.data[idx]
	var zero A
	r.data[idx] = zero
	r.origin.Inc()
	r.length--
	return v, true
}

// PopBack removes and returns the last element, or (zero, false) if empty.
func (r *RingBuffer[A]) PopBack() (A, bool) {
	if r.IsEmpty() {
		var zero A
		return zero, false
	}
	r.length--
	idx := r.phys(r.length)
	v := r.data[idx]
	var zero A
	r.data[idx] = zero
	return v, true
}

// Insert places v at logical index i, shifting whichever side of the buffer
// is shorter across the wrap boundary as needed. It panics if i > Len() or
// the buffer is full.
func (r *RingBuffer[A]) Insert(i int, v A) {
	length := r.length
	if i > length {
		panicf("insert: index %d exceeds length %d", i, length)
	}
	if length == len(r.data) {
		panicf("insert: buffer at capacity %d", len(r.data))
	}
	if i <= length-i {
		tmp := make([]A, i)
		for k := 0; k < i; k++ {
			tmp[k] = r.data[r.phys(k)]
		}
		r.origin.Dec()
		for k := 0; k < i; k++ {
			r.data[r.phys(k)] = tmp[k]
		}
		r.data[r.phys(i)] = v
	} else {
		m := length - i
		tmp := make([]A, m)
		for k := 0; k < m; k++ {
			tmp[k] = r.data[r.phys(i+k)]
		}
		for k := 0; k < m; k++ {
			r.data[r.phys(i+1+k)] = tmp[k]
		}
		r.data[r.phys(i)] = v
	}
	r.length++
}

// InsertFrom inserts every element of xs at logical index i, in order. It
// panics if i > Len() or the combined length would exceed capacity.
func (r *RingBuffer[A]) InsertFrom(i int, xs []A) {
	length := r.length
	if i > length {
		panicf("insert_from: index %d exceeds length %d", i, length)
	}
	m := len(xs)
	if length+m > len(r.data) {
		panicf("insert_from: combined length %d exceeds capacity %d", length+m, len(r.data))
	}
	for k, v := range xs {
		r.Insert(i+k, v)
	}
}

// InsertOrdered inserts v at its binary-search position, assuming the
// buffer is already sorted ascending. It panics if the buffer is full.
func InsertOrdered[A constraints.Ordered](r *RingBuffer[A], v A) {
	if r.IsFull() {
		panicf("insert_ordered: buffer at capacity %d", len(r.data))
	}
	s := r.ToSlice()
	pos, _ := slices.BinarySearch(s, v)
	r.Insert(pos, v)
}

// Remove deletes and returns the element at logical index i, shifting
// whichever side of the buffer is shorter. It panics if i >= Len().
func (r *RingBuffer[A]) Remove(i int) A {
	length := r.length
	if i >= length {
		panicf("remove: index %d out of range (len %d)", i, length)
	}
	v := r.data[r.phys(i)]
	var zero A
	if i <= length-1-i {
		tmp := make([]A, i)
		for k := 0; k < i; k++ {
			tmp[k] = r.data[r.phys(k)]
		}
		for k := 0; k < i; k++ {
			r.data[r.phys(k+1)] = tmp[k]
		}
		r.data[r.origin.Int()] = zero
		r.origin.Inc()
	} else {
		m := length - 1 - i
		tmp := make([]A, m)
		for k := 0; k < m; k++ {
			tmp[k] = r.data[r.phys(i+1+k)]
		}
		for k := 0; k < m; k++ {
			r.data[r.phys(i+k)] = tmp[k]
		}
		r.data[r.phys(length-1)] = zero
	}
	r.length--
	return v
}

// DropLeft discards the first i elements. It panics if i > Len().
func (r *RingBuffer[A]) DropLeft(i int) {
	if i > r.length {
		panicf("drop_left: count %d exceeds length %d", i, r.length)
	}
	r.dropFrontN(i)
}

// DropRight retains only the first i elements, discarding the rest. It
// panics if i > Len().
func (r *RingBuffer[A]) DropRight(i int) {
	if i > r.length {
		panicf("drop_right: count %d exceeds length %d", i, r.length)
	}
	r.dropBackN(r.length - i)
}

// SplitOff removes the elements from logical index i onward into a new
// RingBuffer, which it returns; self retains [0, i). It panics if i > Len().
func (r *RingBuffer[A]) SplitOff(i int) *RingBuffer[A] {
	if i > r.length {
		panicf("split_off: index %d exceeds length %d", i, r.length)
	}
	return FromBack(r, r.length-i)
}

// Append moves every element of other to the back of r. It panics if the
// combined length would exceed capacity.
func (r *RingBuffer[A]) Append(other *RingBuffer[A]) {
	if r.Len()+other.Len() > len(r.data) {
		panicf("append: combined length %d exceeds capacity %d", r.Len()+other.Len(), len(r.data))
	}
	for !other.IsEmpty() {
		v, _ := other.PopFront()
		r.PushBack(v)
	}
}

// DrainFromFront moves the first k elements of other onto the back of r.
func (r *RingBuffer[A]) DrainFromFront(other *RingBuffer[A], k int) {
	if k > other.Len() {
		panicf("drain_from_front: count %d exceeds length %d", k, other.Len())
	}
	if r.Len()+k > len(r.data) {
		panicf("drain_from_front: combined length %d exceeds capacity %d", r.Len()+k, len(r.data))
	}
	for i := 0; i < k; i++ {
		v, _ := other.PopFront()
		r.PushBack(v)
	}
}

// DrainFromBack moves the last k elements of other onto the front of r.
func (r *RingBuffer[A]) DrainFromBack(other *RingBuffer[A], k int) {
	if k > other.Len() {
		panicf("drain_from_back: count %d exceeds length %d", k, other.Len())
	}
	if r.Len()+k > len(r.data) {
		panicf("drain_from_back: combined length %d exceeds capacity %d", r.Len()+k, len(r.data))
	}
	for i := 0; i < k; i++ {
		v, _ := other.PopBack()
		r.PushFront(v)
	}
}

// Clear drops every live element and resets the buffer to the empty state.
func (r *RingBuffer[A]) Clear() {
	var zero A
	for i := 0; i < r.length; i++ {
		r.data[r.phys(i)] = zero
	}
	r.length = 0
}

// Drain returns a front-to-back, single-use iterator that removes elements
// as it yields them. If the consumer stops early, every element not yet
// yielded is still cleared and the buffer still ends up empty.
func (r *RingBuffer[A]) Drain() iter.Seq[A] {
	return func(yield func(A) bool) {
		for !r.IsEmpty() {
			v, _ := r.PopFront()
			if !yield(v) {
				r.Clear()
				return
			}
		}
	}
}

// DrainBack is Drain's back-to-front counterpart.
func (r *RingBuffer[A]) DrainBack() iter.Seq[A] {
	return func(yield func(A) bool) {
		for !r.IsEmpty() {
			v, _ := r.PopBack()
			if !yield(v) {
				r.Clear()
				return
			}
		}
	}
}

// Values yields elements front to back, correctly splitting its traversal
// across the wrap point.
func (r *RingBuffer[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(r.data[r.phys(i)]) {
				return
			}
		}
	}
}

// ValuesBack yields elements back to front.
func (r *RingBuffer[A]) ValuesBack() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := r.length - 1; i >= 0; i-- {
			if !yield(r.data[r.phys(i)]) {
				return
			}
		}
	}
}

// All yields (logical index, element) pairs front to back.
func (r *RingBuffer[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(i, r.data[r.phys(i)]) {
				return
			}
		}
	}
}

// ToSlice copies the logical sequence out into a freshly allocated slice.
// Unlike Chunk, RingBuffer never exposes its backing array directly, since
// the live elements may not be contiguous.
func (r *RingBuffer[A]) ToSlice() []A {
	out := make([]A, r.length)
	for i := 0; i < r.length; i++ {
		out[i] = r.data[r.phys(i)]
	}
	return out
}

// CloneFunc builds an independent copy of r, applying cloneElem to every
// live element.
func (r *RingBuffer[A]) CloneFunc(cloneElem func(A) A) *RingBuffer[A] {
	out := New[A](len(r.data))
	for i := 0; i < r.length; i++ {
		out.data[i] = cloneElem(r.data[r.phys(i)])
		out.length = i + 1
	}
	return out
}

// Clone returns a structural copy of r; for value-typed A this is a fully
// independent container.
func (r *RingBuffer[A]) Clone() *RingBuffer[A] {
	return r.CloneFunc(func(a A) A { return a })
}

// Equal reports whether a and b hold the same logical sequence, irrespective
// of physical layout or capacity.
func Equal[A comparable](a, b *RingBuffer[A]) bool {
	return slices.Equal(a.ToSlice(), b.ToSlice())
}

// Reset clears r back to the empty state, for reuse from a pool. See
// package pool.
func (r *RingBuffer[A]) Reset() {
	r.Clear()
	r.origin = newRingIndex(max(len(r.data), 1), 0)
}

// CloneInto deep-copies r's elements into dst, which must have at least r's
// capacity and be logically empty (as after Reset).
func (r *RingBuffer[A]) CloneInto(dst *RingBuffer[A], cloneElem func(A) A) {
	if len(dst.data) < len(r.data) {
		panicf("clone_into: destination capacity %d smaller than source %d", len(dst.data), len(r.data))
	}
	for i := 0; i < r.length; i++ {
		dst.data[i] = cloneElem(r.data[r.phys(i)])
		dst.length = i + 1
	}
}
