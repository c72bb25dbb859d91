// Package inlinearray implements InlineArray, a push-only/removable vector
// whose capacity is computed from the byte size of an unrelated host type
// rather than given directly by the caller.
package inlinearray

import (
	"fmt"
	"iter"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("inlinearray: "+format, args...))
}

// capacityFor derives CAPACITY from the host type's byte size, less one
// machine word for the length header, divided by the element's byte size.
// Go cannot safely reinterpret an arbitrary generic Host's memory as a []A
// slice — there is no portable way to guarantee A's alignment against
// Host's layout, or to do so without defeating the garbage collector's
// pointer scanning for pointer-containing A — so this rendition keeps the
// derived CAPACITY but backs storage with an ordinarily allocated []A
// rather than a literal byte overlay of Host. See DESIGN.md.
func capacityFor[A, Host any]() int {
	var h Host
	var a A
	hostSize := int(unsafe.Sizeof(h))
	header := int(unsafe.Sizeof(uintptr(0)))
	if hostSize < header {
		panicf("host type of size %d smaller than header size %d", hostSize, header)
	}
	available := hostSize - header
	elemSize := int(unsafe.Sizeof(a))
	if elemSize == 0 {
		// A zero-sized element type has no byte cost; treat the host as
		// holding as many as the available bytes, one per available byte,
		// rather than dividing by zero.
		return available
	}
	return available / elemSize
}

// InlineArray is a vector whose capacity is borrowed from the size of Host.
// The zero value is not usable; construct one with New.
type InlineArray[A, Host any] struct {
	data []A
	len  int
}

// New returns an empty InlineArray with CAPACITY derived from Host and A.
// Construction does not panic when CAPACITY is zero — only push/insert into
// a zero-capacity InlineArray do. It panics only when Host is smaller than
// the one-word length header.
func New[A, Host any]() *InlineArray[A, Host] {
	return &InlineArray[A, Host]{data: make([]A, capacityFor[A, Host]())}
}

// Unit returns an InlineArray containing v.
func Unit[A, Host any](v A) *InlineArray[A, Host] {
	a := New[A, Host]()
	a.Push(v)
	return a
}

// Pair returns an InlineArray containing v1 then v2.
func Pair[A, Host any](v1, v2 A) *InlineArray[A, Host] {
	a := New[A, Host]()
	a.Push(v1)
	a.Push(v2)
	return a
}

// FromSlice returns an InlineArray holding a copy of xs. It panics if xs is
// longer than CAPACITY.
func FromSlice[A, Host any](xs []A) *InlineArray[A, Host] {
	a := New[A, Host]()
	if len(xs) > len(a.data) {
		panicf("from_slice: %d elements exceed capacity %d", len(xs), len(a.data))
	}
	a.len = copy(a.data, xs)
	return a
}

// Cap reports CAPACITY, the fixed maximum length.
func (a *InlineArray[A, Host]) Cap() int { return len(a.data) }

// Len reports the current length.
func (a *InlineArray[A, Host]) Len() int { return a.len }

// IsEmpty reports whether the array holds no elements.
func (a *InlineArray[A, Host]) IsEmpty() bool { return a.len == 0 }

// IsFull reports whether the array is at CAPACITY. A zero-capacity
// InlineArray is always full.
func (a *InlineArray[A, Host]) IsFull() bool { return a.len == len(a.data) }

// Slice returns the live elements as a slice aliasing the array's backing
// storage.
func (a *InlineArray[A, Host]) Slice() []A { return a.data[:a.len] }

func (a *InlineArray[A, Host]) checkIndex(i int) {
	if i < 0 || i >= a.len {
		panicf("index out of range: %d (length %d)", i, a.len)
	}
}

// Get returns the element at i and whether i was in range.
func (a *InlineArray[A, Host]) Get(i int) (A, bool) {
	if i < 0 || i >= a.len {
		var zero A
		return zero, false
	}
	return a.data[i], true
}

// At returns the element at i. It panics if i is out of range.
func (a *InlineArray[A, Host]) At(i int) A {
	a.checkIndex(i)
	return a.data[i]
}

// Set overwrites the element at i. It panics if i is out of range.
func (a *InlineArray[A, Host]) Set(i int, v A) {
	a.checkIndex(i)
	a.data[i] = v
}

// Push appends v. It panics if the array is already full.
func (a *InlineArray[A, Host]) Push(v A) {
	if a.len == len(a.data) {
		panicf("push: capacity %d exceeded", len(a.data))
	}
	a.data[a.len] = v
	a.len++
}

// Pop removes and returns the last element, or (zero, false) if empty.
func (a *InlineArray[A, Host]) Pop() (A, bool) {
	if a.len == 0 {
		var zero A
		return zero, false
	}
	a.len--
	v := a.data[a.len]
	var zero A
	a.data[a.len] = zero
	return v, true
}

// Insert places v at index i, shifting everything at or after i one slot
// later. It panics if i > Len or the array is full.
func (a *InlineArray[A, Host]) Insert(i int, v A) {
	if i < 0 || i > a.len {
		panicf("insert: index %d exceeds length %d", i, a.len)
	}
	if a.len == len(a.data) {
		panicf("insert: capacity %d exceeded", len(a.data))
	}
	copy(a.data[i+1:a.len+1], a.data[i:a.len])
	a.data[i] = v
	a.len++
}

// Remove removes the element at index i, returning it and true, or (zero,
// false) if i is out of range — a soft failure here, unlike Chunk's panic
// on out-of-range (see DESIGN.md).
func (a *InlineArray[A, Host]) Remove(i int) (A, bool) {
	if i < 0 || i >= a.len {
		var zero A
		return zero, false
	}
	v := a.data[i]
	copy(a.data[i:a.len-1], a.data[i+1:a.len])
	a.len--
	var zero A
	a.data[a.len] = zero
	return v, true
}

// SplitOff splits the array at index i: self retains [0,i), and the
// returned array holds [i,len). It panics if i > Len.
func (a *InlineArray[A, Host]) SplitOff(i int) *InlineArray[A, Host] {
	if i < 0 || i > a.len {
		panicf("split_off: index %d exceeds length %d", i, a.len)
	}
	tail := New[A, Host]()
	tail.len = copy(tail.data, a.data[i:a.len])
	var zero A
	for k := i; k < a.len; k++ {
		a.data[k] = zero
	}
	a.len = i
	return tail
}

// Clear removes every element.
func (a *InlineArray[A, Host]) Clear() {
	var zero A
	for i := 0; i < a.len; i++ {
		a.data[i] = zero
	}
	a.len = 0
}

// Values yields elements in order.
func (a *InlineArray[A, Host]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Drain yields elements front-to-back, removing each as it is yielded. If
// the consumer stops early, the remaining elements are still cleared.
func (a *InlineArray[A, Host]) Drain() iter.Seq[A] {
	return func(yield func(A) bool) {
		for a.len > 0 {
			v := a.data[0]
			copy(a.data[0:a.len-1], a.data[1:a.len])
			a.len--
			var zero A
			a.data[a.len] = zero
			if !yield(v) {
				a.Clear()
				return
			}
		}
	}
}

// CloneFunc builds an independent copy, applying cloneElem to every
// element.
func (a *InlineArray[A, Host]) CloneFunc(cloneElem func(A) A) *InlineArray[A, Host] {
	out := New[A, Host]()
	for i := 0; i < a.len; i++ {
		out.data[i] = cloneElem(a.data[i])
	}
	out.len = a.len
	return out
}

// Clone returns a structural copy of a.
func (a *InlineArray[A, Host]) Clone() *InlineArray[A, Host] {
	return a.CloneFunc(func(v A) A { return v })
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[A comparable, Host any](a, b *InlineArray[A, Host]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualSlice reports whether a holds exactly the elements of xs, in order.
func EqualSlice[A comparable, Host any](a *InlineArray[A, Host], xs []A) bool {
	return slices.Equal(a.Slice(), xs)
}

// Compare lexicographically orders a against b over their element
// sequences.
func Compare[A constraints.Ordered, Host any](a, b *InlineArray[A, Host]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// Reset clears a back to the empty state, for reuse from a pool. See
// package pool.
func (a *InlineArray[A, Host]) Reset() {
	a.Clear()
}

// CloneInto deep-copies a's elements into dst, which must have at least a's
// capacity and be logically empty (as after Reset).
func (a *InlineArray[A, Host]) CloneInto(dst *InlineArray[A, Host], cloneElem func(A) A) {
	if len(dst.data) < len(a.data) {
		panicf("clone_into: destination capacity %d smaller than source %d", len(dst.data), len(a.data))
	}
	for i := 0; i < a.len; i++ {
		dst.data[i] = cloneElem(a.data[i])
	}
	dst.len = a.len
}
