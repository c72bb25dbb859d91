package ringbuffer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[A any](seq func(func(A) bool)) []A {
	var out []A
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// TestWrap exercises push/pop across the wrap boundary.
func TestWrap(t *testing.T) {
	r := New[int](4)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	r.PushBack(4)

	v, ok := r.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	r.PushBack(5)
	assert.Equal(t, []int{2, 3, 4, 5}, collect(r.Values()))

	v, ok = r.PopBack()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = r.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, []int{3, 4}, collect(r.Values()))
}

func TestNewEmpty(t *testing.T) {
	r := New[int](8)
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 8, r.Cap())
}

func TestZeroCapacity(t *testing.T) {
	r := New[int](0)
	assert.True(t, r.IsFull())
	assert.Panics(t, func() { r.PushBack(1) })
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	r := New[int](4)
	_, ok := r.PopFront()
	assert.False(t, ok)
	_, ok = r.PopBack()
	assert.False(t, ok)
}

func TestPushPastCapacityPanics(t *testing.T) {
	r := FromSlice[int](2, []int{1, 2})
	assert.Panics(t, func() { r.PushBack(3) })
	assert.Panics(t, func() { r.PushFront(3) })
}

func TestInsertRemoveAcrossWrap(t *testing.T) {
	r := New[int](4)
	r.PushBack(0)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	r.PopFront()
	r.PopFront()
	r.PushBack(4) // wraps: logical [2,3,4] in physical slots 2, 3, 0
	r.Insert(1, 99)
	assert.Equal(t, []int{2, 99, 3, 4}, collect(r.Values()))
	v := r.Remove(1)
	assert.Equal(t, 99, v)
	assert.Equal(t, []int{2, 3, 4}, collect(r.Values()))
}

func TestInsertFrontAndBackBoundaries(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3})
	r.Insert(0, 0)
	assert.Equal(t, []int{0, 1, 2, 3}, collect(r.Values()))
	r.Insert(r.Len(), 4)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(r.Values()))
}

func TestInsertOutOfRangePanics(t *testing.T) {
	r := FromSlice[int](4, []int{1, 2})
	assert.Panics(t, func() { r.Insert(3, 9) })
}

func TestRemoveOutOfRangePanics(t *testing.T) {
	r := FromSlice[int](4, []int{1, 2})
	assert.Panics(t, func() { r.Remove(2) })
}

func TestInsertOrdered(t *testing.T) {
	r := FromSlice[int](8, []int{1, 3, 5, 7})
	InsertOrdered(r, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 7}, collect(r.Values()))
}

func TestDropLeftRight(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	r.DropLeft(2)
	assert.Equal(t, []int{3, 4, 5}, collect(r.Values()))
	r.DropRight(1)
	assert.Equal(t, []int{3}, collect(r.Values()))
}

func TestSplitOff(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	tail := r.SplitOff(2)
	assert.Equal(t, []int{1, 2}, collect(r.Values()))
	assert.Equal(t, []int{3, 4, 5}, collect(tail.Values()))
}

func TestAppend(t *testing.T) {
	a := FromSlice[int](8, []int{1, 2})
	b := FromSlice[int](8, []int{3, 4})
	a.Append(b)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(a.Values()))
	assert.True(t, b.IsEmpty())
}

func TestDrainFromFrontBack(t *testing.T) {
	dst := FromSlice[int](8, []int{9})
	src := FromSlice[int](8, []int{1, 2, 3})
	dst.DrainFromFront(src, 2)
	assert.Equal(t, []int{9, 1, 2}, collect(dst.Values()))
	assert.Equal(t, []int{3}, collect(src.Values()))

	dst2 := FromSlice[int](8, []int{9})
	src2 := FromSlice[int](8, []int{1, 2, 3})
	dst2.DrainFromBack(src2, 2)
	assert.Equal(t, []int{2, 3, 9}, collect(dst2.Values()))
	assert.Equal(t, []int{1}, collect(src2.Values()))
}

func TestDrainEmptiness(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3})
	got := collect(r.Drain())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsEmpty())
}

func TestDrainEarlyTerminationClearsRest(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3, 4})
	for v := range r.Drain() {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 0, r.Len())
}

func TestDrainBack(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3})
	got := collect(r.DrainBack())
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.True(t, r.IsEmpty())
}

func TestValuesBackReversesValues(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3})
	fwd := collect(r.Values())
	back := collect(r.ValuesBack())
	slices.Reverse(back)
	assert.Equal(t, fwd, back)
}

func TestCloneIndependence(t *testing.T) {
	r := FromSlice[int](8, []int{1, 2, 3})
	clone := r.Clone()
	assert.True(t, Equal(r, clone))
	clone.PushBack(4)
	assert.False(t, Equal(r, clone))
	assert.Equal(t, []int{1, 2, 3}, collect(r.Values()))
}

func TestFromFrontFromBack(t *testing.T) {
	src := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	front := FromFront(src, 2)
	assert.Equal(t, []int{1, 2}, collect(front.Values()))
	assert.Equal(t, []int{3, 4, 5}, collect(src.Values()))

	src2 := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	back := FromBack(src2, 2)
	assert.Equal(t, []int{4, 5}, collect(back.Values()))
	assert.Equal(t, []int{1, 2, 3}, collect(src2.Values()))
}

func TestCollectFromExhaustedPanics(t *testing.T) {
	next := func() (int, bool) { return 0, false }
	assert.Panics(t, func() { CollectFrom[int](8, next, 1) })
}
