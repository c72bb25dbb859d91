package chunk

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

// TestBasicDeque exercises a basic interleaved push/pop sequence:
// push_back(1,2); push_front(0);
// push_back(3); pop_front() -> 0; remaining -> [1,2,3].
func TestBasicDeque(t *testing.T) {
	c := New[int](8)
	c.PushBack(1)
	c.PushBack(2)
	c.PushFront(0)
	c.PushBack(3)
	v, ok := c.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, []int{1, 2, 3}, slices.Clone(c.Slice()))
}

// TestRecenterOnOverflow exercises the recenter-on-overflow path: N=4, push_back 1..4, pop
// front twice -> [3,4], push_back(5) succeeds via a recenter -> [3,4,5].
func TestRecenterOnOverflow(t *testing.T) {
	c := New[int](4)
	c.PushBack(1)
	c.PushBack(2)
	c.PushBack(3)
	c.PushBack(4)
	assert.True(t, c.IsFull())
	v, ok := c.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = c.PopFront()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{3, 4}, slices.Clone(c.Slice()))
	c.PushBack(5)
	assert.Equal(t, []int{3, 4, 5}, slices.Clone(c.Slice()))
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	c := New[int](4)
	_, ok := c.PopFront()
	assert.False(t, ok)
	_, ok = c.PopBack()
	assert.False(t, ok)
}

func TestPushPastCapacityPanics(t *testing.T) {
	c := New[int](2)
	c.PushBack(1)
	c.PushBack(2)
	assert.Panics(t, func() { c.PushBack(3) })
	assert.Panics(t, func() { c.PushFront(3) })
}

func TestFromSlicePanicsWhenTooLarge(t *testing.T) {
	assert.Panics(t, func() { FromSlice[int](2, []int{1, 2, 3}) })
}

func TestFromSliceRoundTrip(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	c := FromSlice[int](8, xs)
	assert.Equal(t, xs, collect(c.Values()))
}

func TestInsertAndRemove(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 4, 5})
	c.Insert(2, 3)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(c.Values()))
	v := c.Remove(2)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2, 4, 5}, collect(c.Values()))
}

func TestInsertOutOfRangePanics(t *testing.T) {
	c := FromSlice[int](4, []int{1, 2})
	assert.Panics(t, func() { c.Insert(3, 9) })
}

func TestInsertFull(t *testing.T) {
	c := FromSlice[int](2, []int{1, 2})
	assert.Panics(t, func() { c.Insert(0, 9) })
}

func TestRemoveOutOfRangePanics(t *testing.T) {
	c := FromSlice[int](4, []int{1, 2})
	assert.Panics(t, func() { c.Remove(2) })
}

func TestInsertFrom(t *testing.T) {
	c := FromSlice[int](8, []int{1, 5})
	c.InsertFrom(1, []int{2, 3, 4})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(c.Values()))
}

func TestInsertFromOverflowPanics(t *testing.T) {
	c := FromSlice[int](4, []int{1, 2})
	assert.Panics(t, func() { c.InsertFrom(0, []int{3, 4, 5}) })
}

func TestInsertOrdered(t *testing.T) {
	c := FromSlice[int](8, []int{1, 3, 5, 7})
	InsertOrdered(c, 4)
	assert.Equal(t, []int{1, 3, 4, 5, 7}, collect(c.Values()))
}

func TestInsertOrderedFullPanics(t *testing.T) {
	c := FromSlice[int](2, []int{1, 3})
	assert.Panics(t, func() { InsertOrdered(c, 2) })
}

func TestDropLeftRight(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	c.DropLeft(2)
	assert.Equal(t, []int{3, 4, 5}, collect(c.Values()))
	c.DropRight(1)
	assert.Equal(t, []int{3}, collect(c.Values()))
}

func TestSplitOff(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3, 4, 5})
	tail := c.SplitOff(2)
	assert.Equal(t, []int{1, 2}, collect(c.Values()))
	assert.Equal(t, []int{3, 4, 5}, collect(tail.Values()))
}

func TestAppend(t *testing.T) {
	a := FromSlice[int](8, []int{1, 2})
	b := FromSlice[int](8, []int{3, 4})
	a.Append(b)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(a.Values()))
	assert.True(t, b.IsEmpty())
}

func TestAppendOverflowPanics(t *testing.T) {
	a := FromSlice[int](3, []int{1, 2})
	b := FromSlice[int](3, []int{3, 4})
	assert.Panics(t, func() { a.Append(b) })
}

func TestDrainFrom(t *testing.T) {
	src := FromSlice[int](8, []int{1, 2, 3})
	out := DrainFrom(src)
	assert.Equal(t, []int{1, 2, 3}, collect(out.Values()))
	assert.True(t, src.IsEmpty())
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

func TestCollectFrom(t *testing.T) {
	xs := []int{1, 2, 3, 4}
	i := 0
	next := func() (int, bool) {
		if i >= len(xs) {
			return 0, false
		}
		v := xs[i]
		i++
		return v, true
	}
	c := CollectFrom[int](8, next, 3)
	assert.Equal(t, []int{1, 2, 3}, collect(c.Values()))
}

func TestCollectFromExhaustedPanics(t *testing.T) {
	next := func() (int, bool) { return 0, false }
	assert.Panics(t, func() { CollectFrom[int](8, next, 1) })
}

func TestDrainEmptiness(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	got := collect(c.Drain())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())
}

func TestDrainEarlyTerminationClearsRest(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3, 4})
	for v := range c.Drain() {
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())
}

func TestDrainBack(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	got := collect(c.DrainBack())
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.True(t, c.IsEmpty())
}

func TestValuesBackReversesValues(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	fwd := collect(c.Values())
	back := collect(c.ValuesBack())
	slices.Reverse(back)
	assert.Equal(t, fwd, back)
}

func TestCloneIndependence(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	clone := c.Clone()
	assert.True(t, Equal(c, clone))
	clone.PushBack(4)
	assert.False(t, Equal(c, clone))
	assert.Equal(t, []int{1, 2, 3}, collect(c.Values()))
}

func TestCloneFuncPropagatesPanicButStaysConsistent(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	assert.Panics(t, func() {
		c.CloneFunc(func(v int) int {
			if v == 3 {
				panic("boom")
			}
			return v
		})
	})
	// original is untouched regardless of the panic in the clone path.
	assert.Equal(t, []int{1, 2, 3}, collect(c.Values()))
}

func TestDropAccounting(t *testing.T) {
	count := 0
	type counted struct{ v int }
	makeCounted := func(v int) counted {
		count++
		return counted{v: v}
	}
	c := New[counted](4)
	c.PushBack(makeCounted(1))
	c.PushBack(makeCounted(2))
	c.PushFront(makeCounted(0))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	// "drop" in Go means zeroing for GC; there is no counter to decrement on
	// zeroing, so this asserts the zeroing actually happened (no stale refs).
	assert.Equal(t, counted{}, c.data[c.left])
}

func TestGetSetAt(t *testing.T) {
	c := FromSlice[int](8, []int{1, 2, 3})
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = c.Get(10)
	assert.False(t, ok)
	c.Set(1, 20)
	assert.Equal(t, 20, c.At(1))
	assert.Panics(t, func() { c.Set(10, 0) })
	assert.Panics(t, func() { c.At(10) })
}

func TestAllYieldsIndexValuePairs(t *testing.T) {
	c := FromSlice[int](8, []int{5, 6, 7})
	var idxs []int
	var vals []int
	for i, v := range c.All() {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idxs)
	assert.Equal(t, []int{5, 6, 7}, vals)
}
