package vec

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// requireViolation asserts that fn panics with a value wrapping sentinel.
func requireViolation(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, sentinel)
	}()
	fn()
}

func TestPushPopReverse(t *testing.T) {
	condition := func(xs []int) bool {
		v := New[int]()
		for _, x := range xs {
			v.Push(x)
		}
		popped := make([]int, 0, len(xs))
		for {
			x, ok := v.Pop().Get()
			if !ok {
				break
			}
			popped = append(popped, x)
		}
		if !v.IsEmpty() {
			return false
		}
		slices.Reverse(popped)
		return slices.Equal(xs, popped)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestPopEmpty(t *testing.T) {
	v := New[string]()
	require.True(t, v.Pop().IsNone())
}

func TestGetBounds(t *testing.T) {
	v := From(1, 2, 3)
	for i := 0; i < v.Len(); i++ {
		require.True(t, v.Get(i).IsSome(), "index %d", i)
	}
	require.True(t, v.Get(3).IsNone(), "index == len exactly")
	require.True(t, v.Get(1<<20).IsNone(), "far beyond capacity")
	require.True(t, v.Get(-1).IsNone())
}

func TestGetAliasesStorage(t *testing.T) {
	v := From(10, 20, 30)
	v.Get(1).Set(99)
	require.Equal(t, 99, *v.At(1))
}

func TestPeek(t *testing.T) {
	v := From("a", "b")
	require.Equal(t, "b", v.Peek(1).Unwrap())
	require.True(t, v.Peek(2).IsNone())
	require.True(t, v.Peek(-1).IsNone())
}

func TestAtViolation(t *testing.T) {
	v := From(1, 2, 3)
	require.Equal(t, 2, *v.At(1))
	requireViolation(t, ErrIndexOutOfBounds, func() { v.At(3) })
	requireViolation(t, ErrIndexOutOfBounds, func() { v.At(-1) })
}

func TestInsertShiftsTail(t *testing.T) {
	v := From(1, 2, 4, 5)
	v.Insert(2, 3)
	require.Empty(t, cmp.Diff([]int{1, 2, 3, 4, 5}, v.Slice()))
	require.Equal(t, 3, v.Get(2).Deref())

	v.Insert(5, 6) // index == len is valid
	require.Empty(t, cmp.Diff([]int{1, 2, 3, 4, 5, 6}, v.Slice()))

	requireViolation(t, ErrIndexOutOfBounds, func() { v.Insert(7, 0) })
	requireViolation(t, ErrIndexOutOfBounds, func() { v.Insert(-1, 0) })
}

func TestRemoveShiftsTail(t *testing.T) {
	v := From("a", "b", "c", "d")
	got := v.Remove(1)
	require.Equal(t, "b", got)
	require.Empty(t, cmp.Diff([]string{"a", "c", "d"}, v.Slice()))
	require.Equal(t, 3, v.Len())

	requireViolation(t, ErrIndexOutOfBounds, func() { v.Remove(3) })
	requireViolation(t, ErrIndexOutOfBounds, func() { v.Remove(-1) })
}

func TestSet(t *testing.T) {
	v := From(1, 2)
	require.True(t, v.Set(0, 9))
	require.Equal(t, 9, *v.At(0))
	require.False(t, v.Set(2, 9), "Set never grows")
	require.Equal(t, 2, v.Len())
}

func TestEmptySequenceScenario(t *testing.T) {
	v := New[int]()
	require.True(t, v.Pop().IsNone())
	require.True(t, v.Get(0).IsNone())
	v.Push(7)
	require.Equal(t, 7, v.Get(0).Deref())
	require.Equal(t, 7, v.Remove(0))
	require.True(t, v.IsEmpty())
}

func TestClearAndTruncate(t *testing.T) {
	v := From(1, 2, 3, 4)
	before := v.Capacity()
	v.Truncate(2)
	require.Empty(t, cmp.Diff([]int{1, 2}, v.Slice()))
	v.Truncate(10) // no-op past the end
	require.Equal(t, 2, v.Len())
	v.Clear()
	require.True(t, v.IsEmpty())
	require.Equal(t, before, v.Capacity(), "Clear keeps capacity")
}

func TestReserve(t *testing.T) {
	v := From(1, 2, 3)
	v.Reserve(10)
	require.GreaterOrEqual(t, v.Capacity(), 13)
	grown := v.Capacity()
	v.Reserve(5) // already sufficient
	require.Equal(t, grown, v.Capacity())
	v.Reserve(-1) // nonpositive is a no-op
	require.Equal(t, grown, v.Capacity())
}

func TestShrinkToFit(t *testing.T) {
	v := WithCapacity[int](64)
	v.Push(1)
	v.Push(2)
	v.ShrinkToFit()
	require.Equal(t, v.Len(), v.Capacity())
	require.Empty(t, cmp.Diff([]int{1, 2}, v.Slice()))
}

func TestWithCapacity(t *testing.T) {
	v := WithCapacity[int](8)
	require.True(t, v.IsEmpty())
	require.GreaterOrEqual(t, v.Capacity(), 8)
	require.Equal(t, 0, WithCapacity[int](-3).Capacity())
}

func TestIterRestartable(t *testing.T) {
	v := From(1, 2, 3)
	seq := v.Iter()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Empty(t, cmp.Diff(first, second), "each call over Iter is a fresh pass")
	require.Empty(t, cmp.Diff([]int{1, 2, 3}, first))
}

func TestIterReflectsRemovals(t *testing.T) {
	v := From(1, 2, 3, 4)
	_ = v.Remove(1)
	require.Empty(t, cmp.Diff([]int{1, 3, 4}, slices.Collect(v.Iter())))
}

func TestIterMut(t *testing.T) {
	v := From(1, 2, 3)
	for p := range v.IterMut() {
		*p *= 2
	}
	require.Empty(t, cmp.Diff([]int{2, 4, 6}, v.Slice()))
}

func TestIterEarlyBreak(t *testing.T) {
	v := From(1, 2, 3, 4)
	var seen []int
	for x := range v.Iter() {
		if x > 2 {
			break
		}
		seen = append(seen, x)
	}
	require.Empty(t, cmp.Diff([]int{1, 2}, seen))
	require.Equal(t, 4, v.Len(), "read-only iteration never mutates")
}

func TestClone(t *testing.T) {
	v := From(1, 2, 3)
	c := v.Clone()
	c.Push(4)
	require.True(t, c.Set(0, 9))
	require.Equal(t, 3, v.Len())
	require.Equal(t, 1, *v.At(0))
}

func TestZeroValueVec(t *testing.T) {
	var v Vec[int]
	require.True(t, v.IsEmpty())
	v.Push(1)
	require.Equal(t, 1, v.Len())
}
