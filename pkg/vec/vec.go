// Package vec provides a contiguous growable sequence container with two
// access tiers: checked operations (Get, Peek, Pop) report absence in-band
// through the option package, while unchecked operations (At, Insert,
// Remove, Drain) treat an invalid index as a contract violation and panic
// with a value wrapping one of the package sentinels.
package vec

import (
	"errors"
	"iter"
	"slices"

	"github.com/alkavan/oxide/internal/contract"
	"github.com/alkavan/oxide/pkg/option"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrRangeOutOfBounds = errors.New("drain range out of bounds")
)

// Vec is a growable sequence backed by a Go slice. Element order is
// insertion order; removal operations preserve the relative order of the
// remaining elements. The zero Vec is empty and ready to use.
//
// Aliases handed out by Get, At, IterMut and Slice point into the backing
// storage and are invalidated by any mutation that may reallocate (Push,
// Insert, Reserve). Callers must not hold them across such a call.
type Vec[T any] struct {
	elems []T
}

// New returns an empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty Vec with room for n elements before the
// first reallocation. Nonpositive n is treated as zero.
func WithCapacity[T any](n int) *Vec[T] {
	if n <= 0 {
		return &Vec[T]{}
	}
	return &Vec[T]{elems: make([]T, 0, n)}
}

// From returns a Vec holding a copy of elems.
func From[T any](elems ...T) *Vec[T] {
	return &Vec[T]{elems: slices.Clone(elems)}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.elems) }

// Capacity returns the number of elements the Vec can hold without
// reallocating. Always at least Len.
func (v *Vec[T]) Capacity() int { return cap(v.elems) }

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool { return len(v.elems) == 0 }

// Get returns a mutable alias of the element at index, or None when index
// is out of range. This is the primary safe access path; it never panics.
func (v *Vec[T]) Get(index int) option.Ref[T] {
	if index < 0 || index >= len(v.elems) {
		return option.NoneRef[T]()
	}
	return option.SomeRef(&v.elems[index])
}

// Peek returns a read-only view of the element at index, or None when
// index is out of range. Never panics.
func (v *Vec[T]) Peek(index int) option.View[T] {
	if index < 0 || index >= len(v.elems) {
		return option.NoneView[T]()
	}
	return option.SomeView(&v.elems[index])
}

// At returns the element at index without an absence path. An
// out-of-range index panics wrapping ErrIndexOutOfBounds.
func (v *Vec[T]) At(index int) *T {
	if index < 0 || index >= len(v.elems) {
		contract.Panicf(ErrIndexOutOfBounds, "index %d, len %d", index, len(v.elems))
	}
	return &v.elems[index]
}

// Set stores value at index and reports whether index was in range. A Vec
// never grows through Set.
func (v *Vec[T]) Set(index int, value T) bool {
	if index < 0 || index >= len(v.elems) {
		return false
	}
	v.elems[index] = value
	return true
}

// Push appends value at the tail. Amortized O(1); may reallocate.
func (v *Vec[T]) Push(value T) {
	v.elems = append(v.elems, value)
}

// Pop removes and returns the tail element, or None when empty. Never
// reallocates.
func (v *Vec[T]) Pop() option.Option[T] {
	last := len(v.elems) - 1
	if last < 0 {
		return option.None[T]()
	}
	value := v.elems[last]
	var zero T
	v.elems[last] = zero // release the container's copy
	v.elems = v.elems[:last]
	return option.Some(value)
}

// Insert places value at index, shifting [index, Len) right by one. Valid
// for 0 <= index <= Len; anything else panics wrapping ErrIndexOutOfBounds.
func (v *Vec[T]) Insert(index int, value T) {
	if index < 0 || index > len(v.elems) {
		contract.Panicf(ErrIndexOutOfBounds, "insert at %d, len %d", index, len(v.elems))
	}
	v.elems = slices.Insert(v.elems, index, value)
}

// Remove deletes and returns the element at index, shifting [index+1, Len)
// left by one. Valid for 0 <= index < Len; anything else panics wrapping
// ErrIndexOutOfBounds.
func (v *Vec[T]) Remove(index int) T {
	if index < 0 || index >= len(v.elems) {
		contract.Panicf(ErrIndexOutOfBounds, "remove at %d, len %d", index, len(v.elems))
	}
	value := v.elems[index]
	v.elems = slices.Delete(v.elems, index, index+1)
	return value
}

// Clear removes all elements, keeping the allocated capacity.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Truncate shortens the Vec to n elements, dropping the tail. A no-op when
// n >= Len; nonpositive n empties the Vec.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(v.elems) {
		return
	}
	v.elems = slices.Delete(v.elems, n, len(v.elems))
}

// Reserve ensures capacity for at least additional more elements beyond
// the current length. May reallocate, invalidating outstanding aliases.
// A no-op when capacity is already sufficient or additional is nonpositive.
func (v *Vec[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	v.elems = slices.Grow(v.elems, additional)
}

// ShrinkToFit reallocates so that capacity matches length. Non-binding in
// spirit: a Vec already at minimal capacity is left untouched.
func (v *Vec[T]) ShrinkToFit() {
	if cap(v.elems) == len(v.elems) {
		return
	}
	shrunk := make([]T, len(v.elems))
	copy(shrunk, v.elems)
	v.elems = shrunk
}

// Slice returns the backing storage of the Vec. The returned slice aliases
// the container: writes through it are visible, and it is invalidated by
// the same mutations that invalidate Get aliases.
func (v *Vec[T]) Slice() []T {
	return v.elems
}

// Clone returns a Vec holding a copy of the elements.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{elems: slices.Clone(v.elems)}
}

// Iter returns a read-only sequence over the elements in order. Each call
// starts a fresh pass. The sequence is invalidated by any mutation of the
// Vec performed while a pass is live.
func (v *Vec[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// IterMut is Iter yielding aliases into the backing storage, for in-place
// mutation. The same invalidation rule applies.
func (v *Vec[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range v.elems {
			if !yield(&v.elems[i]) {
				return
			}
		}
	}
}
