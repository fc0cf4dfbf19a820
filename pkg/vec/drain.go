package vec

import (
	"iter"
	"slices"

	"github.com/alkavan/oxide/internal/contract"
	"github.com/alkavan/oxide/pkg/option"
)

// Drain is an in-progress removal of a contiguous index range from a Vec.
// Next moves elements of the range out one at a time; Close excises the
// whole original range in one operation no matter how many were taken, so
// abandoning the iteration early still removes every element of the range.
//
// A Drain holds an exclusive reference to its Vec: no other mutation of
// the Vec may be interleaved between construction and Close.
type Drain[T any] struct {
	vec   *Vec[T]
	start int
	index int
	end   int
	done  bool
}

// Drain starts removing the half-open index range [start, end). The range
// is validated immediately: a range with start > end or end > Len panics
// wrapping ErrRangeOutOfBounds before any element is touched. Arrange
// Close with defer so the excision commits however the scope exits.
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	if start < 0 || start > end || end > len(v.elems) {
		contract.Panicf(ErrRangeOutOfBounds, "drain [%d, %d) of %d elements", start, end, len(v.elems))
	}
	return &Drain[T]{vec: v, start: start, index: start, end: end}
}

// Next moves the next element of the range out of the Vec, or returns None
// once the range is exhausted or the Drain is closed. The vacated slot no
// longer retains the value.
func (d *Drain[T]) Next() option.Option[T] {
	if d.done || d.index >= d.end {
		return option.None[T]()
	}
	value := d.vec.elems[d.index]
	var zero T
	d.vec.elems[d.index] = zero
	d.index++
	return option.Some(value)
}

// Remaining reports how many elements of the range have not been taken.
func (d *Drain[T]) Remaining() int {
	if d.done {
		return 0
	}
	return d.end - d.index
}

// Close excises the original [start, end) range from the Vec, shifting
// every element past end down by end-start. Elements never taken through
// Next are discarded with the range. Idempotent.
func (d *Drain[T]) Close() {
	if d.done {
		return
	}
	d.done = true
	d.vec.elems = slices.Delete(d.vec.elems, d.start, d.end)
}

// All consumes the remaining range as a single-pass sequence. The excision
// commits when the loop exits, whether it ran to completion, broke early,
// or unwound through a panic.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			value, ok := d.Next().Get()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}
