package option

import "github.com/alkavan/oxide/internal/contract"

// Ref is an optional alias of mutable storage. It never owns the value:
// copying a Ref duplicates the alias, not the referent, and the referent
// must outlive every copy. The zero Ref is None.
//
// A Ref obtained from a container is only valid until the container's
// backing storage moves; see the container's documentation.
type Ref[T any] struct {
	ptr *T
}

// SomeRef returns a Ref aliasing the location ptr points at. ptr must not
// be nil; a nil alias is what NoneRef is for.
func SomeRef[T any](ptr *T) Ref[T] {
	contract.Assert(ptr != nil, "called SomeRef with a nil pointer")
	return Ref[T]{ptr: ptr}
}

// NoneRef returns an empty Ref.
func NoneRef[T any]() Ref[T] {
	return Ref[T]{}
}

func (r Ref[T]) IsSome() bool { return r.ptr != nil }
func (r Ref[T]) IsNone() bool { return r.ptr == nil }

// Unwrap returns the aliased location. Writes through the returned pointer
// are visible to the referent's owner. Panics on None.
func (r Ref[T]) Unwrap() *T {
	contract.Assert(r.ptr != nil, "called Ref.Unwrap on a None value")
	return r.ptr
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Ref[T]) Expect(msg string) *T {
	contract.Assert(r.ptr != nil, msg)
	return r.ptr
}

// Deref returns a copy of the referenced value. Panics on None.
func (r Ref[T]) Deref() T {
	return *r.Unwrap()
}

// Set stores value through the alias. Panics on None.
func (r Ref[T]) Set(value T) {
	*r.Unwrap() = value
}

// UnwrapOr returns the aliased location, or def when None.
func (r Ref[T]) UnwrapOr(def *T) *T {
	if r.ptr == nil {
		return def
	}
	return r.ptr
}

// View is the read-only counterpart of Ref: it aliases storage but only
// ever hands out value copies, never the pointer. Reads observe mutations
// made by the referent's owner. The zero View is None.
type View[T any] struct {
	ptr *T
}

// SomeView returns a View of the location ptr points at. ptr must not be
// nil.
func SomeView[T any](ptr *T) View[T] {
	contract.Assert(ptr != nil, "called SomeView with a nil pointer")
	return View[T]{ptr: ptr}
}

// NoneView returns an empty View.
func NoneView[T any]() View[T] {
	return View[T]{}
}

func (v View[T]) IsSome() bool { return v.ptr != nil }
func (v View[T]) IsNone() bool { return v.ptr == nil }

// Unwrap returns a copy of the referenced value. Panics on None.
func (v View[T]) Unwrap() T {
	contract.Assert(v.ptr != nil, "called View.Unwrap on a None value")
	return *v.ptr
}

// Expect is Unwrap with a caller-supplied panic message.
func (v View[T]) Expect(msg string) T {
	contract.Assert(v.ptr != nil, msg)
	return *v.ptr
}

// UnwrapOr returns a copy of the referenced value, or def when None.
func (v View[T]) UnwrapOr(def T) T {
	if v.ptr == nil {
		return def
	}
	return *v.ptr
}

// Get returns a copy of the referenced value and whether one was present.
func (v View[T]) Get() (T, bool) {
	if v.ptr == nil {
		var zero T
		return zero, false
	}
	return *v.ptr, true
}
