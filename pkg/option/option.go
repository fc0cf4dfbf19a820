// Package option provides optional values in three shapes: Option owns its
// value, Ref aliases mutable storage, and View aliases storage read-only.
//
// Go cannot overload a single constructor on value category the way the
// owning/reference split usually works, so each shape has its own pair of
// constructors: Some/None, SomeRef/NoneRef, SomeView/NoneView.
package option

import "github.com/alkavan/oxide/internal/contract"

// Option is a value slot that either holds exactly one T (Some) or is
// empty (None). The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option. The type parameter is mandatory when it
// cannot be inferred: absence alone carries no type information.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is held.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the held value and whether it was present. This is the
// comma-ok bridge for callers that prefer plain Go control flow.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the held value. Calling it on a None is a programmer
// error and panics; absence that is an expected outcome should go through
// Get or UnwrapOr instead.
func (o Option[T]) Unwrap() T {
	contract.Assert(o.ok, "called Option.Unwrap on a None value")
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Option[T]) Expect(msg string) T {
	contract.Assert(o.ok, msg)
	return o.value
}

// UnwrapOr returns the held value, or def when None. def is an ordinary
// argument and is evaluated eagerly whether or not it is used.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Take moves the value out, leaving the receiver None. Taking from a None
// returns None.
func (o *Option[T]) Take() Option[T] {
	taken := *o
	o.Clear()
	return taken
}

// Set stores value, replacing whatever was held. The receiver is Some
// afterwards.
func (o *Option[T]) Set(value T) {
	o.value = value
	o.ok = true
}

// Clear empties the Option. Idempotent.
func (o *Option[T]) Clear() {
	var zero T
	o.value = zero
	o.ok = false
}

// Filter returns the Option unchanged when it holds a value satisfying
// pred, and None otherwise. pred is not invoked on a None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.ok || !pred(o.value) {
		return None[T]()
	}
	return o
}

// AndThen chains o into f when it holds a value. f is never invoked on a
// None; the absence propagates as a None of f's result type, so chains can
// be written without branching at every step.
//
// This is a free function because Go methods cannot introduce the result
// type parameter U.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// Map applies f to the held value, or propagates None. f is never invoked
// on a None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}
