// Package result provides a success-or-error value in the style of Rust's
// Result, carried on Go's error type.
package result

import (
	"fmt"

	"github.com/alkavan/oxide/internal/contract"
)

// Result is either a T value or an error. The zero Result is Ok holding
// T's zero value.
type Result[T any] struct {
	value T // meaningful only when err is nil
	err   error
}

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failed Result. A nil err yields a Result equivalent to
// Ok of T's zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Errf is Err with fmt.Errorf formatting.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Get returns the value and error. This is the bridge back to plain Go
// error handling.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the held value, panicking with the held error on an Err
// Result.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// UnwrapErr returns the held error, panicking on an Ok Result.
func (r Result[T]) UnwrapErr() error {
	contract.Assert(r.err != nil, "called Result.UnwrapErr on an Ok value")
	return r.err
}

// Expect is Unwrap with a caller-supplied message prefixed to the panic.
func (r Result[T]) Expect(msg string) T {
	if r.err != nil {
		panic(fmt.Errorf("%s: %w", msg, r.err))
	}
	return r.value
}

// UnwrapOr returns the held value, or def on an Err Result. def is
// evaluated eagerly.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// AndThen chains r into f when it holds a value. f is never invoked on an
// Err Result; the error propagates into the result type of f.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Map applies f to the held value, or propagates the error. f is never
// invoked on an Err Result.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}
