// Package contract implements the fatal error tier shared by the public
// packages: misuse of the API (out-of-range indices, unwrapping an absent
// value) panics instead of returning an error.
package contract

import "fmt"

// Panicf panics with an error that wraps sentinel, so recover sites can
// classify the violation with errors.Is.
func Panicf(sentinel error, format string, args ...any) {
	args = append([]any{sentinel}, args...)
	panic(fmt.Errorf("%w: "+format, args...))
}

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
