package option

import "iter"

// Find returns the first element of seq satisfying pred, or None when no
// element matches. Iteration stops at the first match.
func Find[T any](seq iter.Seq[T], pred func(T) bool) Option[T] {
	for v := range seq {
		if pred(v) {
			return Some(v)
		}
	}
	return None[T]()
}
