// Package oxide is the umbrella surface of the library: Rust-flavored
// optional values, success-or-error results, and a growable Vec container.
// The types live in their own packages under pkg/; this package aliases
// them and re-exports the common constructors so one import covers the
// usual path.
package oxide

import (
	"github.com/alkavan/oxide/pkg/option"
	"github.com/alkavan/oxide/pkg/result"
	"github.com/alkavan/oxide/pkg/vec"
)

// Library version.
const (
	VersionMajor = 1
	VersionMinor = 1
	VersionPatch = 0
)

type (
	Option[T any] = option.Option[T]
	Ref[T any]    = option.Ref[T]
	View[T any]   = option.View[T]
	Result[T any] = result.Result[T]
	Vec[T any]    = vec.Vec[T]
)

// Some returns an Option holding value.
func Some[T any](value T) Option[T] { return option.Some(value) }

// None returns an empty Option of T.
func None[T any]() Option[T] { return option.None[T]() }

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] { return result.Ok(value) }

// Err returns a failed Result.
func Err[T any](err error) Result[T] { return result.Err[T](err) }

// NewVec returns an empty Vec.
func NewVec[T any]() *Vec[T] { return vec.New[T]() }

// VecOf returns a Vec holding a copy of elems.
func VecOf[T any](elems ...T) *Vec[T] { return vec.From(elems...) }
