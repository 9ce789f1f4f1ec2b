/*
Package option provides a nullable option type.

An Option[T] either holds a (shared) reference to a value of type T, or it
holds nothing. Clients check for Some/None and dereference held values.
Dereferencing a None panics with ErrEmptyAccess — in a perfect world this
would be enforced at compile-time. It is not.

Options hold values by reference: copying an Option never copies the
contained value, and several Options may refer to the same value. Assigning
to an Option variable replaces what it refers to; the previously referenced
value is left untouched and other referents remain valid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import "errors"

// ErrEmptyAccess flags the dereferencing of a None option. Option methods
// which require a contained value panic with this error when called on None.
var ErrEmptyAccess = errors.New("option: dereference of None")

// Option is a container which either holds a shared reference to a value, or nothing.
// The zero value is None.
type Option[T any] struct {
	ref *T
}

// Some creates an option containing value.
func Some[T any](value T) Option[T] {
	return Option[T]{ref: &value}
}

// SomeRef creates an option from an existing reference, sharing the referenced
// value instead of copying it. A nil reference yields None.
func SomeRef[T any](ref *T) Option[T] {
	return Option[T]{ref: ref}
}

// None creates an option containing no value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if there is a value contained in this option.
func (o Option[T]) IsSome() bool {
	return o.ref != nil
}

// IsNone returns true if there is no value contained in this option.
func (o Option[T]) IsNone() bool {
	return o.ref == nil
}

// Ref returns the shared reference to the contained value.
// Panics with ErrEmptyAccess if o is None.
func (o Option[T]) Ref() *T {
	if o.ref == nil {
		panic(ErrEmptyAccess)
	}
	return o.ref
}

// Unwrap returns a copy of the contained value.
// Panics with ErrEmptyAccess if o is None.
func (o Option[T]) Unwrap() T {
	if o.ref == nil {
		panic(ErrEmptyAccess)
	}
	return *o.ref
}

// WithDefault returns the contained value, or def if o is None.
func (o Option[T]) WithDefault(def T) T {
	if o.ref == nil {
		return def
	}
	return *o.ref
}

// Map applies f to the contained value, if any, wrapping the output in a
// new option. Mapping None is a no-op.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.ref == nil {
		return o
	}
	return Some(f(*o.ref))
}

// --- Matching --------------------------------------------------------------

// Match returns a Matcher for o, to be used in a switch statement:
//
//     var v int
//     switch m := o.Match(); m {
//     case m.Some(&v):
//         // use v
//     case m.None():
//         // no value
//     }
//
func (o Option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

// Matcher is a helper type for pattern-matching on an option.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

type matcher[T any] struct {
	o Option[T]
}

func (om matcher[T]) Some(v *T) Matcher[T] {
	if om.o.ref != nil {
		*v = *om.o.ref
		return om
	}
	return nil
}

func (om matcher[T]) None() Matcher[T] {
	if om.o.ref == nil {
		return om
	}
	return nil
}
