package optional

import (
	"errors"
	"fmt"
)

// ErrNoValue is the error an absent Value panics with when its element is
// demanded without a fallback.
var ErrNoValue = errors.New("optional: no value present")

// A Value holds either one element of type T, or nothing.
// The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a present Value holding value.
func Of[T any](value T) Value[T] {
	return Value[T]{
		value:   value,
		present: true,
	}
}

// OfPtr returns a Value holding *ptr, or an absent Value if ptr is nil.
func OfPtr[T any](ptr *T) Value[T] {
	if ptr == nil {
		return Empty[T]()
	}

	return Of(*ptr)
}

// FromTuple converts a (value, ok) pair, as returned by map indexing or
// type assertions, into a Value.
func FromTuple[T any](value T, ok bool) Value[T] {
	if !ok {
		return Empty[T]()
	}

	return Of(value)
}

// Empty returns an absent Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// IsPresent returns true if val holds an element.
func (val Value[T]) IsPresent() bool {
	return val.present
}

// IsAbsent returns true if val holds nothing.
func (val Value[T]) IsAbsent() bool {
	return !val.present
}

// Get returns the element and true if val is present, or the zero value
// of T and false otherwise.
func (val Value[T]) Get() (T, bool) {
	return val.value, val.present
}

// MustGet returns the element, or panics with ErrNoValue if val is absent.
// Use it only where absence is a programming error.
func (val Value[T]) MustGet() T {
	if !val.present {
		panic(ErrNoValue)
	}

	return val.value
}

// OrElse returns the element if val is present, or fallback otherwise.
func (val Value[T]) OrElse(fallback T) T {
	if !val.present {
		return fallback
	}

	return val.value
}

// OrElseGet returns the element if val is present, or the result of supply
// otherwise. supply is called only when val is absent.
func (val Value[T]) OrElseGet(supply func() T) T {
	if !val.present {
		return supply()
	}

	return val.value
}

// OrElseErr returns the element if val is present. Otherwise it returns the
// zero value of T and the result of mkErr, or ErrNoValue if mkErr is nil.
func (val Value[T]) OrElseErr(mkErr func() error) (T, error) {
	if val.present {
		return val.value, nil
	}

	var zero T

	if mkErr == nil {
		return zero, ErrNoValue
	}

	return zero, mkErr()
}

// Or returns val if it is present, or the result of supply otherwise.
// supply is called only when val is absent.
func (val Value[T]) Or(supply func() Value[T]) Value[T] {
	if val.present {
		return val
	}

	return supply()
}

// Filter returns val if it is present and its element matches pred, or an
// absent Value otherwise.
func (val Value[T]) Filter(pred func(T) bool) Value[T] {
	if !val.present || !pred(val.value) {
		return Empty[T]()
	}

	return val
}

// IfPresent calls fn with the element if val is present.
func (val Value[T]) IfPresent(fn func(T)) {
	if val.present {
		fn(val.value)
	}
}

// IfPresentOrElse calls fn with the element if val is present, or calls
// elseFn otherwise.
func (val Value[T]) IfPresentOrElse(fn func(T), elseFn func()) {
	if val.present {
		fn(val.value)
		return
	}

	elseFn()
}

// String implements fmt.Stringer.
func (val Value[T]) String() string {
	if !val.present {
		return "absent"
	}

	return fmt.Sprintf("present(%v)", val.value)
}

// Map returns a present Value holding fn(element) if val is present, or an
// absent Value otherwise.
func Map[T any, U any](val Value[T], fn func(T) U) Value[U] {
	if !val.present {
		return Empty[U]()
	}

	return Of(fn(val.value))
}

// FlatMap returns fn(element) if val is present, or an absent Value
// otherwise. Unlike Map, the result of fn is not wrapped again.
func FlatMap[T any, U any](val Value[T], fn func(T) Value[U]) Value[U] {
	if !val.present {
		return Empty[U]()
	}

	return fn(val.value)
}

// ZipWith combines the elements of two Values using fn. The result is
// absent if either input is.
func ZipWith[A any, B any, C any](a Value[A], b Value[B], fn func(A, B) C) Value[C] {
	if !a.present || !b.present {
		return Empty[C]()
	}

	return Of(fn(a.value, b.value))
}
