package immutable

// A List is a fixed sequence of elements.
//
// The constructor copies the slice it is given, and every accessor that
// exposes the backing data returns a fresh copy, so no caller ever holds
// a reference to the list's internal state.
type List[T any] struct {
	items []T
}

// NewList returns a List holding the given elements (copied).
func NewList[T any](items ...T) List[T] {
	return ListOf(items)
}

// ListOf returns a List holding the elements of items (copied).
func ListOf[T any](items []T) List[T] {
	dst := make([]T, len(items))
	copy(dst, items)

	return List[T]{items: dst}
}

// Len returns the number of elements.
func (list List[T]) Len() int {
	return len(list.items)
}

// IsEmpty returns true if the list has no elements.
func (list List[T]) IsEmpty() bool {
	return len(list.items) == 0
}

// Get returns the element at index and true, or the zero value of T and
// false if index is out of range.
func (list List[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, false
	}

	return list.items[index], true
}

// All returns a copy of the elements as a plain slice.
func (list List[T]) All() []T {
	dst := make([]T, len(list.items))
	copy(dst, list.items)

	return dst
}

// Each calls fn for every element, in order.
func (list List[T]) Each(fn func(elem T, index int)) {
	for i, elem := range list.items {
		fn(elem, i)
	}
}

// Append returns a new List with the given elements added at the end.
// The receiver is unchanged.
func (list List[T]) Append(items ...T) List[T] {
	dst := make([]T, 0, len(list.items)+len(items))
	dst = append(dst, list.items...)
	dst = append(dst, items...)

	return List[T]{items: dst}
}

// Concat returns a new List with the elements of other added at the end.
// The receiver is unchanged.
func (list List[T]) Concat(other List[T]) List[T] {
	return list.Append(other.items...)
}
