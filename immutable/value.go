package immutable

// A Value is a box holding a single element, assigned once at construction.
type Value[T any] struct {
	value T
}

// NewValue returns a Value holding value.
func NewValue[T any](value T) Value[T] {
	return Value[T]{value: value}
}

// Get returns the stored element.
func (val Value[T]) Get() T {
	return val.value
}
