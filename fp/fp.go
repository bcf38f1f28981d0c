package fp

import "sync"

// Function returns the result of applying an operation to a value.
type Function[T any, U any] func(value T) U

// BiFunction returns the result of applying an operation to two values.
type BiFunction[A any, B any, C any] func(a A, b B) C

// UnaryOperator is a Function whose argument and result have the same type.
type UnaryOperator[T any] func(value T) T

// BinaryOperator is a BiFunction whose arguments and result all have the same type.
type BinaryOperator[T any] func(a T, b T) T

// Predicate returns true if a value matches a condition.
type Predicate[T any] func(value T) bool

// Consumer performs an effect with a value, returning nothing.
type Consumer[T any] func(value T)

// Supplier produces a value from nothing.
type Supplier[T any] func() T

// Identity returns the value it receives, unchanged.
func Identity[T any](value T) T {
	return value
}

// Constant returns a supplier that always produces value.
func Constant[T any](value T) Supplier[T] {
	return func() T {
		return value
	}
}

// Then returns a function that applies f, then applies g to f's result.
func Then[A any, B any, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return func(value A) C {
		return g(f(value))
	}
}

// Compose returns a function that applies g, then applies f to g's result.
// Compose(f, g) is Then(g, f).
func Compose[A any, B any, C any](f Function[B, C], g Function[A, B]) Function[A, C] {
	return func(value A) C {
		return f(g(value))
	}
}

// Pipe applies the given operators to value, left to right, and returns the
// final result.
func Pipe[T any](value T, ops ...func(T) T) T {
	result := value

	for _, op := range ops {
		result = op(result)
	}

	return result
}

// Curry converts a two-argument function into a chain of one-argument functions.
func Curry[A any, B any, C any](fn BiFunction[A, B, C]) Function[A, Function[B, C]] {
	return func(a A) Function[B, C] {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Partial binds the first argument of a two-argument function.
func Partial[A any, B any, C any](fn BiFunction[A, B, C], a A) Function[B, C] {
	return func(b B) C {
		return fn(a, b)
	}
}

// And returns a predicate that is true if both pred and other are true.
// other is not evaluated if pred is false.
func (pred Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return pred(value) && other(value)
	}
}

// Or returns a predicate that is true if pred or other is true.
// other is not evaluated if pred is true.
func (pred Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return pred(value) || other(value)
	}
}

// Negate returns a predicate that is true if pred is false.
func (pred Predicate[T]) Negate() Predicate[T] {
	return func(value T) bool {
		return !pred(value)
	}
}

// AndThen returns a consumer that calls each, then calls other with the
// same value.
func (each Consumer[T]) AndThen(other Consumer[T]) Consumer[T] {
	return func(value T) {
		each(value)
		other(value)
	}
}

// Once returns a supplier that calls supply at most once and returns the
// same result on every subsequent call.
func Once[T any](supply Supplier[T]) Supplier[T] {
	once := sync.Once{}

	var result T

	return func() T {
		once.Do(func() {
			result = supply()
		})

		return result
	}
}
