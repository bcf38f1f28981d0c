package stream

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/deadlyengineer/some-functional-go/optional"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// Number is the constraint of the element types Sum can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrShortCircuit is a generic error used to short-circuit a stream by canceling its context.
var ErrShortCircuit = errors.New("short circuit")

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}

// Each calls each for each element produced by prod.
// If prod or each cancel the stream's context, it returns the cause of the cancelation.
func Each[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := prod(ctx, cancel)

	index := uint64(0)

	for elem := range ch {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// EachConcurrent concurrently calls each for each element produced by prod.
// If prod or each cancel the stream's context, it returns the cause of the cancelation.
func EachConcurrent[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := prod(ctx, cancel)

	index := uint64(0)

	grp := sync.WaitGroup{}

	for elem := range ch {
		grp.Add(1)

		go func(elem T, index uint64) {
			defer grp.Done()

			each(ctx, cancel, elem, index)
		}(elem, index)

		index++
	}

	grp.Wait()

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// Reduce calls reduce for each element produced by prod, folding it into accumulator acc, returning the final accumulator.
// If prod or reduce cancel the stream's context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, prod ProducerFunc[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// ReduceSlice collects the elements produced by prod into a slice, in order.
func ReduceSlice[T any](ctx context.Context, prod ProducerFunc[T]) ([]T, error) {
	return Reduce(ctx, prod, nil, CollectSlice[T]())
}

// Count returns the number of elements produced by prod.
// If prod cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func Count[T any](ctx context.Context, prod ProducerFunc[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}

// Sum returns the sum of the elements produced by prod.
// If prod cancels the stream's context, it returns the sum so far, and the cause of the cancelation.
func Sum[T Number](ctx context.Context, prod ProducerFunc[T]) (T, error) {
	var sum T

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		sum += elem
	})

	return sum, err
}

// AnyMatch returns true as soon as pred returns true for an element produced by prod, that is, an element matches.
// If an element matches, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AnyMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by prod, that is, all elements match.
// If any element does not match, it cancels the stream's context using ErrShortCircuit.
// If prod or pred cancel the stream's context, it returns an undefined result, and the cause of the cancelation.
func AllMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}

// NoneMatch returns true if pred returns false for all elements produced by prod, that is, no element matches.
// It is the negation of AnyMatch and short-circuits the same way.
func NoneMatch[T any](ctx context.Context, prod ProducerFunc[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch, err := AnyMatch(ctx, prod, pred)

	return !anyMatch, err
}

// First returns the first element produced by prod, or an absent value if prod produces nothing.
// Once an element has been seen, it cancels the stream's context using ErrShortCircuit.
func First[T any](ctx context.Context, prod ProducerFunc[T]) (optional.Value[T], error) {
	first := optional.Empty[T]()

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		first = optional.Of(elem)

		cancel(ErrShortCircuit)
	})

	return first, err
}

// Min returns the smallest element produced by prod, according to less, or an absent value if
// prod produces nothing.
func Min[T any](ctx context.Context, prod ProducerFunc[T], less LessFunc[T]) (optional.Value[T], error) {
	min := optional.Empty[T]()

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		if best, ok := min.Get(); ok && !less(ctx, cancel, elem, best) {
			return
		}

		min = optional.Of(elem)
	})

	return min, err
}

// Max returns the largest element produced by prod, according to less, or an absent value if
// prod produces nothing.
func Max[T any](ctx context.Context, prod ProducerFunc[T], less LessFunc[T]) (optional.Value[T], error) {
	max := optional.Empty[T]()

	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		if best, ok := max.Get(); ok && less(ctx, cancel, elem, best) {
			return
		}

		max = optional.Of(elem)
	})

	return max, err
}
