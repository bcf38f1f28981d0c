package stream

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/deadlyengineer/some-functional-go/fp"
)

// ProducerFunc returns a channel of elements for a stream.
// Calling the function starts production; merely holding it does not.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Empty returns a producer that produces no elements.
func Empty[T any]() ProducerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)
		close(outCh)

		return outCh
	}
}

// Iterate returns a producer that produces seed, next(seed), next(next(seed)), and so on.
// The producer is unbounded: downstream must use Limit or TakeWhile to terminate the
// stream, otherwise the terminal operation will not return.
func Iterate[T any](seed T, next fp.Function[T, T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := seed; ; elem = next(elem) {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// IterateWhile returns a producer that produces seed, next(seed), and so on,
// for as long as cond returns true for the element about to be produced.
func IterateWhile[T any](seed T, cond fp.Predicate[T], next fp.Function[T, T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := seed; cond(elem); elem = next(elem) {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Generate returns a producer that produces the results of calling supply over and over.
// Like Iterate, the producer is unbounded.
func Generate[T any](supply fp.Supplier[T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for {
				select {
				case outCh <- supply():

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Range returns a producer that produces the integers from start (inclusive)
// to end (exclusive), in order.
func Range[T constraints.Integer](start T, end T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := start; elem < end; elem++ {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Join returns a producer that produces the elements produced by the given producers, in order.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		channels := make([]<-chan T, len(producers))
		for i, prod := range producers {
			channels[i] = prod(ctx, cancel)
		}

		return ProduceChannel(channels...)(ctx, cancel)
	}
}
