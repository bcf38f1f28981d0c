package stream

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/deadlyengineer/some-functional-go/fp"
)

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, a T, b T) bool

// ErrLimitReached is the error used to short-circuit a stream by canceling its context to indicate that
// the maximum number of elements given to Limit has been reached.
var ErrLimitReached = errors.New("limit reached")

// ErrTakeWhileEnded is the error used to short-circuit a stream by canceling its context to indicate that
// TakeWhile has seen its first non-matching element.
var ErrTakeWhileEnded = errors.New("take while ended")

// FuncMapper lifts a plain function into a mapper that ignores the stream state.
func FuncMapper[T any, U any](mapp fp.Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate lifts a plain predicate into a PredicateFunc that ignores the stream state.
func FuncPredicate[T any](pred fp.Predicate[T]) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// FuncConsumer lifts a plain consumer into a ConsumerFunc that ignores the stream state.
func FuncConsumer[T any](each fp.Consumer[T]) ConsumerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		each(elem)
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := prod(ctx, cancel)

		outCh := make(chan U)

		go func() {
			defer close(outCh)

			index := uint64(0)

			for elem := range ch {
				outElem := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				select {
				case outCh <- outElem:
					index++

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// MapConcurrent returns a producer that concurrently calls mapp for each element produced by prod, mapping it to type U.
// The order of elements produced by the new producer is undefined.
func MapConcurrent[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := prod(ctx, cancel)

		outCh := make(chan U)

		index := uint64(0)

		grp := sync.WaitGroup{}

		for elem := range ch {
			grp.Add(1)

			go func(elem T, index uint64) {
				defer grp.Done()

				outElem := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				select {
				case outCh <- outElem:

				case <-ctx.Done():
				}
			}(elem, index)

			index++
		}

		go func() {
			defer close(outCh)

			grp.Wait()
		}()

		return outCh
	}
}

// FlatMap returns a producer that calls mapp for each element produced by prod, mapping it to an intermediate producer
// that produces elements of type U.
// The new producer produces all elements produced by the intermediate producers, in order.
func FlatMap[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, ProducerFunc[U]]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		ch := prod(ctx, cancel)

		index := uint64(0)

		prods := []ProducerFunc[U]{}

		for elem := range ch {
			prods = append(prods, mapp(ctx, cancel, elem, index))
			index++
		}

		prodCh := Join(prods...)(ctx, cancel)

		outCh := make(chan U)

		go func() {
			defer close(outCh)

			for elem := range prodCh {
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

// Filter returns a producer that calls pred for each element produced by prod, and only produces elements for which
// pred returns true.
func Filter[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			index := uint64(0)

			for elem := range ch {
				matches := pred(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !matches {
					continue
				}

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

// FilterConcurrent returns a producer that concurrently calls pred for each element produced by prod, and only
// produces elements for which pred returns true.
// The order of elements produced by the new producer is undefined.
func FilterConcurrent[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		index := uint64(0)

		grp := sync.WaitGroup{}

		for elem := range ch {
			grp.Add(1)

			go func(elem T, index uint64) {
				defer grp.Done()

				matches := pred(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				if !matches {
					return
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
				}
			}(elem, index)

			index++
		}

		go func() {
			defer close(outCh)

			grp.Wait()
		}()

		return outCh
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			index := uint64(0)

			for elem := range ch {
				peek(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				select {
				case outCh <- elem:
					index++

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// Once max elements have been produced, the upstream producer is canceled with ErrLimitReached,
// which makes Limit the way to terminate an unbounded Iterate or Generate source.
func Limit[T any](prod ProducerFunc[T], max uint64) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		prodCtx, cancelProd := context.WithCancelCause(ctx)

		ch := prod(prodCtx, cancel)

		outCh := make(chan T)

		go func() {
			defer cancelProd(nil)

			defer close(outCh)

			if max == 0 {
				cancelProd(ErrLimitReached)
				return
			}

			done := uint64(0)

			for elem := range ch {
				select {
				case outCh <- elem:
					done++
					if done == max {
						cancelProd(ErrLimitReached)
						return
					}

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping the first num elements.
func Skip[T any](prod ProducerFunc[T], num uint64) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			done := uint64(0)

			for elem := range ch {
				done++
				if done <= num {
					continue
				}

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

// TakeWhile returns a producer that produces the same elements as prod, in order, stopping at the
// first element for which pred returns false. At that point, the upstream producer is canceled
// with ErrTakeWhileEnded, so TakeWhile, like Limit, terminates an unbounded source.
func TakeWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		prodCtx, cancelProd := context.WithCancelCause(ctx)

		ch := prod(prodCtx, cancel)

		outCh := make(chan T)

		go func() {
			defer cancelProd(nil)

			defer close(outCh)

			index := uint64(0)

			for elem := range ch {
				matches := pred(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !matches {
					cancelProd(ErrTakeWhileEnded)
					return
				}

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

// DropWhile returns a producer that drops elements produced by prod until pred returns false for
// the first time, then produces every remaining element, in order.
func DropWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			index := uint64(0)

			dropping := true

			for elem := range ch {
				if dropping {
					matches := pred(ctx, cancel, elem, index)

					if contextDone(ctx) {
						return
					}

					index++

					if matches {
						continue
					}

					dropping = false
				}

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

// Distinct returns a producer that produces the elements of prod with duplicates removed,
// preserving the order of first occurrence.
func Distinct[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DistinctBy(prod, Identity[T]())
}

// DistinctBy returns a producer that produces the elements of prod whose keys, as mapped by key,
// have not been seen before, preserving the order of first occurrence.
func DistinctBy[T any, K comparable](prod ProducerFunc[T], key MapperFunc[T, K]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			index := uint64(0)

			seen := map[K]struct{}{}

			for elem := range ch {
				elemKey := key(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if _, ok := seen[elemKey]; ok {
					continue
				}

				seen[elemKey] = struct{}{}

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

// Sort returns a producer that consumes all elements from prod, sorts them using less, and
// produces them in sorted order. Sort necessarily buffers the whole stream, so it must not be
// used on an unbounded source.
func Sort[T any](prod ProducerFunc[T], less LessFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		result := []T{}

		for elem := range ch {
			result = append(result, elem)
		}

		slices.SortFunc(result, func(a T, b T) bool {
			return less(ctx, cancel, a, b)
		})

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, elem := range result {
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
