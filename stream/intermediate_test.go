package stream

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/exp/slices"
)

func TestMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Map(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) int {
		is.Equal(index, uint64(elem-1))

		return elem * 2
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2, 4, 6, 8, 10})
}

func TestMap_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = Map(ints, func(_ context.Context, cancel context.CancelCauseFunc, elem int, index uint64) int {
		is.True(elem <= 3)
		is.Equal(index, uint64(elem-1))

		if elem == 3 {
			cancel(nil)
			return 0
		}

		return elem * 2
	})

	result, err := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2, 4})
	is.True(errors.Is(err, context.Canceled))
}

func TestMapConcurrent(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = MapConcurrent(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) int {
		is.Equal(index, uint64(elem-1))

		return elem * 2
	})

	result, _ := ReduceSlice(ctx, ints)

	slices.Sort(result)

	is.Equal(result, []int{2, 4, 6, 8, 10})
}

func TestFilter(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Range(1, 10)

	ints = Filter(ints, even)

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{2, 4, 6, 8})
}

func TestFilterConcurrent(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	ints = FilterConcurrent(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
		is.Equal(index, uint64(elem-1))

		return elem%2 == 0
	})

	result, _ := ReduceSlice(ctx, ints)

	slices.Sort(result)

	is.Equal(result, []int{2, 4})
}

func TestFlatMap(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	nested := Produce([][]int{
		{1, 2, 3},
		{4, 5},
		{6, 7, 8, 9},
	})

	flattened := FlatMap(nested, func(_ context.Context, _ context.CancelCauseFunc, elem []int, _ uint64) ProducerFunc[int] {
		return Produce(elem)
	})

	result, _ := ReduceSlice(ctx, flattened)

	is.Equal(result, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func TestPeek(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	ints = Peek(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	})

	_, _ = ReduceSlice(ctx, ints)

	is.Equal(sum, 15)
}

func TestLimit(t *testing.T) {
	tests := []struct {
		givenLimit              uint64
		want                    []int
		wantProducerCancelCause error
	}{
		{
			givenLimit:              3,
			want:                    []int{1, 2, 3},
			wantProducerCancelCause: ErrLimitReached,
		},
		{
			givenLimit:              0,
			want:                    nil,
			wantProducerCancelCause: ErrLimitReached,
		},
		{
			givenLimit: 100,
			want:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			producerCancelCause := make(chan error)

			ints := probeProducer([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, producerCancelCause)

			result, _ := ReduceSlice(ctx, Limit(ints, test.givenLimit))

			is.Equal(result, test.want)
			is.Equal(<-producerCancelCause, test.wantProducerCancelCause)
		})
	}
}

func TestLimit_UnboundedSource(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Limit(Iterate(1, func(n int) int { return n + 1 }), 3)

	result, err := ReduceSlice(ctx, ints)

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}

func TestSkip(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Range(1, 10)

	ints = Skip(ints, 3)

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{4, 5, 6, 7, 8, 9})
}

func TestTakeWhile(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	producerCancelCause := make(chan error)

	ints := probeProducer([]int{0, 2, 4, 6, 8, 10, 12}, producerCancelCause)

	lessThan10 := TakeWhile(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) bool {
		return elem < 10
	})

	result, err := ReduceSlice(ctx, lessThan10)

	is.NoErr(err)
	is.Equal(result, []int{0, 2, 4, 6, 8})
	is.Equal(<-producerCancelCause, ErrTakeWhileEnded)
}

func TestTakeWhile_UnboundedSource(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	evens := Iterate(0, func(n int) int {
		return n + 2
	})

	result, err := ReduceSlice(ctx, TakeWhile(evens, func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) bool {
		return elem < 10
	}))

	is.NoErr(err)
	is.Equal(result, []int{0, 2, 4, 6, 8})
}

func TestDropWhile(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{1, 2, 3, 4, 1, 2})

	rest := DropWhile(ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) bool {
		return elem < 3
	})

	result, _ := ReduceSlice(ctx, rest)

	is.Equal(result, []int{3, 4, 1, 2})
}

func TestDistinct(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	words := Produce([]string{"apple", "banana", "apple", "orange", "banana"})

	result, _ := ReduceSlice(ctx, Distinct(words))

	is.Equal(result, []string{"apple", "banana", "orange"})
}

func TestDistinctBy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	words := Produce([]string{"apple", "avocado", "banana", "blueberry", "cherry"})

	byFirstLetter := DistinctBy(words, FuncMapper(func(word string) byte {
		return word[0]
	}))

	result, _ := ReduceSlice(ctx, byFirstLetter)

	is.Equal(result, []string{"apple", "banana", "cherry"})
}

func TestSort(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Produce([]int{3, 1, 2, 4, 5})

	ints = Sort(ints, func(_ context.Context, _ context.CancelCauseFunc, a int, b int) bool {
		return a < b
	})

	result, _ := ReduceSlice(ctx, ints)

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestPipelineIsLazy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	produced := 0

	// unbounded source; counts how many elements the terminal demands
	evens := Iterate(0, func(n int) int {
		return n + 2
	})

	pipeline := Map(evens, FuncMapper(func(n int) int {
		return n * 2
	}))
	pipeline = Filter(pipeline, FuncPredicate(func(n int) bool {
		return n%3 == 0
	}))
	pipeline = Limit(pipeline, 5)
	pipeline = Distinct(pipeline)
	pipeline = Peek(pipeline, FuncConsumer(func(_ int) {
		produced++
	}))

	// intermediate operations have not produced anything yet
	is.Equal(produced, 0)

	result, err := ReduceSlice(ctx, pipeline)

	is.NoErr(err)
	is.Equal(result, []int{0, 12, 24, 36, 48})
	is.Equal(produced, 5)
}

// probeProducer produces the given elements and reports the stream's cancel cause, if any,
// on causeCh once the producer shuts down.
func probeProducer[T any](elems []T, causeCh chan<- error) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			var cancelCause error

			defer func() {
				causeCh <- cancelCause
			}()

			defer close(outCh)

			for _, elem := range elems {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					cancelCause = context.Cause(ctx)
					return
				}
			}
		}()

		return outCh
	}
}
