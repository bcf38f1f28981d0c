package stream

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestProduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints := []int{}
	for i := range Produce([]int{1, 2}, []int{3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestProduceChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	intsCh1 := Produce([]int{1, 2})(ctx, cancel)
	intsCh2 := Produce([]int{3, 4, 5})(ctx, cancel)

	ints := []int{}
	for i := range ProduceChannel(intsCh1, intsCh2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestEmpty(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := ReduceSlice(ctx, Empty[string]())

	is.NoErr(err)
	is.Equal(len(result), 0)
}

func TestIterate(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	evens := Iterate(0, func(n int) int {
		return n + 2
	})

	result, _ := ReduceSlice(ctx, Limit(evens, 5))

	is.Equal(result, []int{0, 2, 4, 6, 8})
}

func TestIterate_Fibonacci(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	pairs := Iterate([2]int{0, 1}, func(f [2]int) [2]int {
		return [2]int{f[1], f[0] + f[1]}
	})

	fibs := Map(pairs, FuncMapper(func(f [2]int) int {
		return f[0]
	}))

	result, _ := ReduceSlice(ctx, Limit(fibs, 10))

	is.Equal(result, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34})
}

func TestIterateWhile(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	evens := IterateWhile(0, func(n int) bool {
		return n < 10
	}, func(n int) int {
		return n + 2
	})

	result, err := ReduceSlice(ctx, evens)

	is.NoErr(err)
	is.Equal(result, []int{0, 2, 4, 6, 8})
}

func TestGenerate(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	n := 0

	naturals := Generate(func() int {
		n++
		return n
	})

	result, _ := ReduceSlice(ctx, Limit(naturals, 5))

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestRange(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, _ := ReduceSlice(ctx, Range(1, 6))

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestRange_Empty(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	count, err := Count(ctx, Range(5, 5))

	is.NoErr(err)
	is.Equal(count, uint64(0))
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints1 := Produce([]int{1, 2})
	ints2 := Produce([]int{3, 4, 5})

	ints := []int{}
	for i := range Join(ints1, ints2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}
