// Package stream provides a lazy, composable pipeline of operations on
// ordered sequences of elements.
//
// Streams are constructed by creating an initial ProducerFunc. Producers can
// produce elements from slices or channels, from an integer range, or from
// unbounded sources such as Iterate (repeated application of a function to a
// seed) and Generate (repeated calls to a supplier).
//
// Elements may then be operated upon using intermediate producers: mapping,
// filtering, limiting, taking and dropping by predicate, deduplicating, and
// sorting. Intermediate operations defer all work; each one merely wraps the
// upstream producer in a new one.
//
// Finally, a terminal operation drives the pipeline: collecting into slices,
// maps, or immutable lists, counting, summing, matching, or picking the first,
// smallest, or largest element. Terminal operations that may come up empty
// (First, Min, Max) return an optional.Value instead of a bare element.
//
// Streams are always lazy: constructing a pipeline produces no elements, and
// a producer produces a new element only after a downstream producer or
// consumer has consumed the previous one. Unbounded sources therefore cost
// nothing until a terminal operation runs, but that terminal operation will
// only return if a Limit or TakeWhile stage bounds the stream.
//
// Stream operations receive a context.CancelCauseFunc. Calling it cancels the
// entire stream, short-circuiting element processing. Producer
// implementations must be prepared to be canceled at any time by checking the
// provided context.Context.
package stream
