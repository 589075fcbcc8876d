// Package xform builds reusable transducers with no bound source.
//
// The stage vocabulary matches package chain, but Build returns a
// transduce.Transducer which can be applied any number of times, to any
// source and terminal:
//
//	xf := xform.Map(xform.New[int]().Filter(isEven), strconv.Itoa).Build()
//	out, err := transduce.Transduce(slice.New(ints), xf, transduce.Collect[string]())
package xform

import (
	"iter"

	"github.com/jake-scott/go-transduce"
)

// Builder accumulates stages from In to Out.
type Builder[In, Out any] struct {
	xf transduce.Transducer[In, Out]
}

// New returns an empty builder whose transducer forwards every input.
func New[T any]() *Builder[T, T] {
	return &Builder[T, T]{xf: transduce.Identity[T]()}
}

// Build returns the accumulated transducer.
func (b *Builder[In, Out]) Build() transduce.Transducer[In, Out] {
	return b.xf
}

// Compose appends the stage x.
func (b *Builder[In, Out]) Compose(x transduce.Transducer[Out, Out]) *Builder[In, Out] {
	b.xf = transduce.Compose(b.xf, x)
	return b
}

// Then appends the stage x, which changes the element type.
func Then[In, Out, U any](b *Builder[In, Out], x transduce.Transducer[Out, U]) *Builder[In, U] {
	return &Builder[In, U]{xf: transduce.Compose(b.xf, x)}
}

// Filter appends a stage that forwards the elements for which f is true.
func (b *Builder[In, Out]) Filter(f transduce.FilterFunc[Out]) *Builder[In, Out] {
	return b.Compose(transduce.Filter(f))
}

// FilterIndexed is Filter with the zero based index of each element
// passed to f.
func (b *Builder[In, Out]) FilterIndexed(f func(int, Out) bool) *Builder[In, Out] {
	return b.Compose(transduce.FilterIndexed(f))
}

// Remove appends a stage that drops the elements for which f is true.
func (b *Builder[In, Out]) Remove(f transduce.FilterFunc[Out]) *Builder[In, Out] {
	return b.Compose(transduce.Remove(f))
}

// Drop appends a stage that discards the first n elements.
func (b *Builder[In, Out]) Drop(n int) *Builder[In, Out] {
	return b.Compose(transduce.Drop[Out](n))
}

// DropWhile appends a stage that discards elements until f first fails.
func (b *Builder[In, Out]) DropWhile(f transduce.FilterFunc[Out]) *Builder[In, Out] {
	return b.Compose(transduce.DropWhile(f))
}

// Take appends a stage that forwards at most n elements and then stops
// the run.
func (b *Builder[In, Out]) Take(n int) *Builder[In, Out] {
	return b.Compose(transduce.Take[Out](n))
}

// TakeWhile appends a stage that forwards elements until f first fails,
// then stops the run.
func (b *Builder[In, Out]) TakeWhile(f transduce.FilterFunc[Out]) *Builder[In, Out] {
	return b.Compose(transduce.TakeWhile(f))
}

// TakeNth appends a stage that forwards the elements at index 0, n, 2n, ...
// It panics with a *transduce.ArgumentError if n is not positive.
func (b *Builder[In, Out]) TakeNth(n int) *Builder[In, Out] {
	return b.Compose(transduce.TakeNth[Out](n))
}

// Interpose appends a stage that forwards sep between consecutive elements.
func (b *Builder[In, Out]) Interpose(sep Out) *Builder[In, Out] {
	return b.Compose(transduce.Interpose(sep))
}

// DedupeFunc appends a stage that drops elements eq to the one before.
func (b *Builder[In, Out]) DedupeFunc(eq func(a, b Out) bool) *Builder[In, Out] {
	return b.Compose(transduce.DedupeFunc(eq))
}

// Map appends a stage that forwards f(item) for each element.
func Map[In, Out, U any](b *Builder[In, Out], f transduce.MapFunc[Out, U]) *Builder[In, U] {
	return Then(b, transduce.Map(f))
}

// MapIndexed is Map with the zero based index of each element passed
// to f.
func MapIndexed[In, Out, U any](b *Builder[In, Out], f func(int, Out) U) *Builder[In, U] {
	return Then(b, transduce.MapIndexed(f))
}

// Keep appends a stage that forwards f(item) only when f reports ok.
func Keep[In, Out, U any](b *Builder[In, Out], f func(Out) (U, bool)) *Builder[In, U] {
	return Then(b, transduce.Keep(f))
}

// FlatMap appends a stage that forwards every element of the sequence f
// returns.
func FlatMap[In, Out, U any](b *Builder[In, Out], f func(Out) iter.Seq[U]) *Builder[In, U] {
	return Then(b, transduce.FlatMap(f))
}

// FlatMapSlice is FlatMap for functions that return slices.
func FlatMapSlice[In, Out, U any](b *Builder[In, Out], f func(Out) []U) *Builder[In, U] {
	return Then(b, transduce.FlatMapSlice(f))
}

// PartitionAll appends a stage that groups elements into slices of n.  It
// panics with a *transduce.ArgumentError if n is not positive.
func PartitionAll[In, Out any](b *Builder[In, Out], n int) *Builder[In, []Out] {
	return Then(b, transduce.PartitionAll[Out](n))
}

// PartitionBy appends a stage that groups runs of elements with equal keys.
func PartitionBy[In, Out any, K comparable](b *Builder[In, Out], key func(Out) K) *Builder[In, []Out] {
	return Then(b, transduce.PartitionBy(key))
}

// Dedupe appends a stage that drops elements equal to the one before.
func Dedupe[In any, Out comparable](b *Builder[In, Out]) *Builder[In, Out] {
	return b.Compose(transduce.Dedupe[Out]())
}
