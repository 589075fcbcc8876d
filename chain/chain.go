// Package chain provides a fluent builder over a bound source.
//
// A Chain accumulates stages and runs them with a terminal method:
//
//	evens, err := chain.FromSlice([]int{1, 2, 3, 4, 5}).
//		Filter(isEven).
//		Take(2).
//		ToSlice()
//
// Stages that keep the element type are methods; they update the chain in
// place and return it.  Stages that change the element type (Map,
// PartitionAll, ...) are package functions, due to limitations of Go's
// generic syntax, and return a new Chain.
//
// A Chain is consumed by the first terminal call: the source is read
// destructively.
package chain

import (
	"iter"

	"github.com/jake-scott/go-transduce"
	"github.com/jake-scott/go-transduce/iter/channel"
	"github.com/jake-scott/go-transduce/iter/runes"
	"github.com/jake-scott/go-transduce/iter/scanner"
	"github.com/jake-scott/go-transduce/iter/seq"
	"github.com/jake-scott/go-transduce/iter/slice"
	"golang.org/x/exp/constraints"
)

// Chain is an ordered accumulation of stages bound to a source.
type Chain[T any] struct {
	bind    func(transduce.Reducer[T]) transduce.Pipeline
	opts    []transduce.Option
	hint    uint
	release func()
}

// From starts a chain reading src.
func From[T any](src transduce.Iterator[T], opts ...transduce.Option) *Chain[T] {
	return &Chain[T]{
		bind: func(r transduce.Reducer[T]) transduce.Pipeline {
			return transduce.Bind(src, r)
		},
		opts:    opts,
		hint:    transduce.SizeOf(src, transduce.ResolveSizeHint(opts...)),
		release: func() {},
	}
}

// FromSlice starts a chain reading the elements of s.
func FromSlice[T any](s []T, opts ...transduce.Option) *Chain[T] {
	return From[T](slice.New(s), opts...)
}

// FromString starts a chain reading the characters of s.
func FromString(s string, opts ...transduce.Option) *Chain[rune] {
	return From[rune](runes.New(s), opts...)
}

// FromChannel starts a chain reading ch until it is closed.
func FromChannel[T any](ch <-chan T, opts ...transduce.Option) *Chain[T] {
	return From[T](channel.New(ch), opts...)
}

// FromScanner starts a chain reading the tokens of s.
func FromScanner(s scanner.Scanner, opts ...transduce.Option) *Chain[string] {
	return From[string](scanner.New(s), opts...)
}

// FromSeq starts a chain reading s.  Terminal methods stop the sequence
// when they return; an abandoned Iterator leaves it suspended.
func FromSeq[T any](s iter.Seq[T], opts ...transduce.Option) *Chain[T] {
	src := seq.New(s)
	c := From[T](src, opts...)
	c.release = src.Stop
	return c
}

// Range starts a chain over start, start+1, ... end-1.
func Range[N constraints.Integer](start, end N, opts ...transduce.Option) *Chain[N] {
	return From[N](seq.Range(start, end), opts...)
}

// Naturals starts an unbounded chain over start, start+1, ...  It must be
// limited by a stage such as Take or TakeWhile, or by a short-circuiting
// terminal.
func Naturals[N constraints.Integer](start N, opts ...transduce.Option) *Chain[N] {
	return From[N](seq.From(start), opts...)
}

// Compose appends the stage x.
func (c *Chain[T]) Compose(x transduce.Transducer[T, T]) *Chain[T] {
	prev := c.bind
	c.bind = func(r transduce.Reducer[T]) transduce.Pipeline {
		return prev(x(r))
	}
	return c
}

// Then appends the stage x, which changes the element type.
func Then[T, U any](c *Chain[T], x transduce.Transducer[T, U]) *Chain[U] {
	prev := c.bind
	return &Chain[U]{
		bind: func(r transduce.Reducer[U]) transduce.Pipeline {
			return prev(x(r))
		},
		opts:    c.opts,
		hint:    c.hint,
		release: c.release,
	}
}

// Build attaches the terminal r to the accumulated stages, the first of
// which sees the source elements first.  Each call builds fresh stage
// instances.
func (c *Chain[T]) Build(r transduce.Reducer[T]) transduce.Pipeline {
	return c.bind(r)
}

// Filter appends a stage that forwards the elements for which f is true.
func (c *Chain[T]) Filter(f transduce.FilterFunc[T]) *Chain[T] {
	return c.Compose(transduce.Filter(f))
}

// FilterIndexed is Filter with the zero based index of each element
// passed to f.
func (c *Chain[T]) FilterIndexed(f func(int, T) bool) *Chain[T] {
	return c.Compose(transduce.FilterIndexed(f))
}

// Remove appends a stage that drops the elements for which f is true.
func (c *Chain[T]) Remove(f transduce.FilterFunc[T]) *Chain[T] {
	return c.Compose(transduce.Remove(f))
}

// Drop appends a stage that discards the first n elements.
func (c *Chain[T]) Drop(n int) *Chain[T] {
	return c.Compose(transduce.Drop[T](n))
}

// DropWhile appends a stage that discards elements until f first fails.
func (c *Chain[T]) DropWhile(f transduce.FilterFunc[T]) *Chain[T] {
	return c.Compose(transduce.DropWhile(f))
}

// Take appends a stage that forwards at most n elements and then stops
// the run.
func (c *Chain[T]) Take(n int) *Chain[T] {
	return c.Compose(transduce.Take[T](n))
}

// TakeWhile appends a stage that forwards elements until f first fails,
// then stops the run.
func (c *Chain[T]) TakeWhile(f transduce.FilterFunc[T]) *Chain[T] {
	return c.Compose(transduce.TakeWhile(f))
}

// TakeNth appends a stage that forwards the elements at index 0, n, 2n,
// ...  It panics with a *transduce.ArgumentError if n is not positive.
func (c *Chain[T]) TakeNth(n int) *Chain[T] {
	return c.Compose(transduce.TakeNth[T](n))
}

// Interpose appends a stage that forwards sep between consecutive elements.
func (c *Chain[T]) Interpose(sep T) *Chain[T] {
	return c.Compose(transduce.Interpose(sep))
}

// DedupeFunc appends a stage that drops elements eq to the one before.
func (c *Chain[T]) DedupeFunc(eq func(a, b T) bool) *Chain[T] {
	return c.Compose(transduce.DedupeFunc(eq))
}

// Map appends a stage that forwards f(item) for each element.
func Map[T, U any](c *Chain[T], f transduce.MapFunc[T, U]) *Chain[U] {
	return Then(c, transduce.Map(f))
}

// MapIndexed is Map with the zero based index of each element passed
// to f.
func MapIndexed[T, U any](c *Chain[T], f func(int, T) U) *Chain[U] {
	return Then(c, transduce.MapIndexed(f))
}

// Keep appends a stage that forwards f(item) only when f reports ok.
func Keep[T, U any](c *Chain[T], f func(T) (U, bool)) *Chain[U] {
	return Then(c, transduce.Keep(f))
}

// FlatMap appends a stage that forwards every element of the sequence f
// returns.
func FlatMap[T, U any](c *Chain[T], f func(T) iter.Seq[U]) *Chain[U] {
	return Then(c, transduce.FlatMap(f))
}

// FlatMapSlice is FlatMap for functions that return slices.
func FlatMapSlice[T, U any](c *Chain[T], f func(T) []U) *Chain[U] {
	return Then(c, transduce.FlatMapSlice(f))
}

// PartitionAll appends a stage that groups elements into slices of n.  It
// panics with a *transduce.ArgumentError if n is not positive.
func PartitionAll[T any](c *Chain[T], n int) *Chain[[]T] {
	return Then(c, transduce.PartitionAll[T](n))
}

// PartitionBy appends a stage that groups runs of elements with equal keys.
func PartitionBy[T any, K comparable](c *Chain[T], key func(T) K) *Chain[[]T] {
	return Then(c, transduce.PartitionBy(key))
}

// Dedupe is a package function because it needs comparable elements.
func Dedupe[T comparable](c *Chain[T]) *Chain[T] {
	return c.Compose(transduce.Dedupe[T]())
}
