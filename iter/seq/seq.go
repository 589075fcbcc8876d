// Package seq adapts Go range-over-func sequences, and unbounded numeric
// ranges, to pull sources.
package seq

import (
	"context"
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator pulls from an iter.Seq.  Because the sequence is suspended
// between pulls, an Iterator that is not read to the end must be stopped
// with Stop to release it.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()
	item T
	err  error
}

// New returns an Iterator over s.
func New[T any](s iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(s)
	return &Iterator[T]{next: next, stop: stop}
}

// Next pulls the next value from the sequence.  It returns false when the
// sequence ends or the context is cancelled; in both cases the sequence is
// stopped.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.stop()
		return false
	default:
	}

	v, ok := i.next()
	if !ok {
		var zero T
		i.item = zero
		return false
	}
	i.item = v
	return true
}

// Get returns the value read by the last successful call to Next.
func (i *Iterator[T]) Get() T {
	return i.item
}

// Error returns the context's error if the context was cancelled.
func (i *Iterator[T]) Error() error {
	return i.err
}

// Stop releases the underlying sequence.  It is safe to call more than
// once.
func (i *Iterator[T]) Stop() {
	i.stop()
}

// RangeIterator yields consecutive integers.
type RangeIterator[N constraints.Integer] struct {
	next    N
	end     N
	bounded bool
	item    N
	err     error
}

// Range returns an Iterator over start, start+1, ... end-1.
func Range[N constraints.Integer](start, end N) *RangeIterator[N] {
	return &RangeIterator[N]{next: start, end: end, bounded: true}
}

// From returns an unbounded Iterator over start, start+1, ...
func From[N constraints.Integer](start N) *RangeIterator[N] {
	return &RangeIterator[N]{next: start}
}

// Size returns the number of integers remaining in a bounded range,
// implementing transduce.Size.  Unbounded ranges report zero.
func (r *RangeIterator[N]) Size() uint {
	if !r.bounded || r.end <= r.next {
		return 0
	}
	return uint(r.end - r.next)
}

// Next advances to the next integer.
func (r *RangeIterator[N]) Next(ctx context.Context) bool {
	if r.bounded && r.next >= r.end {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.item = r.next
	r.next++
	return true
}

// Get returns the integer read by the last call to Next.
func (r *RangeIterator[N]) Get() N {
	return r.item
}

// Error returns the context's error if the context was cancelled.
func (r *RangeIterator[N]) Error() error {
	return r.err
}
