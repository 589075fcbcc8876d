package transduce

import (
	"context"
	"iter"
)

// LazyState is the state of a LazyIterator.
type LazyState int

const (
	// NeedsPull means the backlog is empty and the next call to Next will
	// pull one element from the source
	NeedsPull LazyState = iota

	// HasBacklog means outputs produced by an earlier pull are waiting
	HasBacklog

	// Terminated means the source is exhausted, failed, or a stage stopped
	// the run.  Outputs already in the backlog are still returned.
	Terminated
)

func (s LazyState) String() string {
	switch s {
	default:
		return "unknown"
	case NeedsPull:
		return "NeedsPull"
	case HasBacklog:
		return "HasBacklog"
	case Terminated:
		return "Terminated"
	}
}

// LazyIterator exposes a push-driven pipeline as a pull-based Iterator.
// Each call to Next performs at most one source pull's worth of work, so
// consuming k outputs reads no more source elements than are needed to
// produce them.
//
// The pipeline is built once; its stages keep their state across pulls.
// Every pull is stepped into a fresh, empty batch and the produced outputs
// (zero, one or many) are queued.  When the source is exhausted or a stage
// stops the run, the pipeline's Result is called once so that buffered
// stages flush their trailing groups into the backlog.
type LazyIterator[T any] struct {
	p          Pipeline
	backlog    []T
	item       T
	terminated bool
	err        error
	t          Tracer
}

type lazyCollect[T any] struct{}

func (lazyCollect[T]) Init() any { return []T(nil) }
func (lazyCollect[T]) Step(acc any, item T) Reduced[any] {
	return Continue[any](append(unbox[[]T](acc), item))
}
func (lazyCollect[T]) Result(acc any) any { return acc }

// NewLazy returns a LazyIterator over the pipeline produced by bind,
// which attaches a batch collector to the pipeline's stage chain.
func NewLazy[T any](bind func(Reducer[T]) Pipeline, opts ...Option) *LazyIterator[T] {
	o := processOptions(opts...)
	return &LazyIterator[T]{
		p: bind(lazyCollect[T]{}),
		t: o.newTracer("lazy"),
	}
}

// Lazy returns a LazyIterator that drives src through xf on demand.
func Lazy[In, Out any](src Iterator[In], xf Transducer[In, Out], opts ...Option) *LazyIterator[Out] {
	return NewLazy(func(r Reducer[Out]) Pipeline {
		return Bind(src, xf(r))
	}, opts...)
}

// State returns the current state of the iterator.
func (l *LazyIterator[T]) State() LazyState {
	switch {
	case len(l.backlog) > 0:
		return HasBacklog
	case l.terminated:
		return Terminated
	default:
		return NeedsPull
	}
}

// Next advances to the next output, pulling from the source only when the
// backlog is empty.  It returns false once the run is terminated and the
// backlog is drained, or if the source failed (see Error).
func (l *LazyIterator[T]) Next(ctx context.Context) bool {
	for {
		switch l.State() {
		case HasBacklog:
			l.item = l.backlog[0]
			l.backlog = l.backlog[1:]
			return true

		case Terminated:
			var zero T
			l.item = zero
			return false

		case NeedsPull:
			l.pull(ctx)
		}
	}
}

func (l *LazyIterator[T]) pull(ctx context.Context) {
	r, ok := l.p.Pull(ctx, []T(nil))
	if !ok {
		l.terminated = true
		if err := l.p.Error(); err != nil {
			l.t.Msg("source error after %d pulls: %s", l.p.Pulled(), err)
			l.err = &SourceError{Pulled: l.p.Pulled(), Err: err}
			l.t.End()
			return
		}
		l.t.Msg("source exhausted after %d pulls", l.p.Pulled())
		l.backlog = unbox[[]T](finish(l.t, l.p, []T(nil)))
		l.t.End()
		return
	}

	batch := unbox[[]T](r.Unreduced())
	if r.IsReduced() {
		l.t.Msg("short-circuit after %d pulls", l.p.Pulled())
		l.terminated = true
		batch = unbox[[]T](finish(l.t, l.p, batch))
		l.t.End()
	}
	l.backlog = batch
}

// Get returns the output produced by the last successful call to Next, or
// the zero value of T.
func (l *LazyIterator[T]) Get() T {
	return l.item
}

// Error returns a *SourceError if the source failed.
func (l *LazyIterator[T]) Error() error {
	return l.err
}

// All returns a single-use iterator over the remaining outputs, for use
// with range.  Check Error after the loop.
func (l *LazyIterator[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for l.Next(ctx) {
			if !yield(l.Get()) {
				return
			}
		}
	}
}
