package transduce

import (
	"iter"
	"slices"
)

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T, M any] func(T) M

type mapStage[T, M any] struct {
	downstream[M]
	f MapFunc[T, M]
}

func (s *mapStage[T, M]) Step(acc any, item T) Reduced[any] {
	return s.next.Step(acc, s.f(item))
}

// Map returns a transducer that forwards f(item) for each input.
func Map[T, M any](f MapFunc[T, M]) Transducer[T, M] {
	return func(r Reducer[M]) Reducer[T] {
		return &mapStage[T, M]{downstream: downstream[M]{r}, f: f}
	}
}

type mapIndexedStage[T, M any] struct {
	downstream[M]
	f   func(int, T) M
	idx int
}

func (s *mapIndexedStage[T, M]) Step(acc any, item T) Reduced[any] {
	i := s.idx
	s.idx++
	return s.next.Step(acc, s.f(i, item))
}

// MapIndexed is Map with the zero based index of the input passed to f.
func MapIndexed[T, M any](f func(int, T) M) Transducer[T, M] {
	return func(r Reducer[M]) Reducer[T] {
		return &mapIndexedStage[T, M]{downstream: downstream[M]{r}, f: f}
	}
}

type keepStage[T, M any] struct {
	downstream[M]
	f func(T) (M, bool)
}

func (s *keepStage[T, M]) Step(acc any, item T) Reduced[any] {
	if m, ok := s.f(item); ok {
		return s.next.Step(acc, m)
	}
	return Continue(acc)
}

// Keep maps each input through f and forwards the result only when f
// reports ok.
func Keep[T, M any](f func(T) (M, bool)) Transducer[T, M] {
	return func(r Reducer[M]) Reducer[T] {
		return &keepStage[T, M]{downstream: downstream[M]{r}, f: f}
	}
}

type flatMapStage[T, M any] struct {
	downstream[M]
	f func(T) iter.Seq[M]
}

// Step runs a nested reduction of the sub-sequence into the downstream.
// Ranging stops as soon as the downstream reduces, leaving the rest of the
// sub-sequence unconsumed.
func (s *flatMapStage[T, M]) Step(acc any, item T) Reduced[any] {
	for m := range s.f(item) {
		r := s.next.Step(acc, m)
		if r.IsReduced() {
			return r
		}
		acc = r.Unreduced()
	}
	return Continue(acc)
}

// FlatMap maps each input to a sub-sequence and forwards every element of
// it individually.
func FlatMap[T, M any](f func(T) iter.Seq[M]) Transducer[T, M] {
	return func(r Reducer[M]) Reducer[T] {
		return &flatMapStage[T, M]{downstream: downstream[M]{r}, f: f}
	}
}

// FlatMapSlice is FlatMap for functions that return slices.
func FlatMapSlice[T, M any](f func(T) []M) Transducer[T, M] {
	return FlatMap(func(item T) iter.Seq[M] {
		return slices.Values(f(item))
	})
}
