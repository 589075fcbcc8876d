package transduce

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

type filterStage[T any] struct {
	downstream[T]
	f FilterFunc[T]
}

func (s *filterStage[T]) Step(acc any, item T) Reduced[any] {
	if s.f(item) {
		return s.next.Step(acc, item)
	}
	return Continue(acc)
}

// Filter returns a transducer that forwards the inputs for which f is
// true.
func Filter[T any](f FilterFunc[T]) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &filterStage[T]{downstream: downstream[T]{r}, f: f}
	}
}

// Remove returns a transducer that forwards the inputs for which f is
// false.
func Remove[T any](f FilterFunc[T]) Transducer[T, T] {
	return Filter(func(item T) bool {
		return !f(item)
	})
}

type filterIndexedStage[T any] struct {
	downstream[T]
	f   func(int, T) bool
	idx int
}

func (s *filterIndexedStage[T]) Step(acc any, item T) Reduced[any] {
	i := s.idx
	s.idx++
	if s.f(i, item) {
		return s.next.Step(acc, item)
	}
	return Continue(acc)
}

// FilterIndexed is Filter with the zero based index of the input passed
// to f.  Every input is counted, whether or not it is forwarded.
func FilterIndexed[T any](f func(int, T) bool) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &filterIndexedStage[T]{downstream: downstream[T]{r}, f: f}
	}
}

// TakeNth forwards the inputs at index 0, n, 2n, ...  It panics with an
// *ArgumentError if n is not positive.
func TakeNth[T any](n int) Transducer[T, T] {
	mustBePositive("TakeNth", "n", n)
	return FilterIndexed(func(i int, _ T) bool {
		return i%n == 0
	})
}

type dedupeStage[T any] struct {
	downstream[T]
	eq      func(a, b T) bool
	prev    T
	hasPrev bool
}

func (s *dedupeStage[T]) Step(acc any, item T) Reduced[any] {
	if s.hasPrev && s.eq(s.prev, item) {
		return Continue(acc)
	}
	s.prev, s.hasPrev = item, true
	return s.next.Step(acc, item)
}

// Dedupe drops inputs equal to the immediately preceding forwarded input.
// The first input is always forwarded.
func Dedupe[T comparable]() Transducer[T, T] {
	return DedupeFunc(func(a, b T) bool {
		return a == b
	})
}

// DedupeFunc is Dedupe using eq to compare consecutive inputs.
func DedupeFunc[T any](eq func(a, b T) bool) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &dedupeStage[T]{downstream: downstream[T]{r}, eq: eq}
	}
}
