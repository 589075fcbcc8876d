package transduce

type takeStage[T any] struct {
	downstream[T]
	n     int
	taken int
}

// Step reduces on the n-th forward, so the engine never pulls the element
// after it.
func (s *takeStage[T]) Step(acc any, item T) Reduced[any] {
	if s.taken >= s.n {
		return Stop(acc)
	}
	s.taken++
	r := s.next.Step(acc, item)
	if s.taken >= s.n {
		return r.EnsureReduced()
	}
	return r
}

// Take forwards at most n inputs and then stops the run.  With n <= 0 the
// first step stops the run without forwarding anything.
func Take[T any](n int) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &takeStage[T]{downstream: downstream[T]{r}, n: n}
	}
}

type takeWhileStage[T any] struct {
	downstream[T]
	f FilterFunc[T]
}

func (s *takeWhileStage[T]) Step(acc any, item T) Reduced[any] {
	if !s.f(item) {
		return Stop(acc)
	}
	return s.next.Step(acc, item)
}

// TakeWhile forwards inputs while f holds.  The first input for which f
// fails stops the run and is not forwarded.
func TakeWhile[T any](f FilterFunc[T]) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &takeWhileStage[T]{downstream: downstream[T]{r}, f: f}
	}
}

type dropStage[T any] struct {
	downstream[T]
	n       int
	dropped int
}

func (s *dropStage[T]) Step(acc any, item T) Reduced[any] {
	if s.dropped < s.n {
		s.dropped++
		return Continue(acc)
	}
	return s.next.Step(acc, item)
}

// Drop discards the first n inputs and forwards the rest.  A negative n
// behaves as zero.
func Drop[T any](n int) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &dropStage[T]{downstream: downstream[T]{r}, n: n}
	}
}

type dropWhileStage[T any] struct {
	downstream[T]
	f        FilterFunc[T]
	dropping bool
}

func (s *dropWhileStage[T]) Step(acc any, item T) Reduced[any] {
	if s.dropping {
		if s.f(item) {
			return Continue(acc)
		}
		s.dropping = false
	}
	return s.next.Step(acc, item)
}

// DropWhile discards inputs while f holds.  Once f fails, that input and
// every later one is forwarded without consulting f again.
func DropWhile[T any](f FilterFunc[T]) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &dropWhileStage[T]{downstream: downstream[T]{r}, f: f, dropping: true}
	}
}
