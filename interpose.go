package transduce

type interposeStage[T any] struct {
	downstream[T]
	sep     T
	started bool
}

func (s *interposeStage[T]) Step(acc any, item T) Reduced[any] {
	if s.started {
		r := s.next.Step(acc, s.sep)
		if r.IsReduced() {
			return r
		}
		acc = r.Unreduced()
	}
	s.started = true
	return s.next.Step(acc, item)
}

// Interpose forwards sep between consecutive inputs.  No separator is
// written before the first or after the last input.  If the downstream
// stops on a separator, the input paired with it is not forwarded.
func Interpose[T any](sep T) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return &interposeStage[T]{downstream: downstream[T]{r}, sep: sep}
	}
}
