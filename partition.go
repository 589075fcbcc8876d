package transduce

type partitionAllStage[T any] struct {
	downstream[[]T]
	n   int
	buf []T
}

func (s *partitionAllStage[T]) Step(acc any, item T) Reduced[any] {
	if s.buf == nil {
		s.buf = make([]T, 0, s.n)
	}
	s.buf = append(s.buf, item)
	if len(s.buf) < s.n {
		return Continue(acc)
	}
	group := s.buf
	s.buf = nil
	return s.next.Step(acc, group)
}

// Result flushes a trailing partial group, even if the run was stopped by
// another stage.
func (s *partitionAllStage[T]) Result(acc any) any {
	if len(s.buf) > 0 {
		group := s.buf
		s.buf = nil
		acc = s.next.Step(acc, group).Unreduced()
	}
	return s.next.Result(acc)
}

// PartitionAll groups inputs into slices of n.  The last group may be
// shorter.  It panics with an *ArgumentError if n is not positive.
func PartitionAll[T any](n int) Transducer[T, []T] {
	mustBePositive("PartitionAll", "n", n)
	return func(r Reducer[[]T]) Reducer[T] {
		return &partitionAllStage[T]{downstream: downstream[[]T]{r}, n: n}
	}
}

type partitionByStage[T any, K comparable] struct {
	downstream[[]T]
	key     func(T) K
	buf     []T
	lastKey K
}

func (s *partitionByStage[T, K]) Step(acc any, item T) Reduced[any] {
	k := s.key(item)
	if len(s.buf) == 0 || k == s.lastKey {
		s.buf = append(s.buf, item)
		s.lastKey = k
		return Continue(acc)
	}

	group := s.buf
	s.buf = nil
	r := s.next.Step(acc, group)
	if r.IsReduced() {
		// the downstream is finished; the triggering item must not be
		// flushed into it later
		return r
	}
	s.buf = append(s.buf, item)
	s.lastKey = k
	return r
}

func (s *partitionByStage[T, K]) Result(acc any) any {
	if len(s.buf) > 0 {
		group := s.buf
		s.buf = nil
		acc = s.next.Step(acc, group).Unreduced()
	}
	return s.next.Result(acc)
}

// PartitionBy groups runs of consecutive inputs for which key returns
// equal values.  A group is forwarded when the key changes, and the
// trailing group is flushed when the run finishes.
func PartitionBy[T any, K comparable](key func(T) K) Transducer[T, []T] {
	return func(r Reducer[[]T]) Reducer[T] {
		return &partitionByStage[T, K]{downstream: downstream[[]T]{r}, key: key}
	}
}
