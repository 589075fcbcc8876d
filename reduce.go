package transduce

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the constraint satisfied by the element types of the numeric
// terminals.
type Number interface {
	constraints.Integer | constraints.Float
}

// Maybe holds a value that may be absent, for terminals such as First
// and Min whose result is undefined on empty input.
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Just returns a valid Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.Value, m.Valid
}

// ReduceFunc is a plain two-argument reducer.
type ReduceFunc[A, T any] func(A, T) A

type fold[A, T any] struct {
	f    ReduceFunc[A, T]
	init A
}

func (t fold[A, T]) Init() A                       { return t.init }
func (t fold[A, T]) Step(acc A, item T) Reduced[A] { return Continue(t.f(acc, item)) }
func (t fold[A, T]) Result(acc A) A                { return acc }

// Fold wraps a plain reducer function as a Transformer whose Init returns
// init and whose Result is the identity.
func Fold[A, T any](f ReduceFunc[A, T], init A) Transformer[A, A, T] {
	return fold[A, T]{f: f, init: init}
}

type collect[T any] struct {
	capacity uint
}

func (t collect[T]) Init() []T                         { return make([]T, 0, t.capacity) }
func (t collect[T]) Step(acc []T, item T) Reduced[[]T] { return Continue(append(acc, item)) }
func (t collect[T]) Result(acc []T) []T                { return acc }

// Collect appends every input to a slice.
func Collect[T any]() Transformer[[]T, []T, T] {
	return collect[T]{}
}

// CollectCap is Collect with an initial capacity for the slice.
func CollectCap[T any](capacity uint) Transformer[[]T, []T, T] {
	return collect[T]{capacity: capacity}
}

type count[T any] struct{}

func (count[T]) Init() int                      { return 0 }
func (count[T]) Step(acc int, _ T) Reduced[int] { return Continue(acc + 1) }
func (count[T]) Result(acc int) int             { return acc }

// Count counts the inputs.
func Count[T any]() Transformer[int, int, T] {
	return count[T]{}
}

type first[T any] struct{}

func (first[T]) Init() Maybe[T]                            { return Maybe[T]{} }
func (first[T]) Step(_ Maybe[T], item T) Reduced[Maybe[T]] { return Stop(Just(item)) }
func (first[T]) Result(acc Maybe[T]) Maybe[T]              { return acc }

// First returns the first input and stops the run as soon as it is seen.
func First[T any]() Transformer[Maybe[T], Maybe[T], T] {
	return first[T]{}
}

type last[T any] struct{}

func (last[T]) Init() Maybe[T]                            { return Maybe[T]{} }
func (last[T]) Step(_ Maybe[T], item T) Reduced[Maybe[T]] { return Continue(Just(item)) }
func (last[T]) Result(acc Maybe[T]) Maybe[T]              { return acc }

// Last returns the final input.
func Last[T any]() Transformer[Maybe[T], Maybe[T], T] {
	return last[T]{}
}

type forEach[T any] struct {
	f func(T)
}

func (t forEach[T]) Init() int { return 0 }
func (t forEach[T]) Step(acc int, item T) Reduced[int] {
	t.f(item)
	return Continue(acc + 1)
}
func (t forEach[T]) Result(acc int) int { return acc }

// ForEach calls f for every input.  The result is the number of calls.
func ForEach[T any](f func(T)) Transformer[int, int, T] {
	return forEach[T]{f: f}
}

type isEmpty[T any] struct{}

func (isEmpty[T]) Init() bool                     { return true }
func (isEmpty[T]) Step(_ bool, _ T) Reduced[bool] { return Stop(false) }
func (isEmpty[T]) Result(acc bool) bool           { return acc }

// IsEmpty reports whether there are no inputs, stopping at the first.
func IsEmpty[T any]() Transformer[bool, bool, T] {
	return isEmpty[T]{}
}

type some[T any] struct {
	f FilterFunc[T]
}

func (t some[T]) Init() bool { return false }
func (t some[T]) Step(acc bool, item T) Reduced[bool] {
	if t.f(item) {
		return Stop(true)
	}
	return Continue(acc)
}
func (t some[T]) Result(acc bool) bool { return acc }

// Some reports whether f holds for some input, stopping at the first
// match.
func Some[T any](f FilterFunc[T]) Transformer[bool, bool, T] {
	return some[T]{f: f}
}

type every[T any] struct {
	f FilterFunc[T]
}

func (t every[T]) Init() bool { return true }
func (t every[T]) Step(acc bool, item T) Reduced[bool] {
	if !t.f(item) {
		return Stop(false)
	}
	return Continue(acc)
}
func (t every[T]) Result(acc bool) bool { return acc }

// Every reports whether f holds for every input, stopping at the first
// failure.  It is true for empty input.
func Every[T any](f FilterFunc[T]) Transformer[bool, bool, T] {
	return every[T]{f: f}
}

type join[T any] struct {
	sep string
}

func (t join[T]) Init() []string { return nil }
func (t join[T]) Step(acc []string, item T) Reduced[[]string] {
	return Continue(append(acc, fmt.Sprint(item)))
}
func (t join[T]) Result(acc []string) string { return strings.Join(acc, t.sep) }

// Join formats every input with fmt.Sprint and joins them with sep.
func Join[T any](sep string) Transformer[[]string, string, T] {
	return join[T]{sep: sep}
}

type toSet[T comparable] struct{}

func (toSet[T]) Init() map[T]struct{} { return map[T]struct{}{} }
func (toSet[T]) Step(acc map[T]struct{}, item T) Reduced[map[T]struct{}] {
	acc[item] = struct{}{}
	return Continue(acc)
}
func (toSet[T]) Result(acc map[T]struct{}) map[T]struct{} { return acc }

// ToSet collects the distinct inputs.
func ToSet[T comparable]() Transformer[map[T]struct{}, map[T]struct{}, T] {
	return toSet[T]{}
}

type toMap[T any, K comparable, V any] struct {
	key func(T) K
	val func(T) V
}

func (t toMap[T, K, V]) Init() map[K]V { return map[K]V{} }
func (t toMap[T, K, V]) Step(acc map[K]V, item T) Reduced[map[K]V] {
	acc[t.key(item)] = t.val(item)
	return Continue(acc)
}
func (t toMap[T, K, V]) Result(acc map[K]V) map[K]V { return acc }

// ToMap builds a map from key(item) to val(item).  Later inputs overwrite
// earlier ones with the same key.
func ToMap[T any, K comparable, V any](key func(T) K, val func(T) V) Transformer[map[K]V, map[K]V, T] {
	return toMap[T, K, V]{key: key, val: val}
}

// Group is the in-progress state of one GroupBy sub-reduction.
type Group[A, R, T any] struct {
	t    Transformer[A, R, T]
	acc  A
	done bool
}

// Done reports whether the sub-reduction stopped early.
func (g *Group[A, R, T]) Done() bool {
	return g.done
}

type groupBy[T any, K comparable, A, R any] struct {
	key func(T) K
	sub func() Transformer[A, R, T]
}

func (t groupBy[T, K, A, R]) Init() map[K]*Group[A, R, T] {
	return map[K]*Group[A, R, T]{}
}

func (t groupBy[T, K, A, R]) Step(acc map[K]*Group[A, R, T], item T) Reduced[map[K]*Group[A, R, T]] {
	k := t.key(item)
	g, ok := acc[k]
	if !ok {
		sub := t.sub()
		g = &Group[A, R, T]{t: sub, acc: sub.Init()}
		acc[k] = g
	}
	if !g.done {
		r := g.t.Step(g.acc, item)
		g.acc, g.done = r.Unreduced(), r.IsReduced()
	}
	return Continue(acc)
}

func (t groupBy[T, K, A, R]) Result(acc map[K]*Group[A, R, T]) map[K]R {
	out := make(map[K]R, len(acc))
	for k, g := range acc {
		out[k] = g.t.Result(g.acc)
	}
	return out
}

// GroupBy runs an independent sub-reduction per distinct key(item).  sub
// is called once per key to create a fresh terminal.  A sub-reduction that
// stops early ignores further inputs for its key without stopping the
// others; each is finalized when the grouped result is produced.
func GroupBy[T any, K comparable, A, R any](key func(T) K, sub func() Transformer[A, R, T]) Transformer[map[K]*Group[A, R, T], map[K]R, T] {
	return groupBy[T, K, A, R]{key: key, sub: sub}
}

// GroupByCollect groups inputs into slices by key.
func GroupByCollect[T any, K comparable](key func(T) K) Transformer[map[K]*Group[[]T, []T, T], map[K][]T, T] {
	return GroupBy(key, Collect[T])
}

// CountBy counts inputs per key.
func CountBy[T any, K comparable](key func(T) K) Transformer[map[K]*Group[int, int, T], map[K]int, T] {
	return GroupBy(key, Count[T])
}

type sum[N Number] struct{}

func (sum[N]) Init() N                       { return 0 }
func (sum[N]) Step(acc N, item N) Reduced[N] { return Continue(acc + item) }
func (sum[N]) Result(acc N) N                { return acc }

// Sum adds the inputs.
func Sum[N Number]() Transformer[N, N, N] {
	return sum[N]{}
}

// Mean is the accumulator of Average.
type Mean struct {
	Total float64
	N     int
}

type average[N Number] struct{}

func (average[N]) Init() Mean { return Mean{} }
func (average[N]) Step(acc Mean, item N) Reduced[Mean] {
	return Continue(Mean{Total: acc.Total + float64(item), N: acc.N + 1})
}
func (average[N]) Result(acc Mean) Maybe[float64] {
	if acc.N == 0 {
		return Maybe[float64]{}
	}
	return Just(acc.Total / float64(acc.N))
}

// Average returns the arithmetic mean of the inputs, or an invalid Maybe
// for empty input.
func Average[N Number]() Transformer[Mean, Maybe[float64], N] {
	return average[N]{}
}

type extreme[T any] struct {
	better func(a, b T) bool
}

func (t extreme[T]) Init() Maybe[T] { return Maybe[T]{} }
func (t extreme[T]) Step(acc Maybe[T], item T) Reduced[Maybe[T]] {
	if !acc.Valid || t.better(item, acc.Value) {
		return Continue(Just(item))
	}
	return Continue(acc)
}
func (t extreme[T]) Result(acc Maybe[T]) Maybe[T] { return acc }

// Min returns the smallest input.  Ties keep the earliest.
func Min[T cmp.Ordered]() Transformer[Maybe[T], Maybe[T], T] {
	return MinFunc(cmp.Compare[T])
}

// Max returns the largest input.  Ties keep the earliest.
func Max[T cmp.Ordered]() Transformer[Maybe[T], Maybe[T], T] {
	return MaxFunc(cmp.Compare[T])
}

// MinFunc is Min using compare to order inputs.
func MinFunc[T any](compare func(a, b T) int) Transformer[Maybe[T], Maybe[T], T] {
	return extreme[T]{better: func(a, b T) bool { return compare(a, b) < 0 }}
}

// MaxFunc is Max using compare to order inputs.
func MaxFunc[T any](compare func(a, b T) int) Transformer[Maybe[T], Maybe[T], T] {
	return extreme[T]{better: func(a, b T) bool { return compare(a, b) > 0 }}
}
