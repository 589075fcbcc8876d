package chain

import (
	"cmp"

	"github.com/jake-scott/go-transduce"
)

func run[T, A, R any](c *Chain[T], t transduce.Transformer[A, R, T]) (R, error) {
	defer c.release()

	res, err := transduce.Drive(c.Build(transduce.Erase(t)), c.opts...)
	r, _ := res.(R)
	return r, err
}

// Reduce runs the chain into the terminal t.
func Reduce[T, A, R any](c *Chain[T], t transduce.Transformer[A, R, T]) (R, error) {
	return run(c, t)
}

// ReduceInit runs the chain into t, starting from init instead of
// t.Init().
func ReduceInit[T, A, R any](c *Chain[T], t transduce.Transformer[A, R, T], init A) (R, error) {
	defer c.release()

	res, err := transduce.DriveInit(c.Build(transduce.Erase(t)), init, c.opts...)
	r, _ := res.(R)
	return r, err
}

// Fold runs the chain through a plain two-argument reducer.
func Fold[T, A any](c *Chain[T], f transduce.ReduceFunc[A, T], init A) (A, error) {
	return run(c, transduce.Fold(f, init))
}

// ToSlice collects the outputs.
func (c *Chain[T]) ToSlice() ([]T, error) {
	return run(c, transduce.CollectCap[T](c.hint))
}

// Count returns the number of outputs.
func (c *Chain[T]) Count() (int, error) {
	return run(c, transduce.Count[T]())
}

// First returns the first output.  No source element after the one that
// produced it is read.
func (c *Chain[T]) First() (T, bool, error) {
	m, err := run(c, transduce.First[T]())
	return m.Value, m.Valid, err
}

// Last returns the final output.
func (c *Chain[T]) Last() (T, bool, error) {
	m, err := run(c, transduce.Last[T]())
	return m.Value, m.Valid, err
}

// Find returns the first output for which f holds.
func (c *Chain[T]) Find(f transduce.FilterFunc[T]) (T, bool, error) {
	m, err := run(c, transduce.Attach(transduce.Filter(f), transduce.First[T]()))
	return m.Value, m.Valid, err
}

// ForEach calls f for each output.
func (c *Chain[T]) ForEach(f func(T)) error {
	_, err := run(c, transduce.ForEach(f))
	return err
}

// IsEmpty reports whether the chain produces no output.
func (c *Chain[T]) IsEmpty() (bool, error) {
	return run(c, transduce.IsEmpty[T]())
}

// Some reports whether f holds for some output.
func (c *Chain[T]) Some(f transduce.FilterFunc[T]) (bool, error) {
	return run(c, transduce.Some(f))
}

// Every reports whether f holds for every output.
func (c *Chain[T]) Every(f transduce.FilterFunc[T]) (bool, error) {
	return run(c, transduce.Every(f))
}

// Join formats the outputs with fmt.Sprint, separated by sep.
func (c *Chain[T]) Join(sep string) (string, error) {
	return run(c, transduce.Join[T](sep))
}

// Iterator returns a lazy iterator over the outputs.
func (c *Chain[T]) Iterator() *transduce.LazyIterator[T] {
	return transduce.NewLazy(c.Build, c.opts...)
}

// ToSet collects the distinct outputs.
func ToSet[T comparable](c *Chain[T]) (map[T]struct{}, error) {
	return run(c, transduce.ToSet[T]())
}

// ToMap builds a map from key(item) to val(item); later outputs win.
func ToMap[T any, K comparable, V any](c *Chain[T], key func(T) K, val func(T) V) (map[K]V, error) {
	return run(c, transduce.ToMap(key, val))
}

// GroupBy collects the outputs into slices by key.
func GroupBy[T any, K comparable](c *Chain[T], key func(T) K) (map[K][]T, error) {
	return run(c, transduce.GroupByCollect(key))
}

// GroupByReduce reduces the outputs of each key with a fresh terminal
// from sub.
func GroupByReduce[T any, K comparable, A, R any](c *Chain[T], key func(T) K, sub func() transduce.Transformer[A, R, T]) (map[K]R, error) {
	return run(c, transduce.GroupBy(key, sub))
}

// CountBy counts the outputs per key.
func CountBy[T any, K comparable](c *Chain[T], key func(T) K) (map[K]int, error) {
	return run(c, transduce.CountBy(key))
}

// Sum adds the outputs.
func Sum[N transduce.Number](c *Chain[N]) (N, error) {
	return run(c, transduce.Sum[N]())
}

// Average returns the mean of the outputs; ok is false for no output.
func Average[N transduce.Number](c *Chain[N]) (avg float64, ok bool, err error) {
	m, err := run(c, transduce.Average[N]())
	return m.Value, m.Valid, err
}

// Min returns the smallest output; ok is false for no output.
func Min[T cmp.Ordered](c *Chain[T]) (T, bool, error) {
	m, err := run(c, transduce.Min[T]())
	return m.Value, m.Valid, err
}

// Max returns the largest output; ok is false for no output.
func Max[T cmp.Ordered](c *Chain[T]) (T, bool, error) {
	m, err := run(c, transduce.Max[T]())
	return m.Value, m.Valid, err
}
