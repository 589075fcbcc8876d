// Package transduce provides composable, single-pass transformation
// pipelines over sequences.
//
// A pipeline is a chain of stages (Map, Filter, Take, PartitionAll, ...)
// expressed as Transducers.  Applied to a terminal Transformer (Collect,
// Count, First, ...) a Transducer yields one combined Transformer which the
// engine drives over a source Iterator, one element at a time and without
// intermediate buffering between stages.  Any stage may stop the run early
// by returning a reduced step result; no more source elements are pulled
// than are needed to produce the result.
//
// Lazy exposes the same push-driven pipeline as a pull-based Iterator.
//
// Stage instances carry private state.  They are created afresh each time a
// Transducer is applied and belong to exactly one run.
package transduce

// downstream holds the wrapped reducer of a stage and forwards Init and
// Result to it unchanged.
type downstream[T any] struct {
	next Reducer[T]
}

func (d downstream[T]) Init() any {
	return d.next.Init()
}

func (d downstream[T]) Result(acc any) any {
	return d.next.Result(acc)
}
