package transduce

// Reduced is the value returned by a Step: the new accumulator, and
// whether the step asked for iteration to stop.  Once a stage has produced
// a reduced value every enclosing stage must pass it up unchanged until the
// engine unwraps it.
type Reduced[A any] struct {
	acc     A
	reduced bool
}

// Continue returns acc as an ordinary step result.
func Continue[A any](acc A) Reduced[A] {
	return Reduced[A]{acc: acc}
}

// Stop returns acc marked as reduced, requesting early termination.
func Stop[A any](acc A) Reduced[A] {
	return Reduced[A]{acc: acc, reduced: true}
}

// IsReduced reports whether the step requested early termination.
func (r Reduced[A]) IsReduced() bool {
	return r.reduced
}

// Unreduced strips the reduced marker and returns the accumulator.
func (r Reduced[A]) Unreduced() A {
	return r.acc
}

// EnsureReduced returns r marked as reduced.  It is a no-op for a value
// that is already reduced.
func (r Reduced[A]) EnsureReduced() Reduced[A] {
	r.reduced = true
	return r
}

// Transformer is the three-operation protocol that every pipeline stage
// and every terminal reducer implements.
//
// A Transformer instance may carry private state and is owned by exactly
// one reduction.  Reusing an instance across two reductions is a caller
// error and is not detected.
type Transformer[A, R, T any] interface {
	// Init returns the initial accumulator.  It is not called when the
	// caller supplies an initial value.
	Init() A

	// Step consumes one input.
	Step(acc A, item T) Reduced[A]

	// Result converts the final, unwrapped accumulator into the result.
	// It is called exactly once, after iteration stops.
	Result(acc A) R
}

// Reducer is a Transformer whose accumulator and result are opaque.
// Stages wrap Reducers, so a stage chain can be built once and attached
// to any terminal.  Any Transformer[any, any, T] is a Reducer[T].
type Reducer[T any] interface {
	Init() any
	Step(acc any, item T) Reduced[any]
	Result(acc any) any
}

// Transducer turns a downstream Reducer of Out into an upstream Reducer of
// In.  Calling a Transducer constructs fresh stage instances.
type Transducer[In, Out any] func(Reducer[Out]) Reducer[In]

// Identity returns a transducer that forwards every input unchanged.
func Identity[T any]() Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		return r
	}
}

// Compose returns a transducer that applies a then b: elements reach a
// first.
func Compose[A, B, C any](a Transducer[A, B], b Transducer[B, C]) Transducer[A, C] {
	return func(r Reducer[C]) Reducer[A] {
		return a(b(r))
	}
}

// Compose3 is Compose for three transducers.
func Compose3[A, B, C, D any](a Transducer[A, B], b Transducer[B, C], c Transducer[C, D]) Transducer[A, D] {
	return Compose(Compose(a, b), c)
}

// Chain composes any number of transducers over the same element type,
// the first of which sees the raw input first.
func Chain[T any](xs ...Transducer[T, T]) Transducer[T, T] {
	return func(r Reducer[T]) Reducer[T] {
		for i := len(xs) - 1; i >= 0; i-- {
			r = xs[i](r)
		}
		return r
	}
}

// erased adapts a typed Transformer to a Reducer.
type erased[A, R, T any] struct {
	t Transformer[A, R, T]
}

// Erase hides the accumulator and result types of t so that it can be
// placed at the end of a stage chain.
func Erase[A, R, T any](t Transformer[A, R, T]) Reducer[T] {
	if r, ok := t.(Reducer[T]); ok {
		return r
	}
	return erased[A, R, T]{t: t}
}

func (e erased[A, R, T]) Init() any {
	return e.t.Init()
}

func (e erased[A, R, T]) Step(acc any, item T) Reduced[any] {
	r := e.t.Step(unbox[A](acc), item)
	return Reduced[any]{acc: r.acc, reduced: r.reduced}
}

func (e erased[A, R, T]) Result(acc any) any {
	return e.t.Result(unbox[A](acc))
}

// attached is a typed view over a transducer applied to a terminal.
type attached[A, R, T any] struct {
	r Reducer[T]
}

// Attach applies xf to the terminal t and returns the result as a typed
// Transformer, so a complete pipeline can be used anywhere a terminal is
// expected (for example as a GroupBy sub-reduction).
//
// The stage instances are created here, so the returned Transformer must
// be used for a single run only.
func Attach[In, Out, A, R any](xf Transducer[In, Out], t Transformer[A, R, Out]) Transformer[A, R, In] {
	return attached[A, R, In]{r: xf(Erase(t))}
}

func (a attached[A, R, T]) Init() A {
	return unbox[A](a.r.Init())
}

func (a attached[A, R, T]) Step(acc A, item T) Reduced[A] {
	r := a.r.Step(acc, item)
	return Reduced[A]{acc: unbox[A](r.acc), reduced: r.reduced}
}

func (a attached[A, R, T]) Result(acc A) R {
	return unbox[R](a.r.Result(acc))
}

// unbox returns v as a T, or the zero T for a nil interface value.
func unbox[T any](v any) T {
	t, _ := v.(T)
	return t
}
