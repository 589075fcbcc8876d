package transduce

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Pipeline is a source bound to a complete transformer chain, terminal
// included.  It lets the engine and the lazy iterator drive a chain without
// knowing the type of the source elements.
type Pipeline interface {
	// Init returns the initial accumulator of the attached chain.
	Init() any

	// Pull reads exactly one element from the source and steps it through
	// the chain.  ok is false, and acc is returned untouched, if the source
	// is exhausted or failed.
	Pull(ctx context.Context, acc any) (r Reduced[any], ok bool)

	// Result finalizes the chain.
	Result(acc any) any

	// Error returns the source error, if any.
	Error() error

	// Pulled returns the number of elements read from the source so far.
	Pulled() int
}

type boundPipeline[S any] struct {
	src    Iterator[S]
	r      Reducer[S]
	pulled int
}

// Bind attaches the reducer r to the source src.
func Bind[S any](src Iterator[S], r Reducer[S]) Pipeline {
	return &boundPipeline[S]{src: src, r: r}
}

func (p *boundPipeline[S]) Init() any {
	return p.r.Init()
}

func (p *boundPipeline[S]) Pull(ctx context.Context, acc any) (Reduced[any], bool) {
	if !p.src.Next(ctx) {
		return Continue(acc), false
	}
	p.pulled++
	return p.r.Step(acc, p.src.Get()), true
}

func (p *boundPipeline[S]) Result(acc any) any {
	return p.r.Result(acc)
}

func (p *boundPipeline[S]) Error() error {
	return p.src.Error()
}

func (p *boundPipeline[S]) Pulled() int {
	return p.pulled
}

// Drive runs p to completion, starting from p.Init().
func Drive(p Pipeline, opts ...Option) (any, error) {
	o := processOptions(opts...)
	return drive(&o, p, p.Init)
}

// DriveInit runs p to completion, starting from init.  The chain's Init
// is not called.
func DriveInit(p Pipeline, init any, opts ...Option) (any, error) {
	o := processOptions(opts...)
	return drive(&o, p, func() any { return init })
}

// drive is the reduction loop: pull, step, stop on a reduced value without
// pulling again, and finalize once with the unwrapped accumulator.
func drive(o *options, p Pipeline, init func() any) (result any, err error) {
	t := o.newTracer("drive")
	defer t.End()

	ctx := o.ctx
	reduced := false
	if o.otel != nil {
		var span trace.Span
		ctx, span = o.otel.Start(ctx, "transduce.drive")
		defer func() {
			span.SetAttributes(
				attribute.Int("transduce.pulled", p.Pulled()),
				attribute.Bool("transduce.reduced", reduced),
			)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
	}

	acc := init()
	for {
		r, ok := p.Pull(ctx, acc)
		if !ok {
			break
		}
		acc = r.Unreduced()
		if r.IsReduced() {
			t.Msg("short-circuit after %d pulls", p.Pulled())
			reduced = true
			return finish(t, p, acc), nil
		}
	}

	if srcErr := p.Error(); srcErr != nil {
		t.Msg("source error after %d pulls: %s", p.Pulled(), srcErr)
		return nil, &SourceError{Pulled: p.Pulled(), Err: srcErr}
	}

	t.Msg("source exhausted after %d pulls", p.Pulled())
	return finish(t, p, acc), nil
}

// finish calls the chain's Result under its own sub-tracer; buffering
// stages flush their trailing groups here.
func finish(t Tracer, p Pipeline, acc any) any {
	st := t.SubTracer("result")
	defer st.End()
	return p.Result(acc)
}

// Transduce drives src through xf into the terminal t, starting from
// t's initial accumulator.
func Transduce[In, Out, A, R any](src Iterator[In], xf Transducer[In, Out], t Transformer[A, R, Out], opts ...Option) (R, error) {
	res, err := Drive(Bind(src, xf(Erase(t))), opts...)
	return unbox[R](res), err
}

// TransduceInit is Transduce with an explicit initial accumulator.
func TransduceInit[In, Out, A, R any](src Iterator[In], xf Transducer[In, Out], t Transformer[A, R, Out], init A, opts ...Option) (R, error) {
	res, err := DriveInit(Bind(src, xf(Erase(t))), init, opts...)
	return unbox[R](res), err
}

// Reduce drives src straight into t.
func Reduce[T, A, R any](src Iterator[T], t Transformer[A, R, T], opts ...Option) (R, error) {
	return Transduce(src, Identity[T](), t, opts...)
}

// ReduceInit is Reduce with an explicit initial accumulator.
func ReduceInit[T, A, R any](src Iterator[T], t Transformer[A, R, T], init A, opts ...Option) (R, error) {
	return TransduceInit(src, Identity[T](), t, init, opts...)
}

// ReduceWith folds src with a plain two-argument reducer.
func ReduceWith[T, A any](src Iterator[T], f func(A, T) A, init A, opts ...Option) (A, error) {
	return Reduce(src, Fold(f, init), opts...)
}
