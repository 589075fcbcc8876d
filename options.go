package transduce

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// DefaultSizeHint is used by collecting terminals for initial allocations
// when the source cannot provide size information and a size hint has not
// been provided.
var DefaultSizeHint uint = 16

type options struct {
	ctx      context.Context
	sizeHint uint
	tracer   TraceFunc
	tracing  bool
	otel     trace.Tracer
}

// Options customize how the engine and the lazy iterator drive a
// pipeline.
type Option func(o *options)

// WithContext attaches the provided context.  The context is passed to the
// source iterator's Next method on every pull, so cancelling it aborts
// the reduction with a *SourceError.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// The SizeHint option provides collecting terminals with a guideline
// regarding the number of elements there are to collect.  This is only
// used with sources that cannot provide the information themselves.
//
// If not specified, the default value DefaultSizeHint is used.
func SizeHint(hint uint) Option {
	return func(o *options) {
		o.sizeHint = hint
	}
}

// WithTraceFunc sets the trace function.  Use WithTracing to
// enable/disable tracing.
func WithTraceFunc(f TraceFunc) Option {
	return func(o *options) {
		o.tracer = f
	}
}

// WithTracing enables tracing.  If a custom trace function has not been
// set using WithTraceFunc, trace messages go to DefaultTracer.
func WithTracing(enable bool) Option {
	return func(o *options) {
		o.tracing = enable
	}
}

// WithOtelTracer wraps every engine run in an OpenTelemetry span started
// from t.
func WithOtelTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.otel = t
	}
}

func processOptions(opts ...Option) options {
	o := options{
		ctx:      context.Background(),
		sizeHint: DefaultSizeHint,
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// ResolveSizeHint returns the size hint configured by opts, or
// DefaultSizeHint.
func ResolveSizeHint(opts ...Option) uint {
	return processOptions(opts...).sizeHint
}

func (o *options) newTracer(description string, v ...any) Tracer {
	if !o.tracing {
		return NullTracer{}
	}
	return NewTracer(runCounter.Add(1), description, o.tracer, v...)
}
