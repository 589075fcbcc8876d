package transduce

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Tracer records the progress of an engine run.
type Tracer interface {
	SubTracer(description string, v ...any) Tracer
	Msg(format string, v ...any)
	End()
}

// TraceFunc defines the function prototype of a tracing function
// Per run functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

var traceLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Str("component", "transduce").Logger()

// DefaultTracer is the global default trace function.  It writes debug
// messages to stderr through a zerolog console logger.  DefaultTracer can
// be replaced by another tracing function to affect all runs.
var DefaultTracer TraceFunc = func(format string, v ...any) {
	traceLogger.Debug().Msgf(format, v...)
}

var runCounter atomic.Uint32

type tracer struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      atomic.Uint32
	traceFunc   TraceFunc
}

// NewTracer starts a tracer for run id, reporting through f, or
// DefaultTracer if f is nil.
func NewTracer(id uint32, description string, f TraceFunc, v ...any) Tracer {
	if f == nil {
		f = DefaultTracer
	}

	t := &tracer{
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("START [run #%s] %s", t.id(), t.description)
}

func (t *tracer) SubTracer(description string, v ...any) Tracer {
	subID := t.subids.Add(1)

	t2 := &tracer{
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), subID),
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *tracer) Msg(format string, v ...any) {
	args := []any{t.id(), t.description}
	args = append(args, v...)
	t.traceFunc("MSG [run #%s] %s: "+format, args...)
}

func (t *tracer) End() {
	t.traceFunc("END [run #%s] %s (%s)", t.id(), t.description, time.Since(t.begin))
}

// NullTracer discards everything.  It is used when tracing is disabled.
type NullTracer struct{}

func (t NullTracer) SubTracer(description string, v ...any) Tracer { return t }
func (t NullTracer) Msg(string, ...any)                            {}
func (t NullTracer) End()                                          {}
