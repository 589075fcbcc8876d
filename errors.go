package transduce

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by the errors that stage constructors
// panic with when given an invalid parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes an invalid stage parameter.  Stage constructors
// panic with an *ArgumentError at construction time, never during
// iteration.
type ArgumentError struct {
	Stage string
	Arg   string
	Value any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %v", e.Stage, e.Arg, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func mustBePositive(stage, arg string, n int) {
	if n <= 0 {
		panic(&ArgumentError{Stage: stage, Arg: arg, Value: n})
	}
}

// SourceError is returned by the engine when the source iterator reports
// an error, including cancellation of the context passed to Next.  The
// reduction is abandoned: Result is not called and the accumulator is
// discarded.
type SourceError struct {
	// Pulled is the number of elements successfully read before the error
	Pulled int
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading source after %d elements: %s", e.Pulled, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
