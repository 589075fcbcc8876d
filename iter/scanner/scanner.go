// Package scanner implements a stream tokenizer source.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Scanner is the subset of the methods exposed by bufio.Scanner that the
// iterator needs.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// Scan() method, the result of too many empty tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	}
	return fmt.Sprintf("too many tokens: %s", e.err)
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// Iterator wraps a Scanner to traverse over a stream of tokens such as
// words or lines read from an io.Reader.
//
// Iterator does not support the transduce.Size interface.
type Iterator struct {
	scanner Scanner
	err     error
}

// New returns an Iterator over the tokens produced by scanner.
func New(scanner Scanner) *Iterator {
	return &Iterator{
		scanner: scanner,
	}
}

// NewReader returns an Iterator over the tokens of r, split by split.
// A nil split function scans lines.
func NewReader(r io.Reader, split bufio.SplitFunc) *Iterator {
	s := bufio.NewScanner(r)
	if split != nil {
		s.Split(split)
	}
	return New(s)
}

// Next advances the iterator to the next token by calling Scan().  It
// returns false if the end of the input is reached or an error is
// encountered, including cancellation of the context.  If the scanner
// panics, Next returns false and Error() describes the panic.
func (i *Iterator) Next(ctx context.Context) (ret bool) {
	defer func() {
		switch err := recover().(type) {
		case nil:
		case error:
			i.err = ErrTooManyTokens{err: err}
			ret = false
		default:
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ret = false
		}
	}()

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	return i.scanner.Scan()
}

// Get returns the most recent token read by Next.
func (i *Iterator) Get() string {
	return i.scanner.Text()
}

// Error returns the panic recorded by Next, or the context error if the
// context was cancelled.  Otherwise it returns the scanner's Err(), which
// is nil at a clean end of input.
func (i *Iterator) Error() error {
	if i.err != nil {
		return i.err
	}

	return i.scanner.Err()
}
