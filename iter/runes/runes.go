// Package runes implements a source that yields the characters of a
// string, one rune per element.
package runes

import (
	"context"
	"unicode/utf8"
)

// Iterator traverses the runes of a string.  Invalid UTF-8 bytes are
// returned as utf8.RuneError, one per byte, the same as a range loop.
type Iterator struct {
	s    string
	pos  int
	item rune
	err  error
}

// New returns an Iterator over the runes of s.
func New(s string) *Iterator {
	return &Iterator{s: s}
}

// Size returns the number of runes in the string, implementing the
// transduce.Size interface.
func (i *Iterator) Size() uint {
	return uint(utf8.RuneCountInString(i.s))
}

// Next decodes the next rune.  It returns false at the end of the string
// or if the context is cancelled.
func (i *Iterator) Next(ctx context.Context) bool {
	if i.pos >= len(i.s) {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	r, n := utf8.DecodeRuneInString(i.s[i.pos:])
	i.item = r
	i.pos += n
	return true
}

// Get returns the rune read by the last call to Next.
func (i *Iterator) Get() rune {
	return i.item
}

// Error returns the context's error if the context was cancelled.
func (i *Iterator) Error() error {
	return i.err
}
