// Package channel implements a source that reads a data stream from
// the supplied channel.
package channel

import "context"

// Iterator traverses the elements of type T from a channel, until
// the channel is closed.
type Iterator[T any] struct {
	ch   <-chan T
	item T
	err  error
}

// New returns an Iterator that reads ch until it is closed or the context
// passed to Next expires.
//
// The iterator does not support the transduce.Size interface.  Elements
// are received one per Next call, so a pipeline that stops early leaves the
// remaining elements in the channel for the sender to deal with.
func New[T any](ch <-chan T) *Iterator[T] {
	return &Iterator[T]{
		ch: ch,
	}
}

// Next receives an item from the channel and stores the value, which can be
// retrieved using the Get() method.  Next returns true if an element was
// received, or false if the channel was closed or if the context expired.
//
// If the context expired, Error() will return the result of the context's
// Err() function.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	select {
	case item, ok := <-i.ch:
		if !ok {
			var zero T
			i.item = zero
			return false
		}
		i.item = item
		return true
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	}
}

// Get returns the value stored by the last successful Next method call,
// or the zero value of type T.
func (i *Iterator[T]) Get() T {
	return i.item
}

// Error returns the context expiry reason if any from a previous call
// to Next, otherwise it returns nil.
func (i *Iterator[T]) Error() error {
	return i.err
}
