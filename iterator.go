package transduce

import (
	"context"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items.  Iterators are the sources that the
// reduction engine pulls from; pulling is destructive, so an iterator
// shared between two pipelines is advanced by whichever pulls first.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements in the collection when it is initialized
type Size interface {
	Size() uint
}

// SizeOf returns the number of elements i will produce if it implements
// Size, otherwise def.
func SizeOf[T any](i Iterator[T], def uint) uint {
	if sh, ok := i.(Size); ok {
		return sh.Size()
	}
	return def
}
