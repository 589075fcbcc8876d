package transduce

import (
	"context"
)

var hundredInts = []int{
	89, 46, 43, 83, 87, 63, 48, 91, 75, 28,
	56, 21, 6, 12, 5, 39, 61, 63, 16, 23,
	81, 26, 25, 14, 9, 36, 67, 87, 30, 7,
	38, 41, 29, 13, 49, 89, 87, 34, 45, 64,
	62, 74, 70, 79, 62, 91, 4, 1, 80, 62,
	89, 17, 29, 33, 66, 3, 1, 50, 35, 86,
	74, 97, 12, 52, 72, 6, 84, 95, 31, 12,
	39, 49, 98, 11, 54, 34, 36, 7, 5, 87,
	22, 15, 20, 34, 50, 63, 43, 85, 74, 25,
	88, 7, 18, 49, 9, 26, 89, 36, 94, 60,
}

var hundredIntsEven = []int{
	46, 48, 28, 56, 6, 12, 16, 26, 14, 36,
	30, 38, 34, 64, 62, 74, 70, 62, 4, 80,
	62, 66, 50, 86, 74, 12, 52, 72, 6, 84,
	12, 98, 54, 34, 36, 22, 20, 34, 50, 74,
	88, 18, 26, 36, 94, 60,
}

func isEven(i int) bool {
	return i%2 == 0
}

func isOdd(i int) bool {
	return i%2 != 0
}

// countingIter counts the calls made to Next on the wrapped iterator
type countingIter[T any] struct {
	src   Iterator[T]
	calls int
}

func counting[T any](src Iterator[T]) *countingIter[T] {
	return &countingIter[T]{src: src}
}

func (c *countingIter[T]) Next(ctx context.Context) bool {
	c.calls++
	return c.src.Next(ctx)
}

func (c *countingIter[T]) Get() T {
	return c.src.Get()
}

func (c *countingIter[T]) Error() error {
	return c.src.Error()
}

// recoverError runs f and returns the error it panicked with, if any
func recoverError(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	f()
	return nil
}
