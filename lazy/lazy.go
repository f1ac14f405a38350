// Package lazy provides a single-slot memoizing cell for deferring
// expensive acquisition until first use.
package lazy

import "errors"

// Cell memoizes the result of a producer function.
//
// The first call to Get invokes the producer and stores its result,
// failures included. Every later call returns the stored pair without
// re-invoking the producer, so a cell that failed to materialize keeps
// returning the same error.
//
// A Cell is not safe for concurrent use. Callers that share a cell
// across goroutines must serialize access externally.
//
// Usage:
//
//	cell := lazy.New(func() (*os.File, error) {
//	    return os.Open("data.txt")
//	})
//	f, err := cell.Get() // opens on first call only
type Cell[T any] struct {
	producer func() (T, error)
	value    T
	err      error
	done     bool
}

// New creates a cell over the given producer. The producer is not
// invoked until the first call to Get.
func New[T any](producer func() (T, error)) *Cell[T] {
	return &Cell[T]{producer: producer}
}

// Get returns the memoized result, invoking the producer on first use.
// Both the value and the error are memoized: the producer runs at most
// once for the lifetime of the cell.
func (c *Cell[T]) Get() (T, error) {
	if !c.done {
		if c.producer == nil {
			c.err = errors.New("lazy: cell has no producer")
		} else {
			c.value, c.err = c.producer()
		}
		c.done = true
		c.producer = nil
	}
	return c.value, c.err
}
