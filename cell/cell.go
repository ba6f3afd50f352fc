package cell

import (
	"github.com/Invicton-Labs/go-optional-arrays/zero"
)

// A Cell is a single-slot container whose contents can be replaced
// through any handle to it; no exclusive access is required. It has no
// primitive for copying the contents out, so the held type never needs
// to support duplication; contents only leave the cell by replacement.
//
// A Cell is not safe for concurrent use. For replacing contents across
// goroutines, use a SyncCell instead.
type Cell[T any] struct {
	value T
}

// New creates a Cell holding the given value.
func New[T any](value T) Cell[T] {
	return Cell[T]{
		value: value,
	}
}

// Set replaces the contents, discarding the previous value.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// Replace replaces the contents and returns the previous value.
func (c *Cell[T]) Replace(value T) (old T) {
	old = c.value
	c.value = value
	return old
}

// Take moves the contents out, leaving the zero value of T behind.
func (c *Cell[T]) Take() T {
	return c.Replace(zero.ZeroValue[T]())
}

// Swap exchanges the contents of two cells.
func (c *Cell[T]) Swap(other *Cell[T]) {
	c.value, other.value = other.value, c.value
}
