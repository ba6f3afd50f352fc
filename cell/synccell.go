package cell

import (
	"sync"

	"github.com/Invicton-Labs/go-optional-arrays/zero"
)

// A SyncCell is a Cell whose operations are guarded by a mutex, so its
// contents can be replaced from multiple goroutines. Like a Cell, it has
// no primitive for copying the contents out; contents only leave the
// cell by replacement.
type SyncCell[T any] struct {
	l sync.Mutex
	v T
}

// NewSync creates a SyncCell holding the given value.
func NewSync[T any](value T) SyncCell[T] {
	return SyncCell[T]{
		v: value,
	}
}

// Set replaces the contents, discarding the previous value.
func (c *SyncCell[T]) Set(value T) {
	c.l.Lock()
	defer c.l.Unlock()
	c.v = value
}

// Replace replaces the contents and returns the previous value.
func (c *SyncCell[T]) Replace(value T) (old T) {
	c.l.Lock()
	defer c.l.Unlock()
	old = c.v
	c.v = value
	return old
}

// Take moves the contents out, leaving the zero value of T behind.
func (c *SyncCell[T]) Take() T {
	return c.Replace(zero.ZeroValue[T]())
}

// ReplaceIf replaces the contents only if the condition function
// approves of the exchange.
func (c *SyncCell[T]) ReplaceIf(value T, condition func(old T, new T) bool) (replaced bool) {
	c.l.Lock()
	defer c.l.Unlock()
	if condition(c.v, value) {
		c.v = value
		return true
	}
	return false
}
