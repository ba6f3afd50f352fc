package cell

import (
	"github.com/Invicton-Labs/go-optional-arrays/zero"
)

// Sentinel borrow count for a live exclusive view.
const exclusiveBorrow = -1

// A RefCell is a single-slot container that enforces, at run time, that
// views of its contents never overlap illegally: at any moment there may
// be any number of live shared (read) views, or exactly one live
// exclusive (write) view, but never both.
//
// The tracking is per-instance and single-threaded; it does not
// synchronize access across goroutines. If a RefCell must be shared
// between goroutines, every access must be protected externally.
type RefCell[T any] struct {
	value   T
	borrows int
}

// NewRef creates a RefCell holding the given value.
func NewRef[T any](value T) RefCell[T] {
	return RefCell[T]{
		value: value,
	}
}

// Borrow obtains a shared read view of the contents. It will panic if an
// exclusive view is currently live.
func (c *RefCell[T]) Borrow() *Ref[T] {
	r, ok := c.TryBorrow()
	if !ok {
		panic("borrow of a mutably borrowed cell")
	}
	return r
}

// TryBorrow will attempt to obtain a shared read view of the contents,
// but will not panic if it cannot.
func (c *RefCell[T]) TryBorrow() (view *Ref[T], ok bool) {
	if c.borrows == exclusiveBorrow {
		return nil, false
	}
	c.borrows++
	return &Ref[T]{cell: c}, true
}

// BorrowMut obtains the exclusive write view of the contents. It will
// panic if any other view is currently live.
func (c *RefCell[T]) BorrowMut() *RefMut[T] {
	m, ok := c.TryBorrowMut()
	if !ok {
		panic("mutable borrow of a borrowed cell")
	}
	return m
}

// TryBorrowMut will attempt to obtain the exclusive write view of the
// contents, but will not panic if it cannot.
func (c *RefCell[T]) TryBorrowMut() (view *RefMut[T], ok bool) {
	if c.borrows != 0 {
		return nil, false
	}
	c.borrows = exclusiveBorrow
	return &RefMut[T]{cell: c}, true
}

// Replace replaces the contents and returns the previous value. It will
// panic if any view is currently live.
func (c *RefCell[T]) Replace(value T) (old T) {
	if c.borrows != 0 {
		panic("replace of a borrowed cell")
	}
	old = c.value
	c.value = value
	return old
}

// Take moves the contents out, leaving the zero value of T behind. It
// will panic if any view is currently live.
func (c *RefCell[T]) Take() T {
	return c.Replace(zero.ZeroValue[T]())
}

// A Ref is a live shared read view of a RefCell's contents. It must be
// released once it is no longer needed; the cell cannot be written or
// replaced while any Ref on it is live.
type Ref[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns a pointer to the viewed contents. The contents must not
// be modified through it. It will panic if the view has been released.
func (r *Ref[T]) Value() *T {
	if r.released {
		panic("value of a released borrow")
	}
	return &r.cell.value
}

// Release ends the view. It will panic if the view has already
// been released.
func (r *Ref[T]) Release() {
	if r.released {
		panic("release of a released borrow")
	}
	r.released = true
	r.cell.borrows--
}

// A RefMut is the live exclusive write view of a RefCell's contents. It
// must be released once it is no longer needed; no other view can be
// obtained while it is live.
type RefMut[T any] struct {
	cell     *RefCell[T]
	released bool
}

// Value returns a pointer to the viewed contents. It will panic if the
// view has been released.
func (m *RefMut[T]) Value() *T {
	if m.released {
		panic("value of a released borrow")
	}
	return &m.cell.value
}

// Set replaces the viewed contents. It will panic if the view has
// been released.
func (m *RefMut[T]) Set(value T) {
	if m.released {
		panic("set through a released borrow")
	}
	m.cell.value = value
}

// Release ends the view. It will panic if the view has already
// been released.
func (m *RefMut[T]) Release() {
	if m.released {
		panic("release of a released borrow")
	}
	m.released = true
	m.cell.borrows = 0
}
