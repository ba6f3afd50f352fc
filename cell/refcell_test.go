package cell_test

import (
	"testing"

	"github.com/Invicton-Labs/go-optional-arrays/cell"
	"github.com/stretchr/testify/require"
)

func TestRefCellSharedBorrows(t *testing.T) {
	c := cell.NewRef("value")

	// Any number of shared views may be live at once.
	r1 := c.Borrow()
	r2 := c.Borrow()
	require.Equal(t, "value", *r1.Value())
	require.Equal(t, "value", *r2.Value())
	r1.Release()
	r2.Release()
}

func TestRefCellSharedBlocksExclusive(t *testing.T) {
	c := cell.NewRef(1)
	r := c.Borrow()

	_, ok := c.TryBorrowMut()
	require.False(t, ok)
	require.Panics(t, func() {
		c.BorrowMut()
	})

	r.Release()

	// Once the last shared view is released, the exclusive view
	// becomes available again.
	m := c.BorrowMut()
	m.Set(2)
	m.Release()
	require.Equal(t, 2, c.Take())
}

func TestRefCellExclusiveBlocksShared(t *testing.T) {
	c := cell.NewRef(1)
	m := c.BorrowMut()

	_, ok := c.TryBorrow()
	require.False(t, ok)
	require.Panics(t, func() {
		c.Borrow()
	})
	_, ok = c.TryBorrowMut()
	require.False(t, ok)

	m.Release()

	r := c.Borrow()
	require.Equal(t, 1, *r.Value())
	r.Release()
}

func TestRefCellMutWrite(t *testing.T) {
	c := cell.NewRef("old")
	m := c.BorrowMut()
	*m.Value() = "new"
	m.Release()

	r := c.Borrow()
	require.Equal(t, "new", *r.Value())
	r.Release()
}

func TestRefCellReplaceWhileBorrowedPanics(t *testing.T) {
	c := cell.NewRef(1)
	r := c.Borrow()
	require.Panics(t, func() {
		c.Replace(2)
	})
	require.Panics(t, func() {
		c.Take()
	})
	r.Release()

	require.Equal(t, 1, c.Replace(2))
	require.Equal(t, 2, c.Take())
}

func TestRefCellDoubleReleasePanics(t *testing.T) {
	c := cell.NewRef(1)

	r := c.Borrow()
	r.Release()
	require.Panics(t, func() {
		r.Release()
	})

	m := c.BorrowMut()
	m.Release()
	require.Panics(t, func() {
		m.Release()
	})
}

func TestRefCellReleasedViewPanics(t *testing.T) {
	c := cell.NewRef(1)

	r := c.Borrow()
	r.Release()
	require.Panics(t, func() {
		r.Value()
	})

	m := c.BorrowMut()
	m.Release()
	require.Panics(t, func() {
		m.Value()
	})
	require.Panics(t, func() {
		m.Set(2)
	})
}

func TestRefCellTakeLeavesZeroValue(t *testing.T) {
	c := cell.NewRef("contents")
	require.Equal(t, "contents", c.Take())
	require.Equal(t, "", c.Take())
}
