package arrays

import (
	"github.com/Invicton-Labs/go-optional-arrays/cell"
	"github.com/Invicton-Labs/go-optional-arrays/constraints"
	"github.com/Invicton-Labs/go-optional-arrays/optional"
)

// None creates a slice of a certain number of absent optional values.
// It never constructs or copies a value of type T, so T does not need to
// support duplication or default construction. Only the first type
// parameter (T) must be provided; the second (C) will be inferred from
// the input argument.
func None[T any, C constraints.Integer](count C) []optional.Optional[T] {
	return Fill[optional.Optional[T]](optional.None[T], count)
}

// NoneCells creates a slice of a certain number of cells, each holding
// an absent optional value.
func NoneCells[T any, C constraints.Integer](count C) []cell.Cell[optional.Optional[T]] {
	return Fill[cell.Cell[optional.Optional[T]]](func() cell.Cell[optional.Optional[T]] {
		return cell.New(optional.None[T]())
	}, count)
}

// NoneRefCells creates a slice of a certain number of borrow-checked
// cells, each holding an absent optional value.
func NoneRefCells[T any, C constraints.Integer](count C) []cell.RefCell[optional.Optional[T]] {
	return Fill[cell.RefCell[optional.Optional[T]]](func() cell.RefCell[optional.Optional[T]] {
		return cell.NewRef(optional.None[T]())
	}, count)
}

// NoneSyncCells creates a slice of a certain number of mutex-guarded
// cells, each holding an absent optional value.
func NoneSyncCells[T any, C constraints.Integer](count C) []cell.SyncCell[optional.Optional[T]] {
	return Fill[cell.SyncCell[optional.Optional[T]]](func() cell.SyncCell[optional.Optional[T]] {
		return cell.NewSync(optional.None[T]())
	}, count)
}
