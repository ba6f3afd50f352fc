package arrays

import (
	"github.com/Invicton-Labs/go-optional-arrays/constraints"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// Fill creates a slice of a certain number of elements, running the
// constructor function once per slot, in order. Every slot holds the
// result of its own constructor call; no slot is ever copied from
// another, so the element type never needs to support duplication. Only
// the first type parameter (T) must be provided; the second (C) will be
// inferred from the input argument.
func Fill[T any, C constraints.Integer](constructor func() T, count C) []T {
	v := make([]T, count)
	for i := C(0); i < count; i++ {
		v[i] = constructor()
	}
	return v
}

// FillIndexed is the same as Fill, except that the constructor function
// receives the index of the slot it is constructing.
func FillIndexed[T any, C constraints.Integer](constructor func(index C) T, count C) []T {
	v := make([]T, count)
	for i := C(0); i < count; i++ {
		v[i] = constructor(i)
	}
	return v
}

// FillWithErr is the same as FillIndexed, except that the constructor
// function can fail. If it fails at some index, every element that was
// constructed before that index is passed to the teardown function in
// reverse construction order, and the constructor's error (combined with
// any teardown errors) is returned; a partially constructed slice is
// never returned. A nil teardown function skips the teardown pass.
func FillWithErr[T any, C constraints.Integer](constructor func(index C) (T, stackerr.Error), teardown func(value T) stackerr.Error, count C) ([]T, stackerr.Error) {
	v := make([]T, count)
	for i := C(0); i < count; i++ {
		element, err := constructor(i)
		if err != nil {
			if teardown != nil {
				// Loop shape avoids underflow for unsigned count types.
				var teardownErr error
				for j := i; j > 0; j-- {
					if terr := teardown(v[j-1]); terr != nil {
						teardownErr = multierr.Append(teardownErr, terr)
					}
				}
				if teardownErr != nil {
					return nil, stackerr.Wrap(multierr.Append(err, teardownErr))
				}
			}
			return nil, err
		}
		v[i] = element
	}
	return v, nil
}
