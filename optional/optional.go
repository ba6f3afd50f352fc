package optional

import (
	"encoding/json"

	"github.com/Invicton-Labs/go-optional-arrays/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// An Optional either holds exactly one value of type T ("present"), or
// holds nothing ("absent"). The zero value of an Optional is absent, and
// constructing an absent Optional never requires a value of type T to be
// created or copied.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// None creates an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr creates an Optional from a pointer: absent if the pointer is
// nil, otherwise holding the value it points to.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns whether the Optional holds a value.
func (o Optional[T]) IsSome() bool {
	return o.present
}

// IsNone returns whether the Optional is absent.
func (o Optional[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and whether it is present. If the Optional
// is absent, the returned value is the zero value of T.
func (o Optional[T]) Get() (value T, present bool) {
	return o.value, o.present
}

// MustGet returns the held value, and will panic if the Optional
// is absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("get of an absent optional")
	}
	return o.value
}

// GetOr returns the held value if present, or the given fallback value
// otherwise.
func (o Optional[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil if the
// Optional is absent.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// Set stores a value, discarding any previously held value.
func (o *Optional[T]) Set(value T) {
	o.value = value
	o.present = true
}

// Clear makes the Optional absent. The vacated slot is reset to the zero
// value of T so that no stale value is retained.
func (o *Optional[T]) Clear() {
	o.value = zero.ZeroValue[T]()
	o.present = false
}

// Take moves the contents out, leaving the Optional absent.
func (o *Optional[T]) Take() Optional[T] {
	old := *o
	o.Clear()
	return old
}

// Replace stores a new value and returns the previous contents.
func (o *Optional[T]) Replace(value T) Optional[T] {
	old := *o
	o.Set(value)
	return old
}

// Equal returns whether two Optionals are equivalent: both absent, or
// both holding equal values.
func Equal[T comparable](a Optional[T], b Optional[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// Transform maps a present Optional to a new Optional using a
// transformation function. An absent input produces an absent output and
// the transformation function is not called.
func Transform[In any, Out any](in Optional[In], transformationFunc func(value In) (transformed Out)) Optional[Out] {
	if !in.present {
		return None[Out]()
	}
	return Some(transformationFunc(in.value))
}

// TransformWithErr maps a present Optional to a new Optional using a
// transformation function and allows returning an error.
func TransformWithErr[In any, Out any](in Optional[In], transformationFunc func(value In) (transformed Out, err stackerr.Error)) (Optional[Out], stackerr.Error) {
	if !in.present {
		return None[Out](), nil
	}
	v, err := transformationFunc(in.value)
	if err != nil {
		return None[Out](), err
	}
	return Some(v), nil
}

// MarshalJSON implements json.Marshaler. An absent Optional marshals
// as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null unmarshals as
// an absent Optional.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Clear()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return stackerr.Wrap(err)
	}
	o.Set(v)
	return nil
}
