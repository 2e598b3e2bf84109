package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when two shapes cannot be combined.
var ErrShapeMismatch = errors.New("shape mismatch")

// Shape represents the dimensions of a tensor. An empty Shape is a scalar.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that all dimensions are positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastScalar returns the result shape of an element-wise binary op.
//
// Only two cases are legal: identical shapes, or one operand holding a single
// element (a scalar or shape [1]) which is repeated over the other. Anything
// else is rejected instead of silently broadcast.
//
//	(4, 2) + (4, 2) → (4, 2)
//	(4,)   + ()     → (4,)
//	(4,)   + (3,)   → ErrShapeMismatch
func BroadcastScalar(a, b Shape) (Shape, error) {
	switch {
	case a.Equal(b):
		return a.Clone(), nil
	case b.NumElements() == 1 && len(a) >= len(b):
		return a.Clone(), nil
	case a.NumElements() == 1 && len(b) >= len(a):
		return b.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a, b)
	}
}
