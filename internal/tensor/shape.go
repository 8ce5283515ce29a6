package tensor

import "fmt"

// Shape is the ordered list of a tensor's dimension sizes.
// An empty Shape describes a 0-D (scalar) tensor.
type Shape []int

// NumElements returns the total number of elements a tensor of this shape
// holds. A scalar shape holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects shapes with non-positive dimensions.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same dimensions.
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
	return append(Shape(nil), s...)
}

// Remove returns the shape with the dimension at the given axis dropped.
// The remaining dimensions keep their original relative order.
func (s Shape) Remove(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// ComputeStrides returns row-major strides: stride[i] is the flat-index
// distance between neighbors along dimension i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// dimAt reads dimension i counted from the right, treating missing leading
// dimensions as 1.
func (s Shape) dimAt(fromRight int) int {
	i := len(s) - 1 - fromRight
	if i < 0 {
		return 1
	}
	return s[i]
}

// BroadcastShapes applies NumPy-style broadcasting to a pair of shapes:
// dimensions are compared from the right and are compatible when equal or
// when one of them is 1.
//
// Returns the broadcast shape, a flag indicating whether any stretching is
// needed, and an error if the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)
	stretched := false

	for i := 0; i < n; i++ {
		da, db := a.dimAt(i), b.dimAt(i)
		switch {
		case da == db:
			result[n-1-i] = da
		case da == 1:
			result[n-1-i] = db
			stretched = true
		case db == 1:
			result[n-1-i] = da
			stretched = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, n-1-i, da, db)
		}
	}

	return result, stretched, nil
}
