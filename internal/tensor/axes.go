package tensor

import "fmt"

// NormalizeAxis resolves a possibly negative axis index against ndim.
// Returns an error if the resolved index falls outside [0, ndim).
func NormalizeAxis(axis, ndim int) (int, error) {
	resolved := axis
	if resolved < 0 {
		resolved += ndim
	}
	if resolved < 0 || resolved >= ndim {
		return 0, fmt.Errorf("axis %d out of range for %d-dimensional tensor", axis, ndim)
	}
	return resolved, nil
}

// MoveaxisPermutation returns the transpose order that moves axis src to
// position dst while keeping every other axis in its original relative
// order. src and dst may be negative.
func MoveaxisPermutation(ndim, src, dst int) ([]int, error) {
	s, err := NormalizeAxis(src, ndim)
	if err != nil {
		return nil, fmt.Errorf("moveaxis: source %w", err)
	}
	d, err := NormalizeAxis(dst, ndim)
	if err != nil {
		return nil, fmt.Errorf("moveaxis: destination %w", err)
	}

	order := make([]int, 0, ndim)
	for i := 0; i < ndim; i++ {
		if i != s {
			order = append(order, i)
		}
	}
	order = append(order[:d], append([]int{s}, order[d:]...)...)
	return order, nil
}

// ExpandDimsShape returns s with size-one dimensions inserted at the given
// positions of the result shape. Positions may be negative (counted against
// the result rank) and must be unique and in range.
func ExpandDimsShape(s Shape, axes []int) (Shape, error) {
	outNdim := len(s) + len(axes)
	insert := make([]bool, outNdim)
	for _, a := range axes {
		resolved, err := NormalizeAxis(a, outNdim)
		if err != nil {
			return nil, fmt.Errorf("expand_dims: %w", err)
		}
		if insert[resolved] {
			return nil, fmt.Errorf("expand_dims: duplicate axis %d", resolved)
		}
		insert[resolved] = true
	}

	out := make(Shape, outNdim)
	next := 0
	for i := range out {
		if insert[i] {
			out[i] = 1
		} else {
			out[i] = s[next]
			next++
		}
	}
	return out, nil
}
