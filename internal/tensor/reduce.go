package tensor

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by Reduce for malformed arguments. Shape or dtype
// failures inside backend primitives are programmer errors and surface as
// panics, matching the backend contract.
var (
	// ErrScalarOperand is returned when the operand has no dimensions to reduce.
	ErrScalarOperand = errors.New("reduce: operand must have at least one dimension")
	// ErrAxisOutOfRange is returned when an axis, after negative-index
	// resolution, falls outside [0, ndim).
	ErrAxisOutOfRange = errors.New("reduce: axis out of range")
	// ErrDuplicateAxis is returned when the same axis is named twice.
	// Folding an axis twice is undefined: after the first pass the axis is
	// gone and a second pass would silently reduce a different one.
	ErrDuplicateAxis = errors.New("reduce: duplicate axis")
	// ErrNilCombiner is returned when no combining function is given.
	ErrNilCombiner = errors.New("reduce: nil combining function")
)

// Reduce collapses the given axes of operand by left-folding fn over each
// axis, seeding every fold from initValue. With keepDims the reduced axes
// are kept as size-one dimensions in their original positions; otherwise
// they are removed. A nil or empty axes slice reduces axis 0.
//
// Each axis is reduced independently: the axis is moved to the front, the
// tensor is flattened to (axisSize, rest) so one generic fold handles every
// column at once, and the folded result is reshaped back without the axis.
// Axes are processed from highest to lowest so that removing one never
// renumbers the ones still pending.
//
// The result always has the operand's dtype: the accumulator may drift to a
// wider type inside fn, and the final cast brings it back.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
//	colSums, _ := tensor.Reduce(x, 0, backend.Add, []int{0}, false)
//	// colSums is [5, 7, 9]
func Reduce[T DType, B Backend](operand *Tensor[T, B], initValue T, fn ReduceFunc, axes []int, keepDims bool) (*Tensor[T, B], error) {
	if fn == nil {
		return nil, ErrNilCombiner
	}

	ndim := len(operand.Shape())
	if ndim < 1 {
		return nil, ErrScalarOperand
	}

	if len(axes) == 0 {
		axes = []int{0}
	}

	resolved := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))
	for i, a := range axes {
		if a < 0 {
			a += ndim
		}
		if a < 0 || a >= ndim {
			return nil, fmt.Errorf("%w: axis %d for %d-dimensional operand", ErrAxisOutOfRange, axes[i], ndim)
		}
		if seen[a] {
			return nil, fmt.Errorf("%w: axis %d", ErrDuplicateAxis, a)
		}
		seen[a] = true
		resolved[i] = a
	}

	// Highest axis first: reducing from the back means earlier folds never
	// shift the position of axes still waiting to be reduced.
	sort.Sort(sort.Reverse(sort.IntSlice(resolved)))

	// Convenience aliases route to their canonical implementation; plain
	// user functions pass through unchanged.
	fn = ResolveCombiner(fn)

	b := operand.Backend()
	opDtype := operand.DType()

	// The seed is shared by every axis fold. Pin it so an inplace-optimizing
	// combining function cannot overwrite it between folds.
	init := Scalar(initValue, b).Raw()
	defer init.ForceNonUnique()()

	raw := operand.Raw()
	for _, axis := range resolved {
		shape := raw.Shape()
		moved := b.Moveaxis(raw, axis, 0)
		flat := b.Reshape(moved, Shape{shape[axis], shape.NumElements() / shape[axis]})
		folded := b.Fold(fn, flat, init)
		raw = b.Reshape(folded, shape.Remove(axis))
	}

	if keepDims {
		// Reinsert at the original (pre-reduction) positions, ascending, in
		// one batch so the positions cannot drift.
		restored := append([]int(nil), resolved...)
		sort.Ints(restored)
		raw = b.ExpandDims(raw, restored)
	}

	// Mandatory even when nothing promoted; Cast is a no-op then.
	return New[T, B](b.Cast(raw, opDtype), b), nil
}
