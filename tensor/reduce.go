// Copyright 2025 The ndfold Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ndfold/ndfold/internal/tensor"
)

// ReduceFunc is a binary combining function for folds: it merges an
// accumulator with the next slice along the fold dimension and returns the
// new accumulator. The two arguments follow broadcasting rules.
type ReduceFunc = tensor.ReduceFunc

// Errors returned by Reduce for malformed arguments.
var (
	// ErrScalarOperand indicates a 0-D operand with nothing to reduce.
	ErrScalarOperand = tensor.ErrScalarOperand
	// ErrAxisOutOfRange indicates an axis outside [0, ndim) after
	// negative-index resolution.
	ErrAxisOutOfRange = tensor.ErrAxisOutOfRange
	// ErrDuplicateAxis indicates the same axis was named twice.
	ErrDuplicateAxis = tensor.ErrDuplicateAxis
	// ErrNilCombiner indicates a missing combining function.
	ErrNilCombiner = tensor.ErrNilCombiner
)

// Reduce collapses the given axes of operand by left-folding fn over each
// axis, seeding every fold from initValue. With keepDims the reduced axes
// remain as size-one dimensions in their original positions; otherwise
// they are removed. A nil or empty axes slice reduces axis 0. The result
// always has the operand's dtype, whatever type the accumulator drifted to
// inside fn.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	colSums, _ := tensor.Reduce(x, 0, tensor.Sum, []int{0}, false)  // [5, 7, 9]
//	rowSums, _ := tensor.Reduce(x, 0, tensor.Sum, []int{1}, false)  // [6, 15]
//	kept, _ := tensor.Reduce(x, 0, tensor.Sum, []int{1}, true)      // [[6], [15]]
func Reduce[T DType, B Backend](operand *Tensor[T, B], initValue T, fn ReduceFunc, axes []int, keepDims bool) (*Tensor[T, B], error) {
	return tensor.Reduce[T, B](operand, initValue, fn, axes, keepDims)
}

// RegisterCombinerAlias registers a convenience combining function as an
// alias of a canonical implementation. Reduce resolves registered aliases
// before folding; unregistered functions are used as given.
func RegisterCombinerAlias(alias, canonical ReduceFunc) {
	tensor.RegisterCombinerAlias(alias, canonical)
}

// Convenience combining functions. These are thin pass-throughs registered
// as aliases of the canonical kernels, so Reduce swaps them out before
// folding. They can also be called directly.

// Sum combines by element-wise addition.
func Sum(acc, x *RawTensor) *RawTensor { return tensor.CombineAdd(acc, x) }

// Prod combines by element-wise multiplication.
func Prod(acc, x *RawTensor) *RawTensor { return tensor.CombineMul(acc, x) }

// Max combines by element-wise maximum.
func Max(acc, x *RawTensor) *RawTensor { return tensor.CombineMax(acc, x) }

// Min combines by element-wise minimum.
func Min(acc, x *RawTensor) *RawTensor { return tensor.CombineMin(acc, x) }

func init() {
	tensor.RegisterCombinerAlias(Sum, tensor.CombineAdd)
	tensor.RegisterCombinerAlias(Prod, tensor.CombineMul)
	tensor.RegisterCombinerAlias(Max, tensor.CombineMax)
	tensor.RegisterCombinerAlias(Min, tensor.CombineMin)
}
