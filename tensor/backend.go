// Copyright 2025 The ndfold Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/ndfold/ndfold/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The axis reducer consumes exactly this contract: Moveaxis, Reshape, Fold,
// ExpandDims and Cast. The element-wise operations double as ready-made
// combining functions, since a method value like backend.Add satisfies
// ReduceFunc.
//
// Implementations:
//   - backend/cpu: Pure Go CPU backend
//
// Example:
//
//	import (
//	    "github.com/ndfold/ndfold/backend/cpu"
//	    "github.com/ndfold/ndfold/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Transpose dimensions.
	Moveaxis(t *RawTensor, src, dst int) *RawTensor  // Move one axis to a new position.
	ExpandDims(t *RawTensor, axes []int) *RawTensor  // Insert size-one dimensions in one batch.

	// Fold reduces a 2-D tensor along its leading dimension.
	Fold(fn ReduceFunc, x, init *RawTensor) *RawTensor

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
