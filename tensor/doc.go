// Copyright 2025 The ndfold Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe N-dimensional arrays and the generic
// axis-reduction primitive that is the heart of ndfold.
//
// # Overview
//
// A reduction collapses one or more axes of an array by left-folding a
// binary combining function over each axis, seeded from an initial value:
//
//	import (
//	    "github.com/ndfold/ndfold/backend/cpu"
//	    "github.com/ndfold/ndfold/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//
//	    colSums, _ := tensor.Reduce(x, 0, tensor.Sum, []int{0}, false) // [5, 7, 9]
//	    rowSums, _ := tensor.Reduce(x, 0, tensor.Sum, []int{1}, false) // [6, 15]
//	}
//
// Any function with the ReduceFunc signature works as a combining function,
// including backend method values such as backend.Add. The built-in
// convenience combiners (Sum, Prod, Max, Min) are registered aliases that
// Reduce resolves to canonical implementations before folding.
//
// # Supported Data Types
//
// The tensor package supports the following element types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (boolean masks)
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting rules. Reduce depends
// on them: the 0-D initial value broadcasts against the first 1-D slice of
// every fold.
//
// # Memory Management
//
// The underlying buffers are reference-counted with copy-on-write
// semantics; clones are cheap and intermediates are freed once unused.
package tensor
