// Copyright 2025 The ndfold Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - All element types supported by the tensor package
//   - NumPy-compatible broadcasting
//   - Generic kernels shared across data types
//
// # Basic Usage
//
//	import (
//	    "github.com/ndfold/ndfold/backend/cpu"
//	    "github.com/ndfold/ndfold/tensor"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	    sums, _ := tensor.Reduce(x, 0, tensor.Sum, []int{0}, false)
//	    _ = sums
//	}
//
// Backend method values such as backend.Add satisfy tensor.ReduceFunc and
// can be passed to tensor.Reduce as combining functions directly.
package cpu
