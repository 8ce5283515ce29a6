package cpu

import (
	"fmt"

	"github.com/ndfold/ndfold/internal/parallel"
	"github.com/ndfold/ndfold/internal/tensor"
)

// Reshape returns a tensor with the same data but a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}

	copy(result.Data(), t.Data())
	return result
}

// Transpose transposes the tensor by permuting its dimensions.
// If axes is empty, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	transposeData(result, t, axes, cpu.par)
	return result
}

// transposeData copies elements into their permuted positions. It works on
// bytes so a single implementation covers every dtype.
func transposeData(result, t *tensor.RawTensor, axes []int, par parallel.Config) {
	shape := t.Shape()
	oldStrides := shape.ComputeStrides()
	newStrides := result.Shape().ComputeStrides()
	esz := t.DType().Size()

	src := t.Data()
	dst := result.Data()

	// dstStrideOf[j] is the destination stride of source axis j.
	dstStrideOf := make([]int, len(axes))
	for j, ax := range axes {
		dstStrideOf[ax] = newStrides[j]
	}

	// Each destination element is written exactly once, so the copy loop is
	// safe to split across goroutines.
	parallel.For(t.NumElements(), func(i int) {
		temp := i
		newIdx := 0
		for j := range shape {
			newIdx += (temp / oldStrides[j]) * dstStrideOf[j]
			temp %= oldStrides[j]
		}

		copy(dst[newIdx*esz:(newIdx+1)*esz], src[i*esz:(i+1)*esz])
	}, par)
}

// Moveaxis moves axis src to position dst, keeping all other axes in their
// original relative order.
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float32, backend.Device())
//	y := backend.Moveaxis(x, 2, 0) // shape: [4, 2, 3]
func (cpu *CPUBackend) Moveaxis(t *tensor.RawTensor, src, dst int) *tensor.RawTensor {
	order, err := tensor.MoveaxisPermutation(len(t.Shape()), src, dst)
	if err != nil {
		panic(err)
	}
	return cpu.Transpose(t, order...)
}

// ExpandDims inserts size-one dimensions at the given positions of the
// result shape, in one batch. This is a view-style operation implemented as
// a reshape.
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())
//	y := backend.ExpandDims(x, []int{0, 2}) // shape: [1, 2, 1, 3]
func (cpu *CPUBackend) ExpandDims(t *tensor.RawTensor, axes []int) *tensor.RawTensor {
	newShape, err := tensor.ExpandDimsShape(t.Shape(), axes)
	if err != nil {
		panic(err)
	}
	return cpu.Reshape(t, newShape)
}
