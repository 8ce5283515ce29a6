package cpu

import (
	"fmt"

	"github.com/ndfold/ndfold/internal/parallel"
	"github.com/ndfold/ndfold/internal/tensor"
)

// number covers the dtypes the element-wise kernels operate on.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

type binaryKind int

const (
	binaryAdd binaryKind = iota
	binarySub
	binaryMul
	binaryDiv
)

// binaryOp computes an element-wise binary operation with broadcasting.
// Both operands must share a dtype; the result keeps it.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, kind binaryKind) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), outShape, a.Shape(), b.Shape(), opFor[float32](kind), cpu.par)
	case tensor.Float64:
		applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), outShape, a.Shape(), b.Shape(), opFor[float64](kind), cpu.par)
	case tensor.Int32:
		applyBinary(result.AsInt32(), a.AsInt32(), b.AsInt32(), outShape, a.Shape(), b.Shape(), opFor[int32](kind), cpu.par)
	case tensor.Int64:
		applyBinary(result.AsInt64(), a.AsInt64(), b.AsInt64(), outShape, a.Shape(), b.Shape(), opFor[int64](kind), cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

func opFor[T number](kind binaryKind) func(T, T) T {
	switch kind {
	case binaryAdd:
		return func(x, y T) T { return x + y }
	case binarySub:
		return func(x, y T) T { return x - y }
	case binaryMul:
		return func(x, y T) T { return x * y }
	case binaryDiv:
		return func(x, y T) T { return x / y }
	default:
		panic(fmt.Sprintf("unknown binary op kind %d", kind))
	}
}

func applyBinary[T number](dst, aData, bData []T, outShape, aShape, bShape tensor.Shape, op func(T, T) T, par parallel.Config) {
	// Fast path: identical shapes need no index mapping.
	if aShape.Equal(bShape) {
		parallel.For(len(dst), func(i int) {
			dst[i] = op(aData[i], bData[i])
		}, par)
		return
	}

	parallel.For(len(dst), func(i int) {
		aIdx := broadcastIndex(i, outShape, aShape)
		bIdx := broadcastIndex(i, outShape, bShape)
		dst[i] = op(aData[aIdx], bData[bIdx])
	}, par)
}

// broadcastIndex maps a flat index in the broadcast output shape to the
// flat index of the (possibly smaller) input shape.
func broadcastIndex(flatIdx int, outShape, inShape tensor.Shape) int {
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		coord := indices[offset+i]
		if inShape[i] == 1 {
			coord = 0 // Broadcast dimension
		}
		inIdx += coord * inStrides[i]
	}

	return inIdx
}
