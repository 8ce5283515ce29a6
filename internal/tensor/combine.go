package tensor

import "fmt"

// ReduceFunc is a binary combining function for folds: it merges an
// accumulator with the next slice along the fold dimension and returns the
// new accumulator. The two arguments follow broadcasting rules, so a 0-D
// seed combines with a 1-D row into a 1-D accumulator.
//
// A ReduceFunc must be pure and associative enough that left-folding over a
// flattened axis is well defined; Reduce does not verify this.
type ReduceFunc func(acc, x *RawTensor) *RawTensor

// Canonical combining functions. These are the implementations the combiner
// registry resolves convenience aliases to; they are also usable directly.
// All of them broadcast and keep the accumulator's dtype.

// CombineAdd combines by element-wise addition.
func CombineAdd(acc, x *RawTensor) *RawTensor {
	return combine(acc, x, func(a, b float64) float64 { return a + b })
}

// CombineMul combines by element-wise multiplication.
func CombineMul(acc, x *RawTensor) *RawTensor {
	return combine(acc, x, func(a, b float64) float64 { return a * b })
}

// CombineMax combines by element-wise maximum.
func CombineMax(acc, x *RawTensor) *RawTensor {
	return combine(acc, x, func(a, b float64) float64 {
		if b > a {
			return b
		}
		return a
	})
}

// CombineMin combines by element-wise minimum.
func CombineMin(acc, x *RawTensor) *RawTensor {
	return combine(acc, x, func(a, b float64) float64 {
		if b < a {
			return b
		}
		return a
	})
}

// combine performs a broadcasting element-wise binary operation through a
// float64 intermediate. The result keeps the accumulator's dtype. Not built
// for speed: backend kernels are the fast path, this is the reference one.
func combine(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("combine: %v", err))
	}

	result, err := NewRaw(outShape, a.DType(), a.Device())
	if err != nil {
		panic(fmt.Sprintf("combine: %v", err))
	}

	aData := toFloat64Slice(a)
	bData := toFloat64Slice(b)
	resultData := make([]float64, outShape.NumElements())

	for i := range resultData {
		aIdx := broadcastIndex(i, outShape, a.Shape())
		bIdx := broadcastIndex(i, outShape, b.Shape())
		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	fromFloat64Slice(resultData, result)
	return result
}

// toFloat64Slice widens a numeric tensor's data to float64.
func toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		return t.AsFloat64()
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

// fromFloat64Slice narrows float64 values back into the tensor's dtype.
func fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

// broadcastIndex maps a flat index into the broadcast output shape back to
// the flat index of the (possibly smaller) input shape.
func broadcastIndex(flatIdx int, outShape, inShape Shape) int {
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
		outDimIdx := indices[offset+i]

		// If input dimension is 1, always use index 0 (broadcasting)
		if inShape[i] == 1 {
			outDimIdx = 0
		}

		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}
