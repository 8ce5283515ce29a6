package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend implements every backend operation naively through float64,
// trading speed for obviousness. The package tests run the reducer against
// it so the algorithm is exercised without a real backend.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return combine(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return combine(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return combine(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return combine(a, b, func(x, y float64) float64 { return x / y })
}

// Reshape returns a copy of t with a new shape of equal element count.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			t.NumElements(), newShape, newShape.NumElements()))
	}

	out, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	copy(out.Data(), t.Data())
	return out
}

// Transpose permutes t's dimensions. An empty axes list reverses them.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("axes length %d doesn't match tensor dimensions %d", len(axes), ndim))
	}

	outShape := make(Shape, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("axis %d out of bounds for tensor with %d dimensions", ax, ndim))
		}
		outShape[i] = shape[ax]
	}

	out, err := NewRaw(outShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	src := toFloat64Slice(t)
	dst := make([]float64, len(src))
	srcStrides := shape.ComputeStrides()
	dstStrides := outShape.ComputeStrides()

	for i := range src {
		// Decompose the source index into per-axis coordinates, then
		// re-flatten them in permuted order.
		rem := i
		j := 0
		for d, stride := range srcStrides {
			coord := rem / stride
			rem %= stride
			for k, ax := range axes {
				if ax == d {
					j += coord * dstStrides[k]
				}
			}
		}
		dst[j] = src[i]
	}

	fromFloat64Slice(dst, out)
	return out
}

// Moveaxis moves axis src to position dst.
func (m *MockBackend) Moveaxis(t *RawTensor, src, dst int) *RawTensor {
	order, err := MoveaxisPermutation(len(t.Shape()), src, dst)
	if err != nil {
		panic(err)
	}
	return m.Transpose(t, order...)
}

// ExpandDims inserts size-one dimensions at the given result positions.
func (m *MockBackend) ExpandDims(t *RawTensor, axes []int) *RawTensor {
	newShape, err := ExpandDimsShape(t.Shape(), axes)
	if err != nil {
		panic(err)
	}
	return m.Reshape(t, newShape)
}

// Fold reduces a 2-D tensor along its leading dimension.
func (m *MockBackend) Fold(fn ReduceFunc, x, init *RawTensor) *RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("fold: expected 2-D input, got shape %v", shape))
	}

	rows, cols := shape[0], shape[1]
	rowBytes := cols * x.DType().Size()

	acc := init
	for i := 0; i < rows; i++ {
		row, err := NewRaw(Shape{cols}, x.DType(), m.Device())
		if err != nil {
			panic(err)
		}
		copy(row.Data(), x.Data()[i*rowBytes:(i+1)*rowBytes])
		acc = fn(acc, row)
	}
	return acc
}

// Cast converts the tensor to a different data type, through float64.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	if x.DType() == dtype {
		return x
	}

	out, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}
	fromFloat64Slice(toFloat64Slice(x), out)
	return out
}
