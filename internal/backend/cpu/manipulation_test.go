package cpu

import (
	"testing"

	"github.com/ndfold/ndfold/internal/tensor"
)

func TestReshape(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())
	xData := x.AsFloat32()
	for i := range xData {
		xData[i] = float32(i)
	}

	y := backend.Reshape(x, tensor.Shape{3, 2})
	if !y.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("Expected shape [3, 2], got %v", y.Shape())
	}
	for i, v := range y.AsFloat32() {
		if v != float32(i) {
			t.Errorf("data changed at %d: got %v", i, v)
		}
	}
}

func TestReshapeToScalar(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{1}, tensor.Float64, backend.Device())
	x.AsFloat64()[0] = 42

	y := backend.Reshape(x, tensor.Shape{})
	if len(y.Shape()) != 0 {
		t.Errorf("Expected scalar shape, got %v", y.Shape())
	}
	if y.AsFloat64()[0] != 42 {
		t.Errorf("Expected 42, got %v", y.AsFloat64()[0])
	}
}

func TestReshapePanicsOnElementMismatch(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for element count mismatch")
		}
	}()
	backend.Reshape(x, tensor.Shape{4, 2})
}

func TestTranspose2D(t *testing.T) {
	backend := New()

	// [[1, 2, 3], [4, 5, 6]]
	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())
	xData := x.AsFloat32()
	for i := range xData {
		xData[i] = float32(i + 1)
	}

	y := backend.Transpose(x)
	if !y.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("Expected shape [3, 2], got %v", y.Shape())
	}

	// [[1, 4], [2, 5], [3, 6]]
	expected := []float32{1, 4, 2, 5, 3, 6}
	for i, v := range y.AsFloat32() {
		if v != expected[i] {
			t.Errorf("y[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTransposeInt64(t *testing.T) {
	backend := New()

	// The transpose kernel moves raw bytes, so every dtype must survive it.
	x, _ := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Int64, backend.Device())
	xData := x.AsInt64()
	xData[0], xData[1], xData[2], xData[3] = 1, 2, 3, 4

	y := backend.Transpose(x)
	expected := []int64{1, 3, 2, 4}
	for i, v := range y.AsInt64() {
		if v != expected[i] {
			t.Errorf("y[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestTransposePanicsOnDuplicateAxis(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate axis")
		}
	}()
	backend.Transpose(x, 0, 0)
}

func TestMoveaxis(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float32, backend.Device())
	xData := x.AsFloat32()
	for i := range xData {
		xData[i] = float32(i)
	}

	y := backend.Moveaxis(x, 2, 0)
	if !y.Shape().Equal(tensor.Shape{4, 2, 3}) {
		t.Errorf("Expected shape [4, 2, 3], got %v", y.Shape())
	}

	// y[k][i][j] == x[i][j][k]
	yData := y.AsFloat32()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				got := yData[k*6+i*3+j]
				want := xData[i*12+j*4+k]
				if got != want {
					t.Errorf("y[%d][%d][%d] = %v, want %v", k, i, j, got, want)
				}
			}
		}
	}
}

func TestMoveaxisIdentity(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())
	xData := x.AsFloat32()
	for i := range xData {
		xData[i] = float32(i)
	}

	y := backend.Moveaxis(x, 0, 0)
	if !y.Shape().Equal(x.Shape()) {
		t.Errorf("Expected shape %v, got %v", x.Shape(), y.Shape())
	}
	for i, v := range y.AsFloat32() {
		if v != xData[i] {
			t.Errorf("y[%d] = %v, want %v", i, v, xData[i])
		}
	}
}

func TestExpandDims(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, backend.Device())

	tests := []struct {
		axes []int
		want tensor.Shape
	}{
		{[]int{0}, tensor.Shape{1, 2, 3}},
		{[]int{1}, tensor.Shape{2, 1, 3}},
		{[]int{2}, tensor.Shape{2, 3, 1}},
		{[]int{0, 2}, tensor.Shape{1, 2, 1, 3}},
		{[]int{0, 1, 4}, tensor.Shape{1, 1, 2, 3, 1}},
	}

	for _, tt := range tests {
		y := backend.ExpandDims(x, tt.axes)
		if !y.Shape().Equal(tt.want) {
			t.Errorf("ExpandDims(axes=%v) shape = %v, want %v", tt.axes, y.Shape(), tt.want)
		}
	}
}

func TestExpandDimsScalar(t *testing.T) {
	backend := New()

	x, _ := tensor.NewRaw(tensor.Shape{}, tensor.Float64, backend.Device())
	x.AsFloat64()[0] = 21

	y := backend.ExpandDims(x, []int{0})
	if !y.Shape().Equal(tensor.Shape{1}) {
		t.Errorf("Expected shape [1], got %v", y.Shape())
	}
	if y.AsFloat64()[0] != 21 {
		t.Errorf("Expected 21, got %v", y.AsFloat64()[0])
	}
}
