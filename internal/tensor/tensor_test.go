package tensor

import (
	"math"
	"testing"
)

// Assertion helpers shared by the package tests.

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertEqualFloat64Slice(t *testing.T, expected, actual []float64, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
		return
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", msg, expected, actual)
			return
		}
	}
}

func TestDataTypeSizeAndString(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Bool, 1, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.name, got, tt.size)
		}
		if got := tt.dtype.String(); got != tt.name {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.dtype), got, tt.name)
		}
	}
}

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice shape")
	if x.DType() != Float64 {
		t.Errorf("dtype = %s, want float64", x.DType())
	}
	assertEqualFloat64(t, 6, x.At(1, 2), "FromSlice At(1,2)")

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}, backend); err == nil {
		t.Error("expected error for data/shape length mismatch")
	}
}

func TestCreationFills(t *testing.T) {
	backend := NewMockBackend()

	for i, v := range Zeros[float32](Shape{2, 2}, backend).Data() {
		if v != 0 {
			t.Errorf("Zeros[%d] = %v, want 0", i, v)
		}
	}
	for i, v := range Ones[float32](Shape{2, 2}, backend).Data() {
		if v != 1 {
			t.Errorf("Ones[%d] = %v, want 1", i, v)
		}
	}
	for i, v := range Full[int32](Shape{3}, 7, backend).Data() {
		if v != 7 {
			t.Errorf("Full[%d] = %v, want 7", i, v)
		}
	}
	for i, v := range Ones[bool](Shape{2}, backend).Data() {
		if !v {
			t.Errorf("Ones[bool][%d] = false, want true", i)
		}
	}
}

func TestScalar(t *testing.T) {
	backend := NewMockBackend()
	s := Scalar(3.5, backend)

	assertEqualShape(t, Shape{}, s.Shape(), "Scalar shape")
	if s.NumElements() != 1 {
		t.Errorf("Scalar NumElements = %d, want 1", s.NumElements())
	}
	assertEqualFloat64(t, 3.5, s.Item(), "Scalar Item")
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()

	x := Arange[int32](2, 7, backend)
	assertEqualShape(t, Shape{5}, x.Shape(), "Arange shape")
	for i, v := range x.Data() {
		if want := int32(i + 2); v != want {
			t.Errorf("Arange[%d] = %v, want %v", i, v, want)
		}
	}

	f := Arange[float64](0, 4, backend)
	assertEqualFloat64Slice(t, []float64{0, 1, 2, 3}, f.Data(), "float Arange")
}

func TestAtSet(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2, 3}, backend)

	x.Set(42, 1, 1)
	assertEqualFloat64(t, 42, x.At(1, 1), "At after Set")
	assertEqualFloat64(t, 0, x.At(0, 1), "untouched element")
}

func TestAtPanicsOnBadIndices(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2, 3}, backend)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds index")
		}
	}()
	x.At(2, 0)
}

func TestCloneSharesBuffer(t *testing.T) {
	backend := NewMockBackend()
	x, err := FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if !x.Raw().IsUnique() {
		t.Error("fresh tensor should be unique")
	}

	c := x.Clone()
	if x.Raw().IsUnique() {
		t.Error("tensor should not be unique after Clone")
	}
	assertEqualFloat64(t, 2, c.At(1), "clone data")

	c.Raw().Release()
	if !x.Raw().IsUnique() {
		t.Error("tensor should be unique again after clone released")
	}
}

func TestForceNonUnique(t *testing.T) {
	backend := NewMockBackend()
	x := Zeros[float64](Shape{2}, backend)

	restore := x.Raw().ForceNonUnique()
	if x.Raw().IsUnique() {
		t.Error("tensor should not be unique while pinned")
	}
	restore()
	if !x.Raw().IsUnique() {
		t.Error("tensor should be unique after restore")
	}
}
