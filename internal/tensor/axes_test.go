package tensor

import "testing"

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		axis, ndim int
		want       int
		wantErr    bool
	}{
		{0, 3, 0, false},
		{2, 3, 2, false},
		{-1, 3, 2, false},
		{-3, 3, 0, false},
		{3, 3, 0, true},
		{-4, 3, 0, true},
	}

	for _, tt := range tests {
		got, err := NormalizeAxis(tt.axis, tt.ndim)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeAxis(%d, %d): expected error", tt.axis, tt.ndim)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAxis(%d, %d): unexpected error %v", tt.axis, tt.ndim, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeAxis(%d, %d) = %d, want %d", tt.axis, tt.ndim, got, tt.want)
		}
	}
}

func TestMoveaxisPermutation(t *testing.T) {
	tests := []struct {
		ndim, src, dst int
		want           []int
	}{
		{3, 0, 0, []int{0, 1, 2}},
		{3, 2, 0, []int{2, 0, 1}},
		{3, 0, 2, []int{1, 2, 0}},
		{4, 1, 3, []int{0, 2, 3, 1}},
		{3, -1, 0, []int{2, 0, 1}},
	}

	for _, tt := range tests {
		got, err := MoveaxisPermutation(tt.ndim, tt.src, tt.dst)
		if err != nil {
			t.Errorf("MoveaxisPermutation(%d, %d, %d): unexpected error %v", tt.ndim, tt.src, tt.dst, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("MoveaxisPermutation(%d, %d, %d) = %v, want %v", tt.ndim, tt.src, tt.dst, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MoveaxisPermutation(%d, %d, %d) = %v, want %v", tt.ndim, tt.src, tt.dst, got, tt.want)
				break
			}
		}
	}
}

func TestMoveaxisPermutationOutOfRange(t *testing.T) {
	if _, err := MoveaxisPermutation(3, 3, 0); err == nil {
		t.Error("expected error for source axis out of range")
	}
	if _, err := MoveaxisPermutation(3, 0, -4); err == nil {
		t.Error("expected error for destination axis out of range")
	}
}

func TestExpandDimsShape(t *testing.T) {
	tests := []struct {
		shape Shape
		axes  []int
		want  Shape
	}{
		{Shape{2, 3}, []int{0}, Shape{1, 2, 3}},
		{Shape{2, 3}, []int{1}, Shape{2, 1, 3}},
		{Shape{2, 3}, []int{2}, Shape{2, 3, 1}},
		{Shape{3}, []int{0, 2}, Shape{1, 3, 1}},
		{Shape{}, []int{0}, Shape{1}},
		{Shape{2}, []int{-1}, Shape{2, 1}},
	}

	for _, tt := range tests {
		got, err := ExpandDimsShape(tt.shape, tt.axes)
		if err != nil {
			t.Errorf("ExpandDimsShape(%v, %v): unexpected error %v", tt.shape, tt.axes, err)
			continue
		}
		assertEqualShape(t, tt.want, got, "ExpandDimsShape")
	}
}

func TestExpandDimsShapeErrors(t *testing.T) {
	if _, err := ExpandDimsShape(Shape{2}, []int{3}); err == nil {
		t.Error("expected error for axis out of range")
	}
	if _, err := ExpandDimsShape(Shape{2}, []int{0, 0}); err == nil {
		t.Error("expected error for duplicate axis")
	}
}
