package tensor

// Typed wrappers over the backend operations. Each returns a fresh tensor
// on the receiver's backend; inputs are never modified.

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // shape [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// Reshape returns a tensor with the same data and a new shape of equal
// element count.
//
// Example:
//
//	t := tensor.Arange[int32](0, 12, backend) // shape [12]
//	r := t.Reshape(3, 4)                      // shape [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, Shape(newShape)), t.backend)
}

// Transpose permutes the tensor's dimensions. An empty axes list reverses
// them, which for 2-D is the standard matrix transpose.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// Moveaxis moves one axis to a new position, keeping the relative order of
// the remaining axes.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3, 4}, backend)
//	m := t.Moveaxis(2, 0) // shape [4, 2, 3]
func (t *Tensor[T, B]) Moveaxis(src, dst int) *Tensor[T, B] {
	return New[T, B](t.backend.Moveaxis(t.raw, src, dst), t.backend)
}

// ExpandDims inserts size-one dimensions at the given positions of the
// result shape.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3}, backend)
//	e := t.ExpandDims(0, 2) // shape [1, 2, 1, 3]
func (t *Tensor[T, B]) ExpandDims(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.ExpandDims(t.raw, axes), t.backend)
}

// Float32 casts the tensor to float32 dtype.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	return New[float32, B](t.backend.Cast(t.raw, Float32), t.backend)
}

// Float64 casts the tensor to float64 dtype.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	return New[float64, B](t.backend.Cast(t.raw, Float64), t.backend)
}

// Int32 casts the tensor to int32 dtype.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	return New[int32, B](t.backend.Cast(t.raw, Int32), t.backend)
}

// Int64 casts the tensor to int64 dtype.
func (t *Tensor[T, B]) Int64() *Tensor[int64, B] {
	return New[int64, B](t.backend.Cast(t.raw, Int64), t.backend)
}
