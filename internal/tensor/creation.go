package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, dtypeOf[T](), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Fresh buffers are already zeroed.
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones (true for bool).
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full(shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding a single value.
// Reduce uses this to wrap the initial value of a fold.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full(Shape{}, value, b)
}

// Arange creates a 1-D tensor counting from start to end (exclusive) in
// steps of one. Not available for bool.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	n := int(scalarFloat(end) - scalarFloat(start))
	if n <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{n}, b)
	switch data := any(t.Data()).(type) {
	case []float32:
		ramp(data, any(start).(float32))
	case []float64:
		ramp(data, any(start).(float64))
	case []int32:
		ramp(data, any(start).(int32))
	case []int64:
		ramp(data, any(start).(int64))
	case []uint8:
		ramp(data, any(start).(uint8))
	default:
		panic("Arange not supported for this type")
	}
	return t
}

// countable covers the element types Arange can step through.
type countable interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

func ramp[T countable](data []T, start T) {
	for i := range data {
		data[i] = start + T(i) //nolint:gosec // G115: i is within valid range.
	}
}

// scalarFloat widens a numeric element to float64.
func scalarFloat[T DType](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	default:
		panic("Arange not supported for this type")
	}
}

// one returns the multiplicative identity for T (true for bool).
func one[T DType]() T {
	var v any
	switch any(*new(T)).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	case bool:
		v = true
	}
	return v.(T)
}
