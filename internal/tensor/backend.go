package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The axis reducer (Reduce) is written entirely against this interface:
// it needs axis permutation (Moveaxis), Reshape, the generic Fold, batch
// dimension insertion (ExpandDims) and Cast. The element-wise operations
// double as ready-made combining functions: a method value such as
// backend.Add satisfies ReduceFunc directly.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
//   - MockBackend: naive float64 reference implementation for tests
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Moveaxis moves the axis at position src to position dst, keeping all
	// other axes in their original relative order. Negative indices count
	// from the end.
	Moveaxis(t *RawTensor, src, dst int) *RawTensor

	// ExpandDims inserts size-one dimensions at the given positions of the
	// result shape, all in one batch so earlier insertions cannot shift the
	// positions of later ones.
	ExpandDims(t *RawTensor, axes []int) *RawTensor

	// Fold reduces a 2-D tensor along its leading dimension: the combining
	// function is applied as acc = fn(acc, row) for every row in order,
	// with acc seeded from init. The accumulator's dtype is free to drift
	// from the input's; callers cast afterwards if they care.
	Fold(fn ReduceFunc, x, init *RawTensor) *RawTensor

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
