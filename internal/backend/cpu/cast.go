package cpu

import (
	"fmt"

	"github.com/ndfold/ndfold/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Casting to the tensor's own dtype is a no-op and returns x unchanged.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch dtype {
	case tensor.Float32:
		castTo(result.AsFloat32(), x)
	case tensor.Float64:
		castTo(result.AsFloat64(), x)
	case tensor.Int32:
		castTo(result.AsInt32(), x)
	case tensor.Int64:
		castTo(result.AsInt64(), x)
	case tensor.Uint8:
		castTo(result.AsUint8(), x)
	case tensor.Bool:
		castToBool(result.AsBool(), x)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}

// numeric covers every castable numeric dtype.
type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// castTo converts x's elements directly into dst, one typed loop per source
// dtype so integer precision is never routed through float64.
//
//nolint:gocyclo,cyclop // One branch per source dtype.
func castTo[D numeric](dst []D, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			dst[i] = D(v)
		}
	case tensor.Float64:
		for i, v := range x.AsFloat64() {
			dst[i] = D(v)
		}
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			dst[i] = D(v)
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			dst[i] = D(v)
		}
	case tensor.Uint8:
		for i, v := range x.AsUint8() {
			dst[i] = D(v)
		}
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				dst[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
}

// castToBool maps non-zero values to true.
func castToBool(dst []bool, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			dst[i] = v != 0
		}
	case tensor.Float64:
		for i, v := range x.AsFloat64() {
			dst[i] = v != 0
		}
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			dst[i] = v != 0
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			dst[i] = v != 0
		}
	case tensor.Uint8:
		for i, v := range x.AsUint8() {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}
}
