package cpu

import (
	"fmt"

	"github.com/ndfold/ndfold/internal/tensor"
)

// Fold reduces a 2-D tensor along its leading dimension: acc starts as init
// and is combined with every row in order, acc = fn(acc, row). Each row is
// handed to fn as a fresh 1-D tensor, so fn may keep or mutate it freely.
//
// The accumulator's dtype follows whatever fn returns; Fold itself never
// converts.
//
// Example:
//
//	flat, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, backend.Device())
//	sums := backend.Fold(backend.Add, flat, zero) // one value per column
func (cpu *CPUBackend) Fold(fn tensor.ReduceFunc, x, init *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("fold: expected 2-D input, got shape %v", shape))
	}
	if fn == nil {
		panic("fold: nil combining function")
	}

	rows, cols := shape[0], shape[1]
	rowBytes := cols * x.DType().Size()
	src := x.Data()

	acc := init
	for i := 0; i < rows; i++ {
		row, err := tensor.NewRaw(tensor.Shape{cols}, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("fold: %v", err))
		}
		copy(row.Data(), src[i*rowBytes:(i+1)*rowBytes])
		acc = fn(acc, row)
	}
	return acc
}
