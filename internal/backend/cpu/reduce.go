package cpu

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// SumTrailing sums the trailing ndims dimensions of x, reducing its rank by
// ndims. Leading dimensions are unchanged in order and size; ndims == 0
// returns a copy. Works for any leading rank, including zero (full reduction
// to a scalar).
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3, 4}, tensor.Float64)
//	y := backend.SumTrailing(x, 2) // shape: [2]
func (cpu *CPUBackend) SumTrailing(x *tensor.RawTensor, ndims int) *tensor.RawTensor {
	shape := x.Shape()
	rank := len(shape)

	if ndims < 0 || ndims > rank {
		panic(fmt.Sprintf("sumtrailing: cannot reduce %d trailing dimensions of a %dD tensor", ndims, rank))
	}

	outShape := shape[:rank-ndims].Clone()

	result, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sumtrailing: %v", err))
	}

	// Trailing axes are contiguous in row-major layout, so the reduction is
	// a plain segmented sum.
	inner := 1
	for _, dim := range shape[rank-ndims:] {
		inner *= dim
	}

	switch x.DType() {
	case tensor.Float32:
		sumTrailingFloat32(x.AsFloat32(), result.AsFloat32(), inner)
	case tensor.Float64:
		sumTrailingFloat64(x.AsFloat64(), result.AsFloat64(), inner)
	default:
		panic(fmt.Sprintf("sumtrailing: unsupported dtype %s (cast to float32/float64 first)", x.DType()))
	}

	return result
}

func sumTrailingFloat32(src, dst []float32, inner int) {
	for i := range dst {
		var sum float32
		for j := i * inner; j < (i+1)*inner; j++ {
			sum += src[j]
		}
		dst[i] = sum
	}
}

func sumTrailingFloat64(src, dst []float64, inner int) {
	for i := range dst {
		var sum float64
		for j := i * inner; j < (i+1)*inner; j++ {
			sum += src[j]
		}
		dst[i] = sum
	}
}
