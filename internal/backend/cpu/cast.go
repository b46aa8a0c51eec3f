package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/covar-ml/covar/internal/tensor"
)

// Cast converts x to a different data type.
// Float16 values convert through IEEE 754 half precision; converting a
// compute dtype to Float16 rounds to nearest even.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), dtype)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	if x.DType() == dtype {
		copy(result.Data(), x.Data())
		return result
	}

	n := x.NumElements()
	for i := 0; i < n; i++ {
		var v float64
		switch x.DType() {
		case tensor.Float16:
			v = float64(x.AsFloat16()[i].Float32())
		case tensor.Float32:
			v = float64(x.AsFloat32()[i])
		case tensor.Float64:
			v = x.AsFloat64()[i]
		default:
			panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
		}

		switch dtype {
		case tensor.Float16:
			result.AsFloat16()[i] = float16.Fromfloat32(float32(v))
		case tensor.Float32:
			result.AsFloat32()[i] = float32(v)
		case tensor.Float64:
			result.AsFloat64()[i] = v
		default:
			panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
		}
	}

	return result
}
