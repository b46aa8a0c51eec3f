package cpu

import (
	"fmt"
	"math"

	"github.com/covar-ml/covar/internal/tensor"
)

// AssertPositive fails if any element of x is not strictly greater than zero.
// NaN is treated as a violation. The backend is eager, so the check runs
// immediately and is therefore ordered before any downstream use of x.
func (cpu *CPUBackend) AssertPositive(x *tensor.RawTensor) error {
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
			return fmt.Errorf("assert positive: unsupported dtype %s", x.DType())
		}
		if math.IsNaN(v) || v <= 0 {
			return fmt.Errorf("assert positive: element %d is %v, must be > 0", i, v)
		}
	}
	return nil
}
