// Package cpu implements the eager pure Go CPU backend for the tensor
// capability contract.
package cpu

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// CPUBackend implements tensor operations on CPU in pure Go.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addVectorized, addWithBroadcast)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subVectorized, subWithBroadcast)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulVectorized, mulWithBroadcast)
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754 (Inf/NaN results, no error).
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, divVectorized, divWithBroadcast)
}

// binaryOp validates shapes, allocates the result and dispatches to the
// same-shape fast path or the broadcasting path. Callers are expected to
// pre-validate shapes through the shape algebra; a mismatch here is a
// violated invariant.
func (cpu *CPUBackend) binaryOp(
	op string,
	a, b *tensor.RawTensor,
	vectorized func(result, a, b *tensor.RawTensor),
	broadcast func(result, a, b *tensor.RawTensor, outShape tensor.Shape),
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		vectorized(result, a, b)
	} else {
		broadcast(result, a, b, outShape)
	}

	return result
}
