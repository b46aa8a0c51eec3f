package cpu

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// Reshape returns a view of x with a new shape.
// The new shape must describe the same number of elements.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := x.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing: for a tensor of rank n the valid range is
// [-(n+1), n]. This is a view operation (reshape).
//
// Example:
//
//	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64)
//	y := backend.Unsqueeze(x, 1) // shape: [2, 1, 3]
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	// Normalize negative dimension (for unsqueeze, valid range is [0, ndim])
	if dim < 0 {
		dim = ndim + 1 + dim
	}

	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor (valid: [0, %d])", dim, ndim, ndim))
	}

	newShape := make(tensor.Shape, ndim+1)
	copy(newShape, shape[:dim])
	newShape[dim] = 1
	copy(newShape[dim+1:], shape[dim:])

	return cpu.Reshape(x, newShape)
}
