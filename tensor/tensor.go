// Copyright 2025 Covar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the array types underlying the
// covar kernel library: shapes with NumPy-style broadcasting, element types,
// raw and generic tensors, and the Backend capability contract that any
// array implementation can satisfy.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
//	y := x.Mul(x)
package tensor

import (
	"github.com/x448/float16"

	"github.com/covar-ml/covar/internal/tensor"
)

// DType is a constraint for tensor element types used in computation.
// Supported types: float32, float64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DimUnknown marks a statically unknown dimension in shape algebra.
const DimUnknown = tensor.DimUnknown

// ShapeError reports shapes that cannot be broadcast or otherwise combined.
type ShapeError = tensor.ShapeError

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Backend is the capability contract array backends implement: broadcasting
// elementwise arithmetic, exponential, trailing-axis reduction, shape
// manipulation, dtype conversion, and an ordered positivity assertion.
type Backend = tensor.Backend

// Tensor is a generic type-safe tensor over element type T and backend B.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new zero-initialized RawTensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a tensor from a Go slice, copying the data.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar[T, B](value, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// FromFloat16 creates a tensor of compute type T from half-precision values.
func FromFloat16[T DType, B Backend](data []float16.Float16, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromFloat16[T, B](data, shape, b)
}

// BroadcastShapes computes the NumPy-style broadcast of two fully known
// shapes. The boolean reports whether any dimension needs stretching.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// BroadcastShapesPartial computes the broadcast of two possibly partially
// known shapes; DimUnknown propagates unless the other operand resolves it.
func BroadcastShapesPartial(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapesPartial(a, b)
}

// PadRightWithOnes appends k trailing dimensions of size 1 to a shape.
func PadRightWithOnes(s Shape, k int) Shape {
	return tensor.PadRightWithOnes(s, k)
}
