// Copyright 2025 Covar Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernels provides the public API for batched, broadcastable
// positive-semidefinite kernel (covariance) functions, as used by
// Gaussian-process and kernel-method models.
//
// Example:
//
//	backend := cpu.New()
//	amp := tensor.Scalar(2.0, backend)
//	k, _ := kernels.NewExponentiatedQuadratic(amp, nil)
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, backend)
//	cov, _ := k.Matrix(x, x) // shape: [3, 3]
package kernels

import (
	"gonum.org/v1/gonum/mat"

	"github.com/covar-ml/covar/internal/kernels"
	"github.com/covar-ml/covar/tensor"
)

// Kernel is the capability contract every kernel implementation satisfies:
// feature dimensionality, static and dynamic batch shape, pairwise
// evaluation (Apply) and full-matrix evaluation (Matrix).
type Kernel[T tensor.DType, B tensor.Backend] = kernels.Kernel[T, B]

// ExponentiatedQuadratic is the squared-exponential (RBF) kernel.
type ExponentiatedQuadratic[T tensor.DType, B tensor.Backend] = kernels.ExponentiatedQuadratic[T, B]

// ValidationError reports a parameter that failed a runtime validity check.
type ValidationError = kernels.ValidationError

// TypeMismatchError reports parameters that do not share one element type.
type TypeMismatchError = kernels.TypeMismatchError

// Option configures a kernel at construction time.
type Option = kernels.Option

// WithFeatureNdims sets how many trailing input dimensions form one feature
// vector (default 1).
func WithFeatureNdims(n int) Option {
	return kernels.WithFeatureNdims(n)
}

// WithValidateArgs enables runtime positivity checks on kernel parameters.
func WithValidateArgs() Option {
	return kernels.WithValidateArgs()
}

// WithName sets the kernel's diagnostic label.
func WithName(name string) Option {
	return kernels.WithName(name)
}

// NewExponentiatedQuadratic constructs an exponentiated-quadratic kernel.
// Both parameters are optional: nil amplitude applies no scaling and nil
// lengthScale applies no rescaling of the distance.
func NewExponentiatedQuadratic[T tensor.DType, B tensor.Backend](
	amplitude, lengthScale *tensor.Tensor[T, B],
	opts ...Option,
) (*ExponentiatedQuadratic[T, B], error) {
	return kernels.NewExponentiatedQuadratic(amplitude, lengthScale, opts...)
}

// SumRightmostNdims reduces the trailing featureNdims dimensions of x,
// leaving leading dimensions untouched. Exposed for kernel implementers.
func SumRightmostNdims[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], featureNdims int) *tensor.Tensor[T, B] {
	return kernels.SumRightmostNdims(x, featureNdims)
}

// PadShapeRightWithOnes reshapes x so its shape gains ndims trailing
// singleton axes. Exposed for kernel implementers.
func PadShapeRightWithOnes[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	return kernels.PadShapeRightWithOnes(x, ndims)
}

// ToDense converts a rank-2 kernel matrix tensor into a gonum *mat.Dense.
func ToDense[T tensor.DType, B tensor.Backend](m *tensor.Tensor[T, B]) (*mat.Dense, error) {
	return kernels.ToDense(m)
}

// ToSymDense evaluates Matrix(x, x) and returns the result as a gonum
// *mat.SymDense for downstream Cholesky-based Gaussian-process math.
func ToSymDense[T tensor.DType, B tensor.Backend](k Kernel[T, B], x *tensor.Tensor[T, B]) (*mat.SymDense, error) {
	return kernels.ToSymDense(k, x)
}
