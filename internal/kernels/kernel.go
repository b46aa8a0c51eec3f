// Package kernels implements batched, broadcastable positive-semidefinite
// kernel (covariance) functions over the tensor capability contract.
//
// A kernel's parameters each carry a "batch shape"; the broadcast of all
// parameter shapes determines how many independent kernel instances are
// evaluated in parallel. Inputs carry leading "example"/batch dimensions and
// trailing feature dimensions; pairwise evaluation broadcasts input batch
// dimensions against each other and against the kernel batch shape.
package kernels

import (
	"github.com/covar-ml/covar/internal/tensor"
)

// Kernel is the capability contract every kernel implementation satisfies.
//
// Kernels are immutable after construction and every evaluation is a pure
// function of its inputs and the kernel's parameters.
type Kernel[T tensor.DType, B tensor.Backend] interface {
	// FeatureNdims returns how many trailing dimensions of an input tensor
	// constitute one feature vector. Fixed at construction.
	FeatureNdims() int

	// Name returns the kernel's diagnostic label. No behavioral effect.
	Name() string

	// BatchShape returns the static broadcast shape of the kernel's
	// parameters. May contain tensor.DimUnknown under deferred backends.
	BatchShape() tensor.Shape

	// BatchShapeDynamic returns the runtime broadcast shape of the kernel's
	// parameters, always fully known.
	BatchShapeDynamic() tensor.Shape

	// Apply evaluates the kernel pairwise: one scalar for each aligned pair
	// of feature vectors from the broadcast of x1 and x2. Output shape is
	// broadcast(leading(x1), leading(x2), BatchShape()).
	Apply(x1, x2 *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)

	// Matrix evaluates the full cross-covariance: the dimension immediately
	// preceding the feature dimensions of each input is treated as an
	// example index, and the result holds the kernel value for every pair
	// of examples. Output shape is batch dims followed by [n1, n2].
	Matrix(x1, x2 *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)
}

// allPairs expands x1 and x2 to the all-pairs grid used by Matrix: x1 gains a
// singleton axis after its example dimension, x2 gains one before its example
// dimension, so broadcasting forms every (example, example) combination.
// Parameters must then be padded with two trailing singleton axes to align.
func allPairs[T tensor.DType, B tensor.Backend](x1, x2 *tensor.Tensor[T, B], featureNdims int) (*tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	e1 := x1.Unsqueeze(-(featureNdims + 1))
	e2 := x2.Unsqueeze(-(featureNdims + 2))
	return e1, e2
}

// matrixExtraNdims is the number of all-pairs axes introduced by Matrix (one
// example-index axis from each input).
const matrixExtraNdims = 2
