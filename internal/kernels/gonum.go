package kernels

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/covar-ml/covar/internal/tensor"
)

// ToDense converts a rank-2 kernel matrix tensor into a gonum *mat.Dense so
// it can feed gonum's linear algebra (solvers, decompositions).
func ToDense[T tensor.DType, B tensor.Backend](m *tensor.Tensor[T, B]) (*mat.Dense, error) {
	shape := m.Shape()
	if shape.Rank() != 2 {
		return nil, &tensor.ShapeError{
			Op: "to dense", A: shape.Clone(), Dim: -1,
			Details: fmt.Sprintf("rank %d tensor is not a matrix", shape.Rank()),
		}
	}

	data := make([]float64, m.NumElements())
	for i, v := range m.Data() {
		data[i] = float64(v)
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// ToSymDense evaluates Matrix(x, x) for an unbatched kernel and returns the
// result as a gonum *mat.SymDense, the form expected by gonum's Cholesky
// decomposition for Gaussian-process posteriors.
func ToSymDense[T tensor.DType, B tensor.Backend](k Kernel[T, B], x *tensor.Tensor[T, B]) (*mat.SymDense, error) {
	m, err := k.Matrix(x, x)
	if err != nil {
		return nil, err
	}

	shape := m.Shape()
	if shape.Rank() != 2 || shape[0] != shape[1] {
		return nil, &tensor.ShapeError{
			Op: "to symmetric", A: shape.Clone(), Dim: -1,
			Details: "batched kernels produce rank > 2 matrices; evaluate one batch at a time",
		}
	}

	n := shape[0]
	data := make([]float64, n*n)
	for i, v := range m.Data() {
		data[i] = float64(v)
	}
	return mat.NewSymDense(n, data), nil
}
