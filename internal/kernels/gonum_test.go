package kernels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	cpu "github.com/covar-ml/covar/internal/backend/cpu"
	"github.com/covar-ml/covar/internal/kernels"
	"github.com/covar-ml/covar/internal/tensor"
)

func TestToDense(t *testing.T) {
	backend := cpu.New()
	m, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	dense, err := kernels.ToDense(m)
	require.NoError(t, err)

	rows, cols := dense.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, dense.At(1, 2))
}

func TestToDenseRejectsNonMatrix(t *testing.T) {
	backend := cpu.New()
	v, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	_, err = kernels.ToDense(v)
	require.Error(t, err)
	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestToSymDense(t *testing.T) {
	backend := cpu.New()
	k, err := kernels.NewExponentiatedQuadratic[float64, *cpu.CPUBackend](
		nil, tensor.Scalar(1.5, backend))
	require.NoError(t, err)

	x, err := tensor.FromSlice([]float64{0, 0, 1, 1, 2, 0}, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	sym, err := kernels.ToSymDense(k, x)
	require.NoError(t, err)
	require.Equal(t, 3, sym.SymmetricDim())

	// Unit diagonal, symmetric off-diagonal, and positive definite enough
	// for a Cholesky factorization.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, sym.At(i, i))
		for j := 0; j < i; j++ {
			assert.Equal(t, sym.At(j, i), sym.At(i, j))
		}
	}

	var chol mat.Cholesky
	assert.True(t, chol.Factorize(sym))
}

func TestToSymDenseRejectsBatchedKernel(t *testing.T) {
	backend := cpu.New()
	amplitude, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	k, err := kernels.NewExponentiatedQuadratic[float64, *cpu.CPUBackend](amplitude, nil)
	require.NoError(t, err)

	x, err := tensor.FromSlice([]float64{0, 1, 2, 3}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	_, err = kernels.ToSymDense(k, x)
	require.Error(t, err)
	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
