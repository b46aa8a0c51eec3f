package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covar-ml/covar/internal/tensor"
)

func TestSumTrailing(t *testing.T) {
	backend := New()

	// [[1, 2, 3],
	//  [4, 5, 6]]
	x := rawFromFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	one := backend.SumTrailing(x, 1)
	assert.Equal(t, tensor.Shape{2}, one.Shape())
	assert.Equal(t, []float64{6, 15}, one.AsFloat64())

	all := backend.SumTrailing(x, 2)
	assert.Equal(t, tensor.Shape{}, all.Shape())
	assert.Equal(t, []float64{21}, all.AsFloat64())
}

func TestSumTrailingIdentity(t *testing.T) {
	backend := New()
	x := rawFromFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})

	got := backend.SumTrailing(x, 0)
	assert.Equal(t, tensor.Shape{3}, got.Shape())
	assert.Equal(t, []float64{1, 2, 3}, got.AsFloat64())
}

func TestSumTrailingScalarInput(t *testing.T) {
	backend := New()
	x := rawFromFloat64(t, []float64{5}, tensor.Shape{})

	got := backend.SumTrailing(x, 0)
	assert.Equal(t, tensor.Shape{}, got.Shape())
	assert.Equal(t, []float64{5}, got.AsFloat64())
}

func TestSumTrailingMultipleAxes(t *testing.T) {
	backend := New()

	// Shape [2, 2, 2]: reduce the last two axes per leading element.
	x := rawFromFloat64(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})

	got := backend.SumTrailing(x, 2)
	assert.Equal(t, tensor.Shape{2}, got.Shape())
	assert.Equal(t, []float64{10, 26}, got.AsFloat64())
}

func TestSumTrailingFloat32(t *testing.T) {
	backend := New()
	x := rawFromFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	got := backend.SumTrailing(x, 1)
	assert.Equal(t, []float32{3, 7}, got.AsFloat32())
}

func TestSumTrailingOutOfRangePanics(t *testing.T) {
	backend := New()
	x := rawFromFloat64(t, []float64{1, 2}, tensor.Shape{2})

	assert.Panics(t, func() { backend.SumTrailing(x, 2) })
	assert.Panics(t, func() { backend.SumTrailing(x, -1) })
}
