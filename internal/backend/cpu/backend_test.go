package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/covar-ml/covar/internal/tensor"
)

func rawFromFloat64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64)
	require.NoError(t, err)
	copy(raw.AsFloat64(), data)
	return raw
}

func rawFromFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32)
	require.NoError(t, err)
	copy(raw.AsFloat32(), data)
	return raw
}

func TestBinaryOpsSameShape(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{10, 20, 30, 40}, tensor.Shape{2, 2})
	b := rawFromFloat64(t, []float64{2, 4, 5, 8}, tensor.Shape{2, 2})

	assert.Equal(t, []float64{12, 24, 35, 48}, backend.Add(a, b).AsFloat64())
	assert.Equal(t, []float64{8, 16, 25, 32}, backend.Sub(a, b).AsFloat64())
	assert.Equal(t, []float64{20, 80, 150, 320}, backend.Mul(a, b).AsFloat64())
	assert.Equal(t, []float64{5, 5, 6, 5}, backend.Div(a, b).AsFloat64())
}

func TestBinaryOpsFloat32(t *testing.T) {
	backend := New()
	a := rawFromFloat32(t, []float32{1, 2}, tensor.Shape{2})
	b := rawFromFloat32(t, []float32{3, 5}, tensor.Shape{2})

	assert.Equal(t, []float32{4, 7}, backend.Add(a, b).AsFloat32())
	assert.Equal(t, []float32{3, 10}, backend.Mul(a, b).AsFloat32())
}

func TestBinaryOpsBroadcast(t *testing.T) {
	backend := New()

	// (3, 1) * (1, 4) → (3, 4)
	a := rawFromFloat64(t, []float64{1, 2, 3}, tensor.Shape{3, 1})
	b := rawFromFloat64(t, []float64{10, 20, 30, 40}, tensor.Shape{1, 4})

	result := backend.Mul(a, b)
	assert.Equal(t, tensor.Shape{3, 4}, result.Shape())
	assert.Equal(t, []float64{
		10, 20, 30, 40,
		20, 40, 60, 80,
		30, 60, 90, 120,
	}, result.AsFloat64())
}

func TestBinaryOpsScalarBroadcast(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	s := rawFromFloat64(t, []float64{10}, tensor.Shape{})

	result := backend.Add(a, s)
	assert.Equal(t, tensor.Shape{3}, result.Shape())
	assert.Equal(t, []float64{11, 12, 13}, result.AsFloat64())
}

func TestBinaryOpIncompatiblePanics(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawFromFloat64(t, []float64{1, 2}, tensor.Shape{2})

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestDivByZeroIsIEEE(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{1, 0}, tensor.Shape{2})
	b := rawFromFloat64(t, []float64{0, 0}, tensor.Shape{2})

	got := backend.Div(a, b).AsFloat64()
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsNaN(got[1]))
}

func TestMulScalar(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	assert.Equal(t, []float64{-0.5, -1, -1.5}, backend.MulScalar(a, -0.5).AsFloat64())

	f := rawFromFloat32(t, []float32{2, 4}, tensor.Shape{2})
	assert.Equal(t, []float32{1, 2}, backend.MulScalar(f, 0.5).AsFloat32())
}

func TestExp(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{0, 1, -1}, tensor.Shape{3})

	got := backend.Exp(a).AsFloat64()
	assert.Equal(t, float64(1), got[0])
	assert.InDelta(t, math.E, got[1], 1e-12)
	assert.InDelta(t, 1/math.E, got[2], 1e-12)
}

func TestReshapeAndUnsqueeze(t *testing.T) {
	backend := New()
	a := rawFromFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	r := backend.Reshape(a, tensor.Shape{3, 2})
	assert.Equal(t, tensor.Shape{3, 2}, r.Shape())
	assert.Equal(t, a.AsFloat64(), r.AsFloat64())

	assert.Equal(t, tensor.Shape{1, 2, 3}, backend.Unsqueeze(a, 0).Shape())
	assert.Equal(t, tensor.Shape{2, 1, 3}, backend.Unsqueeze(a, 1).Shape())
	assert.Equal(t, tensor.Shape{2, 3, 1}, backend.Unsqueeze(a, -1).Shape())
	assert.Equal(t, tensor.Shape{2, 1, 3}, backend.Unsqueeze(a, -2).Shape())

	assert.Panics(t, func() { backend.Reshape(a, tensor.Shape{4, 2}) })
	assert.Panics(t, func() { backend.Unsqueeze(a, 5) })
}

func TestCast(t *testing.T) {
	backend := New()

	f64 := rawFromFloat64(t, []float64{1.5, -2, 0.25}, tensor.Shape{3})
	f32 := backend.Cast(f64, tensor.Float32)
	assert.Equal(t, tensor.Float32, f32.DType())
	assert.Equal(t, []float32{1.5, -2, 0.25}, f32.AsFloat32())

	back := backend.Cast(f32, tensor.Float64)
	assert.Equal(t, []float64{1.5, -2, 0.25}, back.AsFloat64())

	half := backend.Cast(f64, tensor.Float16)
	assert.Equal(t, tensor.Float16, half.DType())
	assert.Equal(t, float32(1.5), half.AsFloat16()[0].Float32())

	roundTrip := backend.Cast(half, tensor.Float64)
	assert.Equal(t, []float64{1.5, -2, 0.25}, roundTrip.AsFloat64())
}

func TestCastFromFloat16(t *testing.T) {
	backend := New()
	raw, err := tensor.RawFromFloat16([]float16.Float16{float16.Fromfloat32(3)}, tensor.Shape{1})
	require.NoError(t, err)

	got := backend.Cast(raw, tensor.Float32)
	assert.Equal(t, []float32{3}, got.AsFloat32())
}

func TestAssertPositive(t *testing.T) {
	backend := New()

	ok := rawFromFloat64(t, []float64{0.1, 2, 3}, tensor.Shape{3})
	assert.NoError(t, backend.AssertPositive(ok))

	negative := rawFromFloat64(t, []float64{1, -1}, tensor.Shape{2})
	assert.Error(t, backend.AssertPositive(negative))

	zero := rawFromFloat64(t, []float64{0}, tensor.Shape{})
	assert.Error(t, backend.AssertPositive(zero))

	nan := rawFromFloat64(t, []float64{math.NaN()}, tensor.Shape{})
	assert.Error(t, backend.AssertPositive(nan))
}
