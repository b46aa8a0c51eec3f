package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 48, raw.ByteSize())

	// Zero-initialized
	for _, v := range raw.AsFloat64() {
		assert.Zero(t, v)
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	_, err := NewRaw(Shape{2, 0}, Float32)
	assert.Error(t, err)

	_, err = NewRaw(Shape{2, DimUnknown}, Float32)
	assert.Error(t, err)
}

func TestRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float32)
	require.NoError(t, err)
	assert.Equal(t, 1, raw.NumElements())
	assert.Len(t, raw.AsFloat32(), 1)
}

func TestRawTypedViewsShareMemory(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32)
	require.NoError(t, err)

	raw.AsFloat32()[2] = 42
	assert.Equal(t, float32(42), raw.AsFloat32()[2])
}

func TestRawDTypeMismatchPanics(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32)
	require.NoError(t, err)
	assert.Panics(t, func() { raw.AsFloat64() })
	assert.Panics(t, func() { raw.AsFloat16() })
}

func TestRawFromFloat16(t *testing.T) {
	data := []float16.Float16{
		float16.Fromfloat32(1.5),
		float16.Fromfloat32(-2),
	}
	raw, err := RawFromFloat16(data, Shape{2})
	require.NoError(t, err)

	assert.Equal(t, Float16, raw.DType())
	assert.Equal(t, float32(1.5), raw.AsFloat16()[0].Float32())
	assert.Equal(t, float32(-2), raw.AsFloat16()[1].Float32())

	_, err = RawFromFloat16(data, Shape{3})
	assert.Error(t, err)
}

func TestWithShape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64)
	require.NoError(t, err)
	raw.AsFloat64()[5] = 7

	view, err := raw.WithShape(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, view.Shape())
	assert.Equal(t, float64(7), view.AsFloat64()[5]) // shares storage

	_, err = raw.WithShape(Shape{4, 2})
	require.Error(t, err)
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
