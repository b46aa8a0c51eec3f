package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name           string
		a, b           Shape
		want           Shape
		needsBroadcast bool
	}{
		{"same shape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"stretch left operand", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"stretch right operand", Shape{3, 5}, Shape{1, 5}, Shape{3, 5}, true},
		{"rank mismatch", Shape{5}, Shape{3, 5}, Shape{3, 5}, true},
		{"scalar vs any", Shape{}, Shape{2, 3}, Shape{2, 3}, true},
		{"both scalars", Shape{}, Shape{}, Shape{}, false},
		{"all pairs grid", Shape{5, 1, 4}, Shape{1, 7, 4}, Shape{5, 7, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needsBroadcast, err := BroadcastShapes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.needsBroadcast, needsBroadcast)
		})
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	_, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Dim)
}

func TestBroadcastShapesPartial(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
	}{
		{"fully known", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{"unknown resolved by other side", Shape{DimUnknown, 5}, Shape{3, 5}, Shape{3, 5}},
		{"unknown vs one stays unknown", Shape{DimUnknown}, Shape{1}, Shape{DimUnknown}},
		{"unknown vs unknown", Shape{DimUnknown, 2}, Shape{DimUnknown, 2}, Shape{DimUnknown, 2}},
		{"one vs unknown stays unknown", Shape{1, 4}, Shape{DimUnknown, 4}, Shape{DimUnknown, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapesPartial(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcastShapesPartialIncompatible(t *testing.T) {
	_, err := BroadcastShapesPartial(Shape{2, 3}, Shape{4, 3})
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestPadRightWithOnes(t *testing.T) {
	assert.Equal(t, Shape{3, 2, 1, 1}, PadRightWithOnes(Shape{3, 2}, 2))
	assert.Equal(t, Shape{3, 2}, PadRightWithOnes(Shape{3, 2}, 0))
	assert.Equal(t, Shape{1, 1, 1}, PadRightWithOnes(Shape{}, 3))
}

func TestComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestShapeIsFullyKnown(t *testing.T) {
	assert.True(t, Shape{2, 3}.IsFullyKnown())
	assert.True(t, Shape{}.IsFullyKnown())
	assert.False(t, Shape{2, DimUnknown}.IsFullyKnown())
}
