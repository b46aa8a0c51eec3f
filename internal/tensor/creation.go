package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(t.Data(), data)
	return t, nil
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	t, err := FromSlice([]T{value}, Shape{}, b)
	if err != nil {
		panic(err) // Shape{} always holds exactly one element
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// FromFloat16 creates a tensor of compute type T from half-precision storage
// values, converting through the backend's Cast primitive.
func FromFloat16[T DType, B Backend](data []float16.Float16, shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := RawFromFloat16(data, shape)
	if err != nil {
		return nil, err
	}
	var dummy T
	return New[T, B](b.Cast(raw, inferDataType(dummy)), b), nil
}
