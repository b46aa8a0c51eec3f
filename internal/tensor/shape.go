package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// DimUnknown marks a dimension whose size is not known statically.
// Concrete tensors never carry unknown dimensions; the marker exists so the
// static broadcast algebra can serve deferred-execution backends too.
const DimUnknown = -1

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is fully known and valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// IsFullyKnown reports whether the shape has no unknown dimensions.
func (s Shape) IsFullyKnown() bool {
	for _, dim := range s {
		if dim == DimUnknown {
			return false
		}
	}
	return true
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// PadRightWithOnes returns the shape with k trailing dimensions of size 1
// appended. Kernel parameters are padded this way so they broadcast against
// the extra all-pairs axes introduced by full-matrix evaluation.
func PadRightWithOnes(s Shape, k int) Shape {
	padded := make(Shape, len(s)+k)
	copy(padded, s)
	for i := len(s); i < len(padded); i++ {
		padded[i] = 1
	}
	return padded
}

// BroadcastShapes implements NumPy-style broadcasting over fully known shapes.
//
// Rules:
//  1. Compare shapes element-wise from right to left
//  2. Dimensions are compatible if they are equal, or one of them is 1
//  3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed,
// and a *ShapeError if the shapes are incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, &ShapeError{
				Op: "broadcast", A: a.Clone(), B: b.Clone(), Dim: maxLen - 1 - i,
				Details: fmt.Sprintf("dimension sizes %d and %d are incompatible", aDim, bDim),
			}
		}
	}

	return result, needsBroadcast, nil
}

// BroadcastShapesPartial computes the broadcast of two possibly partially
// known shapes. Unknown dimensions propagate as unknown unless the other
// operand resolves them: unknown vs n>1 resolves to n, unknown vs 1 or
// unknown vs unknown stays unknown (the 1 may or may not stretch).
// Incompatibility between two known non-1 sizes is still a *ShapeError.
func BroadcastShapesPartial(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == DimUnknown && bDim == DimUnknown:
			result[maxLen-1-i] = DimUnknown
		case aDim == DimUnknown:
			if bDim == 1 {
				result[maxLen-1-i] = DimUnknown
			} else {
				result[maxLen-1-i] = bDim
			}
		case bDim == DimUnknown:
			if aDim == 1 {
				result[maxLen-1-i] = DimUnknown
			} else {
				result[maxLen-1-i] = aDim
			}
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, &ShapeError{
				Op: "broadcast", A: a.Clone(), B: b.Clone(), Dim: maxLen - 1 - i,
				Details: fmt.Sprintf("dimension sizes %d and %d are incompatible", aDim, bDim),
			}
		}
	}

	return result, nil
}
