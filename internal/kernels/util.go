package kernels

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// SumRightmostNdims reduces the trailing featureNdims dimensions of x to a
// scalar per batch element, leaving all leading dimensions untouched.
// featureNdims == 0 is the identity.
func SumRightmostNdims[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], featureNdims int) *tensor.Tensor[T, B] {
	return x.SumTrailing(featureNdims)
}

// PadShapeRightWithOnes reshapes x so its shape gains ndims trailing
// singleton axes. Used to align a parameter of batch shape B with a tensor
// whose trailing dimensions index an expanded all-pairs grid.
func PadShapeRightWithOnes[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], ndims int) *tensor.Tensor[T, B] {
	if ndims == 0 {
		return x
	}
	return x.Reshape(tensor.PadRightWithOnes(x.Shape(), ndims)...)
}

// validatePositiveIfPresent is the scoped validation barrier for optional
// kernel parameters. Absent values pass. When enabled is false the value
// passes silently, non-positive values included. When enabled is true the
// backend's positivity assertion runs before the value can reach any
// downstream computation, and a violation is a *ValidationError.
func validatePositiveIfPresent[T tensor.DType, B tensor.Backend](kernel, param string, v *tensor.Tensor[T, B], enabled bool) error {
	if v == nil || !enabled {
		return nil
	}
	if err := v.Backend().AssertPositive(v.Raw()); err != nil {
		return &ValidationError{Kernel: kernel, Param: param, Details: err.Error()}
	}
	return nil
}

// namedParam pairs a parameter with its name for dtype consistency checks.
type namedParam struct {
	name  string
	dtype tensor.DataType
}

// assertSameElementType fails with a *TypeMismatchError if the present
// parameters do not share one numeric element type. The generic type system
// already enforces this for tensors built through the public constructors;
// the runtime check guards raw tensors wrapped by hand.
func assertSameElementType(kernel string, params ...namedParam) error {
	for i := 1; i < len(params); i++ {
		if params[i].dtype != params[0].dtype {
			return &TypeMismatchError{
				Kernel: kernel,
				Param1: params[0].name, DType1: params[0].dtype,
				Param2: params[i].name, DType2: params[i].dtype,
			}
		}
	}
	return nil
}

// staticBatchShape broadcasts the static shapes of the present parameters;
// absent parameters contribute the scalar shape () and do not constrain the
// result.
func staticBatchShape(shapes ...tensor.Shape) (tensor.Shape, error) {
	result := tensor.Shape{}
	for _, s := range shapes {
		if s == nil {
			continue
		}
		var err error
		result, err = tensor.BroadcastShapesPartial(result, s)
		if err != nil {
			return nil, fmt.Errorf("batch shape: %w", err)
		}
	}
	return result, nil
}

// dynamicBatchShape broadcasts the runtime shapes of the present parameters.
func dynamicBatchShape(shapes ...tensor.Shape) (tensor.Shape, error) {
	result := tensor.Shape{}
	for _, s := range shapes {
		if s == nil {
			continue
		}
		var err error
		result, _, err = tensor.BroadcastShapes(result, s)
		if err != nil {
			return nil, fmt.Errorf("batch shape: %w", err)
		}
	}
	return result, nil
}
