package kernels

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// ExponentiatedQuadratic is the squared-exponential (RBF, Gaussian) kernel:
//
//	k(x, y) = amplitude * exp(-||x - y||² / (2 * length_scale²))
//
// where the double bars are the Euclidean norm over the feature dimensions.
// A nil amplitude applies no scaling and a nil length scale applies no
// rescaling of the distance, i.e. both behave as 1.
//
// Note the amplitude enters the formula unsquared. The classical textbook
// form squares it; this implementation follows the executed behavior of the
// reference formulation, so callers wanting σ² scaling should pass the
// squared value themselves.
type ExponentiatedQuadratic[T tensor.DType, B tensor.Backend] struct {
	amplitude    *tensor.Tensor[T, B]
	lengthScale  *tensor.Tensor[T, B]
	featureNdims int
	name         string
	batchShape   tensor.Shape
}

// Compile-time check that ExponentiatedQuadratic respects the Kernel contract.
var _ Kernel[float64, tensor.Backend] = (*ExponentiatedQuadratic[float64, tensor.Backend])(nil)

// NewExponentiatedQuadratic constructs an exponentiated-quadratic kernel.
//
// amplitude controls the maximum value of the kernel and lengthScale the
// width of its shape; both are optional (nil), must be strictly positive
// where present, and must be broadcastable against each other and against
// inputs to Apply and Matrix. Positivity is only enforced under
// WithValidateArgs.
func NewExponentiatedQuadratic[T tensor.DType, B tensor.Backend](
	amplitude, lengthScale *tensor.Tensor[T, B],
	opts ...Option,
) (*ExponentiatedQuadratic[T, B], error) {
	cfg := config{featureNdims: 1, name: "ExponentiatedQuadratic"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.featureNdims <= 0 {
		return nil, fmt.Errorf("%s: feature ndims must be positive, got %d", cfg.name, cfg.featureNdims)
	}

	if err := validatePositiveIfPresent(cfg.name, "amplitude", amplitude, cfg.validateArgs); err != nil {
		return nil, err
	}
	if err := validatePositiveIfPresent(cfg.name, "length_scale", lengthScale, cfg.validateArgs); err != nil {
		return nil, err
	}

	var params []namedParam
	if amplitude != nil {
		params = append(params, namedParam{"amplitude", amplitude.DType()})
	}
	if lengthScale != nil {
		params = append(params, namedParam{"length_scale", lengthScale.DType()})
	}
	if err := assertSameElementType(cfg.name, params...); err != nil {
		return nil, err
	}

	batchShape, err := staticBatchShape(paramShape(amplitude), paramShape(lengthScale))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.name, err)
	}

	return &ExponentiatedQuadratic[T, B]{
		amplitude:    amplitude,
		lengthScale:  lengthScale,
		featureNdims: cfg.featureNdims,
		name:         cfg.name,
		batchShape:   batchShape,
	}, nil
}

func paramShape[T tensor.DType, B tensor.Backend](p *tensor.Tensor[T, B]) tensor.Shape {
	if p == nil {
		return nil
	}
	return p.Shape()
}

// Amplitude returns the amplitude parameter, nil if absent.
func (k *ExponentiatedQuadratic[T, B]) Amplitude() *tensor.Tensor[T, B] {
	return k.amplitude
}

// LengthScale returns the length-scale parameter, nil if absent.
func (k *ExponentiatedQuadratic[T, B]) LengthScale() *tensor.Tensor[T, B] {
	return k.lengthScale
}

// FeatureNdims returns the number of trailing feature dimensions.
func (k *ExponentiatedQuadratic[T, B]) FeatureNdims() int {
	return k.featureNdims
}

// Name returns the kernel's diagnostic label.
func (k *ExponentiatedQuadratic[T, B]) Name() string {
	return k.name
}

// BatchShape returns the static broadcast shape of the kernel's parameters.
func (k *ExponentiatedQuadratic[T, B]) BatchShape() tensor.Shape {
	return k.batchShape.Clone()
}

// BatchShapeDynamic returns the runtime broadcast shape of the kernel's
// parameters.
func (k *ExponentiatedQuadratic[T, B]) BatchShapeDynamic() tensor.Shape {
	shape, err := dynamicBatchShape(paramShape(k.amplitude), paramShape(k.lengthScale))
	if err != nil {
		// Construction already broadcast the same shapes.
		panic(fmt.Sprintf("%s: %v", k.name, err))
	}
	return shape
}

// Apply evaluates the kernel pairwise over the broadcast of x1 and x2.
func (k *ExponentiatedQuadratic[T, B]) Apply(x1, x2 *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return k.apply(x1, x2, 0)
}

// Matrix evaluates the full cross-covariance over all pairs of examples: one
// row per example of x1, one column per example of x2, per outer batch.
func (k *ExponentiatedQuadratic[T, B]) Matrix(x1, x2 *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	for _, x := range []*tensor.Tensor[T, B]{x1, x2} {
		if x.Rank() < k.featureNdims+1 {
			return nil, &tensor.ShapeError{
				Op: "matrix", A: x.Shape().Clone(), Dim: -1,
				Details: fmt.Sprintf("rank %d leaves no example dimension before %d feature dimensions", x.Rank(), k.featureNdims),
			}
		}
	}
	e1, e2 := allPairs(x1, x2, k.featureNdims)
	return k.apply(e1, e2, matrixExtraNdims)
}

// apply implements the kernel formula. extraTrailingNdims counts the
// all-pairs axes introduced by Matrix; parameters gain that many trailing
// singleton axes so they broadcast across the pair grid rather than into it.
func (k *ExponentiatedQuadratic[T, B]) apply(x1, x2 *tensor.Tensor[T, B], extraTrailingNdims int) (*tensor.Tensor[T, B], error) {
	if err := k.validateInputs(x1, x2, extraTrailingNdims); err != nil {
		return nil, err
	}

	// Pure squared Euclidean distance over the feature dimensions. The sum
	// of squared per-coordinate differences avoids the cancellation error of
	// the sum-of-squares-minus-twice-dot-product form for nearby points.
	diff := x1.Sub(x2)
	sqDistance := SumRightmostNdims(diff.Mul(diff), k.featureNdims)

	exponent := sqDistance.MulScalar(-0.5)
	if k.lengthScale != nil {
		lengthScale := PadShapeRightWithOnes(k.lengthScale, extraTrailingNdims)
		exponent = exponent.Div(lengthScale.Mul(lengthScale))
	}

	result := exponent.Exp()
	if k.amplitude != nil {
		amplitude := PadShapeRightWithOnes(k.amplitude, extraTrailingNdims)
		result = amplitude.Mul(result)
	}
	return result, nil
}

// validateInputs resolves all input and parameter shapes before any
// arithmetic runs, so shape failures surface as errors rather than backend
// panics.
func (k *ExponentiatedQuadratic[T, B]) validateInputs(x1, x2 *tensor.Tensor[T, B], extraTrailingNdims int) error {
	for _, x := range []*tensor.Tensor[T, B]{x1, x2} {
		if x.Rank() < k.featureNdims {
			return &tensor.ShapeError{
				Op: "apply", A: x.Shape().Clone(), Dim: -1,
				Details: fmt.Sprintf("rank %d is less than feature ndims %d", x.Rank(), k.featureNdims),
			}
		}
	}

	bc, _, err := tensor.BroadcastShapes(x1.Shape(), x2.Shape())
	if err != nil {
		return fmt.Errorf("%s: inputs: %w", k.name, err)
	}

	leading := bc[:len(bc)-k.featureNdims]
	padded := tensor.PadRightWithOnes(k.BatchShapeDynamic(), extraTrailingNdims)
	if _, _, err := tensor.BroadcastShapes(leading, padded); err != nil {
		return fmt.Errorf("%s: batch dimensions: %w", k.name, err)
	}
	return nil
}
