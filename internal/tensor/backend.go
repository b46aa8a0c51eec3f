package tensor

// Backend is the capability contract every array backend must satisfy for
// kernel evaluation: elementwise arithmetic with NumPy-style broadcasting, an
// exponential primitive, a reduction over a contiguous trailing set of axes,
// shape manipulation, dtype conversion, and a positivity assertion that is
// sequenced strictly before any dependent computation.
//
// Implementations:
//   - CPU: eager pure Go evaluation (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MulScalar multiplies every element by a scalar.
	MulScalar(x *RawTensor, s float64) *RawTensor

	// Exp computes the element-wise exponential.
	Exp(x *RawTensor) *RawTensor

	// SumTrailing sums the trailing ndims dimensions, reducing the rank by
	// ndims and leaving leading dimensions untouched. ndims == 0 is the
	// identity (a copy is returned).
	SumTrailing(x *RawTensor, ndims int) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor // add dimension of size 1, negative dims supported

	// Cast converts to a different data type (including Float16 storage).
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// AssertPositive fails if any element is not strictly greater than zero.
	// Eager backends check immediately; deferred backends must order the
	// check strictly before any downstream use of x.
	AssertPositive(x *RawTensor) error

	// Name returns the backend name.
	Name() string
}
