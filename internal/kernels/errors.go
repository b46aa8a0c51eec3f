package kernels

import (
	"fmt"

	"github.com/covar-ml/covar/internal/tensor"
)

// ValidationError reports a kernel parameter that failed a runtime validity
// check. It is only produced when validation is enabled at construction.
type ValidationError struct {
	Kernel  string // Kernel name
	Param   string // Parameter name (e.g., "length_scale")
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", e.Kernel, e.Param, e.Details)
}

// TypeMismatchError reports kernel parameters that do not share one numeric
// element type.
type TypeMismatchError struct {
	Kernel         string
	Param1, Param2 string
	DType1, DType2 tensor.DataType
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: parameters %q (%s) and %q (%s) must share one element type",
		e.Kernel, e.Param1, e.DType1, e.Param2, e.DType2)
}
