package tensor

import "fmt"

// ShapeError reports shapes that cannot be broadcast or otherwise combined.
type ShapeError struct {
	Op      string // Operation that failed (e.g., "broadcast", "matrix")
	A, B    Shape  // Shapes involved
	Dim     int    // Offending dimension in the aligned result, -1 if not dimension-specific
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.B != nil {
		return fmt.Sprintf("%s: shapes %v and %v: %s", e.Op, e.A, e.B, e.Details)
	}
	if e.A != nil {
		return fmt.Sprintf("%s: shape %v: %s", e.Op, e.A, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Details)
}
