package saliency

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a saliency map that cannot participate in metric
// computation: it is empty, contains non-finite values, or carries no
// attribution mass once negatives are clamped. The offending shape and, where
// applicable, the offending element or computed sum are retained so callers
// can diagnose the input without re-deriving state.
type InvalidInputError struct {
	// Reason is a human-readable description of the defect.
	Reason string
	// Shape is the shape of the offending map.
	Shape []int
	// Index is the position of the offending element, -1 when the failure is
	// not tied to a single element.
	Index int
	// Value is the offending element value, meaningful when Index >= 0.
	Value float32
	// Sum is the element sum computed during normalization, meaningful for
	// zero-sum failures.
	Sum float64
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid saliency map: %s (shape %v, element %d = %v)",
			e.Reason, e.Shape, e.Index, e.Value)
	}
	return fmt.Sprintf("invalid saliency map: %s (shape %v, sum %g)", e.Reason, e.Shape, e.Sum)
}

// ShapeMismatchError reports a saliency map whose shape disagrees with an
// expected reference shape.
type ShapeMismatchError struct {
	// Got is the shape of the offending map.
	Got []int
	// Want is the expected reference shape.
	Want []int
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("saliency map shape %v does not match reference shape %v", e.Got, e.Want)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsShapeMismatch reports whether err is (or wraps) a ShapeMismatchError.
func IsShapeMismatch(err error) bool {
	var target *ShapeMismatchError
	return errors.As(err, &target)
}
