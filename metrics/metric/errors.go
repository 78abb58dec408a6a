package metric

import "fmt"

// ComputationError reports an implementation-specific failure that occurred
// after input validation passed, e.g. a non-finite intermediate value or an
// unusable configuration.
type ComputationError struct {
	// Metric is the name of the metric that failed.
	Metric string
	// Cause is the underlying failure.
	Cause error
}

// Error implements the error interface.
func (e *ComputationError) Error() string {
	return fmt.Sprintf("metric %q computation failed: %v", e.Metric, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ComputationError) Unwrap() error {
	return e.Cause
}
