// Package metric - the contract every saliency-quality metric satisfies.
package metric

import (
	"errors"

	"github.com/xai-lab/go-saliency/saliency"
)

// Config carries optional parameters controlling normalization and edge-case
// handling. It is constructed by the caller, passed at invocation time, and
// never mutated by a metric. The zero value selects the documented defaults.
type Config struct {
	// Epsilon is the zero-avoidance offset added inside logarithms. Zero or
	// negative selects saliency.DefaultEpsilon.
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
	// LogBase selects the logarithm base for information-theoretic metrics.
	// Zero means natural log; 2 yields bits.
	LogBase float64 `json:"log_base" yaml:"log_base"`
}

// DefaultConfig returns the default metric configuration: natural log with a
// 1e-12 zero-avoidance offset.
func DefaultConfig() Config {
	return Config{Epsilon: saliency.DefaultEpsilon}
}

// Result is a single metric value tagged with the identity of the metric that
// produced it. Results are immutable once computed and serialize cleanly to
// any downstream format.
type Result struct {
	// Metric is the stable name tag of the producing metric, e.g. "entropy".
	Metric string `json:"metric" yaml:"metric"`
	// Value is the computed metric value.
	Value float64 `json:"value" yaml:"value"`
}

// Metric is the capability every saliency-quality metric implementation
// provides. Callers hold a Metric without knowing the concrete variant, so
// implementations are interchangeable at call sites. Implementations must be
// pure: no side effects, no retained references to the input map, identical
// results on identical inputs.
type Metric interface {
	// Name returns the stable tag used in Result values and the registry.
	Name() string
	// Compute evaluates the metric on a saliency map. The map has passed
	// shared validation before implementation-specific logic runs; see the
	// package-level Compute function.
	Compute(m *saliency.Map, cfg Config) (Result, error)
}

// Compute applies a metric to a single saliency map, enforcing the shared
// validation precondition once at the interface boundary so implementations
// do not re-check it.
//
// Arguments:
//   - impl: The metric implementation to invoke.
//   - m: The saliency map to evaluate.
//   - cfg: Invocation-time configuration.
//
// Returns:
//   - Result: The computed value tagged with the metric's name.
//   - error: Validation failures propagate as *saliency.InvalidInputError or
//     *saliency.ShapeMismatchError; any other implementation failure is
//     reported as a *ComputationError tagged with the metric name.
func Compute(impl Metric, m *saliency.Map, cfg Config) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	res, err := impl.Compute(m, cfg)
	if err != nil {
		if isTaxonomy(err) {
			return Result{}, err
		}
		return Result{}, &ComputationError{Metric: impl.Name(), Cause: err}
	}
	return res, nil
}

// isTaxonomy reports whether err already belongs to the shared error taxonomy
// and should propagate unwrapped.
func isTaxonomy(err error) bool {
	var comp *ComputationError
	return saliency.IsInvalidInput(err) ||
		saliency.IsShapeMismatch(err) ||
		errors.As(err, &comp)
}
