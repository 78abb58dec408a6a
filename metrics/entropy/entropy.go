// Package entropy - Shannon entropy of a saliency map's induced probability
// distribution. Low entropy indicates a sharply localized explanation; high
// entropy indicates diffuse, less interpretable attribution.
package entropy

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/metrics/metric"
	"github.com/xai-lab/go-saliency/saliency"
)

// MetricName is the stable tag carried by entropy results.
const MetricName = "entropy"

// Entropy computes H = -sum(p_i * log(p_i + epsilon)) over the distribution
// induced by a saliency map. The value is bounded by [0, log(N)] for N
// elements: 0 for a one-hot map, log(N) for a uniform one.
type Entropy struct{}

// New creates an entropy metric.
func New() *Entropy {
	return &Entropy{}
}

// Name returns the metric's stable tag.
func (e *Entropy) Name() string {
	return MetricName
}

// Compute evaluates Shannon entropy on a saliency map.
//
// The map is first normalized into a distribution (negatives clamped,
// sum-normalized), then the entropy is accumulated in float64. When
// cfg.LogBase is positive the result is converted from nats by dividing by
// ln(base); base 2 yields bits.
//
// Arguments:
//   - m: The saliency map to evaluate.
//   - cfg: Epsilon and logarithm base; the zero value selects defaults.
//
// Returns:
//   - metric.Result: The entropy tagged "entropy".
//   - error: Normalization failures propagate as *saliency.InvalidInputError;
//     an unusable log base or a non-finite result is reported as a
//     *metric.ComputationError.
func (e *Entropy) Compute(m *saliency.Map, cfg metric.Config) (metric.Result, error) {
	eps := cfg.Epsilon
	if eps <= 0 {
		eps = saliency.DefaultEpsilon
	}
	if cfg.LogBase < 0 || cfg.LogBase == 1 {
		return metric.Result{}, &metric.ComputationError{
			Metric: MetricName,
			Cause:  errors.Errorf("log base %g is not usable (must be positive and != 1)", cfg.LogBase),
		}
	}

	dist, err := saliency.Normalize(m)
	if err != nil {
		return metric.Result{}, err
	}

	var h float64
	for _, p := range dist.Data {
		if p == 0 {
			// A zero-probability bin contributes no information.
			continue
		}
		pf := float64(p)
		h -= pf * saliency.SafeLog(pf, eps)
	}

	if cfg.LogBase > 0 {
		h /= math.Log(cfg.LogBase)
	}

	// The epsilon inside the log can push a one-hot map a hair below the
	// theoretical minimum of zero.
	if h < 0 {
		h = 0
	}

	if math.IsNaN(h) || math.IsInf(h, 0) {
		return metric.Result{}, &metric.ComputationError{
			Metric: MetricName,
			Cause:  errors.Errorf("entropy is non-finite: %g", h),
		}
	}

	return metric.Result{Metric: MetricName, Value: h}, nil
}
