// Package metrics - registry and batch invocation glue for saliency-quality
// metrics.
package metrics

import (
	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/metrics/entropy"
	"github.com/xai-lab/go-saliency/metrics/metric"
)

// NewMetric creates a metric implementation by name.
//
// This factory is the primary entry point for metric creation, routing
// requests to the metric-specific constructors while keeping call sites
// decoupled from concrete variants. Adding a metric means adding a case here;
// callers keep holding a metric.Metric either way.
//
// Arguments:
//   - name: The metric's stable tag, e.g. entropy.MetricName.
//
// Returns:
//   - metric.Metric: The metric implementation.
//   - error: An error when the name is not registered.
func NewMetric(name string) (metric.Metric, error) {
	switch name {
	case entropy.MetricName:
		return entropy.New(), nil
	default:
		return nil, errors.Errorf("unsupported metric name: %s", name)
	}
}

// Names returns the tags of all registered metrics.
func Names() []string {
	return []string{entropy.MetricName}
}
