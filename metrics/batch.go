package metrics

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/metrics/metric"
	"github.com/xai-lab/go-saliency/saliency"
)

// ItemResult ties one batch slot to its metric result or failure. Exactly one
// of Result and Err is meaningful: a failed slot carries the error while the
// rest of the batch proceeds.
type ItemResult struct {
	// Index is the slot's position in the input batch.
	Index int `json:"index"`
	// Result is the computed value when Err is nil.
	Result metric.Result `json:"result"`
	// Err is the per-item failure, nil on success.
	Err error `json:"-"`
}

// ApplyMetric evaluates a metric across a batch of saliency maps in parallel.
//
// Each map's computation is independent, so maps are dispatched to a bounded
// worker pool. The returned slice always has the same length and order as the
// input: slot i holds map i's result or its failure. A malformed map fails in
// its own slot without aborting the batch; whether partial failure is fatal
// is the caller's policy.
//
// Cancelling the context stops dispatching further items; slots not yet
// dispatched report the context's error.
//
// Arguments:
//   - ctx: Controls early termination of the batch.
//   - impl: The metric to apply.
//   - maps: The saliency maps to evaluate, one per detection or class.
//   - cfg: Invocation-time configuration shared by all items.
//   - maxConcurrency: Upper bound on parallel computations; 0 or negative
//     selects runtime.NumCPU().
//
// Returns:
//   - []ItemResult: One entry per input map, in input order.
func ApplyMetric(
	ctx context.Context,
	impl metric.Metric,
	maps []*saliency.Map,
	cfg metric.Config,
	maxConcurrency int,
) []ItemResult {
	if ctx == nil {
		ctx = context.Background()
	}
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}

	items := make([]ItemResult, len(maps))

	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, sm := range maps {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(maps); j++ {
				items[j] = ItemResult{Index: j, Err: err}
			}
			break
		}

		wg.Add(1)
		go func(idx int, sm *saliency.Map) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := metric.Compute(impl, sm, cfg)
			items[idx] = ItemResult{Index: idx, Result: res, Err: err}
		}(i, sm)
	}

	wg.Wait()
	return items
}

// Stats summarizes the successful values of a batch.
type Stats struct {
	// Count is the number of successful items.
	Count int `json:"count"`
	// Failed is the number of items whose slot reported an error.
	Failed int `json:"failed"`
	// Mean of the successful values.
	Mean float64 `json:"mean"`
	// Median of the successful values.
	Median float64 `json:"median"`
	// Min of the successful values.
	Min float64 `json:"min"`
	// Max of the successful values.
	Max float64 `json:"max"`
	// StdDev of the successful values.
	StdDev float64 `json:"std_dev"`
}

// Summarize aggregates the successful values of a batch into summary
// statistics. Failed slots are counted but never substituted with default
// values; substitution would corrupt evaluation results.
//
// Arguments:
//   - items: The batch results from ApplyMetric.
//
// Returns:
//   - Stats: Summary statistics over the successful values.
//   - error: An error when no item succeeded.
func Summarize(items []ItemResult) (Stats, error) {
	var stats Stats
	values := make([]float64, 0, len(items))
	var sum float64

	for _, item := range items {
		if item.Err != nil {
			stats.Failed++
			continue
		}
		values = append(values, item.Result.Value)
		sum += item.Result.Value
	}

	stats.Count = len(values)
	if stats.Count == 0 {
		return stats, errors.New("no successful results to summarize")
	}

	sort.Float64s(values)

	stats.Mean = sum / float64(stats.Count)
	stats.Min = values[0]
	stats.Max = values[len(values)-1]

	if len(values)%2 == 0 {
		stats.Median = (values[len(values)/2-1] + values[len(values)/2]) / 2
	} else {
		stats.Median = values[len(values)/2]
	}

	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - stats.Mean
		sumSquaredDiff += diff * diff
	}
	stats.StdDev = math.Sqrt(sumSquaredDiff / float64(stats.Count))

	return stats, nil
}
