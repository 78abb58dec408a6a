package saliency

import "math"

// DefaultEpsilon is the zero-avoidance offset added inside logarithms when a
// metric configuration does not specify one.
const DefaultEpsilon = 1e-12

// Distribution is a probability distribution derived from a saliency map:
// non-negative elements summing to one (within floating tolerance), the input
// to information-theoretic metrics. Distributions are only produced by
// Normalize.
type Distribution struct {
	// Data holds the probabilities in the same row-major order as the source map.
	Data []float32 `json:"data" yaml:"data"`
	// Shape is the shape of the source map.
	Shape []int `json:"shape" yaml:"shape"`
}

// Sum returns the total probability mass, accumulated in float64.
func (d *Distribution) Sum() float64 {
	var sum float64
	for _, p := range d.Data {
		sum += float64(p)
	}
	return sum
}

// Normalize converts a saliency map into a probability distribution.
//
// Negative values are clamped to zero before normalization: saliency is
// treated as non-negative importance, so negative artifacts from upstream
// perturbation algorithms carry no attribution mass. The remaining values are
// divided by their sum. The caller's map is never mutated; normalization
// operates on a copy.
//
// Arguments:
//   - m: The saliency map to normalize.
//
// Returns:
//   - *Distribution: The normalized distribution over the map's elements.
//   - error: An *InvalidInputError when the map is empty, contains non-finite
//     values, or sums to zero after clamping (a degenerate all-zero map cannot
//     form a distribution).
func Normalize(m *Map) (*Distribution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := make([]float32, len(m.Data))
	var sum float64
	for i, v := range m.Data {
		if v < 0 {
			v = 0
		}
		data[i] = v
		sum += float64(v)
	}

	if sum == 0 {
		return nil, &InvalidInputError{
			Reason: "map carries no attribution mass after clamping negatives",
			Shape:  m.Shape,
			Index:  -1,
			Sum:    sum,
		}
	}

	for i := range data {
		data[i] = float32(float64(data[i]) / sum)
	}

	return &Distribution{
		Data:  data,
		Shape: append([]int(nil), m.Shape...),
	}, nil
}

// SafeLog returns log(x + epsilon), avoiding -Inf on zero-probability bins.
//
// Arguments:
//   - x: The value to take the logarithm of.
//   - epsilon: A small positive offset; DefaultEpsilon when the caller has no
//     preference.
//
// Returns:
//   - The natural logarithm of x + epsilon.
func SafeLog(x, epsilon float64) float64 {
	return math.Log(x + epsilon)
}
