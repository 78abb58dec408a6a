// Package perturb - occlusion-mask generation for perturbation-based
// explainability pipelines. Masks are handed to an external scoring pipeline
// that runs the model over occluded inputs; nothing here performs inference
// or combines scores into saliency maps.
package perturb

import "github.com/xai-lab/go-saliency/saliency"

// Perturber produces a stack of occlusion masks for an image of the given
// spatial dimensions. Each mask is a rank-2 float32 map in [0, 1] where 0
// means fully occluded and 1 means untouched.
type Perturber interface {
	Perturb(height, width int) ([]*saliency.Map, error)
}

// newMask allocates a rank-2 mask filled with the given value.
func newMask(height, width int, fill float32) *saliency.Map {
	data := make([]float32, height*width)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &saliency.Map{Data: data, Shape: []int{height, width}}
}

// gridPoints returns 0, stride, 2*stride, ... up to but excluding limit.
func gridPoints(limit, stride int) []int {
	points := make([]int, 0, (limit+stride-1)/stride)
	for p := 0; p < limit; p += stride {
		points = append(points, p)
	}
	return points
}

// floorDiv divides a by b rounding toward negative infinity, matching the
// centering arithmetic of the mask grid for negative overhangs.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
