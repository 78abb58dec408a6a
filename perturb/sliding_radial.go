package perturb

import (
	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/saliency"
)

// SlidingRadial produces occlusion masks by sliding a radial occlusion area
// over the image. Equal radii give circular masks, unequal radii elliptical
// ones. Non-zero sigma values apply a Gaussian filter to each mask, yielding
// a smooth transition from full occlusion at the center of the radial to no
// occlusion at the edge; hard masks contain only 0 and 1.
type SlidingRadial struct {
	// RadiusY is the vertical radius of the occlusion area in pixels.
	RadiusY float64 `json:"radius_y" yaml:"radius_y"`
	// RadiusX is the horizontal radius of the occlusion area in pixels.
	RadiusX float64 `json:"radius_x" yaml:"radius_x"`
	// StrideY is the vertical striding step of the radial center in pixels.
	StrideY int `json:"stride_y" yaml:"stride_y"`
	// StrideX is the horizontal striding step of the radial center in pixels.
	StrideX int `json:"stride_x" yaml:"stride_x"`
	// SigmaY is the vertical Gaussian sigma in pixels; zero disables blurring.
	SigmaY float64 `json:"sigma_y" yaml:"sigma_y"`
	// SigmaX is the horizontal Gaussian sigma in pixels; zero disables blurring.
	SigmaX float64 `json:"sigma_x" yaml:"sigma_x"`
}

// DefaultSlidingRadial returns a sliding radial perturber with a 50 pixel
// radius, a 20x20 stride and no blurring.
func DefaultSlidingRadial() *SlidingRadial {
	return &SlidingRadial{
		RadiusY: 50,
		RadiusX: 50,
		StrideY: 20,
		StrideX: 20,
	}
}

// blurred reports whether masks get a Gaussian soft edge.
func (s *SlidingRadial) blurred() bool {
	return s.SigmaY > 0 || s.SigmaX > 0
}

// Perturb generates one mask per radial center over a height x width image.
//
// Arguments:
//   - height: Image height in pixels.
//   - width: Image width in pixels.
//
// Returns:
//   - []*saliency.Map: One rank-2 mask per center position, row-major over
//     the center grid. Hard masks are 0 inside the ellipse and 1 outside;
//     blurred masks are renormalized to peak occlusion before inversion, so
//     every mask still reaches 0 at its center.
//   - error: An error when the dimensions or configuration are not usable.
func (s *SlidingRadial) Perturb(height, width int) ([]*saliency.Map, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("image dimensions must be positive, got %dx%d", height, width)
	}
	if s.RadiusY <= 0 || s.RadiusX <= 0 {
		return nil, errors.Errorf("radii must be positive, got %gx%g", s.RadiusY, s.RadiusX)
	}
	if s.StrideY <= 0 || s.StrideX <= 0 {
		return nil, errors.Errorf("stride must be positive, got %dx%d", s.StrideY, s.StrideX)
	}
	if s.SigmaY < 0 || s.SigmaX < 0 {
		return nil, errors.Errorf("sigmas must be non-negative, got %gx%g", s.SigmaY, s.SigmaX)
	}

	centerYs := gridPoints(height, s.StrideY)
	centerXs := gridPoints(width, s.StrideX)

	masks := make([]*saliency.Map, 0, len(centerYs)*len(centerXs))
	for _, cy := range centerYs {
		for _, cx := range centerXs {
			mask := newMask(height, width, 0)
			fillEllipse(mask, cy, cx, s.RadiusY, s.RadiusX)

			if s.blurred() {
				mask.Data = gaussianBlur2D(mask.Data, height, width, s.SigmaY, s.SigmaX)
				renormalizeToPeak(mask)
			}

			// Invert: occluded area reads 0, untouched area reads 1.
			for i, v := range mask.Data {
				mask.Data[i] = 1 - v
			}
			masks = append(masks, mask)
		}
	}

	return masks, nil
}

// fillEllipse sets mask elements inside the ellipse centered at (cy, cx) with
// radii (ry, rx) to 1, clipped to the mask bounds.
func fillEllipse(mask *saliency.Map, cy, cx int, ry, rx float64) {
	height, width := mask.Shape[0], mask.Shape[1]

	y1 := max(0, cy-int(ry))
	y2 := min(height-1, cy+int(ry))
	x1 := max(0, cx-int(rx))
	x2 := min(width-1, cx+int(rx))

	for y := y1; y <= y2; y++ {
		dy := float64(y-cy) / ry
		for x := x1; x <= x2; x++ {
			dx := float64(x-cx) / rx
			if dy*dy+dx*dx <= 1 {
				mask.Data[y*width+x] = 1
			}
		}
	}
}

// renormalizeToPeak scales the mask so its maximum value is 1. Blurring
// spreads the occlusion mass, and masks clipped at the borders lose part of
// it; rescaling restores full occlusion at the peak.
func renormalizeToPeak(mask *saliency.Map) {
	var peak float32
	for _, v := range mask.Data {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return
	}
	for i := range mask.Data {
		mask.Data[i] /= peak
	}
}
