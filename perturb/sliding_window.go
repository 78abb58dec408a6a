package perturb

import (
	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/saliency"
)

// SlidingWindow produces hard, block-shaped occlusion masks by sliding a
// window of a configured size over the image area. The window grid is offset
// so the overhang of the last window is split evenly between the image
// borders.
//
// If the stride does not evenly divide the window size along an axis, the
// plane obtained by summing all masks will not be even. Likewise, a stride
// larger than the window size leaves unperturbed valleys between masked
// regions.
type SlidingWindow struct {
	// WindowHeight is the occlusion window height in pixels.
	WindowHeight int `json:"window_height" yaml:"window_height"`
	// WindowWidth is the occlusion window width in pixels.
	WindowWidth int `json:"window_width" yaml:"window_width"`
	// StrideY is the vertical striding step in pixels.
	StrideY int `json:"stride_y" yaml:"stride_y"`
	// StrideX is the horizontal striding step in pixels.
	StrideX int `json:"stride_x" yaml:"stride_x"`
}

// DefaultSlidingWindow returns a sliding window perturber with a 50x50 window
// and a 20x20 stride.
func DefaultSlidingWindow() *SlidingWindow {
	return &SlidingWindow{
		WindowHeight: 50,
		WindowWidth:  50,
		StrideY:      20,
		StrideX:      20,
	}
}

// Perturb generates one mask per window position over a height x width image.
//
// Arguments:
//   - height: Image height in pixels.
//   - width: Image width in pixels.
//
// Returns:
//   - []*saliency.Map: One rank-2 mask per window position, row-major over
//     the position grid (rows outer, columns inner). Values are exactly 0
//     inside the occluded window and 1 elsewhere.
//   - error: An error when the dimensions or configuration are not positive.
func (s *SlidingWindow) Perturb(height, width int) ([]*saliency.Map, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("image dimensions must be positive, got %dx%d", height, width)
	}
	if s.WindowHeight <= 0 || s.WindowWidth <= 0 {
		return nil, errors.Errorf("window size must be positive, got %dx%d", s.WindowHeight, s.WindowWidth)
	}
	if s.StrideY <= 0 || s.StrideX <= 0 {
		return nil, errors.Errorf("stride must be positive, got %dx%d", s.StrideY, s.StrideX)
	}

	rows := gridPoints(height, s.StrideY)
	cols := gridPoints(width, s.StrideX)

	// Center the grid: split the last window's overhang between both borders.
	overhangY := s.WindowHeight - (height - rows[len(rows)-1])
	overhangX := s.WindowWidth - (width - cols[len(cols)-1])
	offsetY := floorDiv(overhangY, 2)
	offsetX := floorDiv(overhangX, 2)

	masks := make([]*saliency.Map, 0, len(rows)*len(cols))
	for _, row := range rows {
		r := row - offsetY
		r1 := max(0, r)
		r2 := min(r+s.WindowHeight, height)

		for _, col := range cols {
			c := col - offsetX
			c1 := max(0, c)
			c2 := min(c+s.WindowWidth, width)

			mask := newMask(height, width, 1)
			for y := r1; y < r2; y++ {
				rowStart := y * width
				for x := c1; x < c2; x++ {
					mask.Data[rowStart+x] = 0
				}
			}
			masks = append(masks, mask)
		}
	}

	return masks, nil
}
