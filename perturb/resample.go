package perturb

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/xai-lab/go-saliency/saliency"
)

// ResampleMask rescales a rank-2 occlusion mask to new spatial dimensions
// using bilinear interpolation over a 16-bit gray plane. This serves
// pipelines that generate masks at a coarse resolution and upsample them to
// the input image size before occlusion. Mask values must lie in [0, 1];
// out-of-range values are clamped. The 16-bit quantization bounds the
// round-trip error at about 1.6e-5 per element.
//
// Arguments:
//   - m: The mask to resample. Must be rank 2 and well-formed.
//   - height: Target height in pixels.
//   - width: Target width in pixels.
//
// Returns:
//   - *saliency.Map: A new rank-2 mask of the target dimensions. The input is
//     never mutated.
//   - error: Validation failures from the saliency taxonomy, or an error when
//     the target dimensions are not positive.
func ResampleMask(m *saliency.Map, height, width int) (*saliency.Map, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Rank() != 2 {
		return nil, errors.Errorf("mask must be rank 2, got shape %v", m.Shape)
	}
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("target dimensions must be positive, got %dx%d", height, width)
	}

	srcHeight, srcWidth := m.Shape[0], m.Shape[1]
	gray := image.NewGray16(image.Rect(0, 0, srcWidth, srcHeight))
	for y := 0; y < srcHeight; y++ {
		for x := 0; x < srcWidth; x++ {
			v := m.Data[y*srcWidth+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			offset := y*gray.Stride + x*2
			level := uint16(v*65535 + 0.5)
			gray.Pix[offset] = uint8(level >> 8)
			gray.Pix[offset+1] = uint8(level)
		}
	}

	scaled := resize.Resize(uint(width), uint(height), gray, resize.Bilinear)

	data := make([]float32, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			level, _, _, _ := scaled.At(x, y).RGBA()
			data[y*width+x] = float32(level) / 65535
		}
	}

	return &saliency.Map{Data: data, Shape: []int{height, width}}, nil
}
