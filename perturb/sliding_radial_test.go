package perturb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingRadialHardMasks(t *testing.T) {
	s := &SlidingRadial{RadiusY: 5, RadiusX: 5, StrideY: 20, StrideX: 20}

	masks, err := s.Perturb(21, 21)
	require.NoError(t, err)
	require.Len(t, masks, 4, "a 21x21 image with stride 20 has centers at 0 and 20 per axis")

	first := masks[0] // centered at (0, 0)
	assert.Equal(t, []int{21, 21}, first.Shape)
	assert.Equal(t, float32(0), first.Data[0], "radial center is fully occluded")
	assert.Equal(t, float32(0), first.Data[3*21+0], "points inside the radius are occluded")
	assert.Equal(t, float32(1), first.Data[10*21+10], "points beyond the radius are untouched")

	for _, v := range first.Data {
		assert.Contains(t, []float32{0, 1}, v, "unblurred masks are hard")
	}

	last := masks[3] // centered at (20, 20)
	assert.Equal(t, float32(0), last.Data[20*21+20], "last mask occludes the opposite corner")
	assert.Equal(t, float32(1), last.Data[0], "last mask leaves the first corner untouched")
}

func TestSlidingRadialEllipticalMasks(t *testing.T) {
	s := &SlidingRadial{RadiusY: 2, RadiusX: 6, StrideY: 30, StrideX: 30}

	masks, err := s.Perturb(15, 15)
	require.NoError(t, err)
	require.Len(t, masks, 1)

	m := masks[0] // centered at (0, 0)
	assert.Equal(t, float32(0), m.Data[0*15+5], "wide axis extends to the horizontal radius")
	assert.Equal(t, float32(1), m.Data[5*15+0], "narrow axis stops short of the same distance")
}

func TestSlidingRadialBlurredMasks(t *testing.T) {
	s := &SlidingRadial{RadiusY: 4, RadiusX: 4, StrideY: 50, StrideX: 50, SigmaY: 2, SigmaX: 2}

	masks, err := s.Perturb(25, 25)
	require.NoError(t, err)
	require.Len(t, masks, 1)

	m := masks[0]
	var minV, maxV float32 = 1, 0
	intermediate := false
	for _, v := range m.Data {
		assert.GreaterOrEqual(t, v, float32(0), "blurred masks stay in [0, 1]")
		assert.LessOrEqual(t, v, float32(1), "blurred masks stay in [0, 1]")
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		if v > 0.05 && v < 0.95 {
			intermediate = true
		}
	}

	assert.Equal(t, float32(0), minV, "peak occlusion is renormalized to full strength")
	assert.True(t, intermediate, "blurring yields a smooth transition, not a hard edge")
	assert.Greater(t, maxV, float32(0.99), "far field is effectively unoccluded")
}

func TestSlidingRadialRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		s    *SlidingRadial
	}{
		{name: "zero radius", s: &SlidingRadial{RadiusY: 0, RadiusX: 5, StrideY: 2, StrideX: 2}},
		{name: "zero stride", s: &SlidingRadial{RadiusY: 5, RadiusX: 5, StrideY: 0, StrideX: 2}},
		{name: "negative sigma", s: &SlidingRadial{RadiusY: 5, RadiusX: 5, StrideY: 2, StrideX: 2, SigmaY: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masks, err := tt.s.Perturb(10, 10)
			assert.Error(t, err)
			assert.Nil(t, masks)
		})
	}

	_, err := DefaultSlidingRadial().Perturb(0, 10)
	assert.Error(t, err, "image dimensions must be positive")
}
