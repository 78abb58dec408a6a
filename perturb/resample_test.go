package perturb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xai-lab/go-saliency/saliency"
)

func TestResampleMaskConstant(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = 0.5
	}
	m, err := saliency.New([]int{4, 4}, data)
	require.NoError(t, err)

	out, err := ResampleMask(m, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8}, out.Shape, "output has the target dimensions")
	for i, v := range out.Data {
		assert.InDelta(t, 0.5, v, 1e-3, "element %d: a constant mask stays constant", i)
	}
}

func TestResampleMaskPreservesStructure(t *testing.T) {
	// Occluded left half, untouched right half.
	m, err := saliency.New([]int{4, 4}, []float32{
		0, 0, 1, 1,
		0, 0, 1, 1,
		0, 0, 1, 1,
		0, 0, 1, 1,
	})
	require.NoError(t, err)

	out, err := ResampleMask(m, 8, 8)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, out.Data[0], 1e-2, "occluded side stays occluded")
	assert.InDelta(t, 1.0, out.Data[7], 1e-2, "untouched side stays untouched")
	for _, v := range out.Data {
		assert.GreaterOrEqual(t, v, float32(0), "values stay in [0, 1]")
		assert.LessOrEqual(t, v, float32(1), "values stay in [0, 1]")
	}
}

func TestResampleMaskDoesNotMutateInput(t *testing.T) {
	m, err := saliency.New([]int{2, 2}, []float32{0, 1, 1, 0})
	require.NoError(t, err)

	_, err = ResampleMask(m, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 1, 0}, m.Data, "caller-owned mask stays untouched")
}

func TestResampleMaskRejectsBadInputs(t *testing.T) {
	rank3, err := saliency.New([]int{2, 2, 2}, make([]float32, 8))
	require.NoError(t, err)
	_, err = ResampleMask(rank3, 4, 4)
	assert.Error(t, err, "only rank-2 masks can be resampled")

	m, err := saliency.New([]int{2, 2}, []float32{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = ResampleMask(m, 0, 4)
	assert.Error(t, err, "target dimensions must be positive")

	empty := &saliency.Map{}
	_, err = ResampleMask(empty, 4, 4)
	assert.True(t, saliency.IsInvalidInput(err), "malformed masks fail validation")
}
