package saliency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestTensorRoundTrip(t *testing.T) {
	m, err := New([]int{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	dense := m.Tensor()
	assert.Equal(t, []int{2, 3}, []int(dense.Shape()), "tensor keeps the map shape")

	back, err := FromTensor(dense)
	require.NoError(t, err, "round trip should succeed")
	assert.Equal(t, m.Shape, back.Shape, "shape survives the round trip")
	assert.Equal(t, m.Data, back.Data, "data survives the round trip")
}

func TestTensorCopiesBacking(t *testing.T) {
	m, err := New([]int{2}, []float32{1, 2})
	require.NoError(t, err)

	dense := m.Tensor()
	backing := dense.Data().([]float32)
	backing[0] = 99
	assert.Equal(t, float32(1), m.Data[0], "tensor must not alias the map's data")

	back, err := FromTensor(dense)
	require.NoError(t, err)
	backing[1] = 99
	assert.Equal(t, float32(2), back.Data[1], "map must not alias the tensor's backing")
}

func TestFromTensorRejectsUnsupported(t *testing.T) {
	_, err := FromTensor(nil)
	assert.Error(t, err, "nil tensor should be rejected")

	f64 := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]float64{1, 2, 3, 4}))
	_, err = FromTensor(f64)
	assert.Error(t, err, "non-float32 tensors should be rejected")
}
