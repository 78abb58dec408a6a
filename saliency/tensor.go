package saliency

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// FromTensor copies a dense float32 tensor into a Map. This is the interop
// boundary for upstream saliency generators that hand over gorgonia
// containers; the tensor's backing slice is copied, never aliased.
//
// Arguments:
//   - t: The dense tensor to convert. Must hold float32 elements.
//
// Returns:
//   - *Map: A map with the tensor's shape and a copy of its data.
//   - error: An error if the tensor is nil or not float32-backed.
func FromTensor(t *tensor.Dense) (*Map, error) {
	if t == nil {
		return nil, errors.New("tensor is nil")
	}
	if t.Dtype() != tensor.Float32 {
		return nil, errors.Errorf("unsupported tensor dtype %v: saliency maps are float32", t.Dtype())
	}
	data, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("tensor backing is %T, expected []float32", t.Data())
	}
	return New(
		append([]int(nil), t.Shape()...),
		append([]float32(nil), data...),
	)
}

// Tensor copies the map into a dense tensor for consumers that operate on
// gorgonia containers.
func (m *Map) Tensor() *tensor.Dense {
	return tensor.New(
		tensor.WithShape(m.Shape...),
		tensor.WithBacking(append([]float32(nil), m.Data...)),
	)
}
