// Package saliency - core saliency map representation and the shared numeric
// utilities that validate and normalize maps before metric computation.
package saliency

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Map is a saliency map: per-location attribution scores for one prediction
// target (class or detection), stored row-major as a flat float32 slice with
// an explicit shape. Maps are owned by the caller; nothing in this package
// retains references to them or mutates them.
type Map struct {
	// Data holds the attribution scores in row-major order.
	Data []float32 `json:"data" yaml:"data"`
	// Shape holds the dimensions of the map, e.g. [height, width] for a
	// single 2D map or [batch, height, width] for a stack.
	Shape []int `json:"shape" yaml:"shape"`
}

// New creates a Map from a shape and row-major data.
//
// Arguments:
//   - shape: The dimensions of the map. Every dimension must be positive.
//   - data: Row-major scores whose length must equal the shape's element count.
//
// Returns:
//   - *Map: The constructed map. The slices are used as-is, not copied.
//   - error: An error if the shape is empty, has a non-positive dimension, or
//     disagrees with the data length.
func New(shape []int, data []float32) (*Map, error) {
	if len(shape) == 0 {
		return nil, errors.New("saliency map shape must have at least one dimension")
	}
	size := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, errors.Errorf("saliency map shape %v has non-positive dimension", shape)
		}
		size *= dim
	}
	if size != len(data) {
		return nil, errors.Errorf("saliency map shape %v requires %d elements, got %d",
			shape, size, len(data))
	}
	return &Map{Data: data, Shape: shape}, nil
}

// Rank returns the number of dimensions of the map.
func (m *Map) Rank() int {
	return len(m.Shape)
}

// Size returns the number of elements in the map.
func (m *Map) Size() int {
	return len(m.Data)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return &Map{
		Data:  append([]float32(nil), m.Data...),
		Shape: append([]int(nil), m.Shape...),
	}
}

// Validate checks that the map is non-empty and contains only finite values.
//
// Returns:
//   - error: An *InvalidInputError describing the first defect found, or nil
//     when the map is well-formed.
func (m *Map) Validate() error {
	if m == nil || len(m.Data) == 0 {
		return &InvalidInputError{
			Reason: "map has no elements",
			Shape:  shapeOf(m),
			Index:  -1,
		}
	}
	for i, v := range m.Data {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return &InvalidInputError{
				Reason: "map contains a non-finite value",
				Shape:  m.Shape,
				Index:  i,
				Value:  v,
			}
		}
	}
	return nil
}

// ValidateShape checks that the map's shape matches a reference shape.
//
// Arguments:
//   - reference: The expected shape, typically the spatial dimensions of the
//     image the map explains.
//
// Returns:
//   - error: A *ShapeMismatchError when the dimensions disagree, nil otherwise.
func (m *Map) ValidateShape(reference []int) error {
	got := shapeOf(m)
	if len(got) != len(reference) {
		return &ShapeMismatchError{Got: got, Want: reference}
	}
	for i, dim := range got {
		if dim != reference[i] {
			return &ShapeMismatchError{Got: got, Want: reference}
		}
	}
	return nil
}

func shapeOf(m *Map) []int {
	if m == nil {
		return nil
	}
	return m.Shape
}
