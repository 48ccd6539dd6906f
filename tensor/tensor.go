// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense float32 tensor bound to a compute
// backend.
//
// The package defines the core types of the training stack:
//   - Tensor: a dense row-major float32 array with a shape
//   - Backend: the interface compute backends implement
//   - Shape: dimension list with broadcasting rules
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // element-wise addition
package tensor

import "fmt"

// Tensor is a dense float32 tensor with row-major layout.
//
// Every tensor is bound to a Backend; its methods dispatch to that
// backend, which is how the autodiff decorator observes operations.
type Tensor struct {
	data    []float32
	shape   Shape
	backend Backend
}

// New wraps a data slice as a tensor. The slice is NOT copied; the
// tensor takes ownership. len(data) must equal shape.NumElements().
func New(data []float32, shape Shape, b Backend) *Tensor {
	if len(data) != shape.NumElements() {
		panic(fmt.Sprintf("tensor.New: shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data)))
	}
	return &Tensor{data: data, shape: shape.Clone(), backend: b}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Backend returns the computation backend this tensor is bound to.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Data returns the underlying slice (zero-copy).
//
// WARNING: modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Item returns the value of a scalar (0-D or single-element) tensor.
// Panics otherwise.
func (t *Tensor) Item() float32 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.offset(indices...)]
}

// Set sets the element at the given indices.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.offset(indices...)] = value
}

func (t *Tensor) offset(indices ...int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone(), backend: t.backend}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v on %s", t.shape, t.backend.Name())
}
