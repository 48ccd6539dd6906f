// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go reference implementation of the
// tensor.Backend interface.
//
// Every operation allocates a fresh result tensor; inputs are never
// modified. Shape violations panic at the offending operation.
package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/vae/tensor"
)

// Backend is the CPU compute backend.
type Backend struct{}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with broadcasting.
func (b *Backend) Add(a, c *tensor.Tensor) *tensor.Tensor {
	return b.broadcastBinary(a, c, "Add", func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (b *Backend) Sub(a, c *tensor.Tensor) *tensor.Tensor {
	return b.broadcastBinary(a, c, "Sub", func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (b *Backend) Mul(a, c *tensor.Tensor) *tensor.Tensor {
	return b.broadcastBinary(a, c, "Mul", func(x, y float32) float32 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (b *Backend) Div(a, c *tensor.Tensor) *tensor.Tensor {
	return b.broadcastBinary(a, c, "Div", func(x, y float32) float32 { return x / y })
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (b *Backend) MatMul(a, c *tensor.Tensor) *tensor.Tensor {
	as, cs := a.Shape(), c.Shape()
	if len(as) != 2 || len(cs) != 2 {
		panic(fmt.Sprintf("MatMul: expected 2D tensors, got %v and %v", as, cs))
	}
	if as[1] != cs[0] {
		panic(fmt.Sprintf("MatMul: inner dimensions do not match: %v @ %v", as, cs))
	}

	m, k, n := as[0], as[1], cs[1]
	aData, cData := a.Data(), c.Data()
	out := make([]float32, m*n)

	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := aData[i*k+l]
			if av == 0 {
				continue
			}
			row := cData[l*n : (l+1)*n]
			outRow := out[i*n : (i+1)*n]
			for j, cv := range row {
				outRow[j] += av * cv
			}
		}
	}

	return tensor.New(out, tensor.Shape{m, n}, b)
}

// Transpose swaps rows and columns of a 2D tensor.
func (b *Backend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	s := t.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("Transpose: expected 2D tensor, got %v", s))
	}
	rows, cols := s[0], s[1]
	data := t.Data()
	out := make([]float32, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}
	return tensor.New(out, tensor.Shape{cols, rows}, b)
}

// Reshape returns a tensor with the same data but a different shape.
func (b *Backend) Reshape(t *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	if t.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("Reshape: cannot reshape %v to %v", t.Shape(), shape))
	}
	out := make([]float32, t.NumElements())
	copy(out, t.Data())
	return tensor.New(out, shape, b)
}

// AddScalar adds a scalar to every element.
func (b *Backend) AddScalar(t *tensor.Tensor, s float32) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 { return x + s })
}

// MulScalar multiplies every element by a scalar.
func (b *Backend) MulScalar(t *tensor.Tensor, s float32) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 { return x * s })
}

// Exp computes e^x for each element.
func (b *Backend) Exp(t *tensor.Tensor) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 { return float32(math.Exp(float64(x))) })
}

// Log computes the natural logarithm of each element.
func (b *Backend) Log(t *tensor.Tensor) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 { return float32(math.Log(float64(x))) })
}

// ReLU computes max(0, x) for each element.
func (b *Backend) ReLU(t *tensor.Tensor) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Sigmoid computes 1/(1+e^-x) for each element.
func (b *Backend) Sigmoid(t *tensor.Tensor) *tensor.Tensor {
	return b.unary(t, func(x float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(float64(-x))))
	})
}

// Sum computes the total sum of all elements as a scalar tensor.
func (b *Backend) Sum(t *tensor.Tensor) *tensor.Tensor {
	var sum float32
	for _, v := range t.Data() {
		sum += v
	}
	return tensor.New([]float32{sum}, tensor.Shape{}, b)
}

// unary applies f element-wise into a fresh tensor.
func (b *Backend) unary(t *tensor.Tensor, f func(float32) float32) *tensor.Tensor {
	data := t.Data()
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = f(v)
	}
	return tensor.New(out, t.Shape(), b)
}

// broadcastBinary applies f element-wise over two tensors, broadcasting
// shapes per tensor.BroadcastShapes.
func (b *Backend) broadcastBinary(x, y *tensor.Tensor, opName string, f func(a, b float32) float32) *tensor.Tensor {
	xs, ys := x.Shape(), y.Shape()

	// Fast path: identical shapes.
	if xs.Equal(ys) {
		xData, yData := x.Data(), y.Data()
		out := make([]float32, len(xData))
		for i := range xData {
			out[i] = f(xData[i], yData[i])
		}
		return tensor.New(out, xs, b)
	}

	outShape, err := tensor.BroadcastShapes(xs, ys)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	out := make([]float32, outShape.NumElements())
	outStrides := outShape.ComputeStrides()
	xData, yData := x.Data(), y.Data()
	xStrides := broadcastStrides(xs, outShape)
	yStrides := broadcastStrides(ys, outShape)

	for i := range out {
		xIdx, yIdx := 0, 0
		rem := i
		for d := 0; d < len(outShape); d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			xIdx += coord * xStrides[d]
			yIdx += coord * yStrides[d]
		}
		out[i] = f(xData[xIdx], yData[yIdx])
	}

	return tensor.New(out, outShape, b)
}

// broadcastStrides computes the strides of shape s viewed as outShape:
// broadcast dimensions (size 1, or missing on the left) get stride 0.
func broadcastStrides(s, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	sStrides := s.ComputeStrides()
	offset := len(outShape) - len(s)
	for d := range outShape {
		sd := d - offset
		if sd < 0 || s[sd] == 1 && outShape[d] != 1 {
			strides[d] = 0
		} else {
			strides[d] = sStrides[sd]
		}
	}
	return strides
}
