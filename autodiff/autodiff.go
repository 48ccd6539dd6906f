// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff implements reverse-mode automatic differentiation
// as a backend decorator.
//
// The Backend type wraps any tensor.Backend. During the forward pass
// it delegates computation to the wrapped backend and records each
// operation on a gradient tape; Backward then walks the tape in
// reverse and returns a gradient for every tensor that contributed to
// the loss.
//
// Example:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//	loss := model.Forward(x) // tensor methods dispatch through ad
//	grads := ad.Backward(loss)
//	ad.Tape().Clear()
package autodiff

import (
	"github.com/born-ml/vae/autodiff/ops"
	"github.com/born-ml/vae/tensor"
)

// Backend decorates a compute backend with gradient recording.
type Backend struct {
	inner tensor.Backend
	tape  *GradientTape
}

// New wraps a backend with a fresh gradient tape.
func New(inner tensor.Backend) *Backend {
	return &Backend{inner: inner, tape: NewGradientTape()}
}

// Tape returns the gradient tape.
func (b *Backend) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend.
func (b *Backend) Inner() tensor.Backend {
	return b.inner
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Backward computes gradients of output with respect to every tensor
// that contributed to it. The seed gradient is a tensor of ones in the
// output's shape.
func (b *Backend) Backward(output *tensor.Tensor) map[*tensor.Tensor]*tensor.Tensor {
	seed := tensor.Ones(output.Shape(), b.inner)
	return b.tape.Backward(output, seed, b.inner)
}

// rebind attaches a result produced by the inner backend to this
// decorator, so chained tensor method calls keep recording.
func (b *Backend) rebind(t *tensor.Tensor) *tensor.Tensor {
	return tensor.New(t.Data(), t.Shape(), b)
}

// Add performs element-wise addition and records it.
func (b *Backend) Add(x, y *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Add(x, y))
	b.tape.Record(ops.NewAddOp(x, y, out))
	return out
}

// Sub performs element-wise subtraction and records it.
func (b *Backend) Sub(x, y *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Sub(x, y))
	b.tape.Record(ops.NewSubOp(x, y, out))
	return out
}

// Mul performs element-wise multiplication and records it.
func (b *Backend) Mul(x, y *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Mul(x, y))
	b.tape.Record(ops.NewMulOp(x, y, out))
	return out
}

// Div performs element-wise division and records it.
func (b *Backend) Div(x, y *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Div(x, y))
	b.tape.Record(ops.NewDivOp(x, y, out))
	return out
}

// MatMul performs matrix multiplication and records it.
func (b *Backend) MatMul(x, y *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.MatMul(x, y))
	b.tape.Record(ops.NewMatMulOp(x, y, out))
	return out
}

// Transpose transposes a 2D tensor and records it.
func (b *Backend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Transpose(t))
	b.tape.Record(ops.NewTransposeOp(t, out))
	return out
}

// Reshape reshapes a tensor and records it.
func (b *Backend) Reshape(t *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	out := b.rebind(b.inner.Reshape(t, shape))
	b.tape.Record(ops.NewReshapeOp(t, out))
	return out
}

// AddScalar adds a scalar and records it.
func (b *Backend) AddScalar(t *tensor.Tensor, s float32) *tensor.Tensor {
	out := b.rebind(b.inner.AddScalar(t, s))
	b.tape.Record(ops.NewAddScalarOp(t, out))
	return out
}

// MulScalar multiplies by a scalar and records it.
func (b *Backend) MulScalar(t *tensor.Tensor, s float32) *tensor.Tensor {
	out := b.rebind(b.inner.MulScalar(t, s))
	b.tape.Record(ops.NewMulScalarOp(t, out, s))
	return out
}

// Exp computes the element-wise exponential and records it.
func (b *Backend) Exp(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Exp(t))
	b.tape.Record(ops.NewExpOp(t, out))
	return out
}

// Log computes the element-wise natural logarithm and records it.
func (b *Backend) Log(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Log(t))
	b.tape.Record(ops.NewLogOp(t, out))
	return out
}

// ReLU applies the ReLU activation and records it.
func (b *Backend) ReLU(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.ReLU(t))
	b.tape.Record(ops.NewReLUOp(t, out))
	return out
}

// Sigmoid applies the sigmoid activation and records it.
func (b *Backend) Sigmoid(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Sigmoid(t))
	b.tape.Record(ops.NewSigmoidOp(t, out))
	return out
}

// Sum reduces to a scalar and records it.
func (b *Backend) Sum(t *tensor.Tensor) *tensor.Tensor {
	out := b.rebind(b.inner.Sum(t))
	b.tape.Record(ops.NewSumOp(t, out))
	return out
}
