// Package ops defines the differentiable operations recorded on the
// gradient tape. Each operation captures its inputs and output during
// the forward pass and knows how to compute input gradients from the
// output gradient during the backward pass.
package ops

import "github.com/born-ml/vae/tensor"

// Operation is a single recorded step of the forward computation.
type Operation interface {
	// Backward computes gradients with respect to the inputs, given the
	// gradient with respect to the output. The returned slice is
	// parallel to Inputs(). Gradient computation goes through the
	// provided backend so it is never itself recorded.
	Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor

	// Inputs returns the input tensors of this operation.
	Inputs() []*tensor.Tensor

	// Output returns the output tensor of this operation.
	Output() *tensor.Tensor
}
