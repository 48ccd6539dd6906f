package nn

import "github.com/born-ml/vae/tensor"

// ReLU is the rectified linear activation as a module.
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward computes max(0, x) element-wise.
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.ReLU()
}

// Parameters returns nil; activations have no trainable state.
func (r *ReLU) Parameters() []*Parameter { return nil }

// Sigmoid is the logistic activation as a module.
type Sigmoid struct{}

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward computes 1/(1+e^-x) element-wise.
func (s *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Sigmoid()
}

// Parameters returns nil; activations have no trainable state.
func (s *Sigmoid) Parameters() []*Parameter { return nil }
