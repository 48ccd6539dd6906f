package nn

import "github.com/born-ml/vae/tensor"

// Parameter is a trainable tensor with an associated gradient slot.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter wraps a tensor as a named trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter's value.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the currently accumulated gradient, or nil.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad stores the gradient for this parameter.
func (p *Parameter) SetGrad(g *tensor.Tensor) {
	p.grad = g
}

// ZeroGrad clears the stored gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
