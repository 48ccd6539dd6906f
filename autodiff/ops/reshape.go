package ops

import "github.com/born-ml/vae/tensor"

// ReshapeOp records z = reshape(a).
type ReshapeOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewReshapeOp creates a reshape operation.
func NewReshapeOp(input, output *tensor.Tensor) *ReshapeOp {
	return &ReshapeOp{input: input, output: output}
}

// Backward: the gradient is reshaped back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{b.Reshape(outputGrad, op.input.Shape())}
}

func (op *ReshapeOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *ReshapeOp) Output() *tensor.Tensor   { return op.output }
