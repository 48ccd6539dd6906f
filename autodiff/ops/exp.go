package ops

import "github.com/born-ml/vae/tensor"

// ExpOp records z = e^a.
type ExpOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewExpOp creates an exponential operation.
func NewExpOp(input, output *tensor.Tensor) *ExpOp {
	return &ExpOp{input: input, output: output}
}

// Backward: dz/da = e^a, which is the forward output.
func (op *ExpOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{b.Mul(outputGrad, op.output)}
}

func (op *ExpOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *ExpOp) Output() *tensor.Tensor   { return op.output }
