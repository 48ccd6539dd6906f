package ops

import "github.com/born-ml/vae/tensor"

// AddOp records z = a + b.
type AddOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewAddOp creates an addition operation.
func NewAddOp(a, b, output *tensor.Tensor) *AddOp {
	return &AddOp{a: a, b: b, output: output}
}

// Backward: dz/da = 1, dz/db = 1. Broadcast dimensions are summed out.
func (op *AddOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{
		reduceBroadcast(outputGrad, op.a.Shape(), b),
		reduceBroadcast(outputGrad, op.b.Shape(), b),
	}
}

func (op *AddOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }
func (op *AddOp) Output() *tensor.Tensor   { return op.output }
