package ops

import "github.com/born-ml/vae/tensor"

// SubOp records z = a - b.
type SubOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewSubOp creates a subtraction operation.
func NewSubOp(a, b, output *tensor.Tensor) *SubOp {
	return &SubOp{a: a, b: b, output: output}
}

// Backward: dz/da = 1, dz/db = -1.
func (op *SubOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{
		reduceBroadcast(outputGrad, op.a.Shape(), b),
		reduceBroadcast(b.MulScalar(outputGrad, -1), op.b.Shape(), b),
	}
}

func (op *SubOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }
func (op *SubOp) Output() *tensor.Tensor   { return op.output }
