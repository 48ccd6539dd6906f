package ops

import "github.com/born-ml/vae/tensor"

// MulOp records z = a ⊙ b (element-wise).
type MulOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewMulOp creates an element-wise multiplication operation.
func NewMulOp(a, b, output *tensor.Tensor) *MulOp {
	return &MulOp{a: a, b: b, output: output}
}

// Backward: dz/da = b, dz/db = a.
func (op *MulOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{
		reduceBroadcast(b.Mul(outputGrad, op.b), op.a.Shape(), b),
		reduceBroadcast(b.Mul(outputGrad, op.a), op.b.Shape(), b),
	}
}

func (op *MulOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }
func (op *MulOp) Output() *tensor.Tensor   { return op.output }
