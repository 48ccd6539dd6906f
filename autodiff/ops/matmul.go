package ops

import "github.com/born-ml/vae/tensor"

// MatMulOp records z = a @ b.
type MatMulOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewMatMulOp creates a matrix multiplication operation.
func NewMatMulOp(a, b, output *tensor.Tensor) *MatMulOp {
	return &MatMulOp{a: a, b: b, output: output}
}

// Backward: dz/da = grad @ bᵀ, dz/db = aᵀ @ grad.
func (op *MatMulOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{
		b.MatMul(outputGrad, b.Transpose(op.b)),
		b.MatMul(b.Transpose(op.a), outputGrad),
	}
}

func (op *MatMulOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }
func (op *MatMulOp) Output() *tensor.Tensor   { return op.output }
