package ops

import "github.com/born-ml/vae/tensor"

// DivOp records z = a / b (element-wise).
type DivOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewDivOp creates an element-wise division operation.
func NewDivOp(a, b, output *tensor.Tensor) *DivOp {
	return &DivOp{a: a, b: b, output: output}
}

// Backward: dz/da = 1/b, dz/db = -a/b².
func (op *DivOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	gradA := b.Div(outputGrad, op.b)
	// -grad * a / b² = -(grad/b) * (a/b)
	gradB := b.MulScalar(b.Mul(gradA, b.Div(op.a, op.b)), -1)
	return []*tensor.Tensor{
		reduceBroadcast(gradA, op.a.Shape(), b),
		reduceBroadcast(gradB, op.b.Shape(), b),
	}
}

func (op *DivOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }
func (op *DivOp) Output() *tensor.Tensor   { return op.output }
