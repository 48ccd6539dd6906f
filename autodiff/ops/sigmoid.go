package ops

import "github.com/born-ml/vae/tensor"

// SigmoidOp records z = σ(a).
type SigmoidOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewSigmoidOp creates a sigmoid operation.
func NewSigmoidOp(input, output *tensor.Tensor) *SigmoidOp {
	return &SigmoidOp{input: input, output: output}
}

// Backward: dz/da = σ(a)·(1-σ(a)), computed from the forward output.
func (op *SigmoidOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	y := op.output
	oneMinusY := b.AddScalar(b.MulScalar(y, -1), 1)
	return []*tensor.Tensor{b.Mul(outputGrad, b.Mul(y, oneMinusY))}
}

func (op *SigmoidOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *SigmoidOp) Output() *tensor.Tensor   { return op.output }
