package ops

import "github.com/born-ml/vae/tensor"

// SumOp records z = Σa (total sum to a scalar).
type SumOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewSumOp creates a sum reduction operation.
func NewSumOp(input, output *tensor.Tensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward: every input element contributed with weight 1, so the
// scalar output gradient is broadcast to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Full(op.input.Shape(), outputGrad.Item(), b)}
}

func (op *SumOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *SumOp) Output() *tensor.Tensor   { return op.output }
