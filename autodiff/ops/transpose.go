package ops

import "github.com/born-ml/vae/tensor"

// TransposeOp records z = aᵀ.
type TransposeOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewTransposeOp creates a transpose operation.
func NewTransposeOp(input, output *tensor.Tensor) *TransposeOp {
	return &TransposeOp{input: input, output: output}
}

// Backward: the gradient is transposed back.
func (op *TransposeOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{b.Transpose(outputGrad)}
}

func (op *TransposeOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *TransposeOp) Output() *tensor.Tensor   { return op.output }
