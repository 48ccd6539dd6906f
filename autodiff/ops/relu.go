package ops

import "github.com/born-ml/vae/tensor"

// ReLUOp records z = max(0, a).
type ReLUOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewReLUOp creates a ReLU operation.
func NewReLUOp(input, output *tensor.Tensor) *ReLUOp {
	return &ReLUOp{input: input, output: output}
}

// Backward: dz/da = 1 where a > 0, else 0.
func (op *ReLUOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	mask := make([]float32, op.input.NumElements())
	for i, v := range op.input.Data() {
		if v > 0 {
			mask[i] = 1
		}
	}
	return []*tensor.Tensor{b.Mul(outputGrad, tensor.New(mask, op.input.Shape(), b))}
}

func (op *ReLUOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *ReLUOp) Output() *tensor.Tensor   { return op.output }
