package ops

import "github.com/born-ml/vae/tensor"

// LogOp records z = ln(a).
type LogOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewLogOp creates a natural logarithm operation.
func NewLogOp(input, output *tensor.Tensor) *LogOp {
	return &LogOp{input: input, output: output}
}

// Backward: dz/da = 1/a.
func (op *LogOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{b.Div(outputGrad, op.input)}
}

func (op *LogOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *LogOp) Output() *tensor.Tensor   { return op.output }
