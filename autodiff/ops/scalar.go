package ops

import "github.com/born-ml/vae/tensor"

// AddScalarOp records z = a + s.
type AddScalarOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewAddScalarOp creates a scalar addition operation.
func NewAddScalarOp(input, output *tensor.Tensor) *AddScalarOp {
	return &AddScalarOp{input: input, output: output}
}

// Backward: dz/da = 1.
func (op *AddScalarOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{outputGrad}
}

func (op *AddScalarOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *AddScalarOp) Output() *tensor.Tensor   { return op.output }

// MulScalarOp records z = a * s.
type MulScalarOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
	scalar float32
}

// NewMulScalarOp creates a scalar multiplication operation.
func NewMulScalarOp(input, output *tensor.Tensor, scalar float32) *MulScalarOp {
	return &MulScalarOp{input: input, output: output, scalar: scalar}
}

// Backward: dz/da = s.
func (op *MulScalarOp) Backward(outputGrad *tensor.Tensor, b tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{b.MulScalar(outputGrad, op.scalar)}
}

func (op *MulScalarOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.input} }
func (op *MulScalarOp) Output() *tensor.Tensor   { return op.output }
