package tensor

// Backend defines the interface a compute backend must implement.
// Backends carry out the actual computation for tensor operations and
// return freshly allocated result tensors; inputs are never modified.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//   - autodiff: decorator that wraps any Backend and records operations
//     on a gradient tape
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *Tensor) *Tensor
	Sub(a, b *Tensor) *Tensor
	Mul(a, b *Tensor) *Tensor
	Div(a, b *Tensor) *Tensor

	// Matrix operations (2D only).
	MatMul(a, b *Tensor) *Tensor
	Transpose(t *Tensor) *Tensor

	// Shape operations.
	Reshape(t *Tensor, shape Shape) *Tensor

	// Element-wise operations with a scalar.
	AddScalar(t *Tensor, s float32) *Tensor
	MulScalar(t *Tensor, s float32) *Tensor

	// Element-wise math.
	Exp(t *Tensor) *Tensor
	Log(t *Tensor) *Tensor

	// Activations.
	ReLU(t *Tensor) *Tensor
	Sigmoid(t *Tensor) *Tensor

	// Reductions.
	Sum(t *Tensor) *Tensor // total sum, scalar result

	// Metadata.
	Name() string
}
