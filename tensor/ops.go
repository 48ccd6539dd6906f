package tensor

// Method wrappers dispatching to the tensor's backend. Going through
// the backend is what lets the autodiff decorator record operations.

// Add performs element-wise addition with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.backend.Add(t, other)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.backend.Sub(t, other)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.backend.Mul(t, other)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.backend.Div(t, other)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return t.backend.MatMul(t, other)
}

// Transpose swaps the rows and columns of a 2D tensor.
func (t *Tensor) Transpose() *Tensor {
	return t.backend.Transpose(t)
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	return t.backend.Reshape(t, Shape(dims))
}

// AddScalar adds a scalar to every element.
func (t *Tensor) AddScalar(s float32) *Tensor {
	return t.backend.AddScalar(t, s)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor) MulScalar(s float32) *Tensor {
	return t.backend.MulScalar(t, s)
}

// Exp computes e^x for each element.
func (t *Tensor) Exp() *Tensor {
	return t.backend.Exp(t)
}

// Log computes the natural logarithm of each element.
func (t *Tensor) Log() *Tensor {
	return t.backend.Log(t)
}

// ReLU computes max(0, x) for each element.
func (t *Tensor) ReLU() *Tensor {
	return t.backend.ReLU(t)
}

// Sigmoid computes 1/(1+e^-x) for each element.
func (t *Tensor) Sigmoid() *Tensor {
	return t.backend.Sigmoid(t)
}

// Sum computes the sum of all elements, returning a scalar tensor.
func (t *Tensor) Sum() *Tensor {
	return t.backend.Sum(t)
}
