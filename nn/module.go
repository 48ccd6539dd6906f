// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks: layers,
// activations, parameters and weight initializers.
package nn

import "github.com/born-ml/vae/tensor"

// Module is a unit of computation with trainable parameters.
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns the trainable parameters of the module.
	Parameters() []*Parameter
}
