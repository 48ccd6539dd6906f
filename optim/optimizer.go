// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based parameter optimizers.
package optim

import "github.com/born-ml/vae/tensor"

// Optimizer updates parameters from gradients.
type Optimizer interface {
	// Step applies one update using the gradients in the map, keyed by
	// parameter tensor identity. Parameters without a gradient entry
	// are left untouched.
	Step(grads map[*tensor.Tensor]*tensor.Tensor)

	// ZeroGrad clears the gradient slot of every managed parameter.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float32
}
