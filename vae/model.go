// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vae implements a variational autoencoder over flattened
// image vectors: an encoder producing a diagonal Gaussian posterior,
// a reparameterized latent sampler, and a decoder producing Bernoulli
// pixel means.
package vae

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/vae/nn"
	"github.com/born-ml/vae/tensor"
)

// Mode selects stochastic or deterministic latent sampling.
type Mode int

const (
	// Training draws z = mu + eps*std with eps ~ N(0, 1).
	Training Mode = iota
	// Inference returns the posterior mean deterministically.
	Inference
)

// Config holds the network dimensions.
type Config struct {
	InputDim  int // flattened input size, e.g. 784 for 28x28 images
	HiddenDim int // width of the single hidden layer on each side
	LatentDim int // dimensionality of z
}

// DefaultConfig returns the dimensions used for MNIST:
// 784-dimensional inputs, 400 hidden units, 20 latent dimensions.
func DefaultConfig() Config {
	return Config{InputDim: 784, HiddenDim: 400, LatentDim: 20}
}

// Validate checks that all dimensions are positive.
func (c Config) Validate() error {
	if c.InputDim <= 0 {
		return fmt.Errorf("input dimension must be positive, got %d", c.InputDim)
	}
	if c.HiddenDim <= 0 {
		return fmt.Errorf("hidden dimension must be positive, got %d", c.HiddenDim)
	}
	if c.LatentDim <= 0 {
		return fmt.Errorf("latent dimension must be positive, got %d", c.LatentDim)
	}
	return nil
}

// VAE is the full encoder/sampler/decoder network.
//
// Encoder:  input → fc1 → ReLU → {fc21: mu, fc22: logvar}
// Decoder:  z → fc3 → ReLU → fc4 → Sigmoid
type VAE struct {
	cfg Config

	fc1  *nn.Linear // input → hidden
	fc21 *nn.Linear // hidden → mu
	fc22 *nn.Linear // hidden → logvar
	fc3  *nn.Linear // latent → hidden
	fc4  *nn.Linear // hidden → reconstruction

	relu    *nn.ReLU
	sigmoid *nn.Sigmoid
}

// New builds a VAE with Xavier-initialized weights drawn from rng.
// The backend determines whether forward passes are recorded for
// gradients; pass an autodiff backend for training.
func New(cfg Config, rng *rand.Rand, b tensor.Backend) (*VAE, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &VAE{
		cfg:     cfg,
		fc1:     nn.NewLinear("fc1", cfg.InputDim, cfg.HiddenDim, rng, b),
		fc21:    nn.NewLinear("fc21", cfg.HiddenDim, cfg.LatentDim, rng, b),
		fc22:    nn.NewLinear("fc22", cfg.HiddenDim, cfg.LatentDim, rng, b),
		fc3:     nn.NewLinear("fc3", cfg.LatentDim, cfg.HiddenDim, rng, b),
		fc4:     nn.NewLinear("fc4", cfg.HiddenDim, cfg.InputDim, rng, b),
		relu:    nn.NewReLU(),
		sigmoid: nn.NewSigmoid(),
	}, nil
}

// Encode maps a (batch, inputDim) batch to the posterior parameters
// mu and logvar, each (batch, latentDim).
func (m *VAE) Encode(x *tensor.Tensor) (mu, logvar *tensor.Tensor) {
	h := m.relu.Forward(m.fc1.Forward(x))
	return m.fc21.Forward(h), m.fc22.Forward(h)
}

// Reparameterize draws a latent sample from N(mu, exp(logvar)).
//
// In Training mode z = mu + eps ⊙ exp(0.5·logvar) with eps ~ N(0, 1)
// drawn from rng. The noise enters as a constant, so gradients flow
// to mu and logvar but not through the draw itself. In Inference mode
// the posterior mean is returned unchanged.
func (m *VAE) Reparameterize(mu, logvar *tensor.Tensor, mode Mode, rng *rand.Rand) *tensor.Tensor {
	if mode == Inference {
		return mu
	}
	std := logvar.MulScalar(0.5).Exp()
	eps := tensor.Randn(mu.Shape(), rng, mu.Backend())
	return eps.Mul(std).Add(mu)
}

// Decode maps a (batch, latentDim) latent batch to (batch, inputDim)
// Bernoulli means in (0, 1).
func (m *VAE) Decode(z *tensor.Tensor) *tensor.Tensor {
	h := m.relu.Forward(m.fc3.Forward(z))
	return m.sigmoid.Forward(m.fc4.Forward(h))
}

// Forward runs the full pass: encode, sample, decode.
func (m *VAE) Forward(x *tensor.Tensor, mode Mode, rng *rand.Rand) (recon, mu, logvar *tensor.Tensor) {
	mu, logvar = m.Encode(x)
	z := m.Reparameterize(mu, logvar, mode, rng)
	return m.Decode(z), mu, logvar
}

// Parameters returns all trainable parameters of the network.
func (m *VAE) Parameters() []*nn.Parameter {
	var params []*nn.Parameter
	for _, l := range []*nn.Linear{m.fc1, m.fc21, m.fc22, m.fc3, m.fc4} {
		params = append(params, l.Parameters()...)
	}
	return params
}

// InputDim returns the flattened input size.
func (m *VAE) InputDim() int { return m.cfg.InputDim }

// HiddenDim returns the hidden layer width.
func (m *VAE) HiddenDim() int { return m.cfg.HiddenDim }

// LatentDim returns the latent dimensionality.
func (m *VAE) LatentDim() int { return m.cfg.LatentDim }
