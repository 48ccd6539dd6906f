package optim

import (
	"math"

	"github.com/born-ml/vae/nn"
	"github.com/born-ml/vae/tensor"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2014) with
// first and second moment estimates and bias correction.
type Adam struct {
	parameters []*nn.Parameter
	lr         float32
	beta1      float32
	beta2      float32
	epsilon    float32

	m map[*nn.Parameter][]float32 // first moment
	v map[*nn.Parameter][]float32 // second moment
	t int                         // timestep
}

// AdamConfig holds the Adam hyperparameters.
type AdamConfig struct {
	LR      float32
	Beta1   float32
	Beta2   float32
	Epsilon float32
}

// DefaultAdamConfig returns the standard hyperparameters:
// lr=1e-3, beta1=0.9, beta2=0.999, epsilon=1e-8.
func DefaultAdamConfig() AdamConfig {
	return AdamConfig{LR: 1e-3, Beta1: 0.9, Beta2: 0.999, Epsilon: 1e-8}
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(parameters []*nn.Parameter, cfg AdamConfig) *Adam {
	return &Adam{
		parameters: parameters,
		lr:         cfg.LR,
		beta1:      cfg.Beta1,
		beta2:      cfg.Beta2,
		epsilon:    cfg.Epsilon,
		m:          make(map[*nn.Parameter][]float32),
		v:          make(map[*nn.Parameter][]float32),
	}
}

// LR returns the learning rate.
func (a *Adam) LR() float32 {
	return a.lr
}

// Step applies one Adam update to every parameter that has a gradient
// in the map. Updates are in-place on the parameter data.
func (a *Adam) Step(grads map[*tensor.Tensor]*tensor.Tensor) {
	a.t++

	// Bias correction factors for this timestep.
	bc1 := 1 - float32(math.Pow(float64(a.beta1), float64(a.t)))
	bc2 := 1 - float32(math.Pow(float64(a.beta2), float64(a.t)))

	for _, p := range a.parameters {
		grad, ok := grads[p.Tensor()]
		if !ok {
			continue
		}
		p.SetGrad(grad)

		data := p.Tensor().Data()
		gradData := grad.Data()

		m, ok := a.m[p]
		if !ok {
			m = make([]float32, len(data))
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = make([]float32, len(data))
			a.v[p] = v
		}

		for i := range data {
			g := gradData[i]
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g

			mHat := m[i] / bc1
			vHat := v[i] / bc2

			data[i] -= a.lr * mHat / (float32(math.Sqrt(float64(vHat))) + a.epsilon)
		}
	}
}

// ZeroGrad clears the gradient slot of every parameter.
func (a *Adam) ZeroGrad() {
	for _, p := range a.parameters {
		p.ZeroGrad()
	}
}
