package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/vae/backend/cpu"
	"github.com/born-ml/vae/nn"
	"github.com/born-ml/vae/optim"
	"github.com/born-ml/vae/tensor"
)

func newParam(data []float32) (*nn.Parameter, tensor.Backend) {
	b := cpu.New()
	t, err := tensor.FromSlice(data, tensor.Shape{len(data)}, b)
	if err != nil {
		panic(err)
	}
	return nn.NewParameter("p", t), b
}

// The first Adam step with a constant gradient moves each weight by
// approximately lr in the gradient direction, regardless of gradient
// magnitude, because the bias-corrected moments cancel.
func TestAdamFirstStep(t *testing.T) {
	p, b := newParam([]float32{1, 1})

	cfg := optim.DefaultAdamConfig()
	cfg.LR = 0.1
	adam := optim.NewAdam([]*nn.Parameter{p}, cfg)

	grad, _ := tensor.FromSlice([]float32{0.1, -0.2}, tensor.Shape{2}, b)
	adam.Step(map[*tensor.Tensor]*tensor.Tensor{p.Tensor(): grad})

	data := p.Tensor().Data()
	if math.Abs(float64(data[0])-0.9) > 1e-4 {
		t.Errorf("expected ~0.9 after step, got %v", data[0])
	}
	if math.Abs(float64(data[1])-1.1) > 1e-4 {
		t.Errorf("expected ~1.1 after step, got %v", data[1])
	}
}

func TestAdamConvergesOnQuadratic(t *testing.T) {
	p, b := newParam([]float32{5})

	adam := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{
		LR: 0.1, Beta1: 0.9, Beta2: 0.999, Epsilon: 1e-8,
	})

	// Minimize f(x) = x², gradient 2x.
	for i := 0; i < 500; i++ {
		g, _ := tensor.FromSlice([]float32{2 * p.Tensor().Data()[0]}, tensor.Shape{1}, b)
		adam.Step(map[*tensor.Tensor]*tensor.Tensor{p.Tensor(): g})
	}

	if x := p.Tensor().Data()[0]; math.Abs(float64(x)) > 0.05 {
		t.Errorf("expected convergence near 0, got %v", x)
	}
}

func TestAdamSkipsParamsWithoutGradient(t *testing.T) {
	p, _ := newParam([]float32{3})

	adam := optim.NewAdam([]*nn.Parameter{p}, optim.DefaultAdamConfig())
	adam.Step(map[*tensor.Tensor]*tensor.Tensor{})

	if p.Tensor().Data()[0] != 3 {
		t.Errorf("parameter without gradient must not move, got %v", p.Tensor().Data()[0])
	}
}

func TestZeroGrad(t *testing.T) {
	p, b := newParam([]float32{1})

	adam := optim.NewAdam([]*nn.Parameter{p}, optim.DefaultAdamConfig())
	g, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1}, b)
	adam.Step(map[*tensor.Tensor]*tensor.Tensor{p.Tensor(): g})

	if p.Grad() == nil {
		t.Fatal("expected gradient to be stored after Step")
	}
	adam.ZeroGrad()
	if p.Grad() != nil {
		t.Fatal("expected gradient cleared after ZeroGrad")
	}
}

func TestDefaultAdamConfig(t *testing.T) {
	cfg := optim.DefaultAdamConfig()
	if cfg.LR != 1e-3 || cfg.Beta1 != 0.9 || cfg.Beta2 != 0.999 || cfg.Epsilon != 1e-8 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
