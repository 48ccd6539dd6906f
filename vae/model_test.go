package vae_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/vae/autodiff"
	"github.com/born-ml/vae/backend/cpu"
	"github.com/born-ml/vae/tensor"
	"github.com/born-ml/vae/vae"
)

func newModel(t *testing.T, cfg vae.Config, seed int64) (*vae.VAE, *rand.Rand, tensor.Backend) {
	t.Helper()
	b := cpu.New()
	rng := rand.New(rand.NewSource(seed))
	m, err := vae.New(cfg, rng, b)
	require.NoError(t, err)
	return m, rng, b
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, vae.DefaultConfig().Validate())
	assert.Error(t, vae.Config{InputDim: 0, HiddenDim: 4, LatentDim: 2}.Validate())
	assert.Error(t, vae.Config{InputDim: 4, HiddenDim: -1, LatentDim: 2}.Validate())
	assert.Error(t, vae.Config{InputDim: 4, HiddenDim: 4, LatentDim: 0}.Validate())
}

func TestForwardShapes(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, rng, b := newModel(t, cfg, 1)

	x := tensor.Rand(tensor.Shape{5, 16}, rng, b)
	recon, mu, logvar := m.Forward(x, vae.Training, rng)

	assert.True(t, recon.Shape().Equal(tensor.Shape{5, 16}))
	assert.True(t, mu.Shape().Equal(tensor.Shape{5, 4}))
	assert.True(t, logvar.Shape().Equal(tensor.Shape{5, 4}))
}

func TestForwardSingleExample(t *testing.T) {
	cfg := vae.Config{InputDim: 4, HiddenDim: 3, LatentDim: 2}
	m, rng, b := newModel(t, cfg, 1)

	x, err := tensor.FromSlice([]float32{0.1, 0.9, 0.1, 0.9}, tensor.Shape{1, 4}, b)
	require.NoError(t, err)

	recon, mu, logvar := m.Forward(x, vae.Training, rng)
	assert.True(t, recon.Shape().Equal(tensor.Shape{1, 4}))
	assert.True(t, mu.Shape().Equal(tensor.Shape{1, 2}))
	assert.True(t, logvar.Shape().Equal(tensor.Shape{1, 2}))

	for _, out := range []*tensor.Tensor{recon, mu, logvar} {
		for _, v := range out.Data() {
			assert.False(t, math.IsNaN(float64(v)))
			assert.False(t, math.IsInf(float64(v), 0))
		}
	}
}

func TestDecoderOutputInUnitInterval(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, rng, b := newModel(t, cfg, 1)

	z := tensor.Randn(tensor.Shape{20, 4}, rng, b)
	out := m.Decode(z)
	for _, v := range out.Data() {
		assert.Greater(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestInferenceModeIsDeterministic(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, rng, b := newModel(t, cfg, 1)

	x := tensor.Rand(tensor.Shape{3, 16}, rng, b)
	r1, _, _ := m.Forward(x, vae.Inference, rng)
	r2, _, _ := m.Forward(x, vae.Inference, rng)
	assert.Equal(t, r1.Data(), r2.Data())
}

func TestTrainingModeSamples(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, rng, b := newModel(t, cfg, 1)

	mu := tensor.Zeros(tensor.Shape{2, 4}, b)
	logvar := tensor.Zeros(tensor.Shape{2, 4}, b)

	z1 := m.Reparameterize(mu, logvar, vae.Training, rng)
	z2 := m.Reparameterize(mu, logvar, vae.Training, rng)
	assert.NotEqual(t, z1.Data(), z2.Data())

	zi := m.Reparameterize(mu, logvar, vae.Inference, rng)
	assert.Equal(t, mu.Data(), zi.Data())
}

// Samples from the reparameterized posterior must match the requested
// Gaussian statistics.
func TestReparameterizeStatistics(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 1}
	m, rng, b := newModel(t, cfg, 1)

	const n = 5000
	wantMean, wantStd := float32(2.0), float32(0.5)
	logvar := tensor.Full(tensor.Shape{n, 1}, 2*float32(math.Log(float64(wantStd))), b)
	mu := tensor.Full(tensor.Shape{n, 1}, wantMean, b)

	z := m.Reparameterize(mu, logvar, vae.Training, rng)

	samples := make([]float64, n)
	for i, v := range z.Data() {
		samples[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, float64(wantMean), mean, 0.05)
	assert.InDelta(t, float64(wantStd), std, 0.05)
}

func TestParameters(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, _, _ := newModel(t, cfg, 1)

	// Five linear layers, each with weight and bias.
	params := m.Parameters()
	assert.Len(t, params, 10)

	seen := map[string]bool{}
	for _, p := range params {
		seen[p.Name()] = true
	}
	assert.True(t, seen["fc1.weight"])
	assert.True(t, seen["fc22.bias"])
	assert.True(t, seen["fc4.weight"])
}

func TestInitReproducibleFromSeed(t *testing.T) {
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m1, _, _ := newModel(t, cfg, 7)
	m2, _, _ := newModel(t, cfg, 7)

	p1, p2 := m1.Parameters(), m2.Parameters()
	require.Equal(t, len(p1), len(p2))
	for i := range p1 {
		assert.Equal(t, p1[i].Tensor().Data(), p2[i].Tensor().Data(), p1[i].Name())
	}
}

// Training end to end on one batch: gradients flow to all parameters
// through the autodiff backend.
func TestGradientsReachAllParameters(t *testing.T) {
	ad := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(1))
	cfg := vae.Config{InputDim: 16, HiddenDim: 8, LatentDim: 4}
	m, err := vae.New(cfg, rng, ad)
	require.NoError(t, err)

	x := tensor.Rand(tensor.Shape{4, 16}, rng, ad)

	ad.Tape().StartRecording()
	recon, mu, logvar := m.Forward(x, vae.Training, rng)
	loss := vae.Loss(recon, x, mu, logvar)
	ad.Tape().StopRecording()

	grads := ad.Backward(loss)
	for _, p := range m.Parameters() {
		g, ok := grads[p.Tensor()]
		require.True(t, ok, "no gradient for %s", p.Name())
		assert.True(t, g.Shape().Equal(p.Tensor().Shape()), "gradient shape mismatch for %s", p.Name())
	}
}
