package vae

import "github.com/born-ml/vae/tensor"

// logEps keeps log() away from sigmoid outputs that saturate to
// exactly 0 or 1 in float32.
const logEps = 1e-7

// Loss computes the negative evidence lower bound for a batch, summed
// over both elements and batch entries:
//
//	BCE = Σ x·log(x̂) + (1-x)·log(1-x̂)
//	KLD = 0.5·Σ (1 + logvar - mu² - exp(logvar))
//	loss = -(BCE + KLD)
//
// Both terms are sums, not means, so the gradient scale matches the
// batch size. Divide by the batch size for per-example reporting.
func Loss(recon, x, mu, logvar *tensor.Tensor) *tensor.Tensor {
	// Bernoulli log-likelihood of the input under the decoder output.
	oneMinus := func(t *tensor.Tensor) *tensor.Tensor { return t.MulScalar(-1).AddScalar(1) }
	bce := x.Mul(recon.AddScalar(logEps).Log()).
		Add(oneMinus(x).Mul(oneMinus(recon).AddScalar(logEps).Log())).
		Sum()

	// KL divergence of N(mu, exp(logvar)) from N(0, I), closed form.
	kld := logvar.AddScalar(1).
		Sub(mu.Mul(mu)).
		Sub(logvar.Exp()).
		Sum().
		MulScalar(0.5)

	return bce.Add(kld).MulScalar(-1)
}
