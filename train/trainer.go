package train

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/born-ml/vae/artifact"
	"github.com/born-ml/vae/autodiff"
	"github.com/born-ml/vae/mnist"
	"github.com/born-ml/vae/optim"
	"github.com/born-ml/vae/tensor"
	"github.com/born-ml/vae/vae"
)

// Trainer owns one model, its optimizer and the random stream, and
// runs the epoch loop.
type Trainer struct {
	cfg     Config
	model   *vae.VAE
	backend *autodiff.Backend
	opt     optim.Optimizer
	rng     *rand.Rand
	log     *slog.Logger

	trainLosses []float32 // per-batch loss per example
	testLosses  []float32 // per-evaluation loss per example
}

// New creates a trainer. The model must have been built on backend so
// its parameters are recorded during forward passes. The rng drives
// batch shuffling and sampling noise; sharing it with the one used for
// weight init keeps a run reproducible from a single seed.
func New(model *vae.VAE, backend *autodiff.Backend, cfg Config, rng *rand.Rand, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	adamCfg := optim.DefaultAdamConfig()
	adamCfg.LR = cfg.LR
	return &Trainer{
		cfg:     cfg,
		model:   model,
		backend: backend,
		opt:     optim.NewAdam(model.Parameters(), adamCfg),
		rng:     rng,
		log:     logger,
	}, nil
}

// TrainLosses returns the per-batch training losses recorded so far,
// each divided by its batch size.
func (t *Trainer) TrainLosses() []float32 {
	return t.trainLosses
}

// TestLosses returns the per-evaluation losses recorded so far.
func (t *Trainer) TestLosses() []float32 {
	return t.testLosses
}

// TrainEpoch runs one pass over the training split with shuffled
// batches and returns the average loss per example.
func (t *Trainer) TrainEpoch(epoch int, ds *mnist.Dataset) float32 {
	tape := t.backend.Tape()
	batches := ds.Batches(t.cfg.BatchSize, t.rng, t.backend)

	var epochLoss float32
	seen := 0
	for i, batch := range batches {
		n := batch.Shape()[0]

		tape.Clear()
		tape.StartRecording()
		recon, mu, logvar := t.model.Forward(batch, vae.Training, t.rng)
		loss := vae.Loss(recon, batch, mu, logvar)
		tape.StopRecording()

		grads := t.backend.Backward(loss)
		t.opt.Step(grads)
		t.opt.ZeroGrad()
		tape.Clear()

		batchLoss := loss.Item()
		epochLoss += batchLoss
		seen += n
		perExample := batchLoss / float32(n)
		t.trainLosses = append(t.trainLosses, perExample)

		if i%t.cfg.LogInterval == 0 || i == len(batches)-1 {
			t.log.Info("train",
				"epoch", epoch,
				"seen", seen,
				"total", ds.Len(),
				"percent", fmt.Sprintf("%.0f%%", 100*float64(seen)/float64(ds.Len())),
				"loss", perExample,
			)
		}
	}

	avg := epochLoss / float32(ds.Len())
	t.log.Info("epoch done", "epoch", epoch, "avg_loss", avg)
	return avg
}

// Evaluate computes the average loss per example over the test split.
// The pass is deterministic: no gradient recording, no shuffling, and
// latents are the posterior means.
func (t *Trainer) Evaluate(ds *mnist.Dataset) float32 {
	defer t.pauseRecording()()

	var total float32
	for _, batch := range ds.Batches(t.cfg.BatchSize, nil, t.backend) {
		recon, mu, logvar := t.model.Forward(batch, vae.Inference, t.rng)
		total += vae.Loss(recon, batch, mu, logvar).Item()
	}

	avg := total / float32(ds.Len())
	t.testLosses = append(t.testLosses, avg)
	return avg
}

// Sample decodes n latent vectors drawn from the standard normal
// prior, returning an (n, inputDim) tensor of pixel means.
func (t *Trainer) Sample(n int) *tensor.Tensor {
	defer t.pauseRecording()()

	z := tensor.Randn(tensor.Shape{n, t.model.LatentDim()}, t.rng, t.backend)
	return t.model.Decode(z)
}

// Reconstruct encodes and decodes a batch deterministically.
func (t *Trainer) Reconstruct(x *tensor.Tensor) *tensor.Tensor {
	defer t.pauseRecording()()

	recon, _, _ := t.model.Forward(x, vae.Inference, t.rng)
	return recon
}

// pauseRecording stops tape recording and returns a func restoring the
// previous state.
func (t *Trainer) pauseRecording() func() {
	tape := t.backend.Tape()
	was := tape.IsRecording()
	tape.StopRecording()
	return func() {
		if was {
			tape.StartRecording()
		}
	}
}

// Run executes the full schedule: for each epoch, evaluate on the test
// split, train one epoch, then decode prior samples; a final
// evaluation follows the last epoch. When OutDir is set, sample grids
// and reconstruction sheets are written per epoch and a loss curve at
// the end.
func (t *Trainer) Run(ctx context.Context, trainDS, testDS *mnist.Dataset) error {
	if t.cfg.OutDir != "" {
		if err := os.MkdirAll(t.cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		testLoss := t.Evaluate(testDS)
		t.log.Info("test", "epoch", epoch, "loss", testLoss)

		t.TrainEpoch(epoch, trainDS)

		if err := t.writeEpochArtifacts(epoch, testDS); err != nil {
			return err
		}
	}

	finalLoss := t.Evaluate(testDS)
	t.log.Info("test", "epoch", t.cfg.Epochs+1, "loss", finalLoss)

	if t.cfg.OutDir != "" {
		path := filepath.Join(t.cfg.OutDir, "loss_curve.png")
		if err := artifact.SaveLossCurve(path, t.trainLosses); err != nil {
			return fmt.Errorf("writing loss curve: %w", err)
		}
	}

	return nil
}

func (t *Trainer) writeEpochArtifacts(epoch int, testDS *mnist.Dataset) error {
	if t.cfg.OutDir == "" {
		return nil
	}

	if t.cfg.SampleCount > 0 {
		samples := t.Sample(t.cfg.SampleCount)
		path := filepath.Join(t.cfg.OutDir, fmt.Sprintf("samples_%03d.png", epoch))
		if err := artifact.SaveImageGrid(path, rowsOf(samples), testDS.Rows, testDS.Cols, 8); err != nil {
			return fmt.Errorf("writing samples for epoch %d: %w", epoch, err)
		}
	}

	// Sheet of the first eight test digits over their reconstructions.
	n := min(8, testDS.Len())
	if n > 0 {
		dim := testDS.Dim()
		data := make([]float32, n*dim)
		for i := 0; i < n; i++ {
			copy(data[i*dim:(i+1)*dim], testDS.Images[i])
		}
		inputs := tensor.New(data, tensor.Shape{n, dim}, t.backend)
		recon := t.Reconstruct(inputs)

		sheet := append(rowsOf(inputs), rowsOf(recon)...)
		path := filepath.Join(t.cfg.OutDir, fmt.Sprintf("reconstruction_%03d.png", epoch))
		if err := artifact.SaveImageGrid(path, sheet, testDS.Rows, testDS.Cols, n); err != nil {
			return fmt.Errorf("writing reconstructions for epoch %d: %w", epoch, err)
		}
	}

	return nil
}

// rowsOf splits a (n, dim) tensor into n per-image slices.
func rowsOf(t *tensor.Tensor) [][]float32 {
	n, dim := t.Shape()[0], t.Shape()[1]
	data := t.Data()
	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = data[i*dim : (i+1)*dim]
	}
	return rows
}
