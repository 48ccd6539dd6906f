// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command vae trains a variational autoencoder on MNIST digits and
// writes generated samples, reconstructions and a loss curve.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/vae/autodiff"
	"github.com/born-ml/vae/backend/cpu"
	"github.com/born-ml/vae/mnist"
	"github.com/born-ml/vae/train"
	"github.com/born-ml/vae/vae"
)

const version = "0.1.0"

var trainFlags struct {
	dataDir     string
	outDir      string
	epochs      int
	batchSize   int
	latentDim   int
	hiddenDim   int
	lr          float32
	seed        int64
	logInterval int
	samples     int
	download    bool
	synthetic   int
	mirror      string
}

func main() {
	root := &cobra.Command{
		Use:   "vae",
		Short: "Variational autoencoder trainer",
		Long: `vae trains a variational autoencoder on the MNIST handwritten
digit dataset, evaluating on the test split every epoch and decoding
samples from the latent prior along the way.`,
		SilenceUsage: true,
	}

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train the model",
		RunE:  runTrain,
	}
	f := trainCmd.Flags()
	f.StringVar(&trainFlags.dataDir, "data", "data", "directory with the MNIST IDX files")
	f.StringVar(&trainFlags.outDir, "out", "out", "directory for generated artifacts (empty to disable)")
	f.IntVar(&trainFlags.epochs, "epochs", 10, "number of training epochs")
	f.IntVar(&trainFlags.batchSize, "batch-size", 128, "examples per gradient step")
	f.IntVar(&trainFlags.latentDim, "latent", 20, "latent dimensionality")
	f.IntVar(&trainFlags.hiddenDim, "hidden", 400, "hidden layer width")
	f.Float32Var(&trainFlags.lr, "lr", 1e-3, "Adam learning rate")
	f.Int64Var(&trainFlags.seed, "seed", 1, "random seed")
	f.IntVar(&trainFlags.logInterval, "log-interval", 10, "log progress every n batches")
	f.IntVar(&trainFlags.samples, "samples", 64, "prior samples decoded per epoch")
	f.BoolVar(&trainFlags.download, "download", false, "download the dataset if missing")
	f.IntVar(&trainFlags.synthetic, "synthetic", 0, "train on n synthetic examples instead of MNIST")
	f.StringVar(&trainFlags.mirror, "mirror", mnist.DefaultMirror, "dataset download mirror")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vae %s\n", version)
		},
	}

	root.AddCommand(trainCmd, versionCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrain(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(trainFlags.seed))

	trainDS, testDS, err := loadData(ctx, rng)
	if err != nil {
		return err
	}
	logger.Info("dataset ready",
		"train", trainDS.Len(), "test", testDS.Len(),
		"rows", trainDS.Rows, "cols", trainDS.Cols)

	backend := autodiff.New(cpu.New())
	model, err := vae.New(vae.Config{
		InputDim:  trainDS.Dim(),
		HiddenDim: trainFlags.hiddenDim,
		LatentDim: trainFlags.latentDim,
	}, rng, backend)
	if err != nil {
		return err
	}

	trainer, err := train.New(model, backend, train.Config{
		Epochs:      trainFlags.epochs,
		BatchSize:   trainFlags.batchSize,
		LR:          trainFlags.lr,
		LogInterval: trainFlags.logInterval,
		SampleCount: trainFlags.samples,
		OutDir:      trainFlags.outDir,
	}, rng, logger)
	if err != nil {
		return err
	}

	if err := trainer.Run(ctx, trainDS, testDS); err != nil {
		return err
	}

	printSummary(trainer)
	return nil
}

// loadData resolves the training and test splits from the flags:
// synthetic data for smoke runs, otherwise the IDX files in the data
// directory, downloading them first when requested.
func loadData(ctx context.Context, rng *rand.Rand) (*mnist.Dataset, *mnist.Dataset, error) {
	if n := trainFlags.synthetic; n > 0 {
		full := mnist.Synthetic(n, 28, 28, rng)
		trainDS, testDS := full.Split(0.9)
		return trainDS, testDS, nil
	}

	if trainFlags.download {
		if err := mnist.Download(ctx, trainFlags.dataDir, trainFlags.mirror); err != nil {
			return nil, nil, fmt.Errorf("downloading dataset: %w", err)
		}
	}

	return mnist.Load(trainFlags.dataDir)
}

func printSummary(t *train.Trainer) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Epoch", "Test Loss"})
	for i, loss := range t.TestLosses() {
		epoch := fmt.Sprintf("%d", i+1)
		if i == len(t.TestLosses())-1 {
			epoch = "final"
		}
		table.Append([]string{epoch, fmt.Sprintf("%.2f", loss)})
	}
	table.Render()
}
