// Package train drives the optimization loop: batched epochs over the
// training split, per-epoch evaluation on the test split, prior
// sampling, and artifact output.
package train

import "fmt"

// Config holds the training hyperparameters.
type Config struct {
	Epochs      int     // number of passes over the training split
	BatchSize   int     // examples per gradient step
	LR          float32 // Adam learning rate
	LogInterval int     // log progress every n batches
	SampleCount int     // prior samples decoded per epoch
	OutDir      string  // artifact directory; empty disables artifacts
}

// DefaultConfig mirrors the usual MNIST setup.
func DefaultConfig() Config {
	return Config{
		Epochs:      10,
		BatchSize:   128,
		LR:          1e-3,
		LogInterval: 10,
		SampleCount: 64,
	}
}

// Validate checks the hyperparameters.
func (c Config) Validate() error {
	if c.Epochs < 1 {
		return fmt.Errorf("epochs must be at least 1, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.LR <= 0 {
		return fmt.Errorf("learning rate must be positive, got %g", c.LR)
	}
	if c.LogInterval <= 0 {
		return fmt.Errorf("log interval must be positive, got %d", c.LogInterval)
	}
	if c.SampleCount < 0 {
		return fmt.Errorf("sample count must not be negative, got %d", c.SampleCount)
	}
	return nil
}
