package autodiff

import (
	"github.com/born-ml/vae/autodiff/ops"
	"github.com/born-ml/vae/tensor"
)

// GradientTape records operations during the forward pass and replays
// them in reverse to compute gradients.
//
// The tape is not safe for concurrent use. Training code owns one tape
// and alternates recording (forward), walking (backward) and clearing.
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates a tape. Recording starts disabled.
func NewGradientTape() *GradientTape {
	return &GradientTape{}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording. Already recorded
// operations are kept.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording reports whether operations are currently being recorded.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record appends an operation if recording is enabled.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// NumOperations returns the number of recorded operations.
func (t *GradientTape) NumOperations() int {
	return len(t.operations)
}

// Clear drops all recorded operations. The recording state is
// preserved so a tape can be reused across training steps.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// Backward walks the tape in reverse from the given output tensor,
// accumulating gradients. Gradient math runs on the provided backend,
// which must be the raw (non-recording) backend.
//
// The returned map holds a gradient for every tensor reached by the
// walk, keyed by tensor identity.
func (t *GradientTape) Backward(output *tensor.Tensor, outputGrad *tensor.Tensor, b tensor.Backend) map[*tensor.Tensor]*tensor.Tensor {
	grads := map[*tensor.Tensor]*tensor.Tensor{output: outputGrad}

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			// This operation does not contribute to the output.
			continue
		}

		inputGrads := op.Backward(outGrad, b)
		for j, input := range op.Inputs() {
			g := inputGrads[j]
			if existing, ok := grads[input]; ok {
				g = b.Add(existing, g)
			}
			grads[input] = g
		}
	}

	return grads
}
