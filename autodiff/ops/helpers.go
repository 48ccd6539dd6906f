package ops

import "github.com/born-ml/vae/tensor"

// reduceBroadcast sums grad down to targetShape, undoing the forward
// broadcast. Dimensions that were expanded during broadcasting (size 1
// in the target, or missing on the left) are summed out.
func reduceBroadcast(grad *tensor.Tensor, targetShape tensor.Shape, b tensor.Backend) *tensor.Tensor {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		return grad
	}

	out := make([]float32, targetShape.NumElements())
	gradStrides := gradShape.ComputeStrides()
	targetStrides := targetShape.ComputeStrides()
	offset := len(gradShape) - len(targetShape)

	data := grad.Data()
	for i, v := range data {
		tIdx := 0
		rem := i
		for d := 0; d < len(gradShape); d++ {
			coord := rem / gradStrides[d]
			rem %= gradStrides[d]
			td := d - offset
			if td < 0 || targetShape[td] == 1 {
				continue
			}
			tIdx += coord * targetStrides[td]
		}
		out[tIdx] += v
	}

	return tensor.New(out, targetShape, b)
}
