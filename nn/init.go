package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/vae/tensor"
)

// XavierUniform initializes a (fanOut, fanIn) weight tensor with values
// drawn uniformly from ±sqrt(6/(fanIn+fanOut)).
func XavierUniform(fanIn, fanOut int, rng *rand.Rand, b tensor.Backend) *tensor.Tensor {
	limit := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	data := make([]float32, fanIn*fanOut)
	for i := range data {
		data[i] = (2*float32(rng.Float64()) - 1) * limit
	}
	return tensor.New(data, tensor.Shape{fanOut, fanIn}, b)
}
