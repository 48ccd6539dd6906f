package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/vae/tensor"
)

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
//
// The weight is stored as (outFeatures, inFeatures), matching the
// transposed application, and the bias as (outFeatures,).
type Linear struct {
	weight      *Parameter
	bias        *Parameter
	inFeatures  int
	outFeatures int
}

// NewLinear creates a linear layer with Xavier-uniform weights and
// zero bias. The layer name prefixes its parameter names.
func NewLinear(name string, inFeatures, outFeatures int, rng *rand.Rand, b tensor.Backend) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("nn.NewLinear: feature counts must be positive, got in=%d out=%d", inFeatures, outFeatures))
	}
	return &Linear{
		weight:      NewParameter(name+".weight", XavierUniform(inFeatures, outFeatures, rng, b)),
		bias:        NewParameter(name+".bias", tensor.Zeros(tensor.Shape{outFeatures}, b)),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}
}

// Forward applies the layer to a (batch, inFeatures) input and returns
// a (batch, outFeatures) output.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	s := input.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("nn.Linear: expected 2D input, got shape %v", s))
	}
	if s[1] != l.inFeatures {
		panic(fmt.Sprintf("nn.Linear: expected %d input features, got %d", l.inFeatures, s[1]))
	}

	out := input.MatMul(l.weight.Tensor().Transpose())
	// Bias is reshaped to (1, out) so it broadcasts over the batch.
	return out.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the weight and bias.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter { return l.weight }

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter { return l.bias }

// InFeatures returns the input dimension.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the output dimension.
func (l *Linear) OutFeatures() int { return l.outFeatures }
