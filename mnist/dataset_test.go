package mnist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vae/backend/cpu"
	"github.com/born-ml/vae/mnist"
	"github.com/born-ml/vae/tensor"
)

func TestSynthetic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ds := mnist.Synthetic(10, 4, 4, rng)

	assert.Equal(t, 10, ds.Len())
	assert.Equal(t, 16, ds.Dim())
	for _, img := range ds.Images {
		for _, v := range img {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.Less(t, v, float32(1))
		}
	}
	for _, l := range ds.Labels {
		assert.Less(t, l, uint8(10))
	}
}

func TestSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ds := mnist.Synthetic(10, 2, 2, rng)

	a, b := ds.Split(0.7)
	assert.Equal(t, 7, a.Len())
	assert.Equal(t, 3, b.Len())
	// Order preserved: the first image of b is the eighth overall.
	assert.Equal(t, ds.Images[7], b.Images[0])
}

func TestBatchesShapes(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	ds := mnist.Synthetic(10, 2, 2, rng)

	batches := ds.Batches(4, nil, b)
	require.Len(t, batches, 3)
	assert.True(t, batches[0].Shape().Equal(tensor.Shape{4, 4}))
	assert.True(t, batches[1].Shape().Equal(tensor.Shape{4, 4}))
	// The remainder batch is emitted, not dropped.
	assert.True(t, batches[2].Shape().Equal(tensor.Shape{2, 4}))
}

func TestBatchesWithoutShuffleKeepOrder(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))
	ds := mnist.Synthetic(4, 2, 2, rng)

	batches := ds.Batches(2, nil, b)
	assert.Equal(t, ds.Images[0], batches[0].Data()[:4])
	assert.Equal(t, ds.Images[3], batches[1].Data()[4:])
}

func TestBatchesShuffleIsSeeded(t *testing.T) {
	b := cpu.New()
	ds := mnist.Synthetic(32, 2, 2, rand.New(rand.NewSource(1)))

	b1 := ds.Batches(8, rand.New(rand.NewSource(5)), b)
	b2 := ds.Batches(8, rand.New(rand.NewSource(5)), b)
	for i := range b1 {
		assert.Equal(t, b1[i].Data(), b2[i].Data())
	}

	b3 := ds.Batches(8, rand.New(rand.NewSource(6)), b)
	different := false
	for i := range b1 {
		if !equalSlices(b1[i].Data(), b3[i].Data()) {
			different = true
			break
		}
	}
	assert.True(t, different, "different seeds should shuffle differently")
}

func equalSlices(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBatchesRejectsBadSize(t *testing.T) {
	b := cpu.New()
	ds := mnist.Synthetic(4, 2, 2, rand.New(rand.NewSource(1)))
	assert.Panics(t, func() { ds.Batches(0, nil, b) })
}
