package mnist

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/born-ml/vae/tensor"
)

// Standard file names inside a dataset directory, with optional .gz.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Dataset holds a split of normalized images and their labels.
type Dataset struct {
	Images [][]float32
	Labels []uint8
	Rows   int
	Cols   int
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return len(d.Images)
}

// Dim returns the flattened image size.
func (d *Dataset) Dim() int {
	return d.Rows * d.Cols
}

// Load reads the train and test splits from dir, accepting either raw
// or gzip-compressed IDX files.
func Load(dir string) (train, test *Dataset, err error) {
	train, err = loadSplit(dir, TrainImagesFile, TrainLabelsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading train split: %w", err)
	}
	test, err = loadSplit(dir, TestImagesFile, TestLabelsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading test split: %w", err)
	}
	return train, test, nil
}

func loadSplit(dir, imagesFile, labelsFile string) (*Dataset, error) {
	images, rows, cols, err := ReadImages(findFile(dir, imagesFile))
	if err != nil {
		return nil, err
	}
	labels, err := ReadLabels(findFile(dir, labelsFile))
	if err != nil {
		return nil, err
	}
	if len(images) != len(labels) {
		return nil, fmt.Errorf("image/label count mismatch: %d vs %d", len(images), len(labels))
	}
	return &Dataset{Images: images, Labels: labels, Rows: rows, Cols: cols}, nil
}

// findFile prefers the uncompressed name and falls back to name.gz.
func findFile(dir, name string) string {
	plain := filepath.Join(dir, name)
	if _, err := os.Stat(plain); err == nil {
		return plain
	}
	return plain + ".gz"
}

// Synthetic generates a dataset of random images for tests and smoke
// runs without downloaded data. Pixel values are uniform in [0, 1).
func Synthetic(n, rows, cols int, rng *rand.Rand) *Dataset {
	images := make([][]float32, n)
	labels := make([]uint8, n)
	for i := range images {
		img := make([]float32, rows*cols)
		for j := range img {
			img[j] = float32(rng.Float64())
		}
		images[i] = img
		labels[i] = uint8(rng.Intn(10))
	}
	return &Dataset{Images: images, Labels: labels, Rows: rows, Cols: cols}
}

// Split partitions the dataset into two parts, the first containing
// fraction frac of the examples. Order is preserved.
func (d *Dataset) Split(frac float64) (*Dataset, *Dataset) {
	cut := int(float64(d.Len()) * frac)
	first := &Dataset{Images: d.Images[:cut], Labels: d.Labels[:cut], Rows: d.Rows, Cols: d.Cols}
	second := &Dataset{Images: d.Images[cut:], Labels: d.Labels[cut:], Rows: d.Rows, Cols: d.Cols}
	return first, second
}

// Batches packs the dataset into (batchSize, dim) tensors. When rng is
// non-nil the example order is shuffled first. A final smaller batch
// is emitted when the dataset size is not a multiple of batchSize.
func (d *Dataset) Batches(batchSize int, rng *rand.Rand, b tensor.Backend) []*tensor.Tensor {
	if batchSize <= 0 {
		panic(fmt.Sprintf("batch size must be positive, got %d", batchSize))
	}

	order := make([]int, d.Len())
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	dim := d.Dim()
	var batches []*tensor.Tensor
	for start := 0; start < len(order); start += batchSize {
		end := min(start+batchSize, len(order))
		n := end - start
		data := make([]float32, n*dim)
		for i, idx := range order[start:end] {
			copy(data[i*dim:(i+1)*dim], d.Images[idx])
		}
		batches = append(batches, tensor.New(data, tensor.Shape{n, dim}, b))
	}

	return batches
}
