package mnist_test

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vae/mnist"
)

// writeIDXImages crafts an IDX3 file with the given pixel bytes.
func writeIDXImages(t *testing.T, path string, count, rows, cols int, pixels []byte, compress bool) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, [4]uint32{2051, uint32(count), uint32(rows), uint32(cols)}))
	buf.Write(pixels)
	writeMaybeGz(t, path, buf.Bytes(), compress)
}

func writeIDXLabels(t *testing.T, path string, labels []byte, compress bool) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, [2]uint32{2049, uint32(len(labels))}))
	buf.Write(labels)
	writeMaybeGz(t, path, buf.Bytes(), compress)
}

func writeMaybeGz(t *testing.T, path string, data []byte, compress bool) {
	t.Helper()
	if compress {
		var gz bytes.Buffer
		w := gzip.NewWriter(&gz)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		data = gz.Bytes()
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestReadImages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "images-idx3-ubyte")
	writeIDXImages(t, path, 2, 2, 2, []byte{0, 51, 102, 153, 204, 255, 0, 128}, false)

	images, rows, cols, err := mnist.ReadImages(path)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	require.Len(t, images, 2)

	assert.InDelta(t, 0.0, images[0][0], 1e-6)
	assert.InDelta(t, 51.0/255.0, images[0][1], 1e-6)
	assert.InDelta(t, 1.0, images[1][1], 1e-6)
}

func TestReadImagesGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "images-idx3-ubyte.gz")
	writeIDXImages(t, path, 1, 2, 2, []byte{10, 20, 30, 40}, true)

	images, _, _, err := mnist.ReadImages(path)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.InDelta(t, 10.0/255.0, images[0][0], 1e-6)
}

func TestReadImagesRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad")
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, [4]uint32{1234, 1, 2, 2}))
	buf.Write(make([]byte, 4))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	_, _, _, err := mnist.ReadImages(path)
	assert.ErrorContains(t, err, "magic")
}

func TestReadImagesTruncated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short")
	writeIDXImages(t, path, 2, 2, 2, []byte{1, 2, 3, 4, 5}, false) // 3 bytes missing

	_, _, _, err := mnist.ReadImages(path)
	assert.Error(t, err)
}

func TestReadLabels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels-idx1-ubyte")
	writeIDXLabels(t, path, []byte{7, 2, 1}, false)

	labels, err := mnist.ReadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 2, 1}, labels)
}

func TestLoadPrefersUncompressed(t *testing.T) {
	dir := t.TempDir()

	pixels := make([]byte, 3*4)
	writeIDXImages(t, filepath.Join(dir, mnist.TrainImagesFile), 3, 2, 2, pixels, false)
	writeIDXLabels(t, filepath.Join(dir, mnist.TrainLabelsFile), []byte{0, 1, 2}, false)
	writeIDXImages(t, filepath.Join(dir, mnist.TestImagesFile+".gz"), 2, 2, 2, pixels[:8], true)
	writeIDXLabels(t, filepath.Join(dir, mnist.TestLabelsFile+".gz"), []byte{3, 4}, true)

	train, test, err := mnist.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, train.Len())
	assert.Equal(t, 2, test.Len())
	assert.Equal(t, 4, train.Dim())
}

func TestLoadCountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeIDXImages(t, filepath.Join(dir, mnist.TrainImagesFile), 2, 2, 2, make([]byte, 8), false)
	writeIDXLabels(t, filepath.Join(dir, mnist.TrainLabelsFile), []byte{1, 2, 3}, false)

	_, _, err := mnist.Load(dir)
	assert.ErrorContains(t, err, "mismatch")
}
