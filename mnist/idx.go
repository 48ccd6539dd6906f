// Package mnist loads the MNIST handwritten digit dataset from IDX
// files and prepares shuffled training batches.
package mnist

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	imageMagic = 2051
	labelMagic = 2049
)

// ReadImages parses an IDX3 image file into normalized pixel rows.
// Each image becomes a row of rows*cols float32 values in [0, 1].
// Files ending in .gz are decompressed transparently.
func ReadImages(path string) (images [][]float32, rows, cols int, err error) {
	r, closer, err := openIDX(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer closer()

	var header struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, 0, 0, fmt.Errorf("reading image header: %w", err)
	}
	if header.Magic != imageMagic {
		return nil, 0, 0, fmt.Errorf("invalid image file magic: got %d, want %d", header.Magic, imageMagic)
	}

	rows, cols = int(header.Rows), int(header.Cols)
	pixels := rows * cols
	buf := make([]byte, pixels)
	images = make([][]float32, header.Count)
	for i := range images {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, 0, 0, fmt.Errorf("reading image %d: %w", i, err)
		}
		img := make([]float32, pixels)
		for j, p := range buf {
			img[j] = float32(p) / 255.0
		}
		images[i] = img
	}

	return images, rows, cols, nil
}

// ReadLabels parses an IDX1 label file. Files ending in .gz are
// decompressed transparently.
func ReadLabels(path string) ([]uint8, error) {
	r, closer, err := openIDX(path)
	if err != nil {
		return nil, err
	}
	defer closer()

	var header struct {
		Magic, Count uint32
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("reading label header: %w", err)
	}
	if header.Magic != labelMagic {
		return nil, fmt.Errorf("invalid label file magic: got %d, want %d", header.Magic, labelMagic)
	}

	labels := make([]uint8, header.Count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("reading labels: %w", err)
	}

	return labels, nil
}

// openIDX opens path for reading, wrapping it in a gzip reader when
// the file is compressed. The returned closer releases both readers.
func openIDX(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, func() { f.Close() }, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("opening gzip stream of %s: %w", filepath.Base(path), err)
	}
	return gz, func() { gz.Close(); f.Close() }, nil
}
