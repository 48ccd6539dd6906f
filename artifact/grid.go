// Package artifact renders training outputs to PNG files: grids of
// generated or reconstructed images and the training loss curve.
package artifact

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// upscale factor applied to image grids so 28x28 digits are legible.
const gridScale = 2

// SaveImageGrid writes images as a PNG grid, perRow images per row.
// Each image is a rows*cols slice of values in [0, 1], rendered as
// 8-bit grayscale with a one pixel separator between cells.
func SaveImageGrid(path string, images [][]float32, rows, cols, perRow int) error {
	if len(images) == 0 {
		return fmt.Errorf("no images to render")
	}
	if perRow <= 0 {
		return fmt.Errorf("images per row must be positive, got %d", perRow)
	}
	for i, img := range images {
		if len(img) != rows*cols {
			return fmt.Errorf("image %d has %d values, want %d", i, len(img), rows*cols)
		}
	}

	gridRows := (len(images) + perRow - 1) / perRow
	const pad = 1
	width := perRow*(cols+pad) + pad
	height := gridRows*(rows+pad) + pad

	canvas := image.NewGray(image.Rect(0, 0, width, height))
	for i := range canvas.Pix {
		canvas.Pix[i] = 32 // dark separator background
	}

	for i, img := range images {
		x0 := pad + (i%perRow)*(cols+pad)
		y0 := pad + (i/perRow)*(rows+pad)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				v := img[y*cols+x]
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				canvas.SetGray(x0+x, y0+y, color.Gray{Y: uint8(v * 255)})
			}
		}
	}

	scaled := image.NewGray(image.Rect(0, 0, width*gridScale, height*gridScale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)

	return writePNG(path, scaled)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
