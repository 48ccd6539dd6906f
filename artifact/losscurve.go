package artifact

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// SaveLossCurve renders a per-batch loss series as a simple polyline
// plot. The y axis is scaled to the observed min/max.
func SaveLossCurve(path string, losses []float32) error {
	if len(losses) == 0 {
		return fmt.Errorf("no losses to plot")
	}

	const width, height, margin = 640, 360, 10
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255 // white background
	}

	lo, hi := losses[0], losses[0]
	for _, v := range losses[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	plotW := float64(width - 2*margin)
	plotH := float64(height - 2*margin)
	toXY := func(i int, v float32) (int, int) {
		x := margin + int(plotW*float64(i)/float64(max(len(losses)-1, 1)))
		y := margin + int(plotH*(1-float64(v-lo)/float64(hi-lo)))
		return x, y
	}

	line := color.RGBA{R: 30, G: 90, B: 200, A: 255}
	px, py := toXY(0, losses[0])
	for i := 1; i < len(losses); i++ {
		x, y := toXY(i, losses[i])
		drawLine(img, px, py, x, y, line)
		px, py = x, y
	}

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

// drawLine draws a line segment with Bresenham's algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
