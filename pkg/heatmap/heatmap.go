// Package heatmap renders a confusion matrix as a PNG image: one colored
// cell per (true class, predicted class), rows labeled with class names.
// Presentation only, nothing here affects the metrics.
package heatmap

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/terralab/segeval/pkg/gen"
	"gonum.org/v1/gonum/mat"
)

type Options struct {
	CellSize int    // Pixel size of one matrix cell (0 = default 48)
	Annotate bool   // Draw the cell value inside each cell
	Title    string // Optional title above the matrix
}

const (
	defaultCellSize = 48
	leftMargin      = 110
	topMargin       = 70
	bottomMargin    = 16
	rightMargin     = 16
)

// Gradient stops, dark blue through magenta to yellow
var gradient = []colorful.Color{
	mustHex("#0d0887"),
	mustHex("#b12a90"),
	mustHex("#f0f921"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// colorAt maps t in 0..1 onto the gradient
func colorAt(t float64) colorful.Color {
	scaled := gen.Clamp(t, 0, 1) * float64(len(gradient)-1)
	i := int(scaled)
	if i >= len(gradient)-1 {
		return gradient[len(gradient)-1]
	}
	return gradient[i].BlendLuv(gradient[i+1], scaled-float64(i))
}

// Render draws the matrix as a heatmap. classNames must have one entry per
// matrix row; the matrix must be square.
func Render(m *mat.Dense, classNames []string, opts Options) (image.Image, error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, fmt.Errorf("Matrix is %vx%v, expected square", rows, cols)
	}
	if len(classNames) != rows {
		return nil, fmt.Errorf("Have %v class names for a %vx%v matrix", len(classNames), rows, cols)
	}
	cell := opts.CellSize
	if cell <= 0 {
		cell = defaultCellSize
	}
	width := leftMargin + cols*cell + rightMargin
	height := topMargin + rows*cell + bottomMargin
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	max := mat.Max(m)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			t := 0.0
			if max > 0 {
				t = v / max
			}
			c := colorAt(t)
			dc.SetRGB(c.R, c.G, c.B)
			x := float64(leftMargin + j*cell)
			y := float64(topMargin + i*cell)
			dc.DrawRectangle(x, y, float64(cell), float64(cell))
			dc.Fill()
			if opts.Annotate {
				// Flip the text color against the cell luminance
				if _, _, l := c.Hsl(); l > 0.5 {
					dc.SetRGB(0, 0, 0)
				} else {
					dc.SetRGB(1, 1, 1)
				}
				dc.DrawStringAnchored(formatCell(v), x+float64(cell)/2, y+float64(cell)/2, 0.5, 0.5)
			}
		}
	}

	dc.SetRGB(0, 0, 0)
	if opts.Title != "" {
		dc.DrawStringAnchored(opts.Title, float64(width)/2, 14, 0.5, 0.5)
	}
	for i, name := range classNames {
		y := float64(topMargin+i*cell) + float64(cell)/2
		dc.DrawStringAnchored(name, leftMargin-8, y, 1, 0.5)
	}
	for j, name := range classNames {
		x := float64(leftMargin+j*cell) + float64(cell)/2
		dc.Push()
		dc.RotateAbout(-math.Pi/4, x, topMargin-8)
		dc.DrawStringAnchored(name, x, topMargin-8, 0, 0.5)
		dc.Pop()
	}
	return dc.Image(), nil
}

// RenderFile renders the heatmap and writes it as a PNG
func RenderFile(filename string, m *mat.Dense, classNames []string, opts Options) error {
	img, err := Render(m, classNames, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("Failed to write heatmap '%v': %w", filename, err)
	}
	return nil
}

// formatCell picks a compact representation: integers for raw counts,
// two decimals for normalized fractions.
func formatCell(v float64) string {
	if v == math.Trunc(v) && v < 1e7 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
