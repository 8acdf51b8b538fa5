// Package raster holds label masks as dense grids of integer class ids.
// A Raster is either a ground-truth mask or a model prediction; the two are
// structurally identical.
package raster

import (
	"fmt"

	"github.com/terralab/segeval/pkg/gen"
)

// Raster is a Height x Width grid of class ids, stored row-major.
// Class ids are limited to 0..255, which comfortably covers land-cover
// class sets.
type Raster struct {
	Width  int
	Height int
	Pixels []uint8
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height),
	}
}

// WrapRaster creates a Raster that references pixels, without copying
func WrapRaster(width, height int, pixels []uint8) (*Raster, error) {
	if width*height != len(pixels) {
		return nil, fmt.Errorf("Pixel buffer size %v does not match %vx%v", len(pixels), width, height)
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

func (r *Raster) At(x, y int) uint8 {
	return r.Pixels[y*r.Width+x]
}

func (r *Raster) Set(x, y int, class uint8) {
	r.Pixels[y*r.Width+x] = class
}

// SameShape is true if both rasters have identical dimensions
func (r *Raster) SameShape(other *Raster) bool {
	return r.Width == other.Width && r.Height == other.Height
}

func (r *Raster) NumPixels() int {
	return r.Width * r.Height
}

// MemoryBytes is the resident size of the pixel buffer
func (r *Raster) MemoryBytes() int64 {
	return int64(len(r.Pixels))
}

// Flatten returns the pixels as a single row-major sequence.
// The returned slice references the raster's storage.
func (r *Raster) Flatten() []uint8 {
	return r.Pixels
}

// Histogram counts the occurrences of every class id present in the raster
func (r *Raster) Histogram() map[uint8]int64 {
	h := map[uint8]int64{}
	for _, c := range r.Pixels {
		h[c]++
	}
	return h
}

// DominantClass returns the most frequent class id and its pixel count
func (r *Raster) DominantClass() (uint8, int64) {
	mode, count := gen.Mode(r.Pixels)
	return mode, int64(count)
}

// MaxClass returns the largest class id present, or 0 for an empty raster
func (r *Raster) MaxClass() uint8 {
	max := uint8(0)
	for _, c := range r.Pixels {
		max = gen.Max(max, c)
	}
	return max
}
