package raster

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmharper/cimg/v2"
	"golang.org/x/image/tiff"
)

// LoadFile reads a label mask from disk into a Raster.
// PNG and JPEG go through cimg. TIFF (the usual container for geospatial
// masks) goes through golang.org/x/image/tiff, since cimg doesn't speak it.
// For multi-channel images we take the first channel as the class id.
// An unreadable or undecodable file is an error, never a skip.
func LoadFile(filename string) (*Raster, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		return loadTiff(filename)
	default:
		return loadCimg(filename)
	}
}

func loadCimg(filename string) (*Raster, error) {
	img, err := cimg.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to read label mask '%v': %w", filename, err)
	}
	r := NewRaster(img.Width, img.Height)
	nchan := img.NChan()
	if nchan == 1 && img.Stride == img.Width {
		copy(r.Pixels, img.Pixels)
		return r, nil
	}
	for y := 0; y < img.Height; y++ {
		src := img.Pixels[y*img.Stride:]
		dst := r.Pixels[y*r.Width:]
		for x := 0; x < img.Width; x++ {
			dst[x] = src[x*nchan]
		}
	}
	return r, nil
}

func loadTiff(filename string) (*Raster, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to read label mask '%v': %w", filename, err)
	}
	defer f.Close()
	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Failed to decode TIFF '%v': %w", filename, err)
	}
	return fromImage(img), nil
}

// fromImage extracts class ids from a decoded stdlib image.
// Gray and Paletted images carry the class id directly. Anything else is
// reduced to its red channel, which is correct for the grayscale-as-RGB
// masks that some pipelines emit.
func fromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	r := NewRaster(bounds.Dx(), bounds.Dy())
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < r.Height; y++ {
			copy(r.Pixels[y*r.Width:(y+1)*r.Width], src.Pix[y*src.Stride:y*src.Stride+r.Width])
		}
	case *image.Gray16:
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				r.Set(x, y, uint8(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y))
			}
		}
	case *image.Paletted:
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				r.Set(x, y, src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	default:
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				red, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				r.Set(x, y, uint8(red>>8))
			}
		}
	}
	return r
}
