package raster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func writeTiff(t *testing.T, filename string, img image.Image) {
	f, err := os.Create(filename)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tiff.Encode(f, img, nil))
}

func TestLoadTiffGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(y*3 + x)})
		}
	}
	filename := filepath.Join(t.TempDir(), "mask.tif")
	writeTiff(t, filename, src)

	r, err := LoadFile(filename)
	require.NoError(t, err)
	require.Equal(t, 3, r.Width)
	require.Equal(t, 2, r.Height)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, uint8(y*3+x), r.At(x, y))
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.tif"))
	require.Error(t, err)
	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestFromImagePaletted(t *testing.T) {
	// Palette index is the class id, regardless of the palette colors
	palette := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 0, 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	src.SetColorIndex(0, 0, 2)
	src.SetColorIndex(1, 1, 1)

	r := fromImage(src)
	require.Equal(t, uint8(2), r.At(0, 0))
	require.Equal(t, uint8(1), r.At(1, 1))
	require.Equal(t, uint8(0), r.At(1, 0))
}

func TestFromImageGray16(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 4})
	src.SetGray16(1, 0, color.Gray16{Y: 9})
	r := fromImage(src)
	require.Equal(t, uint8(4), r.At(0, 0))
	require.Equal(t, uint8(9), r.At(1, 0))
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(2, 3, 5, 5))
	src.SetGray(2, 3, color.Gray{Y: 8})
	src.SetGray(4, 4, color.Gray{Y: 3})
	r := fromImage(src)
	require.Equal(t, 3, r.Width)
	require.Equal(t, 2, r.Height)
	require.Equal(t, uint8(8), r.At(0, 0))
	require.Equal(t, uint8(3), r.At(2, 1))
}
