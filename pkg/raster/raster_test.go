package raster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterBasics(t *testing.T) {
	r := NewRaster(3, 2)
	require.Equal(t, 6, r.NumPixels())
	require.Equal(t, int64(6), r.MemoryBytes())
	r.Set(2, 1, 7)
	require.Equal(t, uint8(7), r.At(2, 1))
	require.Equal(t, uint8(7), r.Flatten()[5])
	require.Equal(t, uint8(7), r.MaxClass())
}

func TestWrapRaster(t *testing.T) {
	r, err := WrapRaster(2, 2, []uint8{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, uint8(2), r.At(0, 1))

	_, err = WrapRaster(2, 2, []uint8{0, 1})
	require.Error(t, err)
}

func TestSameShape(t *testing.T) {
	a := NewRaster(4, 3)
	b := NewRaster(4, 3)
	c := NewRaster(3, 4)
	require.True(t, a.SameShape(b))
	require.False(t, a.SameShape(c))
}

func TestHistogram(t *testing.T) {
	r, err := WrapRaster(3, 2, []uint8{0, 0, 1, 1, 1, 5})
	require.NoError(t, err)
	h := r.Histogram()
	require.Equal(t, int64(2), h[0])
	require.Equal(t, int64(3), h[1])
	require.Equal(t, int64(1), h[5])
	require.Len(t, h, 3)

	dominant, count := r.DominantClass()
	require.Equal(t, uint8(1), dominant)
	require.Equal(t, int64(3), count)
	require.Equal(t, uint8(5), r.MaxClass())
}
