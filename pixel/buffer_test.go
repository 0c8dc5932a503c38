// Package pixel_test contains unit tests for Buffer and DynamicImage.
package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/pixel"
)

// TestChannelsOf pins the kind → channel mapping.
func TestChannelsOf(t *testing.T) {
	require.Equal(t, 1, pixel.ChannelsOf[pixel.Luma]())
	require.Equal(t, 2, pixel.ChannelsOf[pixel.LumaA]())
	require.Equal(t, 3, pixel.ChannelsOf[pixel.Rgb]())
	require.Equal(t, 4, pixel.ChannelsOf[pixel.Rgba]())
}

// TestNewBuffer verifies shape, zero fill and backing-store length.
func TestNewBuffer(t *testing.T) {
	b, err := pixel.New[pixel.Rgb, uint16](5, 3)
	require.NoError(t, err)

	w, h := b.Dimensions()
	require.Equal(t, 5, w)
	require.Equal(t, 3, h)
	require.Equal(t, 3, b.Channels())
	require.Equal(t, element.U16, b.Depth())
	require.Len(t, b.Pix(), 5*3*3)
	require.Equal(t, "Buffer[Rgb,16U](5x3)", b.String())

	_, err = pixel.New[pixel.Luma, uint8](-1, 3)
	require.ErrorIs(t, err, pixel.ErrBadDimensions)
}

// TestFromSliceLengthInvariant ensures the length invariant is a constructor-time error.
func TestFromSliceLengthInvariant(t *testing.T) {
	_, err := pixel.FromSlice[pixel.Rgb, uint8](2, 2, make([]uint8, 11))
	require.ErrorIs(t, err, pixel.ErrBadLength)

	_, err = pixel.FromSlice[pixel.Rgb, uint8](2, 2, make([]uint8, 13))
	require.ErrorIs(t, err, pixel.ErrBadLength)

	b, err := pixel.FromSlice[pixel.Rgb, uint8](2, 2, make([]uint8, 12))
	require.NoError(t, err)
	require.Len(t, b.Pix(), 12)

	empty, err := pixel.FromSlice[pixel.Luma, float32](0, 0, nil)
	require.NoError(t, err)
	require.NotNil(t, empty.Pix())
}

// TestFromFuncRowMajor checks visiting order and in-place filling.
func TestFromFuncRowMajor(t *testing.T) {
	b, err := pixel.FromFunc[pixel.LumaA, uint8](3, 2, func(x, y int, px []uint8) {
		px[0] = uint8(y*3 + x)
		px[1] = 255
	})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 255, 1, 255, 2, 255, 3, 255, 4, 255, 5, 255}, b.Pix())
}

// TestPixelAccess covers PixelAt/SetPixel bounds and value checks.
func TestPixelAccess(t *testing.T) {
	b, err := pixel.New[pixel.Rgba, float32](2, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetPixel(1, 0, 0.1, 0.2, 0.3, 1))
	px, err := b.PixelAt(1, 0)
	require.NoError(t, err)
	require.Equal(t, []float32{0.1, 0.2, 0.3, 1}, px)
	require.Equal(t, float32(0.1), b.Pix()[4]) // (y*w + x) * ch

	_, err = b.PixelAt(2, 0)
	require.ErrorIs(t, err, pixel.ErrOutOfRange)
	err = b.SetPixel(0, 0, 1, 2, 3)
	require.ErrorIs(t, err, pixel.ErrBadLength)
	err = b.SetPixel(0, -1, 1, 2, 3, 4)
	require.ErrorIs(t, err, pixel.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	b, err := pixel.New[pixel.Luma, uint8](2, 1)
	require.NoError(t, err)
	c := b.Clone()
	require.NoError(t, c.SetPixel(0, 0, 9))
	require.Equal(t, []uint8{0, 0}, b.Pix())
	require.Equal(t, []uint8{9, 0}, c.Pix())
}
