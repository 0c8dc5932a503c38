// SPDX-License-Identifier: MIT

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/convert"
	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/internal/fixture"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// TestEncodeLayout: rows are image rows, channels are interleaved per pixel.
func TestEncodeLayout(t *testing.T) {
	b, err := pixel.FromFunc[pixel.Rgb, uint8](4, 2, func(x, y int, px []uint8) {
		px[0], px[1], px[2] = uint8(x), uint8(y), uint8(10*y+x)
	})
	require.NoError(t, err)

	m, err := convert.Encode(b)
	require.NoError(t, err)
	require.Equal(t, "Dense(2x4 CV_8UC3)", m.String())
	require.Equal(t, 4*3, m.Step())

	got, err := mat.At[uint8](m, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []uint8{3, 1, 13}, got)
}

// TestEncodeCopies: the matrix owns its storage.
func TestEncodeCopies(t *testing.T) {
	b, err := pixel.New[pixel.Luma, float32](2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetPixel(1, 1, 0.5))

	m, err := convert.Encode(b)
	require.NoError(t, err)
	require.NoError(t, b.SetPixel(1, 1, 2))

	got, err := mat.At[float32](m, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []float32{0.5}, got)
}

func TestEncodeNil(t *testing.T) {
	_, err := convert.Encode[pixel.Rgb, uint8](nil)
	require.ErrorIs(t, err, convert.ErrNilBuffer)

	_, err = convert.EncodeDynamic(pixel.DynamicImage{})
	require.ErrorIs(t, err, convert.ErrNilBuffer)
}

// encodeWrapped wraps a random Buffer[K, T] and encodes it dynamically.
func encodeWrapped[K pixel.Kind, T element.Element](t *testing.T, want pixel.ColorType) {
	t.Helper()
	b, err := fixture.Buffer[K, T](fixture.NewRand(seed), 3, 2)
	require.NoError(t, err)
	img, err := pixel.Wrap(b)
	require.NoError(t, err)
	require.Equal(t, want, img.ColorType())

	m, err := convert.EncodeDynamic(img)
	require.NoError(t, err)
	require.Equal(t, want.Depth(), m.Depth(), want.String())
	require.Equal(t, want.Channels(), m.Channels(), want.String())
	require.Equal(t, []int{2, 3}, m.Size())

	direct, err := convert.Encode(b)
	require.NoError(t, err)
	require.True(t, mat.Equal(direct, m))
}

// TestEncodeDynamicAllVariants covers every enumerated colour type.
func TestEncodeDynamicAllVariants(t *testing.T) {
	encodeWrapped[pixel.Luma, uint8](t, pixel.L8)
	encodeWrapped[pixel.LumaA, uint8](t, pixel.La8)
	encodeWrapped[pixel.Rgb, uint8](t, pixel.Rgb8)
	encodeWrapped[pixel.Rgba, uint8](t, pixel.Rgba8)
	encodeWrapped[pixel.Luma, uint16](t, pixel.L16)
	encodeWrapped[pixel.LumaA, uint16](t, pixel.La16)
	encodeWrapped[pixel.Rgb, uint16](t, pixel.Rgb16)
	encodeWrapped[pixel.Rgba, uint16](t, pixel.Rgba16)
	encodeWrapped[pixel.Rgb, float32](t, pixel.Rgb32F)
	encodeWrapped[pixel.Rgba, float32](t, pixel.Rgba32F)

	require.Len(t, convert.EncodeColors(), 10)
}

func TestBulkCopyLengthPanics(t *testing.T) {
	dst := make([]byte, 4)
	convert.BulkCopyForTest(dst, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, dst)

	require.Panics(t, func() { convert.BulkCopyForTest(dst, []byte{1}) })
}
