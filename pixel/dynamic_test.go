package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/pixel"
)

// TestColorTypeTable pins channels/depth of every enumerated colour type.
func TestColorTypeTable(t *testing.T) {
	want := map[pixel.ColorType][2]int{
		pixel.L8:      {1, int(element.U8)},
		pixel.La8:     {2, int(element.U8)},
		pixel.Rgb8:    {3, int(element.U8)},
		pixel.Rgba8:   {4, int(element.U8)},
		pixel.L16:     {1, int(element.U16)},
		pixel.La16:    {2, int(element.U16)},
		pixel.Rgb16:   {3, int(element.U16)},
		pixel.Rgba16:  {4, int(element.U16)},
		pixel.Rgb32F:  {3, int(element.F32)},
		pixel.Rgba32F: {4, int(element.F32)},
	}
	require.Len(t, pixel.ColorTypes(), len(want))
	for _, c := range pixel.ColorTypes() {
		require.True(t, c.Valid(), c.String())
		require.Equal(t, want[c][0], c.Channels(), c.String())
		require.Equal(t, element.Depth(want[c][1]), c.Depth(), c.String())
	}

	require.False(t, pixel.ColorType(0).Valid())
	require.Equal(t, "ColorType(99)", pixel.ColorType(99).String())
}

// TestColorTypeOf resolves enumerated pairs and rejects the float gray kinds.
func TestColorTypeOf(t *testing.T) {
	c, ok := pixel.ColorTypeOf[pixel.Rgb, float32]()
	require.True(t, ok)
	require.Equal(t, pixel.Rgb32F, c)

	c, ok = pixel.ColorTypeOf[pixel.LumaA, uint16]()
	require.True(t, ok)
	require.Equal(t, pixel.La16, c)

	_, ok = pixel.ColorTypeOf[pixel.Luma, float32]()
	require.False(t, ok)
	_, ok = pixel.ColorTypeOf[pixel.LumaA, float32]()
	require.False(t, ok)
}

// TestWrapAs exercises the closed union: one active variant, typed retrieval.
func TestWrapAs(t *testing.T) {
	b, err := pixel.New[pixel.Rgb, uint8](4, 2)
	require.NoError(t, err)

	d, err := pixel.Wrap(b)
	require.NoError(t, err)
	require.False(t, d.IsZero())
	require.Equal(t, pixel.Rgb8, d.ColorType())
	require.Equal(t, 4, d.Width())
	require.Equal(t, 2, d.Height())
	require.Equal(t, "DynamicImage(Rgb8 4x2)", d.String())

	got, ok := pixel.As[pixel.Rgb, uint8](d)
	require.True(t, ok)
	require.Same(t, b, got)

	_, ok = pixel.As[pixel.Rgba, uint8](d)
	require.False(t, ok)
	_, ok = pixel.As[pixel.Rgb, uint16](d)
	require.False(t, ok)
}

// TestWrapRejects covers nil and non-enumerated buffers.
func TestWrapRejects(t *testing.T) {
	_, err := pixel.Wrap[pixel.Luma, uint8](nil)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)

	g, err := pixel.New[pixel.Luma, float32](1, 1)
	require.NoError(t, err)
	_, err = pixel.Wrap(g)
	require.ErrorIs(t, err, pixel.ErrUnsupportedColor)

	var zero pixel.DynamicImage
	require.True(t, zero.IsZero())
	require.Zero(t, zero.Width())
	_, ok := pixel.As[pixel.Luma, uint8](zero)
	require.False(t, ok)
}

func TestColorTypeText(t *testing.T) {
	for _, c := range pixel.ColorTypes() {
		txt, err := c.MarshalText()
		require.NoError(t, err)

		var back pixel.ColorType
		require.NoError(t, back.UnmarshalText(txt))
		require.Equal(t, c, back)
	}

	var c pixel.ColorType
	require.NoError(t, c.UnmarshalText([]byte("rgba16")))
	require.Equal(t, pixel.Rgba16, c)
	require.ErrorIs(t, c.UnmarshalText([]byte("L32F")), pixel.ErrUnsupportedColor)
}
