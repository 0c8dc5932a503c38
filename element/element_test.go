package element_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/element"
)

// TestDepthOf verifies the static type → tag mapping for every supported scalar.
func TestDepthOf(t *testing.T) {
	require.Equal(t, element.U8, element.DepthOf[uint8]())
	require.Equal(t, element.U16, element.DepthOf[uint16]())
	require.Equal(t, element.F32, element.DepthOf[float32]())
}

// TestSizeOf checks byte widths agree with the Go types.
func TestSizeOf(t *testing.T) {
	require.Equal(t, 1, element.SizeOf[uint8]())
	require.Equal(t, 2, element.SizeOf[uint16]())
	require.Equal(t, 4, element.SizeOf[float32]())
}

// TestMatches ensures equality is exact on the tag (no widening, no signedness slack).
func TestMatches(t *testing.T) {
	require.True(t, element.Matches[uint8](element.U8))
	require.False(t, element.Matches[uint8](element.S8))
	require.False(t, element.Matches[uint16](element.S16))
	require.False(t, element.Matches[uint16](element.F16))
	require.True(t, element.Matches[float32](element.F32))
	require.False(t, element.Matches[float32](element.F64))
}

func TestDepthSizeAndString(t *testing.T) {
	cases := []struct {
		d    element.Depth
		size int
		name string
	}{
		{element.U8, 1, "8U"},
		{element.S8, 1, "8S"},
		{element.U16, 2, "16U"},
		{element.S16, 2, "16S"},
		{element.S32, 4, "32S"},
		{element.F32, 4, "32F"},
		{element.F64, 8, "64F"},
		{element.F16, 2, "16F"},
	}
	for _, tc := range cases {
		require.True(t, tc.d.Valid(), tc.name)
		require.Equal(t, tc.size, tc.d.Size(), tc.name)
		require.Equal(t, tc.name, tc.d.String())
	}

	// Unknown tags are reported, never sized.
	require.False(t, element.Depth(8).Valid())
	require.Zero(t, element.Depth(-1).Size())
	require.Equal(t, "Depth(9)", element.Depth(9).String())
}

// TestMakeTypeRoundTrip mirrors CV_MAKETYPE numbering (CV_8UC3 == 16, CV_32FC1 == 5).
func TestMakeTypeRoundTrip(t *testing.T) {
	require.Equal(t, 16, element.MakeType(element.U8, 3))
	require.Equal(t, 5, element.MakeType(element.F32, 1))
	require.Equal(t, 26, element.MakeType(element.U16, 4))

	for d := element.U8; d <= element.F16; d++ {
		for ch := 1; ch <= 4; ch++ {
			gd, gch := element.SplitType(element.MakeType(d, ch))
			require.Equal(t, d, gd)
			require.Equal(t, ch, gch)
		}
	}
}

func TestTypeName(t *testing.T) {
	require.Equal(t, "CV_8UC3", element.TypeName(element.U8, 3))
	require.Equal(t, "CV_32FC1", element.TypeName(element.F32, 1))
}

// TestParseDepth accepts OpenCV spellings and rejects the rest.
func TestParseDepth(t *testing.T) {
	for _, s := range []string{"16U", "16u", "CV_16U", " cv_16u "} {
		d, err := element.ParseDepth(s)
		require.NoError(t, err, s)
		require.Equal(t, element.U16, d)
	}

	_, err := element.ParseDepth("12U")
	require.ErrorIs(t, err, element.ErrUnknownDepth)

	var d element.Depth
	require.NoError(t, d.UnmarshalText([]byte("32F")))
	require.Equal(t, element.F32, d)
	txt, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "32F", string(txt))
}
