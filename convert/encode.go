// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// Encode copies b into a freshly allocated matrix of b.Height() rows and b.Width()
// columns, depth DepthOf[T] and channels(K).
// MAIN DESCRIPTION:
//   - Single-shot, full-frame conversion; no dispatch, the buffer type is concrete.
//
// Implementation:
//   - Stage 1: derive the (depth, channels) tag pair from K and T.
//   - Stage 2: allocate a zero-initialised mat.Dense of the same logical shape.
//   - Stage 3: one bulk copy of w*h*ch*sizeof(T) bytes.
//
// Errors:
//   - ErrNilBuffer; ErrAllocation when the matrix cannot be allocated.
//
// Complexity:
//   - Time O(w*h*ch), Space O(w*h*ch).
func Encode[K pixel.Kind, T element.Element](b *pixel.Buffer[K, T]) (*mat.Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("Encode: %w", ErrNilBuffer)
	}
	w, h := b.Dimensions()
	depth, ch := element.DepthOf[T](), pixel.ChannelsOf[K]()

	m, err := mat.NewDense(h, w, depth, ch)
	if err != nil {
		return nil, fmt.Errorf("Encode[%s]: %w: %w", element.TypeName(depth, ch), ErrAllocation, err)
	}
	dst, _ := m.Bytes() // a fresh Dense is always contiguous
	bulkCopy(dst, mat.AsBytes(b.Pix()))

	return m, nil
}

// bulkCopy copies src into dst. Both regions are allocated from the same logical
// dimensions and layout, so differing lengths are a programming error.
func bulkCopy(dst, src []byte) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("convert: bulk copy of %d bytes into %d", len(src), len(dst)))
	}
	copy(dst, src)
}

// EncodeDynamic encodes the active variant of img.
// Every enumerated pixel.ColorType is accepted, including those DecodeDynamic does not
// recognise (see DecodePairs).
func EncodeDynamic(img pixel.DynamicImage) (*mat.Dense, error) {
	switch img.ColorType() {
	case pixel.L8:
		return encodeVariant[pixel.Luma, uint8](img)
	case pixel.La8:
		return encodeVariant[pixel.LumaA, uint8](img)
	case pixel.Rgb8:
		return encodeVariant[pixel.Rgb, uint8](img)
	case pixel.Rgba8:
		return encodeVariant[pixel.Rgba, uint8](img)
	case pixel.L16:
		return encodeVariant[pixel.Luma, uint16](img)
	case pixel.La16:
		return encodeVariant[pixel.LumaA, uint16](img)
	case pixel.Rgb16:
		return encodeVariant[pixel.Rgb, uint16](img)
	case pixel.Rgba16:
		return encodeVariant[pixel.Rgba, uint16](img)
	case pixel.Rgb32F:
		return encodeVariant[pixel.Rgb, float32](img)
	case pixel.Rgba32F:
		return encodeVariant[pixel.Rgba, float32](img)
	}
	if img.IsZero() {
		return nil, fmt.Errorf("EncodeDynamic: empty image: %w", ErrNilBuffer)
	}

	return nil, fmt.Errorf("EncodeDynamic: color type %s: %w", img.ColorType(), ErrUnsupportedColor)
}

// encodeVariant unwraps img as Buffer[K, T] and encodes it.
func encodeVariant[K pixel.Kind, T element.Element](img pixel.DynamicImage) (*mat.Dense, error) {
	b, ok := pixel.As[K, T](img)
	if !ok {
		return nil, fmt.Errorf("EncodeDynamic: color type %s: %w", img.ColorType(), ErrUnsupportedColor)
	}

	return Encode(b)
}

// EncodeColors lists the colour types EncodeDynamic accepts.
func EncodeColors() []pixel.ColorType { return pixel.ColorTypes() }
