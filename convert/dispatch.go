// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// Pair is one row of the DecodeDynamic table: a matrix (depth, channels) tag pair
// and the DynamicImage variant it decodes to.
type Pair struct {
	Depth    element.Depth   `yaml:"depth"`
	Channels int             `yaml:"channels"`
	Color    pixel.ColorType `yaml:"color"`
}

// TypeName renders the matrix side of p, e.g. "CV_8UC3".
func (p Pair) TypeName() string { return element.TypeName(p.Depth, p.Channels) }

// decodeEntry binds a Pair to the typed decoder instantiation that serves it.
type decodeEntry struct {
	Pair
	decode func(m mat.Matrix, opts ...Option) (pixel.DynamicImage, error)
}

// entry builds the table row for Buffer[K, T]; the pair comes from the registry.
func entry[K pixel.Kind, T element.Element]() decodeEntry {
	c, ok := pixel.ColorTypeOf[K, T]()
	if !ok {
		panic(fmt.Sprintf("convert: %s is not an enumerated color type", decodeTag[K, T]()))
	}

	return decodeEntry{
		Pair: Pair{Depth: element.DepthOf[T](), Channels: pixel.ChannelsOf[K](), Color: c},
		decode: func(m mat.Matrix, opts ...Option) (pixel.DynamicImage, error) {
			b, err := Decode[K, T](m, opts...)
			if err != nil {
				return pixel.DynamicImage{}, err
			}

			return pixel.Wrap(b)
		},
	}
}

// decodeTable is the complete set of (depth, channels) pairs DecodeDynamic accepts.
// Pairs absent here (e.g. 8U/4, 16U/2, 32F/4) are rejected even though EncodeDynamic
// produces them; that asymmetry is deliberate.
var decodeTable = []decodeEntry{
	entry[pixel.Luma, uint8](),
	entry[pixel.Luma, uint16](),
	entry[pixel.Rgb, uint8](),
	entry[pixel.Rgb, uint16](),
	entry[pixel.Rgb, float32](),
}

// DecodeDynamic converts m into the DynamicImage variant selected by its
// (depth, channels) pair.
// MAIN DESCRIPTION:
//   - Runtime dispatch over a closed table; the default arm is an error.
//
// Implementation:
//   - Stage 1: reject nil and non-2-D matrices before reading any tag-dependent data.
//   - Stage 2: exact-match lookup of (Depth(), Channels()) in decodeTable.
//   - Stage 3: delegate to Decode[K, T] for that row and wrap the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionality, ErrUnsupportedMatrix (naming depth and channels),
//     plus anything Decode returns.
//
// Determinism:
//   - The same (depth, channels) always routes to the same variant.
func DecodeDynamic(m mat.Matrix, opts ...Option) (pixel.DynamicImage, error) {
	if m == nil {
		return pixel.DynamicImage{}, fmt.Errorf("DecodeDynamic: %w", ErrNilMatrix)
	}
	if err := validateDims(m); err != nil {
		return pixel.DynamicImage{}, fmt.Errorf("DecodeDynamic: %w", err)
	}

	depth, ch := m.Depth(), m.Channels()
	e, ok := lo.Find(decodeTable, func(e decodeEntry) bool {
		return e.Depth == depth && e.Channels == ch
	})
	if !ok {
		return pixel.DynamicImage{}, fmt.Errorf("DecodeDynamic: matrix of type %s (depth %s, %d channels): %w",
			element.TypeName(depth, ch), depth, ch, ErrUnsupportedMatrix)
	}

	return e.decode(m, opts...)
}

// DecodePairs lists the pairs DecodeDynamic accepts, in table order.
func DecodePairs() []Pair {
	return lo.Map(decodeTable, func(e decodeEntry, _ int) Pair { return e.Pair })
}

// DynamicDecodable reports whether a matrix encoded from colour type c decodes back
// through DecodeDynamic.
func DynamicDecodable(c pixel.ColorType) bool {
	return lo.ContainsBy(decodeTable, func(e decodeEntry) bool { return e.Color == c })
}

// EncodeOnlyColors lists the colour types EncodeDynamic accepts but DecodeDynamic does
// not recover: the documented asymmetry of the two directions.
func EncodeOnlyColors() []pixel.ColorType {
	return lo.Reject(EncodeColors(), func(c pixel.ColorType, _ int) bool { return DynamicDecodable(c) })
}
