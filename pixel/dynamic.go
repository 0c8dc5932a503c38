// SPDX-License-Identifier: MIT

package pixel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pixmat/element"
)

// ColorType enumerates the (kind, element) pairs a DynamicImage may hold.
type ColorType int

// Supported colour types. Luma/LumaA at float32 are deliberately absent.
const (
	L8 ColorType = iota + 1
	La8
	Rgb8
	Rgba8
	L16
	La16
	Rgb16
	Rgba16
	Rgb32F
	Rgba32F
)

// colorInfo is the single table behind every ColorType query.
var colorInfo = map[ColorType]struct {
	name     string
	channels int
	depth    element.Depth
}{
	L8:      {"L8", 1, element.U8},
	La8:     {"La8", 2, element.U8},
	Rgb8:    {"Rgb8", 3, element.U8},
	Rgba8:   {"Rgba8", 4, element.U8},
	L16:     {"L16", 1, element.U16},
	La16:    {"La16", 2, element.U16},
	Rgb16:   {"Rgb16", 3, element.U16},
	Rgba16:  {"Rgba16", 4, element.U16},
	Rgb32F:  {"Rgb32F", 3, element.F32},
	Rgba32F: {"Rgba32F", 4, element.F32},
}

// ColorTypes returns every supported colour type in declaration order.
func ColorTypes() []ColorType {
	return []ColorType{L8, La8, Rgb8, Rgba8, L16, La16, Rgb16, Rgba16, Rgb32F, Rgba32F}
}

// Valid reports whether c is an enumerated colour type.
func (c ColorType) Valid() bool {
	_, ok := colorInfo[c]

	return ok
}

// Channels returns the channel count of c (0 if invalid).
func (c ColorType) Channels() int { return colorInfo[c].channels }

// Depth returns the element tag of c (meaningless if invalid).
func (c ColorType) Depth() element.Depth { return colorInfo[c].depth }

func (c ColorType) String() string {
	if info, ok := colorInfo[c]; ok {
		return info.name
	}

	return fmt.Sprintf("ColorType(%d)", int(c))
}

// MarshalText renders c by name ("Rgb16").
func (c ColorType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts the names produced by MarshalText (case-insensitive).
func (c *ColorType) UnmarshalText(text []byte) error {
	for _, ct := range ColorTypes() {
		if strings.EqualFold(string(text), colorInfo[ct].name) {
			*c = ct

			return nil
		}
	}

	return fmt.Errorf("ColorType(%q): %w", text, ErrUnsupportedColor)
}

// ColorTypeOf resolves the colour type of Buffer[K, T], ok=false if not enumerated.
func ColorTypeOf[K Kind, T element.Element]() (ColorType, bool) {
	ch, d := ChannelsOf[K](), element.DepthOf[T]()
	for _, c := range ColorTypes() {
		if info := colorInfo[c]; info.channels == ch && info.depth == d {
			return c, true
		}
	}

	return 0, false
}

// DynamicImage holds exactly one Buffer whose (K, T) is an enumerated ColorType.
// The zero value holds nothing (IsZero reports true).
type DynamicImage struct {
	color ColorType
	img   sized // *Buffer[K, T] matching color
}

// sized is the non-generic slice of Buffer's method set.
type sized interface {
	Width() int
	Height() int
}

// Wrap stores b in a DynamicImage. It fails for pairs outside the enumeration.
// MAIN DESCRIPTION:
//   - The only constructor of a non-zero DynamicImage: the union stays closed.
//
// Errors:
//   - ErrNilBuffer, ErrUnsupportedColor.
func Wrap[K Kind, T element.Element](b *Buffer[K, T]) (DynamicImage, error) {
	if b == nil {
		return DynamicImage{}, fmt.Errorf("Wrap: %w", ErrNilBuffer)
	}
	c, ok := ColorTypeOf[K, T]()
	if !ok {
		var k K

		return DynamicImage{}, fmt.Errorf("Wrap: %s over %s: %w", k.Name(), b.Depth(), ErrUnsupportedColor)
	}

	return DynamicImage{color: c, img: b}, nil
}

// As returns the held buffer when the active variant is Buffer[K, T].
func As[K Kind, T element.Element](d DynamicImage) (*Buffer[K, T], bool) {
	b, ok := d.img.(*Buffer[K, T])

	return b, ok
}

// ColorType returns the active variant's tag (0 for the zero value).
func (d DynamicImage) ColorType() ColorType { return d.color }

// IsZero reports whether d holds no image.
func (d DynamicImage) IsZero() bool { return d.img == nil }

// Width returns the held image's width (0 for the zero value).
func (d DynamicImage) Width() int {
	if d.img == nil {
		return 0
	}

	return d.img.Width()
}

// Height returns the held image's height (0 for the zero value).
func (d DynamicImage) Height() int {
	if d.img == nil {
		return 0
	}

	return d.img.Height()
}

func (d DynamicImage) String() string {
	return fmt.Sprintf("DynamicImage(%s %dx%d)", d.color, d.Width(), d.Height())
}
