// SPDX-License-Identifier: MIT

// Package pixel - typed, interleaved pixel storage.
//
// Purpose:
//   - Hold width*height pixels of kind K over scalar T in one owned, row-major []T.
//   - Make the length invariant a constructor-time check, never a runtime surprise.
//
// AI-Hints:
//   - Pix() is the contiguous backing store; bulk copies go through it.
//   - PixelAt returns a window into Pix(); copy it if you need an independent value.
//
// Complexity quicksheet:
//   - New/FromFunc: O(w*h*ch); FromSlice: O(1) (takes ownership); PixelAt: O(1).

package pixel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pixmat/element"
)

// Buffer is a rectangular grid of K pixels over T elements.
//   - pix has length exactly w*h*channels(K), channel-interleaved, row-major.
type Buffer[K Kind, T element.Element] struct {
	w, h int // width (columns) and height (rows)
	pix  []T // owned backing store
}

// Instantiations matching the ColorType enumeration.
type (
	GrayImage        = Buffer[Luma, uint8]
	GrayAlphaImage   = Buffer[LumaA, uint8]
	RgbImage         = Buffer[Rgb, uint8]
	RgbaImage        = Buffer[Rgba, uint8]
	Gray16Image      = Buffer[Luma, uint16]
	GrayAlpha16Image = Buffer[LumaA, uint16]
	Rgb16Image       = Buffer[Rgb, uint16]
	Rgba16Image      = Buffer[Rgba, uint16]
	Rgb32FImage      = Buffer[Rgb, float32]
	Rgba32FImage     = Buffer[Rgba, float32]
)

// pixLen computes w*h*ch with validation and overflow checks.
func pixLen(w, h, ch int) (int, error) {
	if w < 0 || h < 0 {
		return 0, ErrBadDimensions
	}
	if w != 0 && h > math.MaxInt/w {
		return 0, ErrTooLarge
	}
	n := w * h
	if n != 0 && ch > math.MaxInt/n {
		return 0, ErrTooLarge
	}

	return n * ch, nil
}

// New allocates a zeroed w×h buffer.
// Errors: ErrBadDimensions, ErrTooLarge.
func New[K Kind, T element.Element](w, h int) (*Buffer[K, T], error) {
	n, err := pixLen(w, h, ChannelsOf[K]())
	if err != nil {
		return nil, fmt.Errorf("New(%d,%d): %w", w, h, err)
	}

	return &Buffer[K, T]{w: w, h: h, pix: make([]T, n)}, nil
}

// FromSlice wraps pix as a w×h buffer, taking ownership of the slice (no copy).
// MAIN DESCRIPTION:
//   - Constructor that enforces len(pix) == w*h*channels(K).
//
// Errors:
//   - ErrBadDimensions, ErrTooLarge, ErrBadLength.
//
// Notes:
//   - The caller must not retain pix for writing after the call.
func FromSlice[K Kind, T element.Element](w, h int, pix []T) (*Buffer[K, T], error) {
	n, err := pixLen(w, h, ChannelsOf[K]())
	if err != nil {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", w, h, err)
	}
	if len(pix) != n {
		return nil, fmt.Errorf("FromSlice(%d,%d): got %d values, want %d: %w", w, h, len(pix), n, ErrBadLength)
	}
	if pix == nil {
		pix = []T{}
	}

	return &Buffer[K, T]{w: w, h: h, pix: pix}, nil
}

// FromFunc builds a w×h buffer by calling f for every pixel in row-major order.
// f receives the pixel's window into the backing store and fills it in place.
func FromFunc[K Kind, T element.Element](w, h int, f func(x, y int, px []T)) (*Buffer[K, T], error) {
	b, err := New[K, T](w, h)
	if err != nil {
		return nil, err
	}
	ch := ChannelsOf[K]()
	var x, y, off int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			f(x, y, b.pix[off:off+ch:off+ch])
			off += ch
		}
	}

	return b, nil
}

// Width returns the number of columns.
func (b *Buffer[K, T]) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer[K, T]) Height() int { return b.h }

// Dimensions returns (width, height).
func (b *Buffer[K, T]) Dimensions() (int, int) { return b.w, b.h }

// Channels returns channels(K).
func (b *Buffer[K, T]) Channels() int { return ChannelsOf[K]() }

// Depth returns the depth tag of T.
func (b *Buffer[K, T]) Depth() element.Depth { return element.DepthOf[T]() }

// Pix returns the contiguous backing store (aliasing; len == w*h*channels).
func (b *Buffer[K, T]) Pix() []T { return b.pix }

// offset bounds-checks (x, y) and returns the index of the pixel's first value.
func (b *Buffer[K, T]) offset(x, y int) (int, error) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0, ErrOutOfRange
	}

	return (y*b.w + x) * ChannelsOf[K](), nil
}

// PixelAt returns the channel values of pixel (x, y) as a window into Pix().
func (b *Buffer[K, T]) PixelAt(x, y int) ([]T, error) {
	off, err := b.offset(x, y)
	if err != nil {
		return nil, fmt.Errorf("Buffer.PixelAt(%d,%d): %w", x, y, err)
	}
	ch := ChannelsOf[K]()

	return b.pix[off : off+ch : off+ch], nil
}

// SetPixel overwrites pixel (x, y) with exactly channels(K) values.
func (b *Buffer[K, T]) SetPixel(x, y int, px ...T) error {
	off, err := b.offset(x, y)
	if err != nil {
		return fmt.Errorf("Buffer.SetPixel(%d,%d): %w", x, y, err)
	}
	if ch := ChannelsOf[K](); len(px) != ch {
		return fmt.Errorf("Buffer.SetPixel(%d,%d): got %d values, want %d: %w", x, y, len(px), ch, ErrBadLength)
	}
	copy(b.pix[off:], px)

	return nil
}

// Clone returns a deep copy.
func (b *Buffer[K, T]) Clone() *Buffer[K, T] {
	cp := make([]T, len(b.pix))
	copy(cp, b.pix)

	return &Buffer[K, T]{w: b.w, h: b.h, pix: cp}
}

// String renders kind, element depth and size, e.g. "Buffer[Rgb,8U](250x100)".
func (b *Buffer[K, T]) String() string {
	var k K

	return fmt.Sprintf("Buffer[%s,%s](%dx%d)", k.Name(), b.Depth(), b.w, b.h)
}
