// SPDX-License-Identifier: MIT

package pixel

// Kind is the compile-time channel semantics of a pixel.
// It is a closed set: only the four kinds below satisfy it.
type Kind interface {
	Luma | LumaA | Rgb | Rgba

	// Channels returns the number of interleaved values per pixel.
	Channels() int
	// Name returns a short human-readable name ("Luma", "Rgb", ...).
	Name() string
}

// Luma is a single grayscale channel.
type Luma struct{}

// LumaA is grayscale followed by alpha.
type LumaA struct{}

// Rgb is red, green, blue in that order.
type Rgb struct{}

// Rgba is red, green, blue, alpha in that order.
type Rgba struct{}

func (Luma) Channels() int  { return 1 }
func (LumaA) Channels() int { return 2 }
func (Rgb) Channels() int   { return 3 }
func (Rgba) Channels() int  { return 4 }

func (Luma) Name() string  { return "Luma" }
func (LumaA) Name() string { return "LumaA" }
func (Rgb) Name() string   { return "Rgb" }
func (Rgba) Name() string  { return "Rgba" }

// ChannelsOf returns channels(K) without a value of K.
func ChannelsOf[K Kind]() int {
	var k K

	return k.Channels()
}
