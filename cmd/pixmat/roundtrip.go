// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmat/convert"
	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/internal/fixture"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// viewPad is the number of extra parent columns used by --view.
const viewPad = 3

// errMismatch is returned when the re-encoded matrix differs from the source.
var errMismatch = errors.New("round trip mismatch")

type roundTripFlags struct {
	width, height int
	depth         string
	channels      int
	seed          int64
	path          string
	view          bool
}

// roundTripReport is the result printed by `pixmat roundtrip`.
type roundTripReport struct {
	Type    string          `yaml:"type"`
	Width   int             `yaml:"width"`
	Height  int             `yaml:"height"`
	Seed    int64           `yaml:"seed"`
	Path    string          `yaml:"path"`
	Strided bool            `yaml:"strided"`
	Route   string          `yaml:"route"`
	Color   pixel.ColorType `yaml:"color"`
	Equal   bool            `yaml:"equal"`
}

func newRoundTripCmd(g *globals) *cobra.Command {
	f := &roundTripFlags{}
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Decode a random matrix, encode it again and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := runRoundTrip(g, cmd, f)
			if err != nil {
				return err
			}
			if err = g.emit(cmd.OutOrStdout(), rep, rep.writeText); err != nil {
				return err
			}
			if !rep.Equal {
				return fmt.Errorf("%s %dx%d: %w", rep.Type, rep.Width, rep.Height, errMismatch)
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 250, "matrix columns")
	fl.IntVar(&f.height, "height", 100, "matrix rows")
	fl.StringVar(&f.depth, "depth", element.U8.String(), "element depth (8U, 16U, 32F, ...)")
	fl.IntVar(&f.channels, "channels", 3, "channels per element")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.path, "path", convert.DefaultPath.String(), "decode path: auto, fast or fallback")
	fl.BoolVar(&f.view, "view", false, "decode through a strided window instead of a packed matrix")

	return cmd
}

// runRoundTrip performs matrix -> image -> matrix for the flags in f.
// Implementation:
//   - Stage 1: parse --depth and --path, generate the seeded source matrix.
//   - Stage 2: optionally re-embed it in a wider parent (--view).
//   - Stage 3: decode dynamically; pairs only the typed decoder covers go through it.
//   - Stage 4: EncodeDynamic and compare with the source.
func runRoundTrip(g *globals, cmd *cobra.Command, f *roundTripFlags) (roundTripReport, error) {
	log := g.logger(cmd)
	depth, err := element.ParseDepth(f.depth)
	if err != nil {
		return roundTripReport{}, err
	}
	path, err := convert.ParsePath(f.path)
	if err != nil {
		return roundTripReport{}, err
	}

	src, err := fixture.Dense(fixture.NewRand(f.seed), f.height, f.width, depth, f.channels)
	if err != nil {
		return roundTripReport{}, err
	}
	rep := roundTripReport{
		Type:   src.TypeName(),
		Width:  f.width,
		Height: f.height,
		Seed:   f.seed,
		Path:   path.String(),
		Route:  "dynamic",
	}

	var in mat.Matrix = src
	if f.view {
		v, err := fixture.Strided(src, viewPad)
		if err != nil {
			return rep, err
		}
		_, packed := v.Bytes()
		rep.Strided = !packed
		in = v
	}
	log.Debug("source matrix", "matrix", src, "strided", rep.Strided, "path", rep.Path)

	img, err := convert.DecodeDynamic(in, convert.WithPath(path))
	if errors.Is(err, convert.ErrUnsupportedMatrix) {
		c, ok := colorFor(depth, f.channels)
		if !ok {
			return rep, err
		}
		log.Debug("dynamic decode unsupported, using typed decoder", "color", c)
		rep.Route = "typed"
		img, err = decodeTyped(c, in, convert.WithPath(path))
	}
	if err != nil {
		return rep, err
	}
	rep.Color = img.ColorType()

	back, err := convert.EncodeDynamic(img)
	if err != nil {
		return rep, err
	}
	rep.Equal = mat.Equal(src, back)
	log.Debug("re-encoded", "matrix", back, "equal", rep.Equal)

	return rep, nil
}

// colorFor finds the colour type whose tags are (depth, channels).
func colorFor(depth element.Depth, channels int) (pixel.ColorType, bool) {
	for _, c := range pixel.ColorTypes() {
		if c.Depth() == depth && c.Channels() == channels {
			return c, true
		}
	}

	return 0, false
}

// decodeTyped decodes m as colour type c through the typed decoder.
func decodeTyped(c pixel.ColorType, m mat.Matrix, opts ...convert.Option) (pixel.DynamicImage, error) {
	switch c {
	case pixel.L8:
		return decodeWrap[pixel.Luma, uint8](m, opts)
	case pixel.La8:
		return decodeWrap[pixel.LumaA, uint8](m, opts)
	case pixel.Rgb8:
		return decodeWrap[pixel.Rgb, uint8](m, opts)
	case pixel.Rgba8:
		return decodeWrap[pixel.Rgba, uint8](m, opts)
	case pixel.L16:
		return decodeWrap[pixel.Luma, uint16](m, opts)
	case pixel.La16:
		return decodeWrap[pixel.LumaA, uint16](m, opts)
	case pixel.Rgb16:
		return decodeWrap[pixel.Rgb, uint16](m, opts)
	case pixel.Rgba16:
		return decodeWrap[pixel.Rgba, uint16](m, opts)
	case pixel.Rgb32F:
		return decodeWrap[pixel.Rgb, float32](m, opts)
	case pixel.Rgba32F:
		return decodeWrap[pixel.Rgba, float32](m, opts)
	}

	return pixel.DynamicImage{}, fmt.Errorf("decode as %s: %w", c, convert.ErrUnsupportedColor)
}

func decodeWrap[K pixel.Kind, T element.Element](m mat.Matrix, opts []convert.Option) (pixel.DynamicImage, error) {
	b, err := convert.Decode[K, T](m, opts...)
	if err != nil {
		return pixel.DynamicImage{}, err
	}

	return pixel.Wrap(b)
}

func (r roundTripReport) writeText(w io.Writer) error {
	status := "ok"
	if !r.Equal {
		status = "MISMATCH"
	}
	_, err := fmt.Fprintf(w, "%s %dx%d seed=%d path=%s strided=%t route=%s color=%s: %s\n",
		r.Type, r.Width, r.Height, r.Seed, r.Path, r.Strided, r.Route, r.Color, status)

	return err
}
