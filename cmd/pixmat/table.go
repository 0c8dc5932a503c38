// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmat/convert"
	"github.com/katalvlaran/pixmat/pixel"
)

// supportTable is the report printed by `pixmat table`.
type supportTable struct {
	Decode     []convert.Pair    `yaml:"decode"`
	Encode     []pixel.ColorType `yaml:"encode"`
	EncodeOnly []pixel.ColorType `yaml:"encode_only"`
}

func newTableCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the supported conversion pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := supportTable{
				Decode:     convert.DecodePairs(),
				Encode:     convert.EncodeColors(),
				EncodeOnly: convert.EncodeOnlyColors(),
			}
			g.logger(cmd).Debug("support table", "decode", len(t.Decode), "encode", len(t.Encode))

			return g.emit(cmd.OutOrStdout(), t, t.writeText)
		},
	}
}

func (t supportTable) writeText(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("decode (matrix -> DynamicImage):\n")
	for _, p := range t.Decode {
		fmt.Fprintf(&sb, "  %-9s -> %s\n", p.TypeName(), p.Color)
	}
	names := func(cs []pixel.ColorType) string {
		return strings.Join(lo.Map(cs, func(c pixel.ColorType, _ int) string { return c.String() }), ", ")
	}
	fmt.Fprintf(&sb, "encode (DynamicImage -> matrix): %s\n", names(t.Encode))
	fmt.Fprintf(&sb, "encode only: %s\n", names(t.EncodeOnly))

	_, err := io.WriteString(w, sb.String())

	return err
}
