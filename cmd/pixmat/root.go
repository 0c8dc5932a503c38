// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var formats = []string{formatText, formatYAML}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "pixmat",
		Short:         "Convert pixel buffers to matrices and back",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !lo.Contains(formats, g.format) {
				return fmt.Errorf("unknown --format %q (want one of %v)", g.format, formats)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&g.format, "format", formatText, "output format: text or yaml")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newTableCmd(g), newRoundTripCmd(g))

	return root
}

// logger returns a stderr logger; debug records are dropped unless --verbose.
func (g *globals) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// emit writes v as YAML, or calls text for the plain rendering.
func (g *globals) emit(w io.Writer, v any, text func(io.Writer) error) error {
	if g.format != formatYAML {
		return text(w)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
