// SPDX-License-Identifier: MIT

// Command pixmat inspects and exercises the buffer <-> matrix conversions.
//
// Usage:
//
//	pixmat table --format yaml
//	pixmat roundtrip --width 250 --height 100 --depth 8U --channels 3
//	pixmat roundtrip --depth 16U --channels 4 --view --path fallback -v
//
// table prints which (depth, channels) pairs DecodeDynamic accepts and which colour
// types only encode. roundtrip generates a seeded random matrix, decodes it, encodes
// the result again and exits non-zero unless the two matrices are identical.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
