// SPDX-License-Identifier: MIT
// Package convert_test contains test helpers
//
// Purpose:
//   - Wrappers that change what a matrix advertises without changing its content.
//   - Seeded fixtures so every failure is reproducible.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
)

// seed is shared by every randomised test in this package.
const seed = 20240611

// hide WRAPS any Matrix and withholds its contiguous view.
// Implementation:
//   - Stage 1: Embed mat.Matrix to forward all methods.
//   - Stage 2: Override Bytes to report ok=false.
//
// Behavior highlights:
//   - PathAuto on hide{m} takes the element-wise route even when m is a plain *Dense.
//
// AI-Hints:
//   - Compare Decode(m) with Decode(hide{m}) to assert fast path == fallback bitwise.
type hide struct{ mat.Matrix }

func (hide) Bytes() ([]byte, bool) { return nil, false }

// spy counts every data access made through it.
// Metadata calls (Dims, Rows, Depth, ...) are free; Bytes and ElemAt are counted.
type spy struct {
	mat.Matrix
	bytesCalls int
	elemCalls  int
}

func (s *spy) Bytes() ([]byte, bool) {
	s.bytesCalls++

	return s.Matrix.Bytes()
}

func (s *spy) ElemAt(row, col int) ([]byte, error) {
	s.elemCalls++

	return s.Matrix.ElemAt(row, col)
}

// mustDense ALLOCATES a rows×cols *mat.Dense or fails the test.
func mustDense(t *testing.T, rows, cols int, depth element.Depth, ch int) *mat.Dense {
	t.Helper()
	m, err := mat.NewDense(rows, cols, depth, ch)
	require.NoError(t, err)

	return m
}

// short wraps a Matrix without a contiguous view whose ElemAt drops all but the
// first byte of every element.
type short struct{ mat.Matrix }

func (short) Bytes() ([]byte, bool) { return nil, false }

func (s short) ElemAt(row, col int) ([]byte, error) {
	b, err := s.Matrix.ElemAt(row, col)
	if err != nil {
		return nil, err
	}

	return b[:1], nil
}
