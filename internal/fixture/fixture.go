// SPDX-License-Identifier: MIT

// Package fixture builds deterministic random matrices and pixel buffers for
// round-trip checks (package tests and the pixmat CLI).
//
// Purpose:
//   - Seeded generation only: the same seed always yields the same data.
//   - Float data is kept finite so failures print readable values.
//   - Strided re-embeds a matrix inside a wider parent so the result has the same
//     logical content but no contiguous view (forces element-wise decoding).
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fill writes random values into s; floats are drawn from [-1, 1).
func fill[T element.Element](rng *rand.Rand, s []T) {
	switch v := any(s).(type) {
	case []float32:
		for i := range v {
			v[i] = rng.Float32()*2 - 1
		}
	default:
		b := mat.AsBytes(s)
		_, _ = rng.Read(b) // math/rand.Read never fails
	}
}

// Dense allocates a rows×cols matrix of the given tags filled with random data.
// Depths outside the element registry (8S, 32S, 64F, ...) get random bytes.
func Dense(rng *rand.Rand, rows, cols int, depth element.Depth, channels int) (*mat.Dense, error) {
	m, err := mat.NewDense(rows, cols, depth, channels)
	if err != nil {
		return nil, err
	}

	switch depth {
	case element.F32:
		s, err := mat.AsSlice[float32](m)
		if err != nil {
			return nil, err
		}
		fill(rng, s)
	default:
		b, _ := m.Bytes()
		_, _ = rng.Read(b)
	}

	return m, nil
}

// Buffer allocates a w×h Buffer[K, T] filled with random data.
func Buffer[K pixel.Kind, T element.Element](rng *rand.Rand, w, h int) (*pixel.Buffer[K, T], error) {
	b, err := pixel.New[K, T](w, h)
	if err != nil {
		return nil, err
	}
	fill(rng, b.Pix())

	return b, nil
}

// Strided copies m into a parent that is pad columns wider and returns the window
// holding the copy. The window has m's content but Bytes() reports ok=false
// whenever m has more than one row and pad > 0.
func Strided(m *mat.Dense, pad int) (*mat.View, error) {
	if pad < 0 {
		return nil, fmt.Errorf("fixture.Strided: pad %d: %w", pad, mat.ErrBadShape)
	}
	rows, cols := m.Rows(), m.Cols()
	parent, err := mat.NewDense(rows, cols+pad, m.Depth(), m.Channels())
	if err != nil {
		return nil, err
	}
	// Sentinel padding so a reader that ignores the stride sees wrong data.
	pb, _ := parent.Bytes()
	for i := range pb {
		pb[i] = 0xA5
	}

	view, err := parent.View(0, pad/2, rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			e, err := m.ElemAt(i, j)
			if err != nil {
				return nil, err
			}
			if err = view.SetElem(i, j, e); err != nil {
				return nil, err
			}
		}
	}

	return view, nil
}
