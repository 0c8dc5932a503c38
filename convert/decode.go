// SPDX-License-Identifier: MIT

// Package convert - typed matrix → buffer decoding.
//
// Purpose:
//   - Validate a borrowed matrix against a caller-chosen (K, T) before touching data.
//   - Copy through a contiguous typed view when one exists (fast path).
//   - Otherwise read every element through the random-access reader (fallback path),
//     which is the layout-independent ground truth the fast path must match.
//
// AI-Hints:
//   - Strided views (mat.View narrower than its parent) always take the fallback path.
//   - WithPath(PathFallback) forces the fallback on any matrix; useful for equivalence checks.

package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// decodeTag renders the target of Decode[K, T] for error messages, e.g. "Rgb/16U".
func decodeTag[K pixel.Kind, T element.Element]() string {
	var k K

	return k.Name() + "/" + element.DepthOf[T]().String()
}

// validateTarget checks the preconditions of Decode[K, T] in their fixed order.
// MAIN DESCRIPTION:
//   - Metadata-only checks; no element of m is read.
//
// Implementation:
//   - Stage 1: nil matrix.
//   - Stage 2: dimensionality (rows and cols must not be -1).
//   - Stage 3: channel count against channels(K).
//   - Stage 4: depth tag against DepthOf[T].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionality, ErrChannelMismatch, ErrDepthMismatch.
func validateTarget[K pixel.Kind, T element.Element](m mat.Matrix) error {
	tag := decodeTag[K, T]()
	if m == nil {
		return fmt.Errorf("Decode[%s]: %w", tag, ErrNilMatrix)
	}
	if err := validateDims(m); err != nil {
		return fmt.Errorf("Decode[%s]: %w", tag, err)
	}
	if got, want := m.Channels(), pixel.ChannelsOf[K](); got != want {
		return fmt.Errorf("Decode[%s]: matrix has %d channels, want %d: %w", tag, got, want, ErrChannelMismatch)
	}
	if got, want := m.Depth(), element.DepthOf[T](); got != want {
		return fmt.Errorf("Decode[%s]: matrix depth %s, want %s: %w", tag, got, want, ErrDepthMismatch)
	}

	return nil
}

// validateDims rejects matrices with other than two index dimensions.
func validateDims(m mat.Matrix) error {
	if m.Rows() == -1 || m.Cols() == -1 {
		return fmt.Errorf("matrix has %d dimensions, want 2: %w", m.Dims(), ErrDimensionality)
	}

	return nil
}

// Decode converts m into a new Buffer[K, T] of width m.Cols() and height m.Rows().
// MAIN DESCRIPTION:
//   - Typed decoder; the caller names the target pixel kind and element type.
//
// Implementation:
//   - Stage 1: validateTarget (dimensionality → channels → depth).
//   - Stage 2: route by Path; PathAuto probes mat.AsSlice and falls back on
//     mat.ErrNotContiguous only.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionality, ErrChannelMismatch, ErrDepthMismatch,
//     ErrAllocation, ErrNotContiguous (PathFast), or an element read error from m.
//
// Determinism:
//   - Fast and fallback paths yield bit-identical buffers for the same logical content.
//
// Complexity:
//   - Time O(rows*cols*ch), Space O(rows*cols*ch).
func Decode[K pixel.Kind, T element.Element](m mat.Matrix, opts ...Option) (*pixel.Buffer[K, T], error) {
	o := gatherOptions(opts...)
	if err := validateTarget[K, T](m); err != nil {
		return nil, err
	}

	switch o.path {
	case PathFallback:
		return decodeFallback[K, T](m)
	case PathFast:
		b, err := decodeFast[K, T](m)
		if errors.Is(err, mat.ErrNotContiguous) {
			return nil, fmt.Errorf("Decode[%s]: %w", decodeTag[K, T](), ErrNotContiguous)
		}

		return b, err
	default:
		b, err := decodeFast[K, T](m)
		if errors.Is(err, mat.ErrNotContiguous) {
			return decodeFallback[K, T](m)
		}

		return b, err
	}
}

// decodeFast copies a contiguous typed view of m into a new buffer in one operation.
// Assumes validateTarget passed.
func decodeFast[K pixel.Kind, T element.Element](m mat.Matrix) (*pixel.Buffer[K, T], error) {
	view, err := mat.AsSlice[T](m)
	if err != nil {
		return nil, err
	}
	pix := make([]T, len(view))
	copy(pix, view)

	b, err := pixel.FromSlice[K, T](m.Cols(), m.Rows(), pix)
	if err != nil {
		// The matrix reported a view that disagrees with its own shape.
		return nil, fmt.Errorf("Decode[%s]: contiguous view of %d values: %w", decodeTag[K, T](), len(view), err)
	}

	return b, nil
}

// decodeFallback reads every element of m in row-major order into a new buffer.
// Assumes validateTarget passed.
// MAIN DESCRIPTION:
//   - Layout-independent route: correct for strided, aliased or foreign storage.
//
// Implementation:
//   - Stage 1: allocate the output buffer (cols × rows).
//   - Stage 2: for each (row, col), read the channels(K)-tuple straight into the
//     destination pixel via mat.AtInto.
//
// Complexity:
//   - Time O(rows*cols*ch), Space O(rows*cols*ch); one interface call per pixel.
func decodeFallback[K pixel.Kind, T element.Element](m mat.Matrix) (*pixel.Buffer[K, T], error) {
	rows, cols := m.Rows(), m.Cols()
	b, err := pixel.New[K, T](cols, rows)
	if err != nil {
		return nil, fmt.Errorf("Decode[%s]: %w: %w", decodeTag[K, T](), ErrAllocation, err)
	}

	pix := b.Pix()
	ch := pixel.ChannelsOf[K]()
	var row, col, off int
	for row = 0; row < rows; row++ {
		for col = 0; col < cols; col++ {
			if err = mat.AtInto(m, row, col, pix[off:off+ch]); err != nil {
				return nil, fmt.Errorf("Decode[%s]: %w", decodeTag[K, T](), err)
			}
			off += ch
		}
	}

	return b, nil
}
