// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public functions wrap them with
// call-site context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package mat

import "errors"

var (
	// ErrBadShape is returned when a requested shape or window is invalid
	// (negative extents, fewer than two dimensions, window outside the parent).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrBadDepth indicates an unknown depth tag.
	ErrBadDepth = errors.New("mat: unknown depth")

	// ErrBadChannels indicates a channel count outside [1, element.MaxChannels].
	ErrBadChannels = errors.New("mat: invalid channel count")

	// ErrTooLarge signals that the requested storage cannot be allocated
	// (byte size overflows or exceeds MaxBytes).
	ErrTooLarge = errors.New("mat: storage too large")

	// ErrBadLength indicates a source buffer whose length does not match the shape.
	ErrBadLength = errors.New("mat: data length does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrNotTwoD marks a 2-D-only operation invoked on an N-D matrix.
	ErrNotTwoD = errors.New("mat: matrix is not two-dimensional")

	// ErrDepthMismatch indicates a typed access whose element type does not match
	// the matrix depth tag.
	ErrDepthMismatch = errors.New("mat: element type does not match depth")

	// ErrNotContiguous is returned by AsSlice when no usable contiguous typed view exists.
	ErrNotContiguous = errors.New("mat: storage is not contiguous")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("mat: nil matrix")
)
