// SPDX-License-Identifier: MIT
// Package convert: sentinel error set.
// All conversions return these sentinels wrapped with call-site context
// (observed vs. expected values); tests and callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil input -> dimensionality -> channel count -> depth -> allocation -> layout.

package convert

import (
	"errors"

	"github.com/katalvlaran/pixmat/pixel"
)

var (
	// ErrDimensionality is returned for matrices with other than two index dimensions.
	ErrDimensionality = errors.New("convert: only 2-D matrices are supported")

	// ErrChannelMismatch indicates that the target kind's channel count differs from
	// the matrix channel count.
	ErrChannelMismatch = errors.New("convert: channel count mismatch")

	// ErrDepthMismatch indicates that the target element type's depth tag differs from
	// the matrix depth.
	ErrDepthMismatch = errors.New("convert: element depth mismatch")

	// ErrUnsupportedMatrix is returned by DecodeDynamic when no enumerated variant
	// matches the matrix (depth, channels) pair.
	ErrUnsupportedMatrix = errors.New("convert: unsupported matrix type")

	// ErrAllocation signals that output storage could not be allocated.
	ErrAllocation = errors.New("convert: allocation failed")

	// ErrNotContiguous is returned when PathFast is requested and the matrix offers
	// no contiguous typed view.
	ErrNotContiguous = errors.New("convert: matrix storage is not contiguous")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("convert: nil matrix")

	// ErrBadPath indicates an unknown decode path name.
	ErrBadPath = errors.New("convert: unknown decode path")
)

// Re-exported so callers of this package need a single import for matching.
var (
	// ErrNilBuffer indicates that a nil buffer (or empty DynamicImage) was passed.
	ErrNilBuffer = pixel.ErrNilBuffer

	// ErrUnsupportedColor marks a pixel (kind, element) pair outside the enumeration.
	ErrUnsupportedColor = pixel.ErrUnsupportedColor
)
