// SPDX-License-Identifier: MIT
// Package pixel: sentinel error set.
// Every message is prefixed with "pixel: ..."; wrap with fmt.Errorf("ctx: %w", ErrX)
// and match with errors.Is.

package pixel

import "errors"

var (
	// ErrBadDimensions indicates negative width or height.
	ErrBadDimensions = errors.New("pixel: dimensions must be >= 0")

	// ErrTooLarge signals a width*height*channels product that overflows int.
	ErrTooLarge = errors.New("pixel: buffer too large")

	// ErrBadLength indicates a backing slice whose length is not width*height*channels.
	ErrBadLength = errors.New("pixel: data length does not match dimensions")

	// ErrOutOfRange indicates pixel coordinates outside the buffer.
	ErrOutOfRange = errors.New("pixel: coordinates out of range")

	// ErrUnsupportedColor marks a (kind, element) pair outside the ColorType enumeration.
	ErrUnsupportedColor = errors.New("pixel: unsupported color type")

	// ErrNilBuffer indicates that a nil buffer was passed.
	ErrNilBuffer = errors.New("pixel: nil buffer")
)
