// SPDX-License-Identifier: MIT

// Package element - scalar element registry shared by matrices and pixel buffers.
//
// Purpose:
//   - Map every supported Go scalar type to its runtime depth tag and byte width.
//   - Name every depth tag a foreign matrix may report, so unsupported ones can be
//     described precisely in diagnostics instead of being reported as "unknown".
//
// Determinism & Performance:
//   - All lookups are static; no state, no allocations, no failure modes.
//
// AI-Hints:
//   - Use Matches[T](m.Depth()) to check "is this matrix made of T?" before reading.
//   - Depth numbering follows the OpenCV CV_8U..CV_16F tags so adapters need no table.
package element

import (
	"errors"
	"fmt"
	"strings"
)

// Depth is a runtime tag for a scalar element's numeric type and width.
type Depth int

// Depth tags, numbered as OpenCV numbers them.
const (
	U8  Depth = iota // 8-bit unsigned
	S8               // 8-bit signed
	U16              // 16-bit unsigned
	S16              // 16-bit signed
	S32              // 32-bit signed
	F32              // 32-bit float
	F64              // 64-bit float
	F16              // 16-bit float
)

// MaxChannels is the largest channel count a matrix type tag can carry.
const MaxChannels = 512

// depthShift is the bit width of the depth part inside a packed type tag.
const depthShift = 3

// depthNames and depthSizes are indexed by Depth.
var (
	depthNames = [...]string{"8U", "8S", "16U", "16S", "32S", "32F", "64F", "16F"}
	depthSizes = [...]int{1, 1, 2, 2, 4, 4, 8, 2}
)

// Valid reports whether d is one of the known depth tags.
func (d Depth) Valid() bool { return d >= U8 && d <= F16 }

// Size returns the byte width of one element of depth d, or 0 for unknown tags.
func (d Depth) Size() int {
	if !d.Valid() {
		return 0
	}

	return depthSizes[d]
}

// String renders the OpenCV short name ("8U", "32F"), or "Depth(n)" for unknown tags.
func (d Depth) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Depth(%d)", int(d))
	}

	return depthNames[d]
}

// ErrUnknownDepth is returned by ParseDepth for names outside the tag set.
var ErrUnknownDepth = errors.New("element: unknown depth name")

// ParseDepth accepts "8U", "cv_8u", "32f" and similar spellings of a depth tag.
func ParseDepth(s string) (Depth, error) {
	name := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "CV_")
	for d, n := range depthNames {
		if n == name {
			return Depth(d), nil
		}
	}

	return 0, fmt.Errorf("ParseDepth(%q): %w", s, ErrUnknownDepth)
}

// MarshalText renders d by name, so encoders (YAML, JSON keys) print "16U" not 2.
func (d Depth) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText is the inverse of MarshalText.
func (d *Depth) UnmarshalText(b []byte) error {
	v, err := ParseDepth(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Element is the set of scalar types a pixel buffer may be made of.
type Element interface {
	uint8 | uint16 | float32
}

// DepthOf returns the depth tag of T.
// Complexity: O(1).
func DepthOf[T Element]() Depth {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return U8
	case uint16:
		return U16
	default: // float32, the only remaining member of Element
		return F32
	}
}

// SizeOf returns the byte width of T.
// Complexity: O(1).
func SizeOf[T Element]() int { return DepthOf[T]().Size() }

// Matches reports whether a matrix reporting depth d is made of T elements.
// Equality is on the tag only; there is no ordering between depths.
func Matches[T Element](d Depth) bool { return DepthOf[T]() == d }

// MakeType packs a depth and channel count into one OpenCV-style type tag.
// MAIN DESCRIPTION:
//   - Mirrors CV_MAKETYPE: (channels-1)<<3 | depth.
//
// Notes:
//   - Callers must pass 1 <= channels <= MaxChannels; other values are not validated
//     and will not round-trip through SplitType.
func MakeType(d Depth, channels int) int {
	return int(d)&(1<<depthShift-1) | (channels-1)<<depthShift
}

// SplitType is the inverse of MakeType.
func SplitType(t int) (Depth, int) {
	return Depth(t & (1<<depthShift - 1)), t>>depthShift + 1
}

// TypeName renders a depth/channel pair the way OpenCV does, e.g. "CV_8UC3".
func TypeName(d Depth, channels int) string {
	return fmt.Sprintf("CV_%sC%d", d, channels)
}
