// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Typed access on top of the byte-level Matrix capability, keyed by the element registry.
//   - AsSlice is the capability probe: it either yields a usable typed contiguous view or
//     signals unavailability, it never copies.
//   - At/AtInto are the layout-independent readers used by element-wise fallbacks.
//
// Determinism & Performance:
//   - Byte <-> element reinterpretation uses native byte order on both sides, so a matrix
//     written through Set/AsBytes reads back bit-identically.
//
// AI-Hints:
//   - Prefer AtInto in loops: it writes into caller storage and does not allocate.

package mat

import (
	"bytes"
	"fmt"
	"slices"
	"unsafe"

	"github.com/katalvlaran/pixmat/element"
)

// AsBytes reinterprets a typed slice as its underlying bytes (no copy).
// The result aliases s and has length len(s)*element.SizeOf[T]().
func AsBytes[T element.Element](s []T) []byte {
	if len(s) == 0 {
		return []byte{}
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*element.SizeOf[T]())
}

// asElems reinterprets b as []T. Callers guarantee len(b)%size == 0 and alignment.
func asElems[T element.Element](b []byte) []T {
	if len(b) == 0 {
		return []T{}
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/element.SizeOf[T]())
}

// aligned reports whether b may be viewed as []T without misaligned loads.
func aligned[T element.Element](b []byte) bool {
	if len(b) == 0 {
		return true
	}
	var zero T

	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(zero) == 0
}

// checkDepth verifies that T is the element type of m.
func checkDepth[T element.Element](op string, m Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if want := element.DepthOf[T](); m.Depth() != want {
		return fmt.Errorf("%s[%s]: matrix depth %s: %w", op, want, m.Depth(), ErrDepthMismatch)
	}

	return nil
}

// AsSlice returns a typed, contiguous, row-major view of m's elements (no copy).
// MAIN DESCRIPTION:
//   - Capability probe for the zero-copy-eligible fast path.
//
// Implementation:
//   - Stage 1: verify depth tag against T.
//   - Stage 2: ask m for contiguous bytes; reject strided storage.
//   - Stage 3: reject storage that is misaligned for T; reinterpret otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDepthMismatch, ErrNotContiguous.
//
// Notes:
//   - The view aliases m; callers that need an owned copy must copy it.
func AsSlice[T element.Element](m Matrix) ([]T, error) {
	if err := checkDepth[T]("AsSlice", m); err != nil {
		return nil, err
	}
	b, ok := m.Bytes()
	if !ok {
		return nil, fmt.Errorf("AsSlice: %s: %w", TypeName(m), ErrNotContiguous)
	}
	if !aligned[T](b) || len(b)%element.SizeOf[T]() != 0 {
		return nil, fmt.Errorf("AsSlice: %s: misaligned storage: %w", TypeName(m), ErrNotContiguous)
	}

	return asElems[T](b), nil
}

// AtInto copies the element at (row, col) into dst, which must hold Channels() values.
// Complexity: O(channels); no allocation.
func AtInto[T element.Element](m Matrix, row, col int, dst []T) error {
	if err := checkDepth[T]("AtInto", m); err != nil {
		return err
	}
	if len(dst) != m.Channels() {
		return fmt.Errorf("AtInto: dst holds %d values, matrix has %d channels: %w", len(dst), m.Channels(), ErrBadLength)
	}
	b, err := m.ElemAt(row, col)
	if err != nil {
		return err
	}
	out := AsBytes(dst)
	if len(b) != len(out) {
		return fmt.Errorf("AtInto(%d,%d): got %d bytes, want %d: %w", row, col, len(b), len(out), ErrBadLength)
	}
	// Byte copy into typed storage: alignment of b is irrelevant here.
	copy(out, b)

	return nil
}

// At returns the Channels() values of the element at (row, col).
func At[T element.Element](m Matrix, row, col int) ([]T, error) {
	if m == nil {
		return nil, fmt.Errorf("At: %w", ErrNilMatrix)
	}
	out := make([]T, m.Channels())
	if err := AtInto(m, row, col, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ElemSetter is implemented by writable matrices (*Dense, *View).
type ElemSetter interface {
	Matrix
	SetElem(row, col int, v []byte) error
}

// Set writes one element given as Channels() typed values.
func Set[T element.Element](m ElemSetter, row, col int, px ...T) error {
	if err := checkDepth[T]("Set", m); err != nil {
		return err
	}
	if len(px) != m.Channels() {
		return fmt.Errorf("Set: got %d values, matrix has %d channels: %w", len(px), m.Channels(), ErrBadLength)
	}

	return m.SetElem(row, col, AsBytes(px))
}

// Equal reports whether a and b have the same shape, tags and element bytes.
// MAIN DESCRIPTION:
//   - Layout-independent comparison: strided and contiguous matrices with the same
//     logical content are equal.
//
// Complexity:
//   - Time O(n) over elements, Space O(1).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Depth() != b.Depth() || a.Channels() != b.Channels() || !slices.Equal(a.Size(), b.Size()) {
		return false
	}
	if ab, ok := a.Bytes(); ok {
		if bb, ok := b.Bytes(); ok {
			return bytes.Equal(ab, bb)
		}
	}
	if a.Dims() != 2 {
		// N-D matrices without a contiguous view have no element reader here.
		return false
	}

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			ea, err := a.ElemAt(i, j)
			if err != nil {
				return false
			}
			eb, err := b.ElemAt(i, j)
			if err != nil {
				return false
			}
			if !bytes.Equal(ea, eb) {
				return false
			}
		}
	}

	return true
}
