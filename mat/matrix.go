// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/pixmat/element"

// Matrix is the capability set of a runtime-tagged numeric matrix.
//
// Implementations: *Dense (owning), *View (strided window), and adapters over foreign
// matrix types (see gocvmat). All methods are expected O(1) except Bytes on adapters
// that have to materialise a view.
type Matrix interface {
	// Dims returns the number of index dimensions (2 for ordinary images).
	Dims() int

	// Size returns the extent of every dimension; len(Size()) == Dims().
	Size() []int

	// Rows returns the row count, or -1 when Dims() != 2.
	Rows() int

	// Cols returns the column count, or -1 when Dims() != 2.
	Cols() int

	// Depth returns the runtime element tag.
	Depth() element.Depth

	// Channels returns the number of interleaved channels per element.
	Channels() int

	// Bytes returns the densely packed, row-major element bytes when the storage is
	// contiguous. ok is false for strided storage; callers must then use ElemAt.
	// The returned slice aliases the matrix and must not be modified by readers.
	Bytes() (b []byte, ok bool)

	// ElemAt returns the Channels()*Depth().Size() bytes of the element at (row, col).
	// It always succeeds for in-range indices of a 2-D matrix, whatever the layout.
	// The returned slice may alias the matrix and must not be modified by readers.
	ElemAt(row, col int) ([]byte, error)
}

// ElemSize returns the byte size of one (multi-channel) element of m.
// Complexity: O(1).
func ElemSize(m Matrix) int { return m.Channels() * m.Depth().Size() }

// TypeName renders the OpenCV-style type of m, e.g. "CV_8UC3".
func TypeName(m Matrix) string { return element.TypeName(m.Depth(), m.Channels()) }
