// SPDX-License-Identifier: MIT

// Package mat - Dense storage (row-major, byte-backed) & safe accessors.
//
// Purpose:
//   - Provide an owning buffer with the explicit offset formula row*step + col*elemSize.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Support no-copy windows (View) for strided access and Clone for independent copies.
//
// AI-Hints:
//   - Bytes() is the fast path; ElemAt() is the layout-independent ground truth.
//   - N-D matrices (NewDenseND) exist so callers can be handed shapes they must reject.
//
// Complexity quicksheet:
//   - NewDense: O(r*c*es) zero-init; ElemAt/SetElem: O(1); Clone: O(r*c*es); View: O(1).

package mat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixmat/element"
)

// MaxBytes caps a single matrix allocation (1 TiB).
const MaxBytes int64 = 1 << 40

// ---------- error context tags ----------

const (
	ctxNew     = "NewDense"
	ctxNewND   = "NewDenseND"
	ctxFrom    = "FromBytes"
	ctxElemAt  = "ElemAt"
	ctxSetElem = "SetElem"
	ctxRow     = "Row"
	ctxView    = "View"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, owning, row-major matrix.
//   - sizes holds the extent of every dimension (len >= 2).
//   - data is a flat, contiguous buffer of len == prod(sizes)*elemSize.
//   - step is the byte distance between consecutive rows (2-D only; == cols*elemSize).
type Dense struct {
	sizes []int         // per-dimension extents
	depth element.Depth // element tag
	ch    int           // interleaved channels per element
	step  int           // bytes per row for 2-D, 0 for N-D
	data  []byte        // contiguous storage
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero-initialised rows×cols matrix of the given depth and channels.
// MAIN DESCRIPTION:
//   - Public 2-D constructor with strict tag validation and an allocation guard.
//
// Implementation:
//   - Stage 1: validate depth, channels and rows,cols >= 0.
//   - Stage 2: compute the byte size with overflow checks.
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrBadDepth, ErrBadChannels, ErrBadShape, ErrTooLarge.
//
// Notes:
//   - Zero rows or columns are legal and produce an empty, contiguous matrix.
func NewDense(rows, cols int, depth element.Depth, channels int) (*Dense, error) {
	m, err := newDense([]int{rows, cols}, depth, channels)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d,%s): %w", ctxNew, rows, cols, element.TypeName(depth, channels), err)
	}

	return m, nil
}

// NewDenseND creates a zero-initialised matrix with len(sizes) >= 2 dimensions.
// For anything but two dimensions Rows and Cols report -1.
func NewDenseND(sizes []int, depth element.Depth, channels int) (*Dense, error) {
	m, err := newDense(append([]int(nil), sizes...), depth, channels)
	if err != nil {
		return nil, fmt.Errorf("%s(%v,%s): %w", ctxNewND, sizes, element.TypeName(depth, channels), err)
	}

	return m, nil
}

// FromBytes creates a rows×cols matrix holding a copy of data.
// len(data) must equal rows*cols*channels*depth.Size().
func FromBytes(rows, cols int, depth element.Depth, channels int, data []byte) (*Dense, error) {
	m, err := newDense([]int{rows, cols}, depth, channels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("%s: got %d bytes, want %d: %w", ctxFrom, len(data), len(m.data), ErrBadLength)
	}
	copy(m.data, data)

	return m, nil
}

// newDense validates tags and shape, then allocates.
func newDense(sizes []int, depth element.Depth, channels int) (*Dense, error) {
	if !depth.Valid() {
		return nil, ErrBadDepth
	}
	if channels < 1 || channels > element.MaxChannels {
		return nil, ErrBadChannels
	}
	if len(sizes) < 2 {
		return nil, ErrBadShape
	}
	n, err := byteSize(sizes, channels*depth.Size())
	if err != nil {
		return nil, err
	}

	m := &Dense{
		sizes: sizes,
		depth: depth,
		ch:    channels,
		data:  make([]byte, n), // make() zero-fills deterministically
	}
	if len(sizes) == 2 {
		m.step = sizes[1] * channels * depth.Size()
	}

	return m, nil
}

// byteSize multiplies all extents by elemSize, rejecting negatives and overflow.
func byteSize(sizes []int, elemSize int) (int, error) {
	total := elemSize
	for _, s := range sizes {
		if s < 0 {
			return 0, ErrBadShape
		}
		if s != 0 && total > math.MaxInt/s {
			return 0, ErrTooLarge
		}
		total *= s
	}
	if int64(total) > MaxBytes {
		return 0, ErrTooLarge
	}

	return total, nil
}

// Dims returns the number of dimensions. Complexity: O(1).
func (m *Dense) Dims() int { return len(m.sizes) }

// Size returns a copy of the per-dimension extents.
func (m *Dense) Size() []int { return append([]int(nil), m.sizes...) }

// Rows returns the row count, or -1 for N-D matrices. Complexity: O(1).
func (m *Dense) Rows() int {
	if len(m.sizes) != 2 {
		return -1
	}

	return m.sizes[0]
}

// Cols returns the column count, or -1 for N-D matrices. Complexity: O(1).
func (m *Dense) Cols() int {
	if len(m.sizes) != 2 {
		return -1
	}

	return m.sizes[1]
}

// Depth returns the element tag.
func (m *Dense) Depth() element.Depth { return m.depth }

// Channels returns the channel count.
func (m *Dense) Channels() int { return m.ch }

// Type returns the packed OpenCV-style type tag.
func (m *Dense) Type() int { return element.MakeType(m.depth, m.ch) }

// TypeName renders the type tag, e.g. "CV_16UC1".
func (m *Dense) TypeName() string { return element.TypeName(m.depth, m.ch) }

// Step returns the byte distance between rows (0 for N-D matrices).
func (m *Dense) Step() int { return m.step }

// Bytes returns the whole contiguous buffer. A Dense is always contiguous.
func (m *Dense) Bytes() ([]byte, bool) { return m.data, true }

// elemOffset bounds-checks (row, col) and returns the byte offset of the element.
func (m *Dense) elemOffset(row, col int) (int, error) {
	if len(m.sizes) != 2 {
		return 0, ErrNotTwoD
	}
	if row < 0 || row >= m.sizes[0] || col < 0 || col >= m.sizes[1] {
		return 0, ErrOutOfRange
	}

	return row*m.step + col*m.ch*m.depth.Size(), nil
}

// ElemAt returns the bytes of the element at (row, col), aliasing storage.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; never panics on out-of-range.
//
// Errors:
//   - ErrOutOfRange for bad indices, ErrNotTwoD for N-D matrices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) ElemAt(row, col int) ([]byte, error) {
	off, err := m.elemOffset(row, col)
	if err != nil {
		return nil, denseErrorf(ctxElemAt, row, col, err)
	}
	es := m.ch * m.depth.Size()

	return m.data[off : off+es : off+es], nil
}

// SetElem overwrites the element at (row, col) with v.
// len(v) must equal one element's byte size.
func (m *Dense) SetElem(row, col int, v []byte) error {
	off, err := m.elemOffset(row, col)
	if err != nil {
		return denseErrorf(ctxSetElem, row, col, err)
	}
	es := m.ch * m.depth.Size()
	if len(v) != es {
		return denseErrorf(ctxSetElem, row, col, ErrBadLength)
	}
	copy(m.data[off:off+es], v)

	return nil
}

// Row returns the bytes of row i, aliasing storage.
func (m *Dense) Row(i int) ([]byte, error) {
	if len(m.sizes) != 2 {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrNotTwoD)
	}
	if i < 0 || i >= m.sizes[0] {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.data[i*m.step : (i+1)*m.step], nil
}

// Clone returns a deep copy with the same shape and tags.
// Complexity: Time O(n), Space O(n).
func (m *Dense) Clone() *Dense {
	cp := make([]byte, len(m.data))
	copy(cp, m.data)

	return &Dense{
		sizes: append([]int(nil), m.sizes...),
		depth: m.depth,
		ch:    m.ch,
		step:  m.step,
		data:  cp,
	}
}

// String renders shape and type for diagnostics, e.g. "Dense(100x250 CV_8UC3)".
func (m *Dense) String() string {
	dims := make([]string, len(m.sizes))
	for i, s := range m.sizes {
		dims[i] = strconv.Itoa(s)
	}

	return fmt.Sprintf("Dense(%s %s)", strings.Join(dims, "x"), m.TypeName())
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer with the base row step.
//
// Behavior highlights:
//   - Windows narrower than the parent (and taller than one row) are strided, so
//     Bytes() reports ok=false and readers must go through ElemAt.
//
// Errors:
//   - ErrNotTwoD for N-D bases; ErrBadShape when the window is outside the parent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*View, error) {
	if len(m.sizes) != 2 {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrNotTwoD)
	}
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.sizes[0] || c0+cols > m.sizes[1] {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &View{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}
