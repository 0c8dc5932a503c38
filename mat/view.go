// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"github.com/katalvlaran/pixmat/element"
)

// View is a non-owning window into a Dense (shared storage, parent row step).
// It is the strided, sub-view case of the Matrix capability: unless it spans
// full parent rows (or a single row) it has no contiguous byte view.
type View struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

var _ Matrix = (*View)(nil)

// Dims is always 2; views are only created over 2-D matrices.
func (v *View) Dims() int { return 2 }

// Size returns {rows, cols}.
func (v *View) Size() []int { return []int{v.r, v.c} }

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View) Cols() int { return v.c }

// Depth returns the parent's element tag.
func (v *View) Depth() element.Depth { return v.base.depth }

// Channels returns the parent's channel count.
func (v *View) Channels() int { return v.base.ch }

// IsContinuous reports whether the view's elements are densely packed in the parent:
// true for empty views, single-row views, and views spanning the full parent width.
func (v *View) IsContinuous() bool {
	return v.r <= 1 || v.c == 0 || v.c == v.base.sizes[1]
}

// Bytes returns the packed bytes when IsContinuous, else ok=false.
// Complexity: O(1), no copy.
func (v *View) Bytes() ([]byte, bool) {
	if !v.IsContinuous() {
		return nil, false
	}
	if v.r == 0 || v.c == 0 {
		return []byte{}, true
	}
	es := v.base.ch * v.base.depth.Size()
	start := v.r0*v.base.step + v.c0*es
	end := start + (v.r-1)*v.base.step + v.c*es

	return v.base.data[start:end:end], true
}

// ElemAt reads element (i,j) in the view, translating to parent coordinates.
// MAIN DESCRIPTION:
//   - Safe read within the view bounds; never panics.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View) ElemAt(i, j int) ([]byte, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return nil, fmt.Errorf("View.ElemAt(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.ElemAt(v.r0+i, v.c0+j)
}

// SetElem writes element (i,j) through to the parent buffer.
func (v *View) SetElem(i, j int, val []byte) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.SetElem(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.SetElem(v.r0+i, v.c0+j, val)
}

// Clone materialises the window into an independent, contiguous Dense.
// Complexity: Time O(r*c), Space O(r*c).
func (v *View) Clone() *Dense {
	es := v.base.ch * v.base.depth.Size()
	out := &Dense{
		sizes: []int{v.r, v.c},
		depth: v.base.depth,
		ch:    v.base.ch,
		step:  v.c * es,
		data:  make([]byte, v.r*v.c*es),
	}
	var i, src int
	for i = 0; i < v.r; i++ {
		src = (v.r0+i)*v.base.step + v.c0*es
		copy(out.data[i*out.step:(i+1)*out.step], v.base.data[src:src+out.step])
	}

	return out
}
