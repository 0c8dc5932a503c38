// SPDX-License-Identifier: MIT

//go:build gocv

package gocvmat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"github.com/katalvlaran/pixmat/convert"
	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// ErrNilMat indicates a nil *gocv.Mat.
var ErrNilMat = errors.New("gocvmat: nil Mat")

// Mat borrows a gocv.Mat as a mat.Matrix. It does not own or close the Mat.
type Mat struct {
	m *gocv.Mat
}

var _ mat.Matrix = (*Mat)(nil)

// Wrap borrows m; the caller keeps ownership and must outlive every use of the result.
func Wrap(m *gocv.Mat) (*Mat, error) {
	if m == nil {
		return nil, ErrNilMat
	}

	return &Mat{m: m}, nil
}

// Dims returns the number of OpenCV dimensions.
func (a *Mat) Dims() int { return len(a.m.Size()) }

// Size returns the extent of every dimension.
func (a *Mat) Size() []int { return a.m.Size() }

// Rows returns the row count, -1 for N-D Mats.
func (a *Mat) Rows() int { return a.m.Rows() }

// Cols returns the column count, -1 for N-D Mats.
func (a *Mat) Cols() int { return a.m.Cols() }

// Channels returns the number of interleaved channels.
func (a *Mat) Channels() int { return a.m.Channels() }

// Depth extracts the depth bits of the OpenCV type.
func (a *Mat) Depth() element.Depth {
	d, _ := element.SplitType(int(a.m.Type()))

	return d
}

// Bytes exposes the Mat storage without a copy when OpenCV reports it continuous.
func (a *Mat) Bytes() ([]byte, bool) {
	if !a.m.IsContinuous() {
		return nil, false
	}
	if a.m.Empty() {
		return []byte{}, true
	}
	b, err := a.m.DataPtrUint8()
	if err != nil {
		return nil, false
	}

	return b, true
}

// ElemAt reads the element at (row, col) channel by channel.
// Complexity: O(channels) cgo calls.
func (a *Mat) ElemAt(row, col int) ([]byte, error) {
	rows, cols := a.m.Rows(), a.m.Cols()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("gocvmat.ElemAt(%d,%d): %w", row, col, mat.ErrNotTwoD)
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, fmt.Errorf("gocvmat.ElemAt(%d,%d): %w", row, col, mat.ErrOutOfRange)
	}

	depth, ch := a.Depth(), a.m.Channels()
	size := depth.Size()
	out := make([]byte, ch*size)
	var c, idx int
	for c = 0; c < ch; c++ {
		idx = col*ch + c
		dst := out[c*size : (c+1)*size]
		switch depth {
		case element.U8:
			dst[0] = a.m.GetUCharAt(row, idx)
		case element.S8:
			dst[0] = byte(a.m.GetSCharAt(row, idx))
		case element.U16, element.S16, element.F16:
			binary.NativeEndian.PutUint16(dst, uint16(a.m.GetShortAt(row, idx)))
		case element.S32:
			binary.NativeEndian.PutUint32(dst, uint32(a.m.GetIntAt(row, idx)))
		case element.F32:
			binary.NativeEndian.PutUint32(dst, math.Float32bits(a.m.GetFloatAt(row, idx)))
		case element.F64:
			binary.NativeEndian.PutUint64(dst, math.Float64bits(a.m.GetDoubleAt(row, idx)))
		default:
			return nil, fmt.Errorf("gocvmat.ElemAt(%d,%d): depth %s: %w", row, col, depth, mat.ErrBadDepth)
		}
	}

	return out, nil
}

// ToGocv copies a 2-D matrix into a new gocv.Mat; the caller must Close it.
// MAIN DESCRIPTION:
//   - The result never shares storage with m: gocv.NewMatFromBytes keeps the Go slice
//     it is given, so the bytes are always copied first.
//
// Errors:
//   - mat.ErrNilMatrix, mat.ErrNotTwoD, element read errors, gocv allocation errors.
//
// Notes:
//   - Empty matrices (0 rows or 0 cols) yield an empty Mat of the same type.
func ToGocv(m mat.Matrix) (gocv.Mat, error) {
	if m == nil {
		return gocv.NewMat(), fmt.Errorf("gocvmat.ToGocv: %w", mat.ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return gocv.NewMat(), fmt.Errorf("gocvmat.ToGocv: %d dimensions: %w", m.Dims(), mat.ErrNotTwoD)
	}
	mt := gocv.MatType(element.MakeType(m.Depth(), m.Channels()))
	if rows == 0 || cols == 0 {
		// NewMatFromBytes rejects empty slices.
		return gocv.NewMatWithSize(rows, cols, mt), nil
	}

	data, err := packedCopy(m, rows, cols)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("gocvmat.ToGocv: %w", err)
	}
	out, err := gocv.NewMatFromBytes(rows, cols, mt, data)
	if err != nil {
		return out, fmt.Errorf("gocvmat.ToGocv(%s): %w", mat.TypeName(m), err)
	}

	return out, nil
}

// packedCopy returns a freshly allocated, row-major copy of m's element bytes.
func packedCopy(m mat.Matrix, rows, cols int) ([]byte, error) {
	if b, ok := m.Bytes(); ok {
		return bytes.Clone(b), nil
	}

	es := mat.ElemSize(m)
	data := make([]byte, 0, rows*cols*es)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			e, err := m.ElemAt(i, j)
			if err != nil {
				return nil, err
			}
			if len(e) != es {
				return nil, fmt.Errorf("element (%d,%d): got %d bytes, want %d: %w", i, j, len(e), es, mat.ErrBadLength)
			}
			data = append(data, e...)
		}
	}

	return data, nil
}

// Decode converts an OpenCV matrix into a Buffer[K, T].
func Decode[K pixel.Kind, T element.Element](m *gocv.Mat, opts ...convert.Option) (*pixel.Buffer[K, T], error) {
	a, err := Wrap(m)
	if err != nil {
		return nil, err
	}

	return convert.Decode[K, T](a, opts...)
}

// DecodeDynamic converts an OpenCV matrix into the DynamicImage variant chosen by its type.
func DecodeDynamic(m *gocv.Mat, opts ...convert.Option) (pixel.DynamicImage, error) {
	a, err := Wrap(m)
	if err != nil {
		return pixel.DynamicImage{}, err
	}

	return convert.DecodeDynamic(a, opts...)
}

// Encode converts b into a new OpenCV matrix; the caller must Close it.
func Encode[K pixel.Kind, T element.Element](b *pixel.Buffer[K, T]) (gocv.Mat, error) {
	d, err := convert.Encode(b)
	if err != nil {
		return gocv.NewMat(), err
	}

	return ToGocv(d)
}

// EncodeDynamic converts the active variant of img into a new OpenCV matrix.
func EncodeDynamic(img pixel.DynamicImage) (gocv.Mat, error) {
	d, err := convert.EncodeDynamic(img)
	if err != nil {
		return gocv.NewMat(), err
	}

	return ToGocv(d)
}
