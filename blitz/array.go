/*
 * array.go, part of goqed.
 *
 * Copyright 2024 The goqed developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package blitz

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

/*Some methods here panic instead of returning errors. Those are "fundamental"
 * accessors; if something goes wrong in them the caller is way-most likely
 * wrong (nil array, out-of-range index) and should crash.*/

// Array is a dense array of complex numbers with the shape given by its
// dimension specification, stored in row-major order (first axis slowest),
// matching the nested order of the Blitz text representation.
type Array struct {
	data []complex128
	dims Dims
}

// NewArray wraps the given row-major data in an Array with the given
// dimensions. The data length must equal the product of the extents.
func NewArray(data []complex128, dims Dims) (*Array, error) {
	for _, d := range dims {
		if d.Hi < d.Lo {
			return nil, &ShapeError{message: fmt.Sprintf("axis (%d,%d) has hi < lo", d.Lo, d.Hi)}
		}
	}
	if len(data) != dims.Size() {
		return nil, &ShapeError{message: fmt.Sprintf("%d elements given, but dimensions %s require %d", len(data), dims, dims.Size())}
	}
	d := make(Dims, len(dims))
	copy(d, dims)
	return &Array{data: data, dims: d}, nil
}

// FromSlice wraps the given row-major data in an Array, inferring a
// zero-based dimension specification from the given extents.
func FromSlice(data []complex128, extents ...int) (*Array, error) {
	dims := make(Dims, len(extents))
	for i, e := range extents {
		if e < 1 {
			return nil, &ShapeError{message: fmt.Sprintf("non-positive extent %d for axis %d", e, i)}
		}
		dims[i] = Dim{0, e - 1}
	}
	A, err := NewArray(data, dims)
	if err != nil {
		return nil, errDecorate(err, "FromSlice")
	}
	return A, nil
}

// Rank returns the number of axes.
func (A *Array) Rank() int {
	return len(A.dims)
}

// Len returns the total number of elements.
func (A *Array) Len() int {
	return len(A.data)
}

// Dims returns a copy of the dimension specification.
func (A *Array) Dims() Dims {
	d := make(Dims, len(A.dims))
	copy(d, A.dims)
	return d
}

// Data returns the row-major backing slice, not a copy. The array is meant
// to be immutable once parsed; callers that modify the slice are on their
// own.
func (A *Array) Data() []complex128 {
	return A.data
}

// At returns the element at the given zero-based indices, one per axis.
// It panics if the number of indices differs from the rank or an index is
// out of range.
func (A *Array) At(idx ...int) complex128 {
	if len(idx) != len(A.dims) {
		panic(fmt.Sprintf("blitz: %d indices given for a rank-%d array", len(idx), len(A.dims)))
	}
	pos := 0
	for i, d := range A.dims {
		ext := d.Hi - d.Lo + 1
		if idx[i] < 0 || idx[i] >= ext {
			panic(fmt.Sprintf("blitz: index %d out of range for axis %d with extent %d", idx[i], i, ext))
		}
		pos = pos*ext + idx[i]
	}
	return A.data[pos]
}

// Equal reports whether both arrays have equal dimension specifications and
// elementwise equal data.
func (A *Array) Equal(B *Array) bool {
	if A == nil || B == nil {
		return A == B
	}
	return A.dims.Equal(B.dims) && cmplxs.Equal(A.data, B.data)
}

// Norm returns the Euclidean norm of the array taken as a flat vector.
func (A *Array) Norm() float64 {
	n := 0.0
	for _, z := range A.data {
		n += real(z)*real(z) + imag(z)*imag(z)
	}
	return math.Sqrt(n)
}

// Normalize scales the array in place so its norm becomes 1. Normalizing a
// zero array is a no-op.
func (A *Array) Normalize() {
	n := A.Norm()
	if n == 0 {
		return
	}
	cmplxs.Scale(complex(1/n, 0), A.data)
}

// Outer returns the outer (tensor) product of both arrays. The result has
// the axes of a followed by the axes of b.
func Outer(a, b *Array) *Array {
	dims := make(Dims, 0, len(a.dims)+len(b.dims))
	dims = append(dims, a.dims...)
	dims = append(dims, b.dims...)
	data := make([]complex128, len(a.data)*len(b.data))
	for i, x := range a.data {
		off := i * len(b.data)
		for j, y := range b.data {
			data[off+j] = x * y
		}
	}
	return &Array{data: data, dims: dims}
}

// CDense returns a rank-2 array as a gonum complex Dense matrix, copying
// the data. It fails with a ShapeError for any other rank.
func (A *Array) CDense() (*mat.CDense, error) {
	if len(A.dims) != 2 {
		return nil, &ShapeError{message: fmt.Sprintf("rank-%d array can not be viewed as a matrix", len(A.dims))}
	}
	ext := A.dims.Extents()
	data := make([]complex128, len(A.data))
	copy(data, A.data)
	return mat.NewCDense(ext[0], ext[1], data), nil
}

// FromCDense wraps the contents of a gonum complex Dense matrix in a
// zero-based rank-2 Array, copying the data.
func FromCDense(m *mat.CDense) *Array {
	r, c := m.Dims()
	data := make([]complex128, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	return &Array{data: data, dims: Dims{{0, r - 1}, {0, c - 1}}}
}

// Ascii returns the full Blitz literal for the array, with the trailing
// blank line the simulator's writer emits.
func (A *Array) Ascii() (string, error) {
	dimstr, datastr, err := Encode(A)
	if err != nil {
		return "", errDecorate(err, "Ascii")
	}
	return dimstr + " \n" + datastr + "\n\n", nil
}

// Abs2 returns the elementwise squared modulus of the array as a flat
// float64 slice, in row-major order.
func (A *Array) Abs2() []float64 {
	out := make([]float64, len(A.data))
	for i, z := range A.data {
		a := cmplx.Abs(z)
		out[i] = a * a
	}
	return out
}
