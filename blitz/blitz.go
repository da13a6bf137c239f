/*
 * blitz.go, part of goqed.
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
	"strconv"
	"strings"
)

// Dim is the range of one array axis, as declared in a Blitz dimension
// header. The extent of the axis is Hi-Lo+1.
type Dim struct {
	Lo int
	Hi int
}

// Dims is the ordered dimension specification of an array, one Dim per axis.
type Dims []Dim

// ParseDims parses a dimension string of the form "(lo,hi) x (lo,hi) x ...".
// Each segment must contain exactly two comma-separated integers with
// hi >= lo.
func ParseDims(dimstr string) (Dims, error) {
	s := strings.TrimSpace(dimstr)
	if s == "" {
		return nil, &FormatError{message: "empty dimension string"}
	}
	segs := strings.Split(s, " x ")
	dims := make(Dims, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if len(seg) < 2 || seg[0] != '(' || seg[len(seg)-1] != ')' {
			return nil, &FormatError{message: fmt.Sprintf("malformed dimension segment '%s' in '%s'", seg, dimstr)}
		}
		parts := strings.Split(seg[1:len(seg)-1], ",")
		if len(parts) != 2 {
			return nil, &FormatError{message: fmt.Sprintf("dimension segment '%s' does not contain exactly two comma-separated integers", seg)}
		}
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, &FormatError{message: fmt.Sprintf("non-integer bound in dimension segment '%s'", seg)}
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, &FormatError{message: fmt.Sprintf("non-integer bound in dimension segment '%s'", seg)}
		}
		if hi < lo {
			return nil, &FormatError{message: fmt.Sprintf("dimension segment '%s' has hi < lo", seg)}
		}
		dims = append(dims, Dim{lo, hi})
	}
	return dims, nil
}

// String renders the canonical dimension string, the byte-for-byte inverse
// of ParseDims.
func (D Dims) String() string {
	segs := make([]string, len(D))
	for i, d := range D {
		segs[i] = fmt.Sprintf("(%d,%d)", d.Lo, d.Hi)
	}
	return strings.Join(segs, " x ")
}

// Extents returns the per-axis extents.
func (D Dims) Extents() []int {
	ext := make([]int, len(D))
	for i, d := range D {
		ext[i] = d.Hi - d.Lo + 1
	}
	return ext
}

// Size returns the total element count, i.e. the product of the extents.
func (D Dims) Size() int {
	n := 1
	for _, d := range D {
		n *= d.Hi - d.Lo + 1
	}
	return n
}

// Equal reports whether both specifications have the same axes with the
// same bounds.
func (D Dims) Equal(E Dims) bool {
	if len(D) != len(E) {
		return false
	}
	for i, d := range D {
		if d != E[i] {
			return false
		}
	}
	return true
}

// Decode parses a Blitz literal given as a dimension string and a bracketed
// data string into a dense complex array. The data string must contain
// exactly as many (re,im) tokens as the product of the extents declared in
// the dimension string; the tokens fill the array in row-major order
// (first axis slowest), matching the textual nesting.
func Decode(dimstr, datastr string) (*Array, error) {
	dims, err := ParseDims(dimstr)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	n := dims.Size()
	toks, err := tokenize(datastr)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	if len(toks) != n {
		return nil, &FormatError{message: fmt.Sprintf("dimensions %s require %d elements but the data contains %d", dims, n, len(toks))}
	}
	data := make([]complex128, n)
	for i, tok := range toks {
		data[i], err = parseComplex(tok)
		if err != nil {
			return nil, errDecorate(err, "Decode")
		}
	}
	return &Array{data: data, dims: dims}, nil
}

// DecodeBlock parses a whole Blitz literal, i.e. the dimension header line
// followed by the bracketed body.
func DecodeBlock(blitzstr string) (*Array, error) {
	nl := strings.IndexByte(blitzstr, '\n')
	if nl < 0 {
		return nil, &FormatError{message: "Blitz literal has no newline after the dimension header"}
	}
	A, err := Decode(blitzstr[:nl], blitzstr[nl+1:])
	if err != nil {
		return nil, errDecorate(err, "DecodeBlock")
	}
	return A, nil
}

// tokenize strips the bracket delimiters and the structural whitespace used
// as nested-dimension separators, then splits the payload on the fixed
// ") (" boundary. The returned tokens are bare "re,im" pairs.
func tokenize(datastr string) ([]string, error) {
	body := strings.TrimSpace(datastr)
	if len(body) == 0 || body[0] != '[' {
		return nil, &FormatError{message: fmt.Sprintf("array body does not start with '[': '%s'", clip(body))}
	}
	if body[len(body)-1] != ']' {
		return nil, &FormatError{message: "array body has no ']' terminator"}
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	//Newline separators (with or without the indent) become plain spaces,
	//so a single split boundary remains between any two tokens.
	body = strings.Join(strings.Fields(body), " ")
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return nil, &FormatError{message: fmt.Sprintf("array payload is not a sequence of (re,im) tokens: '%s'", clip(body))}
	}
	return strings.Split(body[1:len(body)-1], ") ("), nil
}

func parseComplex(tok string) (complex128, error) {
	parts := strings.Split(tok, ",")
	if len(parts) != 2 {
		return 0, &FormatError{message: fmt.Sprintf("element '(%s)' is not a (re,im) pair", tok)}
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, &FormatError{message: fmt.Sprintf("non-numeric real part in element '(%s)'", tok)}
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, &FormatError{message: fmt.Sprintf("non-numeric imaginary part in element '(%s)'", tok)}
	}
	return complex(re, im), nil
}

// Encode renders the array as a Blitz literal, returning the dimension
// string and the bracketed data string. It is the exact inverse of Decode:
// the same token format, separators and nesting, with the real and
// imaginary parts in Go's shortest float representation. Encoding a nil or
// empty array fails with a ShapeError.
func Encode(A *Array) (string, string, error) {
	if A == nil || A.Rank() == 0 || len(A.data) == 0 {
		return "", "", &ShapeError{message: "can not encode a degenerate (nil or rank-0) array"}
	}
	ext := A.dims.Extents()
	var body string
	switch len(ext) {
	case 1:
		body = encode1D(A.data)
	case 2:
		body = encode2D(A.data, ext[0], ext[1])
	default:
		body = encodeND(A.data, ext)
	}
	return A.dims.String(), "[ " + body + " ]", nil
}

func encode1D(data []complex128) string {
	toks := make([]string, len(data))
	for i, z := range data {
		toks[i] = "(" + formatFloat(real(z)) + "," + formatFloat(imag(z)) + ")"
	}
	return strings.Join(toks, " ")
}

func encode2D(data []complex128, rows, cols int) string {
	rstrs := make([]string, rows)
	for i := 0; i < rows; i++ {
		rstrs[i] = encode1D(data[i*cols : (i+1)*cols])
	}
	return strings.Join(rstrs, " \n  ")
}

// encodeND handles rank > 2. Blocks of the two trailing axes repeat for
// each index of the axis above them, joined by " \n  "; any axes above
// that are joined by a bare "\n". This asymmetry is a quirk of the
// simulator's writer and is required for byte-identical round trips.
func encodeND(data []complex128, ext []int) string {
	if len(ext) == 2 {
		return encode2D(data, ext[0], ext[1])
	}
	stride := len(data) / ext[0]
	blocks := make([]string, ext[0])
	for i := range blocks {
		blocks[i] = encodeND(data[i*stride:(i+1)*stride], ext[1:])
	}
	sep := "\n"
	if len(ext) == 3 {
		sep = " \n  "
	}
	return strings.Join(blocks, sep)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func clip(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

//Errors

//errDecorate asserts that the error implements the Decorate method used
//across the library and adds the caller's name to it before returning it.
func errDecorate(err error, caller string) error {
	d, ok := err.(interface{ Decorate(string) []string })
	if !ok {
		return err
	}
	d.Decorate(caller)
	return err
}

// FormatError reports malformed Blitz text: a bad dimension string, an
// element count that does not match the declared extents, or a token that
// is not a (re,im) pair. No partial array is ever returned alongside it.
type FormatError struct {
	message string
	deco    []string
}

func (err *FormatError) Error() string {
	return "blitz format error: " + err.message
}

// Decorate adds new information to the error.
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ShapeError reports an operation requested on an array whose shape can not
// support it, such as encoding a rank-0 array or bridging a non-matrix to
// a Dense matrix.
type ShapeError struct {
	message string
	deco    []string
}

func (err *ShapeError) Error() string {
	return "blitz shape error: " + err.message
}

// Decorate adds new information to the error.
func (err *ShapeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
