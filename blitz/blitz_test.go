/*
 * blitz_test.go, part of goqed.
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
	"testing"
)

//TestDims tests parsing and canonical rendering of dimension strings.
func TestDims(Te *testing.T) {
	d, err := ParseDims("(0,1) x (0,31)")
	if err != nil {
		Te.Error(err)
	}
	if len(d) != 2 || d[0] != (Dim{0, 1}) || d[1] != (Dim{0, 31}) {
		Te.Errorf("wrong dims parsed: %v", d)
	}
	if d.Size() != 64 {
		Te.Errorf("wrong size: %d", d.Size())
	}
	if d.String() != "(0,1) x (0,31)" {
		Te.Errorf("dimension string did not round-trip: '%s'", d.String())
	}
	//a spec built by hand must also round-trip through its rendering
	d2 := Dims{{-2, 2}, {1, 3}, {0, 0}}
	rd, err := ParseDims(d2.String())
	if err != nil {
		Te.Error(err)
	}
	if !rd.Equal(d2) {
		Te.Errorf("hand-built dims did not round-trip: %v vs %v", d2, rd)
	}
	for _, bad := range []string{"", "(0,1) x (1,0)", "(0,1) x (a,2)", "0,1", "(0,1,2)"} {
		if _, err := ParseDims(bad); err == nil {
			Te.Errorf("no error for malformed dimension string '%s'", bad)
		}
	}
}

//TestDecode2D tests the documented 2x2 example literal.
func TestDecode2D(Te *testing.T) {
	A, err := Decode("(0,1) x (0,1)", "[ (1,2) (3,4) \n  (5,6) (7,8) ]")
	if err != nil {
		Te.Fatal(err)
	}
	want := [2][2]complex128{{1 + 2i, 3 + 4i}, {5 + 6i, 7 + 8i}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if A.At(i, j) != want[i][j] {
				Te.Errorf("element (%d,%d) is %v, want %v", i, j, A.At(i, j), want[i][j])
			}
		}
	}
	dimstr, datastr, err := Encode(A)
	if err != nil {
		Te.Fatal(err)
	}
	if dimstr != "(0,1) x (0,1)" {
		Te.Errorf("re-encoded dimension string is '%s'", dimstr)
	}
	if datastr != "[ (1,2) (3,4) \n  (5,6) (7,8) ]" {
		Te.Errorf("re-encoded data string is '%s'", datastr)
	}
}

//TestRoundTrip encodes and decodes dense arrays of ranks 1 to 5.
func TestRoundTrip(Te *testing.T) {
	shapes := [][]int{
		{7},
		{3, 4},
		{2, 3, 2},
		{2, 2, 3, 2},
		{2, 2, 2, 2, 3},
	}
	for _, ext := range shapes {
		n := 1
		for _, e := range ext {
			n *= e
		}
		data := make([]complex128, n)
		for i := range data {
			data[i] = complex(float64(i)*0.25-3, -float64(i)*1e-7)
		}
		A, err := FromSlice(data, ext...)
		if err != nil {
			Te.Fatal(err)
		}
		dimstr, datastr, err := Encode(A)
		if err != nil {
			Te.Fatal(err)
		}
		B, err := Decode(dimstr, datastr)
		if err != nil {
			Te.Fatalf("rank %d: %v", len(ext), err)
		}
		if !A.Equal(B) {
			Te.Errorf("rank-%d array did not survive the round trip", len(ext))
		}
	}
}

//TestNesting checks the exact separators of the textual nesting: newline
//plus indent between blocks of the two trailing axes, bare newline above.
func TestNesting(Te *testing.T) {
	data := make([]complex128, 8)
	for i := range data {
		data[i] = complex(float64(i+1), 0)
	}
	A, err := FromSlice(data, 2, 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	_, datastr, err := Encode(A)
	if err != nil {
		Te.Fatal(err)
	}
	want3 := "[ (1,0) (2,0) \n  (3,0) (4,0) \n  (5,0) (6,0) \n  (7,0) (8,0) ]"
	if datastr != want3 {
		Te.Errorf("rank-3 data string is\n'%s'\nwant\n'%s'", datastr, want3)
	}
	data = make([]complex128, 16)
	for i := range data {
		data[i] = complex(float64(i+1), 0)
	}
	A, err = FromSlice(data, 2, 2, 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	_, datastr, err = Encode(A)
	if err != nil {
		Te.Fatal(err)
	}
	want4 := "[ (1,0) (2,0) \n  (3,0) (4,0) \n  (5,0) (6,0) \n  (7,0) (8,0)\n" +
		"(9,0) (10,0) \n  (11,0) (12,0) \n  (13,0) (14,0) \n  (15,0) (16,0) ]"
	if datastr != want4 {
		Te.Errorf("rank-4 data string is\n'%s'\nwant\n'%s'", datastr, want4)
	}
	//the decoder must accept the bare-newline separator too
	B, err := Decode("(0,1) x (0,1) x (0,1) x (0,1)", datastr)
	if err != nil {
		Te.Fatal(err)
	}
	if !A.Equal(B) {
		Te.Error("rank-4 array did not survive the round trip")
	}
}

//TestDecodeErrors tests that malformed literals fail with a FormatError and
//never return a partial array.
func TestDecodeErrors(Te *testing.T) {
	cases := []struct {
		dims string
		data string
	}{
		{"(0,2)", "[ (1,0) (2,0) ]"},          //count mismatch, too few
		{"(0,0)", "[ (1,0) (2,0) ]"},          //count mismatch, too many
		{"(0,1)", "[ (1,x) (2,0) ]"},          //non-numeric imaginary part
		{"(0,1)", "[ (1) (2,0) ]"},            //not a pair
		{"(0,1)", "(1,0) (2,0) ]"},            //no opening bracket
		{"(0,1)", "[ (1,0) (2,0)"},            //no closing bracket
		{"(0,1) x (1,0)", "[ (1,0) (2,0) ]"},  //hi < lo
		{"bogus", "[ (1,0) (2,0) ]"},          //malformed dims
	}
	for _, c := range cases {
		A, err := Decode(c.dims, c.data)
		if err == nil {
			Te.Errorf("no error for dims '%s' data '%s'", c.dims, c.data)
		}
		if A != nil {
			Te.Errorf("partial array returned for dims '%s' data '%s'", c.dims, c.data)
		}
	}
}

//TestDecodeBlock tests parsing a whole literal, header line included.
func TestDecodeBlock(Te *testing.T) {
	A, err := DecodeBlock("(0,1) x (0,1) \n[ (1,2) (3,4) \n  (5,6) (7,8) ]\n\n")
	if err != nil {
		Te.Fatal(err)
	}
	if A.At(1, 1) != 7+8i {
		Te.Errorf("wrong element decoded: %v", A.At(1, 1))
	}
	ascii, err := A.Ascii()
	if err != nil {
		Te.Fatal(err)
	}
	B, err := DecodeBlock(ascii)
	if err != nil {
		Te.Fatal(err)
	}
	if !A.Equal(B) {
		Te.Error("array did not survive the Ascii round trip")
	}
	fmt.Println("Blitz literal:", ascii)
}

//TestEncodeDegenerate tests that nil and rank-0 arrays are rejected.
func TestEncodeDegenerate(Te *testing.T) {
	if _, _, err := Encode(nil); err == nil {
		Te.Error("no error encoding a nil array")
	}
	if _, _, err := Encode(&Array{}); err == nil {
		Te.Error("no error encoding a rank-0 array")
	}
	if _, err := FromSlice([]complex128{1}, 0); err == nil {
		Te.Error("no error wrapping a slice with a zero extent")
	}
}
