/*
 * qed_test.go, part of goqed.
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

package qed

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

//TestExpValues tests the row-to-table transposition.
func TestExpValues(Te *testing.T) {
	rows := []*Row{
		{Time: 0.0, Values: []float64{0.0, 1.0}},
		{Time: 0.1, Values: []float64{0.1, 1.1}},
	}
	evs, err := NewExpValues(rows)
	if err != nil {
		Te.Fatal(err)
	}
	if evs.NSeries() != 2 || evs.NSteps() != 2 {
		Te.Fatalf("wrong table shape: %d series, %d steps", evs.NSeries(), evs.NSteps())
	}
	if !floats.Equal(evs.Time(), []float64{0.0, 0.1}) {
		Te.Errorf("wrong time axis: %v", evs.Time())
	}
	if !floats.Equal(evs.Series(1), []float64{1.0, 1.1}) {
		Te.Errorf("wrong series 1: %v", evs.Series(1))
	}
	if !floats.Equal(evs.Series(0), evs.Time()) {
		Te.Error("series 0 is not the time axis")
	}
	//ragged rows must be rejected
	rows = append(rows, &Row{Time: 0.2, Values: []float64{0.2}})
	if _, err := NewExpValues(rows); err == nil {
		Te.Error("no error for rows with differing field counts")
	}
}

//TestOutputAccumulator tests that the ready-made Scan handler pairs each
//array block with the time of the preceding row and keeps the bases current.
func TestOutputAccumulator(Te *testing.T) {
	buf := "# header\n\n" +
		"0 1 0.5\n" +
		"# BASIS SYS<0> TYPE<Mode>\n" +
		"(0,1) \n[ (1,0) (0,1) ]\n" +
		"0.1 0.9 0.45\n" +
		"(0,1) x (0,1) \n[ (1,2) (3,4) \n  (5,6) (7,8) ]\n" +
		"0.2 0.8 0.4\n"
	out := new(Output)
	header, err := Scan(buf, out)
	if err != nil {
		Te.Fatal(err)
	}
	out.Header = header
	if len(out.Rows) != 3 || len(out.States) != 1 {
		Te.Fatalf("accumulated %d rows and %d states, want 3 and 1", len(out.Rows), len(out.States))
	}
	sv := out.States[0]
	if sv.Time != 0.1 {
		Te.Errorf("state vector has time %v, want 0.1", sv.Time)
	}
	if sv.At(0, 1) != 3+4i {
		Te.Errorf("wrong state vector element: %v", sv.At(0, 1))
	}
	if len(sv.Bases) != 1 || sv.Bases[0].Type != "Mode" || sv.Bases[0].Sys != 0 {
		Te.Fatalf("wrong bases attached: %+v", sv.Bases)
	}
	if sv.Bases[0].States.At(1) != 1i {
		Te.Errorf("wrong basis state: %v", sv.Bases[0].States.At(1))
	}
}

//TestOutputOrphanBlock tests that a block with no preceding row fails.
func TestOutputOrphanBlock(Te *testing.T) {
	buf := "# header\n\n" +
		"(0,1) \n[ (1,0) (0,1) ]\n"
	out := new(Output)
	if _, err := Scan(buf, out); err == nil {
		Te.Error("no error for an array block with no preceding timestep row")
	}
}
