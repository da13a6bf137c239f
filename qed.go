/*
 * qed.go, part of goqed.
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
	"fmt"
	"sort"

	"github.com/goqed/goqed/blitz"
	"gonum.org/v1/gonum/mat"
)

// Basis holds the states of a named basis announced by a "# BASIS" block.
// Sys is the subsystem the basis belongs to, or -1 for the whole system.
type Basis struct {
	Sys    int
	Type   string
	States *blitz.Array
}

// StateVector is one state snapshot of the simulated system: a dense
// complex array plus the simulation time it was taken at, recovered from
// the expectation-value row preceding it in the output file. Bases holds
// the named bases in effect at that time, if the file declared any.
type StateVector struct {
	*blitz.Array
	Time  float64
	Bases []*Basis
}

// ExpValues is the expectation-value trajectory of a simulation: one series
// per output column, sampled at each timestep. The series are the rows of a
// gonum Dense matrix, with the time as series 0, so that column j holds all
// values of timestep j.
type ExpValues struct {
	data *mat.Dense
	time []float64
}

// NewExpValues builds the trajectory table from the parsed rows, which is
// the transpose of the file layout. All rows must have the same number of
// fields.
func NewExpValues(rows []*Row) (*ExpValues, error) {
	if len(rows) == 0 {
		return &ExpValues{}, nil
	}
	n := len(rows[0].Values)
	d := mat.NewDense(n, len(rows), nil)
	time := make([]float64, len(rows))
	for j, r := range rows {
		if len(r.Values) != n {
			return nil, &SyntaxError{message: fmt.Sprintf("row at t=%v has %d fields while the first row has %d", r.Time, len(r.Values), n)}
		}
		time[j] = r.Time
		for i, v := range r.Values {
			d.Set(i, j, v)
		}
	}
	return &ExpValues{data: d, time: time}, nil
}

// NSeries returns the number of series, the time included.
func (E *ExpValues) NSeries() int {
	if E.data == nil {
		return 0
	}
	r, _ := E.data.Dims()
	return r
}

// NSteps returns the number of timesteps.
func (E *ExpValues) NSteps() int {
	return len(E.time)
}

// Time returns the time axis. The slice is shared with the collection.
func (E *ExpValues) Time() []float64 {
	return E.time
}

// Series returns a copy of the i-th series over all timesteps. Series 0 is
// the time itself.
func (E *ExpValues) Series(i int) []float64 {
	return mat.Row(nil, i, E.data)
}

// At returns the value of series i at timestep j.
func (E *ExpValues) At(i, j int) float64 {
	return E.data.At(i, j)
}

// Matrix returns the backing Dense matrix (series x timesteps), not a copy.
func (E *ExpValues) Matrix() *mat.Dense {
	return E.data
}

/*Output is a ready-made accumulator for Scan. It collects every row, decodes
every array block into a StateVector stamped with the time of the most recent
row, and keeps track of the named bases declared so far, attaching the
current set to each new StateVector. It replaces the handler-closure scheme
of older tooling for this format with an explicit owner of the accumulated
state.*/
type Output struct {
	Header string
	Rows   []*Row
	States []*StateVector
	bases  map[int]*Basis
}

// Row collects an expectation-value row.
func (O *Output) Row(r *Row) error {
	O.Rows = append(O.Rows, r)
	return nil
}

// Block decodes an array block and pairs it with the time of the last row.
func (O *Output) Block(dims, data string) error {
	if len(O.Rows) == 0 {
		return &SyntaxError{message: "array block with no preceding timestep row"}
	}
	a, err := blitz.Decode(dims, data)
	if err != nil {
		return errDecorate(err, "Output.Block")
	}
	sv := &StateVector{Array: a, Time: O.Rows[len(O.Rows)-1].Time, Bases: O.currentBases()}
	O.States = append(O.States, sv)
	return nil
}

// Basis decodes a named basis block. A basis with sys -1 replaces all
// per-subsystem bases seen so far.
func (O *Output) Basis(sys int, basistype, dims, data string) error {
	a, err := blitz.Decode(dims, data)
	if err != nil {
		return errDecorate(err, "Output.Basis")
	}
	if O.bases == nil || sys < 0 {
		O.bases = make(map[int]*Basis)
	}
	O.bases[sys] = &Basis{Sys: sys, Type: basistype, States: a}
	return nil
}

// currentBases snapshots the bases in effect, ordered by subsystem.
func (O *Output) currentBases() []*Basis {
	if len(O.bases) == 0 {
		return nil
	}
	bases := make([]*Basis, 0, len(O.bases))
	for _, b := range O.bases {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i].Sys < bases[j].Sys })
	return bases
}
