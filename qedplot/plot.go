/*
 * plot.go, part of goqed.
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

//Package qedplot draws expectation-value trajectories with gonum/plot.
package qedplot

import (
	"fmt"

	"github.com/goqed/goqed"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSeries plots the given expectation-value series against time and
// saves the result as a PNG file named plotname.png. Series are identified
// by their index in the collection; index 0 is the time itself, so passing
// it plots a straight line. A nil series slice plots every series but the
// time.
func PlotSeries(evs *qed.ExpValues, series []int, title, plotname string) error {
	if evs == nil || evs.NSteps() == 0 {
		return fmt.Errorf("qedplot: given an empty expectation-value collection")
	}
	if series == nil {
		for i := 1; i < evs.NSeries(); i++ {
			series = append(series, i)
		}
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Add(plotter.NewGrid())
	t := evs.Time()
	for n, i := range series {
		if i < 0 || i >= evs.NSeries() {
			return fmt.Errorf("qedplot: series %d out of range, the collection has %d", i, evs.NSeries())
		}
		s := evs.Series(i)
		pts := make(plotter.XYs, len(t))
		for k := range pts {
			pts[k].X = t[k]
			pts[k].Y = s[k]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = lineColor(n, len(series))
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("ev%d", i), l)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
