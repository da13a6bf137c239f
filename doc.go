/*
 * doc.go, part of goqed.
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

/*Package qed post-processes the output of C++QED-style quantum dynamics
simulations. It splits a simulation output file into its expectation-value
trajectory and the state-vector snapshots embedded in it, and reads and
writes the Blitz-array ASCII representation those snapshots use.



	**goqed Capabilities**


    Scans a simulation output file in a single pass, dispatching
	expectation-value rows and Blitz array blocks, in file order, to
	caller-supplied handlers.

    Decodes Blitz array literals of any rank into dense complex arrays,
	and encodes them back, reproducing the simulator's exact textual
	format (see the blitz subpackage).

    Loads a whole output file into an expectation-value table (backed by
	a gonum Dense matrix) plus a slice of timestamped state vectors.

    Reads and writes single state-vector files, in both the current
	(trailing comment) and the old (leading comment) conventions.

    Splits an output file into a plain trajectory file and one
	state-vector file per snapshot.

    Reads and writes gzip and zstd compressed files transparently,
	selected by filename suffix; bzip2 files can be read.

    Named basis blocks ("# BASIS ... SYS<i> ... TYPE<name>") are
	recognized and attached to the state vectors that follow them.

    Plots expectation-value series against time (see the qedplot
	subpackage).

*/
package qed
