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

/*Package blitz converts between the ASCII representation of Blitz++ arrays,
as written by C++QED-style simulators, and dense complex arrays.

A Blitz literal is a dimension header plus a bracketed body:

	(0,1) x (0,1)
	[ (1,2) (3,4)
	  (5,6) (7,8) ]

Each (re,im) token is one complex element. Rows of the two trailing axes are
separated by a newline and two-space indent; for higher ranks, blocks repeat
for each index of the outer axes, with the outermost levels separated by a
bare newline. Encode reproduces this format exactly, so that round trips
through the simulator's own reader and writer are byte-identical.
*/
package blitz
