/*
 * interfaces.go, part of goqed.
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

//Errors

//This error scheme predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package).
//It is kept for consistency across the packages of this library.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information to the error when passing it up. Each call returns the current "decoration" slice of strings. If passed an empty string, it only returns the current value, without adding anything.
	//The decorate slice should contain a list of the functions in the calling stack, plus, for each function, any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// ParseError is the interface for errors produced while parsing simulator
// output. Truncated reports whether the error was caused by the input ending
// before an expected terminator, as opposed to malformed content.
type ParseError interface {
	Error
	Truncated() bool
	FileName() string
}

//Handlers

// Handler receives the pieces of a simulation output file as Scan encounters
// them, in file order. An array block carries no timestamp of its own; the
// handler is expected to pair it with the time of the most recent row.
type Handler interface {

	//Row is called for every expectation-value row.
	Row(r *Row) error

	//Block is called for every array block, with the dimension string and
	//the bracketed data string of the Blitz literal.
	Block(dims, data string) error
}

// BasisHandler can be additionally implemented by a Handler to receive named
// basis blocks separately. If the Handler given to Scan does not implement
// it, basis blocks are delivered to Block like any other array block.
type BasisHandler interface {

	//Basis is called for an array block preceded by a "# BASIS" header
	//line, with the system number and basis type parsed from the SYS<i>
	//and TYPE<name> tags.
	Basis(sys int, basistype string, dims, data string) error
}
