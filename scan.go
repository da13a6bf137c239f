/*
 * scan.go, part of goqed.
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
	"strconv"
	"strings"
)

// Row is one expectation-value row of a simulation output file: the fields
// of the line split on tabs, each part further split on whitespace. The
// first field is, by convention, the simulation time for the row.
type Row struct {
	Time   float64
	Values []float64 //all numeric fields of the row, time included as Values[0]
	Raw    string    //the line as it appeared in the file
}

// ParseRow tokenizes one expectation-value line.
func ParseRow(line string) (*Row, error) {
	vals := make([]float64, 0, 8)
	for _, part := range strings.Split(line, "\t") {
		for _, field := range strings.Fields(part) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &SyntaxError{message: fmt.Sprintf("non-numeric field '%s' in row '%s'", field, strings.TrimSpace(line))}
			}
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, &SyntaxError{message: "row contains no numeric fields"}
	}
	return &Row{Time: vals[0], Values: vals, Raw: line}, nil
}

/*Scan splits a simulation output buffer into its pieces and dispatches them
to the given handler, in file order.

The comment header (lines starting with '#' or blank, up to and including the
first blank line that ends such a prefix) is consumed first and returned. The
rest of the buffer is scanned left to right: text up to the next array block
(marked by a newline followed by '(') is dispatched line by line as rows,
then the block itself, delimited by the next ']', is dispatched with its
dimension and data strings. A "# BASIS" comment line makes the next block a
named basis block; other comment lines in the data section are skipped.

Scan keeps no state after returning and never backtracks, so it runs in
linear time over the buffer. A header with no terminating blank line, or a
block start with no subsequent ']', fails with a TruncatedError; no partial
result is delivered beyond the handler calls already made.*/
func Scan(buf string, h Handler) (string, error) {
	pos := 0
	for pos < len(buf) && (buf[pos] == '\n' || buf[pos] == '#') {
		next := strings.Index(buf[pos:], "\n\n")
		if next < 0 {
			return "", &TruncatedError{message: "no blank line terminates the comment header"}
		}
		pos += next + 2
	}
	header := buf[:pos]
	data := buf[pos:]
	basis, _ := h.(BasisHandler)
	pending := "" //last seen "# BASIS" line, not yet bound to a block
	pos = 0
	for {
		var start int //index of the newline preceding the block's '('
		if pos == 0 && len(data) > 0 && data[0] == '(' {
			start = -1 //block at the very start of the data section
		} else {
			i := strings.Index(data[pos:], "\n(")
			if i < 0 {
				//terminal state: everything left is rows
				_, err := scanRows(data[pos:], h, pending)
				return header, err
			}
			start = pos + i
		}
		if start > pos {
			var err error
			pending, err = scanRows(data[pos:start], h, pending)
			if err != nil {
				return header, err
			}
		}
		end := strings.Index(data[start+1:], "]")
		if end < 0 {
			return header, &TruncatedError{message: "array block has no ']' terminator"}
		}
		end += start + 1
		payload := data[start+1 : end+1]
		nl := strings.IndexByte(payload, '\n')
		if nl < 0 {
			return header, &TruncatedError{message: "array block ends before its data section"}
		}
		dimstr, datastr := payload[:nl], payload[nl+1:]
		var err error
		if pending != "" && basis != nil {
			var sys int
			var basistype string
			sys, basistype, err = parseBasisHeader(pending)
			if err == nil {
				err = basis.Basis(sys, basistype, dimstr, datastr)
			}
		} else {
			err = h.Block(dimstr, datastr)
		}
		if err != nil {
			return header, err
		}
		pending = ""
		pos = end + 2
		if pos >= len(data) {
			return header, nil
		}
	}
}

// scanRows dispatches the non-blank, non-comment lines of chunk as rows.
// A "# BASIS" line is not dispatched; it is returned as the new pending
// basis header for the block that follows.
func scanRows(chunk string, h Handler, pending string) (string, error) {
	for _, line := range strings.Split(chunk, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "# BASIS") {
			pending = line
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		r, err := ParseRow(line)
		if err != nil {
			return pending, err
		}
		if err := h.Row(r); err != nil {
			return pending, err
		}
	}
	return pending, nil
}

// parseBasisHeader extracts the system number and basis type from a header
// line of the form "# BASIS ... SYS<i> ... TYPE<name>". A system number of
// -1 denotes a basis for the whole system rather than one subsystem.
func parseBasisHeader(line string) (int, string, error) {
	i := strings.Index(line, "SYS<")
	if i < 0 {
		return 0, "", &SyntaxError{message: fmt.Sprintf("basis header without SYS tag: '%s'", strings.TrimSpace(line))}
	}
	i += len("SYS<")
	j := strings.IndexByte(line[i:], '>')
	if j < 0 {
		return 0, "", &SyntaxError{message: fmt.Sprintf("unterminated SYS tag in basis header: '%s'", strings.TrimSpace(line))}
	}
	sys, err := strconv.Atoi(line[i : i+j])
	if err != nil {
		return 0, "", &SyntaxError{message: fmt.Sprintf("non-integer system number '%s' in basis header", line[i:i+j])}
	}
	k := strings.Index(line[i+j:], "TYPE<")
	if k < 0 {
		return 0, "", &SyntaxError{message: fmt.Sprintf("basis header without TYPE tag: '%s'", strings.TrimSpace(line))}
	}
	k += i + j + len("TYPE<")
	l := strings.IndexByte(line[k:], '>')
	if l < 0 {
		return 0, "", &SyntaxError{message: fmt.Sprintf("unterminated TYPE tag in basis header: '%s'", strings.TrimSpace(line))}
	}
	return sys, line[k : k+l], nil
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//the library's Error interface and decorates it with the caller's name
//before returning it.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.Decorate(caller)
	return err
}

// TruncatedError reports input that ends before an expected terminator:
// the blank line closing the comment header, or the ']' closing an array
// block.
type TruncatedError struct {
	message  string
	filename string //the input file with the problem, or empty if parsing a buffer
	deco     []string
}

func (err *TruncatedError) Error() string {
	if err.filename == "" {
		return "truncated input: " + err.message
	}
	return fmt.Sprintf("truncated input in %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (err *TruncatedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Truncated returns true.
func (err *TruncatedError) Truncated() bool { return true }

// FileName returns the file the failing parse was associated with.
func (err *TruncatedError) FileName() string { return err.filename }

// SyntaxError reports malformed content in the data section of an output
// file: a non-numeric row field or a malformed basis header.
type SyntaxError struct {
	message  string
	filename string
	deco     []string
}

func (err *SyntaxError) Error() string {
	if err.filename == "" {
		return "syntax error: " + err.message
	}
	return fmt.Sprintf("syntax error in %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (err *SyntaxError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Truncated returns false.
func (err *SyntaxError) Truncated() bool { return false }

// FileName returns the file the failing parse was associated with.
func (err *SyntaxError) FileName() string { return err.filename }
