/*
 * files.go, part of goqed.
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
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goqed/goqed/blitz"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// LoadOutput reads a whole simulation output file and returns its
// expectation-value trajectory and its state vectors, in file order. The
// file is decompressed transparently if its name ends in .gz, .zst or .bz2.
func LoadOutput(name string) (*ExpValues, []*StateVector, error) {
	buf, err := readFile(name)
	if err != nil {
		return nil, nil, err
	}
	out := new(Output)
	header, err := Scan(buf, out)
	if err != nil {
		return nil, nil, named(err, name)
	}
	out.Header = header
	evs, err := NewExpValues(out.Rows)
	if err != nil {
		return nil, nil, named(err, name)
	}
	return evs, out.States, nil
}

// LoadStateVector reads a single state-vector file. Both conventions are
// accepted: the current one, with the array literal followed by a trailing
// "# <time> 1" comment line, and the old one with the comment line leading.
func LoadStateVector(name string) (*StateVector, error) {
	buf, err := readFile(name)
	if err != nil {
		return nil, err
	}
	var commentstr, datastr string
	if strings.HasPrefix(buf, "# ") { //old convention
		nl := strings.IndexByte(buf, '\n')
		if nl < 0 {
			return nil, &SyntaxError{message: "not a valid statevector file", filename: name}
		}
		commentstr, datastr = buf[:nl], buf[nl+1:]
	} else {
		trimmed := strings.TrimRight(buf, " \n\t")
		nl := strings.LastIndexByte(trimmed, '\n')
		if nl < 0 {
			return nil, &SyntaxError{message: "not a valid statevector file", filename: name}
		}
		datastr, commentstr = trimmed[:nl], trimmed[nl+1:]
		if i := strings.IndexByte(datastr, '#'); i >= 0 {
			datastr = datastr[:i]
		}
		if !strings.HasPrefix(commentstr, "# ") {
			return nil, &SyntaxError{message: "not a valid statevector file", filename: name}
		}
	}
	fields := strings.Fields(commentstr[2:])
	if len(fields) == 0 {
		return nil, &SyntaxError{message: "statevector comment line carries no time", filename: name}
	}
	t, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, &SyntaxError{message: fmt.Sprintf("non-numeric time '%s' in statevector comment line", fields[0]), filename: name}
	}
	a, err := blitz.DecodeBlock(strings.TrimLeft(datastr, " \n"))
	if err != nil {
		return nil, named(errDecorate(err, "LoadStateVector"), name)
	}
	return &StateVector{Array: a, Time: t}, nil
}

// SaveStateVector writes a state vector as an array literal followed by the
// "# <time> 1" comment line. A .gz or .zst suffix selects compression.
func SaveStateVector(name string, sv *StateVector) error {
	ascii, err := sv.Ascii()
	if err != nil {
		return errDecorate(err, "SaveStateVector")
	}
	w, err := createFile(name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, ascii); err != nil {
		w.Close()
		return err
	}
	if _, err := fmt.Fprintf(w, "\n# %s 1\n", fmtTime(sv.Time)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// SplitOutput reads the simulation output file at readpath and splits it:
// the comment header and the expectation-value rows are rewritten to
// writepath, every state vector goes to its own file named
// "<writepath>_<time>.sv", and every named basis block to
// "<writepath>_<time>_basis.sv". If header is true each split-out file
// starts with a "# <time> 1" comment line.
func SplitOutput(readpath, writepath string, header bool) error {
	buf, err := readFile(readpath)
	if err != nil {
		return err
	}
	sp := &svSplitter{writepath: writepath, header: header}
	head, err := Scan(buf, sp)
	if err != nil {
		return named(err, readpath)
	}
	f, err := os.Create(writepath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.WriteString(f, head); err != nil {
		return err
	}
	for _, r := range sp.rows {
		if _, err := fmt.Fprintln(f, r.Raw); err != nil {
			return err
		}
	}
	return nil
}

// svSplitter writes each array block out as it arrives, so a file with many
// snapshots never holds more than one decoded block worth of text at a time.
// Named basis blocks go to their own "_basis.sv" files, never clobbering the
// state vector of the same timestep.
type svSplitter struct {
	writepath string
	header    bool
	rows      []*Row
}

func (s *svSplitter) Row(r *Row) error {
	s.rows = append(s.rows, r)
	return nil
}

func (s *svSplitter) Block(dims, data string) error {
	t, err := s.timestamp()
	if err != nil {
		return err
	}
	return s.write(fmt.Sprintf("%s_%f.sv", s.writepath, t), t, dims, data)
}

func (s *svSplitter) Basis(sys int, basistype, dims, data string) error {
	t, err := s.timestamp()
	if err != nil {
		return err
	}
	return s.write(fmt.Sprintf("%s_%f_basis.sv", s.writepath, t), t, dims, data)
}

func (s *svSplitter) timestamp() (float64, error) {
	if len(s.rows) == 0 {
		return 0, &SyntaxError{message: "can not find a timestamp for an array block"}
	}
	return s.rows[len(s.rows)-1].Time, nil
}

func (s *svSplitter) write(name string, t float64, dims, data string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if s.header {
		if _, err := fmt.Fprintf(f, "# %s 1\n", fmtTime(t)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(f, "%s\n%s\n", dims, data)
	return err
}

func fmtTime(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}

// named attaches the file name to a parse error, if it is one of ours.
func named(err error, name string) error {
	switch e := err.(type) {
	case *TruncatedError:
		e.filename = name
	case *SyntaxError:
		e.filename = name
	}
	return err
}

//Compressed I/O. The compressor is picked from the filename suffix, as the
//simulators and the older tooling for this format do.

func readFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(name, ".bz2"):
		r = bzip2.NewReader(f)
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// wclose closes a compressing writer and then the file under it.
type wclose struct {
	io.Writer
	closers []io.Closer
}

func (w *wclose) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func createFile(name string) (io.WriteCloser, error) {
	if strings.HasSuffix(name, ".bz2") {
		return nil, fmt.Errorf("goqed: writing bzip2 files is not supported, use .gz or .zst")
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		zw := gzip.NewWriter(f)
		return &wclose{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wclose{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return f, nil
}
