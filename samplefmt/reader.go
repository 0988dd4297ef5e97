// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefmt reads samples of numeric observations.
//
// The plain-text format is a sequence of numbers separated by
// whitespace or commas. A '#' starts a comment that runs to the end of
// the line. For example:
//
//	# reaction time (ms), subject 3
//	412 398, 405
//	431  # retest
//
// CSV input with a header row is read by ReadCSV, which extracts a
// single named column.
package samplefmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A Reader reads observations from the plain-text sample format.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int

	// q holds the not yet returned fields of the current line.
	q   [][]byte
	val float64
	err error
}

// A SyntaxError is a malformed observation on a particular line of a
// sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader that reads observations from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), fileName: fileName}
}

func isSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}

// Scan advances the Reader to the next observation, which will then
// be available through Value. It returns false when it reaches the
// end of the input or an error. A syntax error stops scanning.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for len(r.q) == 0 {
		if !r.s.Scan() {
			r.err = r.s.Err()
			return false
		}
		r.line++
		line := r.s.Bytes()
		if i := bytes.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		r.q = bytes.FieldsFunc(line, isSep)
	}

	f := r.q[0]
	r.q = r.q[1:]
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		r.err = &SyntaxError{r.fileName, r.line, fmt.Sprintf("parsing %q: not a number", f)}
		return false
	}
	r.val = v
	return true
}

// Value returns the observation read by the last successful call to
// Scan.
func (r *Reader) Value() float64 {
	return r.val
}

// Err returns the first error encountered by the Reader, or nil at
// the end of the input.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every observation from r.
func ReadAll(r io.Reader, fileName string) ([]float64, error) {
	var xs []float64
	rd := NewReader(r, fileName)
	for rd.Scan() {
		xs = append(xs, rd.Value())
	}
	return xs, rd.Err()
}
