// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ReadCSV reads a CSV table with a header row from r and returns the
// values of the named column as float64. Leading and trailing spaces
// around fields are ignored. Every row must have a numeric value in
// the column.
func ReadCSV(r io.Reader, fileName, column string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", fileName)
	}
	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	rows = rows[1:]
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}

	tab := table.TableFromStrings(header, rows, true)
	col := tab.Column(column)
	if col == nil {
		return nil, fmt.Errorf("%s: no column %q (have %s)", fileName, column, strings.Join(header, ", "))
	}
	switch col.(type) {
	case []int, []float64:
	default:
		if len(rows) > 0 {
			return nil, fmt.Errorf("%s: column %q is not numeric", fileName, column)
		}
		return nil, nil
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, nil
}
