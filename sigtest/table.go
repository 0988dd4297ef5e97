// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigtest

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// Column names of tables built by Combine.
const (
	ValueCol = "value"
	LabelCol = "label"
)

// Combine builds a two column table from a pair of labeled samples.
// The ValueCol column holds s1 followed by s2. The LabelCol column
// holds name1 once for each element of s1 followed by name2 once for
// each element of s2.
//
// Combine fails if name1 == name2, since the samples would become a
// single group.
func Combine(s1, s2 []float64, name1, name2 string) (*table.Table, error) {
	if name1 == name2 {
		return nil, invalid("combine", ErrDuplicateName, "%q", name1)
	}
	values := make([]float64, 0, len(s1)+len(s2))
	values = append(values, s1...)
	values = append(values, s2...)
	labels := make([]string, len(values))
	for i := range labels {
		if i < len(s1) {
			labels[i] = name1
		} else {
			labels[i] = name2
		}
	}
	return new(table.Builder).Add(ValueCol, values).Add(LabelCol, labels).Done(), nil
}

// Values returns the ValueCol column of t.
func Values(t *table.Table) []float64 {
	return t.MustColumn(ValueCol).([]float64)
}

// Groups splits t by LabelCol and returns each label with its values,
// in order of first appearance.
func Groups(t *table.Table) (names []string, groups [][]float64) {
	g := table.GroupBy(t, LabelCol)
	for _, gid := range g.Tables() {
		names = append(names, gid.Label().(string))
		groups = append(groups, g.Table(gid).MustColumn(ValueCol).([]float64))
	}
	return names, groups
}

// Summary column names produced by Summarize.
const (
	CountCol  = "n"
	MeanCol   = "mean " + ValueCol
	MinCol    = "min " + ValueCol
	MedianCol = "median " + ValueCol
	MaxCol    = "max " + ValueCol
)

// Summarize aggregates a table built by Combine into one row per
// label with the count, mean, min, median and max of its values.
func Summarize(g table.Grouping) *table.Table {
	agg := ggstat.Agg(LabelCol)(
		ggstat.AggCount(CountCol),
		ggstat.AggMean(ValueCol),
		ggstat.AggMin(ValueCol),
		ggstat.AggQuantile("median", 0.5, ValueCol),
		ggstat.AggMax(ValueCol),
	)
	return table.Flatten(agg.F(g))
}
