// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explore provides one-call helpers for exploratory analysis
// of experimental samples. Each helper runs a hypothesis test and
// draws a chart of the data, returning both so the caller can report
// the numbers and further customize or save the plot.
//
// Each call builds a new plot. Nothing is shared between calls.
package explore

import (
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"

	"golang.org/x/stattest/sigplot"
	"golang.org/x/stattest/sigtest"
)

// CheckNormality runs a Shapiro-Wilk test on sample and draws its
// histogram using the sigplot.Dark theme, with xLabel as the x-axis
// caption. opts are passed to sigplot.Histogram.
//
// sample must have between sigtest.MinShapiroWilk and
// sigtest.MaxShapiroWilk finite values. Otherwise CheckNormality
// returns a *sigtest.InvalidInputError and no plot.
func CheckNormality(sample []float64, xLabel string, opts ...sigplot.HistOption) (*plot.Plot, sigtest.Normality, error) {
	res, err := sigtest.ShapiroWilk(sample)
	if err != nil {
		return nil, sigtest.Normality{}, err
	}

	p := plot.New()
	sigplot.Dark.Apply(p)
	if _, err := sigplot.Histogram(p, sample, opts...); err != nil {
		return nil, res, err
	}
	p.X.Label.Text = xLabel
	return p, res, nil
}

// A MeanComparison is the result of CompareMeans.
type MeanComparison struct {
	sigtest.Comparison

	// Values is the first sample followed by the second.
	Values []float64

	// Table is the labeled table the boxplot was drawn from. See
	// sigtest.Combine.
	Table *table.Table
}

// CompareMeans tests whether samples[0] and samples[1] have equal
// means and draws a boxplot of each, labeled by names, using the
// default sigplot.DarkGrid theme. yLabel is the y-axis caption and
// opts are passed to sigplot.BoxPlots.
//
// If the difference is significant, the boxes are joined by a bracket
// placed a tenth of a standard deviation of the combined values above
// the largest value, topped by the significance stars.
//
// test must be sigtest.Students or sigtest.WithinSubjects; for
// WithinSubjects the samples must have equal length. Input errors
// are reported as *sigtest.InvalidInputError before any test statistic
// is computed or anything is drawn.
func CompareMeans(samples [2][]float64, test sigtest.TestType, names [2]string, yLabel string, opts ...sigplot.BoxOption) (*plot.Plot, MeanComparison, error) {
	s1, s2 := samples[0], samples[1]
	tab, err := sigtest.Combine(s1, s2, names[0], names[1])
	if err != nil {
		return nil, MeanComparison{}, err
	}
	cmp, err := sigtest.Compare(test, s1, s2, nil)
	if err != nil {
		return nil, MeanComparison{}, err
	}
	res := MeanComparison{Comparison: cmp, Values: sigtest.Values(tab), Table: tab}

	p := plot.New()
	sigplot.DarkGrid.Apply(p)
	groupNames, groups := sigtest.Groups(tab)
	if _, err := sigplot.BoxPlots(p, groupNames, groups, opts...); err != nil {
		return nil, res, err
	}
	p.X.Label.Text = ""
	p.Y.Label.Text = yLabel

	if cmp.Significance.Significant() {
		vspace := stat.StdDev(res.Values, nil) / 10
		y := floats.Max(res.Values) + vspace
		if _, _, err := sigplot.Bracket(p, 0, 1, y, vspace, cmp.Significance.String()); err != nil {
			return nil, res, err
		}
	}
	return p, res, nil
}
