// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigtest

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A TestType selects the t-test used to compare two sample means.
// The zero TestType is not a valid test.
type TestType int

const (
	_ TestType = iota

	// Students is the independent two-sample t-test with pooled
	// variance.
	Students

	// WithinSubjects is the paired t-test. Element i of each
	// sample is one pair of observations.
	WithinSubjects
)

var testTypeNames = map[string]TestType{
	"students":        Students,
	"within-subjects": WithinSubjects,
}

// ParseTestType returns the TestType named s, which must be exactly
// "students" or "within-subjects".
func ParseTestType(s string) (TestType, error) {
	if t, ok := testTypeNames[s]; ok {
		return t, nil
	}
	return 0, invalid("t-test", ErrUnknownTest, "%q", s)
}

func (t TestType) String() string {
	switch t {
	case Students:
		return "students"
	case WithinSubjects:
		return "within-subjects"
	}
	return fmt.Sprintf("TestType(%d)", int(t))
}

// A Comparison is the result of testing whether two samples have the
// same mean.
type Comparison struct {
	// Test is the t-test that produced this result.
	Test TestType

	// T is the t statistic and DoF its degrees of freedom.
	T, DoF float64

	// P is the two-sided p-value of the null hypothesis that the
	// two samples have equal means.
	P float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Significance is P classified by the Thresholds passed to
	// Compare.
	Significance Significance
}

// String summarizes the comparison in the form
// "t=T df=DF p=0.PPP n=N1+N2" followed by any stars.
func (c Comparison) String() string {
	s := fmt.Sprintf("t=%.3f df=%g p=%.3f ", c.T, c.DoF, c.P)
	if c.N1 == c.N2 {
		s += fmt.Sprintf("n=%d", c.N1)
	} else {
		s += fmt.Sprintf("n=%d+%d", c.N1, c.N2)
	}
	if stars := c.Significance.String(); stars != "" {
		s += " " + stars
	}
	return s
}

// Compare tests whether s1 and s2 have equal means using test.
// Significance is classified with thr, or DefaultThresholds if thr is
// nil. Neither sample is modified.
//
// Input is validated before any test statistic is computed. In
// particular, a paired test on samples of different lengths fails
// with ErrLengthMismatch.
func Compare(test TestType, s1, s2 []float64, thr *Thresholds) (Comparison, error) {
	const op = "t-test"
	if test != Students && test != WithinSubjects {
		return Comparison{}, invalid(op, ErrUnknownTest, "%v", test)
	}
	for _, s := range [][]float64{s1, s2} {
		if len(s) == 0 {
			return Comparison{}, invalid(op, ErrSampleSize, "empty sample")
		}
		if err := checkFinite(op, s); err != nil {
			return Comparison{}, err
		}
	}
	if test == WithinSubjects && len(s1) != len(s2) {
		return Comparison{}, invalid(op, ErrLengthMismatch, "%d != %d", len(s1), len(s2))
	}
	if thr == nil {
		thr = &DefaultThresholds
	}

	var r *stats.TTestResult
	var err error
	switch test {
	case Students:
		r, err = stats.TwoSampleTTest(stats.Sample{Xs: s1}, stats.Sample{Xs: s2}, stats.LocationDiffers)
	case WithinSubjects:
		r, err = stats.PairedTTest(s1, s2, 0, stats.LocationDiffers)
	}
	if err != nil {
		return Comparison{}, fmt.Errorf("%s %v: %w", op, test, err)
	}
	return Comparison{
		Test:         test,
		T:            r.T,
		DoF:          r.DoF,
		P:            r.P,
		N1:           len(s1),
		N2:           len(s2),
		Significance: thr.Classify(r.P),
	}, nil
}
