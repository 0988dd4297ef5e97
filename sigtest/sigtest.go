// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sigtest runs the hypothesis tests used for exploratory
// analysis of experimental samples: a Shapiro-Wilk normality test and
// Student's or paired t-tests for comparing means.
//
// The test math itself lives in go-moremath and go-onlinestats. This
// package validates input, reports results in a uniform shape, and
// maps p-values to the conventional significance stars.
//
// Caller mistakes (too few observations, non-finite values, an
// unknown test, mismatched paired samples) are reported as
// *InvalidInputError. Failures inside the statistics libraries are
// returned wrapped, so their sentinel errors remain visible to
// errors.Is.
package sigtest

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSampleSize indicates a sample has too few or too many
	// observations for the requested test.
	ErrSampleSize = errors.New("wrong number of observations")

	// ErrNonFinite indicates a sample contains NaN or ±Inf.
	ErrNonFinite = errors.New("non-finite observation")

	// ErrConstant indicates every observation in a sample is equal.
	ErrConstant = errors.New("all observations are equal")

	// ErrUnknownTest indicates an unrecognized TestType.
	ErrUnknownTest = errors.New("unknown test type")

	// ErrLengthMismatch indicates that paired samples have
	// different lengths.
	ErrLengthMismatch = errors.New("paired samples have different lengths")

	// ErrDuplicateName indicates two samples were given the same
	// label, so they cannot be told apart once combined.
	ErrDuplicateName = errors.New("samples have the same name")
)

// An InvalidInputError reports input that an operation cannot accept.
type InvalidInputError struct {
	// Op is the operation that rejected the input, such as
	// "shapiro-wilk" or "t-test".
	Op string

	// Err describes the problem. It wraps one of the Err*
	// sentinels in this package.
	Err error
}

func (e *InvalidInputError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func invalid(op string, sentinel error, format string, args ...interface{}) *InvalidInputError {
	if format == "" {
		return &InvalidInputError{op, sentinel}
	}
	return &InvalidInputError{op, fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)}
}

// checkFinite returns an *InvalidInputError if xs contains NaN or an
// infinity.
func checkFinite(op string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return invalid(op, ErrNonFinite, "observation %d is %v", i, x)
		}
	}
	return nil
}

// A Thresholds configures the alpha levels used to classify a
// p-value.
//
// This should be initialized from DefaultThresholds.
type Thresholds struct {
	// Alphas are the cutoffs for one, two and three stars, in
	// order of increasing strictness. A p-value strictly below
	// Alphas[i] earns i+1 stars.
	Alphas [3]float64
}

// DefaultThresholds are the conventional 0.05, 0.01 and 0.001 cutoffs.
var DefaultThresholds = Thresholds{
	Alphas: [3]float64{0.05, 0.01, 0.001},
}

// Classify returns the significance tier of p-value p. The strictest
// threshold is checked first. A NaN p-value is never significant.
func (t *Thresholds) Classify(p float64) Significance {
	for i := len(t.Alphas) - 1; i >= 0; i-- {
		if p < t.Alphas[i] {
			return Significance(i + 1)
		}
	}
	return NotSignificant
}

// A Significance is the number of stars earned by a p-value.
type Significance int

const (
	NotSignificant Significance = iota
	Significant                 // *
	VerySignificant             // **
	HighlySignificant           // ***
)

// Significant reports whether s rejects the null hypothesis at the
// weakest configured alpha.
func (s Significance) Significant() bool {
	return s > NotSignificant
}

// String returns the star marker for s, or "" if s is not
// significant.
func (s Significance) String() string {
	switch s {
	case Significant:
		return "*"
	case VerySignificant:
		return "**"
	case HighlySignificant:
		return "***"
	}
	return ""
}

// Stars returns the marker for p under DefaultThresholds and whether
// p is significant.
func Stars(p float64) (string, bool) {
	s := DefaultThresholds.Classify(p)
	return s.String(), s.Significant()
}
