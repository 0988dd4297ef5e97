// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigtest

import (
	"fmt"
	"sort"

	onlinestats "github.com/dgryski/go-onlinestats"
)

// Sample size bounds of the Royston (1995) Shapiro-Wilk algorithm.
const (
	MinShapiroWilk = 3
	MaxShapiroWilk = 5000
)

// A Normality is the result of a Shapiro-Wilk test.
type Normality struct {
	// W is the test statistic, in (0, 1]. Values near 1 are
	// consistent with a normal distribution.
	W float64

	// P is the p-value of the null hypothesis that the sample was
	// drawn from a normal distribution.
	P float64

	// N is the sample size.
	N int
}

func (n Normality) String() string {
	return fmt.Sprintf("W=%.4f p=%.3f n=%d", n.W, n.P, n.N)
}

// ShapiroWilk tests whether sample was drawn from a normal
// distribution. sample is not modified.
func ShapiroWilk(sample []float64) (Normality, error) {
	const op = "shapiro-wilk"
	n := len(sample)
	if n < MinShapiroWilk {
		return Normality{}, invalid(op, ErrSampleSize, "need >= %d observations, have %d", MinShapiroWilk, n)
	}
	if n > MaxShapiroWilk {
		return Normality{}, invalid(op, ErrSampleSize, "need <= %d observations, have %d", MaxShapiroWilk, n)
	}
	if err := checkFinite(op, sample); err != nil {
		return Normality{}, err
	}

	xs := append([]float64(nil), sample...)
	sort.Float64s(xs)
	if xs[0] == xs[n-1] {
		return Normality{}, invalid(op, ErrConstant, "")
	}

	w, p, err := onlinestats.SWilk(xs)
	if err != nil {
		return Normality{}, fmt.Errorf("%s: %w", op, err)
	}
	return Normality{W: w, P: p, N: n}, nil
}
