// Package stats computes descriptive statistics of a list of numbers.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calc"
)

// ErrEmpty is returned when there are no values to describe.
var ErrEmpty = errors.New("no values")

// ParseList parses a comma-separated list of numbers. Items that are blank
// or not finite numbers are skipped.
func ParseList(s string) []float64 {
	var r []float64
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		x, ok := leadingFloat(item)
		if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		r = append(r, x)
	}
	return r
}

// leadingFloat parses the longest prefix of s that is a number, so that
// "12kg" reads as 12.
func leadingFloat(s string) (float64, bool) {
	for n := len(s); n > 0; n-- {
		x, err := strconv.ParseFloat(s[:n], 64)
		if err == nil {
			return x, true
		}
	}
	return 0, false
}

// Summary describes a list of numbers.
type Summary struct {
	// Values is the input in its original order.
	Values []float64
	// Sorted is the input in ascending order.
	Sorted []float64
	N      int
	Sum    float64
	Mean   float64
	Median float64
	// Mode is the first value in input order that reaches the greatest
	// frequency, and ModeCount is that frequency.
	Mode      float64
	ModeCount int
	Min, Max  float64
	Range     float64
	// Variance and Std are the population variance and standard deviation.
	Variance float64
	Std      float64
	// Q1 and Q3 are the quartiles, interpolated linearly between ranks.
	Q1, Q3 float64
	// SampleVariance and SampleStd use n-1 in the denominator. They are NaN
	// when there are fewer than two values.
	SampleVariance float64
	SampleStd      float64
}

// Describe computes summary statistics of xs.
func Describe(xs []float64) (*Summary, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrEmpty
	}
	s := Summary{
		Values: append([]float64(nil), xs...),
		Sorted: append([]float64(nil), xs...),
		N:      n,
	}
	sort.Float64s(s.Sorted)
	for _, x := range xs {
		s.Sum += x
	}
	s.Mean = s.Sum / float64(n)
	s.Min, s.Max = s.Sorted[0], s.Sorted[n-1]
	s.Range = s.Max - s.Min
	if n%2 == 1 {
		s.Median = s.Sorted[(n-1)/2]
	} else {
		s.Median = (s.Sorted[n/2-1] + s.Sorted[n/2]) / 2
	}
	freq := make(map[float64]int, n)
	for _, x := range xs {
		freq[x]++
	}
	for _, x := range xs {
		if c := freq[x]; c > s.ModeCount {
			s.Mode, s.ModeCount = x, c
		}
	}
	var ss float64
	for _, x := range xs {
		ss += (x - s.Mean) * (x - s.Mean)
	}
	s.Variance = ss / float64(n)
	s.Std = math.Sqrt(s.Variance)
	s.Q1 = Quantile(s.Sorted, 0.25)
	s.Q3 = Quantile(s.Sorted, 0.75)
	s.SampleVariance, s.SampleStd = math.NaN(), math.NaN()
	if n >= 2 {
		s.SampleVariance = ss / float64(n-1)
		s.SampleStd = math.Sqrt(s.SampleVariance)
	}
	return &s, nil
}

// Quantile returns the q-quantile of sorted data, interpolating linearly
// between the two nearest ranks.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := float64(n-1) * q
	lo, hi := math.Floor(pos), math.Ceil(pos)
	if lo == hi {
		return sorted[int(lo)]
	}
	w := pos - lo
	return sorted[int(lo)]*(1-w) + sorted[int(hi)]*w
}

// Steps describes the statistics with their formulas.
func (s *Summary) Steps() string {
	f := calc.Format
	join := func(xs []float64, sep string) string {
		p := make([]string, len(xs))
		for i, x := range xs {
			p[i] = f(x)
		}
		return strings.Join(p, sep)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "data (%d values):\n[sorted] %s\n\n", s.N, join(s.Sorted, ", "))
	fmt.Fprintf(&b, "sum:\nsum = %s = %s\n\n", join(s.Values, " + "), f(s.Sum))
	fmt.Fprintf(&b, "mean:\nmean = sum / n = %s / %d = %s\n\n", f(s.Sum), s.N, f(s.Mean))
	fmt.Fprintf(&b, "median:\nmedian = %s\n\n", f(s.Median))
	fmt.Fprintf(&b, "mode:\nmode = %s (frequency %d)\n\n", f(s.Mode), s.ModeCount)
	fmt.Fprintf(&b, "min/max/range:\nmin = %s, max = %s, range = %s\n\n", f(s.Min), f(s.Max), f(s.Range))
	fmt.Fprintf(&b, "population variance:\nvar = (Σ(x-mean)²) / n = %s\n\n", f(s.Variance))
	fmt.Fprintf(&b, "standard deviation:\nstd = √var = %s\n\n", f(s.Std))
	fmt.Fprintf(&b, "quartiles:\nQ1 = %s\nQ3 = %s", f(s.Q1), f(s.Q3))
	if s.N >= 2 {
		fmt.Fprintf(&b, "\n\n[sample statistics]\nsample variance s² = %s\nsample standard deviation s = %s",
			f(s.SampleVariance), f(s.SampleStd))
	}
	return b.String()
}
