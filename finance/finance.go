// Package finance computes simple and compound interest and loan
// amortization.
//
// Rates are given in percent. Growth factors (1+i)^n are computed in
// extended precision, since for small periodic rates (1+i)^n - 1 otherwise
// loses most of its digits to cancellation.
package finance

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zephyrtronium/calc"
)

// ErrInput is wrapped by errors for amounts, rates, or terms out of range.
var ErrInput = errors.New("invalid input")

// Prec is the precision in bits of growth factor computations.
const Prec = 128

var f = calc.Format

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// growth returns (1+i)^n and (1+i)^n - 1.
func growth(i, n float64) (g, gm1 float64) {
	if n == 0 || i == 0 {
		return 1, 0
	}
	if i <= -1 {
		// Pow of a non-positive base is outside the extended precision
		// domain.
		g = math.Pow(1+i, n)
		return g, g - 1
	}
	one := new(big.Float).SetPrec(Prec).SetInt64(1)
	x := new(big.Float).SetPrec(Prec).SetFloat64(i)
	x.Add(x, one)
	y := new(big.Float).SetPrec(Prec).SetFloat64(n)
	z := bigfloat.Pow(new(big.Float).SetPrec(Prec), x, y)
	g, _ = z.Float64()
	gm1, _ = z.Sub(z, one).Float64()
	return g, gm1
}

// Simple is the result of simple interest on principal P at Rate per year
// for T years.
type Simple struct {
	P, Rate, T float64
	// A is the final amount P(1 + rT).
	A        float64
	Interest float64
}

// SimpleInterest computes simple interest. ratePct is the annual rate in
// percent; p and t must be non-negative.
func SimpleInterest(p, ratePct, t float64) (*Simple, error) {
	r := ratePct / 100
	if !finite(p, r, t) || p < 0 || t < 0 {
		return nil, fmt.Errorf("%w: principal and term must be non-negative numbers", ErrInput)
	}
	a := p * (1 + r*t)
	return &Simple{P: p, Rate: r, T: t, A: a, Interest: a - p}, nil
}

func (s *Simple) Steps() string {
	return fmt.Sprintf("simple interest:\nA = P(1 + r·t)\n\n"+
		"substituted:\nP=%s\nr=%s (=%s%%)\nt=%s years\n\n"+
		"A = %s · (1 + %s·%s)\nA = %s\ninterest I = A - P = %s",
		FormatMoney(s.P), f(s.Rate), f(s.Rate*100), f(s.T),
		FormatMoney(s.P), f(s.Rate), f(s.T),
		FormatMoney(s.A), FormatMoney(s.Interest))
}

// Compound is the result of compound interest on principal P at Rate per
// year for T years, compounded yearly and monthly.
type Compound struct {
	P, Rate, T float64
	// A is the final amount P(1 + r)^T.
	A        float64
	Interest float64
	// Monthly is the final amount compounded monthly, P(1 + r/12)^12T.
	Monthly float64
	// Diff is Monthly - A.
	Diff float64
}

// CompoundInterest computes compound interest. ratePct is the annual rate
// in percent; p and t must be non-negative.
func CompoundInterest(p, ratePct, t float64) (*Compound, error) {
	r := ratePct / 100
	if !finite(p, r, t) || p < 0 || t < 0 {
		return nil, fmt.Errorf("%w: principal and term must be non-negative numbers", ErrInput)
	}
	gy, _ := growth(r, t)
	gm, _ := growth(r/12, t*12)
	c := Compound{P: p, Rate: r, T: t, A: p * gy, Monthly: p * gm}
	c.Interest = c.A - p
	c.Diff = c.Monthly - c.A
	return &c, nil
}

func (c *Compound) Steps() string {
	return fmt.Sprintf("compound interest:\nA = P(1 + r)^t\n\n"+
		"substituted:\nP=%s\nr=%s (=%s%%)\nt=%s years\n\n"+
		"A = %s · (1+%s)^%s\nA = %s\ninterest I = A - P = %s\n\n"+
		"[monthly compounding]\nA_monthly = %s\ndifference = %s",
		FormatMoney(c.P), f(c.Rate), f(c.Rate*100), f(c.T),
		FormatMoney(c.P), f(c.Rate), f(c.T),
		FormatMoney(c.A), FormatMoney(c.Interest),
		FormatMoney(c.Monthly), FormatMoney(c.Diff))
}

// Loan is an equal-payment amortization of principal P over N months.
type Loan struct {
	P      float64
	Annual float64
	N      int
	// Rate is the monthly rate, Annual/12.
	Rate float64
	// Growth is (1+Rate)^N.
	Growth   float64
	Payment  float64
	Total    float64
	Interest float64
}

// Amortize computes the monthly payment of a loan of p at annualPct percent
// per year repaid over n months. p and n must be positive and the rate
// non-negative.
func Amortize(p, annualPct float64, n int) (*Loan, error) {
	annual := annualPct / 100
	if !finite(p, annual) || p <= 0 || annual < 0 || n <= 0 {
		return nil, fmt.Errorf("%w: need positive principal and term and non-negative rate", ErrInput)
	}
	l := Loan{P: p, Annual: annual, N: n, Rate: annual / 12}
	if l.Rate == 0 {
		l.Growth = 1
		l.Payment = p / float64(n)
	} else {
		g, gm1 := growth(l.Rate, float64(n))
		l.Growth = g
		l.Payment = p * l.Rate * g / gm1
	}
	l.Total = l.Payment * float64(n)
	l.Interest = l.Total - p
	return &l, nil
}

func (l *Loan) Steps() string {
	s := fmt.Sprintf("equal payments:\nmonthly rate i = annual rate/12\ni = %s / 12 = %s\n\n", f(l.Annual), f(l.Rate))
	if l.Rate == 0 {
		s += fmt.Sprintf("0%% rate → payment = P/n = %s / %d = %s\n", FormatMoney(l.P), l.N, FormatMoney(l.Payment))
	} else {
		s += fmt.Sprintf("formula:\nM = P · [ i(1+i)^n / ((1+i)^n - 1) ]\n\n"+
			"intermediate:\n(1+i)^n = (1+%s)^%d = %s\n\n"+
			"substituted:\nM = %s · [ %s·%s / (%s - 1) ]\nM = %s\n",
			f(l.Rate), l.N, f(l.Growth),
			FormatMoney(l.P), f(l.Rate), f(l.Growth), f(l.Growth), FormatMoney(l.Payment))
	}
	s += fmt.Sprintf("\ntotal repaid = M·n = %s · %d = %s\ntotal interest = total - principal = %s",
		FormatMoney(l.Payment), l.N, FormatMoney(l.Total), FormatMoney(l.Interest))
	return s
}

var won = message.NewPrinter(language.Korean)

// FormatMoney rounds x to a whole number of won, halves rounding up, and
// writes it with digit grouping, e.g. 1,234원.
func FormatMoney(x float64) string {
	if !finite(x) {
		return calc.Format(x)
	}
	v := math.Floor(x + 0.5)
	if v == 0 {
		return "0원"
	}
	if math.Abs(v) < 1<<53 {
		return won.Sprintf("%d", int64(v)) + "원"
	}
	return won.Sprintf("%.0f", v) + "원"
}
