package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Format renders a number for display and for use as input to further
// expressions. Numbers whose magnitude is at least 1e12 or below 1e-6 use
// scientific notation with up to ten fractional digits, e.g. 1.5e+12; others
// use fixed notation with up to twelve. Trailing zeros are never written.
// Infinities and NaN are written as Infinity, -Infinity, and NaN.
func Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		// Includes negative zero.
		return "0"
	}
	sign := ""
	if x < 0 {
		sign = "-"
	}
	ax := math.Abs(x)
	if ax >= 1e12 || ax < 1e-6 {
		return sign + formatExp(ax)
	}
	n := roundScaled(ax, 12)
	d := n.String()
	if len(d) <= 12 {
		d = strings.Repeat("0", 13-len(d)) + d
	}
	return sign + trimFrac(d[:len(d)-12]+"."+d[len(d)-12:])
}

var (
	half    = big.NewRat(1, 2)
	tenTo10 = new(big.Int).Exp(big.NewInt(10), big.NewInt(10), nil)
	tenTo11 = new(big.Int).Exp(big.NewInt(10), big.NewInt(11), nil)
	bigTen  = big.NewInt(10)
)

// roundScaled returns ax·10^k rounded to an integer, halves rounding up. The
// product is exact, so a float64 lying exactly halfway between two outputs
// rounds away from zero rather than to even as strconv does.
func roundScaled(ax float64, k int) *big.Int {
	r := new(big.Rat).SetFloat64(ax)
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(abs(k))), nil)
	if k >= 0 {
		r.Mul(r, new(big.Rat).SetInt(p))
	} else {
		r.Quo(r, new(big.Rat).SetInt(p))
	}
	r.Add(r, half)
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// formatExp formats ax, which is positive, with ten fractional mantissa
// digits and an unpadded signed exponent.
func formatExp(ax float64) string {
	e := int(math.Floor(math.Log10(ax)))
	var n *big.Int
	// Log10 can be off by one near powers of ten.
	for i := 0; i < 4; i++ {
		n = roundScaled(ax, 10-e)
		switch {
		case n.Cmp(tenTo11) >= 0:
			e++
			continue
		case n.Cmp(tenTo10) < 0:
			e--
			continue
		}
		break
	}
	d := n.String()
	mant := trimFrac(d[:1] + "." + d[1:])
	if e < 0 {
		return mant + "e-" + strconv.Itoa(-e)
	}
	return mant + "e+" + strconv.Itoa(e)
}

func abs(k int) int {
	if k < 0 {
		return -k
	}
	return k
}

// trimFrac removes trailing zeros after a decimal point, and the point itself
// if nothing follows it.
func trimFrac(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
