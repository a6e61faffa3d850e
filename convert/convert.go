// Package convert converts integers between bases and quantities between
// units of length, mass, and temperature.
package convert

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/calc"
)

var (
	// ErrUnit is wrapped by errors for unknown units or bases.
	ErrUnit = errors.New("unknown unit")
	// ErrInput is wrapped by errors for values that cannot be converted.
	ErrInput = errors.New("invalid input")
)

// BaseConversion is an integer rewritten from one base to another.
type BaseConversion struct {
	In       string
	From, To int
	Value    *big.Int
	Out      string
}

// Base converts the integer written at the start of s in base from into base
// to, using upper-case digits. Leading whitespace, a sign, and for base 16 a
// 0x prefix are accepted, and reading stops at the first character that is
// not a digit in the base, so "12z" in base 10 is 12.
func Base(s string, from, to int) (*BaseConversion, error) {
	if from < 2 || from > 36 {
		return nil, fmt.Errorf("%w: base %d", ErrUnit, from)
	}
	if to < 2 || to > 36 {
		return nil, fmt.Errorf("%w: base %d", ErrUnit, to)
	}
	in := strings.TrimSpace(s)
	t := in
	neg := false
	if t != "" && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if from == 16 && len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		t = t[2:]
	}
	n := 0
	for n < len(t) && digit(t[n]) < from {
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %q has no digits in base %d", ErrInput, s, from)
	}
	v, ok := new(big.Int).SetString(t[:n], from)
	if !ok {
		panic("convert: digit scan accepted " + t[:n])
	}
	if neg {
		v.Neg(v)
	}
	return &BaseConversion{In: in, From: from, To: to, Value: v, Out: strings.ToUpper(v.Text(to))}, nil
}

// digit returns the value of c as a digit, or 99 if it is not one.
func digit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

func (b *BaseConversion) Steps() string {
	return fmt.Sprintf("input: %s (base %d)\n\n"+
		"1) to decimal:\n%s_(base %d) = %s_(base 10)\n\n"+
		"2) to the target base:\n%s_(base 10) = %s_(base %d)",
		b.In, b.From,
		b.In, b.From, b.Value, b.Value, b.Out, b.To)
}

// Conversion is a quantity converted between units through a base unit.
type Conversion struct {
	V        float64
	From, To string
	// Base is the quantity in BaseUnit.
	Base     float64
	BaseUnit string
	Out      float64
}

// factor relates a unit to its base unit. A sub-unit is stored by how many
// fit in the base unit, so that 1 mm is exactly 0.001 m.
type factor struct {
	k   float64
	sub bool
}

func (f factor) toBase(v float64) float64 {
	if f.sub {
		return v / f.k
	}
	return v * f.k
}

func (f factor) fromBase(v float64) float64 {
	if f.sub {
		return v * f.k
	}
	return v / f.k
}

var (
	lengths = map[string]factor{
		"mm": {1000, true},
		"cm": {100, true},
		"m":  {1, false},
		"km": {1000, false},
		"in": {0.0254, false},
		"ft": {0.3048, false},
	}
	masses = map[string]factor{
		"g":  {1000, true},
		"kg": {1, false},
		"lb": {0.45359237, false},
	}
)

// LengthUnits, MassUnits, and TempUnits list the accepted unit names.
var (
	LengthUnits = []string{"mm", "cm", "m", "km", "in", "ft"}
	MassUnits   = []string{"g", "kg", "lb"}
	TempUnits   = []string{"C", "F", "K"}
)

func linear(units map[string]factor, base string, v float64, from, to string) (*Conversion, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: value is not finite", ErrInput)
	}
	kf, ok := units[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnit, from)
	}
	kt, ok := units[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnit, to)
	}
	c := Conversion{V: v, From: from, To: to, BaseUnit: base}
	c.Base = kf.toBase(v)
	c.Out = kt.fromBase(c.Base)
	return &c, nil
}

// Length converts a length between mm, cm, m, km, in, and ft via metres.
func Length(v float64, from, to string) (*Conversion, error) {
	return linear(lengths, "m", v, from, to)
}

// Mass converts a mass between g, kg, and lb via kilograms.
func Mass(v float64, from, to string) (*Conversion, error) {
	return linear(masses, "kg", v, from, to)
}

// Temperature converts a temperature between C, F, and K via degrees
// Celsius.
func Temperature(v float64, from, to string) (*Conversion, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: value is not finite", ErrInput)
	}
	c := Conversion{V: v, From: from, To: to, BaseUnit: "C"}
	switch from {
	case "C":
		c.Base = v
	case "F":
		c.Base = (v - 32) * 5 / 9
	case "K":
		c.Base = v - 273.15
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnit, from)
	}
	switch to {
	case "C":
		c.Out = c.Base
	case "F":
		c.Out = c.Base*9/5 + 32
	case "K":
		c.Out = c.Base + 273.15
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnit, to)
	}
	return &c, nil
}

func (c *Conversion) Steps() string {
	f := calc.Format
	if c.BaseUnit == "C" {
		return fmt.Sprintf("conversion:\n%s %s → %s %s\n\n(all conversions go through °C)",
			f(c.V), c.From, f(c.Out), c.To)
	}
	return fmt.Sprintf("1) to the base unit (%s):\n%s %s → %s %s\n\n"+
		"2) to the target unit:\n%s %s → %s %s",
		c.BaseUnit, f(c.V), c.From, f(c.Base), c.BaseUnit,
		f(c.Base), c.BaseUnit, f(c.Out), c.To)
}
