package convert_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc/convert"
)

func TestBase(t *testing.T) {
	cases := []struct {
		s        string
		from, to int
		want     string
	}{
		{"255", 10, 16, "FF"},
		{"ff", 16, 2, "11111111"},
		{"0xFF", 16, 10, "255"},
		{" -1010 ", 2, 10, "-10"},
		{"+z", 36, 10, "35"},
		{"12z", 10, 10, "12"},
		{"1019", 2, 8, "5"},
		{"777", 8, 36, "E7"},
		{"18446744073709551616", 10, 16, "10000000000000000"},
		{"0", 10, 2, "0"},
	}
	for _, c := range cases {
		b, err := convert.Base(c.s, c.from, c.to)
		if err != nil {
			t.Errorf("%q from %d to %d: %v", c.s, c.from, c.to, err)
			continue
		}
		if b.Out != c.want {
			t.Errorf("%q from %d to %d: want %q, got %q", c.s, c.from, c.to, c.want, b.Out)
		}
	}
	b, _ := convert.Base("255", 10, 16)
	want := "input: 255 (base 10)\n\n1) to decimal:\n255_(base 10) = 255_(base 10)\n\n2) to the target base:\n255_(base 10) = FF_(base 16)"
	if b.Steps() != want {
		t.Errorf("wrong steps:\n%s\nwant:\n%s", b.Steps(), want)
	}
}

func TestBaseErrors(t *testing.T) {
	cases := []struct {
		s        string
		from, to int
		err      error
	}{
		{"", 10, 2, convert.ErrInput},
		{"z", 10, 2, convert.ErrInput},
		{"-", 10, 2, convert.ErrInput},
		{"0x", 16, 2, convert.ErrInput},
		{"1", 1, 2, convert.ErrUnit},
		{"1", 10, 37, convert.ErrUnit},
	}
	for _, c := range cases {
		if _, err := convert.Base(c.s, c.from, c.to); !errors.Is(err, c.err) {
			t.Errorf("%q from %d to %d: want %v, got %v", c.s, c.from, c.to, c.err, err)
		}
	}
}

func TestLength(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{1, "mm", "m", 0.001},
		{1, "km", "mm", 1e6},
		{12, "in", "ft", 1},
		{1, "ft", "cm", 30.48},
		{5, "m", "m", 5},
	}
	for _, c := range cases {
		r, err := convert.Length(c.v, c.from, c.to)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(r.Out-c.want) > 1e-9*math.Abs(c.want) {
			t.Errorf("%g %s in %s: want %g, got %g", c.v, c.from, c.to, c.want, r.Out)
		}
	}
	r, _ := convert.Length(150, "cm", "m")
	want := "1) to the base unit (m):\n150 cm → 1.5 m\n\n2) to the target unit:\n1.5 m → 1.5 m"
	if r.Steps() != want {
		t.Errorf("wrong steps:\n%s\nwant:\n%s", r.Steps(), want)
	}
	if _, err := convert.Length(1, "mi", "m"); !errors.Is(err, convert.ErrUnit) {
		t.Errorf("unknown unit: %v", err)
	}
}

func TestMass(t *testing.T) {
	r, err := convert.Mass(1, "lb", "g")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Out-453.59237) > 1e-9 {
		t.Errorf("1 lb = %g g", r.Out)
	}
	if _, err := convert.Mass(math.NaN(), "g", "kg"); !errors.Is(err, convert.ErrInput) {
		t.Errorf("NaN mass: %v", err)
	}
	if _, err := convert.Mass(1, "g", "oz"); !errors.Is(err, convert.ErrUnit) {
		t.Errorf("unknown unit: %v", err)
	}
}

func TestTemperature(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{100, "C", "F", 212},
		{32, "F", "C", 0},
		{0, "K", "C", -273.15},
		{-40, "F", "C", -40},
		{25, "C", "K", 298.15},
		{212, "F", "K", 373.15},
	}
	for _, c := range cases {
		r, err := convert.Temperature(c.v, c.from, c.to)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(r.Out-c.want) > 1e-9 {
			t.Errorf("%g %s in %s: want %g, got %g", c.v, c.from, c.to, c.want, r.Out)
		}
	}
	if _, err := convert.Temperature(1, "R", "C"); !errors.Is(err, convert.ErrUnit) {
		t.Errorf("unknown unit: %v", err)
	}
}
