package discrete_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/calc/discrete"
)

func TestGCD(t *testing.T) {
	g, steps := discrete.GCD(48, -18)
	if g != 6 {
		t.Errorf("gcd(48, -18) = %d", g)
	}
	want := []string{"48 = 18 * 2 + 12", "18 = 12 * 1 + 6", "12 = 6 * 2 + 0"}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("wrong steps (-want +got):\n%s", diff)
	}
	g, steps = discrete.GCD(0, 7)
	if g != 7 || len(steps) != 1 {
		t.Errorf("gcd(0, 7) = %d with %q", g, steps)
	}
	if g, _ := discrete.GCD(7, 0); g != 7 {
		t.Errorf("gcd(7, 0) = %d", g)
	}
}

func TestLCM(t *testing.T) {
	cases := []struct{ a, b, l int64 }{
		{4, 6, 12},
		{21, 6, 42},
		{-3, 5, 15},
		{0, 5, 0},
		{7, 7, 7},
	}
	for _, c := range cases {
		if l := discrete.LCM(c.a, c.b); l != c.l {
			t.Errorf("lcm(%d, %d): want %d, got %d", c.a, c.b, c.l, l)
		}
	}
}

func TestPermComb(t *testing.T) {
	cases := []struct {
		n, r     int64
		npr, ncr string
	}{
		{5, 2, "20", "10"},
		{5, 0, "1", "1"},
		{5, 5, "120", "1"},
		{0, 0, "1", "1"},
		{52, 5, "311875200", "2598960"},
		{20, 10, "670442572800", "184756"},
	}
	for _, c := range cases {
		p, err := discrete.Perm(c.n, c.r)
		if err != nil {
			t.Fatal(err)
		}
		if p.String() != c.npr {
			t.Errorf("%dP%d: want %s, got %s", c.n, c.r, c.npr, p)
		}
		k, err := discrete.Comb(c.n, c.r)
		if err != nil {
			t.Fatal(err)
		}
		if k.String() != c.ncr {
			t.Errorf("%dC%d: want %s, got %s", c.n, c.r, c.ncr, k)
		}
	}
	if k, _ := discrete.Comb(100, 50); k.String() != "100891344545564193334812497256" {
		t.Errorf("100C50 = %s", k)
	}
	for _, nr := range [][2]int64{{3, 4}, {-1, 0}, {3, -1}} {
		if _, err := discrete.Perm(nr[0], nr[1]); !errors.Is(err, discrete.ErrInput) {
			t.Errorf("P(%d, %d): %v", nr[0], nr[1], err)
		}
		if _, err := discrete.Comb(nr[0], nr[1]); !errors.Is(err, discrete.ErrInput) {
			t.Errorf("C(%d, %d): %v", nr[0], nr[1], err)
		}
	}
}

func TestPrimeCheck(t *testing.T) {
	cases := []struct {
		n       int64
		prime   bool
		divisor int64
		s       string
	}{
		{0, false, 0, "0 is not prime (primes start at 2)"},
		{1, false, 0, "1 is not prime (primes start at 2)"},
		{2, true, 0, "2 is prime"},
		{3, true, 0, "3 is prime\n(checked odd numbers 3..1)"},
		{10, false, 2, "10 is divisible by 2 → not prime"},
		{91, false, 7, "91 is divisible by 7 → not prime\n(checked odd numbers 3..9)"},
		{97, true, 0, "97 is prime\n(checked odd numbers 3..9)"},
		{1000003, true, 0, "1000003 is prime\n(checked odd numbers 3..1000)"},
	}
	for _, c := range cases {
		p, err := discrete.PrimeCheck(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if p.Prime != c.prime || p.Divisor != c.divisor {
			t.Errorf("%d: want %t %d, got %t %d", c.n, c.prime, c.divisor, p.Prime, p.Divisor)
		}
		if p.String() != c.s {
			t.Errorf("%d: want %q, got %q", c.n, c.s, p.String())
		}
	}
	m, err := discrete.PrimeCheck(math.MaxInt64)
	if err != nil {
		t.Fatal(err)
	}
	if m.Prime || m.Divisor != 7 || m.Limit != 3037000499 {
		t.Errorf("MaxInt64: got %+v", m)
	}
	if _, err := discrete.PrimeCheck(-5); !errors.Is(err, discrete.ErrInput) {
		t.Errorf("negative: %v", err)
	}
}

func TestDivisors(t *testing.T) {
	cases := []struct {
		n    int64
		divs []int64
	}{
		{1, []int64{1}},
		{12, []int64{1, 2, 3, 4, 6, 12}},
		{36, []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}},
		{13, []int64{1, 13}},
	}
	for _, c := range cases {
		d, err := discrete.Divisors(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(c.divs, d); diff != "" {
			t.Errorf("divisors of %d (-want +got):\n%s", c.n, diff)
		}
	}
	if _, err := discrete.Divisors(0); !errors.Is(err, discrete.ErrInput) {
		t.Errorf("zero: %v", err)
	}
}

func TestFactorize(t *testing.T) {
	cases := []struct {
		n     int64
		s     string
		steps []string
	}{
		{12, "2^2 * 3", []string{"12 ÷ 2 = 6", "6 ÷ 2 = 3", "the remaining 3 is prime and is a factor"}},
		{360, "2^3 * 3^2 * 5", []string{"360 ÷ 2 = 180", "180 ÷ 2 = 90", "90 ÷ 2 = 45", "45 ÷ 3 = 15", "15 ÷ 3 = 5", "the remaining 5 is prime and is a factor"}},
		{49, "7^2", []string{"49 ÷ 7 = 7", "7 ÷ 7 = 1"}},
		{13, "13", []string{"13 is prime or cannot be divided further"}},
		{1, "", []string{"1 is prime or cannot be divided further"}},
		{math.MaxInt64, "7^2 * 73 * 127 * 337 * 92737 * 649657", []string{
			"9223372036854775807 ÷ 7 = 1317624576693539401",
			"1317624576693539401 ÷ 7 = 188232082384791343",
			"188232082384791343 ÷ 73 = 2578521676503991",
			"2578521676503991 ÷ 127 = 20303320287433",
			"20303320287433 ÷ 337 = 60247241209",
			"60247241209 ÷ 92737 = 649657",
			"the remaining 649657 is prime and is a factor",
		}},
	}
	for _, c := range cases {
		r, err := discrete.Factorize(c.n)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != c.s {
			t.Errorf("%d: want %q, got %q", c.n, c.s, r.String())
		}
		if diff := cmp.Diff(c.steps, r.Steps); diff != "" {
			t.Errorf("%d: wrong steps (-want +got):\n%s", c.n, diff)
		}
	}
}
