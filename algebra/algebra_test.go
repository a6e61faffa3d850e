package algebra_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc/algebra"
)

func TestLinear(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		kind algebra.Kind
		x    float64
	}{
		{"simple", 2, 4, algebra.Unique, -2},
		{"frac", 4, 1, algebra.Unique, -0.25},
		{"none", 0, 3, algebra.NoSolution, 0},
		{"all", 0, 0, algebra.Infinite, 0},
		{"tiny", 1e-13, 1, algebra.NoSolution, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := algebra.SolveLinear(c.a, c.b)
			if err != nil {
				t.Fatal(err)
			}
			if r.Kind != c.kind || r.X != c.x {
				t.Errorf("want %v %g, got %v %g", c.kind, c.x, r.Kind, r.X)
			}
		})
	}
	r, _ := algebra.SolveLinear(2, 4)
	want := "equation: 2x + 4 = 0\nmove: 2x = -4\ndivide: x = -4 / 2\nresult: x = -2"
	if got := r.Steps(); got != want {
		t.Errorf("wrong steps:\n%s\nwant:\n%s", got, want)
	}
}

func TestQuadratic(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		kind    algebra.Kind
		x1, x2  float64
	}{
		{"two", 1, -3, 2, algebra.TwoReal, 2, 1},
		{"double", 1, 2, 1, algebra.Unique, -1, -1},
		{"neg-a", -1, 0, 4, algebra.TwoReal, -2, 2},
		{"linear", 0, 2, -6, algebra.Unique, 3, 3},
		{"linear-none", 0, 0, 1, algebra.NoSolution, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := algebra.SolveQuadratic(c.a, c.b, c.c)
			if err != nil {
				t.Fatal(err)
			}
			if r.Kind != c.kind {
				t.Errorf("want %v, got %v", c.kind, r.Kind)
			}
			if math.Abs(r.X1-c.x1) > 1e-12 || math.Abs(r.X2-c.x2) > 1e-12 {
				t.Errorf("want roots %g %g, got %g %g", c.x1, c.x2, r.X1, r.X2)
			}
		})
	}
}

func TestQuadraticComplex(t *testing.T) {
	for _, a := range []float64{1, -1} {
		r, err := algebra.SolveQuadratic(a, 2*a, 5*a)
		if err != nil {
			t.Fatal(err)
		}
		if r.Kind != algebra.ComplexPair {
			t.Fatalf("a=%g: want complex roots, got %v", a, r.Kind)
		}
		if got := r.Complex(); got != "-1 ± 2i" {
			t.Errorf("a=%g: want -1 ± 2i, got %q", a, got)
		}
		if !strings.Contains(r.Steps(), "D = -16") {
			t.Errorf("a=%g: steps lack the discriminant:\n%s", a, r.Steps())
		}
	}
}

func TestQuadraticSteps(t *testing.T) {
	r, _ := algebra.SolveQuadratic(1, -3, 2)
	want := "equation: 1x² + -3x + 2 = 0\n" +
		"discriminant: D = b² - 4ac\n" +
		"D = (-3)² - 4·1·2\n" +
		"D = 1\n" +
		"\n" +
		"formula: x = (-b ± √D) / (2a)\n" +
		"√D = 1\n" +
		"x1 = (3 + 1) / 2 = 2\n" +
		"x2 = (3 - 1) / 2 = 1"
	if got := r.Steps(); got != want {
		t.Errorf("wrong steps:\n%s\nwant:\n%s", got, want)
	}
}

func TestSystem(t *testing.T) {
	r, err := algebra.SolveSystem(2, 1, 5, 1, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != algebra.Unique || r.Det != -3 || r.X != 2 || r.Y != 1 {
		t.Errorf("wrong solution %+v", r)
	}
	if !strings.HasSuffix(r.Steps(), "x = detX / det = 2\ny = detY / det = 1") {
		t.Errorf("wrong steps:\n%s", r.Steps())
	}
	r, err = algebra.SolveSystem(1, 2, 3, 2, 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != algebra.Singular {
		t.Errorf("dependent system has kind %v", r.Kind)
	}
	if !strings.HasSuffix(r.Steps(), "no solution or infinitely many") {
		t.Errorf("wrong steps:\n%s", r.Steps())
	}
}

func TestInvalid(t *testing.T) {
	if _, err := algebra.SolveLinear(math.NaN(), 1); !errors.Is(err, algebra.ErrInput) {
		t.Errorf("linear: %v", err)
	}
	if _, err := algebra.SolveQuadratic(1, math.Inf(1), 1); !errors.Is(err, algebra.ErrInput) {
		t.Errorf("quadratic: %v", err)
	}
	if _, err := algebra.SolveSystem(1, 2, 3, 4, 5, math.Inf(-1)); !errors.Is(err, algebra.ErrInput) {
		t.Errorf("system: %v", err)
	}
}
