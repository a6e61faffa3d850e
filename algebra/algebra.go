// Package algebra solves linear and quadratic equations and 2×2 linear
// systems, showing the work.
package algebra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zephyrtronium/calc"
)

// ErrInput is wrapped by errors for coefficients that are not finite.
var ErrInput = errors.New("invalid input")

// Epsilon is the magnitude below which a coefficient or determinant is
// treated as zero.
const Epsilon = 1e-12

// Kind classifies a solution set.
type Kind int8

const (
	// Unique is exactly one solution, or one root of multiplicity two.
	Unique Kind = iota
	// NoSolution is the empty set.
	NoSolution
	// Infinite is every value.
	Infinite
	// TwoReal is two real roots.
	TwoReal
	// ComplexPair is two complex conjugate roots.
	ComplexPair
	// Singular is a system with no solution or infinitely many.
	Singular
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case NoSolution:
		return "none"
	case Infinite:
		return "infinite"
	case TwoReal:
		return "two real"
	case ComplexPair:
		return "complex pair"
	case Singular:
		return "singular"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func zero(x float64) bool {
	return math.Abs(x) < Epsilon
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: coefficient %v is not finite", ErrInput, x)
		}
	}
	return nil
}

var f = calc.Format

// Linear is the solution of ax + b = 0.
type Linear struct {
	A, B float64
	Kind Kind
	X    float64
}

// SolveLinear solves ax + b = 0.
func SolveLinear(a, b float64) (*Linear, error) {
	if err := finite(a, b); err != nil {
		return nil, err
	}
	r := Linear{A: a, B: b}
	switch {
	case !zero(a):
		r.X = -b / a
	case zero(b):
		r.Kind = Infinite
	default:
		r.Kind = NoSolution
	}
	return &r, nil
}

// Steps describes how the solution was found.
func (r *Linear) Steps() string {
	switch r.Kind {
	case Infinite:
		return "0x + 0 = 0 → every x is a solution"
	case NoSolution:
		return "0x + b = 0 (b≠0) → no solution"
	}
	return fmt.Sprintf("equation: %sx + %s = 0\n"+
		"move: %sx = %s\n"+
		"divide: x = %s / %s\n"+
		"result: x = %s",
		f(r.A), f(r.B),
		f(r.A), f(-r.B),
		f(-r.B), f(r.A),
		f(r.X))
}

// Quadratic is the solution of ax² + bx + c = 0.
type Quadratic struct {
	A, B, C float64
	Kind    Kind
	// Linear is the solution when a is zero.
	Linear *Linear
	// D is the discriminant.
	D float64
	// X1 and X2 are the real roots, (-b + √D)/2a and (-b - √D)/2a.
	X1, X2 float64
	// Re and Im give the complex roots Re ± Im·i.
	Re, Im float64
}

// SolveQuadratic solves ax² + bx + c = 0. If a is zero, the equation is
// solved as bx + c = 0.
func SolveQuadratic(a, b, c float64) (*Quadratic, error) {
	if err := finite(a, b, c); err != nil {
		return nil, err
	}
	r := Quadratic{A: a, B: b, C: c}
	if zero(a) {
		l, _ := SolveLinear(b, c)
		r.Linear = l
		r.Kind = l.Kind
		r.X1, r.X2 = l.X, l.X
		return &r, nil
	}
	r.D = b*b - 4*a*c
	if r.D < 0 {
		r.Kind = ComplexPair
		r.Re = -b / (2 * a)
		r.Im = math.Abs(math.Sqrt(-r.D) / (2 * a))
		return &r, nil
	}
	s := math.Sqrt(r.D)
	r.X1 = (-b + s) / (2 * a)
	r.X2 = (-b - s) / (2 * a)
	r.Kind = TwoReal
	if r.D == 0 {
		r.Kind = Unique
	}
	return &r, nil
}

// Complex renders the complex roots as "re ± imi".
func (r *Quadratic) Complex() string {
	return f(r.Re) + " ± " + f(r.Im) + "i"
}

// Steps describes how the solution was found.
func (r *Quadratic) Steps() string {
	if r.Linear != nil {
		switch r.Kind {
		case Infinite:
			return "0x + 0 = 0 → every x is a solution"
		case NoSolution:
			return "0x + c = 0 (c≠0) → no solution"
		}
		return fmt.Sprintf("a=0 → solve as linear\n"+
			"equation: %sx + %s = 0\n"+
			"x = %s / %s\n"+
			"result: x = %s",
			f(r.B), f(r.C), f(-r.C), f(r.B), f(r.Linear.X))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "equation: %sx² + %sx + %s = 0\n", f(r.A), f(r.B), f(r.C))
	b.WriteString("discriminant: D = b² - 4ac\n")
	fmt.Fprintf(&b, "D = (%s)² - 4·%s·%s\n", f(r.B), f(r.A), f(r.C))
	fmt.Fprintf(&b, "D = %s\n", f(r.D))
	if r.Kind == ComplexPair {
		b.WriteString("D < 0 → no real roots\n\n")
		fmt.Fprintf(&b, "complex roots:\nx = %s", r.Complex())
		return b.String()
	}
	s := math.Sqrt(r.D)
	b.WriteString("\nformula: x = (-b ± √D) / (2a)\n")
	fmt.Fprintf(&b, "√D = %s\n", f(s))
	fmt.Fprintf(&b, "x1 = (%s + %s) / %s = %s\n", f(-r.B), f(s), f(2*r.A), f(r.X1))
	fmt.Fprintf(&b, "x2 = (%s - %s) / %s = %s", f(-r.B), f(s), f(2*r.A), f(r.X2))
	return b.String()
}

// System is the solution of the system
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by Cramer's rule.
type System struct {
	A1, B1, C1 float64
	A2, B2, C2 float64
	Kind       Kind
	Det        float64
	DetX, DetY float64
	X, Y       float64
}

// SolveSystem solves a 2×2 linear system.
func SolveSystem(a1, b1, c1, a2, b2, c2 float64) (*System, error) {
	if err := finite(a1, b1, c1, a2, b2, c2); err != nil {
		return nil, err
	}
	r := System{A1: a1, B1: b1, C1: c1, A2: a2, B2: b2, C2: c2}
	r.Det = a1*b2 - a2*b1
	if zero(r.Det) {
		r.Kind = Singular
		return &r, nil
	}
	r.DetX = c1*b2 - c2*b1
	r.DetY = a1*c2 - a2*c1
	r.X = r.DetX / r.Det
	r.Y = r.DetY / r.Det
	return &r, nil
}

// Steps describes how the solution was found.
func (r *System) Steps() string {
	var b strings.Builder
	fmt.Fprintf(&b, "equations:\n(%s)x + (%s)y = %s\n(%s)x + (%s)y = %s\n\n",
		f(r.A1), f(r.B1), f(r.C1), f(r.A2), f(r.B2), f(r.C2))
	b.WriteString("Cramer's rule:\ndet = a1·b2 - a2·b1\n")
	fmt.Fprintf(&b, "det = %s·%s - %s·%s\n", f(r.A1), f(r.B2), f(r.A2), f(r.B1))
	fmt.Fprintf(&b, "det = %s\n", f(r.Det))
	if r.Kind == Singular {
		b.WriteString("det = 0 → no solution or infinitely many")
		return b.String()
	}
	fmt.Fprintf(&b, "\ndetX = c1·b2 - c2·b1 = %s\n", f(r.DetX))
	fmt.Fprintf(&b, "detY = a1·c2 - a2·c1 = %s\n\n", f(r.DetY))
	fmt.Fprintf(&b, "x = detX / det = %s\n", f(r.X))
	fmt.Fprintf(&b, "y = detY / det = %s", f(r.Y))
	return b.String()
}
