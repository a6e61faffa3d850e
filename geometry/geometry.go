// Package geometry computes areas, perimeters, and volumes of common shapes.
//
// Each function returns a result whose Steps method shows the formulas with
// the inputs substituted.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/zephyrtronium/calc"
)

// ErrInput is wrapped by errors for dimensions that are not finite or are
// out of range for the shape.
var ErrInput = errors.New("invalid input")

var f = calc.Format

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func nonneg(xs ...float64) error {
	if !finite(xs...) {
		return fmt.Errorf("%w: dimension is not finite", ErrInput)
	}
	for _, x := range xs {
		if x < 0 {
			return fmt.Errorf("%w: negative dimension %s", ErrInput, f(x))
		}
	}
	return nil
}

// Circle is a circle of radius R.
type Circle struct {
	R             float64
	Area          float64
	Circumference float64
}

// NewCircle computes the area and circumference of a circle.
func NewCircle(r float64) (*Circle, error) {
	if err := nonneg(r); err != nil {
		return nil, err
	}
	return &Circle{R: r, Area: math.Pi * r * r, Circumference: 2 * math.Pi * r}, nil
}

func (c *Circle) Steps() string {
	return fmt.Sprintf("formulas:\narea A = πr²\ncircumference C = 2πr\n\n"+
		"substituted:\nA = π·(%s)² = %s\nC = 2π·%s = %s",
		f(c.R), f(c.Area), f(c.R), f(c.Circumference))
}

// Triangle is a triangle given by its sides, with area from Heron's formula.
type Triangle struct {
	A, B, C   float64
	S         float64
	Area      float64
	Perimeter float64
}

// Heron computes the area of a triangle from its side lengths. The sides
// must be positive and satisfy the strict triangle inequality.
func Heron(a, b, c float64) (*Triangle, error) {
	if !finite(a, b, c) || a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: side lengths must be positive", ErrInput)
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("%w: sides %s, %s, %s do not form a triangle", ErrInput, f(a), f(b), f(c))
	}
	s := (a + b + c) / 2
	return &Triangle{
		A: a, B: b, C: c,
		S:         s,
		Area:      math.Sqrt(s * (s - a) * (s - b) * (s - c)),
		Perimeter: a + b + c,
	}, nil
}

func (t *Triangle) Steps() string {
	return fmt.Sprintf("Heron's formula:\ns = (a+b+c)/2\nA = √( s(s-a)(s-b)(s-c) )\n\n"+
		"substituted:\ns = (%s+%s+%s)/2 = %s\nA = √( %s·%s·%s·%s )\nA = %s\nperimeter = %s",
		f(t.A), f(t.B), f(t.C), f(t.S),
		f(t.S), f(t.S-t.A), f(t.S-t.B), f(t.S-t.C),
		f(t.Area), f(t.Perimeter))
}

// Rectangle is a w by h rectangle.
type Rectangle struct {
	W, H float64
	Area float64
}

// NewRectangle computes the area of a rectangle.
func NewRectangle(w, h float64) (*Rectangle, error) {
	if err := nonneg(w, h); err != nil {
		return nil, err
	}
	return &Rectangle{W: w, H: h, Area: w * h}, nil
}

func (r *Rectangle) Steps() string {
	return fmt.Sprintf("rectangle:\nA = w·h = %s·%s = %s", f(r.W), f(r.H), f(r.Area))
}

// Trapezoid is a trapezoid with parallel sides A and B and height H.
type Trapezoid struct {
	A, B, H float64
	Area    float64
}

// NewTrapezoid computes the area of a trapezoid.
func NewTrapezoid(a, b, h float64) (*Trapezoid, error) {
	if err := nonneg(a, b, h); err != nil {
		return nil, err
	}
	return &Trapezoid{A: a, B: b, H: h, Area: (a + b) * h / 2}, nil
}

func (t *Trapezoid) Steps() string {
	return fmt.Sprintf("trapezoid:\nA = (a+b)·h/2\nA = (%s+%s)·%s/2 = %s", f(t.A), f(t.B), f(t.H), f(t.Area))
}

// Polygon is a regular polygon with N sides of length S.
type Polygon struct {
	N         int
	S         float64
	Area      float64
	Perimeter float64
}

// RegularPolygon computes the area and perimeter of a regular polygon. There
// must be at least three sides of positive length.
func RegularPolygon(n int, s float64) (*Polygon, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: a polygon needs at least 3 sides, not %d", ErrInput, n)
	}
	if !finite(s) || s <= 0 {
		return nil, fmt.Errorf("%w: side length must be positive", ErrInput)
	}
	fn := float64(n)
	return &Polygon{
		N:         n,
		S:         s,
		Area:      fn * s * s / (4 * math.Tan(math.Pi/fn)),
		Perimeter: fn * s,
	}, nil
}

func (p *Polygon) Steps() string {
	return fmt.Sprintf("formulas:\nperimeter P = n·s\narea A = n·s² / (4·tan(π/n))\n\n"+
		"substituted:\nP = %d·%s = %s\nA = %d·(%s²) / (4·tan(π/%d)) = %s",
		p.N, f(p.S), f(p.Perimeter), p.N, f(p.S), p.N, f(p.Area))
}

// Solids holds the volumes of a sphere, cylinder, cone, and box.
type Solids struct {
	SphereR          float64
	CylinderR        float64
	CylinderH        float64
	ConeR, ConeH     float64
	BoxA, BoxB, BoxC float64

	Sphere, Cylinder, Cone, Box float64
}

// Volumes computes the volumes of the solids described by s, whose
// dimensions must be non-negative, and stores them in s.
func Volumes(s Solids) (*Solids, error) {
	if err := nonneg(s.SphereR, s.CylinderR, s.CylinderH, s.ConeR, s.ConeH, s.BoxA, s.BoxB, s.BoxC); err != nil {
		return nil, err
	}
	s.Sphere = 4.0 / 3 * math.Pi * math.Pow(s.SphereR, 3)
	s.Cylinder = math.Pi * s.CylinderR * s.CylinderR * s.CylinderH
	s.Cone = math.Pi * s.ConeR * s.ConeR * s.ConeH / 3
	s.Box = s.BoxA * s.BoxB * s.BoxC
	return &s, nil
}

func (s *Solids) Steps() string {
	return fmt.Sprintf("sphere:\nV = 4/3·π·r³\nV = 4/3·π·(%s³) = %s\n\n"+
		"cylinder:\nV = π·r²·h\nV = π·(%s²)·%s = %s\n\n"+
		"cone:\nV = 1/3·π·r²·h\nV = 1/3·π·(%s²)·%s = %s\n\n"+
		"box:\nV = a·b·c\nV = %s·%s·%s = %s",
		f(s.SphereR), f(s.Sphere),
		f(s.CylinderR), f(s.CylinderH), f(s.Cylinder),
		f(s.ConeR), f(s.ConeH), f(s.Cone),
		f(s.BoxA), f(s.BoxB), f(s.BoxC), f(s.Box))
}

// RightTriangle is a right triangle with legs A and B.
type RightTriangle struct {
	A, B       float64
	Hypotenuse float64
}

// Pythagoras computes the hypotenuse of a right triangle.
func Pythagoras(a, b float64) (*RightTriangle, error) {
	if err := nonneg(a, b); err != nil {
		return nil, err
	}
	return &RightTriangle{A: a, B: b, Hypotenuse: math.Sqrt(a*a + b*b)}, nil
}

func (r *RightTriangle) Steps() string {
	return fmt.Sprintf("Pythagorean theorem:\nc = √(a² + b²)\nc = √(%s² + %s²)\nc = √(%s) = %s",
		f(r.A), f(r.B), f(r.A*r.A+r.B*r.B), f(r.Hypotenuse))
}
