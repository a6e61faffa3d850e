// Package plot samples calculator expressions in one variable for drawing.
package plot

import (
	"math"
	"strings"

	"github.com/zephyrtronium/calc"
)

// View is a window onto the plane. The origin is drawn OffX, OffY pixels
// from the center of the drawing area, and one unit spans Scale pixels.
type View struct {
	// Func is the expression to plot in terms of x. Empty means sin(x).
	Func  string  `json:"func"`
	Scale float64 `json:"scale"`
	OffX  float64 `json:"offx"`
	OffY  float64 `json:"offy"`
}

const (
	// DefaultFunc is the expression plotted when none is given.
	DefaultFunc = "sin(x)"
	// DefaultScale is the initial number of pixels per unit.
	DefaultScale = 50
	// MinScale and MaxScale bound zooming.
	MinScale = 10
	MaxScale = 300
	// ZoomFactor is the change in scale for one zoom step.
	ZoomFactor = 1.15
	// Cutoff is the largest distance in pixels from the top of the drawing
	// area at which a sample is drawn.
	Cutoff = 10000
)

// DefaultView returns the initial view.
func DefaultView() View {
	return View{Func: DefaultFunc, Scale: DefaultScale}
}

// Reset returns the initial view of the same function.
func (v View) Reset() View {
	f := v.Func
	v = DefaultView()
	if f != "" {
		v.Func = f
	}
	return v
}

// Zoom returns the view zoomed in or out by one step.
func (v View) Zoom(in bool) View {
	if in {
		v.Scale = math.Min(MaxScale, v.Scale*ZoomFactor)
	} else {
		v.Scale = math.Max(MinScale, v.Scale/ZoomFactor)
	}
	return v
}

// Pan returns the view with the origin moved by dx, dy pixels.
func (v View) Pan(dx, dy float64) View {
	v.OffX += dx
	v.OffY += dy
	return v
}

// Point is a location in pixels from the top left of the drawing area.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a run of samples to be joined by lines.
type Segment []Point

// Sample evaluates the view's function once per pixel column of a w by h
// drawing area, from column 0 through column w. A sample that fails to
// evaluate, is not finite, or lies beyond Cutoff pixels ends the current
// segment. Options apply to every evaluation in the batch.
func Sample(v View, w, h int, opts ...calc.ContextOption) []Segment {
	f := v.Func
	if strings.TrimSpace(f) == "" {
		f = DefaultFunc
	}
	ctx := calc.NewContext(opts...)
	cx := float64(w)/2 + v.OffX
	cy := float64(h)/2 + v.OffY
	var segs []Segment
	var cur Segment
	for px := 0; px <= w; px++ {
		x := (float64(px) - cx) / v.Scale
		y, err := ctx.EvalString(calc.Substitute(f, x))
		py := cy - y*v.Scale
		if err != nil || math.IsNaN(py) || math.IsInf(py, 0) || py < -Cutoff || py > Cutoff {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Point{X: float64(px), Y: py})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// Render draws the axes and the view's function as w by h characters, one
// line per row.
func Render(v View, w, h int, opts ...calc.ContextOption) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	grid := make([][]byte, h)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", w))
	}
	ax := int(math.Floor(float64(w)/2 + v.OffX))
	ay := int(math.Floor(float64(h)/2 + v.OffY))
	if ay >= 0 && ay < h {
		for i := range grid[ay] {
			grid[ay][i] = '-'
		}
	}
	if ax >= 0 && ax < w {
		for i := range grid {
			if grid[i][ax] == '-' {
				grid[i][ax] = '+'
			} else {
				grid[i][ax] = '|'
			}
		}
	}
	for _, seg := range Sample(v, w, h, opts...) {
		prev := -1
		for i, p := range seg {
			col := int(p.X)
			row := int(math.Floor(p.Y))
			if col >= w {
				continue
			}
			lo, hi := row, row
			if i > 0 {
				// Fill the vertical gap from the previous sample so steep
				// curves stay connected.
				if prev < lo {
					lo = prev + 1
				}
				if prev > hi {
					hi = prev - 1
				}
			}
			for r := max(lo, 0); r <= min(hi, h-1); r++ {
				grid[r][col] = '*'
			}
			prev = row
		}
	}
	var b strings.Builder
	for _, line := range grid {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
