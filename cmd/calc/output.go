package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calc/config"
)

// output writes results, errors, and notes, colored when the setting and
// the destination allow it.
type output struct {
	w     io.Writer
	good  *color.Color
	bad   *color.Color
	faint *color.Color
}

func newOutput(w io.Writer, mode string) *output {
	o := &output{
		w:     w,
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed),
		faint: color.New(color.Faint),
	}
	on := false
	switch mode {
	case config.ColorAlways:
		on = true
	case config.ColorAuto:
		if f, ok := w.(*os.File); ok {
			on = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	for _, c := range []*color.Color{o.good, o.bad, o.faint} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return o
}

func (o *output) result(s string) {
	o.good.Fprintln(o.w, s)
}

func (o *output) fail(src string, err error) {
	o.bad.Fprintf(o.w, "%s: %v\n", src, err)
}

func (o *output) note(format string, args ...any) {
	o.faint.Fprintf(o.w, format, args...)
}

func (o *output) text(s string) {
	fmt.Fprintln(o.w, s)
}
