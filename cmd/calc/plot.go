package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/plot"
)

func (a *app) plotCmd() *cobra.Command {
	var (
		w, h   int
		zoom   int
		dx, dy float64
	)
	cmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "Draw a function of x in the terminal",
		Long: `Draw a function of x as text, one character per cell. The default
function is sin(x). --zoom steps in (positive) or out (negative) from the
minimum scale, and --pan-x and --pan-y move the origin by whole cells.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if w <= 0 || h <= 0 {
				return fmt.Errorf("plot size %dx%d must be positive", w, h)
			}
			v := plot.DefaultView()
			if len(args) == 1 {
				v.Func = args[0]
			}
			// Terminal cells are large, so start from the widest view.
			v.Scale = plot.MinScale
			for i := 0; i < zoom; i++ {
				v = v.Zoom(true)
			}
			for i := 0; i > zoom; i-- {
				v = v.Zoom(false)
			}
			v = v.Pan(dx, dy)
			a.out.note("y = %s  (%s cells per unit)\n", v.Func, calc.Format(v.Scale))
			fmt.Fprint(a.out.w, plot.Render(v, w, h, calc.Angle(a.mode)))
			return nil
		},
	}
	cmd.Flags().IntVar(&w, "width", 79, "plot width in characters")
	cmd.Flags().IntVar(&h, "height", 24, "plot height in lines")
	cmd.Flags().IntVar(&zoom, "zoom", 0, "zoom steps")
	cmd.Flags().Float64Var(&dx, "pan-x", 0, "move the origin right by this many cells")
	cmd.Flags().Float64Var(&dy, "pan-y", 0, "move the origin down by this many cells")
	return cmd
}
