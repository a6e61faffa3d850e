// Command calc is a scientific calculator. It evaluates expressions, plots
// functions in the terminal, works the calculator's panels, keeps a history
// of results, and serves all of it over HTTP.
//
// Usage:
//
//	calc eval [flags] [expression ...]
//	calc plot [flags] [expression]
//	calc history [list|use|delete|clear]
//	calc serve [flags]
//	calc solve|geometry|stats|discrete|finance|base|units|random ...
//
// With no expressions, eval reads one expression per line from standard input.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/config"
	"github.com/zephyrtronium/calc/history"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	// Flag values. Empty means use the config.
	cfgPath  string
	angle    string
	histPath string
	color    string

	cfg  config.Config
	mode calc.AngleMode
	hist *history.Store
	out  *output
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "calc",
		Short:             "Scientific calculator",
		Version:           fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default $CALC_CONFIG or the user config dir)")
	pf.StringVar(&a.angle, "angle", "", "angle mode for trigonometry, deg or rad")
	pf.StringVar(&a.histPath, "history", "", "history file; empty keeps history in memory")
	pf.StringVar(&a.color, "color", "", "colored output: auto, always, or never")

	root.AddCommand(
		a.evalCmd(),
		a.plotCmd(),
		a.historyCmd(),
		a.serveCmd(),
		a.solveCmd(),
		a.geometryCmd(),
		a.statsCmd(),
		a.discreteCmd(),
		a.financeCmd(),
		a.baseCmd(),
		a.unitsCmd(),
		a.randomCmd(),
	)
	return root
}

// setup loads the config and lets flags override it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.cfgPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.angle != "" {
		cfg.Angle = a.angle
	}
	if cmd.Flags().Changed("history") {
		cfg.History = a.histPath
	}
	if a.color != "" {
		cfg.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.mode, _ = cfg.AngleMode()
	a.hist = history.Open(cfg.History)
	a.out = newOutput(cmd.OutOrStdout(), cfg.Color)
	return nil
}

// number evaluates a command line argument as an expression, so that
// arguments like 2*pi or 1/3 work anywhere a number is expected.
func (a *app) number(s string) (float64, error) {
	x, err := calc.EvalString(s, calc.Angle(a.mode))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return x, nil
}

func (a *app) numbers(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		x, err := a.number(s)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// integer evaluates s and truncates the result toward zero.
func (a *app) integer(s string) (int64, error) {
	x, err := a.number(s)
	if err != nil {
		return 0, err
	}
	if x >= 1<<63 || x < -1<<63 {
		return 0, fmt.Errorf("%q: %s is out of range", s, calc.Format(x))
	}
	return int64(x), nil
}

func (a *app) integers(args []string) ([]int64, error) {
	ns := make([]int64, len(args))
	for i, s := range args {
		n, err := a.integer(s)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
