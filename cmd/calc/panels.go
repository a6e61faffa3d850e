package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/algebra"
	"github.com/zephyrtronium/calc/convert"
	"github.com/zephyrtronium/calc/discrete"
	"github.com/zephyrtronium/calc/finance"
	"github.com/zephyrtronium/calc/geometry"
	"github.com/zephyrtronium/calc/random"
	"github.com/zephyrtronium/calc/stats"
)

const negHint = `
Arguments are expressions, so 2*pi and 1/3 are accepted. Put -- before
arguments that start with a minus sign.`

type stepper interface {
	Steps() string
}

// worked makes a command that evaluates exactly n arguments, passes them to
// solve, and prints the worked result.
func (a *app) worked(use, short string, n int, solve func(x []float64) (stepper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + "." + negHint,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.numbers(args)
			if err != nil {
				return err
			}
			r, err := solve(x)
			if err != nil {
				return err
			}
			a.out.text(r.Steps())
			return nil
		},
	}
}

func group(use, short string, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(subs...)
	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	return group("solve", "Solve equations",
		a.worked("linear <a> <b>", "Solve ax + b = 0", 2, func(x []float64) (stepper, error) {
			return algebra.SolveLinear(x[0], x[1])
		}),
		a.worked("quadratic <a> <b> <c>", "Solve ax² + bx + c = 0", 3, func(x []float64) (stepper, error) {
			return algebra.SolveQuadratic(x[0], x[1], x[2])
		}),
		a.worked("system <a1> <b1> <c1> <a2> <b2> <c2>", "Solve a1x + b1y = c1, a2x + b2y = c2", 6, func(x []float64) (stepper, error) {
			return algebra.SolveSystem(x[0], x[1], x[2], x[3], x[4], x[5])
		}),
	)
}

func (a *app) geometryCmd() *cobra.Command {
	return group("geometry", "Areas, volumes, and lengths of shapes",
		a.worked("circle <r>", "Area and circumference of a circle", 1, func(x []float64) (stepper, error) {
			return geometry.NewCircle(x[0])
		}),
		a.worked("triangle <a> <b> <c>", "Area of a triangle from its sides", 3, func(x []float64) (stepper, error) {
			return geometry.Heron(x[0], x[1], x[2])
		}),
		a.worked("rectangle <w> <h>", "Area of a rectangle", 2, func(x []float64) (stepper, error) {
			return geometry.NewRectangle(x[0], x[1])
		}),
		a.worked("trapezoid <a> <b> <h>", "Area of a trapezoid", 3, func(x []float64) (stepper, error) {
			return geometry.NewTrapezoid(x[0], x[1], x[2])
		}),
		a.worked("polygon <n> <s>", "Area and perimeter of a regular polygon", 2, func(x []float64) (stepper, error) {
			return geometry.RegularPolygon(int(x[0]), x[1])
		}),
		a.worked("solids <sphere-r> <cylinder-r> <cylinder-h> <cone-r> <cone-h> <box-a> <box-b> <box-c>",
			"Volumes of a sphere, cylinder, cone, and box", 8, func(x []float64) (stepper, error) {
				return geometry.Volumes(geometry.Solids{
					SphereR:   x[0],
					CylinderR: x[1], CylinderH: x[2],
					ConeR: x[3], ConeH: x[4],
					BoxA: x[5], BoxB: x[6], BoxC: x[7],
				})
			}),
		a.worked("pythagoras <a> <b>", "Hypotenuse of a right triangle", 2, func(x []float64) (stepper, error) {
			return geometry.Pythagoras(x[0], x[1])
		}),
	)
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <values>",
		Short: "Describe a list of numbers",
		Long: `Describe a comma or space separated list of numbers: count, mean,
median, mode, quartiles, and population and sample deviation. Items that
are not numbers are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stats.Describe(stats.ParseList(strings.Join(args, ",")))
			if err != nil {
				return err
			}
			a.out.text(s.Steps())
			return nil
		},
	}
}

func (a *app) discreteCmd() *cobra.Command {
	gcd := &cobra.Command{
		Use:   "gcd <a> <b>",
		Short: "Greatest common divisor and least common multiple",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.integers(args)
			if err != nil {
				return err
			}
			g, steps := discrete.GCD(n[0], n[1])
			a.out.text(strings.Join(steps, "\n"))
			a.out.result(fmt.Sprintf("gcd = %d, lcm = %d", g, discrete.LCM(n[0], n[1])))
			return nil
		},
	}
	perm := &cobra.Command{
		Use:   "choose <n> <r>",
		Short: "Permutations nPr and combinations nCr",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.integers(args)
			if err != nil {
				return err
			}
			p, err := discrete.Perm(n[0], n[1])
			if err != nil {
				return err
			}
			c, err := discrete.Comb(n[0], n[1])
			if err != nil {
				return err
			}
			a.out.result(fmt.Sprintf("%dP%d = %v\n%dC%d = %v", n[0], n[1], p, n[0], n[1], c))
			return nil
		},
	}
	prime := &cobra.Command{
		Use:   "prime <n>",
		Short: "Test a number for primality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.integer(args[0])
			if err != nil {
				return err
			}
			p, err := discrete.PrimeCheck(n)
			if err != nil {
				return err
			}
			a.out.text(p.String())
			return nil
		},
	}
	factor := &cobra.Command{
		Use:   "factor <n>",
		Short: "Divisors and prime factorization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.integer(args[0])
			if err != nil {
				return err
			}
			ds, err := discrete.Divisors(n)
			if err != nil {
				return err
			}
			r, err := discrete.Factorize(n)
			if err != nil {
				return err
			}
			s := make([]string, len(ds))
			for i, d := range ds {
				s[i] = strconv.FormatInt(d, 10)
			}
			a.out.text(fmt.Sprintf("divisors (%d): %s", len(ds), strings.Join(s, ", ")))
			if len(r.Steps) > 0 {
				a.out.text(strings.Join(r.Steps, "\n"))
			}
			a.out.result(fmt.Sprintf("%d = %v", n, r))
			return nil
		},
	}
	return group("discrete", "Number theory and combinatorics", gcd, perm, prime, factor)
}

func (a *app) financeCmd() *cobra.Command {
	loan := &cobra.Command{
		Use:   "loan <principal> <annual-rate-%> <months>",
		Short: "Equal monthly payments on a loan",
		Long:  "Equal monthly payments on a loan." + negHint,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.numbers(args[:2])
			if err != nil {
				return err
			}
			n, err := a.integer(args[2])
			if err != nil {
				return err
			}
			if n > 1<<31 {
				return fmt.Errorf("%w: %d months", finance.ErrInput, n)
			}
			l, err := finance.Amortize(x[0], x[1], int(n))
			if err != nil {
				return err
			}
			a.out.text(l.Steps())
			return nil
		},
	}
	return group("finance", "Interest and loans",
		a.worked("simple <principal> <rate-%> <years>", "Simple interest", 3, func(x []float64) (stepper, error) {
			return finance.SimpleInterest(x[0], x[1], x[2])
		}),
		a.worked("compound <principal> <rate-%> <years>", "Compound interest, yearly and monthly", 3, func(x []float64) (stepper, error) {
			return finance.CompoundInterest(x[0], x[1], x[2])
		}),
		loan,
	)
}

func (a *app) baseCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "base <integer>",
		Short: "Convert an integer between bases 2 through 36",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := convert.Base(args[0], from, to)
			if err != nil {
				return err
			}
			a.out.text(b.Steps())
			a.out.result(b.Out)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the input")
	cmd.Flags().IntVar(&to, "to", 2, "base of the output")
	return cmd
}

func (a *app) unitsCmd() *cobra.Command {
	unit := func(kind string, units []string, conv func(float64, string, string) (*convert.Conversion, error)) *cobra.Command {
		return &cobra.Command{
			Use:   kind + " <value> <from> <to>",
			Short: "Convert " + kind + " between " + strings.Join(units, ", "),
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.number(args[0])
				if err != nil {
					return err
				}
				c, err := conv(v, args[1], args[2])
				if err != nil {
					return err
				}
				a.out.text(c.Steps())
				a.out.result(calc.Format(c.Out) + " " + c.To)
				return nil
			},
		}
	}
	return group("units", "Convert units",
		unit("length", convert.LengthUnits, convert.Length),
		unit("mass", convert.MassUnits, convert.Mass),
		unit("temperature", convert.TempUnits, convert.Temperature),
	)
}

func (a *app) randomCmd() *cobra.Command {
	var seed int64
	gen := func() *random.Generator {
		if seed == 0 {
			return random.NewTime()
		}
		return random.New(seed)
	}
	intCmd := &cobra.Command{
		Use:   "int <a> <b>",
		Short: "Random integer between a and b inclusive",
		Long:  "Random integer between a and b inclusive." + negHint,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.numbers(args)
			if err != nil {
				return err
			}
			n, err := gen().Int(x[0], x[1])
			if err != nil {
				return err
			}
			a.out.result(strconv.FormatInt(n, 10))
			a.out.note("one of %d integers\n", random.IntCount(x[0], x[1]))
			return nil
		},
	}
	floatCmd := &cobra.Command{
		Use:   "real <a> <b>",
		Short: "Random real number between a and b",
		Long:  "Random real number between a and b." + negHint,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.numbers(args)
			if err != nil {
				return err
			}
			r, err := gen().Float(x[0], x[1])
			if err != nil {
				return err
			}
			a.out.result(calc.Format(r))
			return nil
		},
	}
	var sides, count int
	dice := &cobra.Command{
		Use:   "dice",
		Short: "Roll dice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rolls, sum, err := gen().Dice(sides, count)
			if err != nil {
				return err
			}
			s := make([]string, len(rolls))
			for i, r := range rolls {
				s[i] = strconv.Itoa(r)
			}
			a.out.text(strings.Join(s, " "))
			a.out.result(fmt.Sprintf("sum = %d", sum))
			return nil
		},
	}
	dice.Flags().IntVar(&sides, "sides", 6, "sides per die")
	dice.Flags().IntVar(&count, "count", 1, "number of dice")
	var k int
	pick := &cobra.Command{
		Use:   "pick <items>",
		Short: "Pick items from a comma separated list without replacement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := gen().Pick(random.Candidates(strings.Join(args, ",")), k)
			if err != nil {
				return err
			}
			a.out.result(strings.Join(r, ", "))
			return nil
		},
	}
	pick.Flags().IntVar(&k, "k", 1, "number of items to pick")
	cmd := group("random", "Random numbers, dice, and picks", intCmd, floatCmd, dice, pick)
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default from the clock)")
	return cmd
}
