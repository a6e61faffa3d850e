package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		inname string
		echo   bool
		nosave bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expression ...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each expression and print its result. With no expressions,
read one expression per line from standard input or the --in file.
Each result is recorded in the history as "expression = result".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs := args
			if inname != "" || len(args) == 0 {
				lines, err := readLines(cmd, inname)
				if err != nil {
					return err
				}
				srcs = append(lines, args...)
			}
			ctx := calc.NewContext(calc.Angle(a.mode))
			failed := 0
			for _, src := range srcs {
				src = strings.TrimSpace(src)
				if src == "" {
					continue
				}
				if echo {
					if e, err := calc.Parse(src); err == nil {
						a.out.note("%v : ", e)
					}
				}
				r, err := ctx.EvalString(src)
				if err != nil {
					a.out.fail(src, err)
					failed++
					continue
				}
				d := calc.Format(r)
				a.out.result(d)
				if nosave {
					continue
				}
				if _, err := a.hist.Push(src + " = " + d); err != nil {
					log.Printf("saving history: %v", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d expression(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each expression in postfix form before its result")
	cmd.Flags().BoolVar(&nosave, "no-history", false, "do not record results in the history")
	return cmd
}

// readLines reads the named file, or the command's input if the name is
// empty or -.
func readLines(cmd *cobra.Command, inname string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}
