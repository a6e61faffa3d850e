package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/history"
)

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show and manage the history of results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.listHistory()
			return nil
		},
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.listHistory()
			return nil
		},
	}
	use := &cobra.Command{
		Use:   "use <time>",
		Short: "Evaluate the input of a history entry again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			src := e.Input()
			a.out.note("%s = ", src)
			r, err := calc.EvalString(src, calc.Angle(a.mode))
			if err != nil {
				a.out.text("")
				return err
			}
			a.out.result(calc.Format(r))
			return nil
		},
	}
	del := &cobra.Command{
		Use:   "delete <time>",
		Short: "Delete a history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry time %q", args[0])
			}
			ok, err := a.hist.Delete(t)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no entry at %d", t)
			}
			return nil
		},
	}
	clr := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.hist.Clear()
		},
	}
	cmd.AddCommand(list, use, del, clr)
	return cmd
}

func (a *app) listHistory() {
	for _, e := range a.hist.List() {
		ts := time.UnixMilli(e.Time).Format("2006-01-02 15:04:05")
		a.out.note("%d  %s  ", e.Time, ts)
		a.out.text(e.Line)
	}
}

func (a *app) entry(s string) (history.Entry, error) {
	t, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return history.Entry{}, fmt.Errorf("invalid entry time %q", s)
	}
	e, ok := a.hist.Get(t)
	if !ok {
		return history.Entry{}, fmt.Errorf("no entry at %d", t)
	}
	return e, nil
}
