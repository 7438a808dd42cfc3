package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymer/reduce"
	"github.com/katalvlaran/polymer/unit"
)

func newReduceCmd(a *app) *cobra.Command {
	var (
		strategy string
		show     bool
	)
	cmd := &cobra.Command{
		Use:   "reduce [file|-]",
		Short: "Print the residue length of a fully reacted polymer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.strategy(strategy)
			if err != nil {
				return err
			}
			units, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			var residue []unit.Unit
			switch s {
			case reduce.IndexStrategy:
				arena := reduce.NewArena(units)
				arena.Collapse()
				residue = arena.Residue()
			default:
				residue = reduce.StackResidue(unit.All(units))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, len(residue))
			if show {
				fmt.Fprintln(out, unit.String(residue))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "reducer: stack or index (default from config)")
	cmd.Flags().BoolVar(&show, "show", false, "also print the residue itself")
	return cmd
}
