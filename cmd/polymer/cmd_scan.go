package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymer/scan"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		strategy string
		workers  int
		trials   bool
	)
	cmd := &cobra.Command{
		Use:   "scan [file|-]",
		Short: "Find the identity whose removal leaves the shortest residue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.strategy(strategy)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = a.cfg.Engine.Workers
			}
			units, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			res, err := scan.MinResidue(units, s.Func(),
				scan.WithContext(cmd.Context()),
				scan.WithWorkers(workers),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d (remove %s)\n", res.Residue, res.Identity)
			if trials {
				for id, n := range res.Trials {
					fmt.Fprintf(out, "%c\t%d\n", 'A'+id, n)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "reducer: stack or index (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent trials (default from config)")
	cmd.Flags().BoolVar(&trials, "trials", false, "print the residue of every trial")
	return cmd
}
