package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polymer/generate"
	"github.com/katalvlaran/polymer/unit"
)

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		kind       string
		n          int
		seed       int64
		identities int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a deterministic test polymer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if identities < 1 || identities > unit.AlphabetSize {
				return fmt.Errorf("--identities must be in [1,%d], got %d", unit.AlphabetSize, identities)
			}
			opts := []generate.Option{generate.WithSeed(seed), generate.WithIdentities(identities)}

			var (
				units []unit.Unit
				err   error
			)
			switch kind {
			case "random":
				units, err = generate.Random(n, opts...)
			case "collapsing":
				units, err = generate.Collapsing(n, opts...)
			case "irreducible":
				units, err = generate.Irreducible(n, opts...)
			default:
				return fmt.Errorf("unknown --kind %q (want random, collapsing or irreducible)", kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), unit.String(units))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "random", "random, collapsing or irreducible")
	cmd.Flags().IntVar(&n, "n", 50000, "length; pair count for collapsing")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 uses the default seed)")
	cmd.Flags().IntVar(&identities, "identities", unit.AlphabetSize, "number of identities to draw from")
	return cmd
}
