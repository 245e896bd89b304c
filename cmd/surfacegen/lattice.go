package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/lattice"
)

func newLatticeCmd() *cobra.Command {
	var d int
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "List the qubits of a distance-d rotated surface code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := lattice.New(d)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "distance %d: %d data, %d X ancillas, %d Z ancillas\n",
				l.Distance(), len(l.DataQubits()), len(l.XAncillas()), len(l.ZAncillas()))
			return l.Describe(w)
		},
	}
	cmd.Flags().IntVarP(&d, "distance", "d", 3, "code distance (>= 2)")
	return cmd
}
