package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/shotfmt"
	"github.com/katalvlaran/surfacecode/sweep"
)

type sweepOptions struct {
	distance int
	shots    int
	dist     string
	seed     uint64
	format   string
	out      string
}

func newSweepCmd() *cobra.Command {
	o := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Write sweep bits for the ideal circuit's data-qubit flips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dist, err := sweep.ParseDistribution(o.dist)
			if err != nil {
				return err
			}
			format, err := shotfmt.ParseFormat(o.format)
			if err != nil {
				return err
			}
			rows, err := sweep.Generate(o.distance, o.shots, dist, o.seed)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd.OutOrStdout(), o.out)
			if err != nil {
				return err
			}
			if err := shotfmt.Encode(w, format, rows); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.distance, "distance", "d", 3, "code distance; each shot has d² bits")
	f.IntVar(&o.shots, "shots", 1000, "number of shots")
	f.StringVar(&o.dist, "dist", string(sweep.Random), "distribution: rnd or half-half")
	f.Uint64Var(&o.seed, "seed", 0, "random seed for rnd")
	f.StringVar(&o.format, "format", "01", "output format: b8 or 01")
	f.StringVarP(&o.out, "output", "o", "", "output file (default stdout)")
	return cmd
}
