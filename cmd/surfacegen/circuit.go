package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/surface"
)

// Circuit variants selectable with --variant.
const (
	variantBare  = "bare"
	variantIdeal = "ideal"
	variantNoisy = "noisy"
)

type circuitOptions struct {
	distance int
	rounds   int
	basis    string
	variant  string
	p        float64
	noInit   bool
	out      string
}

func newCircuitCmd() *cobra.Command {
	o := &circuitOptions{}
	cmd := &cobra.Command{
		Use:   "circuit",
		Short: "Print a memory-experiment circuit in stim format",
		Long: `circuit assembles the memory experiment for one distance, basis and
round count. The bare variant is the assembled stream alone; ideal adds
qubit coordinates and the sweep-controlled data flips; noisy adds the
preparation flips and SI1000 noise at rate -p.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.build()
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd.OutOrStdout(), o.out)
			if err != nil {
				return err
			}
			if _, err := c.WriteTo(w); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.distance, "distance", "d", 3, "code distance (>= 2)")
	f.IntVarP(&o.rounds, "rounds", "r", 1, "stabilizer measurement rounds (>= 1)")
	f.StringVarP(&o.basis, "basis", "b", "Z", "memory basis: X or Z")
	f.StringVar(&o.variant, "variant", variantBare, "bare, ideal or noisy")
	f.Float64VarP(&o.p, "error-rate", "p", 0.001, "SI1000 base error rate for the noisy variant")
	f.BoolVar(&o.noInit, "no-init", false, "skip the data-qubit initialisation (bare only)")
	f.StringVarP(&o.out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (o *circuitOptions) build() (circuit.Circuit, error) {
	b, err := surface.ParseBasis(o.basis)
	if err != nil {
		return circuit.Circuit{}, err
	}
	code, err := surface.New(o.distance)
	if err != nil {
		return circuit.Circuit{}, err
	}
	if o.noInit && o.variant != variantBare {
		return circuit.Circuit{}, fmt.Errorf("--no-init with --variant %s: %w", o.variant, ErrUsage)
	}
	switch o.variant {
	case variantBare:
		return code.Build(o.rounds, b, surface.WithInitialize(!o.noInit))
	case variantIdeal:
		return code.BuildIdeal(o.rounds, b)
	case variantNoisy:
		return code.BuildNoisy(o.p, o.rounds, b)
	default:
		return circuit.Circuit{}, fmt.Errorf("--variant %q: %w", o.variant, ErrUsage)
	}
}
