package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/circuit"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file.stim]",
		Short: "Parse a circuit, validate its record references and print counts",
		Long: `inspect reads a circuit in the stim text format (stdin when no file
or "-" is given), checks that every rec[-k] target points into the
measurement record before it and prints a summary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			r, closeIn, err := openInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			defer closeIn()
			c, err := circuit.Parse(r)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			return summarize(cmd.OutOrStdout(), c)
		},
	}
}

func summarize(w io.Writer, c circuit.Circuit) error {
	flat := c.Flatten()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		name string
		n    int
	}{
		{"qubits", c.NumQubits()},
		{"measurements", c.NumMeasurements()},
		{"detectors", c.NumDetectors()},
		{"observables", c.NumObservables()},
		{"ticks", c.Count(circuit.Tick)},
		{"instructions", flat.Len()},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.name, r.n)
	}
	return tw.Flush()
}
