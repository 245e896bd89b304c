package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/shotfmt"
)

type recodeOptions struct {
	in, out             string
	inFormat, outFormat string
	bits                int
}

func newRecodeCmd() *cobra.Command {
	o := &recodeOptions{}
	cmd := &cobra.Command{
		Use:   "recode",
		Short: "Convert shot files between the b8 and 01 formats",
		Long: `recode reads shots of --bits bits each and writes them in another
format. b8 input needs --bits; 01 input infers it when --bits is 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inF, err := shotfmt.ParseFormat(o.inFormat)
			if err != nil {
				return err
			}
			outF, err := shotfmt.ParseFormat(o.outFormat)
			if err != nil {
				return err
			}
			if inF == shotfmt.B8 && o.bits < 1 {
				return fmt.Errorf("--bits is required for b8 input: %w", ErrUsage)
			}

			r, closeIn, err := openInput(cmd.InOrStdin(), o.in)
			if err != nil {
				return err
			}
			shots, err := shotfmt.Decode(r, inF, o.bits)
			closeIn()
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd.OutOrStdout(), o.out)
			if err != nil {
				return err
			}
			if err := shotfmt.Encode(w, outF, shots); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", "input file (default stdin)")
	f.StringVar(&o.out, "out", "", "output file (default stdout)")
	f.StringVar(&o.inFormat, "in-format", "b8", "input format: b8 or 01")
	f.StringVar(&o.outFormat, "out-format", "01", "output format: b8 or 01")
	f.IntVar(&o.bits, "bits", 0, "bits per shot")
	return cmd
}
