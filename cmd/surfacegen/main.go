// Command surfacegen builds rotated surface-code memory circuits and the
// simulated datasets derived from them.
//
//	surfacegen circuit -d 3 -r 1 -b Z --variant noisy -p 0.001
//	surfacegen lattice -d 5
//	surfacegen inspect circuit_ideal.stim
//	surfacegen dataset --config sweep.yaml
//	surfacegen recode --in measurements.b8 --in-format b8 --bits 25 --out-format 01
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "surfacegen:", err)
		os.Exit(1)
	}
}
