// SPDX-License-Identifier: MIT

package surface_test

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/surface"
)

// ExampleCode_Build builds a one-round distance-3 memory experiment.
func ExampleCode_Build() {
	code, err := surface.New(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := code.Build(1, surface.BasisZ)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("measurements:", c.NumMeasurements())
	fmt.Println("detectors:", c.NumDetectors())
	fmt.Println("observable:", c.Observable(0))
	// Output:
	// measurements: 17
	// detectors: 8
	// observable: [-9 -6 -3]
}

// ExampleRegimeFor shows how the round count picks the assembly shape.
func ExampleRegimeFor() {
	for _, rounds := range []int{1, 2, 25} {
		r, _ := surface.RegimeFor(rounds)
		fmt.Println(rounds, r)
	}
	// Output:
	// 1 single
	// 2 double
	// 25 multi
}
