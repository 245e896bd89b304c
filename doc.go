// Package surfacecode builds rotated surface-code memory experiments as
// stabilizer circuits in the stim text format, and the simulated datasets
// that pair each circuit with sampled detection events.
//
// The work is split into small packages, bottom-up:
//
//	lattice/  qubit layout of a distance-d rotated code, coordinates and neighbours
//	record/   measurement history and rec[-k] offset resolution
//	circuit/  instructions, append-fusing Builder, REPEAT blocks, text codec, validation
//	noise/    noise models; SI1000 superconducting-inspired noise
//	surface/  stage builders, detectors, observable and the full assembly
//	shotfmt/  b8 and 01 shot encodings
//	sweep/    sweep bits that drive the data-qubit flips of the dataset circuits
//	stimcli/  sampling and m2d conversion through the stim executable
//	dataset/  per-job directory layout, manifest and parallel generator
//	config/   YAML sweep configuration
//	cmd/surfacegen  command-line front end
//
// Quick example, distance 3, one round, Z basis:
//
//	code, _ := surface.New(3)
//	c, _ := code.Build(1, surface.BasisZ)
//	fmt.Print(c) // QUBIT_COORDS ... OBSERVABLE_INCLUDE(0) rec[-9] rec[-6] rec[-3]
//
// Qubit coordinates are scaled by two so that every position is an integer:
// data qubits sit on even/even points and ancillas on odd/odd points.
package surfacecode
