// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/noise"
)

// prepare appends the sweep-controlled preparation shared by the dataset
// variants: coordinates, CX sweep[i] on data qubit i, ancilla reset.
func (c *Code) prepare(cb *circuit.Builder) {
	l := c.lat
	c.coords(cb)
	cb.Tick()

	data := l.DataQubits()
	targets := make([]circuit.Target, 0, 2*len(data))
	for i, q := range data {
		targets = append(targets, circuit.SweepBit(i), circuit.Qubit(q))
	}
	cb.Add(circuit.CX, targets).
		Gate(circuit.R, l.Ancillas()).
		Tick()
}

// BuildIdeal returns the noiseless dataset circuit: the data qubits are set
// from sweep bits 0..d²-1, then the main stream runs without its own
// initialisation.
func (c *Code) BuildIdeal(rounds int, b Basis) (circuit.Circuit, error) {
	main, err := c.Build(rounds, b, WithInitialize(false))
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("%s: %w", MethodBuildIdeal, err)
	}
	var cb circuit.Builder
	c.prepare(&cb)
	return cb.Extend(main).Circuit(), nil
}

// BuildNoisy returns the noisy counterpart of BuildIdeal at error rate p:
// after preparation every qubit suffers X_ERROR(2p), and the main stream is
// passed through the noise model (noise.SI1000(p) unless WithNoiseModel).
// Measurement records line up with BuildIdeal so the two can be paired.
//
// Errors: noise.ErrInvalidProbability for p outside [0, 0.5] or rejected by
// SI1000, plus everything Build returns.
func (c *Code) BuildNoisy(p float64, rounds int, b Basis, opts ...Option) (circuit.Circuit, error) {
	if flip := prepFlipFactor * p; !(flip >= 0 && flip <= 1) {
		return circuit.Circuit{}, fmt.Errorf("%s: p=%g: %w", MethodBuildNoisy, p, noise.ErrInvalidProbability)
	}
	cfg := newBuildConfig(opts...)
	model := cfg.model
	if model == nil {
		si, err := noise.SI1000(p)
		if err != nil {
			return circuit.Circuit{}, fmt.Errorf("%s: %w", MethodBuildNoisy, err)
		}
		model = si
	}

	main, err := c.Build(rounds, b, WithInitialize(false))
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("%s: %w", MethodBuildNoisy, err)
	}

	var cb circuit.Builder
	c.prepare(&cb)
	cb.Gate(circuit.XError, c.lat.Qubits(), prepFlipFactor*p).Tick()
	out := cb.Extend(model.Apply(main)).Circuit()
	if err := out.Validate(); err != nil {
		return circuit.Circuit{}, invariantf(MethodBuildNoisy, err)
	}
	return out, nil
}
