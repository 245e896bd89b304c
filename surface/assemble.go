// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/record"
)

// Regime is the assembly shape selected by the number of rounds.
type Regime int

const (
	// RegimeSingle is one stabilizer round followed by data readout.
	RegimeSingle Regime = iota + 1
	// RegimeDouble is two rounds with final round-to-round detectors.
	RegimeDouble
	// RegimeMulti repeats the middle rounds in a REPEAT block.
	RegimeMulti
)

// String returns "single", "double" or "multi".
func (r Regime) String() string {
	switch r {
	case RegimeSingle:
		return "single"
	case RegimeDouble:
		return "double"
	case RegimeMulti:
		return "multi"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// RegimeFor returns the regime for rounds stabilizer rounds.
// Returns ErrTooFewRounds if rounds < 1.
func RegimeFor(rounds int) (Regime, error) {
	switch {
	case rounds < 1:
		return 0, fmt.Errorf("rounds=%d: %w", rounds, ErrTooFewRounds)
	case rounds == 1:
		return RegimeSingle, nil
	case rounds == 2:
		return RegimeDouble, nil
	default:
		return RegimeMulti, nil
	}
}

// stages holds every building block of one (basis, initialize) circuit.
type stages struct {
	init       circuit.Circuit
	round      circuit.Circuit // stabilizer stage + ancilla readout
	data       circuit.Circuit
	detInit    circuit.Circuit
	detRound   circuit.Circuit
	detFinal   circuit.Circuit
	detStabs   circuit.Circuit
	observable []circuit.Target
}

func (c *Code) stages(b Basis, initialize bool) (stages, error) {
	var (
		s   stages
		err error
	)
	s.init = c.InitStage(b, initialize)

	var roundHist, dataHist record.History
	s.round, roundHist = c.RoundStage()
	if err = checkStage("round", s.round, roundHist); err != nil {
		return stages{}, err
	}
	s.data, dataHist = c.DataStage(b)
	if err = checkStage("data", s.data, dataHist); err != nil {
		return stages{}, err
	}
	combined := roundHist.Concat(dataHist)

	if s.detInit, err = c.InitDetectors(roundHist, b); err != nil {
		return stages{}, err
	}
	if s.detRound, err = c.RoundDetectors(roundHist); err != nil {
		return stages{}, err
	}
	if s.detFinal, err = c.FinalDetectors(combined, roundHist); err != nil {
		return stages{}, err
	}
	if s.detStabs, err = c.StabilizerDetectors(combined, b); err != nil {
		return stages{}, err
	}
	if s.observable, err = c.Observable(combined, b); err != nil {
		return stages{}, err
	}
	return s, nil
}

// checkStage verifies a stage measures exactly what its history records.
func checkStage(name string, stage circuit.Circuit, h record.History) error {
	if n := stage.NumMeasurements(); n != h.Len() {
		return fmt.Errorf("%s: %s stage measures %d qubits, history holds %d: %w",
			MethodBuild, name, n, h.Len(), ErrInvariant)
	}
	return nil
}

func assembleSingle(s stages) circuit.Circuit {
	return s.init.Concat(s.round, s.detInit, s.data, s.detStabs)
}

func assembleDouble(s stages) circuit.Circuit {
	return s.init.Concat(s.round, s.detInit, s.round, s.data, s.detFinal, s.detStabs)
}

func assembleMulti(s stages, rounds int) circuit.Circuit {
	middle := s.round.Concat(s.detRound).Repeat(rounds - 2)
	return s.init.Concat(s.round, s.detInit, middle, s.round, s.data, s.detFinal, s.detStabs)
}

// Build returns the full memory experiment: rounds stabilizer rounds in basis
// b, with detectors and logical observable 0. The result passes
// circuit.Validate.
//
// Errors: ErrUnknownBasis, ErrTooFewRounds, ErrInvariant.
// Complexity: O(d²) instructions; the middle rounds are one REPEAT block.
func (c *Code) Build(rounds int, b Basis, opts ...Option) (circuit.Circuit, error) {
	if err := b.Validate(); err != nil {
		return circuit.Circuit{}, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	regime, err := RegimeFor(rounds)
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	cfg := newBuildConfig(opts...)

	s, err := c.stages(b, cfg.initialize)
	if err != nil {
		return circuit.Circuit{}, err
	}

	var body circuit.Circuit
	switch regime {
	case RegimeSingle:
		body = assembleSingle(s)
	case RegimeDouble:
		body = assembleDouble(s)
	default:
		body = assembleMulti(s, rounds)
	}

	var cb circuit.Builder
	cb.Extend(body)
	if len(s.observable) > 0 {
		cb.Add(circuit.ObservableInclude, s.observable, observableIndex)
	}
	out := cb.Circuit()
	if err := out.Validate(); err != nil {
		return circuit.Circuit{}, invariantf(MethodBuild, err)
	}
	return out, nil
}
