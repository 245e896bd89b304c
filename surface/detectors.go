// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/record"
)

// InitDetectors declares one single-measurement detector per deterministic
// ancilla of b, resolved against the first round's history h.
func (c *Code) InitDetectors(h record.History, b Basis) (circuit.Circuit, error) {
	if err := b.Validate(); err != nil {
		return circuit.Circuit{}, err
	}
	var cb circuit.Builder
	for _, q := range b.DeterministicAncillas(c.lat) {
		off, err := h.Offset(q)
		if err != nil {
			return circuit.Circuit{}, invariantf(MethodInitDetectors, err)
		}
		cb.Add(circuit.Detector, circuit.Recs(off))
	}
	return cb.Circuit(), nil
}

// RoundDetectors compares each ancilla (X then Z) with its result one round
// earlier, then ends the moment with TICK. h is the history of one round.
func (c *Code) RoundDetectors(h record.History) (circuit.Circuit, error) {
	var cb circuit.Builder
	for _, q := range c.lat.Ancillas() {
		off, err := h.Offset(q)
		if err != nil {
			return circuit.Circuit{}, invariantf(MethodRoundDetectors, err)
		}
		cb.Add(circuit.Detector, circuit.Recs(off, off-h.Len()))
	}
	cb.Tick()
	return cb.Circuit(), nil
}

// FinalDetectors compares each ancilla (Z then X) of the last round with the
// round before it. combined is the last round's history followed by the data
// readout; round is one round's history.
func (c *Code) FinalDetectors(combined, round record.History) (circuit.Circuit, error) {
	l := c.lat
	var cb circuit.Builder
	for _, q := range append(l.ZAncillas(), l.XAncillas()...) {
		off, err := combined.Offset(q)
		if err != nil {
			return circuit.Circuit{}, invariantf(MethodFinalDetectors, err)
		}
		cb.Add(circuit.Detector, circuit.Recs(off, off-round.Len()))
	}
	return cb.Circuit(), nil
}

// StabilizerDetectors checks each deterministic ancilla of b against the
// parity of its data neighbours as read out by the data stage.
func (c *Code) StabilizerDetectors(combined record.History, b Basis) (circuit.Circuit, error) {
	if err := b.Validate(); err != nil {
		return circuit.Circuit{}, err
	}
	var cb circuit.Builder
	for _, q := range b.DeterministicAncillas(c.lat) {
		nbrs, err := c.lat.DataNeighbors(q)
		if err != nil {
			return circuit.Circuit{}, invariantf(MethodStabilizerDetectors, err)
		}
		offs, err := combined.Offsets(append([]int{q}, nbrs...)...)
		if err != nil {
			return circuit.Circuit{}, invariantf(MethodStabilizerDetectors, err)
		}
		cb.Add(circuit.Detector, circuit.Recs(offs...))
	}
	return cb.Circuit(), nil
}

// Observable returns the rec targets of logical observable 0: the data qubits
// lying at 0 on b's observable axis, in index order. For a valid lattice
// there are exactly d of them.
func (c *Code) Observable(combined record.History, b Basis) ([]circuit.Target, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	axis := b.ObservableAxis()
	var out []circuit.Target
	for q, pos := range c.lat.Coords() {
		if pos.Axis(axis) != 0 {
			continue
		}
		off, err := combined.Offset(q)
		if err != nil {
			return nil, invariantf(MethodObservable, err)
		}
		out = append(out, circuit.Rec(off))
	}
	return out, nil
}
