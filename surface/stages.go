// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/lattice"
	"github.com/katalvlaran/surfacecode/record"
)

// InitStage prepares the data qubits for a basis-b memory experiment.
// With initialize it first declares QUBIT_COORDS for every qubit and resets
// data, X and Z qubits. It always rotates the parity data qubits (see
// Basis.HadamardParity) and ends with TICK.
func (c *Code) InitStage(b Basis, initialize bool) circuit.Circuit {
	l := c.lat
	var cb circuit.Builder
	if initialize {
		c.coords(&cb)
		cb.Tick()
		cb.Gate(circuit.R, l.DataQubits()).
			Gate(circuit.R, l.XAncillas()).
			Gate(circuit.R, l.ZAncillas()).
			Tick()
	}
	cb.Gate(circuit.H, c.parityData(b)).Tick()
	return cb.Circuit()
}

// StabilizerStage entangles every ancilla with its data neighbours over four
// sub-rounds. It measures nothing.
func (c *Code) StabilizerStage() circuit.Circuit {
	l := c.lat
	xs, zs, data := l.XAncillas(), l.ZAncillas(), l.DataQubits()

	var cb circuit.Builder
	cb.Gate(circuit.H, xs).Gate(circuit.H, zs).Tick()
	for r := 0; r < subRounds; r++ {
		for _, q := range xs {
			if dq, ok := l.DataNeighbor(q, lattice.XOrder[r]); ok {
				cb.Gate(circuit.CZ, []int{dq, q})
			}
		}
		for _, q := range zs {
			if dq, ok := l.DataNeighbor(q, lattice.ZOrder[r]); ok {
				cb.Gate(circuit.CZ, []int{q, dq})
			}
		}
		cb.Tick()

		switch r {
		case subRoundAncillaOut:
			cb.Gate(circuit.H, xs).Gate(circuit.H, zs).Tick()
		case subRoundNoData:
		default:
			cb.Gate(circuit.H, data).Tick()
		}
	}
	return cb.Circuit()
}

// AncillaStage measures and resets every ancilla, X ancillas first.
func (c *Code) AncillaStage() (circuit.Circuit, record.History) {
	l := c.lat
	xs, zs := l.XAncillas(), l.ZAncillas()

	var cb circuit.Builder
	cb.Gate(circuit.MR, xs).Gate(circuit.MR, zs).Tick()
	return cb.Circuit(), record.NewHistory(l.Ancillas()...)
}

// DataStage rotates the parity data qubits back and measures all data qubits.
func (c *Code) DataStage(b Basis) (circuit.Circuit, record.History) {
	data := c.lat.DataQubits()

	var cb circuit.Builder
	cb.Gate(circuit.H, c.parityData(b)).Tick().
		Gate(circuit.M, data).Tick()
	return cb.Circuit(), record.NewHistory(data...)
}

// RoundStage is one full stabilizer round: StabilizerStage then AncillaStage.
func (c *Code) RoundStage() (circuit.Circuit, record.History) {
	readout, h := c.AncillaStage()
	return c.StabilizerStage().Concat(readout), h
}
