// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/lattice"
)

// Code builds circuits for one lattice. It is immutable and safe for
// concurrent use.
type Code struct {
	lat *lattice.Lattice
}

// New lays out a distance-d lattice and returns its circuit builder.
// Returns lattice.ErrDistanceTooSmall if d < lattice.MinDistance.
func New(d int) (*Code, error) {
	l, err := lattice.New(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNew, err)
	}
	return &Code{lat: l}, nil
}

// FromLattice wraps an existing lattice.
func FromLattice(l *lattice.Lattice) *Code { return &Code{lat: l} }

// Lattice returns the underlying layout.
func (c *Code) Lattice() *lattice.Lattice { return c.lat }

// Distance returns the code distance.
func (c *Code) Distance() int { return c.lat.Distance() }

// coords appends one QUBIT_COORDS per qubit, in index order.
func (c *Code) coords(cb *circuit.Builder) {
	for q, pos := range c.lat.Coords() {
		x, y := pos.Point()
		cb.Gate(circuit.QubitCoords, []int{q}, x, y)
	}
}

// parityData returns the data qubits with q%2 == b.HadamardParity().
func (c *Code) parityData(b Basis) []int {
	parity := b.HadamardParity()
	var out []int
	for _, q := range c.lat.DataQubits() {
		if q%2 == parity {
			out = append(out, q)
		}
	}
	return out
}
