// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/surfacecode/lattice"
)

// Basis is the logical basis a memory experiment prepares and measures.
type Basis string

const (
	// BasisX prepares and measures logical X.
	BasisX Basis = "X"
	// BasisZ prepares and measures logical Z.
	BasisZ Basis = "Z"
)

// ParseBasis accepts "X" or "Z" in either case.
func ParseBasis(s string) (Basis, error) {
	b := Basis(strings.ToUpper(strings.TrimSpace(s)))
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b, nil
}

// String returns "X" or "Z".
func (b Basis) String() string { return string(b) }

// Validate returns ErrUnknownBasis for anything but BasisX and BasisZ.
func (b Basis) Validate() error {
	if b != BasisX && b != BasisZ {
		return fmt.Errorf("basis %q: %w", string(b), ErrUnknownBasis)
	}
	return nil
}

// HadamardParity selects the data qubits rotated at initialisation and before
// readout: those with q%2 == HadamardParity(). Z gives 1, X gives 0.
func (b Basis) HadamardParity() int {
	if b == BasisZ {
		return 1
	}
	return 0
}

// ObservableAxis is the coordinate axis (0 = x, 1 = y) on which the logical
// observable's data qubits sit at 0. Z gives 1, X gives 0.
func (b Basis) ObservableAxis() int {
	if b == BasisZ {
		return 1
	}
	return 0
}

// DeterministicAncillas returns the ancillas whose first measurement is
// deterministic in basis b: X ancillas for Z, Z ancillas for X.
func (b Basis) DeterministicAncillas(l *lattice.Lattice) []int {
	if b == BasisZ {
		return l.XAncillas()
	}
	return l.ZAncillas()
}
