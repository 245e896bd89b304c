package lattice

import "errors"

var (
	// ErrDistanceTooSmall indicates a code distance below MinDistance.
	ErrDistanceTooSmall = errors.New("lattice: distance must be at least 2")
	// ErrQubitRange indicates a qubit index outside [0, NumQubits).
	ErrQubitRange = errors.New("lattice: qubit index out of range")
)
