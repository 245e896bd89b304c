package circuit

import "errors"

// Sentinel errors for circuit validation and parsing.
var (
	// ErrUnknownGate indicates a gate name outside the supported set.
	ErrUnknownGate = errors.New("circuit: unknown gate")
	// ErrSyntax indicates malformed circuit text.
	ErrSyntax = errors.New("circuit: syntax error")
	// ErrTargetKind indicates a target of the wrong kind for its gate,
	// e.g. a qubit on DETECTOR or rec[-1] on H.
	ErrTargetKind = errors.New("circuit: invalid target for gate")
	// ErrPairTargets indicates a two-qubit gate with an odd number of targets.
	ErrPairTargets = errors.New("circuit: two-qubit gate needs an even number of targets")
	// ErrRecordRange indicates a rec[-k] reference before the first measurement.
	ErrRecordRange = errors.New("circuit: measurement record reference out of range")
)
