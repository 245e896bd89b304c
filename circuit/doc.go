// Package circuit models a stabilizer-circuit instruction stream and its
// line-oriented text form (the format read by the Stim simulator).
//
// What:
//
//   - Op is one tagged instruction: a Gate, its targets (qubits, backward
//     measurement references rec[-k], sweep bits sweep[k]) and optional
//     numeric arguments. REPEAT blocks are Ops carrying a Body.
//   - Circuit is an immutable sequence of Ops. Concat is associative and never
//     mutates its operands; Repeat wraps a circuit into one REPEAT block.
//   - Builder is the append-only way to assemble a Circuit. Consecutive
//     fusable gates with equal arguments are merged into one Op, so
//     "H 0 1" followed by "H 2" becomes "H 0 1 2".
//
// Text form:
//
//	QUBIT_COORDS(0.5, 0.5) 9
//	CZ 0 9 13 1
//	TICK
//	DETECTOR rec[-1] rec[-9]
//	REPEAT 23 {
//	    MR 9 10
//	}
//
// String and WriteTo render that form; Parse reads it back. For any circuit
// built by this module Parse(c.String()) reproduces c exactly.
//
// Validation:
//
//   - Validate walks the stream keeping a running measurement count and
//     rejects any rec[-k] that reaches before the first measurement, as well
//     as wrong target kinds and odd pair counts on two-qubit gates.
//
// Errors:
//
//   - ErrUnknownGate, ErrSyntax, ErrTargetKind, ErrPairTargets, ErrRecordRange.
package circuit
