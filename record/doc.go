// Package record tracks the order in which qubits were measured and turns a
// qubit into a backward offset into that record.
//
// A History is the measurement list of one circuit stage (or of several
// stages joined with Concat). The most recent measurement has offset -1, the
// one before it -2, and so on; Offset(q) = position(q) - Len().
//
// Lookups are map-backed and O(1). When a qubit appears more than once the
// first occurrence wins.
//
// Errors:
//
//   - ErrNotMeasured: the qubit is absent from the history. For a circuit built
//     by this module that is always a construction bug, never user input.
package record
