// SPDX-License-Identifier: MIT

// Package surface assembles complete memory-experiment circuits for the
// rotated surface code laid out by package lattice.
//
// What:
//
//   - Stage builders (InitStage, StabilizerStage, AncillaStage, DataStage)
//     emit the literal gate schedule of one phase of the experiment. Stages
//     that measure also return the record.History of what they measured.
//   - Detector builders (InitDetectors, RoundDetectors, FinalDetectors,
//     StabilizerDetectors) turn histories into DETECTOR instructions.
//   - Observable picks the data measurements forming logical observable 0.
//   - Build joins everything according to the Regime selected by the number
//     of rounds; BuildIdeal and BuildNoisy prepend the sweep-controlled
//     preparation used for dataset generation.
//
// Why:
//
//   - Every rec[-k] target is computed from a History, never by hand, so the
//     stream stays consistent however many rounds are requested.
//   - Stages are immutable circuit.Circuit values and compose with Concat.
//
// Schedule contract:
//
//   - Sub-round r of the stabilizer stage couples each X ancilla with its
//     neighbour lattice.XOrder[r] (CZ data, ancilla) and each Z ancilla with
//     lattice.ZOrder[r] (CZ ancilla, data). After sub-round 3 the ancillas get
//     H; after sub-round 1 nothing; after sub-rounds 0 and 2 all data qubits
//     get H. This order is fixed; changing it breaks the stabilizer readout.
//
// Options:
//
//   - WithInitialize(false) drops coordinates and resets from the init stage.
//   - WithNoiseModel(m) replaces the default SI1000 model in BuildNoisy.
//
// Errors:
//
//   - ErrUnknownBasis, ErrTooFewRounds: rejected parameters.
//   - ErrInvariant: an internal inconsistency while assembling (a qubit missing
//     from a history, a stage whose measurement count disagrees with its
//     history, or an out-of-range record reference). Always a bug.
//   - noise.ErrInvalidProbability: BuildNoisy with an unusable error rate.
//
// Determinism: the same (d, rounds, basis, options) always produce the same
// text. Nothing here is concurrent; distinct parameter sets may be built from
// separate goroutines.
package surface
