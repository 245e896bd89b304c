// Package noise rewrites a clean instruction stream into a noisy one.
//
// A Model takes a circuit and returns a circuit of equal or greater length
// with probabilistic error instructions inserted. Models never add or remove
// measurements, so every rec[-k] reference in the input stays valid.
//
// SI1000 is the superconducting-inspired model used for the generated
// datasets. For error rate p, inside each TICK-delimited moment:
//
//   - single-qubit Clifford        -> DEPOLARIZE1(p/10) after
//   - two-qubit Clifford (CZ, CX)  -> DEPOLARIZE2(p) after
//   - reset R                      -> X_ERROR(2p) after
//   - measurement M                -> X_ERROR(5p) before
//   - measure+reset MR             -> X_ERROR(5p) before, X_ERROR(2p) after
//   - idle qubits                  -> DEPOLARIZE1(p/10), or DEPOLARIZE1(2p)
//     when the moment measures or resets
//
// REPEAT bodies are rewritten recursively. Annotations and existing noise
// channels pass through unchanged.
package noise
