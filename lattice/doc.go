// Package lattice lays out the qubits of a rotated surface code of distance d
// and answers the geometric questions the circuit stages need.
//
// What:
//
//   - Lattice assigns stable integer indices to d×d data qubits, the X-type
//     ancillas and the Z-type ancillas, in that order.
//   - Every qubit has a Coord; ancillas sit on the half-integer dual grid.
//   - Neighbors enumerates the four diagonal neighbours of any position in a
//     fixed order, and DataNeighbors filters them down to data qubits.
//
// Coordinates:
//
//   - Positions are stored scaled by 2 so that half-integer ancilla positions
//     become odd integers. Data qubit (i, j) lives at Coord{2i, 2j}; the ancilla
//     at (i+½, j+½) lives at Coord{2i+1, 2j+1}. Coord.Point converts back.
//   - Integer coordinates make Coord a valid map key; there is no float
//     equality anywhere in the package.
//
// Index order:
//
//   - data qubits, row-major over the d×d grid
//   - interior X ancillas (dual cells with even i+j)
//   - boundary X ancillas, right edge on even rows and left edge on odd rows
//   - interior Z ancillas (dual cells with odd i+j)
//   - boundary Z ancillas, bottom edge on even columns and top edge on odd columns
//
// Complexity:
//
//   - New:           O(d²) time and memory.
//   - Coord, QubitAt: O(1).
//
// Errors:
//
//   - ErrDistanceTooSmall: d < 2. A distance-1 code has no ancillas and is rejected.
package lattice
