package lattice

// Diagonal neighbour slots, in the enumeration order of Neighbors.
const (
	MinusMinus = iota // (-½, -½)
	MinusPlus         // (-½, +½)
	PlusMinus         // (+½, -½)
	PlusPlus          // (+½, +½)
)

// neighborOffsets are the scaled (--, -+, +-, ++) diagonal offsets.
var neighborOffsets = [4]Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// XOrder is the sub-round neighbour schedule of X ancillas.
var XOrder = [4]int{MinusMinus, MinusPlus, PlusMinus, PlusPlus}

// ZOrder is the sub-round neighbour schedule of Z ancillas.
// Sub-rounds 1 and 2 are swapped relative to XOrder.
var ZOrder = [4]int{MinusMinus, PlusMinus, MinusPlus, PlusPlus}

// Neighbors returns the four diagonal neighbours of c in the order
// (--, -+, +-, ++). Positions are not filtered against any lattice.
// Complexity: O(1).
func Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for k, d := range neighborOffsets {
		out[k] = c.Add(d)
	}
	return out
}

// DataNeighbor returns the data qubit in neighbour slot k of qubit q.
// ok is false when q is out of range or the slot holds no data qubit.
func (l *Lattice) DataNeighbor(q, k int) (int, bool) {
	if q < 0 || q >= len(l.coords) || k < 0 || k >= len(neighborOffsets) {
		return 0, false
	}
	return l.DataAt(l.coords[q].Add(neighborOffsets[k]))
}

// DataNeighbors returns the data qubits diagonally adjacent to q, in
// Neighbors order. Interior ancillas have 4, boundary ancillas 2.
// Returns ErrQubitRange if q is not a qubit of l.
func (l *Lattice) DataNeighbors(q int) ([]int, error) {
	c, err := l.Coord(q)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, 4)
	for _, n := range Neighbors(c) {
		if dq, ok := l.DataAt(n); ok {
			out = append(out, dq)
		}
	}
	return out, nil
}
