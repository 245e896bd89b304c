// Package lattice builds the qubit layout of a rotated surface code.
//
// Indices are assigned once, in a fixed order, and never reused; every other
// package relies on that order (ancilla lists are always "X then Z").
package lattice

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
)

// New lays out a distance-d surface code.
// Returns ErrDistanceTooSmall if d < MinDistance.
// Complexity: O(d²) time and memory.
func New(d int) (*Lattice, error) {
	if d < MinDistance {
		return nil, fmt.Errorf("New: d=%d: %w", d, ErrDistanceTooSmall)
	}

	total := d*d + 2*(d-1) + (d-1)*(d-1)
	l := &Lattice{
		distance: d,
		data:     make([]int, 0, d*d),
		coords:   make([]Coord, 0, total),
		index:    make(map[Coord]int, total),
		roles:    make([]Role, 0, total),
	}
	add := func(c Coord, r Role) int {
		q := len(l.coords)
		l.coords = append(l.coords, c)
		l.index[c] = q
		l.roles = append(l.roles, r)
		return q
	}

	// Data qubits, row-major: (i, j) -> {2i, 2j}.
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			l.data = append(l.data, add(Coord{2 * i, 2 * j}, RoleData))
		}
	}

	// Interior X ancillas on even-parity dual cells.
	for i := 0; i < d-1; i++ {
		for j := 0; j < d-1; j++ {
			if (i+j)%2 == 0 {
				l.xAnc = append(l.xAnc, add(Coord{2*i + 1, 2*j + 1}, RoleXAncilla))
			}
		}
	}
	// Boundary X ancillas alternate right (even row) and left (odd row).
	for i := 0; i < d-1; i++ {
		c := Coord{2*d - 1, 2*i + 1}
		if i%2 == 1 {
			c = Coord{-1, 2*i + 1}
		}
		l.xAnc = append(l.xAnc, add(c, RoleXAncilla))
	}

	// Interior Z ancillas on odd-parity dual cells.
	for i := 0; i < d-1; i++ {
		for j := 0; j < d-1; j++ {
			if (i+j)%2 == 1 {
				l.zAnc = append(l.zAnc, add(Coord{2*i + 1, 2*j + 1}, RoleZAncilla))
			}
		}
	}
	// Boundary Z ancillas alternate bottom (even column) and top (odd column).
	for j := 0; j < d-1; j++ {
		c := Coord{2*j + 1, -1}
		if j%2 == 1 {
			c = Coord{2*j + 1, 2*d - 1}
		}
		l.zAnc = append(l.zAnc, add(c, RoleZAncilla))
	}

	return l, nil
}

// Distance returns the code distance d.
func (l *Lattice) Distance() int { return l.distance }

// NumQubits returns the total number of qubits.
func (l *Lattice) NumQubits() int { return len(l.coords) }

// DataQubits returns the data qubit indices in row-major order.
func (l *Lattice) DataQubits() []int { return slices.Clone(l.data) }

// XAncillas returns the X ancilla indices, interior first.
func (l *Lattice) XAncillas() []int { return slices.Clone(l.xAnc) }

// ZAncillas returns the Z ancilla indices, interior first.
func (l *Lattice) ZAncillas() []int { return slices.Clone(l.zAnc) }

// Ancillas returns all ancilla indices, X ancillas before Z ancillas.
func (l *Lattice) Ancillas() []int { return slices.Concat(l.xAnc, l.zAnc) }

// Qubits returns every qubit index in ascending order.
func (l *Lattice) Qubits() []int {
	qs := make([]int, len(l.coords))
	for i := range qs {
		qs[i] = i
	}
	return qs
}

// Coord returns the position of qubit q.
// Returns ErrQubitRange if q is not a qubit of l.
func (l *Lattice) Coord(q int) (Coord, error) {
	if q < 0 || q >= len(l.coords) {
		return Coord{}, fmt.Errorf("Coord(%d): %w", q, ErrQubitRange)
	}
	return l.coords[q], nil
}

// Coords returns the position of every qubit, indexed by qubit.
func (l *Lattice) Coords() []Coord { return slices.Clone(l.coords) }

// Role returns the role of qubit q.
// Returns ErrQubitRange if q is not a qubit of l.
func (l *Lattice) Role(q int) (Role, error) {
	if q < 0 || q >= len(l.roles) {
		return 0, fmt.Errorf("Role(%d): %w", q, ErrQubitRange)
	}
	return l.roles[q], nil
}

// QubitAt returns the qubit placed at c, if any.
func (l *Lattice) QubitAt(c Coord) (int, bool) {
	q, ok := l.index[c]
	return q, ok
}

// DataAt returns the data qubit placed at c, if any.
func (l *Lattice) DataAt(c Coord) (int, bool) {
	q, ok := l.index[c]
	if !ok || l.roles[q] != RoleData {
		return 0, false
	}
	return q, true
}

// Describe writes one tab-aligned row per qubit: index, role, x, y.
func (l *Lattice) Describe(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUBIT\tROLE\tX\tY")
	for q, c := range l.coords {
		x, y := c.Point()
		fmt.Fprintf(tw, "%d\t%s\t%g\t%g\n", q, l.roles[q], x, y)
	}
	return tw.Flush()
}
