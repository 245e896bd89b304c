package lattice

import "fmt"

// MinDistance is the smallest supported code distance.
const MinDistance = 2

// Role classifies a qubit by the part it plays in the code.
type Role int

const (
	// RoleData marks one of the d² data qubits.
	RoleData Role = iota
	// RoleXAncilla marks an ancilla measuring an X-type stabilizer.
	RoleXAncilla
	// RoleZAncilla marks an ancilla measuring a Z-type stabilizer.
	RoleZAncilla
)

// String returns a short human readable role name.
func (r Role) String() string {
	switch r {
	case RoleData:
		return "data"
	case RoleXAncilla:
		return "x-ancilla"
	case RoleZAncilla:
		return "z-ancilla"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Coord is a lattice position scaled by 2.
// Data qubits have even components, ancillas odd ones.
type Coord struct {
	X, Y int
}

// Point returns the unscaled position, e.g. Coord{5, 1} -> (2.5, 0.5).
func (c Coord) Point() (x, y float64) {
	return float64(c.X) / 2, float64(c.Y) / 2
}

// Axis returns the scaled component along axis (0 = x, 1 = y).
func (c Coord) Axis(axis int) int {
	if axis == 0 {
		return c.X
	}
	return c.Y
}

// Add offsets c by d component-wise.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String renders the unscaled position, matching the circuit coordinate args.
func (c Coord) String() string {
	x, y := c.Point()
	return fmt.Sprintf("(%g,%g)", x, y)
}

// Lattice is the immutable qubit layout of a distance-d surface code.
// Index slices are never handed out directly; accessors return copies.
type Lattice struct {
	distance int
	data     []int
	xAnc     []int
	zAnc     []int
	coords   []Coord       // coords[q] is the position of qubit q
	index    map[Coord]int // inverse of coords
	roles    []Role
}
