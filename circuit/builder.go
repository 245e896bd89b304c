package circuit

import "slices"

// Builder accumulates instructions and produces an immutable Circuit.
// The zero value is ready to use. A Builder must not be copied after use.
type Builder struct {
	ops []Op
}

// Add appends one instruction. A fusable gate with no targets is dropped,
// and one whose gate and args equal the previous op is merged into it.
func (b *Builder) Add(g Gate, targets []Target, args ...float64) *Builder {
	if g.Fusable() && len(targets) == 0 {
		return b
	}
	if n := len(b.ops); n > 0 && g.Fusable() {
		last := &b.ops[n-1]
		if last.Gate == g && slices.Equal(last.Args, args) {
			// Fresh slice: last.Targets may be shared with another circuit.
			last.Targets = slices.Concat(last.Targets, targets)
			return b
		}
	}
	b.ops = append(b.ops, NewOp(g, targets, args...))
	return b
}

// Gate appends g acting on the given qubits.
func (b *Builder) Gate(g Gate, qubits []int, args ...float64) *Builder {
	return b.Add(g, Qubits(qubits...), args...)
}

// Tick appends a TICK barrier.
func (b *Builder) Tick() *Builder {
	b.ops = append(b.ops, Op{Gate: Tick})
	return b
}

// Extend appends every op of c without fusing across the boundary.
func (b *Builder) Extend(c Circuit) *Builder {
	b.ops = append(b.ops, c.ops...)
	return b
}

// Len returns the number of ops accumulated so far.
func (b *Builder) Len() int { return len(b.ops) }

// Circuit returns the accumulated stream. The builder stays usable; later
// additions do not affect circuits already returned.
func (b *Builder) Circuit() Circuit {
	return Circuit{ops: slices.Clip(slices.Clone(b.ops))}
}
