package record

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotMeasured indicates a qubit that does not occur in a History.
var ErrNotMeasured = errors.New("record: qubit not in measurement history")

// History is an immutable, ordered list of measured qubits.
type History struct {
	qubits []int
	pos    map[int]int // qubit -> first position in qubits
}

// NewHistory records qubits in measurement order.
// Complexity: O(n) time and memory.
func NewHistory(qubits ...int) History {
	h := History{
		qubits: slices.Clone(qubits),
		pos:    make(map[int]int, len(qubits)),
	}
	for i, q := range h.qubits {
		if _, dup := h.pos[q]; !dup {
			h.pos[q] = i
		}
	}
	return h
}

// Concat returns the history of h followed by others.
// Complexity: O(total length).
func (h History) Concat(others ...History) History {
	all := slices.Clone(h.qubits)
	for _, o := range others {
		all = append(all, o.qubits...)
	}
	return NewHistory(all...)
}

// Len returns the number of recorded measurements.
func (h History) Len() int { return len(h.qubits) }

// Qubits returns the recorded qubits in measurement order.
func (h History) Qubits() []int { return slices.Clone(h.qubits) }

// Contains reports whether q was measured.
func (h History) Contains(q int) bool {
	_, ok := h.pos[q]
	return ok
}

// Offset returns the backward offset of q's measurement: -1 for the most
// recent entry, -Len() for the oldest.
// Returns ErrNotMeasured if q is absent.
// Complexity: O(1).
func (h History) Offset(q int) (int, error) {
	p, ok := h.pos[q]
	if !ok {
		return 0, fmt.Errorf("Offset(%d) in history of %d: %w", q, len(h.qubits), ErrNotMeasured)
	}
	return p - len(h.qubits), nil
}

// Offsets resolves every qubit in qs, failing on the first absent one.
func (h History) Offsets(qs ...int) ([]int, error) {
	out := make([]int, len(qs))
	for i, q := range qs {
		off, err := h.Offset(q)
		if err != nil {
			return nil, err
		}
		out[i] = off
	}
	return out, nil
}
