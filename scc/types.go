package scc

import (
	"errors"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// ErrGraphNil is returned when a nil Graph is passed to Find.
var ErrGraphNil = errors.New("scc: graph is nil")

// Result partitions every vertex into strongly connected components.
type Result struct {
	// Component maps each vertex to its component id. Component ids are
	// assigned in the order components are closed (Tarjan's algorithm
	// closes them in reverse topological order), not by representative
	// vertex id.
	Component []int32

	// Count is the number of components found.
	Count int
}

// ComponentOf reports v's component id.
func (r *Result) ComponentOf(v csr.NodeId) (int, bool) {
	if int(v) < 0 || int(v) >= len(r.Component) {
		return 0, false
	}

	return int(r.Component[v]), true
}

// Members returns every vertex in component id, in ascending vertex id
// order.
func (r *Result) Members(id int) []csr.NodeId {
	var out []csr.NodeId
	for v, c := range r.Component {
		if int(c) == id {
			out = append(out, csr.NodeId(v))
		}
	}

	return out
}
