package scc

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// Find partitions g's vertices into strongly connected components using
// Tarjan's algorithm.
func Find(g *graph.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.MaxNodes()
	w := &walker{
		g:         g,
		index:     make([]int32, n),
		lowlink:   make([]int32, n),
		onStack:   make([]bool, n),
		visited:   make([]bool, n),
		component: make([]int32, n),
	}
	for i := range w.component {
		w.component[i] = -1
	}

	for v := 0; v < n; v++ {
		if !w.visited[v] {
			w.strongConnect(csr.NodeId(v))
		}
	}

	return &Result{Component: w.component, Count: w.nextComponent}, nil
}

// walker carries Tarjan's bookkeeping: discovery index, low-link, the
// explicit component stack, and next-index/next-component counters.
// Grounded on dfs.dfsWalker's recursive shape, extended with Tarjan's
// per-vertex index/lowlink state.
type walker struct {
	g *graph.Graph

	nextIndex     int32
	nextComponent int

	index     []int32
	lowlink   []int32
	onStack   []bool
	visited   []bool
	stack     []csr.NodeId
	component []int32
}

func (w *walker) strongConnect(v csr.NodeId) {
	w.visited[v] = true
	w.index[v] = w.nextIndex
	w.lowlink[v] = w.nextIndex
	w.nextIndex++
	w.stack = append(w.stack, v)
	w.onStack[v] = true

	it := w.g.OutIter(v)
	for {
		ent, ok := it.Next()
		if !ok {
			break
		}
		t := ent.Target
		switch {
		case !w.visited[t]:
			w.strongConnect(t)
			if w.lowlink[t] < w.lowlink[v] {
				w.lowlink[v] = w.lowlink[t]
			}
		case w.onStack[t]:
			if w.index[t] < w.lowlink[v] {
				w.lowlink[v] = w.index[t]
			}
		}
	}

	if w.lowlink[v] != w.index[v] {
		return
	}

	id := int32(w.nextComponent)
	w.nextComponent++
	for {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.onStack[top] = false
		w.component[top] = id
		if top == v {
			break
		}
	}
}
