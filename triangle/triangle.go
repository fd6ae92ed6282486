package triangle

import (
	"sort"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// Count returns the number of triangles in g, assuming g was loaded
// undirected-ordered (every edge (u,v) stored once, with u<v).
func Count(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	n := g.MaxNodes()

	adj := make([][]csr.NodeId, n)
	for v := 0; v < n; v++ {
		adj[v] = forwardNeighbors(g, csr.NodeId(v))
	}

	var total int64
	for v := 0; v < n; v++ {
		for _, u := range adj[v] {
			total += intersectCount(adj[v], adj[u], o.ratio)
		}
	}

	return &Result{Count: total}, nil
}

func forwardNeighbors(g *graph.Graph, v csr.NodeId) []csr.NodeId {
	var out []csr.NodeId
	it := g.OutIter(v)
	for {
		ent, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, ent.Target)
	}

	return out
}

// intersectCount counts elements common to a and b, both sorted ascending.
// When one list is at least ratio times longer than the other, the
// smaller list is probed into the larger via binary search instead of a
// linear merge; both strategies count the same set, just at different
// asymptotic cost for skewed degree pairs.
func intersectCount(a, b []csr.NodeId, ratio int) int64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	if len(large) >= ratio*len(small) {
		return probeIntersect(small, large)
	}

	return mergeIntersect(a, b)
}

func mergeIntersect(a, b []csr.NodeId) int64 {
	var count int64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}

	return count
}

func probeIntersect(small, large []csr.NodeId) int64 {
	var count int64
	for _, x := range small {
		idx := sort.Search(len(large), func(i int) bool { return large[i] >= x })
		if idx < len(large) && large[idx] == x {
			count++
		}
	}

	return count
}
