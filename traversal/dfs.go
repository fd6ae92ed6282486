package traversal

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// dfsWalker mirrors dfs.dfsWalker: sequential, recursive, pre/post-order
// hooks (WithVisitForward/WithVisitReverse), a navigator predicate in
// place of FilterNeighbor. Tarjan SCC (package scc) does not use it.
type dfsWalker struct {
	g       *graph.Graph
	o       Options
	visited *visitedBits
	res     *Result
}

// DFS performs depth-first search on g starting at start. WithReverseDirection
// walks in-edges instead of out-edges; WithNavigator filters edges;
// WithVisitForward/WithVisitReverse are the pre-order/post-order hooks.
func DFS(g *graph.Graph, start csr.NodeId, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	maxNodes := g.MaxNodes()
	if int(start) < 0 || int(start) >= maxNodes {
		return nil, ErrStartNotFound
	}

	res := &Result{
		Depth:            make([]int32, maxNodes),
		Parent:           make([]csr.NodeId, maxNodes),
		hasParent:        make([]bool, maxNodes),
		Order:            make([]csr.NodeId, 0, maxNodes),
		reverseDirection: o.reverseDirection,
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	w := &dfsWalker{g: g, o: o, visited: newVisitedBits(maxNodes), res: res}
	if err := w.visit(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// DFSForest runs DFS from every not-yet-visited vertex in id order,
// covering disconnected components — grounded on dfs.DFS's
// WithFullTraversal mode.
func DFSForest(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	maxNodes := g.MaxNodes()
	res := &Result{
		Depth:            make([]int32, maxNodes),
		Parent:           make([]csr.NodeId, maxNodes),
		hasParent:        make([]bool, maxNodes),
		Order:            make([]csr.NodeId, 0, maxNodes),
		reverseDirection: o.reverseDirection,
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	w := &dfsWalker{g: g, o: o, visited: newVisitedBits(maxNodes), res: res}
	for v := 0; v < maxNodes; v++ {
		if res.Depth[v] >= 0 {
			continue
		}
		if err := w.visit(csr.NodeId(v), 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (w *dfsWalker) visit(v csr.NodeId, depth int) error {
	select {
	case <-w.o.ctx.Done():
		return w.o.ctx.Err()
	default:
	}

	if !w.visited.claim(int(v)) {
		return nil
	}
	w.res.Depth[v] = int32(depth)
	w.res.Order = append(w.res.Order, v)

	if w.o.visitFw != nil {
		if err := w.o.visitFw(v); err != nil {
			return err
		}
	}

	it := iterFor(w.g, v, w.o)
	for {
		ent, ok := it.Next()
		if !ok {
			break
		}
		if w.o.navigator != nil && !w.o.navigator(v, ent.Edge, ent.Target) {
			continue
		}
		if w.visited.isSet(int(ent.Target)) {
			continue
		}
		w.res.Parent[ent.Target] = v
		w.res.hasParent[ent.Target] = true
		if w.o.saveChildren {
			w.ensureDownLevel(depth)
			w.res.downEdges[depth][ent.Edge] = struct{}{}
		}
		if err := w.visit(ent.Target, depth+1); err != nil {
			return err
		}
	}

	if w.o.visitRv != nil {
		return w.o.visitRv(v)
	}

	return nil
}

func (w *dfsWalker) ensureDownLevel(depth int) {
	for len(w.res.downEdges) <= depth {
		w.res.downEdges = append(w.res.downEdges, make(map[csr.EdgeId]struct{}))
	}
}
