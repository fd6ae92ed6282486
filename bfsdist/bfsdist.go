package bfsdist

import (
	"errors"
	"fmt"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/traversal"
)

// ErrUnreached is returned by PathTo when the destination was never visited.
var ErrUnreached = errors.New("bfsdist: destination not reached")

// Result holds unweighted shortest-path distances from one source vertex,
// computed by a single BFS run.
type Result struct {
	Source csr.NodeId
	bfs    *traversal.Result
}

// Distances runs BFS from source and returns a Result exposing each
// reached vertex's edge-count distance.
func Distances(g *graph.Graph, source csr.NodeId, opts ...traversal.Option) (*Result, error) {
	res, err := traversal.BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Source: source, bfs: res}, nil
}

// DistanceTo reports v's edge-count distance from the source, and whether v
// was reached at all.
func (r *Result) DistanceTo(v csr.NodeId) (int, bool) {
	return r.bfs.DepthOf(v)
}

// Visited reports how many vertices were reached, source included.
func (r *Result) Visited() int {
	return len(r.bfs.Order)
}

// Order returns the BFS visit order.
func (r *Result) Order() []csr.NodeId {
	return r.bfs.Order
}

// PathTo reconstructs the shortest (fewest-edges) path from the source to
// dest by walking parent links back to the root.
func (r *Result) PathTo(dest csr.NodeId) ([]csr.NodeId, error) {
	if _, ok := r.bfs.DepthOf(dest); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
	}

	path := []csr.NodeId{dest}
	for cur := dest; cur != r.Source; {
		parent, ok := r.bfs.ParentOf(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
		}
		path = append(path, parent)
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
