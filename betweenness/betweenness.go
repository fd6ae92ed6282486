package betweenness

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// Compute runs Brandes' algorithm, accumulating one source-rooted
// shortest-path DAG per vertex into a running centrality total.
func Compute(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	n := g.MaxNodes()
	scores := make([]float64, n)
	if n == 0 {
		return &Result{Scores: scores}, nil
	}

	if o.workers <= 1 {
		for s := 0; s < n; s++ {
			accumulate(g, csr.NodeId(s), n, scores)
		}
	} else {
		var mu sync.Mutex
		var eg errgroup.Group
		eg.SetLimit(o.workers)
		for s := 0; s < n; s++ {
			s := s
			eg.Go(func() error {
				local := make([]float64, n)
				accumulate(g, csr.NodeId(s), n, local)
				mu.Lock()
				for i, v := range local {
					scores[i] += v
				}
				mu.Unlock()
				return nil
			})
		}
		_ = eg.Wait() // accumulate never returns an error
	}

	if o.normalize && n > 2 {
		scale := 1.0 / float64((n-1)*(n-2))
		for v := range scores {
			scores[v] *= scale
		}
	}

	return &Result{Scores: scores}, nil
}

// accumulate runs one source-rooted BFS building the full shortest-path
// DAG (distance, path count sigma, and the set of predecessors lying on a
// shortest path) rather than the single-parent tree traversal.BFS builds,
// since Brandes' reverse accumulation needs every predecessor that
// contributes a shortest path, not just the first one claimed. It then
// walks the BFS visit order backwards, distributing each vertex's
// dependency score to its predecessors, and adds every non-source vertex's
// dependency into out.
func accumulate(g *graph.Graph, s csr.NodeId, n int, out []float64) {
	dist := make([]int64, n)
	sigma := make([]float64, n)
	preds := make([][]csr.NodeId, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[s] = 0
	sigma[s] = 1

	queue := make([]csr.NodeId, 0, n)
	queue = append(queue, s)
	stack := make([]csr.NodeId, 0, n)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		stack = append(stack, u)

		it := g.OutIter(u)
		for {
			ent, ok := it.Next()
			if !ok {
				break
			}
			v := ent.Target
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
			if dist[v] == dist[u]+1 {
				sigma[v] += sigma[u]
				preds[v] = append(preds[v], u)
			}
		}
	}

	delta := make([]float64, n)
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, u := range preds[w] {
			if sigma[w] == 0 {
				continue
			}
			delta[u] += (sigma[u] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			out[w] += delta[w]
		}
	}
}
