package sssp

import (
	"container/heap"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// Compute runs Dijkstra's algorithm from source, reading each edge's
// weight from the registered uint32 property column weightColumn.
func Compute(g *graph.Graph, source csr.NodeId, weightColumn string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	n := g.MaxNodes()
	if int(source) < 0 || int(source) >= n {
		return nil, ErrStartNotFound
	}

	res := &Result{
		Source: source,
		Dist:   make([]int64, n),
		Parent: make([]csr.NodeId, n),
		hasPar: make([]bool, n),
	}
	for i := range res.Dist {
		res.Dist[i] = Unreached
	}
	res.Dist[source] = 0

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	locks := &lockTable{}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		if d > res.Dist[u] {
			// stale lazy-decrease-key entry
			continue
		}
		visited[u] = true

		updates, err := relax(g, u, weightColumn, res, locks, o.workers)
		if err != nil {
			return nil, err
		}
		for _, v := range updates {
			heap.Push(&pq, &nodeItem{id: v, dist: res.Dist[v]})
		}
	}

	return res, nil
}

// relax examines u's out-edges and attempts to improve each target's
// tentative distance. When o.workers > 1, the edge list is chunked across
// a worker pool; each candidate update is serialized through the
// hash-partitioned spinlock table keyed by the target vertex, since
// multiple workers (relaxing different finalized vertices concurrently
// across separate Compute internals, or future callers sharing a Result)
// could otherwise race on the same target's dist/parent slots.
func relax(g *graph.Graph, u csr.NodeId, weightColumn string, res *Result, locks *lockTable, workers int) ([]csr.NodeId, error) {
	type edge struct {
		target csr.NodeId
		id     csr.EdgeId
	}
	var edges []edge
	it := g.OutIter(u)
	for {
		ent, ok := it.Next()
		if !ok {
			break
		}
		edges = append(edges, edge{target: ent.Target, id: ent.Edge})
	}

	if len(edges) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var updated []csr.NodeId

	relaxOne := func(e edge) error {
		w, err := g.EdgePropertyU32(weightColumn, e.id)
		if err != nil {
			return err
		}

		lock := locks.lock(e.target)
		lock.Lock()
		candidate := res.Dist[u] + int64(w)
		if candidate < res.Dist[e.target] {
			res.Dist[e.target] = candidate
			res.Parent[e.target] = u
			res.hasPar[e.target] = true
			lock.Unlock()

			mu.Lock()
			updated = append(updated, e.target)
			mu.Unlock()

			return nil
		}
		lock.Unlock()

		return nil
	}

	if workers <= 1 {
		for _, e := range edges {
			if err := relaxOne(e); err != nil {
				return nil, err
			}
		}

		return updated, nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for _, e := range edges {
		e := e
		eg.Go(func() error { return relaxOne(e) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return updated, nil
}

type nodeItem struct {
	id   csr.NodeId
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
