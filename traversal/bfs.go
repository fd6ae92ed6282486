package traversal

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/mlstore"
)

// BFS runs breadth-first search over g from start, adapting its frontier
// representation to the frontier's size as it grows and shrinks (spec
// §4.8's SMALL/QUEUE/Q2R/RD/R2Q state machine). Q2R's round already uses
// RD's scan-all-vertices representation (it is about to force RD anyway,
// so there is no reason to spend one more round paying for an explicit
// queue first) and, symmetrically, R2Q's round already uses QUEUE's
// explicit-vector representation — both states exist as named transition
// markers in the result rather than as a third distinct storage strategy.
func BFS(g *graph.Graph, start csr.NodeId, opts ...Option) (*Result, error) {
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

	visited := newVisitedBits(maxNodes)
	visited.claim(int(start))
	res.Depth[start] = 0
	res.Order = append(res.Order, start)

	if o.visitFw != nil {
		if err := o.visitFw(start); err != nil {
			return res, err
		}
	}

	curr := []csr.NodeId{start}
	st := stateSmall
	level := 0

	for len(curr) > 0 {
		select {
		case <-o.ctx.Done():
			return res, o.ctx.Err()
		default:
		}

		res.levelCount = append(res.levelCount, len(curr))

		var next []csr.NodeId
		var downs map[csr.EdgeId]struct{}
		if o.saveChildren {
			downs = make(map[csr.EdgeId]struct{})
		}

		if usesScan(st) {
			res.levelQueueBegin = append(res.levelQueueBegin, -1)
			next = scanRound(g, maxNodes, level, res, visited, o, downs)
		} else {
			res.levelQueueBegin = append(res.levelQueueBegin, len(res.queue))
			res.queue = append(res.queue, curr...)
			if o.multiThread && st != stateSmall {
				var err error
				next, err = parallelExpand(g, curr, level, res, visited, o, downs)
				if err != nil {
					return res, err
				}
			} else {
				next = sequentialExpand(g, curr, level, res, visited, o, downs)
			}
		}

		if o.saveChildren {
			res.downEdges = append(res.downEdges, downs)
		}

		res.Order = append(res.Order, next...)
		st = nextState(st, len(curr), len(next))
		curr = next
		level++
	}

	if o.visitRv != nil {
		if err := ReversePass(res, maxNodes, o.visitRv); err != nil {
			return res, err
		}
	}

	return res, nil
}

func usesScan(st state) bool { return st == stateQ2R || st == stateRD }

func nextState(st state, currCount, nextCount int) state {
	switch st {
	case stateSmall:
		if nextCount >= smallToQueueAt {
			return stateQueue
		}
		return stateSmall
	case stateQueue:
		if nextCount >= queueToRDCount && nextCount >= queueToRDRatio*currCount {
			return stateQ2R
		}
		return stateQueue
	case stateQ2R:
		return stateRD
	case stateRD:
		if nextCount <= rdToQueueRatio*currCount {
			return stateR2Q
		}
		return stateRD
	case stateR2Q:
		return stateQueue
	default:
		return stateQueue
	}
}

// sequentialExpand processes one queue-like round without parallelism,
// grounded on bfs.walker.enqueueNeighbors' loop shape.
func sequentialExpand(g *graph.Graph, frontier []csr.NodeId, level int, res *Result, visited *visitedBits, o Options, downs map[csr.EdgeId]struct{}) []csr.NodeId {
	var next []csr.NodeId
	for _, v := range frontier {
		discoverFrom(g, v, level, res, visited, o, downs, func(n csr.NodeId) { next = append(next, n) })
	}

	return next
}

// parallelExpand fans a queue-like round's frontier out across a worker
// pool; each worker owns a disjoint chunk of the frontier slice and
// accumulates into its own local buffer, merged under a mutex once it is
// done (spec §4.8: "thread-local next-frontier buffer ... reserves space
// with a fetch-and-add"; a mutex-guarded append achieves the same
// exclusion more simply for this in-memory engine).
func parallelExpand(g *graph.Graph, frontier []csr.NodeId, level int, res *Result, visited *visitedBits, o Options, downs map[csr.EdgeId]struct{}) ([]csr.NodeId, error) {
	const chunkSize = 256

	var mu sync.Mutex
	var next []csr.NodeId

	var eg errgroup.Group
	if o.workers > 0 {
		eg.SetLimit(o.workers)
	}
	for start := 0; start < len(frontier); start += chunkSize {
		end := start + chunkSize
		if end > len(frontier) {
			end = len(frontier)
		}
		chunk := frontier[start:end]
		eg.Go(func() error {
			var local []csr.NodeId
			for _, v := range chunk {
				discoverFrom(g, v, level, res, visited, o, nil, func(n csr.NodeId) { local = append(local, n) })
			}
			if len(local) > 0 {
				mu.Lock()
				next = append(next, local...)
				mu.Unlock()
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Down-edge recording is left sequential (downs is a plain map, not
	// safe for concurrent writes) — cheap relative to the traversal itself
	// since it only runs when WithSaveChildren is set.
	if downs != nil {
		for _, v := range frontier {
			recordDownEdges(g, v, res, o, downs)
		}
	}

	return next, nil
}

// discoverFrom walks v's forward (or reverse, if ReverseDirection) edges,
// claiming each unvisited target for the next frontier and recording
// parent/depth. onDiscover is called once per newly-claimed vertex.
func discoverFrom(g *graph.Graph, v csr.NodeId, level int, res *Result, visited *visitedBits, o Options, downs map[csr.EdgeId]struct{}, onDiscover func(csr.NodeId)) {
	it := iterFor(g, v, o)
	for {
		ent, ok := it.Next()
		if !ok {
			return
		}
		e, target := ent.Edge, ent.Target
		if o.navigator != nil && !o.navigator(v, e, target) {
			continue
		}
		if visited.claim(int(target)) {
			res.Depth[target] = int32(level + 1)
			res.Parent[target] = v
			res.hasParent[target] = true
			if downs != nil {
				downs[e] = struct{}{}
			}
			onDiscover(target)
		}
	}
}

// recordDownEdges re-walks v's edges purely to populate downs for targets
// that were claimed (by any worker, during this level's parallel
// expansion) with v as their parent — split out from discoverFrom so the
// hot parallel path never touches the shared, non-concurrent-safe downs
// map.
func recordDownEdges(g *graph.Graph, v csr.NodeId, res *Result, o Options, downs map[csr.EdgeId]struct{}) {
	it := iterFor(g, v, o)
	for {
		ent, ok := it.Next()
		if !ok {
			return
		}
		e, target := ent.Edge, ent.Target
		if res.hasParent[target] && res.Parent[target] == v {
			downs[e] = struct{}{}
		}
	}
}

func iterFor(g *graph.Graph, v csr.NodeId, o Options) *mlstore.Iterator {
	if o.reverseDirection {
		return g.InIter(v)
	}

	return g.OutIter(v)
}

// scanRound implements the RD/Q2R representation: instead of consuming an
// explicit next-frontier vector, it scans every vertex and re-derives the
// frontier from which ones are at this level (spec: "scan all vertices,
// test bitmap"). Level-to-vertex membership for the reverse pass is
// recovered later by re-scanning Depth, which is why levelQueueBegin is -1
// for a scanned level.
func scanRound(g *graph.Graph, maxNodes, level int, res *Result, visited *visitedBits, o Options, downs map[csr.EdgeId]struct{}) []csr.NodeId {
	var next []csr.NodeId
	for v := 0; v < maxNodes; v++ {
		if res.Depth[v] != int32(level) {
			continue
		}
		discoverFrom(g, csr.NodeId(v), level, res, visited, o, downs, func(n csr.NodeId) { next = append(next, n) })
	}

	return next
}
