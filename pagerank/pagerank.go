package pagerank

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

// Compute runs pull-based PageRank power iteration over g and returns each
// vertex's converged (or iteration-budget-exhausted) score.
func Compute(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := newOptions(opts...)
	n := g.MaxNodes()
	if n == 0 {
		return &Result{Converged: true}, nil
	}

	outDegree := make([]int, n)
	var sinks []csr.NodeId
	for v := 0; v < n; v++ {
		d := g.OutDegree(csr.NodeId(v))
		outDegree[v] = d
		if d == 0 {
			sinks = append(sinks, csr.NodeId(v))
		}
	}

	N := float64(n)
	scores := make([]float64, n)
	next := make([]float64, n)
	initial := 1.0 / N
	for v := range scores {
		scores[v] = initial
	}

	res := &Result{}
	for iter := 0; iter < o.iterations; iter++ {
		sinkMass := 0.0
		for _, s := range sinks {
			sinkMass += scores[s]
		}
		sinkTerm := o.damping * sinkMass / N
		base := (1-o.damping)/N + sinkTerm

		maxDiff, err := scoreRound(g, o, scores, next, outDegree, base, o.damping)
		if err != nil {
			return nil, err
		}

		scores, next = next, scores
		res.Iterations = iter + 1
		res.MaxDiff = maxDiff

		if o.tolerance > 0 && maxDiff < o.tolerance {
			res.Converged = true
			break
		}
	}

	res.Scores = scores

	return res, nil
}

// scoreRound computes next[v] for every vertex from scores, optionally
// fanning the vertex range out across o.workers workers via errgroup —
// each worker owns a disjoint chunk and writes only to its own slice
// indices, so no locking is needed across workers.
func scoreRound(g *graph.Graph, o Options, scores, next []float64, outDegree []int, base, damping float64) (float64, error) {
	n := len(scores)
	if o.workers <= 1 {
		return scoreChunk(g, scores, next, outDegree, base, damping, 0, n), nil
	}

	chunk := o.chunkSize
	numChunks := (n + chunk - 1) / chunk
	diffs := make([]float64, numChunks)

	var eg errgroup.Group
	eg.SetLimit(o.workers)

	idx := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		i, s, e := idx, start, end
		idx++
		eg.Go(func() error {
			diffs[i] = scoreChunk(g, scores, next, outDegree, base, damping, s, e)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	maxDiff := 0.0
	for _, d := range diffs {
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

func scoreChunk(g *graph.Graph, scores, next []float64, outDegree []int, base, damping float64, start, end int) float64 {
	maxDiff := 0.0
	for v := start; v < end; v++ {
		sum := 0.0
		it := g.InIter(csr.NodeId(v))
		for {
			ent, ok := it.Next()
			if !ok {
				break
			}
			if d := outDegree[ent.Target]; d > 0 {
				sum += scores[ent.Target] / float64(d)
			}
		}

		newScore := base + damping*sum
		next[v] = newScore
		if diff := math.Abs(newScore - scores[v]); diff > maxDiff {
			maxDiff = diff
		}
	}

	return maxDiff
}
