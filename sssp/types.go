package sssp

import (
	"errors"
	"math"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// ErrGraphNil is returned when a nil Graph is passed to Compute.
var ErrGraphNil = errors.New("sssp: graph is nil")

// ErrStartNotFound is returned when the source vertex is out of range.
var ErrStartNotFound = errors.New("sssp: source vertex not found")

// Unreached marks a vertex's distance as infinite/not-yet-found.
const Unreached = math.MaxInt64

// Options configures Compute via functional options.
type Options struct {
	workers int
}

// Option configures Options.
type Option func(*Options)

// WithWorkers sets how many goroutines relax a finalized vertex's
// out-edges concurrently (default: sequential).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

func newOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result holds shortest distances (and, if reconstructible, predecessors)
// from one source vertex.
type Result struct {
	Source csr.NodeId
	Dist   []int64 // Unreached for vertices never relaxed
	Parent []csr.NodeId
	hasPar []bool
}

// DistanceTo reports v's shortest distance from the source, and whether v
// was reached.
func (r *Result) DistanceTo(v csr.NodeId) (int64, bool) {
	if int(v) < 0 || int(v) >= len(r.Dist) || r.Dist[v] == Unreached {
		return 0, false
	}

	return r.Dist[v], true
}

// PathTo reconstructs the shortest path from the source to dest.
func (r *Result) PathTo(dest csr.NodeId) ([]csr.NodeId, bool) {
	if _, ok := r.DistanceTo(dest); !ok {
		return nil, false
	}

	path := []csr.NodeId{dest}
	for cur := dest; cur != r.Source; {
		if int(cur) >= len(r.hasPar) || !r.hasPar[cur] {
			return nil, false
		}
		cur = r.Parent[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
