package traversal

import (
	"context"
	"errors"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// Frontier-size thresholds driving the adaptive state machine (spec §4.8).
const (
	smallToQueueAt = 128  // next_count >= this leaves SMALL
	queueToRDCount = 1024 // next_count >= this...
	queueToRDRatio = 5    // ...and next_count >= ratio*curr_count leaves QUEUE (via Q2R)
	rdToQueueRatio = 2    // next_count <= ratio*curr_count leaves RD (via R2Q)
)

// state names the current frontier representation.
type state int

const (
	stateSmall state = iota
	stateQueue
	stateQ2R
	stateRD
	stateR2Q
)

// ErrGraphNil is returned when a nil Graph is passed to BFS/DFS.
var ErrGraphNil = errors.New("traversal: graph is nil")

// ErrStartNotFound is returned when the start vertex is out of range. A
// tombstoned start vertex is not rejected.
var ErrStartNotFound = errors.New("traversal: start vertex not found")

// NavigatorFunc filters an edge before its target may join the next
// frontier (spec's check_navigator(v, e) -> bool).
type NavigatorFunc func(v csr.NodeId, e csr.EdgeId, target csr.NodeId) bool

// VisitFunc is a forward- or reverse-pass visitor callback.
type VisitFunc func(v csr.NodeId) error

// Options configures one BFS call via functional options, matching the
// teacher's WithX convention.
type Options struct {
	ctx              context.Context
	multiThread      bool
	reverseDirection bool
	saveChildren     bool
	workers          int
	navigator        NavigatorFunc
	visitFw          VisitFunc
	visitRv          VisitFunc
}

// Option configures Options.
type Option func(*Options)

// WithContext sets the cancellation context checked at each level boundary.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

// WithMultiThread enables parallel frontier expansion in the QUEUE and R2Q
// states; SMALL, Q2R and RD rounds still expand sequentially.
func WithMultiThread(workers int) Option {
	return func(o *Options) {
		o.multiThread = true
		o.workers = workers
	}
}

// WithReverseDirection traverses in-edges instead of out-edges.
func WithReverseDirection() Option {
	return func(o *Options) { o.reverseDirection = true }
}

// WithSaveChildren records, per level, which edges were tree edges, for a
// later ReversePass.
func WithSaveChildren() Option {
	return func(o *Options) { o.saveChildren = true }
}

// WithNavigator installs a predicate that filters edges before their
// target may join the next frontier.
func WithNavigator(fn NavigatorFunc) Option {
	return func(o *Options) { o.navigator = fn }
}

// WithVisitForward installs the forward-pass (pre-order/discovery) hook.
func WithVisitForward(fn VisitFunc) Option {
	return func(o *Options) { o.visitFw = fn }
}

// WithVisitReverse installs the hook ReversePass calls per vertex.
func WithVisitReverse(fn VisitFunc) Option {
	return func(o *Options) { o.visitRv = fn }
}

func newOptions(opts ...Option) Options {
	o := Options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is one BFS execution's output: visit order, per-vertex depth and
// parent, and (if WithSaveChildren) the down-edge sets ReversePass needs.
type Result struct {
	Order     []csr.NodeId
	Depth     []int32 // -1 = unvisited, indexed by NodeId
	Parent    []csr.NodeId
	hasParent []bool

	levelCount      []int
	levelQueueBegin []int // -1 means "scan the bitmap", see queue
	queue           []csr.NodeId

	// downEdges[level] holds the tree edges discovered while expanding
	// that level's frontier, keyed by EdgeId. A plain map, not a Roaring
	// bitmap: Roaring indexes a single dense uint32 domain (node ids, or
	// one origin level's local edge-table slots), but an EdgeId here
	// composites an arbitrary origin level with a local index, which has
	// no single dense domain to pack into — so this one sub-concern stays
	// a stdlib map even though Roaring is used throughout the rest of the
	// module.
	downEdges []map[csr.EdgeId]struct{}

	reverseDirection bool
}

// DepthOf returns v's discovery depth and whether v was reached at all.
func (r *Result) DepthOf(v csr.NodeId) (int, bool) {
	if int(v) < 0 || int(v) >= len(r.Depth) || r.Depth[v] < 0 {
		return 0, false
	}

	return int(r.Depth[v]), true
}

// ParentOf returns v's BFS-tree parent, if any (the root and unvisited
// vertices have none).
func (r *Result) ParentOf(v csr.NodeId) (csr.NodeId, bool) {
	if int(v) < 0 || int(v) >= len(r.Parent) || !r.hasParent[v] {
		return 0, false
	}

	return r.Parent[v], true
}

// NumLevels reports how many BFS levels were processed, counting the
// root's level 0 (1 means only the root's level ran).
func (r *Result) NumLevels() int { return len(r.levelCount) }

// IsDownEdge reports whether e was recorded as a tree edge at the given
// BFS level. Only meaningful when the run used WithSaveChildren.
func (r *Result) IsDownEdge(level int, e csr.EdgeId) bool {
	if level < 0 || level >= len(r.downEdges) || r.downEdges[level] == nil {
		return false
	}
	_, ok := r.downEdges[level][e]

	return ok
}
