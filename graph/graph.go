package graph

import (
	"sync"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/delta"
	"github.com/mlcsrgraph/mlcsr/mlstore"
	"github.com/mlcsrgraph/mlcsr/pagemgr"
)

// Graph is the read/ingest facade over one MLCSR store pair (spec §4.7).
// The zero value is not usable; construct with InMemory or Open.
type Graph struct {
	cfg      config
	maxNodes int

	outStore *mlstore.Store
	inStore  *mlstore.Store

	vMgrOut *pagemgr.Manager[csr.VertexRec]
	eMgrOut *pagemgr.Manager[csr.NodeId]
	vMgrIn  *pagemgr.Manager[csr.VertexRec]
	eMgrIn  *pagemgr.Manager[csr.NodeId]

	ingestMu sync.Mutex // brackets begin_tx/commit_tx; matches delta's own single-writer discipline
	d        *delta.Delta

	columnsMu sync.RWMutex
	nodeCols  map[string]nodeColumn
	edgeCols  map[string]edgeColumn

	// promoted resolves a pre-checkpoint (WritableLevel) EdgeId handed out
	// by AddEdge to the published EdgeId it landed at, once the checkpoint
	// that publishes it has run. Entries accumulate for the Graph's
	// lifetime: a caller may hold an EdgeRef across many checkpoints
	// before ever using it for a property write.
	promotedMu sync.RWMutex
	promoted   map[csr.EdgeId]csr.EdgeId
}

// InMemory constructs an empty, purely in-memory Graph for maxNodes
// vertices — the module's primary constructor, since on-disk persistence
// is an external collaborator (spec §1 Non-goals / §6).
func InMemory(maxNodes int, opts ...GraphOption) (*Graph, error) {
	cfg := newConfig(opts...)

	vMgrOut, err := pagemgr.New[csr.VertexRec](pagemgr.Config{PageLength: cfg.pageLen})
	if err != nil {
		return nil, err
	}
	eMgrOut, err := pagemgr.New[csr.NodeId](pagemgr.Config{PageLength: cfg.pageLen})
	if err != nil {
		return nil, err
	}
	vMgrIn, err := pagemgr.New[csr.VertexRec](pagemgr.Config{PageLength: cfg.pageLen})
	if err != nil {
		return nil, err
	}
	eMgrIn, err := pagemgr.New[csr.NodeId](pagemgr.Config{PageLength: cfg.pageLen})
	if err != nil {
		return nil, err
	}

	return &Graph{
		cfg:      cfg,
		maxNodes: maxNodes,
		outStore: mlstore.New(),
		inStore:  mlstore.New(),
		vMgrOut:  vMgrOut,
		eMgrOut:  eMgrOut,
		vMgrIn:   vMgrIn,
		eMgrIn:   eMgrIn,
		d:        delta.New(maxNodes),
		nodeCols: make(map[string]nodeColumn),
		edgeCols: make(map[string]edgeColumn),
		promoted: make(map[csr.EdgeId]csr.EdgeId),
	}, nil
}

// Open is the on-disk-backed constructor named by spec §6's external
// interface (`open(dir) -> Graph`). Persistence beyond the in-memory
// layout is an explicit Non-goal (spec §1/§5), so Open here simply
// delegates to InMemory — a real on-disk loader is the external
// collaborator spec.md describes, not a responsibility of this package.
func Open(_ string, maxNodes int, opts ...GraphOption) (*Graph, error) {
	return InMemory(maxNodes, opts...)
}

// MaxNodes returns the configured vertex-id upper bound.
func (g *Graph) MaxNodes() int { return g.maxNodes }

// NumLevels returns the number of published levels (out-direction and
// in-direction stores are always published together by Checkpoint, so
// either store's count is equivalent).
func (g *Graph) NumLevels() int { return g.outStore.NumLevels() }

// MinLevel returns the sliding-window low-water mark.
func (g *Graph) MinLevel() csr.Level { return g.outStore.MinLevel() }

// OutDegree returns v's out-degree at the newest level, or 0 if v is out
// of range or tombstoned (spec §7: NotFound is never fatal).
func (g *Graph) OutDegree(v csr.NodeId) int { return g.outStore.Degree(v) }

// InDegree returns v's in-degree at the newest level.
func (g *Graph) InDegree(v csr.NodeId) int { return g.inStore.Degree(v) }

// OutIter returns a fresh iterator over v's out-edges at the newest level.
func (g *Graph) OutIter(v csr.NodeId) *mlstore.Iterator { return g.outStore.Iter(v) }

// InIter returns a fresh iterator over v's in-edges at the newest level.
func (g *Graph) InIter(v csr.NodeId) *mlstore.Iterator { return g.inStore.Iter(v) }
