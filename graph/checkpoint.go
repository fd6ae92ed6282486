package graph

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/delta"
	"github.com/mlcsrgraph/mlcsr/snapshot"
)

// Checkpoint flattens the accumulated delta into one new immutable level
// per direction and advances every registered property column. No reader
// ever observes a partial publish (spec §4.6): both directions must build
// successfully before the delta is cleared. In this implementation
// snapshot.Build can only fail on a caller-provided configuration error
// (snapshot.ErrBadMaxNodes, returned when the Graph was constructed with a
// non-positive maxNodes) since pagemgr treats page exhaustion as fatal rather than
// a recoverable error — so the rollback path exists for future I/O-backed
// collaborators more than it is exercised by this in-memory one.
func (g *Graph) Checkpoint(opts ...CheckpointOption) error {
	g.ingestMu.Lock()
	defer g.ingestMu.Unlock()

	ccfg := newCheckpointConfig(g.cfg.defaultWindow, opts...)

	snap := g.d.Snapshot()

	outIn, inIn := g.splitDirections(snap)

	var sOpts []snapshot.Option
	if ccfg.WindowSize > 0 {
		sOpts = append(sOpts, snapshot.WithWindowSize(ccfg.WindowSize))
	}

	_, resolved, err := snapshot.Build(g.outStore, outIn, sOpts...)
	if err != nil {
		return err
	}
	if _, _, err := snapshot.Build(g.inStore, inIn, sOpts...); err != nil {
		return err
	}

	g.promotedMu.Lock()
	for old, pub := range resolved {
		g.promoted[old] = pub
	}
	g.promotedMu.Unlock()

	if !ccfg.NoProperties {
		g.advanceColumns(snap)
	} else {
		// No pending writes: every node column shares its previous segment.
		g.advanceColumns(delta.Snapshot{})
	}

	g.d.Clear()

	return nil
}

// splitDirections derives the out-direction Input directly from snap and
// the in-direction Input by inverting it: every added out-edge src->dst
// becomes an added in-edge at dst pointing back at src, and every deleted
// out-edge is resolved to its target so the matching in-edge (found by
// scanning dst's current in-adjacency for a target == src) can be deleted
// too. Node tombstones apply identically to both directions.
func (g *Graph) splitDirections(snap delta.Snapshot) (snapshot.Input, snapshot.Input) {
	outAdded := make(map[csr.NodeId][]snapshot.AddedTarget, len(snap.Vertices))
	outDeleted := make(map[csr.NodeId][]csr.EdgeId)
	inAdded := make(map[csr.NodeId][]snapshot.AddedTarget)
	inDeleted := make(map[csr.NodeId][]csr.EdgeId)

	for src, vd := range snap.Vertices {
		for _, ae := range vd.AddedEdges {
			outAdded[src] = append(outAdded[src], snapshot.AddedTarget{Target: ae.Target, Origin: ae.ID})
			// The in-direction entry is synthetic (mirrored, not itself a
			// caller-visible edge), so it carries no resolvable origin.
			inAdded[ae.Target] = append(inAdded[ae.Target], snapshot.AddedTarget{Target: src, Origin: csr.NilEdge})
		}
		for e := range vd.DeletedEdges {
			outDeleted[src] = append(outDeleted[src], e)
			if dst, ok := g.resolveOutTarget(e); ok {
				if rev, found := g.findInEdge(dst, src); found {
					inDeleted[dst] = append(inDeleted[dst], rev)
				}
			}
		}
	}

	outIn := snapshot.Input{
		VertexMgr:  g.vMgrOut,
		EdgeMgr:    g.eMgrOut,
		MaxNodes:   g.maxNodes,
		PageLen:    g.cfg.pageLen,
		Added:      outAdded,
		Deleted:    outDeleted,
		Tombstoned: snap.Tombstoned,
	}
	inIn := snapshot.Input{
		VertexMgr:  g.vMgrIn,
		EdgeMgr:    g.eMgrIn,
		MaxNodes:   g.maxNodes,
		PageLen:    g.cfg.pageLen,
		Added:      inAdded,
		Deleted:    inDeleted,
		Tombstoned: snap.Tombstoned,
	}

	return outIn, inIn
}

// resolveOutTarget returns the target vertex a not-yet-deleted, already
// published out-edge id points at, by reading it back from the out-store's
// own published level (deletions act on slots, not on the edge table's
// contents, so the target is always still readable there).
func (g *Graph) resolveOutTarget(e csr.EdgeId) (csr.NodeId, bool) {
	lvl := g.outStore.LevelAt(e.Lvl)
	if lvl == nil || int(e.Idx) >= lvl.Edges.Len() {
		return 0, false
	}

	return lvl.Edges.Get(e.Idx), true
}

// findInEdge scans dst's current in-adjacency for an entry whose target is
// src, returning its EdgeId. There is no reverse-lookup index from an
// out-edge to its mirrored in-edge, so this walks the adjacency directly;
// acceptable since edge deletions are a small fraction of a checkpoint's
// work relative to the checkpoint build itself.
func (g *Graph) findInEdge(dst, src csr.NodeId) (csr.EdgeId, bool) {
	it := g.inStore.Iter(dst)
	for {
		entry, ok := it.Next()
		if !ok {
			return csr.NilEdge, false
		}
		if entry.Target == src {
			return entry.Edge, true
		}
	}
}

// advanceColumns carries every registered property column forward onto
// the level just published, reading touched values out of snap.
func (g *Graph) advanceColumns(snap delta.Snapshot) {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	prevLevel := g.outStore.TopLevel() - 1

	for name, col := range g.nodeCols {
		touched := snap.PendingNodeProps[name]
		col.advance(prevLevel, g.maxNodes, touched)
	}
	for name, col := range g.edgeCols {
		touched := snap.PendingEdgeProps[name]
		col.advanceEdges(touched)
	}
}
