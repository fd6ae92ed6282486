package graph

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/propcol"
)

// BeginTx and CommitTx bracket a batch of ingest calls (spec §6). The
// writable delta is single-writer by construction (delta.Delta's own plain
// mutex), so BeginTx/CommitTx here only serialize callers against each
// other and against a concurrent Checkpoint; they do not buffer writes.
func (g *Graph) BeginTx() {
	g.ingestMu.Lock()
}

// CommitTx releases the ingest lock taken by BeginTx.
func (g *Graph) CommitTx() {
	g.ingestMu.Unlock()
}

// AddEdge queues src->dst for the next Checkpoint and returns a reference
// to it, valid immediately for DeleteEdge even though it is not yet
// visible to OutIter/InIter. Edge-property writes through it succeed only
// once the Checkpoint that publishes the edge has run.
func (g *Graph) AddEdge(src, dst csr.NodeId) (EdgeRef, error) {
	id, err := g.d.AddEdge(src, dst)
	if err != nil {
		return EdgeRef{}, err
	}

	return EdgeRef{Src: src, ID: id}, nil
}

// DeleteEdge queues ref's removal, effective at the next Checkpoint.
func (g *Graph) DeleteEdge(ref EdgeRef) error {
	return g.d.DeleteEdge(ref.Src, g.resolveEdge(ref.ID))
}

// resolveEdge maps a pre-checkpoint writable EdgeId to the published one it
// was promoted to by a prior Checkpoint, so a caller can go on using the id
// AddEdge/an EdgeRef originally handed them without re-fetching it. An id
// that is not writable, or that has not been promoted yet, passes through
// unchanged.
func (g *Graph) resolveEdge(e csr.EdgeId) csr.EdgeId {
	if !e.IsWritable() {
		return e
	}

	g.promotedMu.RLock()
	defer g.promotedMu.RUnlock()

	if pub, ok := g.promoted[e]; ok {
		return pub
	}

	return e
}

// DeleteNode tombstones v, effective at the next Checkpoint.
func (g *Graph) DeleteNode(v csr.NodeId) error {
	return g.d.DeleteNode(v)
}

// SetNodePropertyU32 queues value for the named 32-bit node column.
func (g *Graph) SetNodePropertyU32(column string, v csr.NodeId, value uint32) error {
	if err := g.checkNodeColumn(column, propcol.TypeU32); err != nil {
		return err
	}

	return g.d.SetNodeProperty(column, v, uint64(value))
}

// SetNodePropertyU64 queues value for the named 64-bit node column.
func (g *Graph) SetNodePropertyU64(column string, v csr.NodeId, value uint64) error {
	if err := g.checkNodeColumn(column, propcol.TypeU64); err != nil {
		return err
	}

	return g.d.SetNodeProperty(column, v, value)
}

// SetEdgePropertyU32 queues value for the named 32-bit edge column. e may
// be the pre-checkpoint id AddEdge returned (resolved here to its
// published id once promoted) or an already-published one directly;
// delta.ErrWritableEdgeProperty if it still hasn't been promoted.
func (g *Graph) SetEdgePropertyU32(column string, e csr.EdgeId, value uint32) error {
	if err := g.checkEdgeColumn(column, propcol.TypeU32); err != nil {
		return err
	}

	return g.d.SetEdgeProperty(column, g.resolveEdge(e), uint64(value))
}

// SetEdgePropertyU64 queues value for the named 64-bit edge column.
func (g *Graph) SetEdgePropertyU64(column string, e csr.EdgeId, value uint64) error {
	if err := g.checkEdgeColumn(column, propcol.TypeU64); err != nil {
		return err
	}

	return g.d.SetEdgeProperty(column, g.resolveEdge(e), value)
}

func (g *Graph) checkNodeColumn(name string, tag propcol.TypeTag) error {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.nodeCols[name]
	if !ok {
		return ErrUnknownProperty
	}
	if c.tag() != tag {
		return ErrUnknownProperty
	}

	return nil
}

func (g *Graph) checkEdgeColumn(name string, tag propcol.TypeTag) error {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.edgeCols[name]
	if !ok {
		return ErrUnknownProperty
	}
	if c.tag() != tag {
		return ErrUnknownProperty
	}

	return nil
}

// RegisterNodeColumnU32 declares a new 32-bit node property column named
// name. Every level published before this call, once it exists, reads as
// the zero value for it (there is no retroactive backfill).
func (g *Graph) RegisterNodeColumnU32(name string) error {
	col, err := propcol.NewColumn[uint32](name, propcol.TypeU32, g.cfg.pageLen)
	if err != nil {
		return err
	}

	return g.registerNodeColumn(name, nodeColumnU32{col: col})
}

// RegisterNodeColumnU64 declares a new 64-bit node property column.
func (g *Graph) RegisterNodeColumnU64(name string) error {
	col, err := propcol.NewColumn[uint64](name, propcol.TypeU64, g.cfg.pageLen)
	if err != nil {
		return err
	}

	return g.registerNodeColumn(name, nodeColumnU64{col: col})
}

// RegisterEdgeColumnU32 declares a new 32-bit edge property column.
func (g *Graph) RegisterEdgeColumnU32(name string) error {
	col, err := propcol.NewColumn[uint32](name, propcol.TypeU32, g.cfg.pageLen)
	if err != nil {
		return err
	}

	return g.registerEdgeColumn(name, edgeColumnU32{col: col})
}

// RegisterEdgeColumnU64 declares a new 64-bit edge property column.
func (g *Graph) RegisterEdgeColumnU64(name string) error {
	col, err := propcol.NewColumn[uint64](name, propcol.TypeU64, g.cfg.pageLen)
	if err != nil {
		return err
	}

	return g.registerEdgeColumn(name, edgeColumnU64{col: col})
}

func (g *Graph) registerNodeColumn(name string, col nodeColumn) error {
	g.columnsMu.Lock()
	defer g.columnsMu.Unlock()

	if _, ok := g.nodeCols[name]; ok {
		return ErrDuplicateProperty
	}
	g.nodeCols[name] = col

	return nil
}

func (g *Graph) registerEdgeColumn(name string, col edgeColumn) error {
	g.columnsMu.Lock()
	defer g.columnsMu.Unlock()

	if _, ok := g.edgeCols[name]; ok {
		return ErrDuplicateProperty
	}
	g.edgeCols[name] = col

	return nil
}

// NodePropertyU32 returns the named column's value for v at the newest
// level, or 0 if v has never been written there.
func (g *Graph) NodePropertyU32(column string, v csr.NodeId) (uint32, error) {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.nodeCols[column]
	if !ok || c.tag() != propcol.TypeU32 {
		return 0, ErrUnknownProperty
	}

	return uint32(c.getU64(g.outStore.TopLevel(), v)), nil
}

// NodePropertyU64 returns the named column's value for v at the newest
// level.
func (g *Graph) NodePropertyU64(column string, v csr.NodeId) (uint64, error) {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.nodeCols[column]
	if !ok || c.tag() != propcol.TypeU64 {
		return 0, ErrUnknownProperty
	}

	return c.getU64(g.outStore.TopLevel(), v), nil
}

// EdgePropertyU32 returns the named column's value for e, read from e's
// own level (resolving a still-held pre-checkpoint id first).
func (g *Graph) EdgePropertyU32(column string, e csr.EdgeId) (uint32, error) {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.edgeCols[column]
	if !ok || c.tag() != propcol.TypeU32 {
		return 0, ErrUnknownProperty
	}

	return uint32(c.getU64(g.resolveEdge(e))), nil
}

// EdgePropertyU64 returns the named column's value for e.
func (g *Graph) EdgePropertyU64(column string, e csr.EdgeId) (uint64, error) {
	g.columnsMu.RLock()
	defer g.columnsMu.RUnlock()

	c, ok := g.edgeCols[column]
	if !ok || c.tag() != propcol.TypeU64 {
		return 0, ErrUnknownProperty
	}

	return c.getU64(g.resolveEdge(e)), nil
}
