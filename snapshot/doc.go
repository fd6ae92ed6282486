// Package snapshot implements the Snapshot/Checkpoint Builder (spec §4.6):
// it flattens a delta.Delta's pending changes plus the current top level of
// an mlstore.Store into a brand-new immutable level, publishes it
// atomically, and optionally retires the oldest level under a sliding
// window.
//
// The per-vertex sort of added targets fans out over fixed-size node-range
// chunks with golang.org/x/sync/errgroup, mirroring spec §5's "work is
// partitioned by fixed-size node ranges" — each worker owns a disjoint
// NodeId range and sorts only its own vertices' target lists. The new
// VertexTable and edge table are then filled sequentially, in NodeId
// order, after all workers have finished.
//
// Failure handling follows spec §4.6's rollback contract. Page allocation
// cannot fail (pagemgr treats OOM as fatal rather than returning an
// error), so Build returns a non-nil error only for a non-positive
// Input.MaxNodes (ErrBadMaxNodes).
// No partial level is ever installed into the Store: the new Level value is
// fully constructed before AppendLevel is called.
package snapshot
