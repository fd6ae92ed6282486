// Package delta implements the Writable Delta (spec §4.5): the single
// writer's in-memory update log accumulated between checkpoints.
//
// A Delta holds, per vertex, the edges added since the last checkpoint and
// the set of edge slots deleted (against any already-published level), plus
// a tombstone set of deleted nodes and pending node/edge property writes.
// Edge IDs handed back by AddEdge carry csr.WritableLevel, matching spec
// §3's "a special pseudo-level value WRITABLE_LEVEL marks an edge stored
// only in the writable delta."
//
// Mirroring the teacher's core.Graph, a Delta guards its maps with a single
// sync.Mutex rather than core's paired RWMutex: spec §5 calls out the delta
// as strictly single-writer ("concurrent readers continue against the last
// published snapshot" — never the delta itself), so there is no reader
// contention to optimize for with a read/write split.
package delta
