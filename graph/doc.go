// Package graph is the Graph Facade (spec §4.7): the public entry point
// every analytic client and the traversal substrate imports, exactly the
// role core.Graph plays for bfs/dfs/dijkstra in the teacher.
//
// A Graph owns two mlstore.Store instances (out-edges and in-edges), a
// single writable delta.Delta, and a registry of named property columns.
// Ingest (AddEdge/DeleteEdge/DeleteNode/property setters) writes only to
// the delta; Checkpoint flattens the delta into a new level on both
// direction stores and advances every registered property column, then
// clears the delta — mirroring spec §4.6 step 8 exactly.
//
// Locking follows the teacher's paired-RWMutex convention generalized to
// this package's two concerns: ingestMu (sync.Mutex, matching delta's own
// single-writer discipline — begin_tx/commit_tx bracket a batch so
// Checkpoint never races a concurrent AddEdge) and columnsMu (sync.RWMutex,
// guarding the property-column registry map itself, not the columns'
// contents, since new named columns can be registered at any time from any
// goroutine while reads are in flight).
package graph
