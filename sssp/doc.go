// Package sssp computes weighted single-source shortest paths over a
// graph.Graph (S3: weighted SSSP).
//
// Compute runs Dijkstra's algorithm — a min-heap of (vertex, tentative
// distance) pairs, lazily decreasing keys by pushing duplicates and
// ignoring stale pops once a vertex is finalized, exactly as
// dijkstra.Dijkstra does over core.Graph. Edge weights are read from a
// registered uint32 edge property column rather than a dedicated weighted-
// edge type, since graph.Graph has no notion of edge weight beyond its
// property columns.
//
// Unlike the teacher's single-threaded relax step, relaxing a just-
// finalized vertex's out-edges runs across a worker pool: candidate
// distance updates on the shared dist/prev slices are serialized through a
// fixed-size, hash-partitioned spinlock table (spec's "per-vertex spinlock
// table... fixed-size, hash-partitioned lock array to avoid one lock per
// vertex"), so contention stays proportional to the lock count rather than
// the vertex count.
package sssp
