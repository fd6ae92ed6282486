// Package csr defines the per-level vertex and edge tables of the
// multi-level compressed-sparse-row (MLCSR) storage engine: dense,
// page-sharded arrays that are immutable once published.
//
// A VertexTable maps a NodeId to a VertexRec{AdjHead, Length,
// Continuation}; an EdgeTable is the flat array of NodeId targets that
// AdjHead points into. Both are built incrementally by a Builder during
// snapshot construction (package snapshot) and, once Finish'd, never
// mutated again. Tables are not shared between levels: every level gets
// fresh tables, and a newer level reaches an older level's adjacency
// through Continuation pointers while that older level stays in the store
// (until RetireOldest releases its pages). Nothing overwrites a published
// table.
package csr
