// Package bfsdist computes unweighted shortest-path distances over a
// graph.Graph, one scenario-level client of the traversal package's BFS
// engine (S1: two-snapshot BFS distance).
//
// Distances runs a single BFS from a source vertex and returns every
// reached vertex's edge-count distance, alongside a PathTo helper that
// reconstructs the shortest path via the underlying traversal.Result's
// parent links.
package bfsdist
