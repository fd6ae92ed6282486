// Package scc finds strongly connected components via Tarjan's algorithm
// (S6: Tarjan SCC).
//
// Find walks the graph with a recursive, single-pass DFS in the shape of
// dfs.dfsWalker.traverse: each vertex gets a discovery index and a
// low-link value, pushed onto an explicit component stack as it's
// discovered. A vertex whose low-link equals its own discovery index roots
// a component — every vertex above it on the stack (down to and including
// it) is popped off and assigned that component's id.
//
// Tarjan's low-link maintenance needs state traversal.DFS's generic
// pre/post-order hooks don't expose (updating a parent's low-link from a
// child's, and distinguishing tree edges from back edges to
// still-on-stack ancestors), so Find implements its own walker rather than
// layering on top of traversal.DFS — the one DFS-shaped client in this
// module that doesn't.
package scc
