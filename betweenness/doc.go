// Package betweenness computes Brandes' betweenness centrality over a
// graph.Graph — the analytic spec.md's own PURPOSE list names
// ("betweenness centrality") but never gives an S-numbered scenario for,
// supplementing the tested S1-S6 list (see SPEC_FULL.md §4).
//
// Compute runs one BFS per source vertex, building the full shortest-path
// DAG (every predecessor at distance-1 below each vertex, with the path
// counts (sigma) that reach it) rather than a single-parent BFS tree,
// since two distinct predecessors can both lie on a shortest path to the
// same vertex — information a single-claim visited-bit traversal (as
// traversal.BFS uses) collapses into one winner. The standard Brandes
// reverse accumulation then walks the BFS visit order backwards,
// distributing each vertex's dependency score to its predecessors exactly
// the way spec.md §4.8 describes for down-edge reverse passes in general
// ("Reverse pass... standard Brandes construction"), just applied to this
// package's own local per-source DAG instead of traversal.Result's single-
// parent one.
package betweenness
