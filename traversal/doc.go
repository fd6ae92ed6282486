// Package traversal is the reusable parallel BFS/DFS substrate (spec
// §4.8): a frontier engine shared by every BFS-shaped analytic (unweighted
// distance, betweenness, connectivity) and an analogous recursive DFS
// engine. Tarjan SCC (package scc) does not run on this DFS engine; it
// uses its own walker.
//
// BFS adapts its frontier representation to the frontier's current size,
// mirroring bfs.walker's queue+visited-map shape generalized into a small
// state machine (SMALL -> QUEUE -> Q2R -> RD -> R2Q -> QUEUE) so that very
// small and very large frontiers each get the cheaper representation for
// their regime. When WithMultiThread is set, frontier expansion in the
// queue-based states other than SMALL (QUEUE, R2Q) runs on a worker pool:
// each worker fills its own local next-frontier buffer, the buffers are
// appended to the shared next frontier under a mutex, and an atomic
// test-and-set bit per vertex prevents double-visiting. The scan-based
// states (Q2R, RD) always expand sequentially.
//
// DFS keeps the teacher's recursive pre/post-order walker shape
// (dfs.dfsWalker.traverse) unchanged in spirit: sequential, single-threaded,
// with WithVisitForward/WithVisitReverse hooks and a navigator predicate
// substituting for FilterNeighbor.
package traversal
