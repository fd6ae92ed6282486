// Package pagerank implements pull-based PageRank over a graph.Graph (S2:
// PageRank pull, tolerance).
//
// Compute runs power iteration: each round, every vertex's new score is a
// damped sum of its in-neighbors' scores divided by their out-degree, plus
// a random-jump term and an even redistribution of sink vertices' (vertices
// with no out-edges) scores so rank never leaks out of the graph. Rounds
// stop after the WithIterations count, or earlier once the largest
// per-vertex score change drops below the WithTolerance value.
//
// Grounded on the pull-based power-iteration shape of a sink-aware
// PageRank implementation found elsewhere in the retrieval pack (iterate
// incoming edges per vertex, redistribute sink mass, swap score buffers
// each round), adapted here to read the graph through graph.Graph's
// in-edge iterator and parallelized per vertex-range chunk with
// golang.org/x/sync/errgroup the way the snapshot builder parallelizes its
// own per-vertex-range work.
package pagerank
