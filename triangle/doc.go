// Package triangle counts triangles in an undirected-ordered graph (S4:
// triangle counting, undirected ordered): a graph loaded so that every
// edge (u,v) is stored exactly once, canonically as u<v, and each
// vertex's out-adjacency is therefore its sorted-ascending list of
// "forward" neighbors (ids greater than the vertex itself) — the layout
// spec.md requires ("each level's list is sorted ascending by target
// NodeId") of any algorithm that merges two adjacency lists.
//
// Count uses the classic sorted-adjacency forward algorithm: for every
// edge (v,u) with v<u, intersect v's and u's forward-neighbor lists; each
// common element w (necessarily w>u>v) closes exactly one triangle
// {v,u,w}. The intersection itself picks between a linear merge of both
// sorted lists and a binary-search probe of the smaller list into the
// larger one, based on their size ratio (MergeCrossoverRatio) — spec.md
// §9's open question on the crossover heuristic: both branches must (and
// do) produce identical counts for any input satisfying the sorted-
// adjacency invariant, independent of the constant's value.
package triangle
