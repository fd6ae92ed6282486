package delta

import (
	"errors"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// Sentinel errors for Delta operations.
var (
	// ErrNoSuchVertex is returned when an operation references a NodeId
	// outside [0, maxNodes) configured at Delta construction.
	ErrNoSuchVertex = errors.New("delta: node id out of range")

	// ErrWritableEdgeProperty is returned by SetEdgeProperty when given a
	// writable-delta EdgeId instead of an already-published one.
	ErrWritableEdgeProperty = errors.New("delta: edge property requires a published edge id")
)

// AddedEdge is one edge queued for the next checkpoint.
type AddedEdge struct {
	Target csr.NodeId
	ID     csr.EdgeId // always WritableLevel; Idx is this edge's globally unique pending-add index
}

// VertexDelta is one vertex's pending changes: newly added out-edge targets
// and the set of already-published edge slots to delete, per spec §3's
// "NodeId → { added_edges: [NodeId], deleted_edges: set<EdgeId> }".
type VertexDelta struct {
	AddedEdges   []AddedEdge
	DeletedEdges map[csr.EdgeId]struct{}
}
