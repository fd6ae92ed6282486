package csr

import "fmt"

// NodeId is a dense vertex identifier in [0, max_nodes).
type NodeId uint64

// Level numbers an immutable snapshot, 0 (oldest) .. L-1 (newest).
type Level int32

const (
	// NilLevel is the level component of NilEdge, the sentinel denoting
	// absence of an edge reference.
	NilLevel Level = -2

	// WritableLevel marks an EdgeId that lives only in the writable delta,
	// not in any published level.
	WritableLevel Level = -1
)

// EdgeId composites a Level and an index within that level's edge table.
type EdgeId struct {
	Lvl Level
	Idx uint32
}

// NilEdge denotes "no edge". It is the zero EdgeId only by convention of
// construction, not by Go's zero value — always use NilEdge, not EdgeId{}.
var NilEdge = EdgeId{Lvl: NilLevel, Idx: 0}

// IsNil reports whether e is the absent-edge sentinel.
func (e EdgeId) IsNil() bool { return e.Lvl == NilLevel }

// IsWritable reports whether e refers to the writable delta rather than a
// published level.
func (e EdgeId) IsWritable() bool { return e.Lvl == WritableLevel }

func (e EdgeId) String() string {
	switch e.Lvl {
	case NilLevel:
		return "EdgeId(nil)"
	case WritableLevel:
		return fmt.Sprintf("EdgeId(writable:%d)", e.Idx)
	default:
		return fmt.Sprintf("EdgeId(%d:%d)", e.Lvl, e.Idx)
	}
}

// VertexRec is one vertex's adjacency record within a single level.
type VertexRec struct {
	// AdjHead points into this level's edge table (or NilEdge).
	AdjHead EdgeId

	// Length is the number of targets stored at AdjHead.
	Length uint32

	// Continuation, if not NilEdge, refers to this vertex's record in an
	// older level, to be visited after this level's targets.
	Continuation EdgeId

	// Tombstoned marks the vertex as deleted as of this level: reads at
	// this level or newer see empty adjacency and zero degree regardless
	// of AdjHead/Continuation.
	Tombstoned bool
}

// Empty reports whether rec carries no local edges and no continuation —
// i.e. no adjacency at all is reachable for the vertex from this record
// (a placeholder that resolves through an older level has a non-nil
// Continuation and is not Empty).
func (r VertexRec) Empty() bool {
	return r.AdjHead.IsNil() && r.Continuation.IsNil()
}
