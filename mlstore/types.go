package mlstore

import (
	"errors"

	"github.com/RoaringBitmap/roaring"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// ErrDanglingContinuation is an InvariantViolation: a vertex's continuation
// chain referenced a level that does not exist. Per spec §4.3 this is a
// fatal condition — see internal/errs.KindInvariant.
var ErrDanglingContinuation = errors.New("mlstore: dangling continuation")

// Level is one published, immutable snapshot for a single direction.
//
// Deletions is keyed by origin level rather than being one flat bitmap: an
// edge physically lives in whichever level's edge table first stored it,
// and that level's bytes never change once published (spec §3's
// bit-for-bit immutability invariant), so a later checkpoint that deletes
// it cannot set a bit in the origin level's own bitmap. Instead each level
// carries the cumulative, as-of-here view across every origin level,
// built via COW: buckets untouched by this checkpoint's delta share their
// *roaring.Bitmap pointer with the previous level; only the touched
// bucket(s) are cloned and extended. A reader anchored at level L consults
// L's bucket for whichever level the entry it is looking at came from.
type Level struct {
	Idx       csr.Level
	Vertices  *csr.VertexTable
	Edges     *csr.EdgeTable
	Deletions map[csr.Level]*roaring.Bitmap // origin level -> deleted idx set, nil map if deletions disabled
}

// deletedAt reports whether idx, as stored in origin level originLvl, is
// deleted according to l's as-of-here cumulative view.
func (l *Level) deletedAt(originLvl csr.Level, idx uint32) bool {
	if l == nil || l.Deletions == nil {
		return false
	}
	bm, ok := l.Deletions[originLvl]
	if !ok || bm == nil {
		return false
	}

	return bm.Contains(idx)
}

// Entry is one yielded adjacency entry: the edge's own id and its target.
type Entry struct {
	Edge   csr.EdgeId
	Target csr.NodeId
}
