package snapshot

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/internal/logging"
	"github.com/mlcsrgraph/mlcsr/mlstore"
	"github.com/mlcsrgraph/mlcsr/pagemgr"
)

// Input is one direction's worth of flattened delta contents, already
// separated from delta.Delta by the caller (the graph package derives two
// Inputs from one delta.Snapshot — out-edges as given, in-edges inverted).
type Input struct {
	VertexMgr *pagemgr.Manager[csr.VertexRec]
	EdgeMgr   *pagemgr.Manager[csr.NodeId]
	MaxNodes  int
	PageLen   int

	// Added[v] lists new targets for v in this direction, any order; Build
	// sorts each vertex's slice ascending before publishing (spec §4.6
	// step 2, and the sorted-adjacency invariant of spec §8 property 4).
	// Origin, when not csr.NilEdge, is the writable-delta EdgeId the
	// caller was handed back for this target at AddEdge time — Build uses
	// it to report where the edge actually landed once sorted and
	// appended, so callers can resolve a pre-checkpoint id afterward.
	Added map[csr.NodeId][]AddedTarget

	// Deleted[v] lists already-published edge slots belonging to v to hide
	// from this checkpoint onward.
	Deleted map[csr.NodeId][]csr.EdgeId

	// Tombstoned is the set of nodes newly marked for deletion this
	// checkpoint (delta.Snapshot.Tombstoned). Sticky propagation from an
	// already-tombstoned previous record is handled inside Build.
	Tombstoned *roaring.Bitmap
}

// AddedTarget is one new adjacency-list entry queued for this direction,
// paired with the writable-delta EdgeId (if any) it should resolve to
// once published.
type AddedTarget struct {
	Target csr.NodeId
	Origin csr.EdgeId
}

// Build flattens input plus store's current top level into a new
// immutable level, publishes it, and retires the oldest level if cfg's
// window size was exceeded. It never installs a partial level: every
// VertexTable/EdgeTable/Deletions value is fully constructed before
// store.AppendLevel is called (spec §4.6's rollback contract). The
// returned map resolves every AddedTarget.Origin supplied in input.Added
// to the published EdgeId it landed at in this level.
func Build(store *mlstore.Store, input Input, opts ...Option) (*mlstore.Level, map[csr.EdgeId]csr.EdgeId, error) {
	if input.MaxNodes <= 0 {
		return nil, nil, ErrBadMaxNodes
	}
	cfg := newConfig(opts...)

	prevIdx := store.TopLevel()
	var prev *mlstore.Level
	if prevIdx >= 0 {
		prev = store.LevelAt(prevIdx)
	}
	newIdx := prevIdx + 1

	sorted, err := sortAddedConcurrently(input, cfg)
	if err != nil {
		return nil, nil, err
	}

	vb := csr.NewVertexTableBuilder(input.VertexMgr, input.PageLen, input.MaxNodes)
	eb := csr.NewEdgeTableBuilder(input.EdgeMgr, input.PageLen)
	resolved := make(map[csr.EdgeId]csr.EdgeId)

	for v := 0; v < input.MaxNodes; v++ {
		node := csr.NodeId(v)
		rec := buildRecord(node, sorted[v], prev, input.Tombstoned, eb, newIdx, resolved)
		vb.Set(node, rec)
	}

	newLevel := &mlstore.Level{
		Vertices:  vb.Finish(),
		Edges:     eb.Finish(),
		Deletions: mergeDeletions(prev, input.Deleted),
	}

	store.AppendLevel(newLevel)
	logging.L().Debugw("snapshot published", "level", newLevel.Idx, "max_nodes", input.MaxNodes)

	if cfg.windowSize > 0 && store.NumLevels() > cfg.windowSize {
		store.RetireOldest()
	}

	return newLevel, resolved, nil
}

// sortAddedConcurrently returns, per NodeId, the ascending-sorted added
// targets, computed in parallel over fixed-size node-range chunks (spec
// §5). Each worker only reads/writes the slice for node ids in its own
// chunk, so no synchronization is needed across workers.
func sortAddedConcurrently(input Input, cfg Config) ([][]AddedTarget, error) {
	out := make([][]AddedTarget, input.MaxNodes)
	for v, targets := range input.Added {
		if int(v) >= 0 && int(v) < input.MaxNodes {
			cp := append([]AddedTarget(nil), targets...)
			out[v] = cp
		}
	}

	var g errgroup.Group
	if cfg.workers > 0 {
		g.SetLimit(cfg.workers)
	}
	for start := 0; start < input.MaxNodes; start += cfg.chunkSize {
		end := start + cfg.chunkSize
		if end > input.MaxNodes {
			end = input.MaxNodes
		}
		s, e := start, end
		g.Go(func() error {
			for v := s; v < e; v++ {
				if out[v] != nil {
					sort.Slice(out[v], func(i, j int) bool { return out[v][i].Target < out[v][j].Target })
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// buildRecord constructs node's new VertexRec and, if it has added
// targets, appends them to eb (sequential: the edge table is one shared
// flat array per level, so the append cursor cannot be sharded across
// workers — see doc.go). Every appended target whose AddedTarget carries a
// non-nil Origin is recorded into resolved, mapping it to the published
// EdgeId at newIdx/its final position.
func buildRecord(node csr.NodeId, added []AddedTarget, prev *mlstore.Level, newTombstones *roaring.Bitmap, eb *csr.EdgeTableBuilder, newIdx csr.Level, resolved map[csr.EdgeId]csr.EdgeId) csr.VertexRec {
	var prevRec csr.VertexRec
	hasPrev := false
	if prev != nil && int(node) < prev.Vertices.Len() {
		prevRec = prev.Vertices.Get(node)
		hasPrev = true
	}

	tombstoned := (newTombstones != nil && newTombstones.Contains(uint32(node))) || (hasPrev && prevRec.Tombstoned)
	if tombstoned {
		return csr.VertexRec{AdjHead: csr.NilEdge, Length: 0, Continuation: csr.NilEdge, Tombstoned: true}
	}

	continuation := csr.NilEdge
	if hasPrev {
		// Only Lvl is consulted when resolving a vertex continuation (the
		// vertex's own id indexes the older level's table directly), so
		// Idx is always left at its zero value here.
		continuation = csr.EdgeId{Lvl: prev.Idx}
	}

	if len(added) == 0 {
		return csr.VertexRec{AdjHead: csr.NilEdge, Length: 0, Continuation: continuation}
	}

	head := uint32(eb.Len())
	for i, at := range added {
		eb.Append(at.Target)
		if !at.Origin.IsNil() {
			resolved[at.Origin] = csr.EdgeId{Lvl: newIdx, Idx: head + uint32(i)}
		}
	}

	return csr.VertexRec{
		// AdjHead.Lvl is never consulted by mlstore: a record's local
		// edges always live in whichever level's own table the caller is
		// already looking at, so only Idx carries information here.
		AdjHead:      csr.EdgeId{Idx: head},
		Length:       uint32(len(added)),
		Continuation: continuation,
	}
}

// mergeDeletions builds the new level's cumulative, per-origin-level
// deletion view: buckets untouched this checkpoint share prev's
// *roaring.Bitmap pointer (COW); buckets receiving new deletions are
// cloned and extended (spec §4.6 step 4).
func mergeDeletions(prev *mlstore.Level, deleted map[csr.NodeId][]csr.EdgeId) map[csr.Level]*roaring.Bitmap {
	if prev == nil && len(deleted) == 0 {
		return nil
	}

	out := make(map[csr.Level]*roaring.Bitmap)
	if prev != nil {
		for lvl, bm := range prev.Deletions {
			out[lvl] = bm
		}
	}

	touched := make(map[csr.Level]*roaring.Bitmap)
	for _, edges := range deleted {
		for _, e := range edges {
			bm, ok := touched[e.Lvl]
			if !ok {
				if existing, has := out[e.Lvl]; has {
					bm = existing.Clone()
				} else {
					bm = roaring.New()
				}
				touched[e.Lvl] = bm
			}
			bm.Add(e.Idx)
		}
	}
	for lvl, bm := range touched {
		out[lvl] = bm
	}

	return out
}
