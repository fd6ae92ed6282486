package delta

import (
	"sync"

	"github.com/RoaringBitmap/roaring"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// Delta is the single-writer update log accumulated between checkpoints.
// The zero value is not usable; construct with New.
type Delta struct {
	mu sync.Mutex

	maxNodes int
	vertices map[csr.NodeId]*VertexDelta

	// nextAddIdx mints the Idx half of every writable-level EdgeId, as a
	// single counter shared across all source vertices (not per-vertex):
	// a promotion map keyed by EdgeId alone, built once an AddedEdge is
	// published, needs this to be globally unique with no source vertex
	// to disambiguate against. Survives Clear() so an already-promoted id
	// from a prior checkpoint is never reissued to a new pending edge.
	nextAddIdx uint32

	tombstoned *roaring.Bitmap

	// pendingNodeProps[column][node] = raw value, widened to uint64; the
	// Snapshot Builder narrows back to the column's own width.
	pendingNodeProps map[string]map[csr.NodeId]uint64
	pendingEdgeProps map[string]map[csr.EdgeId]uint64
}

// New returns an empty Delta sized for maxNodes vertices.
func New(maxNodes int) *Delta {
	return &Delta{
		maxNodes:         maxNodes,
		vertices:         make(map[csr.NodeId]*VertexDelta),
		tombstoned:       roaring.New(),
		pendingNodeProps: make(map[string]map[csr.NodeId]uint64),
		pendingEdgeProps: make(map[string]map[csr.EdgeId]uint64),
	}
}

func (d *Delta) checkRange(v csr.NodeId) error {
	if int(v) < 0 || int(v) >= d.maxNodes {
		return ErrNoSuchVertex
	}

	return nil
}

func (d *Delta) vertexDelta(v csr.NodeId) *VertexDelta {
	vd, ok := d.vertices[v]
	if !ok {
		vd = &VertexDelta{DeletedEdges: make(map[csr.EdgeId]struct{})}
		d.vertices[v] = vd
	}

	return vd
}

// AddEdge queues src->dst for the next checkpoint and returns the EdgeId
// that identifies it until then: WritableLevel plus a globally unique
// pending-edge index (spec §4.5), resolvable to its published EdgeId once
// the checkpoint that publishes it hands back a promotion map.
func (d *Delta) AddEdge(src, dst csr.NodeId) (csr.EdgeId, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkRange(src); err != nil {
		return csr.NilEdge, err
	}

	idx := d.nextAddIdx
	d.nextAddIdx++

	id := csr.EdgeId{Lvl: csr.WritableLevel, Idx: idx}
	vd := d.vertexDelta(src)
	vd.AddedEdges = append(vd.AddedEdges, AddedEdge{Target: dst, ID: id})

	return id, nil
}

// DeleteEdge marks e deleted for src, effective at the next published
// level. e may refer to a slot in any already-published level or to an
// edge still pending in this same delta.
func (d *Delta) DeleteEdge(src csr.NodeId, e csr.EdgeId) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkRange(src); err != nil {
		return err
	}

	vd := d.vertexDelta(src)
	if e.Lvl == csr.WritableLevel {
		for i, ae := range vd.AddedEdges {
			if ae.ID == e {
				vd.AddedEdges = append(vd.AddedEdges[:i], vd.AddedEdges[i+1:]...)
				return nil
			}
		}

		return nil // already gone: deleting a never-added pending edge is a no-op
	}
	vd.DeletedEdges[e] = struct{}{}

	return nil
}

// DeleteNode tombstones v: at and after the next published level its
// adjacency and degree read as empty/zero (spec §4.5).
func (d *Delta) DeleteNode(v csr.NodeId) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkRange(v); err != nil {
		return err
	}
	d.tombstoned.Add(uint32(v))

	return nil
}

// IsTombstoned reports whether v is queued for deletion in this delta.
func (d *Delta) IsTombstoned(v csr.NodeId) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.tombstoned.Contains(uint32(v))
}

// SetNodeProperty queues value for node v in the named column. Writing the
// same (column, v) twice within one delta keeps only the last value (spec
// §8 property 9).
func (d *Delta) SetNodeProperty(column string, v csr.NodeId, value uint64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkRange(v); err != nil {
		return err
	}

	m, ok := d.pendingNodeProps[column]
	if !ok {
		m = make(map[csr.NodeId]uint64)
		d.pendingNodeProps[column] = m
	}
	m[v] = value

	return nil
}

// SetEdgeProperty queues value for edge e in the named column. e must
// refer to an already-published level: the Snapshot Builder sorts each
// vertex's added targets ascending before assigning final indices, so a
// writable-delta EdgeId never names a stable position to key a pending
// property write against. The Graph facade resolves a caller's own
// pre-checkpoint EdgeId through the promotion map Checkpoint produces
// before it ever reaches here; a still-writable e at this layer means the
// checkpoint that would promote it hasn't happened yet.
func (d *Delta) SetEdgeProperty(column string, e csr.EdgeId, value uint64) error {
	if e.IsWritable() {
		return ErrWritableEdgeProperty
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	m, ok := d.pendingEdgeProps[column]
	if !ok {
		m = make(map[csr.EdgeId]uint64)
		d.pendingEdgeProps[column] = m
	}
	m[e] = value

	return nil
}

// Snapshot is an immutable, consistent view of the delta's contents for the
// Snapshot Builder to consume. Taking a Snapshot does not clear the delta;
// call Clear only after the resulting level has published successfully
// (spec §4.6's "no reader ever sees a partial snapshot" rollback contract).
type Snapshot struct {
	MaxNodes         int
	Vertices         map[csr.NodeId]*VertexDelta
	Tombstoned       *roaring.Bitmap
	PendingNodeProps map[string]map[csr.NodeId]uint64
	PendingEdgeProps map[string]map[csr.EdgeId]uint64
}

// Snapshot returns a shallow, read-only copy of the delta's current state.
func (d *Delta) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Snapshot{
		MaxNodes:         d.maxNodes,
		Vertices:         d.vertices,
		Tombstoned:       d.tombstoned.Clone(),
		PendingNodeProps: d.pendingNodeProps,
		PendingEdgeProps: d.pendingEdgeProps,
	}
}

// Clear empties the delta after its Snapshot has been durably published.
func (d *Delta) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.vertices = make(map[csr.NodeId]*VertexDelta)
	d.tombstoned = roaring.New()
	d.pendingNodeProps = make(map[string]map[csr.NodeId]uint64)
	d.pendingEdgeProps = make(map[string]map[csr.EdgeId]uint64)
}

// MaxNodes returns the configured vertex-id upper bound.
func (d *Delta) MaxNodes() int { return d.maxNodes }
