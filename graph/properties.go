package graph

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/propcol"
)

// nodeColumn erases propcol.Column[T]'s width parameter so a Graph can hold
// a single map of heterogeneously-widthed named columns, the way core
// stores heterogeneous Vertex.Metadata under one map[string]interface{} —
// generalized here to a typed, versioned column instead of a loose map.
type nodeColumn interface {
	tag() propcol.TypeTag
	getU64(level csr.Level, node csr.NodeId) uint64
	advance(prevLevel csr.Level, maxNodes int, touched map[csr.NodeId]uint64)
}

type edgeColumn interface {
	tag() propcol.TypeTag
	getU64(e csr.EdgeId) uint64
	advanceEdges(touched map[csr.EdgeId]uint64)
}

type nodeColumnU32 struct{ col *propcol.Column[uint32] }

func (c nodeColumnU32) tag() propcol.TypeTag { return c.col.Tag }
func (c nodeColumnU32) getU64(level csr.Level, node csr.NodeId) uint64 {
	return uint64(c.col.GetNode(level, node))
}
func (c nodeColumnU32) advance(prevLevel csr.Level, maxNodes int, touched map[csr.NodeId]uint64) {
	advanceNodeColumn(c.col, prevLevel, maxNodes, touched, func(v uint64) uint32 { return uint32(v) })
}

type nodeColumnU64 struct{ col *propcol.Column[uint64] }

func (c nodeColumnU64) tag() propcol.TypeTag { return c.col.Tag }
func (c nodeColumnU64) getU64(level csr.Level, node csr.NodeId) uint64 {
	return c.col.GetNode(level, node)
}
func (c nodeColumnU64) advance(prevLevel csr.Level, maxNodes int, touched map[csr.NodeId]uint64) {
	advanceNodeColumn(c.col, prevLevel, maxNodes, touched, func(v uint64) uint64 { return v })
}

// advanceNodeColumn implements spec §4.6 step 5 for one column: if nothing
// in touched applies to it, share the previous segment unchanged (COW);
// otherwise build a fresh segment that carries forward every previous
// value and overwrites only the touched positions.
func advanceNodeColumn[T propcol.Width](col *propcol.Column[T], prevLevel csr.Level, maxNodes int, touched map[csr.NodeId]uint64, narrow func(uint64) T) {
	if len(touched) == 0 {
		col.ShareSegment(prevLevel)

		return
	}

	b := col.NewSegment(maxNodes)
	for v := 0; v < maxNodes; v++ {
		node := csr.NodeId(v)
		if raw, ok := touched[node]; ok {
			b.SetInBuilder(v, narrow(raw))
		} else if prevLevel >= 0 {
			b.SetInBuilder(v, col.GetNode(prevLevel, node))
		}
	}
	b.Finish()
}

type edgeColumnU32 struct{ col *propcol.Column[uint32] }

func (c edgeColumnU32) tag() propcol.TypeTag       { return c.col.Tag }
func (c edgeColumnU32) getU64(e csr.EdgeId) uint64 { return uint64(c.col.GetEdge(e)) }
func (c edgeColumnU32) advanceEdges(touched map[csr.EdgeId]uint64) {
	advanceEdgeColumn(c.col, touched, func(v uint64) uint32 { return uint32(v) })
}

type edgeColumnU64 struct{ col *propcol.Column[uint64] }

func (c edgeColumnU64) tag() propcol.TypeTag       { return c.col.Tag }
func (c edgeColumnU64) getU64(e csr.EdgeId) uint64 { return c.col.GetEdge(e) }
func (c edgeColumnU64) advanceEdges(touched map[csr.EdgeId]uint64) {
	advanceEdgeColumn(c.col, touched, func(v uint64) uint64 { return v })
}

// advanceEdgeColumn writes this checkpoint's edge-property values into
// each touched edge's own *origin* level, not a new top-level segment.
// Unlike node properties (read by current/anchor level, so every level
// needs its own segment to carry values forward), an edge property is
// always read back at e.Lvl (propcol.Column.GetEdge), and by the time an
// edge can carry a property its origin level is already published — a
// checkpoint publishing level N can be setting properties on edges from
// any earlier level M<N, never on N itself. So touched is grouped by
// origin level, and each origin level's existing segment is cloned, grown
// to cover the new highest index if needed, and overwritten in place
// (propcol.Builder.FinishInto) — a blind append here would file the write
// under the wrong level entirely (see the propcol entry in DESIGN.md).
func advanceEdgeColumn[T propcol.Width](col *propcol.Column[T], touched map[csr.EdgeId]uint64, narrow func(uint64) T) {
	if len(touched) == 0 {
		return
	}

	byLevel := make(map[csr.Level]map[uint32]T)
	for e, raw := range touched {
		m, ok := byLevel[e.Lvl]
		if !ok {
			m = make(map[uint32]T)
			byLevel[e.Lvl] = m
		}
		m[e.Idx] = narrow(raw)
	}

	for level, vals := range byLevel {
		length := col.SegmentLength(level)
		for idx := range vals {
			if int(idx)+1 > length {
				length = int(idx) + 1
			}
		}

		b := col.NewSegment(length)
		for i := 0; i < length; i++ {
			if v, ok := vals[uint32(i)]; ok {
				b.SetInBuilder(i, v)
			} else {
				b.SetInBuilder(i, col.GetEdge(csr.EdgeId{Lvl: level, Idx: uint32(i)}))
			}
		}
		b.FinishInto(level)
	}
}
