package csr

import "github.com/mlcsrgraph/mlcsr/pagemgr"

// EdgeTable is one level's flat array of edge targets, page-sharded via a
// shared pagemgr.Manager. Once Finish'd by an EdgeTableBuilder it is never
// mutated again.
type EdgeTable struct {
	mgr     *pagemgr.Manager[NodeId]
	pageIDs []pagemgr.PageID
	pageLen int
	length  int
}

// Len returns the number of valid target entries.
func (t *EdgeTable) Len() int { return t.length }

// Get returns the target NodeId at position idx. idx must be < t.Len().
func (t *EdgeTable) Get(idx uint32) NodeId {
	p := int(idx) / t.pageLen
	o := int(idx) % t.pageLen

	return t.mgr.Page(t.pageIDs[p])[o]
}

// Release drops one reference from every backing page.
func (t *EdgeTable) Release() {
	for _, id := range t.pageIDs {
		t.mgr.Release(id)
	}
}

// EdgeTableBuilder appends targets sequentially while a snapshot is being
// built, drawing pages from mgr on demand.
type EdgeTableBuilder struct {
	mgr     *pagemgr.Manager[NodeId]
	pageLen int
	pageIDs []pagemgr.PageID
	cur     []NodeId
	filled  int
	total   int
}

// NewEdgeTableBuilder starts a fresh builder over mgr.
func NewEdgeTableBuilder(mgr *pagemgr.Manager[NodeId], pageLen int) *EdgeTableBuilder {
	return &EdgeTableBuilder{mgr: mgr, pageLen: pageLen}
}

// Append adds target to the end of the table and returns its index.
func (b *EdgeTableBuilder) Append(target NodeId) uint32 {
	if b.cur == nil || b.filled == len(b.cur) {
		id, page := b.mgr.Allocate()
		b.pageIDs = append(b.pageIDs, id)
		b.cur = page
		b.filled = 0
	}
	idx := uint32(b.total)
	b.cur[b.filled] = target
	b.filled++
	b.total++

	return idx
}

// Len reports how many targets have been appended so far.
func (b *EdgeTableBuilder) Len() int { return b.total }

// Finish freezes the builder into an immutable EdgeTable.
func (b *EdgeTableBuilder) Finish() *EdgeTable {
	return &EdgeTable{mgr: b.mgr, pageIDs: b.pageIDs, pageLen: b.pageLen, length: b.total}
}
