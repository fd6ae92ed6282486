package csr

import "github.com/mlcsrgraph/mlcsr/pagemgr"

// VertexTable is one level's dense array of VertexRec, indexed directly by
// NodeId. Its size is fixed at construction (max_nodes for that level's
// build), so disjoint vertex ranges may be written by independent workers
// without synchronization — each NodeId is written by exactly one worker.
type VertexTable struct {
	mgr     *pagemgr.Manager[VertexRec]
	pageIDs []pagemgr.PageID
	pageLen int
	length  int
}

// Len returns max_nodes for this table.
func (t *VertexTable) Len() int { return t.length }

// Get returns the VertexRec for id. A NodeId >= Len() has no record; callers
// must check range first (mlstore treats out-of-range as "absent").
func (t *VertexTable) Get(id NodeId) VertexRec {
	p := int(id) / t.pageLen
	o := int(id) % t.pageLen

	return t.mgr.Page(t.pageIDs[p])[o]
}

// Release drops one reference from every backing page.
func (t *VertexTable) Release() {
	for _, id := range t.pageIDs {
		t.mgr.Release(id)
	}
}

// VertexTableBuilder pre-allocates enough pages to hold maxNodes records and
// exposes positional Set, so concurrent workers can each own a disjoint
// NodeId range.
type VertexTableBuilder struct {
	mgr     *pagemgr.Manager[VertexRec]
	pageLen int
	pageIDs []pagemgr.PageID
	length  int
}

// NewVertexTableBuilder pre-allocates ceil(maxNodes/pageLen) pages.
func NewVertexTableBuilder(mgr *pagemgr.Manager[VertexRec], pageLen int, maxNodes int) *VertexTableBuilder {
	b := &VertexTableBuilder{mgr: mgr, pageLen: pageLen, length: maxNodes}
	nPages := (maxNodes + pageLen - 1) / pageLen
	for i := 0; i < nPages; i++ {
		id, _ := mgr.Allocate()
		b.pageIDs = append(b.pageIDs, id)
	}

	return b
}

// Set writes rec at position id. Safe to call concurrently for distinct id
// values.
func (b *VertexTableBuilder) Set(id NodeId, rec VertexRec) {
	p := int(id) / b.pageLen
	o := int(id) % b.pageLen
	b.mgr.Page(b.pageIDs[p])[o] = rec
}

// Finish freezes the builder into an immutable VertexTable.
func (b *VertexTableBuilder) Finish() *VertexTable {
	return &VertexTable{mgr: b.mgr, pageIDs: b.pageIDs, pageLen: b.pageLen, length: b.length}
}
