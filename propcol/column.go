package propcol

import (
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/pagemgr"
)

// Width is the set of element types a Column may hold.
type Width interface {
	~uint32 | ~uint64
}

type segment[T Width] struct {
	pageIDs []pagemgr.PageID
	length  int
}

// Column is a versioned dense property column. GetNode and GetEdge are
// thin, differently-indexed reads over the same storage.
type Column[T Width] struct {
	Name     string
	Tag      TypeTag
	mgr      *pagemgr.Manager[T]
	pageLen  int
	segments []*segment[T] // indexed by csr.Level
}

// NewColumn constructs an empty column named name backed by pages of
// pageLen elements.
func NewColumn[T Width](name string, tag TypeTag, pageLen int) (*Column[T], error) {
	mgr, err := pagemgr.New[T](pagemgr.Config{PageLength: pageLen})
	if err != nil {
		return nil, err
	}

	return &Column[T]{Name: name, Tag: tag, mgr: mgr, pageLen: pageLen}, nil
}

func (c *Column[T]) segmentFor(level csr.Level) *segment[T] {
	if level < 0 || int(level) >= len(c.segments) {
		return nil
	}

	return c.segments[level]
}

func (c *Column[T]) get(level csr.Level, idx int) T {
	seg := c.segmentFor(level)
	if seg == nil || idx < 0 || idx >= seg.length {
		var zero T
		return zero
	}
	p := idx / c.pageLen
	o := idx % c.pageLen

	return c.mgr.Page(seg.pageIDs[p])[o]
}

// GetNode returns the node property value for node at the given level.
func (c *Column[T]) GetNode(level csr.Level, node csr.NodeId) T {
	return c.get(level, int(node))
}

// GetEdge returns the edge property value for e, reading from e's own
// level. An edge belonging to the writable delta (e.IsWritable()) has no
// committed segment and always reads as the zero value here; uncommitted
// writes live in the Writable Delta until a checkpoint promotes them.
func (c *Column[T]) GetEdge(e csr.EdgeId) T {
	return c.get(e.Lvl, int(e.Idx))
}

// SegmentLength returns the number of positions currently stored at level,
// or 0 if that level has no segment for this column yet.
func (c *Column[T]) SegmentLength(level csr.Level) int {
	seg := c.segmentFor(level)
	if seg == nil {
		return 0
	}

	return seg.length
}

// ShareSegment reuses the previous level's segment unchanged (COW), as the
// Snapshot Builder does for every column a checkpoint's delta does not
// touch. It is a no-op if there is no previous level.
func (c *Column[T]) ShareSegment(prevLevel csr.Level) {
	seg := c.segmentFor(prevLevel)
	if seg != nil {
		for _, id := range seg.pageIDs {
			c.mgr.Acquire(id, 1)
		}
	}
	c.segments = append(c.segments, seg)
}

// Builder accumulates a brand-new segment for the next level, to be used
// only from within the Snapshot Builder.
type Builder[T Width] struct {
	col     *Column[T]
	pageIDs []pagemgr.PageID
	length  int
}

// NewSegment starts a fresh segment of exactly length positions, all
// zero-valued until SetInBuilder overwrites them.
func (c *Column[T]) NewSegment(length int) *Builder[T] {
	b := &Builder[T]{col: c, length: length}
	nPages := (length + c.pageLen - 1) / c.pageLen
	for i := 0; i < nPages; i++ {
		id, page := c.mgr.Allocate()
		for i := range page {
			var zero T
			page[i] = zero
		}
		b.pageIDs = append(b.pageIDs, id)
	}

	return b
}

// SetInBuilder writes value at local position idx within the segment under
// construction.
func (b *Builder[T]) SetInBuilder(idx int, value T) {
	p := idx / b.col.pageLen
	o := idx % b.col.pageLen
	b.col.mgr.Page(b.pageIDs[p])[o] = value
}

// Finish appends the completed segment as the column's new top level.
func (b *Builder[T]) Finish() {
	b.col.segments = append(b.col.segments, &segment[T]{pageIDs: b.pageIDs, length: b.length})
}

// FinishInto installs the completed segment at level in place, replacing
// whatever segment (if any) was there. Unlike Finish, this does not append
// a new top level: it is for edge-keyed columns, whose writes target an
// edge's own fixed origin level rather than the column's newest level.
func (b *Builder[T]) FinishInto(level csr.Level) {
	for int(level) >= len(b.col.segments) {
		b.col.segments = append(b.col.segments, nil)
	}
	b.col.segments[level] = &segment[T]{pageIDs: b.pageIDs, length: b.length}
}
