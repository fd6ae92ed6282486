package mlstore

import "github.com/mlcsrgraph/mlcsr/csr"

// Iterator walks one vertex's adjacency across the continuation chain.
// It is finite and not restartable: once exhausted, construct a fresh one
// via Store.Iter.
type Iterator struct {
	levels   []*Level
	minLevel csr.Level
	v        csr.NodeId
	anchor   *Level // top level at construction time; owns the cumulative deletion view

	curLevel csr.Level
	curRec   csr.VertexRec
	pos      uint32
	done     bool
}

func (it *Iterator) loadTop() {
	if len(it.levels) == 0 {
		it.done = true
		return
	}
	top := it.levels[len(it.levels)-1]
	it.anchor = top
	if int(it.v) >= top.Vertices.Len() {
		it.done = true
		return
	}
	it.curLevel = top.Idx
	it.curRec = top.Vertices.Get(it.v)
	it.pos = 0
}

// Next returns the next (EdgeId, target) pair, or ok=false when exhausted.
func (it *Iterator) Next() (Entry, bool) {
	for {
		if it.done {
			return Entry{}, false
		}
		if it.curLevel < it.minLevel || it.curRec.Tombstoned {
			it.done = true
			return Entry{}, false
		}

		if it.pos < it.curRec.Length {
			lvlData := it.levels[it.curLevel]
			idx := it.curRec.AdjHead.Idx + it.pos
			it.pos++
			if it.anchor.deletedAt(it.curLevel, idx) {
				continue
			}

			return Entry{Edge: csr.EdgeId{Lvl: it.curLevel, Idx: idx}, Target: lvlData.Edges.Get(idx)}, true
		}

		if it.curRec.Continuation.IsNil() {
			it.done = true
			return Entry{}, false
		}
		nextLevel := it.curRec.Continuation.Lvl
		if nextLevel < it.minLevel {
			it.done = true
			return Entry{}, false
		}
		if int(nextLevel) >= len(it.levels) {
			abortInvariant("iter(%d): continuation points at level %d, have %d levels", it.v, nextLevel, len(it.levels))
			it.done = true
			return Entry{}, false
		}
		it.curLevel = nextLevel
		it.curRec = it.levels[nextLevel].Vertices.Get(it.v)
		it.pos = 0
	}
}

// Collect drains the iterator into a slice. Convenience for tests and
// small adjacency lists; analytic clients in the hot path should prefer
// Next in a loop.
func (it *Iterator) Collect() []Entry {
	var out []Entry
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
