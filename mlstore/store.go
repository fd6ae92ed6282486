package mlstore

import (
	"sync"
	"sync/atomic"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/internal/logging"
)

type snapshot struct {
	levels   []*Level
	minLevel csr.Level
}

// Store is the stack of levels for one edge direction (out or in), plus
// its sliding-window minimum-visible-level cursor.
type Store struct {
	writeMu sync.Mutex // serializes AppendLevel/RetireOldest (single writer)
	state   atomic.Pointer[snapshot]
}

// New returns an empty Store with no published levels.
func New() *Store {
	s := &Store{}
	s.state.Store(&snapshot{})

	return s
}

// NumLevels returns the number of published levels. Monotonically
// non-decreasing between publishes (spec §3 invariant).
func (s *Store) NumLevels() int {
	return len(s.state.Load().levels)
}

// MinLevel returns the sliding-window low-water mark. Monotonically
// non-decreasing under retirement (spec §3 invariant).
func (s *Store) MinLevel() csr.Level {
	return s.state.Load().minLevel
}

// TopLevel returns the newest published level's index, or -1 if none.
func (s *Store) TopLevel() csr.Level {
	n := s.NumLevels()
	if n == 0 {
		return -1
	}

	return csr.Level(n - 1)
}

// LevelAt returns the Level at idx, or nil if idx is retired or beyond the
// top of stack.
func (s *Store) LevelAt(idx csr.Level) *Level {
	snap := s.state.Load()
	if idx < snap.minLevel || idx < 0 || int(idx) >= len(snap.levels) {
		return nil
	}

	return snap.levels[idx]
}

// AppendLevel atomically publishes a new level built from vt/et/deletions,
// assigning it the next level index. Readers that subsequently observe
// NumLevels()==idx+1 are guaranteed (by Go's memory model for
// atomic.Pointer) to see a fully-formed vt/et/deletions.
func (s *Store) AppendLevel(l *Level) csr.Level {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	old := s.state.Load()
	idx := csr.Level(len(old.levels))
	l.Idx = idx

	newLevels := make([]*Level, len(old.levels)+1)
	copy(newLevels, old.levels)
	newLevels[idx] = l

	s.state.Store(&snapshot{levels: newLevels, minLevel: old.minLevel})

	return idx
}

// RetireOldest drops the oldest live level and advances MinLevel by one,
// releasing its vertex/edge table pages. It is a no-op if there is no live
// level below the current top.
func (s *Store) RetireOldest() bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	old := s.state.Load()
	if int(old.minLevel) >= len(old.levels)-1 {
		return false
	}

	victim := old.levels[old.minLevel]
	victim.Vertices.Release()
	victim.Edges.Release()

	s.state.Store(&snapshot{levels: old.levels, minLevel: old.minLevel + 1})

	return true
}

func abortInvariant(format string, args ...interface{}) {
	logging.L().Fatalf("mlstore: invariant violation: "+format, args...)
}

// Degree sums rec.Length across the continuation chain from the newest
// level down to MinLevel, minus deleted slots in that range.
func (s *Store) Degree(v csr.NodeId) int {
	snap := s.state.Load()
	if len(snap.levels) == 0 {
		return 0
	}
	top := snap.levels[len(snap.levels)-1]
	if int(v) >= top.Vertices.Len() {
		return 0
	}

	level := top.Idx
	rec := top.Vertices.Get(v)
	total := 0
	for {
		if level < snap.minLevel || rec.Tombstoned {
			break
		}
		deleted := 0
		for i := uint32(0); i < rec.Length; i++ {
			if top.deletedAt(level, rec.AdjHead.Idx+i) {
				deleted++
			}
		}
		total += int(rec.Length) - deleted

		if rec.Continuation.IsNil() {
			break
		}
		nextLevel := rec.Continuation.Lvl
		if nextLevel < snap.minLevel {
			break
		}
		if int(nextLevel) >= len(snap.levels) {
			abortInvariant("degree(%d): continuation points at level %d, have %d levels", v, nextLevel, len(snap.levels))
			return total
		}
		level = nextLevel
		rec = snap.levels[level].Vertices.Get(v)
	}

	return total
}

// Iter returns a fresh, lazy, finite, non-restartable iterator over v's
// adjacency, newest level first, each level's entries in stored order.
func (s *Store) Iter(v csr.NodeId) *Iterator {
	snap := s.state.Load()
	it := &Iterator{levels: snap.levels, minLevel: snap.minLevel, v: v}
	it.loadTop()

	return it
}
