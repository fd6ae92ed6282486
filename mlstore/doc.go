// Package mlstore implements the MLCSR Direction Store (spec §4.3): the
// stack of immutable levels for a single edge direction (out-edges or
// in-edges), and the continuation-chain walk that reconstructs a vertex's
// full adjacency across however many levels it spans.
//
// Publication is release-acquire ordered: AppendLevel installs a brand new
// snapshot struct behind an atomic.Pointer, so a reader that observes N+1
// levels via NumLevels sees the complete vertex table, edge table, and
// deletion bitmap of level N (spec §5's ordering guarantee). Only one
// writer calls AppendLevel/RetireOldest at a time (spec §1 non-goal:
// single-writer discipline), enforced here by a plain sync.Mutex rather
// than the teacher's paired muVert/muEdgeAdj RWMutex pair, because readers
// never block a writer and the writer never blocks a reader — the atomic
// pointer swap is all concurrent readers ever observe.
//
// Boundary condition: the literal pseudocode in spec §4.3 guards the whole
// continuation walk on the top record's adj_head being non-nil, which
// would make a "pure pointer" placeholder record (adj_head=NIL, used for a
// vertex a checkpoint didn't touch) a dead end instead of forwarding to its
// continuation — silently truncating every unchanged vertex's history.
// This package instead checks adj_head per level visited and always
// follows Continuation regardless, which is what spec §3's lifecycle
// description and §4.6 step 3 ("unchanged vertices get a vertex record
// that is purely a pointer... continuation = old_record") require.
//
// Deletions are consulted against the iteration's anchor (the top level at
// the time Iter/Degree was called), not against whichever level in the
// chain currently holds the entry — see Level.deletedAt in types.go for why
// a flat per-level bitmap can't work once a checkpoint deletes an edge that
// physically lives in an older, already-immutable level.
package mlstore
