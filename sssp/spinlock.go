package sssp

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// lockTableSize is the fixed shard count for the per-vertex spinlock
// table: large enough to make contention negligible, small enough to keep
// the table's cache footprint trivial (spec §9).
const lockTableSize = 4096

// lockTable hash-partitions a vertex id into one of a fixed number of
// mutexes, so concurrent relaxations don't need a lock per vertex.
type lockTable struct {
	shards [lockTableSize]sync.Mutex
}

func (t *lockTable) lock(v csr.NodeId) *sync.Mutex {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	idx := xxhash.Sum64(buf[:]) % lockTableSize

	return &t.shards[idx]
}
