// Package pagemgr implements a fixed-size, refcounted page allocator that
// underlies every large dense array in the MLCSR storage engine (edge
// tables, vertex tables, property columns).
//
// Pages are grouped into allocation blocks of 256; each block keeps its
// page refcounts in a side array so that hot refcount increments never
// touch — and never false-share with — the page payload itself.
//
// Allocation policy: try a free-list shard first (the caller's own shard,
// then round-robin the rest, to spread fragmentation across shards without
// a single global lock), then fall back to bumping an atomic page counter.
// A real per-OS-thread free list isn't expressible in portable Go without
// goroutine-local storage, so an allocation starts its free-list scan at
// the shard picked by a per-call atomic ticket modulo the shard count, and
// Release files a freed page on the shard picked by a fast hash
// (github.com/cespare/xxhash/v2) of its PageID — spreading contention
// across N independent lists without relying on unsafe thread
// introspection.
//
// Out-of-memory is fatal: Manager.allocate aborts the process (after
// logging via internal/logging) rather than returning an error, per spec
// §7 ("CapacityError... fatal"). Releasing an already-zero page is a
// programming error, checked only when built with the "pagemgr_debug"
// build tag to keep the hot path allocation-free in production builds.
package pagemgr
