package pagemgr

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/mlcsrgraph/mlcsr/internal/logging"
)

type block[T any] struct {
	pages     [][]T
	refcounts []atomic.Int64
}

type shard struct {
	mu   sync.Mutex
	free []PageID
}

// Manager hands out fixed-size pages of T, refcounted, with a sharded free
// list. Manager is safe for concurrent use by multiple goroutines.
type Manager[T any] struct {
	cfg Config

	mu     sync.Mutex // guards block-slice growth only; not the hot path
	blocks []*block[T]

	nextPage atomic.Uint64 // 1-based; 0 means "no page issued yet"
	ticket   atomic.Uint64 // round-robin / shard-selection counter

	shards []shard

	zeroOnce sync.Once
	zeroID   PageID
	zeroPage []T
}

// New constructs a Manager for pages of PageLength elements.
func New[T any](cfg Config) (*Manager[T], error) {
	if cfg.PageLength <= 0 {
		return nil, ErrBadPageLength
	}
	if cfg.Shards <= 0 {
		cfg.Shards = runtime.GOMAXPROCS(0)
		if cfg.Shards < 1 {
			cfg.Shards = 1
		}
	}

	return &Manager[T]{
		cfg:    cfg,
		shards: make([]shard, cfg.Shards),
	}, nil
}

func (m *Manager[T]) decode(id PageID) (blockIdx, offset int) {
	n := int(id) - 1
	return n / pagesPerBlock, n % pagesPerBlock
}

// ensureBlock grows m.blocks so that blockIdx is valid, allocating a fresh
// block of pagesPerBlock pages of PageLength elements each.
func (m *Manager[T]) ensureBlock(blockIdx int) *block[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.blocks) <= blockIdx {
		b := &block[T]{
			pages:     make([][]T, pagesPerBlock),
			refcounts: make([]atomic.Int64, pagesPerBlock),
		}
		for i := range b.pages {
			b.pages[i] = make([]T, m.cfg.PageLength)
		}
		m.blocks = append(m.blocks, b)
	}

	return m.blocks[blockIdx]
}

func (m *Manager[T]) block(blockIdx int) *block[T] {
	m.mu.Lock()
	b := m.blocks[blockIdx]
	m.mu.Unlock()

	return b
}

func (m *Manager[T]) shardFor(id PageID) int {
	var buf [8]byte
	buf[0] = byte(id)
	buf[1] = byte(id >> 8)
	buf[2] = byte(id >> 16)
	buf[3] = byte(id >> 24)
	buf[4] = byte(id >> 32)
	buf[5] = byte(id >> 40)
	buf[6] = byte(id >> 48)
	buf[7] = byte(id >> 56)

	return int(xxhash.Sum64(buf[:]) % uint64(len(m.shards)))
}

// fatalOOM logs and aborts the process, per spec §7 (CapacityError is
// fatal). It is only reachable if an underlying make() panics, which
// recover() below converts into a clean diagnostic instead of a raw panic
// trace.
func (m *Manager[T]) fatalOOM(r interface{}) {
	logging.L().Fatalf("pagemgr: out of memory allocating page: %v", r)
	// logging.L().Fatalf already calls os.Exit via zap's Fatal level, but
	// guard in case a test has redirected the logger to a non-fatal core.
	fmt.Fprintf(os.Stderr, "pagemgr: out of memory allocating page: %v\n", r)
	os.Exit(2)
}

// Allocate hands out a fresh page with refcount 1.
func (m *Manager[T]) Allocate() (id PageID, page []T) {
	defer func() {
		if r := recover(); r != nil {
			m.fatalOOM(r)
		}
	}()

	if id, page, ok := m.tryFreeList(); ok {
		return id, page
	}

	newID := PageID(m.nextPage.Add(1))
	blockIdx, offset := m.decode(newID)
	b := m.ensureBlock(blockIdx)
	b.refcounts[offset].Store(1)
	page = b.pages[offset]
	if m.cfg.ZeroPages {
		clear(page)
	}

	return newID, page
}

// AllocateMany allocates n pages by calling Allocate once per page; it
// takes no lock spanning the whole batch, so each page is claimed on its
// own, exactly as n separate Allocate calls would claim it.
func (m *Manager[T]) AllocateMany(n int) []struct {
	ID   PageID
	Page []T
} {
	out := make([]struct {
		ID   PageID
		Page []T
	}, n)
	for i := 0; i < n; i++ {
		id, page := m.Allocate()
		out[i] = struct {
			ID   PageID
			Page []T
		}{ID: id, Page: page}
	}

	return out
}

// tryFreeList attempts to satisfy an allocation from a free-list shard:
// the caller's own shard first (selected by a rotating ticket, standing in
// for "this goroutine's thread"), then round-robin the rest.
func (m *Manager[T]) tryFreeList() (PageID, []T, bool) {
	start := int(m.ticket.Add(1)) % len(m.shards)
	for i := 0; i < len(m.shards); i++ {
		idx := (start + i) % len(m.shards)
		sh := &m.shards[idx]

		sh.mu.Lock()
		if len(sh.free) == 0 {
			sh.mu.Unlock()
			continue
		}
		id := sh.free[len(sh.free)-1]
		sh.free = sh.free[:len(sh.free)-1]
		sh.mu.Unlock()

		blockIdx, offset := m.decode(id)
		b := m.block(blockIdx)
		b.refcounts[offset].Store(1)
		page := b.pages[offset]
		if m.cfg.ZeroPages {
			clear(page)
		}

		return id, page, true
	}

	return 0, nil, false
}

// Acquire atomically increments id's refcount by count and returns its
// backing slice.
func (m *Manager[T]) Acquire(id PageID, count int64) []T {
	blockIdx, offset := m.decode(id)
	b := m.block(blockIdx)
	b.refcounts[offset].Add(count)

	return b.pages[offset]
}

// Cow allocates a fresh page, copies srcID's contents into it, releases one
// reference to srcID, and returns the new page.
func (m *Manager[T]) Cow(srcID PageID) (PageID, []T) {
	srcBlockIdx, srcOffset := m.decode(srcID)
	srcPage := m.block(srcBlockIdx).pages[srcOffset]

	newID, newPage := m.Allocate()
	copy(newPage, srcPage)
	m.Release(srcID)

	return newID, newPage
}

// Release decrements id's refcount; if it reaches zero, the page is pushed
// onto a free-list shard for reuse. Returns the new refcount.
func (m *Manager[T]) Release(id PageID) int64 {
	blockIdx, offset := m.decode(id)
	b := m.block(blockIdx)
	newCount := b.refcounts[offset].Add(-1)

	if newCount < 0 {
		m.doubleReleasePanic(id)
		return 0
	}

	if newCount == 0 {
		sh := &m.shards[m.shardFor(id)]
		sh.mu.Lock()
		sh.free = append(sh.free, id)
		sh.mu.Unlock()
	}

	return newCount
}

// RefCount returns id's current refcount, for diagnostics and tests.
func (m *Manager[T]) RefCount(id PageID) int64 {
	blockIdx, offset := m.decode(id)
	return m.block(blockIdx).refcounts[offset].Load()
}

// Page returns id's backing slice without changing its refcount. Callers
// must already hold a reference (via Allocate/Acquire/Cow).
func (m *Manager[T]) Page(id PageID) []T {
	blockIdx, offset := m.decode(id)
	return m.block(blockIdx).pages[offset]
}

// ZeroPage returns a lazily-constructed, shared all-zero page, with its
// refcount incremented by count. Callers must never write through the
// returned slice.
func (m *Manager[T]) ZeroPage(count int64) (PageID, []T) {
	m.zeroOnce.Do(func() {
		id, page := m.Allocate()
		clear(page)
		m.zeroID = id
		m.zeroPage = page
	})
	if count > 0 {
		m.Acquire(m.zeroID, count)
	}

	return m.zeroID, m.zeroPage
}
