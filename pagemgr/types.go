package pagemgr

import "errors"

// Sentinel errors for page-manager operations.
var (
	// ErrDoubleRelease indicates release(id) was called on a page whose
	// refcount was already zero. Only detected under the pagemgr_debug
	// build tag.
	ErrDoubleRelease = errors.New("pagemgr: release of page already at refcount 0")

	// ErrBadPageID indicates a PageID outside any allocated block.
	ErrBadPageID = errors.New("pagemgr: page id out of range")

	// ErrBadPageLength indicates a non-positive Config.PageLength.
	ErrBadPageLength = errors.New("pagemgr: page_length must be > 0")
)

// PageID uniquely identifies a page handed out by a Manager. PageID 0 is
// never issued by allocate(); it is reserved so zero-valued PageIDs read as
// "absent" in callers that embed a PageID in a larger record.
type PageID uint64

// Config configures a Manager's allocation policy.
type Config struct {
	// PageLength is the number of T elements per page.
	PageLength int

	// ZeroPages forces zeroing on allocation and on reuse from the free
	// list (the default Go zero value already holds for fresh slices, but
	// reused pages carry over stale data unless this is set).
	ZeroPages bool

	// Shards is the number of free-list shards. Defaults to
	// runtime.GOMAXPROCS(0) when <= 0.
	Shards int
}

const pagesPerBlock = 256
