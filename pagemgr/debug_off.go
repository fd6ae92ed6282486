//go:build !pagemgr_debug

package pagemgr

// doubleReleasePanic is a no-op outside the pagemgr_debug build tag.
func (m *Manager[T]) doubleReleasePanic(_ PageID) {}
