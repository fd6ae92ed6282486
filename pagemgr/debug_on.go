//go:build pagemgr_debug

package pagemgr

import "github.com/mlcsrgraph/mlcsr/internal/logging"

// doubleReleasePanic aborts on a detected double-release. Only compiled in
// under the pagemgr_debug build tag, so production builds keep Release on
// its allocation-free fast path.
func (m *Manager[T]) doubleReleasePanic(id PageID) {
	logging.L().Errorw("pagemgr: double release", "page_id", id)
	panic(ErrDoubleRelease)
}
