// Package logging provides the single zap logger shared by every mlcsr
// package. It is intentionally a thin accessor rather than a bare package
// variable so tests can swap in an observed-logs core without a data race.
package logging

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	mu      sync.Mutex
	current atomic.Pointer[zap.SugaredLogger]
)

func init() {
	l, _ := zap.NewProduction()
	current.Store(l.Sugar())
}

// L returns the current process-wide logger.
func L() *zap.SugaredLogger {
	return current.Load()
}

// SetForTest installs l as the process-wide logger and returns a restore
// function. Intended for _test.go files that want to assert on log output
// via zaptest/observer.
func SetForTest(l *zap.SugaredLogger) func() {
	mu.Lock()
	defer mu.Unlock()

	prev := current.Load()
	current.Store(l)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		current.Store(prev)
	}
}

// Sync flushes any buffered log entries; callers should defer this from
// main (out of scope here, but exposed for the CLI collaborator).
func Sync() {
	_ = L().Sync()
}
