package snapshot

import "errors"

// ErrBadMaxNodes is returned when Input.MaxNodes is not positive.
var ErrBadMaxNodes = errors.New("snapshot: max nodes must be positive")

// Config tunes a single Build call, built via functional options the way
// the teacher builds GraphOption/EdgeOption.
type Config struct {
	windowSize int // 0 = unlimited, never retire
	chunkSize  int
	workers    int
}

// Option configures a Config.
type Option func(*Config)

// WithWindowSize keeps only the newest n levels live; Build calls
// RetireOldest after publishing once num_levels exceeds n. 0 (the
// default) disables retirement.
func WithWindowSize(n int) Option {
	return func(c *Config) { c.windowSize = n }
}

// WithChunkSize sets the node-range chunk size used to fan the parallel
// sort pass out across workers (spec §5: "fixed-size node
// ranges, typically 4096 nodes per chunk").
func WithChunkSize(n int) Option {
	return func(c *Config) { c.chunkSize = n }
}

// WithWorkers bounds the worker-pool width; 0 (the default) lets
// errgroup.SetLimit fall back to an unbounded pool sized by the number of
// chunks.
func WithWorkers(n int) Option {
	return func(c *Config) { c.workers = n }
}

func newConfig(opts ...Option) Config {
	c := Config{chunkSize: 4096}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
