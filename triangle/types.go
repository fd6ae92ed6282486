package triangle

import "errors"

// ErrGraphNil is returned when a nil Graph is passed to Count.
var ErrGraphNil = errors.New("triangle: graph is nil")

// MergeCrossoverRatio is the degree-ratio threshold deciding which
// intersection strategy Count uses for one edge's pair of forward-
// neighbor lists: below it, a linear merge of both sorted lists; at or
// above it, a binary-search probe of the smaller list into the larger.
// spec.md documents the source's own heuristic as u_num < 32*v_num; kept
// as a tunable since the spec only requires both branches produce
// identical counts, not a specific constant.
var MergeCrossoverRatio = 32

// Options configures Count via functional options.
type Options struct {
	ratio int
}

// Option configures Options.
type Option func(*Options)

// WithCrossoverRatio overrides MergeCrossoverRatio for one Count call.
func WithCrossoverRatio(ratio int) Option {
	return func(o *Options) { o.ratio = ratio }
}

func newOptions(opts ...Option) Options {
	o := Options{ratio: MergeCrossoverRatio}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result holds the total triangle count for a graph.
type Result struct {
	Count int64
}
