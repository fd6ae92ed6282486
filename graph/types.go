package graph

import (
	"errors"

	"github.com/mlcsrgraph/mlcsr/csr"
)

// Sentinel errors for Graph operations.
var (
	// ErrNoSuchNode is returned when an ingest call references a NodeId
	// outside [0, max_nodes). Reads never return this: spec §7 requires
	// out-of-range reads to come back empty/default, never fail.
	ErrNoSuchNode = errors.New("graph: node id out of range")

	// ErrUnknownProperty is returned by a property lookup/write against a
	// column name that was never registered (spec §7 UsageError: "unknown
	// property name").
	ErrUnknownProperty = errors.New("graph: unknown property column")

	// ErrDuplicateProperty is returned when registering a column name
	// that already exists.
	ErrDuplicateProperty = errors.New("graph: property column already registered")

	// ErrEmptyGraph is returned by PickRandomNode when max_nodes is 0 or
	// every node is tombstoned.
	ErrEmptyGraph = errors.New("graph: no eligible node to pick")
)

// Direction selects how the loader collaborator's (src, dst) triples are
// expanded into directed edges — part of the checkpoint config surface
// (spec §6) even though the triple-ingesting loader itself is an external
// collaborator out of this module's scope.
type Direction int

const (
	// Directed ingests each triple as a single directed edge src->dst.
	Directed Direction = iota
	// UndirectedDouble ingests each triple as two directed edges, src->dst
	// and dst->src.
	UndirectedDouble
	// UndirectedOrdered ingests each triple as a single directed edge with
	// src<=dst, canonicalizing direction.
	UndirectedOrdered
)

// GraphOption configures a Graph at construction, via functional options
// matching core.GraphOption.
type GraphOption func(*config)

type config struct {
	pageLen          int
	defaultWindow    int
	deletionsEnabled bool
}

// WithPageLength sets the page size backing every table and column this
// Graph allocates. Default 4096.
func WithPageLength(n int) GraphOption {
	return func(c *config) { c.pageLen = n }
}

// WithDefaultWindowSize sets the sliding-window retention Checkpoint uses
// when its CheckpointConfig does not override it. 0 (the default) never
// retires a level.
func WithDefaultWindowSize(n int) GraphOption {
	return func(c *config) { c.defaultWindow = n }
}

// WithDeletionsDisabled records in the Graph's config that deletions are
// off. Nothing consults that setting: DeleteEdge still queues deletions
// and Checkpoint still builds each level's deletion view, exactly as with
// deletions enabled.
func WithDeletionsDisabled() GraphOption {
	return func(c *config) { c.deletionsEnabled = false }
}

func newConfig(opts ...GraphOption) config {
	c := config{pageLen: 4096, deletionsEnabled: true}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// CheckpointConfig bundles Checkpoint's optional parameters (spec §6).
// reverse_edges/reverse_maps/direction/deduplicate/tmp_dirs/xs_buffer_bytes
// are surfaced for API fidelity with the loader collaborator's contract;
// this module's own AddEdge-based ingest path only consults WindowSize and
// NoProperties directly (see graph/checkpoint.go).
type CheckpointConfig struct {
	WindowSize    int
	ReverseEdges  bool
	ReverseMaps   bool
	Deduplicate   bool
	NoProperties  bool
	Direction     Direction
	TmpDirs       []string
	XSBufferBytes uint64
}

// CheckpointOption configures a CheckpointConfig.
type CheckpointOption func(*CheckpointConfig)

// WithCheckpointWindowSize overrides the Graph's default window size for
// this checkpoint only.
func WithCheckpointWindowSize(n int) CheckpointOption {
	return func(c *CheckpointConfig) { c.WindowSize = n }
}

// WithNoProperties skips applying pending property writes this checkpoint
// (every node column simply shares its previous segment; the pending
// writes are discarded with the rest of the delta).
func WithNoProperties() CheckpointOption {
	return func(c *CheckpointConfig) { c.NoProperties = true }
}

func newCheckpointConfig(defaultWindow int, opts ...CheckpointOption) CheckpointConfig {
	c := CheckpointConfig{WindowSize: defaultWindow}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// EdgeRef identifies one directed edge as returned by AddEdge: the source
// vertex plus the EdgeId minted for it. ID stays usable as-is across a
// Checkpoint: DeleteEdge and the edge-property setters/getters resolve a
// still-WritableLevel ID through the Graph's own promotion table (built
// from the EdgeId the publishing checkpoint assigned it) before use.
type EdgeRef struct {
	Src csr.NodeId
	ID  csr.EdgeId
}
