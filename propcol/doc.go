// Package propcol implements versioned, dense property columns keyed by
// (level, local_index) for node properties and by csr.EdgeId for edge
// properties, in 32-bit and 64-bit width variants (spec §4.4).
//
// A node-keyed Column gains a new per-level segment whenever a snapshot is
// built; a segment a checkpoint leaves untouched is shared with the
// previous level by incrementing the backing pages' refcount
// (copy-on-write). Edge-keyed writes instead replace the segment of the
// edge's own origin level (Builder.FinishInto). Reads for a level with no
// segment, or a local index beyond a segment's length, return the type's
// zero value rather than an error — spec §4.4 requires absence to read as
// a default, never a failure.
package propcol
