// Package errs defines the error-kind taxonomy shared by every mlcsr
// package, so callers can classify a failure (fatal vs. recoverable)
// without needing to know which package produced it.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error for programmatic dispatch. See spec §7.
type Kind int

const (
	// KindUsage is a bad argument, unknown property name, or a missing
	// required property.
	KindUsage Kind = iota

	// KindIO is a file not readable/writable or a corrupt manifest.
	KindIO

	// KindCapacity is an allocator out-of-memory condition. Fatal.
	KindCapacity

	// KindInvariant is a detected corruption of level structures. Fatal.
	KindInvariant

	// KindNotFound is a NodeId/EdgeId out of range. Never fatal; callers
	// get an empty/default result, not this error, in most APIs — it only
	// surfaces where a lookup genuinely has no safe default.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindCapacity:
		return "capacity"
	case KindInvariant:
		return "invariant"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this Kind should abort the process per
// spec §7 ("CapacityError... fatal", "InvariantViolation... fatal; aborts").
func (k Kind) Fatal() bool {
	return k == KindCapacity || k == KindInvariant
}

// Error pairs a Kind with an underlying sentinel, so errors.As(err, &Error{})
// recovers the kind and errors.Is(err, sentinel) still recovers identity.
type Error struct {
	Kind Kind
	Op   string // package:operation, e.g. "pagemgr:allocate"
	Err  error  // wrapped sentinel or context error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given Kind, wrapping sentinel with the given
// operation tag.
func New(kind Kind, op string, sentinel error) *Error {
	return &Error{Kind: kind, Op: op, Err: sentinel}
}

// Wrap is New but additionally folds extra context into the message via
// fmt.Errorf("%w: ..."), matching the teacher's fmt.Errorf("pkg: ctx: %w")
// convention.
func Wrap(kind Kind, op string, sentinel error, format string, args ...interface{}) *Error {
	wrapped := fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	return &Error{Kind: kind, Op: op, Err: wrapped}
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error; the second return is false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
