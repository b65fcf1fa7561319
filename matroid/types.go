// Package matroid - core types and sentinel errors.
//
// This file declares Element, the Oracle capability interface, and the
// sentinel errors shared by the concrete matroid constructors and the
// oracle decorators.
package matroid

import "errors"

// Sentinel errors for matroid construction and decoration.
var (
	// ErrNilOracle indicates a decorator was given a nil inner oracle.
	ErrNilOracle = errors.New("matroid: oracle is nil")

	// ErrNegativeRank indicates a Uniform matroid was requested with rank < 0.
	ErrNegativeRank = errors.New("matroid: rank must be non-negative")

	// ErrBadCapacity indicates a Partition matroid was requested with a
	// negative per-part capacity.
	ErrBadCapacity = errors.New("matroid: part capacity must be non-negative")

	// ErrBadCacheSize indicates a CachedOracle was requested with size < 1.
	ErrBadCacheSize = errors.New("matroid: cache size must be positive")

	// ErrBadDimension indicates a Binary matroid dimension outside [1, 64].
	ErrBadDimension = errors.New("matroid: dimension must be in [1, 64]")

	// ErrDimensionOverflow indicates a vector with bits set beyond the
	// declared dimension of a Binary matroid.
	ErrDimensionOverflow = errors.New("matroid: vector exceeds matroid dimension")

	// ErrDuplicateElement indicates a payload was registered twice for the
	// same element identifier. Payloads are immutable once registered.
	ErrDuplicateElement = errors.New("matroid: element already registered")

	// ErrEmptyVertexID indicates a Graphic edge endpoint with an empty ID.
	ErrEmptyVertexID = errors.New("matroid: edge endpoint ID is empty")
)

// Element is an opaque, stable identifier for a member of a ground set.
// Any matroid-specific payload (an edge, a vector, a part label) lives
// inside the oracle implementation, keyed by the identifier; the
// maintenance algorithms in package dynamic treat elements as atoms.
type Element int64

// Oracle answers independence queries for subsets of a matroid's ground set.
//
// The contract is deliberately a single method: all consumers in this
// module build their subsets incrementally (a set already known to be
// independent plus one candidate element), never arbitrary large subsets.
// Behaviour for identifiers whose payload was never registered with the
// concrete matroid is undefined; the implementations in this package
// uniformly treat such elements as dependent so that they are never
// admitted into a maintained set.
//
// Implementations must be read-only with respect to queries: repeated
// calls with the same subset must return identical answers as long as the
// registered payloads are unchanged. Oracles carry no locking; sharing one
// across goroutines is safe only because queries do not mutate.
type Oracle interface {
	// IsIndependent reports whether subset is independent in the matroid.
	// The slice must not contain duplicate identifiers; it is not retained
	// nor modified by the implementation.
	IsIndependent(subset []Element) bool
}
