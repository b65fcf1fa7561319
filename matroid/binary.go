package matroid

import (
	"fmt"
	"math/bits"
)

// Binary is a binary linear matroid: elements are vectors over GF(2) of a
// fixed dimension (at most 64, packed into one uint64 word each), and a
// subset is independent iff its vectors are linearly independent.
// Independence is decided by bitwise Gaussian elimination, which makes
// this the most oracle-expensive instance in the package and the natural
// customer for CachedOracle.
type Binary struct {
	dim uint
	vec map[Element]uint64
}

// NewBinary builds a binary linear matroid over GF(2)^dim.
// Returns ErrBadDimension when dim is outside [1, 64].
func NewBinary(dim uint) (*Binary, error) {
	if dim < 1 || dim > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}

	return &Binary{dim: dim, vec: make(map[Element]uint64)}, nil
}

// SetVector registers element e as the vector with the given coordinate
// bits (bit i set means coordinate i is 1). Registrations are immutable;
// re-registering returns ErrDuplicateElement. Bits at or above the
// declared dimension return ErrDimensionOverflow. The zero vector is a
// valid payload and behaves as a loop: dependent by itself.
func (m *Binary) SetVector(e Element, coords uint64) error {
	if m.dim < 64 && coords>>m.dim != 0 {
		return fmt.Errorf("%w: element %d has bit ≥ %d set", ErrDimensionOverflow, e, m.dim)
	}
	if _, ok := m.vec[e]; ok {
		return fmt.Errorf("%w: element %d", ErrDuplicateElement, e)
	}
	m.vec[e] = coords

	return nil
}

// Dim returns the construction-time dimension.
func (m *Binary) Dim() uint { return m.dim }

// IsIndependent reports whether the queried vectors are linearly
// independent over GF(2). Unregistered identifiers and zero vectors fail
// the check immediately.
//
// Steps:
//  1. Keep one basis row per pivot position (the row's highest set bit).
//  2. Reduce each incoming vector: while its highest bit collides with a
//     stored pivot, XOR that row away; a free pivot slot stores the vector.
//  3. A vector reduced to zero is a linear combination of earlier ones:
//     dependent.
//
// Complexity: at most dim XOR-reductions per vector, so
// O(|subset| · dim) word operations overall.
func (m *Binary) IsIndependent(subset []Element) bool {
	if len(subset) > int(m.dim) {
		// More vectors than coordinates can never be independent.
		return false
	}

	var pivots [64]uint64 // pivots[p] is the basis row with highest bit p, or 0
	for _, e := range subset {
		v, ok := m.vec[e]
		if !ok {
			// Unregistered payload: never independent.
			return false
		}
		for v != 0 {
			p := 63 - bits.LeadingZeros64(v)
			if pivots[p] == 0 {
				pivots[p] = v
				break
			}
			v ^= pivots[p]
		}
		if v == 0 {
			return false
		}
	}

	return true
}
