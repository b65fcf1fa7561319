package matroid

import "fmt"

// Uniform is the uniform matroid U(k, n): a subset is independent iff it
// has at most k elements, regardless of which elements they are. It carries
// no per-element payload, so any identifier is a valid member.
//
// Uniform matroids are the canonical smoke-test instance: admission and
// rejection depend only on cardinality, which makes expected behaviour
// trivial to predict in tests.
type Uniform struct {
	rank int
}

// NewUniform builds a uniform matroid of the given rank.
// Returns ErrNegativeRank when rank < 0.
func NewUniform(rank int) (*Uniform, error) {
	if rank < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRank, rank)
	}

	return &Uniform{rank: rank}, nil
}

// Rank returns the construction-time rank k.
func (u *Uniform) Rank() int { return u.rank }

// IsIndependent reports whether |subset| ≤ k. Complexity: O(1).
func (u *Uniform) IsIndependent(subset []Element) bool {
	return len(subset) <= u.rank
}
