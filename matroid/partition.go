package matroid

import "fmt"

// Partition is a partition matroid: every element carries a part label,
// and a subset is independent iff it takes at most `capacity` elements
// from each part. Elements must be assigned to a part before they can be
// admitted; an unassigned identifier is treated as dependent.
type Partition struct {
	capacity int
	part     map[Element]string
}

// NewPartition builds a partition matroid with the given uniform per-part
// capacity. Returns ErrBadCapacity when capacity < 0.
func NewPartition(capacity int) (*Partition, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Partition{
		capacity: capacity,
		part:     make(map[Element]string),
	}, nil
}

// Assign registers element e as a member of the named part. Assignments
// are immutable: assigning the same identifier twice returns
// ErrDuplicateElement, even for the same part.
func (p *Partition) Assign(e Element, part string) error {
	if _, ok := p.part[e]; ok {
		return fmt.Errorf("%w: element %d", ErrDuplicateElement, e)
	}
	p.part[e] = part

	return nil
}

// Capacity returns the construction-time per-part capacity.
func (p *Partition) Capacity() int { return p.capacity }

// IsIndependent reports whether subset respects every part's capacity.
// Unassigned elements fail the check. Complexity: O(|subset|).
func (p *Partition) IsIndependent(subset []Element) bool {
	taken := make(map[string]int, len(subset))
	for _, e := range subset {
		part, ok := p.part[e]
		if !ok {
			// Unregistered payload: never independent.
			return false
		}
		taken[part]++
		if taken[part] > p.capacity {
			return false
		}
	}

	return true
}
