// Package dynamic - the stability maintenance strategy.
package dynamic

import (
	"fmt"

	"github.com/plammens/matroids-main/matroid"
)

// stability maintains only the independent set; there is no permutation.
// The live ground set sits in an insertion-derived order (a slice with
// swap-removal and a position index), and the replacement search after a
// member deletion walks that fixed order. The strategy's name comes from
// matroid stability: consecutive bases differ by at most one element per
// single-element ground-set change, so result churn is always tiny even
// when the replacement search scans many candidates.
type stability struct {
	oracle    *matroid.CountingOracle
	ground    []matroid.Element
	position  map[matroid.Element]int
	indep     []matroid.Element
	member    map[matroid.Element]struct{}
	selfCheck bool
	broken    bool
}

// newStability builds an empty stability maintainer.
func newStability(oracle *matroid.CountingOracle, o options) *stability {
	return &stability{
		oracle:    oracle,
		position:  make(map[matroid.Element]int),
		member:    make(map[matroid.Element]struct{}),
		selfCheck: o.selfCheck,
	}
}

// Insert adds e to the ground set and probes set ∪ {e} with one oracle
// call; by the hereditary axiom an admission can never invalidate the
// existing members, so no other work is needed.
//
// Complexity: O(1) + 1 oracle call (+1 with self-checking enabled).
func (m *stability) Insert(e matroid.Element) error {
	if m.broken {
		return fmt.Errorf("%w: insert of element %d", ErrMaintainerPoisoned, e)
	}
	if _, ok := m.position[e]; ok {
		return fmt.Errorf("%w: insert of element %d", ErrAlreadyPresent, e)
	}

	m.position[e] = len(m.ground)
	m.ground = append(m.ground, e)

	probe := append(m.indep[:len(m.indep):len(m.indep)], e)
	if m.oracle.IsIndependent(probe) {
		m.indep = append(m.indep, e)
		m.member[e] = struct{}{}
	}

	return m.verify("insert", e)
}

// Delete removes e from the ground set. A non-member leaves without any
// oracle traffic. Deleting a member removes it and searches the remaining
// non-members, in the fixed ground-set order, for any element whose
// addition restores maximality; the first success is admitted (at most one
// is needed, by the exchange axiom).
//
// Complexity: O(1) ground-set bookkeeping; up to len(ground) − rank
// candidate oracle calls when a member leaves.
func (m *stability) Delete(e matroid.Element) error {
	if m.broken {
		return fmt.Errorf("%w: delete of element %d", ErrMaintainerPoisoned, e)
	}
	at, ok := m.position[e]
	if !ok {
		return fmt.Errorf("%w: delete of element %d", ErrNotFound, e)
	}

	// Swap-remove from the ground slice, keeping positions consistent.
	last := len(m.ground) - 1
	moved := m.ground[last]
	m.ground[at] = moved
	m.position[moved] = at
	m.ground = m.ground[:last]
	delete(m.position, e)

	if _, isMember := m.member[e]; !isMember {
		return m.verify("delete", e)
	}

	// Drop e from the maintained set, preserving admission order.
	delete(m.member, e)
	for i, x := range m.indep {
		if x == e {
			m.indep = append(m.indep[:i], m.indep[i+1:]...)
			break
		}
	}

	// Replacement search over non-members in ground-set order.
	for _, c := range m.ground {
		if _, isMember := m.member[c]; isMember {
			continue
		}
		probe := append(m.indep[:len(m.indep):len(m.indep)], c)
		if m.oracle.IsIndependent(probe) {
			m.indep = append(m.indep, c)
			m.member[c] = struct{}{}
			break
		}
	}

	return m.verify("delete", e)
}

// verify is the optional post-update self-check; see randPerm.verify.
func (m *stability) verify(op string, e matroid.Element) error {
	if !m.selfCheck || len(m.indep) == 0 {
		return nil
	}
	if !m.oracle.IsIndependent(m.indep) {
		m.broken = true

		return fmt.Errorf("%w: detected after %s of element %d", ErrOracleInconsistency, op, e)
	}

	return nil
}

// IndependentSet returns the maintained set in admission order.
func (m *stability) IndependentSet() []matroid.Element {
	out := make([]matroid.Element, len(m.indep))
	copy(out, m.indep)

	return out
}

// Contains reports ground-set membership.
func (m *stability) Contains(e matroid.Element) bool {
	_, ok := m.position[e]

	return ok
}

// InIndependentSet reports maintained-set membership.
func (m *stability) InIndependentSet(e matroid.Element) bool {
	_, ok := m.member[e]

	return ok
}

// Len returns the live ground-set size.
func (m *stability) Len() int { return len(m.ground) }

// Rank returns the maintained set's size.
func (m *stability) Rank() int { return len(m.indep) }

// OracleCalls returns the total independence queries issued so far.
func (m *stability) OracleCalls() uint64 { return m.oracle.Calls() }
