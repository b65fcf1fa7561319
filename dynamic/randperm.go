// Package dynamic - the random-permutation maintenance strategy.
package dynamic

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/plammens/matroids-main/matroid"
)

// permEntry is one member of the maintained independent set together with
// its permutation position, kept sorted by key so that admissions and
// evictions splice at a binary-searched slot.
type permEntry struct {
	key  permKey
	elem matroid.Element
}

// randPerm maintains a uniformly random total order over the live ground
// set and a maximal independent set of it. Membership of an element is
// never disturbed by another element's insert; the random order dictates
// only where the replacement scan starts after a member's delete, which
// is what keeps the expected scan length constant.
type randPerm struct {
	oracle    *matroid.CountingOracle
	rng       *rand.Rand
	perm      *treap
	keys      map[matroid.Element]permKey
	indep     []permEntry
	member    map[matroid.Element]struct{}
	nextSeq   uint64
	selfCheck bool
	broken    bool
}

// newRandPerm builds an empty random-permutation maintainer.
func newRandPerm(oracle *matroid.CountingOracle, o options) *randPerm {
	return &randPerm{
		oracle:    oracle,
		rng:       rand.New(rand.NewSource(o.seed)),
		perm:      newTreap(64),
		keys:      make(map[matroid.Element]permKey),
		member:    make(map[matroid.Element]struct{}),
		selfCheck: o.selfCheck,
	}
}

// Insert draws a fresh random rank for e, places it in the permutation,
// and decides e's membership with exactly one oracle call: the maintained
// set plus e itself. An admission can never invalidate existing members
// (hereditary axiom), and a rejection changes nothing, so membership of
// every other element is untouched by an insert.
//
// Steps:
//  1. Reject a live identifier with ErrAlreadyPresent.
//  2. Draw (rank, seq) and a treap priority; insert into the permutation.
//  3. Probe set ∪ {e}; admit e on an independent verdict.
//
// Complexity: expected O(log n) treap work + 1 oracle call (+1 with
// self-checking enabled).
func (m *randPerm) Insert(e matroid.Element) error {
	if m.broken {
		return fmt.Errorf("%w: insert of element %d", ErrMaintainerPoisoned, e)
	}
	if _, ok := m.keys[e]; ok {
		return fmt.Errorf("%w: insert of element %d", ErrAlreadyPresent, e)
	}

	m.nextSeq++
	key := permKey{rank: m.rng.Uint64(), seq: m.nextSeq}
	m.perm.insert(key, m.rng.Uint64(), e)
	m.keys[e] = key

	probe := m.snapshot(1)
	probe = append(probe, e)
	if m.oracle.IsIndependent(probe) {
		at := sort.Search(len(m.indep), func(i int) bool { return key.less(m.indep[i].key) })
		m.admit(at, permEntry{key: key, elem: e})
	}

	return m.verify("insert", e)
}

// Delete removes e from the permutation. A non-member leaves without any
// oracle traffic. Deleting a member triggers the replacement scan: the
// non-members ranked strictly after e's old position are probed in rank
// order against the surviving members, wrapping around to the lowest
// ranks if the tail yields nothing, and the first success is admitted.
// A single admission always restores a maximal set, by the exchange
// axiom. If no candidate anywhere succeeds, the rank of the ground set
// has genuinely dropped.
//
// Complexity: expected O(log n) treap work; oracle calls equal to the
// number of scanned candidates, whose expectation is O(1) under uniform
// fresh ranks.
func (m *randPerm) Delete(e matroid.Element) error {
	if m.broken {
		return fmt.Errorf("%w: delete of element %d", ErrMaintainerPoisoned, e)
	}
	key, ok := m.keys[e]
	if !ok {
		return fmt.Errorf("%w: delete of element %d", ErrNotFound, e)
	}

	m.perm.delete(key)
	delete(m.keys, e)
	if _, isMember := m.member[e]; !isMember {
		// A non-member's departure can break neither independence nor
		// maximality.
		return m.verify("delete", e)
	}

	// Drop e from the maintained set.
	delete(m.member, e)
	m.evict(key)

	// Replacement scan: later-ranked non-members first, then wrap to the
	// candidates ranked before e's old position.
	found := false
	scan := func(c matroid.Element) bool {
		if _, isMember := m.member[c]; isMember {
			return true
		}
		probe := m.snapshot(1)
		probe = append(probe, c)
		if !m.oracle.IsIndependent(probe) {
			return true
		}
		ck := m.keys[c]
		at := sort.Search(len(m.indep), func(i int) bool { return ck.less(m.indep[i].key) })
		m.admit(at, permEntry{key: ck, elem: c})
		found = true

		return false
	}
	m.perm.ascendAfter(key, scan)
	if !found {
		// permKey{} sorts before every live key: seq starts at 1.
		m.perm.ascendAfter(permKey{}, func(c matroid.Element) bool {
			if !m.keys[c].less(key) {
				return false // reached the already-scanned tail
			}
			return scan(c)
		})
	}

	return m.verify("delete", e)
}

// admit splices entry into the sorted member slice at position at.
func (m *randPerm) admit(at int, entry permEntry) {
	m.indep = append(m.indep, permEntry{})
	copy(m.indep[at+1:], m.indep[at:])
	m.indep[at] = entry
	m.member[entry.elem] = struct{}{}
}

// evict removes the member entry with the given key from the sorted slice.
func (m *randPerm) evict(key permKey) {
	at := sort.Search(len(m.indep), func(i int) bool { return !m.indep[i].key.less(key) })
	copy(m.indep[at:], m.indep[at+1:])
	m.indep = m.indep[:len(m.indep)-1]
}

// snapshot copies the member elements in rank order, reserving room for
// extra appended probes.
func (m *randPerm) snapshot(extra int) []matroid.Element {
	out := make([]matroid.Element, 0, len(m.indep)+extra)
	for _, entry := range m.indep {
		out = append(out, entry.elem)
	}

	return out
}

// verify is the optional post-update self-check: the maintained set was
// reported independent when assembled, so a dependent verdict now proves
// the oracle inconsistent. The first inconsistency poisons the maintainer.
func (m *randPerm) verify(op string, e matroid.Element) error {
	if !m.selfCheck || len(m.indep) == 0 {
		return nil
	}
	if !m.oracle.IsIndependent(m.snapshot(0)) {
		m.broken = true

		return fmt.Errorf("%w: detected after %s of element %d", ErrOracleInconsistency, op, e)
	}

	return nil
}

// IndependentSet returns the maintained set in permutation (rank) order.
func (m *randPerm) IndependentSet() []matroid.Element { return m.snapshot(0) }

// Contains reports ground-set membership.
func (m *randPerm) Contains(e matroid.Element) bool {
	_, ok := m.keys[e]

	return ok
}

// InIndependentSet reports maintained-set membership.
func (m *randPerm) InIndependentSet(e matroid.Element) bool {
	_, ok := m.member[e]

	return ok
}

// Len returns the live ground-set size.
func (m *randPerm) Len() int { return len(m.keys) }

// Rank returns the maintained set's size.
func (m *randPerm) Rank() int { return len(m.indep) }

// OracleCalls returns the total independence queries issued so far.
func (m *randPerm) OracleCalls() uint64 { return m.oracle.Calls() }
