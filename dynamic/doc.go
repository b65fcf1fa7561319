// Package dynamic maintains a maximal independent set of a matroid whose
// ground set changes over time through element insertions and deletions,
// and offers two interchangeable maintenance strategies behind a single
// Maintainer contract so that their oracle-call costs can be compared on
// identical workloads.
//
// What & Why
//
//   - The problem: after every Insert or Delete, the maintained set must
//     again be independent and maximal over the live ground set; a matroid's
//     maximal independent sets all share the same size (the rank), so the
//     maintained set is always a basis of the current ground set.
//
//   - Why two strategies: matroid "stability" guarantees tiny result churn
//     per update (≤1 element on insert, ≤2 on delete) for any strategy, but
//     the search cost of restoring maximality differs sharply. The point of
//     this package is to expose that difference through OracleCalls.
//
// Strategies Provided
//
//   - RandomPermutation
//
//   - State: a uniformly random total order over the live ground set
//     (an arena-backed treap keyed by random rank), plus the maintained
//     basis kept sorted by rank.
//
//   - Insert: draw a fresh random rank, place the element, and decide its
//     membership with one oracle call on set ∪ {e}. Existing members are
//     never disturbed, so nothing else moves.
//
//   - Delete: a non-member leaves for free; deleting a member triggers an
//     in-rank-order scan of the non-members after its old position,
//     wrapping around to the lowest ranks, for the single replacement
//     the exchange axiom promises.
//
//   - Expected efficiency rests on the ranks being uniform and fresh: the
//     replacement scan stops, in expectation, after few candidates.
//
//   - Stability
//
//   - State: the independent set only; the live ground set is kept in
//     insertion-derived order with no permutation.
//
//   - Insert: one oracle call on set ∪ {e}; admission never disturbs
//     existing members (hereditary axiom).
//
//   - Delete: a non-member leaves for free; deleting a member scans all
//     non-members in ground-set order until one restores maximality.
//
// Update streams
//
// Apply drives a Maintainer through a sequence of Op values and reports
// applied-operation, oracle-call, and (optionally) churn totals, which is
// the boundary an experiment driver consumes.
//
// Errors
//
//   - ErrAlreadyPresent:      Insert of a live identifier (no state change).
//   - ErrNotFound:            Delete of an absent identifier (no state change).
//   - ErrNilOracle:           New called with a nil oracle.
//   - ErrUnknownKind:         New called with an unrecognized Kind.
//   - ErrUnknownOpKind:       Apply met an Op with an invalid Kind.
//   - ErrOracleInconsistency: with WithSelfCheck, the oracle reported a
//     previously independent set as dependent; fatal for the maintainer.
//   - ErrMaintainerPoisoned:  an update was attempted after a fatal
//     inconsistency.
//
// Concurrency
//
// Maintainers are single-threaded, synchronous structures: one update is
// fully applied, all its oracle calls resolved, before the next is
// accepted. There is no locking and no cancellation; run one maintainer
// per goroutine with its own oracle if parallel experiments are needed.
//
// Complexity
//
//   - RandomPermutation Insert: O(log n) treap work + 1 oracle call.
//   - RandomPermutation Delete: O(log n) + oracle calls for the scanned
//     candidates (O(1) expected under random ranks).
//   - Stability Insert: O(1) + 1 oracle call.
//   - Stability Delete of a member: up to n−r candidate oracle calls.
package dynamic
