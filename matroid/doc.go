// Package matroid defines the central Element and Oracle types, the static
// greedy builder for maximal independent sets, oracle decorators, and a
// small family of concrete matroid instances.
//
// What & Why
//
//   - What is a matroid?
//     A matroid is a pair (E, I) where E is a finite ground set and I is a
//     collection of subsets of E (the "independent sets") satisfying:
//     (1) hereditary — every subset of an independent set is independent;
//     (2) exchange — if A, B ∈ I and |A| < |B|, then some b ∈ B\A exists
//     with A ∪ {b} ∈ I.
//
//   - Why matroids matter:
//
//   - Greedy optimality: the plain greedy scan provably produces a maximal
//     independent set (a basis), which is the backbone of spanning-tree,
//     scheduling, and rigidity algorithms.
//
//   - Abstraction: forests of a graph, linearly independent vector sets and
//     capacity-bounded selections are all the same object behind one
//     independence predicate.
//
// Oracle contract
//
// All algorithms in this module consume a matroid exclusively through the
// one-method Oracle interface:
//
//	IsIndependent(subset []Element) bool
//
// Callers only ever probe single-element extensions of sets already known
// to be independent, so implementations may (and the provided ones do)
// optimize for small, incrementally built subsets. The hereditary and
// exchange axioms are assumed, never checked; an implementation that
// violates them voids every correctness guarantee downstream.
//
// Provided instances
//
//   - Uniform:   independent iff |S| ≤ k.
//   - Partition: per-part capacity over labelled elements.
//   - Graphic:   elements are edges; independent iff the edges form a forest
//     (union-find with path compression and union by rank, per query).
//   - Binary:    elements are GF(2) vectors packed in uint64 words;
//     independence via bitwise Gaussian elimination.
//
// Decorators
//
//   - CountingOracle: transparent call counter, the basis for the oracle
//     cost accounting exposed by package dynamic.
//   - CachedOracle: ARC-LRU memoization of answers keyed by the canonical
//     encoding of the subset; valid while the underlying matroid's answer
//     for a fixed subset is stable.
//
// Errors
//
//   - ErrNilOracle:         a decorator was given a nil inner oracle.
//   - ErrNegativeRank:      Uniform constructed with rank < 0.
//   - ErrBadCapacity:       Partition constructed with capacity < 0.
//   - ErrBadCacheSize:      CachedOracle constructed with size < 1.
//   - ErrBadDimension:      Binary constructed with dim outside [1, 64].
//   - ErrDimensionOverflow: a vector has bits outside the declared dimension.
//   - ErrDuplicateElement:  payload registered twice for the same identifier.
//   - ErrEmptyVertexID:     a Graphic edge endpoint has an empty ID.
//
// Complexity
//
//   - MaximalIndependentSet: exactly one oracle call per input element.
//   - Uniform.IsIndependent:   O(1).
//   - Partition.IsIndependent: O(|S|).
//   - Graphic.IsIndependent:   O(|S|·α(V)).
//   - Binary.IsIndependent:    O(|S|·dim) word operations.
package matroid
