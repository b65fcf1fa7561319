package matroid

// MaximalIndependentSet runs the classic greedy scan over elements in the
// given order and returns a maximal independent subset of them.
//
// Steps:
//  1. Start from an empty accumulator.
//  2. For each element e, in input order, probe accumulator ∪ {e} with one
//     oracle call.
//  3. If independent, keep e; otherwise skip it permanently (a rejected
//     element is never revisited within this call, by the hereditary axiom).
//
// The result's membership depends on the input order, but its cardinality
// does not: every maximal independent subset of the same elements has the
// same size (the rank of that set).
//
// The input must not contain duplicate identifiers. The returned slice is
// freshly allocated; the input slice is not modified.
//
// Complexity: exactly len(elements) oracle calls, no nested scans.
func MaximalIndependentSet(oracle Oracle, elements []Element) []Element {
	picked := make([]Element, 0, len(elements))
	for _, e := range elements {
		// The three-index expression keeps the probe's append from landing
		// in picked's spare capacity.
		probe := append(picked[:len(picked):len(picked)], e)
		if oracle.IsIndependent(probe) {
			picked = append(picked, e)
		}
	}

	return picked
}

// Rank returns the rank of the given element set: the size of any maximal
// independent subset of it. Costs len(elements) oracle calls.
func Rank(oracle Oracle, elements []Element) int {
	return len(MaximalIndependentSet(oracle, elements))
}
