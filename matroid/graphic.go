package matroid

import "fmt"

// Graphic is the graphic (cycle) matroid of an undirected multigraph:
// elements are edges, and a subset of edges is independent iff it forms a
// forest. Parallel edges are allowed (each under its own identifier);
// self-loops are valid payloads but dependent on their own, so they are
// never admitted into an independent set.
//
// Each query runs a disjoint-set union (path compression + union by rank)
// over the endpoints of the queried edges only, so the cost scales with
// the subset, not with the total number of registered edges.
type Graphic struct {
	ends map[Element][2]string
}

// NewGraphic builds an empty graphic matroid. Edges are registered with
// AddEdge before their identifiers can be admitted anywhere.
func NewGraphic() *Graphic {
	return &Graphic{ends: make(map[Element][2]string)}
}

// AddEdge registers element e as the undirected edge u—v. Registrations
// are immutable; re-registering an identifier returns ErrDuplicateElement,
// and an empty endpoint ID returns ErrEmptyVertexID. A self-loop (u == v)
// is accepted and behaves as a loop of the matroid: dependent by itself.
func (g *Graphic) AddEdge(e Element, u, v string) error {
	if u == "" || v == "" {
		return fmt.Errorf("%w: edge %d (%q—%q)", ErrEmptyVertexID, e, u, v)
	}
	if _, ok := g.ends[e]; ok {
		return fmt.Errorf("%w: element %d", ErrDuplicateElement, e)
	}
	g.ends[e] = [2]string{u, v}

	return nil
}

// Edges returns the number of registered edges.
func (g *Graphic) Edges() int { return len(g.ends) }

// IsIndependent reports whether the queried edges form a forest.
// Unregistered identifiers and self-loops fail the check immediately.
//
// Steps:
//  1. Initialize a disjoint-set forest lazily over the endpoints seen.
//  2. For each edge (u, v): if find(u) == find(v) the edge closes a cycle,
//     so the subset is dependent; otherwise union the two components.
//
// Complexity: O(|subset| · α(V)) with V the endpoints touched.
func (g *Graphic) IsIndependent(subset []Element) bool {
	// parent maps each endpoint to its representative; rank bounds tree
	// depth for union by rank.
	parent := make(map[string]string, 2*len(subset))
	rank := make(map[string]int, 2*len(subset))

	// Iterative find with path compression (grandparent pointer hops).
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	for _, e := range subset {
		ends, ok := g.ends[e]
		if !ok {
			// Unregistered payload: never independent.
			return false
		}
		u, v := ends[0], ends[1]
		if u == v {
			// Self-loop: a one-edge cycle.
			return false
		}
		for _, w := range [2]string{u, v} {
			if _, seen := parent[w]; !seen {
				parent[w] = w
				rank[w] = 0
			}
		}

		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			// Both endpoints already connected: e closes a cycle.
			return false
		}
		// Union by rank: attach the shallower tree under the deeper root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	return true
}
