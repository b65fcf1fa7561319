// Package dynamic - arena-backed treap underlying the random-permutation
// strategy.
//
// The treap stores the live ground set ordered by permKey (random rank,
// insertion sequence number). Nodes live in a flat arena addressed by
// int32 index with an explicit free list, so deletions recycle slots and
// the structure holds no raw pointers.
package dynamic

import "github.com/plammens/matroids-main/matroid"

// nilIdx marks an absent child or an empty tree in the node arena.
const nilIdx int32 = -1

// permKey is an element's position in the random permutation: a uniformly
// random rank with the insertion sequence number as a stable tiebreaker.
// The tiebreaker approximates the ideal continuous-uniform rank model:
// rank collisions are possible in a 64-bit domain but resolve to a fixed,
// uniform-in-expectation relative order.
type permKey struct {
	rank uint64
	seq  uint64
}

// less orders keys lexicographically by (rank, seq).
func (k permKey) less(o permKey) bool {
	return k.rank < o.rank || (k.rank == o.rank && k.seq < o.seq)
}

// treapNode is one arena slot: a key, a heap priority, the stored element,
// and two child indices.
type treapNode struct {
	key   permKey
	prio  uint64
	elem  matroid.Element
	left  int32
	right int32
}

// treap is a randomized search tree over permKeys: a binary search tree in
// key order that is simultaneously a min-heap in prio, which keeps the
// expected depth logarithmic for independently drawn priorities.
type treap struct {
	nodes []treapNode
	free  []int32
	root  int32
	size  int
}

// newTreap returns an empty treap with room for hint nodes pre-allocated.
func newTreap(hint int) *treap {
	if hint < 0 {
		hint = 0
	}

	return &treap{
		nodes: make([]treapNode, 0, hint),
		root:  nilIdx,
	}
}

// len returns the number of stored elements.
func (t *treap) len() int { return t.size }

// alloc takes a slot from the free list or extends the arena.
func (t *treap) alloc(key permKey, prio uint64, e matroid.Element) int32 {
	node := treapNode{key: key, prio: prio, elem: e, left: nilIdx, right: nilIdx}
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[idx] = node

		return idx
	}
	t.nodes = append(t.nodes, node)

	return int32(len(t.nodes) - 1)
}

// release returns a slot to the free list.
func (t *treap) release(idx int32) {
	t.free = append(t.free, idx)
}

// insert places element e at the given key. Keys are unique by
// construction (the seq component never repeats), so no equal-key case
// exists. Complexity: expected O(log n).
func (t *treap) insert(key permKey, prio uint64, e matroid.Element) {
	t.root = t.insertAt(t.root, key, prio, e)
	t.size++
}

// insertAt descends in BST order and rebalances upward by rotation
// wherever the heap order on prio is violated. All child access goes
// through indices because alloc may relocate the arena backing array.
func (t *treap) insertAt(idx int32, key permKey, prio uint64, e matroid.Element) int32 {
	if idx == nilIdx {
		return t.alloc(key, prio, e)
	}
	if key.less(t.nodes[idx].key) {
		child := t.insertAt(t.nodes[idx].left, key, prio, e)
		t.nodes[idx].left = child
		if t.nodes[child].prio < t.nodes[idx].prio {
			idx = t.rotateRight(idx)
		}
	} else {
		child := t.insertAt(t.nodes[idx].right, key, prio, e)
		t.nodes[idx].right = child
		if t.nodes[child].prio < t.nodes[idx].prio {
			idx = t.rotateLeft(idx)
		}
	}

	return idx
}

// rotateRight lifts the left child above idx, preserving BST order.
func (t *treap) rotateRight(idx int32) int32 {
	l := t.nodes[idx].left
	t.nodes[idx].left = t.nodes[l].right
	t.nodes[l].right = idx

	return l
}

// rotateLeft lifts the right child above idx, preserving BST order.
func (t *treap) rotateLeft(idx int32) int32 {
	r := t.nodes[idx].right
	t.nodes[idx].right = t.nodes[r].left
	t.nodes[r].left = idx

	return r
}

// delete removes the node with the given key, reporting whether it was
// present. Complexity: expected O(log n).
func (t *treap) delete(key permKey) bool {
	var found bool
	t.root = t.deleteAt(t.root, key, &found)
	if found {
		t.size--
	}

	return found
}

// deleteAt finds the key in BST order and replaces the matching node by
// the heap-order merge of its subtrees.
func (t *treap) deleteAt(idx int32, key permKey, found *bool) int32 {
	if idx == nilIdx {
		return nilIdx
	}
	switch {
	case key.less(t.nodes[idx].key):
		t.nodes[idx].left = t.deleteAt(t.nodes[idx].left, key, found)
	case t.nodes[idx].key.less(key):
		t.nodes[idx].right = t.deleteAt(t.nodes[idx].right, key, found)
	default:
		*found = true
		merged := t.merge(t.nodes[idx].left, t.nodes[idx].right)
		t.release(idx)

		return merged
	}

	return idx
}

// merge joins two subtrees where every key in a precedes every key in b,
// choosing roots by heap order.
func (t *treap) merge(a, b int32) int32 {
	if a == nilIdx {
		return b
	}
	if b == nilIdx {
		return a
	}
	if t.nodes[a].prio < t.nodes[b].prio {
		t.nodes[a].right = t.merge(t.nodes[a].right, b)

		return a
	}
	t.nodes[b].left = t.merge(a, t.nodes[b].left)

	return b
}

// ascendAfter visits, in ascending key order, every element whose key is
// strictly greater than the given key, until visit returns false. The key
// itself need not be present; this is the "elements after position p"
// traversal used by the deletion replacement scan.
func (t *treap) ascendAfter(key permKey, visit func(matroid.Element) bool) {
	// Descend, stacking each node whose key is a successor candidate; the
	// stack then pops ancestors in increasing key order.
	stack := make([]int32, 0, 48)
	for idx := t.root; idx != nilIdx; {
		if key.less(t.nodes[idx].key) {
			stack = append(stack, idx)
			idx = t.nodes[idx].left
		} else {
			idx = t.nodes[idx].right
		}
	}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(t.nodes[idx].elem) {
			return
		}
		// Queue the left spine of the right subtree: its nodes pop in
		// ascending key order before any stacked ancestor.
		for c := t.nodes[idx].right; c != nilIdx; c = t.nodes[c].left {
			stack = append(stack, c)
		}
	}
}
