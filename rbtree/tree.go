package rbtree

import "cmp"

// Tree is a red-black search tree mapping keys of an ordered type to
// values. It is the storage engine behind the sorted.Set and sorted.Map
// facades: it owns its node graph exclusively, caches the minimum and
// maximum nodes, and tracks the live element count.
//
// Operations have the usual balanced-tree characteristics:
//
//	Operation        |  Cost
//	-----------------+---------------------
//	Find             |  O(log n)
//	Find with hint   |  O(1) on a near hit
//	Insert           |  O(log n)
//	Insert with hint |  O(1) amortized
//	InsertLargest    |  O(1) amortized
//	Delete           |  O(log n)
//	Copy             |  O(n)
//
// A Tree is not safe for concurrent mutation; callers that share a tree
// across facade values coordinate through Retain/Release and Copy (see
// package sorted).
type Tree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	min    *node[K, V] // cached leftmost node
	max    *node[K, V] // cached rightmost node
	count  int
	owners int // number of facade values referencing this tree
}

// New creates an empty tree with a single owner.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{owners: 1}
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Retain records one more owning facade value. Sharing a tree is cheap;
// the first mutation through a sharing owner must deep-copy (see Copy
// and Shared).
func (t *Tree[K, V]) Retain() { t.owners++ }

// Release records that one owning facade value has let go of the tree.
func (t *Tree[K, V]) Release() {
	assert(t.owners > 0, "rbtree: Release without matching Retain")
	t.owners--
}

// Shared reports whether more than one facade value currently owns the
// tree. Mutators must deep-copy while Shared is true.
func (t *Tree[K, V]) Shared() bool { return t.owners > 1 }

// Owns reports whether pos was produced by this tree.
func (t *Tree[K, V]) Owns(pos Position[K, V]) bool { return pos.tree == t }

// Min returns the smallest element. The second return value is false for
// an empty tree.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.IsEmpty() {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.min.key, t.min.value, true
}

// Max returns the largest element. The second return value is false for
// an empty tree.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.IsEmpty() {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.max.key, t.max.value, true
}

// End returns the one-past-last position of this tree.
func (t *Tree[K, V]) End() Position[K, V] {
	return Position[K, V]{tree: t}
}

// Begin returns the position of the smallest element, or End for an
// empty tree.
func (t *Tree[K, V]) Begin() Position[K, V] {
	return Position[K, V]{tree: t, node: t.min}
}

// Find locates key with a logarithmic descent and returns its position,
// or End if the key is absent.
func (t *Tree[K, V]) Find(key K) Position[K, V] {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return Position[K, V]{tree: t, node: n}
		}
	}
	return t.End()
}

// FindHint locates key, first probing the hint position, its successor
// and its predecessor in O(1). Only when all three probes miss does it
// fall back to a full descent. Repeated lookups of nearby keys profit;
// an inaccurate hint merely costs three comparisons.
func (t *Tree[K, V]) FindHint(key K, hint Position[K, V]) Position[K, V] {
	t.assertOwns(hint)
	if h := hint.node; h != nil {
		if cmp.Compare(key, h.key) == 0 {
			return hint
		}
		if s := h.successor(); s != nil && cmp.Compare(key, s.key) == 0 {
			return Position[K, V]{tree: t, node: s}
		}
		if p := h.predecessor(); p != nil && cmp.Compare(key, p.key) == 0 {
			return Position[K, V]{tree: t, node: p}
		}
	} else if t.max != nil && cmp.Compare(key, t.max.key) == 0 {
		// The predecessor of the end position is the maximum.
		return Position[K, V]{tree: t, node: t.max}
	}
	return t.Find(key)
}

// LowerBound returns the position of the first element whose key is not
// less than key, or End.
func (t *Tree[K, V]) LowerBound(key K) Position[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if cmp.Compare(n.key, key) < 0 {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return Position[K, V]{tree: t, node: candidate}
}

// UpperBound returns the position of the first element whose key is
// strictly greater than key, or End.
func (t *Tree[K, V]) UpperBound(key K) Position[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if cmp.Compare(n.key, key) <= 0 {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return Position[K, V]{tree: t, node: candidate}
}

// Insert adds an element. If an equal key is already present, nothing is
// inserted and the occupied position is returned with inserted == false;
// the stored value is left untouched (see UpdateAt).
func (t *Tree[K, V]) Insert(key K, value V) (pos Position[K, V], inserted bool) {
	if t.root == nil {
		n := &node[K, V]{key: key, value: value, color: black}
		t.root, t.min, t.max = n, n, n
		t.count = 1
		return Position[K, V]{tree: t, node: n}, true
	}
	cur := t.root
	for {
		switch c := cmp.Compare(key, cur.key); {
		case c == 0:
			return Position[K, V]{tree: t, node: cur}, false
		case c < 0:
			if cur.left == nil {
				return Position[K, V]{tree: t, node: t.attach(key, value, cur, true)}, true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				return Position[K, V]{tree: t, node: t.attach(key, value, cur, false)}, true
			}
			cur = cur.right
		}
	}
}

// InsertHint adds an element like Insert, but first checks whether the
// correct slot is immediately adjacent to the hint position. When it is,
// the insertion runs in amortized O(1) without a descent; otherwise
// InsertHint falls back to the full Insert. An inaccurate hint changes
// the cost of the operation, never its outcome.
func (t *Tree[K, V]) InsertHint(key K, value V, hint Position[K, V]) (pos Position[K, V], inserted bool) {
	t.assertOwns(hint)
	if t.root == nil {
		return t.Insert(key, value)
	}
	h := hint.node
	var c int
	if h != nil {
		c = cmp.Compare(key, h.key)
	}
	switch {
	case h == nil || c < 0:
		// Candidate slot is immediately before the hint. The
		// predecessor of the end position is the maximum.
		pred := t.max
		if h != nil {
			pred = h.predecessor()
		}
		if pred == nil {
			// The hint is the minimum and key precedes it.
			return Position[K, V]{tree: t, node: t.attach(key, value, h, true)}, true
		}
		switch pc := cmp.Compare(pred.key, key); {
		case pc == 0:
			return Position[K, V]{tree: t, node: pred}, false
		case pc < 0:
			return Position[K, V]{tree: t, node: t.attachBetween(pred, h, key, value)}, true
		default:
			// Hint was not locally conclusive.
			return t.Insert(key, value)
		}
	case c > 0:
		succ := h.successor()
		if succ == nil {
			// The hint is the maximum and key follows it.
			return Position[K, V]{tree: t, node: t.attach(key, value, h, false)}, true
		}
		switch sc := cmp.Compare(key, succ.key); {
		case sc == 0:
			return Position[K, V]{tree: t, node: succ}, false
		case sc < 0:
			return Position[K, V]{tree: t, node: t.attachBetween(h, succ, key, value)}, true
		default:
			return t.Insert(key, value)
		}
	default:
		return hint, false
	}
}

// InsertLargest appends an element after the current maximum in O(1)
// amortized time. The key must strictly exceed the current maximum (or
// the tree must be empty); violating the precondition is a contract
// violation. Intended for bulk loads from input that is already sorted
// and deduplicated.
func (t *Tree[K, V]) InsertLargest(key K, value V) Position[K, V] {
	if t.root == nil {
		pos, _ := t.Insert(key, value)
		return pos
	}
	assert(cmp.Compare(key, t.max.key) > 0,
		"rbtree: InsertLargest key does not exceed the current maximum")
	return Position[K, V]{tree: t, node: t.attach(key, value, t.max, false)}
}

// attachBetween links a new element between the adjacent nodes pred and
// succ, with pred.key < key < succ.key. One of the two always has a free
// child slot on the correct side: if pred has a right subtree, succ is
// its leftmost node and has no left child.
func (t *Tree[K, V]) attachBetween(pred, succ *node[K, V], key K, value V) *node[K, V] {
	if pred.right == nil {
		return t.attach(key, value, pred, false)
	}
	return t.attach(key, value, succ, true)
}

// attach allocates a red node under parent's free child slot, updates
// the extremum caches and count, and rebalances.
func (t *Tree[K, V]) attach(key K, value V, parent *node[K, V], asLeft bool) *node[K, V] {
	n := &node[K, V]{parent: parent, key: key, value: value, color: red}
	if asLeft {
		assert(parent.left == nil, "rbtree: attach: left slot occupied")
		parent.left = n
	} else {
		assert(parent.right == nil, "rbtree: attach: right slot occupied")
		parent.right = n
	}
	t.count++
	if cmp.Compare(key, t.min.key) < 0 {
		t.min = n
	}
	if cmp.Compare(key, t.max.key) > 0 {
		t.max = n
	}
	t.rebalanceAfterInsertion(n)
	return n
}

// Delete removes the element with the given key and returns its value.
// A missing key is not an error; the second return value reports whether
// anything was removed.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	pos := t.Find(key)
	if pos.node == nil {
		var zero V
		return zero, false
	}
	v := pos.node.value
	t.unlink(pos.node)
	return v, true
}

// DeleteAt removes the element at pos and returns it. Deleting at the
// end position, or at a position of another tree, is a contract
// violation. The position (and any other position naming the same node)
// is invalid afterwards.
func (t *Tree[K, V]) DeleteAt(pos Position[K, V]) (K, V) {
	t.assertOwns(pos)
	assert(pos.node != nil, "rbtree: DeleteAt at end position")
	k, v := pos.node.key, pos.node.value
	t.unlink(pos.node)
	return k, v
}

// UpdateAt replaces the value stored at pos. The key is immutable; use
// DeleteAt plus Insert to rekey an element.
func (t *Tree[K, V]) UpdateAt(pos Position[K, V], value V) {
	t.assertOwns(pos)
	assert(pos.node != nil, "rbtree: UpdateAt at end position")
	pos.node.value = value
}

// Copy deep-clones the tree: every node is duplicated with its payload
// and color, preserving the exact topology. The clone is an independent
// single-owner tree; no node is shared with the source.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	c := &Tree[K, V]{count: t.count, owners: 1}
	c.root = cloneSubtree(t.root, nil)
	if c.root != nil {
		c.min = minimum(c.root)
		c.max = maximum(c.root)
	}
	return c
}

func cloneSubtree[K cmp.Ordered, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{parent: parent, color: n.color, key: n.key, value: n.value}
	c.left = cloneSubtree(n.left, c)
	c.right = cloneSubtree(n.right, c)
	return c
}

// Rebind re-targets a position taken from a structurally identical tree
// (typically the source of a Copy) onto the receiver, by replaying the
// recorded root-to-node path. The caller is responsible for structural
// identity; replaying a path that runs off the tree is a contract
// violation.
func (t *Tree[K, V]) Rebind(pos Position[K, V]) Position[K, V] {
	if pos.node == nil {
		return t.End()
	}
	n := t.root
	assert(n != nil, "rbtree: Rebind on an empty tree")
	for _, right := range pathFromRoot(pos.node) {
		if right {
			n = n.right
		} else {
			n = n.left
		}
		assert(n != nil, "rbtree: Rebind path does not exist in this tree")
	}
	return Position[K, V]{tree: t, node: n}
}

func (t *Tree[K, V]) assertOwns(pos Position[K, V]) {
	assert(pos.tree == t, "rbtree: position belongs to a different tree")
}
