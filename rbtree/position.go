package rbtree

import "cmp"

// Position is an opaque handle to one element slot of a specific tree.
// Positions are comparable (==) and may be used as map keys. A Position
// with a nil node denotes the end — the one-past-last slot of the tree.
//
// A position carries the identity of the tree that produced it. Using it
// against any other tree, even a structurally identical copy, is a
// contract violation and panics rather than silently reading across
// storage; Tree.Rebind converts positions across a Copy.
//
// A position becomes stale when the node it names is deleted. Stale
// positions are not detected.
type Position[K cmp.Ordered, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

// IsEnd reports whether the position denotes the one-past-last slot.
func (p Position[K, V]) IsEnd() bool { return p.node == nil }

// Key returns the key of the referenced element. Dereferencing the end
// position is a contract violation.
func (p Position[K, V]) Key() K {
	assert(p.node != nil, "rbtree: Key at end position")
	return p.node.key
}

// Value returns the value of the referenced element. Dereferencing the
// end position is a contract violation.
func (p Position[K, V]) Value() V {
	assert(p.node != nil, "rbtree: Value at end position")
	return p.node.value
}

// Next returns the position of the next larger element, or the end
// position. Advancing the end position is a contract violation.
func (p Position[K, V]) Next() Position[K, V] {
	assert(p.node != nil, "rbtree: Next at end position")
	return Position[K, V]{tree: p.tree, node: p.node.successor()}
}

// Prev returns the position of the next smaller element. Stepping back
// from the end position yields the maximum; stepping back from the
// minimum is a contract violation.
func (p Position[K, V]) Prev() Position[K, V] {
	if p.node == nil {
		assert(p.tree != nil && p.tree.max != nil, "rbtree: Prev on an empty tree")
		return Position[K, V]{tree: p.tree, node: p.tree.max}
	}
	prev := p.node.predecessor()
	assert(prev != nil, "rbtree: Prev at first position")
	return Position[K, V]{tree: p.tree, node: prev}
}

// Compare orders two positions of the same tree by the keys of their
// referenced elements. The end position compares greater than every
// valid position and equal to another end position. Comparing positions
// of different trees is a contract violation.
func (p Position[K, V]) Compare(other Position[K, V]) int {
	assert(p.tree == other.tree, "rbtree: comparing positions of different trees")
	switch {
	case p.node == other.node:
		return 0
	case p.node == nil:
		return 1
	case other.node == nil:
		return -1
	}
	return cmp.Compare(p.node.key, other.node.key)
}
