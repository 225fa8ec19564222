package rbtree

import "cmp"

type color uint8

const (
	red color = iota
	black
)

// node is one element slot of a tree's node graph. Nodes are owned
// exclusively by the tree that allocated them; they are linked through
// parent pointers as well as child pointers so that successor and
// predecessor walks need no auxiliary stack.
type node[K cmp.Ordered, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	color  color
	key    K
	value  V
}

// isRed treats nil as black, matching the usual red-black convention of
// black external leaves.
func isRed[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func isBlack[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n == nil || n.color == black
}

// minimum returns the leftmost node of the subtree rooted at n.
// n must not be nil.
func minimum[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
// n must not be nil.
func maximum[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the node holding the next larger key, or nil if n is
// the maximum.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return minimum(n.right)
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the node holding the next smaller key, or nil if n
// is the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return maximum(n.left)
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

// pathFromRoot records the root-to-n descent as a sequence of turns,
// where true means a step to the right child. Replaying the path on a
// structurally identical tree locates the corresponding node; this is
// the mechanism that lets positions survive a deep copy (see
// Tree.Rebind).
func pathFromRoot[K cmp.Ordered, V any](n *node[K, V]) []bool {
	var path []bool
	for n.parent != nil {
		path = append(path, n == n.parent.right)
		n = n.parent
	}
	// The path was collected bottom-up; reverse for top-down replay.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
