package rbtree

import (
	"cmp"
	"fmt"
)

// Check validates every structural invariant of the tree: binary-search
// order, red-black coloring (black root, no red-red adjacency, equal
// black-height on all root-to-leaf paths), parent-link consistency, and
// the count/min/max caches.
//
// This checker is intentionally strict; tests run it after mutations.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		switch {
		case t.count != 0:
			return fmt.Errorf("%w: empty tree has count %d", ErrInvariant, t.count)
		case t.min != nil || t.max != nil:
			return fmt.Errorf("%w: empty tree caches an extremum", ErrInvariant)
		}
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count %d, but %d reachable nodes", ErrInvariant, t.count, count)
	}
	if t.min != minimum(t.root) {
		return fmt.Errorf("%w: stale minimum cache", ErrInvariant)
	}
	if t.max != maximum(t.root) {
		return fmt.Errorf("%w: stale maximum cache", ErrInvariant)
	}
	return nil
}

// checkNode validates the subtree rooted at n and returns its node count
// and black-height.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariant, n.key)
	}
	if n.left != nil {
		if n.left.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariant, n.key)
		}
		if cmp.Compare(n.left.key, n.key) >= 0 {
			return 0, 0, fmt.Errorf("%w: order violation at %v", ErrInvariant, n.key)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariant, n.key)
		}
		if cmp.Compare(n.right.key, n.key) <= 0 {
			return 0, 0, fmt.Errorf("%w: order violation at %v", ErrInvariant, n.key)
		}
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: unequal black-heights below %v", ErrInvariant, n.key)
	}
	if n.color == black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
