package rbtree

// This file holds the pure structural primitives of the node graph:
// rotations, transplant, the rebalancing routines and physical unlinking.
// Nothing in here inspects payloads beyond moving them around; key
// comparisons happen in tree.go.

/*
    X              Y
  A   Y    =>    X   C
     B C        A B
*/
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
     Y            X
   X   C   =>   A   Y
  A B              B C
*/
func (t *Tree[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v in u's parent. v may be nil.
func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// rebalanceAfterInsertion restores the red-black invariants after z has
// been linked in as a red leaf. While z's parent is red: a red uncle is
// recolored together with the parent (pushing the violation two levels
// up), a black uncle terminates with one rotation pair. The root is
// forced black at the end.
func (t *Tree[K, V]) rebalanceAfterInsertion(z *node[K, V]) {
	for isRed(z.parent) {
		parent := z.parent
		// The root is black, so a red parent always has a parent itself.
		grand := parent.parent
		if parent == grand.left {
			uncle := grand.right
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
				continue
			}
			if z == parent.right {
				z = parent
				t.rotateLeft(z)
				parent = z.parent
			}
			parent.color = black
			grand.color = red
			t.rotateRight(grand)
		} else {
			uncle := grand.left
			if isRed(uncle) {
				parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
				continue
			}
			if z == parent.left {
				z = parent
				t.rotateRight(z)
				parent = z.parent
			}
			parent.color = black
			grand.color = red
			t.rotateLeft(grand)
		}
	}
	t.root.color = black
}

// rebalanceAfterDeletion repairs the double-black deficiency at x after
// a black node has been spliced out. x may be nil (the removed node was
// a black leaf), which is why the parent is carried explicitly. The four
// sibling cases (red sibling; black sibling with two black children;
// black sibling with only the far child red; black sibling with the near
// child red) either recolor and continue upward or terminate with a
// rotation.
func (t *Tree[K, V]) rebalanceAfterDeletion(x, parent *node[K, V]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			w := parent.right
			// The removed path was one black short, so the sibling
			// subtree cannot be empty.
			assert(w != nil, "rbtree: missing sibling during deletion rebalancing")
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			assert(w != nil, "rbtree: missing sibling during deletion rebalancing")
			if isRed(w) {
				w.color = black
				parent.color = red
				t.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = black
	}
}

// unlink physically removes z from the node graph. Three cases: no left
// child, no right child, or two children, in which case the inorder
// successor is spliced into z's place and takes over z's color. Deletion
// rebalancing runs only when the spliced-out color was black. Min/max
// caches and the element count are kept current.
func (t *Tree[K, V]) unlink(z *node[K, V]) {
	if t.min == z {
		t.min = z.successor()
	}
	if t.max == z {
		t.max = z.predecessor()
	}

	var x, xParent *node[K, V]
	removed := z.color
	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		s := minimum(z.right)
		removed = s.color
		x = s.right
		if s.parent == z {
			xParent = s
		} else {
			xParent = s.parent
			t.transplant(s, s.right)
			s.right = z.right
			s.right.parent = s
		}
		t.transplant(z, s)
		s.left = z.left
		s.left.parent = s
		s.color = z.color
	}
	if removed == black {
		t.rebalanceAfterDeletion(x, xParent)
	}
	z.parent, z.left, z.right = nil, nil, nil
	t.count--
}
