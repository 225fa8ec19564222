package sorted

import (
	"cmp"

	"github.com/npillmayer/sorted/rbtree"
)

// ensureUnique establishes exclusive ownership of a facade's tree before
// a mutation. While the tree is shared with other container values it is
// deep-copied first, and every position argument of the mutating call is
// re-targeted onto the copy by path replay. The returned tree is the one
// the mutation must run against.
//
// Positions must belong to the current tree; handing in a position of a
// foreign container is a contract violation. Positions a caller cached
// before this call and did not pass in are not re-targeted (see the
// package documentation).
func ensureUnique[K cmp.Ordered, V any](tree *rbtree.Tree[K, V], positions ...*rbtree.Position[K, V]) *rbtree.Tree[K, V] {
	for _, p := range positions {
		assert(tree.Owns(*p), "sorted: position belongs to a different container")
	}
	if !tree.Shared() {
		return tree
	}
	T().Debugf("sorted: copy-on-write of a container with %d elements", tree.Len())
	clone := tree.Copy()
	for _, p := range positions {
		*p = clone.Rebind(*p)
	}
	tree.Release()
	return clone
}
