package rbtree

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Node fill colors reflect the red-black
// coloring.
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	ids := make(map[*node[K, V]]int)
	next := 1
	alloc := func(n *node[K, V]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		ids[n] = next
		next++
		return next - 1
	}
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		id := alloc(n)
		fill := "black"
		if n.color == red {
			fill = "red"
		}
		fmt.Fprintf(w, "\t\"%d\" [label=\"%v\" fillcolor=%s];\n", id, n.key, fill)
		for _, child := range []*node[K, V]{n.left, n.right} {
			if child == nil {
				continue
			}
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, alloc(child))
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	io.WriteString(w, "}\n")
}

// NodeInfo describes one node of a tree for structural rendering. It
// exposes no links; renderers reconstruct shape from depth and order.
type NodeInfo[K cmp.Ordered] struct {
	Key   K
	Depth int
	Red   bool
}

// Structure returns an iterator over all nodes in right-to-left inorder
// with their depth and color, the order suitable for a sideways tree
// rendering (see package viz).
func (t *Tree[K, V]) Structure() iter.Seq[NodeInfo[K]] {
	return func(yield func(NodeInfo[K]) bool) {
		if t == nil {
			return
		}
		var walk func(n *node[K, V], depth int) bool
		walk = func(n *node[K, V], depth int) bool {
			if n == nil {
				return true
			}
			if !walk(n.right, depth+1) {
				return false
			}
			if !yield(NodeInfo[K]{Key: n.key, Depth: depth, Red: n.color == red}) {
				return false
			}
			return walk(n.left, depth+1)
		}
		walk(t.root, 0)
	}
}
