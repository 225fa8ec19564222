package rbtree

import "iter"

// All returns an iterator over all elements in ascending key order. The
// sequence is lazy, finite and restartable: ranging over it again starts
// over at the minimum. Mutating the tree during iteration is undefined.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for n := t.min; n != nil; n = n.successor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for n := t.max; n != nil; n = n.predecessor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
