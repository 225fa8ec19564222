package sorted

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sorted/rbtree"
)

// Position is a handle to one element slot of a Set. The end position
// denotes the slot one past the largest element. Positions are bound to
// the container value that produced them; see package rbtree.
type Position[K cmp.Ordered] = rbtree.Position[K, struct{}]

// Set is a sorted collection of unique keys.
//
// A set created by
//
//	&Set[int]{}
//
// is a valid object and behaves like an empty set. Clone shares storage
// in O(1) and copies lazily on the first mutation; never copy a Set
// struct value directly.
type Set[K cmp.Ordered] struct {
	tree *rbtree.Tree[K, struct{}]
}

// NewSet creates an empty sorted set.
func NewSet[K cmp.Ordered]() *Set[K] {
	return &Set[K]{tree: rbtree.New[K, struct{}]()}
}

// SetOf creates a sorted set holding the given keys. Duplicates collapse.
func SetOf[K cmp.Ordered](keys ...K) *Set[K] {
	s := NewSet[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// SetFrom creates a sorted set from an arbitrary, possibly unordered and
// duplicate-carrying sequence of keys. Duplicates collapse.
func SetFrom[K cmp.Ordered](keys iter.Seq[K]) *Set[K] {
	s := NewSet[K]()
	for k := range keys {
		s.Insert(k)
	}
	return s
}

// eng returns the underlying tree, creating it for a zero-value set.
func (s *Set[K]) eng() *rbtree.Tree[K, struct{}] {
	if s.tree == nil {
		s.tree = rbtree.New[K, struct{}]()
	}
	return s.tree
}

// Len returns the number of elements in the set.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether key is an element of the set.
func (s *Set[K]) Contains(key K) bool {
	return !s.eng().Find(key).IsEnd()
}

// ContainsAll reports whether every key of the sequence is an element of
// the set, probing per element.
func (s *Set[K]) ContainsAll(keys iter.Seq[K]) bool {
	for k := range keys {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one key of the sequence is an
// element of the set.
func (s *Set[K]) ContainsAny(keys iter.Seq[K]) bool {
	for k := range keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// Insert adds key to the set and reports whether the set grew. Inserting
// a present key leaves the set unchanged.
func (s *Set[K]) Insert(key K) bool {
	s.tree = ensureUnique(s.eng())
	_, inserted := s.tree.Insert(key, struct{}{})
	return inserted
}

// InsertAll adds every key of an arbitrary, possibly unordered sequence,
// probing per element in O(n log n). For merging another Set use Union,
// which exploits the ordering of both operands.
func (s *Set[K]) InsertAll(keys iter.Seq[K]) {
	s.tree = ensureUnique(s.eng())
	for k := range keys {
		s.tree.Insert(k, struct{}{})
	}
}

// Remove deletes key from the set and returns the removed element. The
// second return value is false if key was not an element.
func (s *Set[K]) Remove(key K) (K, bool) {
	pos := s.eng().Find(key)
	if pos.IsEnd() {
		var zero K
		return zero, false
	}
	s.tree = ensureUnique(s.tree, &pos)
	k, _ := s.tree.DeleteAt(pos)
	return k, true
}

// RemoveAll deletes every key of an arbitrary sequence, probing per
// element. For subtracting another Set use Subtract.
func (s *Set[K]) RemoveAll(keys iter.Seq[K]) {
	s.tree = ensureUnique(s.eng())
	for k := range keys {
		s.tree.Delete(k)
	}
}

// RemoveAt deletes the element at pos and returns it. The position must
// have been produced by this set; removing at the end position is a
// contract violation. pos — like any other position naming the same
// element — is invalid afterwards.
func (s *Set[K]) RemoveAt(pos Position[K]) K {
	s.tree = ensureUnique(s.eng(), &pos)
	k, _ := s.tree.DeleteAt(pos)
	return k
}

// Clear removes all elements.
func (s *Set[K]) Clear() {
	if s.tree != nil && s.tree.Shared() {
		s.tree.Release()
	}
	s.tree = rbtree.New[K, struct{}]()
}

// Min returns the smallest element, or false for an empty set.
func (s *Set[K]) Min() (K, bool) {
	k, _, ok := s.eng().Min()
	return k, ok
}

// Max returns the largest element, or false for an empty set.
func (s *Set[K]) Max() (K, bool) {
	k, _, ok := s.eng().Max()
	return k, ok
}

// RemoveFirst removes and returns the smallest element. Calling it on an
// empty set is a contract violation.
func (s *Set[K]) RemoveFirst() K {
	assert(s.Len() > 0, "sorted: RemoveFirst on an empty set")
	s.tree = ensureUnique(s.eng())
	k, _ := s.tree.DeleteAt(s.tree.Begin())
	return k
}

// RemoveLast removes and returns the largest element. Calling it on an
// empty set is a contract violation.
func (s *Set[K]) RemoveLast() K {
	assert(s.Len() > 0, "sorted: RemoveLast on an empty set")
	s.tree = ensureUnique(s.eng())
	k, _ := s.tree.DeleteAt(s.tree.End().Prev())
	return k
}

// Find returns the position of key, or the end position.
func (s *Set[K]) Find(key K) Position[K] {
	return s.eng().Find(key)
}

// LowerBound returns the position of the first element not less than
// key, or the end position.
func (s *Set[K]) LowerBound(key K) Position[K] {
	return s.eng().LowerBound(key)
}

// UpperBound returns the position of the first element strictly greater
// than key, or the end position.
func (s *Set[K]) UpperBound(key K) Position[K] {
	return s.eng().UpperBound(key)
}

// End returns the one-past-last position of the set.
func (s *Set[K]) End() Position[K] {
	return s.eng().End()
}

// All returns an iterator over all elements in ascending order. The
// sequence is lazy and restartable.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Backward returns an iterator over all elements in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent set with the same elements. The clone
// shares storage with the receiver in O(1); whichever of the two mutates
// first copies the storage at that point.
func (s *Set[K]) Clone() *Set[K] {
	t := s.eng()
	t.Retain()
	return &Set[K]{tree: t}
}

// Equal reports whether both sets hold the same elements: equal length
// and element-wise equal ascending sequences.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() {
		if cmp.Compare(a.Key(), b.Key()) != 0 {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// Compare orders two sets lexicographically by their ascending element
// sequences, returning -1, 0 or +1.
func (s *Set[K]) Compare(other *Set[K]) int {
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		if c := cmp.Compare(a.Key(), b.Key()); c != 0 {
			return c
		}
		a, b = a.Next(), b.Next()
	}
	switch {
	case !a.IsEnd():
		return 1
	case !b.IsEnd():
		return -1
	}
	return 0
}

// String returns the elements in ascending order, for debugging.
func (s *Set[K]) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			bf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&bf, "%v", k)
	}
	bf.WriteByte('}')
	return bf.String()
}
