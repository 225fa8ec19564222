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

// Entry is a key/value pair of a Map.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// MapPosition is a handle to one entry slot of a Map.
type MapPosition[K cmp.Ordered, V any] = rbtree.Position[K, V]

// DupPolicy selects which value survives when a constructor sequence
// carries the same key more than once.
type DupPolicy uint8

const (
	KeepFirst DupPolicy = iota // the earliest value for a key wins
	KeepLast                   // the latest value for a key wins
)

// Map is an associative container sorted by key. Like Set it is a
// value-semantics container with O(1) Clone and lazy copy-on-write.
//
// The zero value &Map[string,int]{} is an empty, usable map.
type Map[K cmp.Ordered, V any] struct {
	tree *rbtree.Tree[K, V]
}

// NewMap creates an empty sorted map.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.New[K, V]()}
}

// MapOf creates a sorted map from entries. Later entries for the same
// key overwrite earlier ones.
func MapOf[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// MapFrom creates a sorted map from an arbitrary sequence of key/value
// pairs. policy decides which value survives for a duplicated key.
func MapFrom[K cmp.Ordered, V any](entries iter.Seq2[K, V], policy DupPolicy) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range entries {
		pos, inserted := m.tree.Insert(k, v)
		if !inserted && policy == KeepLast {
			m.tree.UpdateAt(pos, v)
		}
	}
	return m
}

// MapFromUnique creates a sorted map from a sequence whose keys the
// caller guarantees to be unique. A duplicated key is a contract
// violation and panics.
func MapFromUnique[K cmp.Ordered, V any](entries iter.Seq2[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range entries {
		_, inserted := m.tree.Insert(k, v)
		assert(inserted, "sorted: duplicate key in MapFromUnique input")
	}
	return m
}

// MapFromCombining creates a sorted map from an arbitrary sequence,
// folding the values of duplicated keys with combine(old, new).
func MapFromCombining[K cmp.Ordered, V any](entries iter.Seq2[K, V], combine func(V, V) V) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range entries {
		pos, inserted := m.tree.Insert(k, v)
		if !inserted {
			m.tree.UpdateAt(pos, combine(pos.Value(), v))
		}
	}
	return m
}

// GroupBy creates a sorted map from values, grouping them under the key
// computed by key. Groups preserve the encounter order of values.
func GroupBy[K cmp.Ordered, V any](values iter.Seq[V], key func(V) K) *Map[K, []V] {
	m := NewMap[K, []V]()
	for v := range values {
		k := key(v)
		pos, inserted := m.tree.Insert(k, []V{v})
		if !inserted {
			m.tree.UpdateAt(pos, append(pos.Value(), v))
		}
	}
	return m
}

// eng returns the underlying tree, creating it for a zero-value map.
func (m *Map[K, V]) eng() *rbtree.Tree[K, V] {
	if m.tree == nil {
		m.tree = rbtree.New[K, V]()
	}
	return m.tree
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Get returns the value stored for key. The second return value is
// false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	pos := m.eng().Find(key)
	if pos.IsEnd() {
		var zero V
		return zero, false
	}
	return pos.Value(), true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return !m.eng().Find(key).IsEnd()
}

// Set stores value under key. It returns the previous value and true if
// an entry for key was replaced.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	m.tree = ensureUnique(m.eng())
	pos, inserted := m.tree.Insert(key, value)
	if inserted {
		var zero V
		return zero, false
	}
	prev := pos.Value()
	m.tree.UpdateAt(pos, value)
	return prev, true
}

// Update rewrites the entry for key with fn(current). The second return
// value of fn decides whether the entry is kept (true) or removed.
// Update reports whether key was present; fn is not called otherwise.
func (m *Map[K, V]) Update(key K, fn func(V) (V, bool)) bool {
	pos := m.eng().Find(key)
	if pos.IsEnd() {
		return false
	}
	m.tree = ensureUnique(m.tree, &pos)
	v, keep := fn(pos.Value())
	if keep {
		m.tree.UpdateAt(pos, v)
	} else {
		m.tree.DeleteAt(pos)
	}
	return true
}

// Remove deletes the entry for key and returns its value. The second
// return value is false if key was absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	pos := m.eng().Find(key)
	if pos.IsEnd() {
		var zero V
		return zero, false
	}
	m.tree = ensureUnique(m.tree, &pos)
	_, v := m.tree.DeleteAt(pos)
	return v, true
}

// RemoveAt deletes the entry at pos and returns it. The position must
// have been produced by this map; removing at the end position is a
// contract violation.
func (m *Map[K, V]) RemoveAt(pos MapPosition[K, V]) (K, V) {
	m.tree = ensureUnique(m.eng(), &pos)
	return m.tree.DeleteAt(pos)
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	if m.tree != nil && m.tree.Shared() {
		m.tree.Release()
	}
	m.tree = rbtree.New[K, V]()
}

// Min returns the entry with the smallest key, or false for an empty map.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.eng().Min()
}

// Max returns the entry with the largest key, or false for an empty map.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.eng().Max()
}

// RemoveFirst removes and returns the entry with the smallest key.
// Calling it on an empty map is a contract violation.
func (m *Map[K, V]) RemoveFirst() (K, V) {
	assert(m.Len() > 0, "sorted: RemoveFirst on an empty map")
	m.tree = ensureUnique(m.eng())
	return m.tree.DeleteAt(m.tree.Begin())
}

// RemoveLast removes and returns the entry with the largest key.
// Calling it on an empty map is a contract violation.
func (m *Map[K, V]) RemoveLast() (K, V) {
	assert(m.Len() > 0, "sorted: RemoveLast on an empty map")
	m.tree = ensureUnique(m.eng())
	return m.tree.DeleteAt(m.tree.End().Prev())
}

// Find returns the position of key, or the end position.
func (m *Map[K, V]) Find(key K) MapPosition[K, V] {
	return m.eng().Find(key)
}

// LowerBound returns the position of the first entry whose key is not
// less than key, or the end position.
func (m *Map[K, V]) LowerBound(key K) MapPosition[K, V] {
	return m.eng().LowerBound(key)
}

// UpperBound returns the position of the first entry whose key is
// strictly greater than key, or the end position.
func (m *Map[K, V]) UpperBound(key K) MapPosition[K, V] {
	return m.eng().UpperBound(key)
}

// End returns the one-past-last position of the map.
func (m *Map[K, V]) End() MapPosition[K, V] {
	return m.eng().End()
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for k, v := range m.tree.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over all entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for k, v := range m.tree.Backward() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent map with the same entries, sharing
// storage in O(1) until one of the two mutates.
func (m *Map[K, V]) Clone() *Map[K, V] {
	t := m.eng()
	t.Retain()
	return &Map[K, V]{tree: t}
}

// Merge adds every entry of other to m. For keys present in both, the
// surviving value is combine(own, theirs); a nil combine keeps m's
// value. Other is left unchanged.
func (m *Map[K, V]) Merge(other *Map[K, V], combine func(V, V) V) {
	if other.IsEmpty() || m == other {
		return
	}
	m.tree = ensureUnique(m.eng())
	a, b := m.tree.Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			a = a.Next()
		case c > 0:
			pos, _ := m.tree.InsertHint(b.Key(), b.Value(), a)
			a = pos.Next()
			b = b.Next()
		default:
			if combine != nil {
				m.tree.UpdateAt(a, combine(a.Value(), b.Value()))
			}
			a, b = a.Next(), b.Next()
		}
	}
	for ; !b.IsEnd(); b = b.Next() {
		m.tree.InsertLargest(b.Key(), b.Value())
	}
}

// EqualFunc reports whether both maps hold the same keys with values
// equal under eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(V, V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	a, b := m.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() {
		if cmp.Compare(a.Key(), b.Key()) != 0 || !eq(a.Value(), b.Value()) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// EqualMaps reports whether both maps hold exactly the same entries.
func EqualMaps[K cmp.Ordered, V comparable](m, other *Map[K, V]) bool {
	return m.EqualFunc(other, func(a, b V) bool { return a == b })
}

// CompareMaps orders two maps lexicographically by their ascending
// (key, value) sequences, returning -1, 0 or +1.
func CompareMaps[K, V cmp.Ordered](m, other *Map[K, V]) int {
	a, b := m.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		if c := cmp.Compare(a.Key(), b.Key()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Value(), b.Value()); c != 0 {
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

// String returns the entries in ascending key order, for debugging.
func (m *Map[K, V]) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			bf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&bf, "%v: %v", k, v)
	}
	bf.WriteByte('}')
	return bf.String()
}
