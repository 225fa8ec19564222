package sorted

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Flatten serializes the set to a slice of its elements in ascending
// order. The result is a snapshot suitable for persistence or transport;
// UnflattenSet restores it.
func (s *Set[K]) Flatten() []K {
	out := make([]K, 0, s.Len())
	for k := range s.All() {
		out = append(out, k)
	}
	return out
}

// UnflattenSet rebuilds a set from a slice produced by Flatten. The
// elements must be strictly ascending; data from an untrusted source
// that violates this yields ErrOutOfOrder rather than a panic.
func UnflattenSet[K cmp.Ordered](flat []K) (*Set[K], error) {
	s := NewSet[K]()
	for i, k := range flat {
		if i > 0 && cmp.Compare(flat[i-1], k) >= 0 {
			return nil, fmt.Errorf("%w: element %d of flattened set", ErrOutOfOrder, i)
		}
		s.tree.InsertLargest(k, struct{}{})
	}
	return s, nil
}

// Flatten serializes the map to a slice alternating key, value, key,
// value, … in ascending key order. UnflattenMap restores it.
func (m *Map[K, V]) Flatten() []any {
	out := make([]any, 0, 2*m.Len())
	for k, v := range m.All() {
		out = append(out, k, v)
	}
	return out
}

// UnflattenMap rebuilds a map from a slice produced by Flatten. The
// slice must alternate keys and values with strictly ascending keys.
// Malformed input yields a structured error wrapping ErrUnevenLength,
// ErrWrongType or ErrOutOfOrder.
func UnflattenMap[K cmp.Ordered, V any](flat []any) (*Map[K, V], error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: %d items", ErrUnevenLength, len(flat))
	}
	m := NewMap[K, V]()
	var prev K
	for i := 0; i < len(flat); i += 2 {
		k, ok := flat[i].(K)
		if !ok {
			return nil, fmt.Errorf("%w: key at index %d is %T", ErrWrongType, i, flat[i])
		}
		v, ok := flat[i+1].(V)
		if !ok {
			return nil, fmt.Errorf("%w: value at index %d is %T", ErrWrongType, i+1, flat[i+1])
		}
		if i > 0 && cmp.Compare(prev, k) >= 0 {
			return nil, fmt.Errorf("%w: key at index %d", ErrOutOfOrder, i)
		}
		m.tree.InsertLargest(k, v)
		prev = k
	}
	return m, nil
}
