package sorted

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"hash/maphash"
)

// HashSet returns a hash of the set's contents under the given seed.
// Sets that are Equal hash identically for the same seed.
func HashSet[K cmp.Ordered](seed maphash.Seed, s *Set[K]) uint64 {
	h := maphash.Comparable(seed, s.Len())
	for k := range s.All() {
		h = mix(h, maphash.Comparable(seed, k))
	}
	return h
}

// HashMap returns a hash of the map's contents under the given seed.
// Maps equal under EqualMaps hash identically for the same seed.
func HashMap[K cmp.Ordered, V comparable](seed maphash.Seed, m *Map[K, V]) uint64 {
	h := maphash.Comparable(seed, m.Len())
	for k, v := range m.All() {
		h = mix(h, maphash.Comparable(seed, k))
		h = mix(h, maphash.Comparable(seed, v))
	}
	return h
}

// mix folds the next element hash into the running hash. The constant is
// the FNV-64 prime; order sensitivity is intentional, matching the
// lexicographic notion of container equality.
func mix(acc, next uint64) uint64 {
	return (acc ^ next) * 1099511628211
}
