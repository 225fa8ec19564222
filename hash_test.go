package sorted

import (
	"hash/maphash"
	"testing"
)

func TestHashSetConsistentWithEquality(t *testing.T) {
	seed := maphash.MakeSeed()
	a := SetOf(1, 2, 3)
	b := SetOf(3, 1, 2)
	if HashSet(seed, a) != HashSet(seed, b) {
		t.Error("equal sets must hash identically")
	}
	c := SetOf(1, 2, 4)
	if HashSet(seed, a) == HashSet(seed, c) {
		t.Error("different sets should not collide here")
	}
	if HashSet(seed, NewSet[int]()) == HashSet(seed, a) {
		t.Error("the empty set should not collide with a populated one")
	}
}

func TestHashMapConsistentWithEquality(t *testing.T) {
	seed := maphash.MakeSeed()
	a := MapOf(Entry[string, int]{"x", 1}, Entry[string, int]{"y", 2})
	b := MapOf(Entry[string, int]{"y", 2}, Entry[string, int]{"x", 1})
	if HashMap(seed, a) != HashMap(seed, b) {
		t.Error("equal maps must hash identically")
	}
	c := MapOf(Entry[string, int]{"x", 1}, Entry[string, int]{"y", 3})
	if HashMap(seed, a) == HashMap(seed, c) {
		t.Error("maps differing in a value should not collide here")
	}
}

func TestHashSeedDependence(t *testing.T) {
	s := SetOf(1, 2, 3)
	s1, s2 := maphash.MakeSeed(), maphash.MakeSeed()
	if HashSet(s1, s) == HashSet(s2, s) {
		t.Error("hashes under distinct seeds should differ")
	}
}
