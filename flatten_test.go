package sorted

import (
	"errors"
	"slices"
	"testing"
)

func TestSetFlattenRoundTrip(t *testing.T) {
	s := SetOf(3, 1, 4, 1, 5, 9, 2, 6)
	flat := s.Flatten()
	if !slices.Equal(flat, []int{1, 2, 3, 4, 5, 6, 9}) {
		t.Errorf("Flatten = %v", flat)
	}
	restored, err := UnflattenSet(flat)
	if err != nil {
		t.Fatalf("UnflattenSet failed: %v", err)
	}
	if !s.Equal(restored) {
		t.Errorf("round trip lost elements: %v", elementsOf(restored))
	}
}

func TestUnflattenSetRejectsDisorder(t *testing.T) {
	for _, flat := range [][]int{
		{1, 3, 2},
		{1, 1, 2},
	} {
		if _, err := UnflattenSet(flat); !errors.Is(err, ErrOutOfOrder) {
			t.Errorf("UnflattenSet(%v) err = %v, want ErrOutOfOrder", flat, err)
		}
	}
	if s, err := UnflattenSet([]int{}); err != nil || !s.IsEmpty() {
		t.Error("unflattening the empty slice should yield the empty set")
	}
}

func TestMapFlattenRoundTrip(t *testing.T) {
	m := MapOf(
		Entry[string, int]{"b", 2},
		Entry[string, int]{"a", 1},
		Entry[string, int]{"c", 3},
	)
	flat := m.Flatten()
	want := []any{"a", 1, "b", 2, "c", 3}
	if !slices.Equal(flat, want) {
		t.Errorf("Flatten = %v, want %v", flat, want)
	}
	restored, err := UnflattenMap[string, int](flat)
	if err != nil {
		t.Fatalf("UnflattenMap failed: %v", err)
	}
	if !EqualMaps(m, restored) {
		t.Errorf("round trip lost entries: %v", restored)
	}
}

func TestUnflattenMapErrors(t *testing.T) {
	cases := []struct {
		name string
		flat []any
		want error
	}{
		{"uneven", []any{"a", 1, "b"}, ErrUnevenLength},
		{"key type", []any{"a", 1, 2, 2}, ErrWrongType},
		{"value type", []any{"a", 1, "b", "two"}, ErrWrongType},
		{"unsorted", []any{"b", 2, "a", 1}, ErrOutOfOrder},
		{"duplicate", []any{"a", 1, "a", 2}, ErrOutOfOrder},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := UnflattenMap[string, int](c.flat)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
	if m, err := UnflattenMap[string, int](nil); err != nil || !m.IsEmpty() {
		t.Error("unflattening nil should yield the empty map")
	}
}
