package sorted

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// The set operations below are merge-based: both operands are walked
// front to back in a single synchronized pass, so each operation costs
// O(m+n) position steps instead of m probes of log n each. Elements
// known to arrive in ascending order are appended with InsertLargest.

// Union adds every element of other to s. Other is left unchanged.
func (s *Set[K]) Union(other *Set[K]) {
	if other.IsEmpty() || s == other {
		return
	}
	s.tree = ensureUnique(s.eng())
	a, b := s.tree.Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			a = a.Next()
		case c > 0:
			// a stays valid as a hint: b's key precedes it.
			pos, _ := s.tree.InsertHint(b.Key(), struct{}{}, a)
			a = pos.Next()
			b = b.Next()
		default:
			a, b = a.Next(), b.Next()
		}
	}
	for ; !b.IsEnd(); b = b.Next() {
		s.tree.InsertLargest(b.Key(), struct{}{})
	}
}

// Intersection returns a new set holding the elements present in both s
// and other. Neither operand is modified.
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	out := NewSet[K]()
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			a = a.Next()
		case c > 0:
			b = b.Next()
		default:
			out.tree.InsertLargest(a.Key(), struct{}{})
			a, b = a.Next(), b.Next()
		}
	}
	return out
}

// SymmetricDifference returns a new set holding the elements present in
// exactly one of s and other. Neither operand is modified.
func (s *Set[K]) SymmetricDifference(other *Set[K]) *Set[K] {
	out := NewSet[K]()
	if s == other {
		return out
	}
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			out.tree.InsertLargest(a.Key(), struct{}{})
			a = a.Next()
		case c > 0:
			out.tree.InsertLargest(b.Key(), struct{}{})
			b = b.Next()
		default:
			a, b = a.Next(), b.Next()
		}
	}
	for ; !a.IsEnd(); a = a.Next() {
		out.tree.InsertLargest(a.Key(), struct{}{})
	}
	for ; !b.IsEnd(); b = b.Next() {
		out.tree.InsertLargest(b.Key(), struct{}{})
	}
	return out
}

// Subtract removes every element of other from s. Other is left
// unchanged; subtracting a set from itself clears it.
func (s *Set[K]) Subtract(other *Set[K]) {
	if s == other {
		s.Clear()
		return
	}
	if s.IsEmpty() || other.IsEmpty() {
		return
	}
	s.tree = ensureUnique(s.eng())
	a, b := s.tree.Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			a = a.Next()
		case c > 0:
			b = b.Next()
		default:
			next := a.Next()
			s.tree.DeleteAt(a)
			a = next
			b = b.Next()
		}
	}
}

// IsDisjoint reports whether s and other have no element in common.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	if s == other {
		return s.IsEmpty()
	}
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() && !b.IsEnd() {
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			a = a.Next()
		case c > 0:
			b = b.Next()
		default:
			return false
		}
	}
	return true
}

// IsSubset reports whether every element of s is an element of other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	a, b := s.eng().Begin(), other.eng().Begin()
	for !a.IsEnd() {
		if b.IsEnd() {
			return false
		}
		switch c := cmp.Compare(a.Key(), b.Key()); {
		case c < 0:
			return false
		case c > 0:
			b = b.Next()
		default:
			a, b = a.Next(), b.Next()
		}
	}
	return true
}

// IsSuperset reports whether every element of other is an element of s.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.IsSubset(s)
}
