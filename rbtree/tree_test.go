package rbtree

import (
	"slices"
	"testing"
)

func mustCheck[K interface{ ~int | ~string }, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func keysOf[K interface{ ~int | ~string }, V any](tree *Tree[K, V]) []K {
	keys := make([]K, 0, tree.Len())
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestInsertAndIterate(t *testing.T) {
	tree := New[string, int]()
	for i, k := range []string{"c", "b", "d", "a"} {
		if _, inserted := tree.Insert(k, i); !inserted {
			t.Errorf("Insert(%q) reported duplicate", k)
		}
		mustCheck(t, tree)
	}
	want := []string{"a", "b", "c", "d"}
	if got := keysOf(tree); !slices.Equal(got, want) {
		t.Errorf("iteration order = %v, want %v", got, want)
	}
	if tree.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tree.Len())
	}
}

func TestInsertDuplicateKeepsValue(t *testing.T) {
	tree := New[string, int]()
	tree.Insert("x", 1)
	pos, inserted := tree.Insert("x", 2)
	if inserted {
		t.Error("second Insert of same key reported insertion")
	}
	if pos.Value() != 1 {
		t.Errorf("value after duplicate insert = %d, want 1", pos.Value())
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
}

func TestFindAndBounds(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k, "")
	}
	if pos := tree.Find(20); pos.IsEnd() || pos.Key() != 20 {
		t.Error("Find(20) did not locate the element")
	}
	if pos := tree.Find(25); !pos.IsEnd() {
		t.Error("Find(25) should return the end position")
	}
	if pos := tree.LowerBound(20); pos.Key() != 20 {
		t.Errorf("LowerBound(20) = %d, want 20", pos.Key())
	}
	if pos := tree.LowerBound(25); pos.Key() != 30 {
		t.Errorf("LowerBound(25) = %d, want 30", pos.Key())
	}
	if pos := tree.UpperBound(20); pos.Key() != 30 {
		t.Errorf("UpperBound(20) = %d, want 30", pos.Key())
	}
	if pos := tree.LowerBound(41); !pos.IsEnd() {
		t.Error("LowerBound(41) should return the end position")
	}
	if pos := tree.UpperBound(40); !pos.IsEnd() {
		t.Error("UpperBound(40) should return the end position")
	}
}

func TestMinMaxCaches(t *testing.T) {
	tree := New[int, struct{}]()
	if _, _, ok := tree.Min(); ok {
		t.Error("Min on an empty tree should report absence")
	}
	for _, k := range []int{5, 3, 9, 1, 7} {
		tree.Insert(k, struct{}{})
		mustCheck(t, tree)
	}
	if k, _, _ := tree.Min(); k != 1 {
		t.Errorf("Min = %d, want 1", k)
	}
	if k, _, _ := tree.Max(); k != 9 {
		t.Errorf("Max = %d, want 9", k)
	}
	tree.Delete(1)
	tree.Delete(9)
	mustCheck(t, tree)
	if k, _, _ := tree.Min(); k != 3 {
		t.Errorf("Min after deletions = %d, want 3", k)
	}
	if k, _, _ := tree.Max(); k != 7 {
		t.Errorf("Max after deletions = %d, want 7", k)
	}
}

func TestDelete(t *testing.T) {
	tree := New[int, int]()
	keys := []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}
	for _, k := range keys {
		tree.Insert(k, k*10)
	}
	// Removal exercising leaf, one-child and two-children cases.
	for _, k := range []int{10, 20, 30, 50} {
		v, ok := tree.Delete(k)
		if !ok {
			t.Fatalf("Delete(%d) reported absence", k)
		}
		if v != k*10 {
			t.Errorf("Delete(%d) returned value %d, want %d", k, v, k*10)
		}
		mustCheck(t, tree)
	}
	if _, ok := tree.Delete(999); ok {
		t.Error("Delete of an absent key reported success")
	}
	want := []int{25, 35, 40, 45, 60, 70, 80}
	if got := keysOf(tree); !slices.Equal(got, want) {
		t.Errorf("remaining keys = %v, want %v", got, want)
	}
}

func TestDeleteAll(t *testing.T) {
	tree := New[int, struct{}]()
	for i := 0; i < 64; i++ {
		tree.Insert(i, struct{}{})
	}
	for i := 0; i < 64; i++ {
		if _, ok := tree.Delete(i); !ok {
			t.Fatalf("Delete(%d) reported absence", i)
		}
		mustCheck(t, tree)
	}
	if !tree.IsEmpty() {
		t.Error("tree should be empty after deleting every key")
	}
}

func TestInsertLargest(t *testing.T) {
	tree := New[int, struct{}]()
	for i := 0; i < 32; i++ {
		tree.InsertLargest(i, struct{}{})
	}
	mustCheck(t, tree)
	if got := keysOf(tree); len(got) != 32 || got[0] != 0 || got[31] != 31 {
		t.Errorf("ascending append produced %v", got)
	}
}

func TestInsertLargestViolationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("InsertLargest with a non-maximal key should panic")
		}
	}()
	tree := New[int, struct{}]()
	tree.InsertLargest(10, struct{}{})
	tree.InsertLargest(5, struct{}{})
}

func TestInsertHintTransparency(t *testing.T) {
	// Hinted insertion must produce the same container as unhinted
	// insertion, whatever the hint.
	keys := []int{17, 3, 25, 8, 42, 1, 30, 12, 6, 21}
	plain := New[int, int]()
	for _, k := range keys {
		plain.Insert(k, k)
	}
	hints := func(tree *Tree[int, int], k int) []Position[int, int] {
		return []Position[int, int]{
			tree.End(),
			tree.Begin(),
			tree.LowerBound(k),
			tree.UpperBound(k),
			tree.LowerBound(k - 100),
			tree.LowerBound(k + 100),
		}
	}
	for hi := 0; hi < 6; hi++ {
		tree := New[int, int]()
		for _, k := range keys {
			h := hints(tree, k)[hi]
			tree.InsertHint(k, k, h)
			mustCheck(t, tree)
		}
		if !slices.Equal(keysOf(tree), keysOf(plain)) {
			t.Errorf("hint variant %d: keys = %v, want %v", hi, keysOf(tree), keysOf(plain))
		}
	}
}

func TestInsertHintExisting(t *testing.T) {
	tree := New[int, string]()
	tree.Insert(1, "one")
	tree.Insert(2, "two")
	pos, inserted := tree.InsertHint(2, "again", tree.Find(2))
	if inserted || pos.Value() != "two" {
		t.Error("hinted insert of a present key should return the existing entry")
	}
}

func TestFindHint(t *testing.T) {
	tree := New[int, struct{}]()
	for i := 0; i < 20; i += 2 {
		tree.Insert(i, struct{}{})
	}
	// Accurate, neighboring, end and wildly-off hints all find the key.
	for _, hint := range []Position[int, struct{}]{
		tree.Find(8), tree.Find(6), tree.Find(10), tree.End(), tree.Begin(),
	} {
		if pos := tree.FindHint(8, hint); pos.IsEnd() || pos.Key() != 8 {
			t.Errorf("FindHint(8) with hint %v missed the element", hint)
		}
	}
	if pos := tree.FindHint(7, tree.Find(6)); !pos.IsEnd() {
		t.Error("FindHint of an absent key should return the end position")
	}
}

func TestDeleteAt(t *testing.T) {
	tree := New[string, int]()
	tree.Insert("a", 1)
	tree.Insert("b", 2)
	tree.Insert("c", 3)
	k, v := tree.DeleteAt(tree.Find("b"))
	if k != "b" || v != 2 {
		t.Errorf("DeleteAt returned (%q, %d), want (b, 2)", k, v)
	}
	mustCheck(t, tree)
	if got := keysOf(tree); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("remaining keys = %v", got)
	}
}

func TestDeleteAtEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DeleteAt(End()) should panic")
		}
	}()
	tree := New[int, int]()
	tree.Insert(1, 1)
	tree.DeleteAt(tree.End())
}

func TestUpdateAt(t *testing.T) {
	tree := New[string, int]()
	tree.Insert("k", 1)
	pos := tree.Find("k")
	tree.UpdateAt(pos, 99)
	if pos.Value() != 99 {
		t.Errorf("value after UpdateAt = %d, want 99", pos.Value())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	tree := New[int, string]()
	for i := 0; i < 16; i++ {
		tree.Insert(i, "orig")
	}
	clone := tree.Copy()
	mustCheck(t, clone)
	if !slices.Equal(keysOf(clone), keysOf(tree)) {
		t.Fatal("copy does not hold the same keys")
	}
	clone.Delete(0)
	clone.Insert(100, "new")
	clone.UpdateAt(clone.Find(5), "changed")
	mustCheck(t, tree)
	mustCheck(t, clone)
	if tree.Len() != 16 {
		t.Errorf("original length changed to %d", tree.Len())
	}
	if pos := tree.Find(5); pos.Value() != "orig" {
		t.Errorf("original value changed to %q", pos.Value())
	}
}

func TestRebind(t *testing.T) {
	tree := New[int, string]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, "v")
	}
	pos := tree.Find(7)
	clone := tree.Copy()
	rebound := clone.Rebind(pos)
	if rebound.IsEnd() || rebound.Key() != 7 {
		t.Fatal("rebound position does not name the same key")
	}
	if !clone.Owns(rebound) || clone.Owns(pos) {
		t.Error("rebound position not bound to the copy")
	}
	end := clone.Rebind(tree.End())
	if !end.IsEnd() {
		t.Error("rebinding the end position should yield the copy's end")
	}
}

func TestOwnershipCounting(t *testing.T) {
	tree := New[int, int]()
	if tree.Shared() {
		t.Error("fresh tree must not be shared")
	}
	tree.Retain()
	if !tree.Shared() {
		t.Error("retained tree must be shared")
	}
	tree.Release()
	if tree.Shared() {
		t.Error("released tree must not be shared")
	}
}

func TestBackward(t *testing.T) {
	tree := New[int, struct{}]()
	for _, k := range []int{2, 4, 1, 3} {
		tree.Insert(k, struct{}{})
	}
	got := make([]int, 0, 4)
	for k := range tree.Backward() {
		got = append(got, k)
	}
	if !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("Backward() = %v", got)
	}
}

func TestIterationEarlyStop(t *testing.T) {
	tree := New[int, struct{}]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, struct{}{})
	}
	n := 0
	for range tree.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d elements after early break", n)
	}
}
