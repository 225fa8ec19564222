package rbtree

import "errors"

// ErrInvariant signals that Check found a corrupted tree structure.
// Public operations never return it; a failing Check indicates a bug in
// this package, not an input error.
var ErrInvariant = errors.New("rbtree: invariant violation")

// assert panics on contract violations: programmer errors which are
// non-recoverable by design and must abort rather than silently
// misbehave.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
