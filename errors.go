package sorted

import "errors"

var (
	// ErrUnevenLength signals a flattened map stream whose length is odd.
	ErrUnevenLength = errors.New("sorted: flattened map has uneven length")
	// ErrWrongType signals a flattened element of an unexpected dynamic type.
	ErrWrongType = errors.New("sorted: flattened element has wrong type")
	// ErrOutOfOrder signals flattened input that is not strictly ascending.
	ErrOutOfOrder = errors.New("sorted: flattened elements out of order")
)

// assert panics on contract violations: programmer errors which are
// non-recoverable by design.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
