/*
Package rbtree provides the red-black tree engine behind the sorted
containers.

The package is intentionally not a general-purpose container API. It is
specialized as a storage engine for the Set and Map facades of package
sorted: keys carry a total order (cmp.Ordered), values are opaque, and
the facades layer copy-on-write sharing and set algebra on top.

What the engine provides:
  - topology primitives: rotations, transplant, successor/predecessor,
    insertion and deletion rebalancing,
  - a Tree owning its node graph, with cached minimum/maximum and a live
    element count,
  - logarithmic Find/Insert/Delete, plus hint-accelerated variants that
    run in amortized constant time on locally accurate hints,
  - constant-time append of a new maximum (InsertLargest) for bulk loads
    from sorted input,
  - opaque Position handles bound to the identity of their tree,
  - deep Copy with exact topology, and Rebind to re-target positions
    across a copy by path replay,
  - ascending and descending iter.Seq iteration,
  - a strict structural invariant checker (Check) for tests.

Error handling follows a two-tier taxonomy. Contract violations —
dereferencing the end position, using a position against a foreign tree,
violating the InsertLargest precondition — panic. Recoverable absence is
reported through (value, ok) returns, never through panics or errors.

The engine is single-threaded: no locking, no goroutines, no blocking.
Sharing across facade values is cooperative through Retain/Release and
an explicit shared-owner check, not through synchronization.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree
