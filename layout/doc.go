// Package layout implements the problem state for the swap-sequence search
// engine: an immutable integer sequence plus the cost of the swap that
// produced it from its parent.
//
// A Layout never mutates after construction. Two layouts are equal, and
// hash identically, based solely on their values — the step cost that
// produced a layout is provenance, not identity, and never participates in
// equality, hashing, or the map key returned by Key.
//
// Successor generation (Children) enumerates every unordered index pair
// (i, j) with i < j in a fixed order: i ascending, j descending. That
// order is a semantic contract — it drives the FIFO tie-break order of
// the search strategies built on top of this package (see the search
// package) and is what makes their emitted paths reproducible.
//
// Swap cost depends only on the parity of the two swapped values:
//
//	both even      -> 2
//	both odd       -> 20
//	one of each    -> 11
//
// Zero, and negative values, are handled the same as any other integer:
// parity is computed with `%2`, which works correctly for negative values
// in Go because the sign of the result follows the dividend.
package layout
