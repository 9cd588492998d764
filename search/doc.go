// Package search implements a generic best-first graph search over
// layout.Layout states, plus the two concrete strategies that ride it:
// uniform-cost search (UCS) and A*.
//
// The skeleton (Solve) is strategy-agnostic: it owns the open map, the
// closed set, the fringe, and the per-solve sequence counter, and drives
// expansion by init/pop/goal-test/close/expand/relax. A Strategy supplies
// only the ordering key (g for UCS, g+h for A*) and the Fringe
// implementation backing that ordering.
//
// Search nodes live in an arena (a growable slice) and reference their
// parent by index rather than by pointer, so path reconstruction is a
// matter of following indices back to the root. Nodes are immutable once
// inserted; a node becomes obsolete when a strictly cheaper node for the
// same layout is later inserted, and obsolescence is detected lazily at pop
// time by comparing against the open map rather than by mutating or
// removing the stale fringe entry.
//
// Every Solve call is single-threaded, synchronous, and owns its own
// arena, fringe, open map, closed map, and sequence counter — nothing is
// shared across concurrent Solve calls, even for the same Strategy value.
package search
