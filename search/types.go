package search

import (
	"github.com/google/uuid"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// node is an arena record: a layout plus its accumulated path cost, parent
// link (by arena index, -1 for the root), and insertion sequence number.
// Once appended to an arena it is never mutated.
type node struct {
	layout layout.Layout
	parent int
	g      int
	seq    int
}

// Result is what Solve returns on success: the reconstructed path from
// start to goal inclusive, its total cost, and a per-run identifier useful
// for correlating logs or repeated runs of the same problem.
type Result struct {
	RunID     uuid.UUID
	Path      []layout.Layout
	TotalCost int
}

// Fringe is the priority structure of open nodes, keyed by a
// strategy-supplied integer ordering key with insertion order as the
// tie-break. Nothing is ever physically removed from a Fringe except by
// Pop; obsolete entries are filtered by the caller consulting the open map.
type fringe interface {
	// push places the node at arena index idx under the given key, with
	// seq used as the FIFO tie-break among equal keys.
	push(key, seq, idx int)
	// pop removes and returns the arena index with the minimum key,
	// breaking ties by the smallest seq. ok is false iff the fringe is empty.
	pop() (idx int, ok bool)
	empty() bool
}

// Strategy supplies the ordering a Solve call expands nodes in. Only the
// key extraction and the Fringe implementation differ between UCS and A*;
// everything else lives in the shared skeleton.
type Strategy interface {
	// fringe constructs a fresh, empty Fringe for one Solve call.
	fringe() fringe
	// key computes the strategy-specific ordering key for a candidate
	// layout reached with accumulated cost g.
	key(current layout.Layout, g int) (int, error)
}
