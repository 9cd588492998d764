package search

import (
	"github.com/kanekitakitos/Artificial-Intelligence/heuristic"
	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// UCS orders the fringe by accumulated cost g alone, with FIFO tie-break.
// It is optimal whenever step costs are non-negative, which the parity
// cost table always satisfies.
type UCS struct{}

func (UCS) fringe() fringe { return newBucketFringe() }

func (UCS) key(_ layout.Layout, g int) (int, error) { return g, nil }

// AStar orders the fringe by g plus an admissible heuristic estimate of the
// remaining cost to Goal, with FIFO tie-break among equal g+h. It is
// optimal as long as the heuristic package's H stays admissible.
type AStar struct {
	Goal layout.Layout
}

func (AStar) fringe() fringe { return newHeapFringe() }

func (a AStar) key(current layout.Layout, g int) (int, error) {
	h, err := heuristic.H(current, a.Goal)
	if err != nil {
		return 0, err
	}
	return g + h, nil
}
