package heuristic

import "github.com/kanekitakitos/Artificial-Intelligence/layout"

// H estimates the remaining swap cost from current to goal. It is
// admissible (never overestimates the true minimum cost) and is exact for
// any cycle of length at most two, which makes it tight on inputs that
// decompose into only fixed points and 2-cycles.
//
// H returns ErrMultisetMismatch if current and goal are not permutations of
// the same values, since no sequence of swaps could equate them.
func H(current, goal layout.Layout) (int, error) {
	perm, err := permutation(current, goal)
	if err != nil {
		return 0, err
	}

	total := 0
	var oversized [][]int
	for _, cycle := range cycles(perm) {
		switch {
		case len(cycle) <= 1:
			// fixed point, no cost
		case len(cycle) <= maxExactCycle:
			total += exactCyclePrice(cycle, current, goal)
		default:
			oversized = append(oversized, cycle)
		}
	}
	total += poolPrice(oversized, current)

	return total, nil
}
