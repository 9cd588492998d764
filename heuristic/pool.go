package heuristic

import "github.com/kanekitakitos/Artificial-Intelligence/layout"

// poolPrice prices every cycle longer than maxExactCycle together, rather
// than each in isolation. It pools the number of swaps each oversized cycle
// needs (len(cycle)-1, the minimum to resolve a cycle of that length) with
// the parity of every current value those cycles hold, then charges each of
// those swaps at the cheapest class the pool supports (two evens, then an
// even/odd mix, then two odds).
//
// The parity counts are NOT consumed as swaps are charged: a position keeps
// its value's parity across repeated swaps within the same cycle, so the
// same two parities can back more than one of the cycle's swaps. This keeps
// the estimate an admissible lower bound — every real swap in an oversized
// cycle costs at least as much as the cheapest class its parities allow —
// without claiming the real search can swap across unrelated cycles.
func poolPrice(oversized [][]int, current layout.Layout) int {
	totalSwaps := 0
	evens, odds := 0, 0
	for _, cycle := range oversized {
		totalSwaps += len(cycle) - 1
		for _, pos := range cycle {
			if current.At(pos)%2 == 0 {
				evens++
			} else {
				odds++
			}
		}
	}

	var perSwap int
	switch {
	case evens >= 2:
		perSwap = 2
	case evens >= 1 && odds >= 1:
		perSwap = 11
	default:
		perSwap = 20
	}

	return totalSwaps * perSwap
}
