package heuristic

import "github.com/kanekitakitos/Artificial-Intelligence/layout"

// maxExactCycle is the largest cycle length priced by exhaustive swap-sequence
// search. A k-cycle needs exactly k-1 transpositions to resolve, so the
// search space is the mixed-radix product of "choose 2 of k local slots" at
// each of the k-1 steps; above this length the branching factor makes exact
// search too costly for an admissible-bound computation, and cycles fall
// back to the aggregate greedy pool instead (see pool.go).
const maxExactCycle = 5

// exactCyclePrice returns the minimum total swap cost to turn current's
// values at the positions in cycle into goal's values at those same
// positions, using exactly len(cycle)-1 swaps local to the cycle. It
// branch-and-bounds over every swap sequence, pruning as soon as a partial
// sum can no longer beat the best sequence found so far. Callers must only
// pass cycles of length 2..maxExactCycle.
func exactCyclePrice(cycle []int, current, goal layout.Layout) int {
	k := len(cycle)
	values := make([]int, k)
	target := make([]int, k)
	for i, pos := range cycle {
		values[i] = current.At(pos)
		target[i] = goal.At(pos)
	}

	best := -1
	var search func(values []int, depth, cost int)
	search = func(values []int, depth, cost int) {
		if best != -1 && cost >= best {
			return
		}
		if depth == k-1 {
			if sliceEqual(values, target) {
				best = cost
			}
			return
		}
		for i := 0; i < k-1; i++ {
			for j := i + 1; j < k; j++ {
				next := make([]int, k)
				copy(next, values)
				next[i], next[j] = next[j], next[i]
				search(next, depth+1, cost+layout.SwapCost(values[i], values[j]))
			}
		}
	}
	search(values, 0, 0)

	return best
}

func sliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
