package heuristic

import (
	"github.com/pkg/errors"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// permutation maps each position in current to the position it must move to
// in goal, built by matching values with a per-value FIFO queue so that
// duplicate values are paired in the order they appear (scanning current left
// to right, each copy of a value takes the earliest goal slot holding that
// same value that no earlier copy has taken).
func permutation(current, goal layout.Layout) ([]int, error) {
	if current.Len() != goal.Len() {
		return nil, errors.Wrapf(ErrMultisetMismatch, "length %d vs %d", current.Len(), goal.Len())
	}

	n := goal.Len()
	queues := make(map[int][]int, n)
	for pos := 0; pos < n; pos++ {
		v := goal.At(pos)
		queues[v] = append(queues[v], pos)
	}

	perm := make([]int, n)
	for pos := 0; pos < n; pos++ {
		v := current.At(pos)
		q := queues[v]
		if len(q) == 0 {
			return nil, errors.Wrapf(ErrMultisetMismatch, "value %d at position %d has no remaining match in goal", v, pos)
		}
		perm[pos] = q[0]
		queues[v] = q[1:]
	}
	for v, q := range queues {
		if len(q) != 0 {
			return nil, errors.Wrapf(ErrMultisetMismatch, "goal has leftover value %d with no match in current", v)
		}
	}

	return perm, nil
}

// cycles decomposes perm into its disjoint cycles, each expressed as the
// list of current positions visited, starting from the cycle's smallest
// position and following perm until it closes. Positions are considered as
// starting points in ascending order, so the result is deterministic.
func cycles(perm []int) [][]int {
	visited := make([]bool, len(perm))
	var result [][]int
	for start := 0; start < len(perm); start++ {
		if visited[start] {
			continue
		}
		var cycle []int
		for pos := start; !visited[pos]; pos = perm[pos] {
			visited[pos] = true
			cycle = append(cycle, pos)
		}
		result = append(result, cycle)
	}

	return result
}
