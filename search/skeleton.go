package search

import (
	"github.com/google/uuid"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// Solve drives strategy's ordering over the state space rooted at start,
// searching for goal. It returns ErrNoSolution if goal is unreachable, or
// any error a strategy's key function surfaces (in practice only
// heuristic.ErrMultisetMismatch, from AStar, when start and goal are not
// permutations of the same values).
//
// Solve owns its arena, open map, closed set, fringe, and sequence counter
// for the full duration of the call; nothing it allocates outlives the
// call except through the returned Result.
func Solve(start, goal layout.Layout, strategy Strategy) (*Result, error) {
	var arena []node
	open := make(map[string]int)
	closed := make(map[string]bool)
	fr := strategy.fringe()
	seq := 0

	rootKey, err := strategy.key(start, 0)
	if err != nil {
		return nil, err
	}
	arena = append(arena, node{layout: start, parent: -1, g: 0, seq: seq})
	rootIdx := 0
	open[start.Key()] = rootIdx
	fr.push(rootKey, seq, rootIdx)
	seq++

	for !fr.empty() {
		idx, ok := fr.pop()
		if !ok {
			break
		}
		n := arena[idx]
		lk := n.layout.Key()

		// Lazy obsolescence: a cheaper node for lk may have replaced this
		// one in open since it was pushed; discard stale pops silently.
		if openIdx, present := open[lk]; !present || openIdx != idx {
			continue
		}
		delete(open, lk)

		if n.layout.IsGoal(goal) {
			return buildResult(arena, idx), nil
		}
		closed[lk] = true

		for _, child := range n.layout.Children() {
			ck := child.Key()
			if closed[ck] {
				continue
			}
			g2 := n.g + child.StepCost()
			if existingIdx, present := open[ck]; present && arena[existingIdx].g <= g2 {
				continue
			}

			key, err := strategy.key(child, g2)
			if err != nil {
				return nil, err
			}
			arena = append(arena, node{layout: child, parent: idx, g: g2, seq: seq})
			newIdx := len(arena) - 1
			open[ck] = newIdx
			fr.push(key, seq, newIdx)
			seq++
		}
	}

	return nil, ErrNoSolution
}

// buildResult walks parent indices from idx back to the root, producing the
// path start-to-goal inclusive.
func buildResult(arena []node, idx int) *Result {
	var path []layout.Layout
	for i := idx; i != -1; i = arena[i].parent {
		path = append(path, arena[i].layout)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return &Result{
		RunID:     uuid.New(),
		Path:      path,
		TotalCost: arena[idx].g,
	}
}
