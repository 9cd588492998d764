package heuristic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

func mustParse(t *testing.T, s string) layout.Layout {
	t.Helper()
	l, err := layout.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return l
}

func TestH_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name, current, goal string
		want                int
	}{
		{"H1", "2 1 3", "1 2 3", 11},
		{"H2", "4 1 3 2", "1 2 3 4", 13},
		{"H3", "1 4 3 2", "1 2 3 4", 2},
		{"H4", "5 2 3 4 1", "1 2 3 4 5", 20},
		{"H5", "12 13 14 15 11", "11 12 13 14 15", 35},
		{"H6", "3 5 7 9 11 1", "1 3 5 7 9 11", 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			current := mustParse(t, c.current)
			goal := mustParse(t, c.goal)
			got, err := H(current, goal)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestH_ZeroAtGoal(t *testing.T) {
	for _, s := range []string{"1 2 3", "9 7 8 6 5", "", "4"} {
		l := mustParse(t, s)
		got, err := H(l, l)
		if err != nil {
			t.Fatalf("H: %v", err)
		}
		if got != 0 {
			t.Errorf("H(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestH_MultisetMismatch(t *testing.T) {
	current := mustParse(t, "1 2 3")
	goal := mustParse(t, "1 2 2")
	if _, err := H(current, goal); !errors.Is(err, ErrMultisetMismatch) {
		t.Fatalf("expected ErrMultisetMismatch, got %v", err)
	}

	short := mustParse(t, "1 2")
	if _, err := H(current, short); !errors.Is(err, ErrMultisetMismatch) {
		t.Fatalf("expected ErrMultisetMismatch for length mismatch, got %v", err)
	}
}

// admissibilityOracle computes the exact minimum swap cost from start to
// goal with a textbook Dijkstra over the full state space (tracking layouts,
// not just keys, so it can expand Children() directly), used as an
// admissibility oracle independent of H's own cycle-decomposition machinery.
// It is only ever called with small layouts (len <= 5) in these tests, so a
// linear scan for the minimum-distance frontier node is fine.
func admissibilityOracle(start, goal layout.Layout) int {
	const inf = 1 << 30
	dist := map[string]int{start.Key(): 0}
	layouts := map[string]layout.Layout{start.Key(): start}
	visited := map[string]bool{}

	for {
		curKey, curDist := "", inf
		for k, d := range dist {
			if visited[k] {
				continue
			}
			if d < curDist {
				curDist = d
				curKey = k
			}
		}
		if curKey == "" {
			return inf
		}
		if curKey == goal.Key() {
			return curDist
		}
		visited[curKey] = true
		cur := layouts[curKey]
		for _, child := range cur.Children() {
			ck := child.Key()
			if visited[ck] {
				continue
			}
			nd := curDist + child.StepCost()
			if old, ok := dist[ck]; !ok || nd < old {
				dist[ck] = nd
				layouts[ck] = child
			}
		}
	}
}

func TestH_Admissible_RandomSmallPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for iter := 0; iter < 12; iter++ {
		n := 3 + rng.Intn(3) // 3..5
		values := make([]int, n)
		for i := range values {
			values[i] = i + 1
		}
		rng.Shuffle(n, func(i, j int) { values[i], values[j] = values[j], values[i] })

		goalValues := make([]int, n)
		for i := range goalValues {
			goalValues[i] = i + 1
		}

		current := layout.New(values)
		goal := layout.New(goalValues)

		h, err := H(current, goal)
		if err != nil {
			t.Fatalf("H: %v", err)
		}
		optimal := admissibilityOracle(current, goal)
		if h > optimal {
			t.Errorf("inadmissible: H(%v, %v) = %d > true cost %d", values, goalValues, h, optimal)
		}
	}
}
