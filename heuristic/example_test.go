// Package heuristic_test provides runnable examples of H.
package heuristic_test

import (
	"fmt"

	"github.com/kanekitakitos/Artificial-Intelligence/heuristic"
	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// ExampleH shows the admissible lower bound for a single 2-cycle, where the
// bound is tight: one swap always resolves it.
func ExampleH() {
	current, _ := layout.Parse("2 1 3")
	goal, _ := layout.Parse("1 2 3")

	h, _ := heuristic.H(current, goal)
	fmt.Println(h)
	// Output:
	// 11
}
