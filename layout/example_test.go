// Package layout_test provides runnable examples of the Layout API.
package layout_test

import (
	"fmt"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// ExampleParse shows the parse/format round trip and the goal test.
func ExampleParse() {
	start, _ := layout.Parse("9 7 8")
	goal, _ := layout.Parse("7 8 9")

	fmt.Println(start.Format())
	fmt.Println(start.IsGoal(goal))
	// Output:
	// 9 7 8
	// false
}

// ExampleLayout_Children shows successor enumeration and its parity-based cost.
func ExampleLayout_Children() {
	l, _ := layout.Parse("2 3")
	for _, child := range l.Children() {
		fmt.Printf("%s cost=%d\n", child.Format(), child.StepCost())
	}
	// Output:
	// 3 2 cost=11
}
