// Command astar reads two layouts from standard input and prints the
// total cost of the minimum-cost swap path between them, found via A*.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kanekitakitos/Artificial-Intelligence/internal/cli"
	"github.com/kanekitakitos/Artificial-Intelligence/search"
)

var rootCmd = &cobra.Command{
	Use:           "astar",
	Short:         "Find the minimum swap cost with A* search",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAStar,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("astar: %v", err)
	}
}

func runAStar(cmd *cobra.Command, args []string) error {
	start, goal, err := cli.ReadTwoLayouts(cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := search.Solve(start, goal, search.AStar{Goal: goal})
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			fmt.Fprintln(cmd.OutOrStdout(), "no solution found")
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.TotalCost)

	return nil
}
