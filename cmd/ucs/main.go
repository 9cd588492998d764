// Command ucs reads two layouts from standard input and prints the
// uniform-cost solution path between them.
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
	Use:           "ucs",
	Short:         "Find a minimum-cost swap path with uniform-cost search",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUCS,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("ucs: %v", err)
	}
}

func runUCS(cmd *cobra.Command, args []string) error {
	start, goal, err := cli.ReadTwoLayouts(cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := search.Solve(start, goal, search.UCS{})
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			fmt.Fprintln(cmd.OutOrStdout(), "no solution found")
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range res.Path {
		fmt.Fprintln(out, l.Format())
	}
	fmt.Fprintln(out, res.TotalCost)

	return nil
}
