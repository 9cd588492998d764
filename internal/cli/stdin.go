// Package cli holds the small amount of plumbing shared by the cmd/ucs and
// cmd/astar front-ends: reading exactly two layout lines from standard
// input.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kanekitakitos/Artificial-Intelligence/layout"
)

// ReadTwoLayouts reads exactly two lines from r and parses each as a Layout.
func ReadTwoLayouts(r io.Reader) (start, goal layout.Layout, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("reading first line: %w", scanErr(scanner))
	}
	start, err = layout.Parse(scanner.Text())
	if err != nil {
		return layout.Layout{}, layout.Layout{}, err
	}

	if !scanner.Scan() {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("reading second line: %w", scanErr(scanner))
	}
	goal, err = layout.Parse(scanner.Text())
	if err != nil {
		return layout.Layout{}, layout.Layout{}, err
	}

	return start, goal, nil
}

func scanErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
