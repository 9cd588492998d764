package search

import "errors"

// ErrNoSolution is returned by Solve when the fringe empties without the
// goal layout ever being popped. It is a normal result, not a fault: a
// caller should treat it the same way as any other "not found" outcome.
var ErrNoSolution = errors.New("search: no solution found")
