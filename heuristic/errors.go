package heuristic

import "errors"

// ErrMultisetMismatch indicates that current and goal do not contain the
// same multiset of values (different lengths, or a value count mismatch),
// so no sequence of swaps can turn one into the other.
//
// Usage: if errors.Is(err, heuristic.ErrMultisetMismatch) { /* not solvable */ }.
// Wrapped with a descriptive detail via github.com/pkg/errors at the call
// site; errors.Is still matches through the wrap.
var ErrMultisetMismatch = errors.New("heuristic: current and goal are not permutations of the same values")
