// Package heuristic computes an admissible, tight lower bound on the
// remaining swap cost between two layouts, for use as the h term of an A*
// search (see the search package).
//
// H(current, goal) decomposes the permutation that maps current's values
// onto goal's positions into disjoint cycles, then prices each cycle:
//
//   - a fixed point (length-1 cycle) costs nothing: the value is already home.
//   - a 2-cycle costs exactly the parity cost of its two values — this is
//     always achievable with a single swap, so it is tight, not just a bound.
//   - a 3-, 4-, or 5-cycle is priced by exhaustively enumerating every
//     sequence of (k-1) swaps drawn from the cycle's own positions and
//     keeping the cheapest sequence that reaches the cycle's goal
//     projection. This is the true optimum for that cycle in isolation.
//   - a cycle longer than 5 is deferred: its swap count (k-1) and the
//     parities of its current values are pooled with every other
//     oversized cycle, and every pooled swap is charged at one fixed rate:
//     the cheapest swap class the pooled parities allow. The parity
//     counts are not consumed as swaps are charged. See the comment on
//     poolPrice in pool.go for the rationale.
//
// H is zero when current and goal carry the same values (every position
// is a fixed point) and never exceeds the true minimum cost to transform
// current into goal, which is what makes it safe to drive A*.
//
// current and goal must be permutations of the same multiset of values;
// violating that precondition returns ErrMultisetMismatch.
package heuristic
