// Package artificialintelligence is a state-space search engine that finds
// a minimum-cost sequence of element swaps transforming an initial integer
// sequence into a goal integer sequence.
//
// Each swap's cost depends only on the parity of the two swapped values:
// both even costs 2, both odd costs 20, mixed parity costs 11.
//
// Under the hood, everything is organized under four subpackages:
//
//	layout/    — immutable problem state: a sequence plus its producing swap cost
//	heuristic/ — admissible A* lower bound via permutation-cycle decomposition
//	search/    — the generic best-first skeleton, plus UCS and A* atop it
//	cmd/       — line-oriented stdin/stdout front-ends for both strategies
//
//	go get github.com/kanekitakitos/Artificial-Intelligence
package artificialintelligence
