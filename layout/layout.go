package layout

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Layout is an immutable configuration of the integer sequence under
// search: the values themselves, plus the cost of the swap that produced
// this layout from its parent (zero for parsed roots and goal layouts).
//
// Layout is safe to copy by value: the only reference field, values, is
// never mutated after New/Parse/Children construct it, and every accessor
// that would otherwise leak the backing array returns a defensive copy.
type Layout struct {
	values   []int
	stepCost int
}

// New builds a root Layout from an explicit value slice. The slice is
// copied; stepCost is zero, matching a parsed root or a goal layout.
func New(values []int) Layout {
	cp := make([]int, len(values))
	copy(cp, values)

	return Layout{values: cp}
}

// Parse splits text on any run of ASCII whitespace and parses each token as
// a signed integer. An empty or whitespace-only input yields the
// zero-length Layout. A malformed token returns ErrParse, wrapped with the
// offending token and its position.
func Parse(text string) (Layout, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Layout{values: []int{}}, nil
	}

	tokens := strings.Fields(trimmed)
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Layout{}, errors.Wrapf(ErrParse, "token %d (%q)", i, tok)
		}
		values[i] = v
	}

	return Layout{values: values}, nil
}

// Values returns a defensive copy of the layout's values. Mutating the
// returned slice does not affect the Layout.
func (l Layout) Values() []int {
	cp := make([]int, len(l.values))
	copy(cp, l.values)

	return cp
}

// Len returns the number of values in the layout.
func (l Layout) Len() int { return len(l.values) }

// At returns the value at position i. Callers must ensure 0 <= i < Len();
// it is a programmer error to call At out of range, and it panics like any
// out-of-bounds slice index would.
func (l Layout) At(i int) int { return l.values[i] }

// StepCost returns the cost of the swap that produced this layout from its
// parent. Zero for parsed roots and for layouts built with New.
func (l Layout) StepCost() int { return l.stepCost }

// IsGoal reports whether l is element-wise equal to goal's values.
func (l Layout) IsGoal(goal Layout) bool { return l.Equal(goal) }

// Equal reports whether two layouts have identical values. Step cost is
// provenance, not identity, and is never consulted here.
func (l Layout) Equal(other Layout) bool {
	if len(l.values) != len(other.values) {
		return false
	}
	for i, v := range l.values {
		if other.values[i] != v {
			return false
		}
	}

	return true
}

// Key returns a string uniquely determined by l's values, suitable as a map
// key for open/closed sets. It is identical in content to Format, but is
// named separately because callers that use it as an identity key (search's
// open/closed maps) and callers that use it for display (Format) are
// conceptually distinct, even though today they share an implementation.
func (l Layout) Key() string { return l.Format() }

// Format renders the values as single-space-separated integers, with no
// trailing whitespace. Format(Parse(s)) round-trips for any well-formed s.
func (l Layout) Format() string {
	if len(l.values) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range l.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Children enumerates one successor layout per unordered index pair
// (i, j), 0 <= i < j < Len(), produced by swapping positions i and j.
// Pairs are visited outer-ascending, inner-descending: for i from 0 to
// n-2, for j from n-1 down to i+1. This order is a semantic contract (see
// package doc) — it is what makes FIFO tie-break expansion order, and
// hence emitted search paths, reproducible. For Len() < 2 it returns nil.
func (l Layout) Children() []Layout {
	n := len(l.values)
	if n < 2 {
		return nil
	}

	children := make([]Layout, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := n - 1; j > i; j-- {
			child := make([]int, n)
			copy(child, l.values)
			child[i], child[j] = child[j], child[i]

			children = append(children, Layout{
				values:   child,
				stepCost: SwapCost(l.values[i], l.values[j]),
			})
		}
	}

	return children
}

// SwapCost is the parity-based cost table of a single swap: 2 if both
// operands are even, 20 if both are odd, 11 if parities differ. `%2`
// correctly classifies negative operands in Go (the zero check is
// sign-independent), so negative values parity-classify the same as their
// positive counterparts. Exported so the heuristic package can price
// hypothetical swaps with the exact same rule successor generation uses.
func SwapCost(a, b int) int {
	aEven := a%2 == 0
	bEven := b%2 == 0
	switch {
	case aEven && bEven:
		return 2
	case !aEven && !bEven:
		return 20
	default:
		return 11
	}
}
