package layout

import "errors"

// ErrParse indicates that an input string could not be parsed into a Layout
// because it contained a token that is not a valid signed integer.
//
// Usage: if errors.Is(err, layout.ErrParse) { /* malformed input line */ }.
// Wrapped with positional context (the offending token and its index) via
// github.com/pkg/errors at the call site; errors.Is still matches through
// the wrap because pkg/errors implements Unwrap.
var ErrParse = errors.New("layout: invalid integer token")
