// Package window defines options, result types, and sentinel errors for
// the moving-window transform.
package window

import (
	"errors"
	"math"
)

// Sentinel errors for window operations.
var (
	// ErrBadWindow indicates a non-positive window size.
	ErrBadWindow = errors.New("window: size K must be a positive integer")
	// ErrBadAnchor indicates an anchor outside {Start, Middle, End}.
	ErrBadAnchor = errors.New("window: unknown anchor")
)

// Anchor selects where a window's result is attributed relative to the
// data index.
type Anchor int

const (
	// Middle centers the window on the output index. Even window sizes
	// split unevenly, with the extra element on the trailing side.
	Middle Anchor = iota
	// Start places the window's first element at the output index.
	Start
	// End places the window's last element at the output index.
	End
)

// String returns the option-literal name of the anchor.
func (a Anchor) String() string {
	switch a {
	case Start:
		return "start"
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return "invalid"
	}
}

// Reducer collapses the non-missing values of one window into a single
// result. It is only called for windows the policy deems computable; the
// slice it receives is reused between calls and must not be retained.
type Reducer func(values []float64) float64

// Options configures a moving-window transform.
//
// Fields:
//   - K      — window size, number of consecutive input positions. K ≥ 1.
//   - Anchor — result attribution: Start, Middle, or End.
//   - Strict — if true (default), only fully covered windows produce a
//     value, and a missing value anywhere in a window poisons its result
//     to NaN. If false, windows are clipped to the data and averaged over
//     the present values only.
//   - Reduce — optional reducer replacing the arithmetic mean. Forfeits
//     the O(n) incremental path.
//
// Example:
//
//	opts := window.DefaultOptions(3)
//	opts.Anchor = window.Start
//	out, err := window.Transform(xs, opts)
type Options struct {
	K      int
	Anchor Anchor
	Strict bool
	Reduce Reducer
}

// DefaultOptions returns Options with window size k, Middle anchoring, and
// the strict full-window policy.
func DefaultOptions(k int) Options {
	return Options{K: k, Anchor: Middle, Strict: true}
}

// Series is a derived channel: one slot per input index, where a slot is
// either present (possibly holding NaN) or a hole. Consumers must treat a
// present NaN as "computed but undefined" and a hole as "no value here".
type Series struct {
	Values  []float64
	Present []bool
}

// Len returns the number of slots.
func (s Series) Len() int { return len(s.Values) }

// At returns the value at index i and whether the slot is present.
func (s Series) At(i int) (float64, bool) {
	if !s.Present[i] {
		return math.NaN(), false
	}

	return s.Values[i], true
}

// Holes returns the number of absent slots.
func (s Series) Holes() int {
	n := 0
	for _, p := range s.Present {
		if !p {
			n++
		}
	}

	return n
}

// Missing converts a row of optional values into the NaN-for-missing form
// Transform expects: nil entries become NaN.
func Missing(xs []*float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *x
		}
	}

	return out
}
