package window

import "math"

// Transform — moving-window reduction
//
// Description:
//
//	Computes, for each output position i, the arithmetic mean (or the
//	caller-supplied reducer) of a contiguous window of K consecutive
//	input values, anchored per Options.Anchor.
//
// Algorithm Outline (default mean):
//  1. Derive the window's reach before the output index from the anchor:
//     Start → 0, Middle → ⌊(K-1)/2⌋, End → K-1.
//  2. Maintain a running sum and counts of present and missing values for
//     the current window, updated by one add and one remove per step as
//     the window slides — never recomputed from scratch.
//  3. Strict policy: emit sum/K for fully covered windows with no missing
//     values, a present NaN for covered windows that contain one, and a
//     hole where the window would extend past either boundary.
//     Non-strict: clip the window to the data and emit the mean of the
//     present values (NaN when none are present); every slot is present.
//
// A value is missing if it is NaN; callers coerce null to NaN (see
// Missing). K=1 returns the input unchanged with missing propagated as
// NaN.
//
// Complexity:
//
//	Time   = O(n) for the mean, O(n·K) with a custom Reducer
//	Memory = O(n) output (+ O(K) scratch for a custom Reducer)
//
// Errors:
//   - ErrBadWindow — K < 1.
//   - ErrBadAnchor — anchor outside {Start, Middle, End}.
func Transform(xs []float64, opts Options) (Series, error) {
	k := opts.K
	if k < 1 {
		return Series{}, ErrBadWindow
	}

	var before int
	switch opts.Anchor {
	case Start:
		before = 0
	case Middle:
		before = (k - 1) / 2
	case End:
		before = k - 1
	default:
		return Series{}, ErrBadAnchor
	}

	n := len(xs)
	out := Series{Values: make([]float64, n), Present: make([]bool, n)}
	if n == 0 {
		return out, nil
	}

	if k == 1 && opts.Reduce == nil {
		copy(out.Values, xs)
		for i := range out.Present {
			out.Present[i] = true
		}

		return out, nil
	}

	if opts.Reduce != nil {
		reduceLoop(xs, out, k, before, opts)

		return out, nil
	}

	// Incremental sliding accumulator. lo..hi is the window for output 0;
	// each step removes the leaving value and adds the entering one.
	var (
		sum              float64
		present, missing int
	)
	lo, hi := -before, -before+k-1
	for j := max(lo, 0); j <= min(hi, n-1); j++ {
		if math.IsNaN(xs[j]) {
			missing++
		} else {
			sum += xs[j]
			present++
		}
	}

	for i := 0; i < n; i++ {
		switch {
		case opts.Strict:
			if lo >= 0 && hi < n {
				out.Present[i] = true
				if missing > 0 {
					out.Values[i] = math.NaN()
				} else {
					out.Values[i] = sum / float64(k)
				}
			}
		default:
			out.Present[i] = true
			if present > 0 {
				out.Values[i] = sum / float64(present)
			} else {
				out.Values[i] = math.NaN()
			}
		}

		// Slide by one: drop xs[lo], take xs[hi+1].
		if lo >= 0 && lo < n {
			if math.IsNaN(xs[lo]) {
				missing--
			} else {
				sum -= xs[lo]
				present--
			}
		}
		lo++
		hi++
		if hi >= 0 && hi < n {
			if math.IsNaN(xs[hi]) {
				missing++
			} else {
				sum += xs[hi]
				present++
			}
		}
	}

	return out, nil
}

// reduceLoop evaluates a caller-supplied reducer window by window. The
// scratch buffer is reused across calls, matching the Reducer contract.
func reduceLoop(xs []float64, out Series, k, before int, opts Options) {
	n := len(xs)
	buf := make([]float64, 0, k)
	for i := 0; i < n; i++ {
		lo, hi := i-before, i-before+k-1
		covered := lo >= 0 && hi < n

		if opts.Strict && !covered {
			continue // hole
		}

		buf = buf[:0]
		missing := 0
		for j := max(lo, 0); j <= min(hi, n-1); j++ {
			if math.IsNaN(xs[j]) {
				missing++
			} else {
				buf = append(buf, xs[j])
			}
		}

		out.Present[i] = true
		switch {
		case opts.Strict && missing > 0:
			out.Values[i] = math.NaN()
		case len(buf) == 0:
			out.Values[i] = math.NaN()
		default:
			out.Values[i] = opts.Reduce(buf)
		}
	}
}
