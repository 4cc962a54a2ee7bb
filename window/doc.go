// Package window computes moving reductions (rolling mean by default) over
// ordered numeric series, with configurable window size, anchoring, and
// missing-value policy.
//
// What:
//
//   - Transform slides a window of K consecutive values across the input
//     and writes one reduced value per input index.
//   - Anchor controls which index receives each window's result: Start
//     (window begins at the index), Middle (window centered on the index,
//     extra element on the trailing side for even K), or End (window ends
//     at the index).
//   - The result is a Series: values plus a presence mask. An absent index
//     (a "hole") is distinct from a present NaN.
//
// Why:
//
//   - Smoothing noisy channels before scale inference and rendering.
//   - Rolling averages over time-ordered measurements.
//
// Missing values:
//
//	An input value is missing if it is NaN (callers coerce null to NaN;
//	see Missing). Under the default strict policy a missing value poisons
//	every window that contains it — those outputs are present NaNs — and
//	boundary positions whose window would extend past the data are holes.
//	Non-strict mode instead clips each window to the data, averages only
//	the present values, and never produces holes.
//
// Complexity:
//
//   - Transform: O(n) time for n inputs regardless of K (incremental
//     sliding sums), O(n) memory for the output. A custom Reducer falls
//     back to O(n·K).
//
// Options:
//
//   - Options.K: window size, K ≥ 1.
//   - Options.Anchor: Start, Middle (default), or End.
//   - Options.Strict: full-window policy, default true.
//   - Options.Reduce: optional replacement for the mean.
//
// Errors:
//
//   - ErrBadWindow: K < 1.
//   - ErrBadAnchor: anchor outside {Start, Middle, End}.
package window
