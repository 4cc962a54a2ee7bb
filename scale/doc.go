// Package scale infers and builds visual-encoding scales: given bound data
// channels and partial user options, it decides the numeric, color, or
// ordinal mapping a mark should use.
//
// What:
//
//   - Inference helpers compute default domains and ranges from channel
//     data: plain extents, zero-anchored extents, perceptually
//     area-proportional radial ranges, vector-length ranges, sign-aware
//     log domains, and raw sample sets for quantile scales.
//   - Quantitative assembles a fully configured continuous scale from a
//     role key, an underlying Continuum primitive, channels, and Options:
//     it resolves domain, range, interpolation, zero-crossing, nicing,
//     clamping, and reversal, in a fixed order.
//   - Linear, Pow, Sqrt, Log, Symlog are thin variants pre-processing
//     options before delegating to Quantitative; Quantile and Threshold
//     build discrete bucket scales; Identity is a pass-through.
//   - The result is a Scale: {Type, Domain, Range, Interpolate, Map},
//     ready for direct attribute binding by a renderer.
//
// Why:
//
//   - Marks declare *what* they encode; this package decides *how*,
//     so sensible plots need no manual scale plumbing.
//
// Roles:
//
//	The role key ("x", "r", "opacity", …) selects defaults appropriate to
//	the encoding: radius and opacity roles default to zero-based domains,
//	and radius/length/opacity roles get role-specific default ranges. The
//	role is a lookup key only, never a structural relationship.
//
// Concurrency:
//
//	Builders never mutate caller-owned domain, range, or channel slices,
//	so concurrent callers may share read-only channel data freely.
//
// Errors:
//
//   - ErrInvalidInterpolator: a named interpolate strategy is unrecognized.
//   - ErrNonAscendingDomain: threshold breakpoints out of order.
//   - ErrUnknownScheme: a named color scheme is not available.
//
// Quantiles and medians come from github.com/aclements/go-moremath/stats;
// categorical color schemes from gonum.org/v1/plot/palette/brewer.
package scale
