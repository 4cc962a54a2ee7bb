// Package render draws scaled marks as SVG. It is the thin consumer end of
// the pipeline: channels go through scale builders and the window
// transform elsewhere, and render only walks the results, maps each datum
// through the finished scales, and emits shapes.
//
// What:
//
//   - Line draws one polyline path through (x, y) points, split into
//     separate subpaths wherever the y series has a hole or an undefined
//     (NaN) value.
//   - Dots draws one circle per point, with optional radius and fill
//     scales driving per-point size and color.
//
// Why:
//
//   - Demonstrates the intended collaboration: marks never inspect domains
//     or interpolators, they just call Scale.Map.
//
// No scale, transform, or layout logic lives here.
//
// Errors:
//
//   - ErrLengthMismatch: channel slices of different lengths.
package render
