// Package interp provides named interpolation strategies for scale ranges:
// numeric blending plus four perceptual color spaces.
//
// What:
//
//   - Pair interpolators blend between two endpoint values, returning a
//     function from t ∈ [0,1] to the blended value.
//   - Fixed interpolators map t ∈ [0,1] directly to a value; color-scheme
//     scales use them to span an entire gradient with one function.
//   - Resolve looks a Pair up by name, case-insensitively, among
//     {number, rgb, hsl, hcl, lab}.
//
// Why:
//
//   - Scale builders accept interpolation by name; the registry turns the
//     name into a callable strategy exactly once, at construction time.
//   - Color blends in hcl/lab track perceptual distance far better than a
//     naive rgb lerp; hsl keeps hue rotation intuitive for cyclic palettes.
//
// Options:
//
//   - None. Interpolators are pure functions; pick one and call it.
//
// Errors:
//
//   - ErrUnknownInterpolator: Resolve received a name outside the registry.
//
// Color-space math is provided by github.com/lucasb-eyer/go-colorful; the
// hsl blend walks the shortest hue arc, so red→blue goes through magenta,
// not through green.
package interp
