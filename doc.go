// Package plot is a declarative data-visualization core: it infers scales
// from raw data channels, transforms ordered series, and hands finalized
// mappings to a rendering layer.
//
// 🚀 What is plot?
//
//	A small, pure-Go engine that brings together:
//		• Scale inference: domain/range defaults from bound data channels
//		• Quantitative scales: linear, pow, sqrt, log, symlog
//		• Discrete scales: quantile, threshold, identity
//		• Interpolators: numeric plus rgb/hsl/hcl/lab color spaces
//		• Windowed transforms: moving reductions with anchors and
//		  missing-value policy
//
// ✨ Why choose plot?
//
//   - Declarative – describe the encoding, let the engine pick the mapping
//   - Predictable – pure functions, no global state, no input mutation
//   - Pure Go – no cgo, safe for concurrent callers sharing channel data
//
// Under the hood, everything is organized under four subpackages:
//
//	interp/ — named interpolation strategies (number, rgb, hsl, hcl, lab)
//	scale/  — domain/range inference & scale builders (linear … threshold)
//	window/ — moving-window reductions over ordered series
//	render/ — thin SVG mark output consuming scales and derived channels
//
// Quick sketch of the data flow:
//
//	channels ──▶ window.Transform ──▶ derived series
//	channels ──▶ scale.Linear/…   ──▶ finalized Scale
//	derived + Scale ──▶ render.Line / render.Dots ──▶ SVG
//
// Dive into the per-package docs for options, defaults, and the exact
// missing-value semantics of the windowed transform.
//
//	go get github.com/nachocab/plot
package plot
