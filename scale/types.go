// Package scale defines the option surface, result record, role table, and
// sentinel errors shared by the scale builders.
package scale

import (
	"errors"

	"github.com/nachocab/plot/interp"
)

// Sentinel errors for scale construction.
var (
	// ErrInvalidInterpolator indicates a named interpolate strategy that
	// the interpolator registry does not recognize.
	ErrInvalidInterpolator = errors.New("scale: unrecognized interpolate strategy")
	// ErrNonAscendingDomain indicates threshold/quantile breakpoints that
	// are not strictly ascending.
	ErrNonAscendingDomain = errors.New("scale: threshold domain must be strictly ascending")
	// ErrUnknownScheme indicates a color-scheme name with no palette.
	ErrUnknownScheme = errors.New("scale: unknown color scheme")
)

// Documented defaults for option fields left at their zero value.
const (
	// DefaultNiceCount is the tick count targeted by domain nicing.
	DefaultNiceCount = 10
	// DefaultExponent is the exponent of a pow scale.
	DefaultExponent = 1.0
	// DefaultBase is the base of a log scale.
	DefaultBase = 10.0
	// DefaultConstant is the linear-region constant of a symlog scale.
	DefaultConstant = 1.0
	// DefaultQuantiles is the number of equal-population buckets of a
	// quantile scale.
	DefaultQuantiles = 5

	// RadiusCeiling caps the default radial range, in output units.
	RadiusCeiling = 30.0
	// LengthCeiling caps the default vector-length range.
	LengthCeiling = 60.0
)

// Kind tags the scale variant a builder produced.
type Kind string

const (
	KindLinear    Kind = "linear"
	KindPow       Kind = "pow"
	KindLog       Kind = "log"
	KindSymlog    Kind = "symlog"
	KindQuantile  Kind = "quantile"
	KindThreshold Kind = "threshold"
	KindIdentity  Kind = "identity"
)

// Channel is a named visual role bound to one value per datum. A Channel
// with nil Values is unbound. Channels are read-only inputs: no builder or
// inference function ever mutates them.
type Channel struct {
	Name   string
	Values []float64
}

func (c Channel) bound() bool { return c.Values != nil }

// Role keys a scale to the encoding it serves. Roles select defaults from
// an explicit lookup table (see roleDefaults); they carry no behavior of
// their own.
type Role string

const (
	RoleX       Role = "x"
	RoleY       Role = "y"
	RoleRadius  Role = "r"
	RoleLength  Role = "length"
	RoleOpacity Role = "opacity"
	RoleFill    Role = "fill"
	RoleStroke  Role = "stroke"
)

// Options is the user-facing configuration bundle of the scale builders.
// Zero values mean "unset"; defaults are the named constants above.
//
// Fields:
//   - Type             — kind shorthand; "cyclical" and "sequential"
//     normalize to "linear". Variant builders overwrite it.
//   - Domain, Range    — explicit overrides; otherwise inferred from the
//     channels, conditioned on the role.
//   - Interpolate      — a named strategy resolved through the registry.
//   - InterpolatePair  — an explicit two-endpoint blend, used with Range.
//   - InterpolateFixed — a fixed interpolator spanning [0,1]; when Range
//     is unset, evenly spaced breakpoints are synthesized for it.
//   - Scheme           — categorical color scheme for quantile/threshold
//     default ranges; SchemeFunc overrides the provider.
//   - Reverse          — reverses the domain (pair interpolators) or is
//     folded into the interpolator itself (fixed interpolators).
//   - Zero             — force the domain to include 0, moving only the
//     endpoint on the side that does not already cross it.
//   - Nice, NiceCount  — snap the domain to round numbers after all other
//     domain decisions; count 0 means DefaultNiceCount.
//   - Clamp            — clamp out-of-domain inputs to the range boundary.
//   - Round            — round numeric outputs to whole units.
//   - Unknown          — value returned for unmappable (NaN) inputs.
//   - Exponent, Base, Constant, Quantiles — variant parameters; zero means
//     the documented default.
type Options struct {
	Type string

	Domain []float64
	Range  []interface{}

	Interpolate      string
	InterpolatePair  interp.Pair
	InterpolateFixed interp.Fixed

	Scheme     string
	SchemeFunc SchemeFunc

	Reverse bool
	Zero    bool
	Nice    bool
	Clamp   bool
	Round   bool

	NiceCount int
	Unknown   interface{}

	Exponent  float64
	Base      float64
	Constant  float64
	Quantiles int
}

// Scale is the finalized output of a builder: a tagged record plus the
// mapping function itself. Map converts a domain value to a range value,
// returning the configured unknown value for NaN inputs.
type Scale struct {
	Type        Kind
	Domain      []float64
	Range       []interface{}
	Interpolate interface{} // resolved interp.Pair or interp.Fixed, if any
	Map         func(x float64) interface{}
}

// roleDefault names the inference strategies a role falls back to when no
// explicit domain or range is given. A nil field means the generic
// behavior (InferDomain; the continuum's own default range).
type roleDefault struct {
	domain func(channels []Channel) []float64
	rng    func(channels []Channel, domain []float64) []interface{}
}

// roleDefaults is the role-conditioned default table. Keeping it as data
// keeps role conditionals out of the builder body.
var roleDefaults = map[Role]roleDefault{
	RoleRadius: {
		domain: InferZeroDomain,
		rng: func(chs []Channel, d []float64) []interface{} {
			return toValues(InferRadialRange(chs, d))
		},
	},
	RoleLength: {
		rng: func(chs []Channel, d []float64) []interface{} {
			return toValues(InferLengthRange(chs, d))
		},
	},
	RoleOpacity: {
		domain: InferZeroDomain,
		rng: func([]Channel, []float64) []interface{} {
			return []interface{}{0.0, 1.0}
		},
	},
}

// toValues widens a float slice into the interface-valued range form.
func toValues(xs []float64) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}
