package scale

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/vec"

	"github.com/nachocab/plot/interp"
)

// Quantitative assembles a fully configured continuous scale on top of the
// Continuum primitive c. The role selects zero/range defaults appropriate
// to the encoding; channels feed domain/range inference when o carries no
// explicit override.
//
// Processing order (each step depends on the prior one):
//  1. normalize the type shorthand and coerce reverse to a strict bool;
//  2. resolve the interpolate option to a function;
//  3. a fixed interpolator is flipped for reversal (t ↦ f(1-t), clearing
//     the reverse flag), given a synthesized evenly spaced range when none
//     was supplied, and installed as the post-mapping strategy; a pair
//     interpolator is installed directly;
//  4. zero adjustment extends the domain to include 0;
//  5. a still-pending reverse reverses the domain sequence, not the range;
//  6. the domain and unknown value are installed on the primitive;
//  7. nice snaps the domain, which is then re-read (it may have changed);
//  8. an explicit or role-derived range is installed;
//  9. clamp is applied.
//
// The caller's domain, range, and channel slices are never mutated; all
// adjustments operate on copies.
//
// Errors:
//   - ErrInvalidInterpolator — o.Interpolate names an unknown strategy.
func Quantitative(role Role, c Continuum, channels []Channel, o Options) (*Scale, error) {
	// Step 1: type shorthand and reverse normalization.
	kind := normalizeKind(o.Type)
	reverse := o.Reverse

	// Step 2: resolve the interpolation strategy.
	pair, fixed := o.InterpolatePair, o.InterpolateFixed
	if pair == nil && fixed == nil && o.Interpolate != "" {
		p, err := interp.Resolve(o.Interpolate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInterpolator, o.Interpolate)
		}
		pair = p
	}

	// Domain and range resolution, conditioned on role.
	domain := o.Domain
	if domain == nil {
		domain = roleDomain(role, channels)
	}
	domain = append([]float64(nil), domain...)

	rng := o.Range
	if rng == nil {
		rng = roleRange(role, channels, domain)
	}

	// Step 3: install the interpolation strategy.
	switch {
	case fixed != nil:
		if reverse {
			fixed = interp.Invert(fixed)
			reverse = false
		}
		if rng == nil {
			rng = unitBreakpoints(len(domain))
		}
		c.Fixed(fixed)
	case pair != nil:
		c.Interpolate(pair)
	}

	// Step 4: zero adjustment.
	if o.Zero {
		includeZero(domain)
	}

	// Step 5: pending reversal applies to the domain only.
	if reverse {
		reverseFloats(domain)
	}

	// Step 6: install domain and unknown.
	c.Domain(domain)
	if o.Unknown != nil {
		c.Unknown(o.Unknown)
	}

	// Step 7: nice, then re-read the possibly snapped domain.
	if o.Nice {
		count := o.NiceCount
		if count == 0 {
			count = DefaultNiceCount
		}
		c.Nice(count)
		domain = c.Domain(nil)
	}

	// Step 8: install the range.
	if rng != nil {
		c.Range(rng)
	}

	// Step 9: clamp.
	c.Clamp(o.Clamp)

	m := c.Map
	if o.Round {
		m = roundOutput(m)
	}

	var ip interface{}
	switch {
	case fixed != nil:
		ip = fixed
	case pair != nil:
		ip = pair
	}

	return &Scale{
		Type:        kind,
		Domain:      domain,
		Range:       c.Range(nil),
		Interpolate: ip,
		Map:         m,
	}, nil
}

// normalizeKind folds the "cyclical" and "sequential" shorthands (and the
// empty string) into linear.
func normalizeKind(t string) Kind {
	switch strings.ToLower(t) {
	case "", "cyclical", "sequential":
		return KindLinear
	default:
		return Kind(strings.ToLower(t))
	}
}

// roleDomain returns the role-conditioned default domain.
func roleDomain(role Role, channels []Channel) []float64 {
	if rd, ok := roleDefaults[role]; ok && rd.domain != nil {
		return rd.domain(channels)
	}

	return InferDomain(channels, nil)
}

// roleRange returns the role-conditioned default range, or nil when the
// role has none (the continuum then falls back to [0,1]).
func roleRange(role Role, channels []Channel, domain []float64) []interface{} {
	if rd, ok := roleDefaults[role]; ok && rd.rng != nil {
		return rd.rng(channels, domain)
	}

	return nil
}

// includeZero extends the domain to include 0, respecting its direction:
// only the endpoint on the side that does not already cross zero moves,
// and for domains with more than two breakpoints only that single
// endpoint is touched.
func includeZero(d []float64) {
	lo, hi := 0, len(d)-1
	if len(d) < 2 {
		return
	}
	if d[lo] <= d[hi] { // ascending
		if d[lo] > 0 {
			d[lo] = 0
		} else if d[hi] < 0 {
			d[hi] = 0
		}

		return
	}
	// descending
	if d[hi] > 0 {
		d[hi] = 0
	} else if d[lo] < 0 {
		d[lo] = 0
	}
}

// unitBreakpoints synthesizes the default range for a fixed interpolator:
// the literal unit interval for two-point domains, otherwise evenly spaced
// breakpoints across [0,1] matching the domain length.
func unitBreakpoints(n int) []interface{} {
	if n <= 2 {
		return []interface{}{0.0, 1.0}
	}

	return toValues(vec.Linspace(0, 1, n))
}

func reverseFloats(d []float64) {
	for l, r := 0, len(d)-1; l < r; l, r = l+1, r-1 {
		d[l], d[r] = d[r], d[l]
	}
}

// roundOutput wraps a mapping so numeric outputs snap to whole units.
// Non-numeric outputs (colors) pass through untouched.
func roundOutput(m func(float64) interface{}) func(float64) interface{} {
	return func(x float64) interface{} {
		y := m(x)
		if f, ok := y.(float64); ok {
			return math.Round(f)
		}

		return y
	}
}
