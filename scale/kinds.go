package scale

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Linear builds a linear scale for role from the bound channels and
// options. "cyclical" and "sequential" type shorthands normalize to
// linear.
func Linear(role Role, channels []Channel, o Options) (*Scale, error) {
	if o.Type == "" {
		o.Type = string(KindLinear)
	}

	return Quantitative(role, NewLinear(), channels, o)
}

// Pow builds a power scale; Exponent 0 means DefaultExponent.
func Pow(role Role, channels []Channel, o Options) (*Scale, error) {
	e := o.Exponent
	if e == 0 {
		e = DefaultExponent
	}
	o.Type = string(KindPow)

	return Quantitative(role, NewPow(e), channels, o)
}

// Sqrt is Pow with the exponent fixed at 0.5.
func Sqrt(role Role, channels []Channel, o Options) (*Scale, error) {
	o.Exponent = 0.5

	return Pow(role, channels, o)
}

// Log builds a logarithmic scale; Base 0 means DefaultBase. Its default
// domain comes from InferLogDomain, since a log domain must keep the sign
// of the data.
func Log(role Role, channels []Channel, o Options) (*Scale, error) {
	b := o.Base
	if b == 0 {
		b = DefaultBase
	}
	if o.Domain == nil {
		o.Domain = InferLogDomain(channels)
	}
	o.Type = string(KindLog)

	return Quantitative(role, NewLog(b), channels, o)
}

// Symlog builds a symmetric-log scale; Constant 0 means DefaultConstant.
func Symlog(role Role, channels []Channel, o Options) (*Scale, error) {
	k := o.Constant
	if k == 0 {
		k = DefaultConstant
	}
	o.Type = string(KindSymlog)

	return Quantitative(role, NewSymlog(k), channels, o)
}

// Quantile builds an equal-population bucket scale: the domain (default:
// all bound samples, order and duplicates preserved) is cut at Quantiles-1
// breakpoints and the result delegates to Threshold with those breakpoints.
// Duplicate breakpoints from duplicate-heavy samples are collapsed so the
// threshold domain stays strictly ascending.
func Quantile(role Role, channels []Channel, o Options) (*Scale, error) {
	samples := o.Domain
	if samples == nil {
		samples = InferQuantileDomain(channels)
	}
	q := o.Quantiles
	if q == 0 {
		q = DefaultQuantiles
	}

	xs := append([]float64(nil), samples...)
	sort.Float64s(xs)
	sample := stats.Sample{Xs: xs, Sorted: true}

	thresholds := make([]float64, 0, q-1)
	if len(xs) > 0 {
		for i := 1; i < q; i++ {
			v := sample.Quantile(float64(i) / float64(q))
			if n := len(thresholds); n > 0 && v <= thresholds[n-1] {
				continue
			}
			thresholds = append(thresholds, v)
		}
	}

	o.Domain = thresholds
	s, err := Threshold(role, channels, o)
	if err != nil {
		return nil, err
	}
	s.Type = KindQuantile

	return s, nil
}

// Threshold builds a bucket scale over explicit ascending breakpoints
// (default [0]): inputs below the first breakpoint map to the first range
// value, inputs at or above the i-th breakpoint to the i+1-th. Reverse
// flips the range only — the domain must stay ascending for the bucket
// lookup. A missing range is synthesized from a quantized fixed
// interpolator or a categorical scheme, sized to len(domain)+1 buckets.
//
// Errors:
//   - ErrNonAscendingDomain — consecutive breakpoints out of order.
func Threshold(role Role, channels []Channel, o Options) (*Scale, error) {
	domain := o.Domain
	if domain == nil {
		domain = []float64{0}
	}
	domain = append([]float64(nil), domain...)

	for i := 1; i < len(domain); i++ {
		if domain[i-1] >= domain[i] {
			return nil, fmt.Errorf("%w: %v ≥ %v at index %d",
				ErrNonAscendingDomain, domain[i-1], domain[i], i)
		}
	}

	buckets := len(domain) + 1
	rng := o.Range
	if len(rng) == 0 {
		var err error
		rng, err = synthesizeRange(buckets, o)
		if err != nil {
			return nil, err
		}
	} else {
		rng = append([]interface{}(nil), rng...)
	}
	if o.Reverse {
		for l, r := 0, len(rng)-1; l < r; l, r = l+1, r-1 {
			rng[l], rng[r] = rng[r], rng[l]
		}
	}

	unknown := o.Unknown
	m := func(x float64) interface{} {
		if math.IsNaN(x) {
			return unknown
		}
		i := sort.Search(len(domain), func(i int) bool { return domain[i] > x })
		if i >= len(rng) {
			i = len(rng) - 1
		}

		return rng[i]
	}

	return &Scale{Type: KindThreshold, Domain: domain, Range: rng, Map: m}, nil
}

// Identity builds the trivial pass-through scale: no domain or range
// state, every input maps to itself.
func Identity() *Scale {
	return &Scale{
		Type: KindIdentity,
		Map:  func(x float64) interface{} { return x },
	}
}

// synthesizeRange derives a default discrete range of n bucket values:
// a fixed interpolator is sampled at n evenly spaced positions of [0,1],
// a named scheme is asked for n colors, and with neither the range falls
// back to the evenly spaced unit positions themselves.
func synthesizeRange(n int, o Options) ([]interface{}, error) {
	if n < 1 {
		n = 1
	}

	positions := []float64{0.5}
	if n > 1 {
		positions = vec.Linspace(0, 1, n)
	}

	switch {
	case o.InterpolateFixed != nil:
		out := make([]interface{}, n)
		for i, t := range positions {
			out[i] = o.InterpolateFixed(t)
		}

		return out, nil

	case o.Scheme != "":
		provider := o.SchemeFunc
		if provider == nil {
			provider = Scheme
		}
		colors, err := provider(o.Scheme, n)
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, len(colors))
		for i, c := range colors {
			out[i] = c
		}

		return out, nil

	default:
		return toValues(positions), nil
	}
}
