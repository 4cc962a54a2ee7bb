package scale

import (
	"math"
	"sort"

	"github.com/nachocab/plot/interp"
)

// Continuum is the continuous-mapping primitive underlying quantitative
// scales. The builder treats it as a capability interface: a fluent
// configuration object it installs domain, range, interpolation, unknown,
// clamp, and nice decisions on, in a fixed order.
//
// Accessors follow a set-and-read convention: passing nil reads the
// current value, passing a slice installs a copy of it. Reads also return
// copies, so a Continuum never aliases caller-owned arrays.
type Continuum interface {
	// Domain installs d (when non-nil) and returns the current domain.
	Domain(d []float64) []float64
	// Range installs r (when non-nil) and returns the current range. A
	// nil range means the default evenly spaced numeric range over [0,1].
	Range(r []interface{}) []interface{}
	// Interpolate installs the two-endpoint blend used between
	// consecutive range values.
	Interpolate(p interp.Pair)
	// Fixed installs a post-mapping strategy: the numeric mapping result,
	// spanning [0,1], is fed through f to produce the final value.
	Fixed(f interp.Fixed)
	// Unknown installs the value returned for NaN inputs.
	Unknown(v interface{})
	// Clamp toggles clamping of out-of-domain inputs to the domain ends.
	Clamp(on bool)
	// Nice snaps the domain endpoints to round values, targeting roughly
	// count steps.
	Nice(count int)
	// Map converts a domain value to a range value.
	Map(x float64) interface{}
}

// NewLinear returns a linear Continuum over the default domain [0, 1].
func NewLinear() Continuum {
	return &continuum{fwd: func(x float64) float64 { return x }, domain: []float64{0, 1}}
}

// NewPow returns a pow Continuum with the given exponent. The transform
// preserves sign: negative inputs map to -(|x|^exponent).
func NewPow(exponent float64) Continuum {
	return &continuum{
		fwd:    func(x float64) float64 { return signedPow(x, exponent) },
		domain: []float64{0, 1},
	}
}

// NewLog returns a logarithmic Continuum with the given base. The domain
// must not cross zero; negative domains mirror through -log(-x). Nicing
// snaps endpoints to integer powers of the base.
func NewLog(base float64) Continuum {
	return &continuum{
		fwd:    logTransform,
		domain: []float64{1, 10},
		nice:   logNice(base),
	}
}

// NewSymlog returns a symmetric-log Continuum: linear near zero within
// the given constant, logarithmic beyond it, defined on all reals.
func NewSymlog(constant float64) Continuum {
	return &continuum{
		fwd:    func(x float64) float64 { return symlogTransform(x, constant) },
		domain: []float64{0, 1},
	}
}

// continuum is the transform-based Continuum implementation: a forward
// transform per scale kind plus piecewise interpolation over k ≥ 2 domain
// breakpoints, supporting ascending and descending domains.
type continuum struct {
	fwd     func(float64) float64
	nice    func(d []float64, count int) // nil means linear step snapping
	domain  []float64
	rng     []interface{}
	pair    interp.Pair
	fixed   interp.Fixed
	unknown interface{}
	clamp   bool
}

func (c *continuum) Domain(d []float64) []float64 {
	if d != nil {
		c.domain = append([]float64(nil), d...)
	}

	return append([]float64(nil), c.domain...)
}

func (c *continuum) Range(r []interface{}) []interface{} {
	if r != nil {
		c.rng = append([]interface{}(nil), r...)
	}
	if c.rng == nil {
		return nil
	}

	return append([]interface{}(nil), c.rng...)
}

func (c *continuum) Interpolate(p interp.Pair) { c.pair = p }
func (c *continuum) Fixed(f interp.Fixed)      { c.fixed = f }
func (c *continuum) Unknown(v interface{})     { c.unknown = v }
func (c *continuum) Clamp(on bool)             { c.clamp = on }

func (c *continuum) Nice(count int) {
	if len(c.domain) < 2 || count < 1 {
		return
	}
	if c.nice != nil {
		c.nice(c.domain, count)

		return
	}
	linearNice(c.domain, count)
}

func (c *continuum) Map(x float64) interface{} {
	if math.IsNaN(x) {
		return c.unknown
	}

	d := c.domain
	segs := len(d) - 1
	if c.rng != nil && len(c.rng)-1 < segs {
		segs = len(c.rng) - 1
	}
	if segs < 1 {
		return c.unknown
	}

	if c.clamp {
		x = clampTo(d[0], d[segs], x)
	}

	i := segmentIndex(d, segs, x)
	t := normalize(c.fwd, d[i], d[i+1], x)

	var y interface{}
	if c.rng == nil {
		// Default range: evenly spaced over [0,1].
		y = (float64(i) + t) / float64(segs)
	} else {
		p := c.pair
		if p == nil {
			p = interp.Number
		}
		y = p(c.rng[i], c.rng[i+1])(t)
	}

	if c.fixed != nil {
		return c.fixed(interp.ToFloat(y))
	}

	return y
}

// segmentIndex picks the piecewise segment containing x, extrapolating on
// the end segments, for ascending or descending domains.
func segmentIndex(d []float64, segs int, x float64) int {
	if d[0] <= d[segs] {
		return sort.Search(segs-1, func(i int) bool { return x < d[i+1] })
	}

	return sort.Search(segs-1, func(i int) bool { return x > d[i+1] })
}

// normalize maps x to its position in [d0, d1] through the forward
// transform. Degenerate segments pin to the midpoint.
func normalize(fwd func(float64) float64, d0, d1, x float64) float64 {
	a, b := fwd(d0), fwd(d1)
	if a == b || math.IsNaN(a) || math.IsNaN(b) {
		return 0.5
	}
	if x == d0 {
		return 0
	}
	if x == d1 {
		return 1
	}

	return (fwd(x) - a) / (b - a)
}

func clampTo(d0, d1, x float64) float64 {
	lo, hi := d0, d1
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Max(lo, math.Min(hi, x))
}

func signedPow(x, exponent float64) float64 {
	if x < 0 {
		return -math.Pow(-x, exponent)
	}

	return math.Pow(x, exponent)
}

func logTransform(x float64) float64 {
	if x < 0 {
		return -math.Log(-x)
	}

	return math.Log(x)
}

func symlogTransform(x, constant float64) float64 {
	if x < 0 {
		return -math.Log1p(-x / constant)
	}

	return math.Log1p(x / constant)
}

// linearNice snaps the outer domain endpoints outward to multiples of a
// 1-2-5 step sized for roughly count intervals. Interior breakpoints are
// left alone. Two rounds, like the reference nicing algorithms, so the
// step is recomputed once against the widened span.
func linearNice(d []float64, count int) {
	lo, hi := 0, len(d)-1
	rev := d[hi] < d[lo]
	if rev {
		lo, hi = hi, lo
	}
	x0, x1 := d[lo], d[hi]
	if !Finite(x0) || !Finite(x1) || x0 == x1 {
		return
	}

	for round := 0; round < 2; round++ {
		step := niceStep(x1-x0, count)
		if step <= 0 || math.IsInf(step, 0) {
			return
		}
		x0 = math.Floor(x0/step) * step
		x1 = math.Ceil(x1/step) * step
	}
	d[lo], d[hi] = x0, x1
}

// niceStep picks a 1-2-5 progression step covering span in roughly count
// intervals.
func niceStep(span float64, count int) float64 {
	raw := span / float64(count)
	step := math.Pow(10, math.Floor(math.Log10(raw)))
	switch err := raw / step; {
	case err >= math.Sqrt(50):
		step *= 10
	case err >= math.Sqrt(10):
		step *= 5
	case err >= math.Sqrt2:
		step *= 2
	}

	return step
}

// logNice snaps endpoints to integer powers of base, mirroring for
// negative domains.
func logNice(base float64) func(d []float64, count int) {
	logb := func(x float64) float64 { return math.Log(x) / math.Log(base) }
	floorPow := func(x float64) float64 { return math.Pow(base, math.Floor(logb(x))) }
	ceilPow := func(x float64) float64 { return math.Pow(base, math.Ceil(logb(x))) }

	return func(d []float64, _ int) {
		lo, hi := 0, len(d)-1
		if d[hi] < d[lo] {
			lo, hi = hi, lo
		}
		switch {
		case d[lo] > 0 && d[hi] > 0:
			d[lo], d[hi] = floorPow(d[lo]), ceilPow(d[hi])
		case d[lo] < 0 && d[hi] < 0:
			d[lo], d[hi] = -ceilPow(-d[lo]), -floorPow(-d[hi])
		}
	}
}
