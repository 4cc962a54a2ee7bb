package scale

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Value filters for InferDomain. Finite is the default; Positive and
// Negative serve sign-restricted scales such as log.
var (
	Finite   = func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	Positive = func(v float64) bool { return Finite(v) && v > 0 }
	Negative = func(v float64) bool { return Finite(v) && v < 0 }
)

// InferDomain returns [min, max] across all bound channel values passing
// filter (nil means Finite). It returns [0, 1] when no channel is bound or
// no value passes the filter. The input channels are never mutated.
func InferDomain(channels []Channel, filter func(float64) bool) []float64 {
	if filter == nil {
		filter = Finite
	}

	min, max := math.NaN(), math.NaN()
	for _, ch := range channels {
		if !ch.bound() {
			continue
		}
		for _, v := range ch.Values {
			if !filter(v) {
				continue
			}
			if v < min || math.IsNaN(min) {
				min = v
			}
			if v > max || math.IsNaN(max) {
				max = v
			}
		}
	}
	if math.IsNaN(min) {
		return []float64{0, 1}
	}

	return []float64{min, max}
}

// InferZeroDomain is InferDomain with the lower bound forced to 0,
// regardless of the data minimum.
func InferZeroDomain(channels []Channel) []float64 {
	d := InferDomain(channels, nil)
	d[0] = 0

	return d
}

// InferRadialRange computes a perceptually area-proportional radius range:
// radii grow with the square root of the domain value, normalized by h25,
// the median across channels of each channel's lower quartile of positive
// magnitudes. If the largest radius would exceed RadiusCeiling, the whole
// range shrinks uniformly by the same factor, preserving proportionality.
func InferRadialRange(channels []Channel, domain []float64) []float64 {
	h25 := crossChannelQuantile(channels, 0.25, Positive, math.Abs)
	if !(h25 > 0) {
		h25 = 1
	}

	rng := make([]float64, len(domain))
	for i, d := range domain {
		rng[i] = 3 * math.Sqrt(d/h25)
	}

	return shrinkToCeiling(rng, RadiusCeiling)
}

// InferLengthRange is the analogous construction for vector-length
// encodings: linear in magnitude, normalized by the median across channels
// of each channel's median absolute value, capped at LengthCeiling with
// the same uniform-shrink policy.
func InferLengthRange(channels []Channel, domain []float64) []float64 {
	m := crossChannelQuantile(channels, 0.5, Finite, math.Abs)
	if !(m > 0) {
		m = 1
	}

	rng := make([]float64, len(domain))
	for i, d := range domain {
		rng[i] = 12 * d / m
	}

	return shrinkToCeiling(rng, LengthCeiling)
}

// InferLogDomain scans bound values in channel order: the sign of the
// first nonzero value selects positive-only or negative-only domain
// inference. Log scales cannot cross zero, so the inferred domain's sign
// must match the data's dominant sign. With no channel data the domain
// defaults to [1, 10].
func InferLogDomain(channels []Channel) []float64 {
	for _, ch := range channels {
		if !ch.bound() {
			continue
		}
		for _, v := range ch.Values {
			if v > 0 {
				return InferDomain(channels, Positive)
			}
			if v < 0 {
				return InferDomain(channels, Negative)
			}
		}
	}

	return []float64{1, 10}
}

// InferQuantileDomain flattens all bound channel values into one sequence,
// preserving order and duplicates: quantile computation needs the raw
// samples, not just the extrema.
func InferQuantileDomain(channels []Channel) []float64 {
	var out []float64
	for _, ch := range channels {
		if ch.bound() {
			out = append(out, ch.Values...)
		}
	}

	return out
}

// crossChannelQuantile computes, per bound channel, the q-quantile of
// mapped values passing keep, then returns the median of those per-channel
// statistics. Channels with no qualifying values drop out. NaN when no
// channel qualifies.
func crossChannelQuantile(channels []Channel, q float64, keep func(float64) bool, mapv func(float64) float64) float64 {
	var perChannel []float64
	for _, ch := range channels {
		if !ch.bound() {
			continue
		}
		var xs []float64
		for _, v := range ch.Values {
			if keep(v) {
				xs = append(xs, mapv(v))
			}
		}
		if len(xs) == 0 {
			continue
		}
		sort.Float64s(xs)
		perChannel = append(perChannel, stats.Sample{Xs: xs, Sorted: true}.Quantile(q))
	}
	if len(perChannel) == 0 {
		return math.NaN()
	}
	sort.Float64s(perChannel)

	return stats.Sample{Xs: perChannel, Sorted: true}.Quantile(0.5)
}

// shrinkToCeiling uniformly scales rng down so its maximum does not exceed
// ceiling. Already-compliant ranges are returned as-is.
func shrinkToCeiling(rng []float64, ceiling float64) []float64 {
	max := math.Inf(-1)
	for _, r := range rng {
		if r > max {
			max = r
		}
	}
	if k := ceiling / max; k < 1 {
		for i := range rng {
			rng[i] *= k
		}
	}

	return rng
}
