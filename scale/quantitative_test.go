package scale_test

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachocab/plot/scale"
)

// TestQuantitative_Defaults verifies an all-default linear scale: domain
// inferred from the channels, range the unit interval.
func TestQuantitative_Defaults(t *testing.T) {
	chs := []scale.Channel{{Name: "x", Values: []float64{2, 8, 5}}}

	s, err := scale.Linear(scale.RoleX, chs, scale.Options{})
	require.NoError(t, err)

	assert.Equal(t, scale.KindLinear, s.Type)
	assert.Equal(t, []float64{2, 8}, s.Domain)
	assert.Equal(t, 0.0, s.Map(2))
	assert.Equal(t, 0.5, s.Map(5))
	assert.Equal(t, 1.0, s.Map(8))
}

// TestQuantitative_Zero verifies the zero adjustment moves only the
// endpoint on the non-crossing side.
func TestQuantitative_Zero(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{5, 10},
		Zero:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, s.Domain)

	neg, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{-10, -5},
		Zero:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, 0}, neg.Domain)

	spanning, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{-5, 10},
		Zero:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-5, 10}, spanning.Domain, "a domain crossing zero is untouched")
}

// TestQuantitative_Reverse verifies reversal flips the domain, not the
// range.
func TestQuantitative_Reverse(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain:  []float64{0, 10},
		Reverse: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 0}, s.Domain)
	assert.Equal(t, 1.0, s.Map(0))
	assert.Equal(t, 0.0, s.Map(10))
}

// TestQuantitative_ReverseFixed verifies reversal of a fixed interpolator
// folds into the interpolator itself and leaves the domain alone.
func TestQuantitative_ReverseFixed(t *testing.T) {
	f := func(t float64) interface{} { return t * 100 }

	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain:           []float64{0, 10},
		InterpolateFixed: f,
		Reverse:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 10}, s.Domain, "domain stays forward")
	assert.Equal(t, 100.0, s.Map(0))
	assert.Equal(t, 0.0, s.Map(10))
	assert.Equal(t, 50.0, s.Map(5))
}

// TestQuantitative_FixedSynthesizedRange verifies a fixed interpolator
// gets evenly spaced breakpoints when no range is supplied.
func TestQuantitative_FixedSynthesizedRange(t *testing.T) {
	f := func(t float64) interface{} { return t * 10 }

	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain:           []float64{0, 4},
		InterpolateFixed: f,
	})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{0.0, 1.0}, s.Range)
	assert.Equal(t, 0.0, s.Map(0))
	assert.Equal(t, 5.0, s.Map(2))
	assert.Equal(t, 10.0, s.Map(4))
}

// TestQuantitative_NamedInterpolator verifies a registry name resolves
// into a color blend, with exact range endpoints.
func TestQuantitative_NamedInterpolator(t *testing.T) {
	steelblue := colorful.Color{R: 70 / 255.0, G: 130 / 255.0, B: 180 / 255.0}
	tomato := colorful.Color{R: 255 / 255.0, G: 99 / 255.0, B: 71 / 255.0}

	s, err := scale.Linear(scale.RoleFill, nil, scale.Options{
		Domain:      []float64{0, 1},
		Range:       []interface{}{steelblue, tomato},
		Interpolate: "rgb",
	})
	require.NoError(t, err)

	assert.Equal(t, steelblue, s.Map(0), "domain endpoint reproduces the range endpoint")
	assert.Equal(t, tomato, s.Map(1))

	mid, ok := s.Map(0.5).(colorful.Color)
	require.True(t, ok)
	assert.True(t, mid.IsValid(), "interior blends stay in gamut")
}

// TestQuantitative_BadInterpolator verifies the unknown-strategy error.
func TestQuantitative_BadInterpolator(t *testing.T) {
	_, err := scale.Linear(scale.RoleFill, nil, scale.Options{
		Domain:      []float64{0, 1},
		Interpolate: "sepia",
	})
	assert.ErrorIs(t, err, scale.ErrInvalidInterpolator)
}

// TestQuantitative_Nice verifies domain snapping happens after zero and
// reverse, and the snapped domain lands in the result record.
func TestQuantitative_Nice(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{0.13, 9.87},
		Nice:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 10}, s.Domain)
	assert.Equal(t, 0.5, s.Map(5), "mapping uses the snapped domain")
}

// TestQuantitative_Clamp verifies out-of-domain inputs pin to the range
// boundary when clamping is on.
func TestQuantitative_Clamp(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{0, 10},
		Range:  []interface{}{0.0, 100.0},
		Clamp:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, s.Map(12))
	assert.Equal(t, 0.0, s.Map(-3))
}

// TestQuantitative_Round verifies numeric outputs snap to whole units.
func TestQuantitative_Round(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain: []float64{0, 3},
		Range:  []interface{}{0.0, 10.0},
		Round:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, s.Map(1))
	assert.Equal(t, 7.0, s.Map(2))
}

// TestQuantitative_Unknown verifies the configured unknown value for NaN.
func TestQuantitative_Unknown(t *testing.T) {
	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain:  []float64{0, 1},
		Unknown: "missing",
	})
	require.NoError(t, err)

	assert.Equal(t, "missing", s.Map(math.NaN()))
}

// TestQuantitative_RoleOpacity verifies the opacity role defaults: a
// zero-based domain and the [0,1] range.
func TestQuantitative_RoleOpacity(t *testing.T) {
	chs := []scale.Channel{{Name: "opacity", Values: []float64{2, 8}}}

	s, err := scale.Linear(scale.RoleOpacity, chs, scale.Options{})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 8}, s.Domain)
	assert.Equal(t, 1.0, s.Map(8))
	assert.Equal(t, 0.5, s.Map(4))
}

// TestQuantitative_RoleRadius verifies the radius role wires the radial
// inference into both domain and range.
func TestQuantitative_RoleRadius(t *testing.T) {
	chs := []scale.Channel{{Name: "r", Values: []float64{4, 4, 4, 4}}}

	s, err := scale.Sqrt(scale.RoleRadius, chs, scale.Options{})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 4}, s.Domain, "zero-based domain")
	require.Len(t, s.Range, 2)
	assert.InDelta(t, 3.0, s.Range[1].(float64), 1e-12, "3·√(4/4) = 3")
	assert.Equal(t, 0.0, s.Map(0))
}

// TestQuantitative_TypeShorthands verifies cyclical/sequential collapse
// to linear.
func TestQuantitative_TypeShorthands(t *testing.T) {
	for _, shorthand := range []string{"cyclical", "sequential", ""} {
		s, err := scale.Linear(scale.RoleFill, nil, scale.Options{
			Type:   shorthand,
			Domain: []float64{0, 1},
		})
		require.NoError(t, err)
		assert.Equal(t, scale.KindLinear, s.Type, shorthand)
	}
}

// TestQuantitative_InputSlicesUntouched verifies the builder copies the
// caller's domain before adjusting it.
func TestQuantitative_InputSlicesUntouched(t *testing.T) {
	domain := []float64{5, 10}

	s, err := scale.Linear(scale.RoleX, nil, scale.Options{
		Domain:  domain,
		Zero:    true,
		Reverse: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 10}, domain, "caller's slice untouched")
	assert.Equal(t, []float64{10, 0}, s.Domain)
}
