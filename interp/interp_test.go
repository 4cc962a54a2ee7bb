package interp_test

import (
	"image/color"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachocab/plot/interp"
)

// TestResolve_KnownNames verifies that every registered strategy resolves
// regardless of letter case.
func TestResolve_KnownNames(t *testing.T) {
	for _, name := range []string{"number", "NUMBER", "rgb", "Rgb", "hsl", "HCL", "lab", "Lab"} {
		p, err := interp.Resolve(name)
		assert.NoError(t, err, "Resolve(%q) should succeed", name)
		assert.NotNil(t, p, "Resolve(%q) should return a strategy", name)
	}
}

// TestResolve_Unknown verifies the sentinel error for unregistered names.
func TestResolve_Unknown(t *testing.T) {
	_, err := interp.Resolve("oklch")
	assert.ErrorIs(t, err, interp.ErrUnknownInterpolator, "unregistered name must error")
	assert.Contains(t, err.Error(), "oklch", "error should name the offender")
}

// TestNumber_Endpoints verifies exact endpoint reproduction and the midpoint.
func TestNumber_Endpoints(t *testing.T) {
	f := interp.Number(10.0, 20.0)
	assert.Equal(t, 10.0, f(0), "t=0 must reproduce the first endpoint")
	assert.Equal(t, 20.0, f(1), "t=1 must reproduce the second endpoint")
	assert.Equal(t, 15.0, f(0.5), "t=0.5 must be the arithmetic midpoint")
}

// TestNumber_Coercion verifies that integer endpoints coerce like numbers
// and that non-numeric endpoints propagate NaN.
func TestNumber_Coercion(t *testing.T) {
	f := interp.Number(0, 10)
	assert.Equal(t, 5.0, f(0.5), "int endpoints coerce to float64")

	g := interp.Number("zero", 10)
	assert.True(t, math.IsNaN(g(0.5).(float64)), "non-numeric endpoint yields NaN")
}

// TestRGB_Midpoint verifies sRGB channel blending between black and white.
func TestRGB_Midpoint(t *testing.T) {
	f := interp.RGB(color.RGBA{A: 0xff}, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	mid, ok := f(0.5).(colorful.Color)
	require.True(t, ok, "RGB blend must return a colorful.Color")
	assert.InDelta(t, 0.5, mid.R, 1e-9, "mid red channel")
	assert.InDelta(t, 0.5, mid.G, 1e-9, "mid green channel")
	assert.InDelta(t, 0.5, mid.B, 1e-9, "mid blue channel")
}

// TestHSL_ShortestArc verifies that hue interpolation takes the short way
// around the wheel: from h=350° to h=10° the midpoint is 0°, not 180°.
func TestHSL_ShortestArc(t *testing.T) {
	a := colorful.Hsl(350, 1, 0.5)
	b := colorful.Hsl(10, 1, 0.5)

	mid, ok := interp.HSL(a, b)(0.5).(colorful.Color)
	require.True(t, ok, "HSL blend must return a colorful.Color")

	h, s, l := mid.Hsl()
	assert.InDelta(t, 0.0, math.Min(h, 360-h), 1e-6, "midpoint hue crosses 0°")
	assert.InDelta(t, 1.0, s, 1e-6, "saturation stays fixed")
	assert.InDelta(t, 0.5, l, 1e-6, "lightness stays fixed")
}

// TestColorPair_BadEndpoint verifies the constant-function degradation for
// non-color endpoints.
func TestColorPair_BadEndpoint(t *testing.T) {
	f := interp.Lab("not a color", color.RGBA{A: 0xff})
	assert.Equal(t, "not a color", f(0.5), "non-color endpoints degrade to a constant")
}

// TestInvert verifies parameter reversal of a fixed interpolator.
func TestInvert(t *testing.T) {
	var ramp interp.Fixed = func(t float64) interface{} { return t }

	inv := interp.Invert(ramp)
	assert.Equal(t, 1.0, inv(0), "inverted t=0 maps to f(1)")
	assert.Equal(t, 0.0, inv(1), "inverted t=1 maps to f(0)")
	assert.Equal(t, 0.25, inv(0.75), "inverted interior point")
}
