package interp

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownInterpolator indicates a name outside the registry was resolved.
var ErrUnknownInterpolator = errors.New("interp: unknown interpolator")

// Pair blends between two endpoint values a and b, returning a function
// from t ∈ [0,1] to the blended value. Numeric endpoints are coerced to
// float64; color endpoints are blended in the strategy's color space.
type Pair func(a, b interface{}) func(t float64) interface{}

// Fixed maps t ∈ [0,1] directly to a value. Color-scheme scales supply a
// Fixed spanning a whole gradient instead of a Pair between two endpoints.
type Fixed func(t float64) interface{}

// Ready-made Pair strategies, also reachable through Resolve.
var (
	// Number interpolates linearly between two numeric endpoints.
	Number Pair = numberPair

	// RGB blends two colors channel-wise in sRGB space.
	RGB Pair = colorPair(colorful.Color.BlendRgb)

	// HSL blends two colors in HSL space along the shortest hue arc.
	HSL Pair = colorPair(blendHsl)

	// HCL blends two colors in the perceptually uniform HCL space.
	HCL Pair = colorPair(colorful.Color.BlendHcl)

	// Lab blends two colors in CIE L*a*b* space.
	Lab Pair = colorPair(colorful.Color.BlendLab)
)

// registry keys are lowercase; Resolve folds case before lookup.
var registry = map[string]Pair{
	"number": Number,
	"rgb":    RGB,
	"hsl":    HSL,
	"hcl":    HCL,
	"lab":    Lab,
}

// Resolve returns the Pair registered under name, matching
// case-insensitively. It returns ErrUnknownInterpolator (wrapped with the
// offending name) when the name is absent.
func Resolve(name string) (Pair, error) {
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInterpolator, name)
	}

	return p, nil
}

// Invert returns a Fixed equivalent to f with its parameter reversed:
// t ↦ f(1-t). Scale builders use it to fold a reversal request into the
// interpolator itself.
func Invert(f Fixed) Fixed {
	return func(t float64) interface{} { return f(1 - t) }
}

// numberPair linearly interpolates numeric endpoints. Endpoints that do
// not coerce to a number yield NaN, mirroring the +v coercion convention.
func numberPair(a, b interface{}) func(t float64) interface{} {
	x, y := ToFloat(a), ToFloat(b)

	return func(t float64) interface{} {
		// Exact endpoints: scale mappings must reproduce range
		// breakpoints without floating-point drift.
		switch t {
		case 0:
			return x
		case 1:
			return y
		}

		return x + (y-x)*t
	}
}

// colorPair adapts a colorful blend into a Pair. Endpoints that are not
// colors degrade to a constant function returning the first endpoint.
func colorPair(blend func(c1, c2 colorful.Color, t float64) colorful.Color) Pair {
	return func(a, b interface{}) func(t float64) interface{} {
		c1, ok1 := toColorful(a)
		c2, ok2 := toColorful(b)
		if !ok1 || !ok2 {
			return func(float64) interface{} { return a }
		}

		return func(t float64) interface{} {
			switch t {
			case 0:
				return c1
			case 1:
				return c2
			}

			return blend(c1, c2, t).Clamped()
		}
	}
}

// blendHsl interpolates hue along the shortest arc and saturation and
// lightness linearly.
func blendHsl(c1, c2 colorful.Color, t float64) colorful.Color {
	h1, s1, l1 := c1.Hsl()
	h2, s2, l2 := c2.Hsl()

	d := h2 - h1
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	h := math.Mod(h1+t*d+360, 360)

	return colorful.Hsl(h, s1+t*(s2-s1), l1+t*(l2-l1))
}

// ToFloat coerces v to a float64, returning NaN for values with no numeric
// interpretation.
func ToFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case bool:
		if x {
			return 1
		}

		return 0
	default:
		return math.NaN()
	}
}

// toColorful converts any color.Color endpoint to a colorful.Color.
func toColorful(v interface{}) (colorful.Color, bool) {
	switch c := v.(type) {
	case colorful.Color:
		return c, true
	case color.Color:
		return colorful.MakeColor(c)
	default:
		return colorful.Color{}, false
	}
}
