package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/nachocab/plot/interp"
	"github.com/nachocab/plot/scale"
	"github.com/nachocab/plot/window"
)

// ErrLengthMismatch indicates mark channels of different lengths.
var ErrLengthMismatch = errors.New("render: channel lengths differ")

// defaultRadius is the dot radius, in output units, when no radius scale
// is bound.
const defaultRadius = 3

// Line draws a polyline through the points (xs[i], ys[i]) mapped through
// the sx and sy scales, as one SVG path. The path splits into disjoint
// subpaths at holes in ys and at points whose mapped position is not
// finite, so gaps in the data stay visible as gaps. The optional style
// strings go to the path element; the default stroke style draws an
// unfilled black line.
func Line(w io.Writer, width, height int, xs []float64, ys window.Series, sx, sy *scale.Scale, style ...string) error {
	if len(xs) != ys.Len() {
		return fmt.Errorf("%w: %d xs vs %d ys", ErrLengthMismatch, len(xs), ys.Len())
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	var path []byte
	inLine := false
	for i := range xs {
		y, ok := ys.At(i)
		px := interp.ToFloat(sx.Map(xs[i]))
		py := math.NaN()
		if ok {
			py = interp.ToFloat(sy.Map(y))
		}
		if !isFinite(px) || !isFinite(py) {
			inLine = false

			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		} else {
			path = append(path, " L"...)
		}
		path = append(path, ' ')
		path = strconv.AppendFloat(path, px, 'g', 6, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, py, 'g', 6, 64)
	}
	if len(path) == 0 {
		return nil
	}

	if len(style) == 0 {
		style = []string{"stroke:#000000;fill:none"}
	}
	canvas.Path(string(path), style...)

	return nil
}

// Dots draws one circle per point (xs[i], ys[i]) mapped through sx and sy.
// A non-nil sr scale with a bound rs channel sizes each circle; a non-nil
// sfill scale with a bound fills channel colors it, hex-encoding color
// outputs. Points with a non-finite position are skipped.
func Dots(w io.Writer, width, height int, xs, ys []float64, sx, sy, sr, sfill *scale.Scale, rs, fills []float64, style ...string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d xs vs %d ys", ErrLengthMismatch, len(xs), len(ys))
	}
	if sr != nil && rs != nil && len(rs) != len(xs) {
		return fmt.Errorf("%w: %d radius values for %d points", ErrLengthMismatch, len(rs), len(xs))
	}
	if sfill != nil && fills != nil && len(fills) != len(xs) {
		return fmt.Errorf("%w: %d fill values for %d points", ErrLengthMismatch, len(fills), len(xs))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for i := range xs {
		px := interp.ToFloat(sx.Map(xs[i]))
		py := interp.ToFloat(sy.Map(ys[i]))
		if !isFinite(px) || !isFinite(py) {
			continue
		}

		r := float64(defaultRadius)
		if sr != nil && rs != nil {
			r = interp.ToFloat(sr.Map(rs[i]))
			if !isFinite(r) || r <= 0 {
				continue
			}
		}

		s := style
		if sfill != nil && fills != nil {
			s = append([]string{"fill:" + paint(sfill.Map(fills[i]))}, style...)
		}
		canvas.Circle(int(math.Round(px)), int(math.Round(py)), int(math.Round(r)), s...)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// paint encodes a scale output as a CSS paint value: colors hex-encode,
// strings pass through, anything else paints nothing.
func paint(v interface{}) string {
	switch c := v.(type) {
	case colorful.Color:
		return c.Clamped().Hex()
	case color.Color:
		if cf, ok := colorful.MakeColor(c); ok {
			return cf.Hex()
		}

		return "none"
	case string:
		return c
	default:
		return "none"
	}
}
