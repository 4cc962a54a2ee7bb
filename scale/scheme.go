package scale

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

// SchemeFunc is the categorical color-scheme provider capability: given a
// scheme name and a count, it returns that many discrete colors. The
// quantile and threshold builders consume it for default-range synthesis;
// Options.SchemeFunc overrides the default provider.
type SchemeFunc func(name string, n int) ([]color.Color, error)

// brewerMin is the smallest variant the ColorBrewer palettes ship with;
// smaller requests fetch it and truncate.
const brewerMin = 3

// Scheme is the default SchemeFunc, backed by the ColorBrewer palettes.
// Names are the Brewer palette names ("RdYlGn", "Set2", "Blues", …).
//
// Errors:
//   - ErrUnknownScheme — no palette has the given name, or the count is
//     outside what the palette provides.
func Scheme(name string, n int) ([]color.Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %q with %d colors", ErrUnknownScheme, name, n)
	}

	ask := n
	if ask < brewerMin {
		ask = brewerMin
	}

	p, err := brewer.GetPalette(brewer.TypeAny, name, ask)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%v)", ErrUnknownScheme, name, err)
	}

	return p.Colors()[:n], nil
}
