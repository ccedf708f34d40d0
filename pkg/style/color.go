package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/dyeshell/dye/pkg/errors"
)

// ColorKind discriminates the variants of Color.
type ColorKind uint8

const (
	// ColorDefault inherits the terminal's natural color.
	ColorDefault ColorKind = iota
	// ColorStandard is a 16-color palette index (0-15).
	ColorStandard
	// ColorExtended is a 256-color palette index (0-255).
	ColorExtended
	// ColorTrueColor is a 24-bit RGB triplet.
	ColorTrueColor
)

// Color is a resolved terminal color. The zero value is the Default
// variant; use the constructors for the others.
type Color struct {
	Kind    ColorKind
	Index   uint8 // palette index for Standard and Extended
	R, G, B uint8 // channels for TrueColor
}

// DefaultColor returns the terminal-default color variant.
func DefaultColor() Color {
	return Color{Kind: ColorDefault}
}

// Standard returns a 16-color palette color. n must be 0-15.
func Standard(n uint8) Color {
	return Color{Kind: ColorStandard, Index: n}
}

// Extended returns a 256-color palette color.
func Extended(n uint8) Color {
	return Color{Kind: ColorExtended, Index: n}
}

// TrueColor returns a 24-bit color.
func TrueColor(r, g, b uint8) Color {
	return Color{Kind: ColorTrueColor, R: r, G: g, B: b}
}

// ParseHex parses "#rgb" or "#rrggbb" into a TrueColor.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Syntaxf("unable to parse color '%s'", s)
	}
	r, g, b := c.RGB255()
	return TrueColor(r, g, b), nil
}

// Terminal converts the color to its termenv representation for
// rendering on the current terminal. The Default variant converts to
// termenv.NoColor.
func (c Color) Terminal() termenv.Color {
	switch c.Kind {
	case ColorStandard:
		return termenv.ANSIColor(c.Index)
	case ColorExtended:
		return termenv.ANSI256Color(c.Index)
	case ColorTrueColor:
		return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	default:
		return termenv.NoColor{}
	}
}

// Sequence returns the color's SGR parameter fragment, e.g. "31",
// "38;5;208", or "48;2;255;0;0" when bg is true. The Default variant
// yields the reset parameters "39"/"49".
func (c Color) Sequence(bg bool) string {
	if c.Kind == ColorDefault {
		if bg {
			return "49"
		}
		return "39"
	}
	return c.Terminal().Sequence(bg)
}

// RGB decomposes the color into 8-bit channels. Palette indexes
// resolve through the standard xterm palette; the Default variant
// decomposes to black, matching what the tab-color and palette escape
// sequences expect when no concrete color was given.
func (c Color) RGB() (r, g, b uint8) {
	switch c.Kind {
	case ColorTrueColor:
		return c.R, c.G, c.B
	case ColorDefault:
		return 0, 0, 0
	default:
		return termenv.ConvertToRGB(c.Terminal()).RGB255()
	}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer using the parseable definition forms.
func (c Color) String() string {
	switch c.Kind {
	case ColorStandard:
		if int(c.Index) < len(ansiNames) {
			return ansiNames[c.Index]
		}
		return fmt.Sprintf("color(%d)", c.Index)
	case ColorExtended:
		return fmt.Sprintf("color(%d)", c.Index)
	case ColorTrueColor:
		return c.Hex()
	default:
		return "default"
	}
}
