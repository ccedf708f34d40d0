package style

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorSequence(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		bg     bool
		expect string
	}{
		{"default foreground", DefaultColor(), false, "39"},
		{"default background", DefaultColor(), true, "49"},
		{"standard red foreground", Standard(1), false, "31"},
		{"standard red background", Standard(1), true, "41"},
		{"bright palette foreground", Standard(12), false, "94"},
		{"bright palette background", Standard(12), true, "104"},
		{"extended foreground", Extended(208), false, "38;5;208"},
		{"extended background", Extended(208), true, "48;5;208"},
		{"truecolor foreground", TrueColor(255, 204, 0), false, "38;2;255;204;0"},
		{"truecolor background", TrueColor(17, 34, 51), true, "48;2;17;34;51"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.color.Sequence(tt.bg))
		})
	}
}

// Palette indexes must decompose through the same tables termenv uses
// for terminal rendering.
func TestColorRGB(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		r, g, b uint8
	}{
		{"truecolor passthrough", TrueColor(18, 52, 86), 18, 52, 86},
		{"default is black", DefaultColor(), 0, 0, 0},
		{"standard maroon", Standard(1), 128, 0, 0},
		{"standard bright white", Standard(15), 255, 255, 255},
		{"extended grey", Extended(244), 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.color.RGB()
			assert.Equal(t, tt.r, r)
			assert.Equal(t, tt.g, g)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ffb86c", TrueColor(0xff, 0xb8, 0x6c).Hex())
	assert.Equal(t, "#800000", Standard(1).Hex())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FFCC00")
	require.NoError(t, err)
	assert.Equal(t, TrueColor(0xff, 0xcc, 0x00), c)

	c, err = ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, ColorTrueColor, c.Kind)

	_, err = ParseHex("#nothex")
	assert.Error(t, err)
}

func TestColorTerminal(t *testing.T) {
	assert.Equal(t, termenv.ANSIColor(3), Standard(3).Terminal())
	assert.Equal(t, termenv.ANSI256Color(100), Extended(100).Terminal())
	assert.Equal(t, termenv.RGBColor("#ff0000"), TrueColor(255, 0, 0).Terminal())
	assert.Equal(t, termenv.NoColor{}, DefaultColor().Terminal())
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color  Color
		expect string
	}{
		{DefaultColor(), "default"},
		{Standard(2), "green"},
		{Standard(10), "bright_green"},
		{Extended(208), "color(208)"},
		{TrueColor(0xbd, 0x93, 0xf9), "#bd93f9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, tt.color.String())
	}
}
