package style

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/errors"
)

// ansiNames indexes the 16-color palette by its conventional names.
var ansiNames = []string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

var attributeWords = map[string]func(*Style){
	"bold":          func(s *Style) { s.Bold = true },
	"dim":           func(s *Style) { s.Dim = true },
	"italic":        func(s *Style) { s.Italic = true },
	"underline":     func(s *Style) { s.Underline = true },
	"reverse":       func(s *Style) { s.Reverse = true },
	"strike":        func(s *Style) { s.Strike = true },
	"strikethrough": func(s *Style) { s.Strike = true },
}

// ParseColor parses a single color word: "default", one of the 16
// palette names, "color(n)" for 0-255, "#rgb"/"#rrggbb" hex, or
// "rgb(r,g,b)".
func ParseColor(word string) (Color, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	switch {
	case word == "default":
		return DefaultColor(), nil
	case strings.HasPrefix(word, "#"):
		return ParseHex(word)
	case strings.HasPrefix(word, "color(") && strings.HasSuffix(word, ")"):
		var n int
		if _, err := fmt.Sscanf(word, "color(%d)", &n); err != nil || n < 0 || n > 255 {
			return Color{}, errors.Syntaxf("unable to parse color '%s'", word)
		}
		if n < 16 {
			return Standard(uint8(n)), nil
		}
		return Extended(uint8(n)), nil
	case strings.HasPrefix(word, "rgb(") && strings.HasSuffix(word, ")"):
		var r, g, b int
		if _, err := fmt.Sscanf(word, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return Color{}, errors.Syntaxf("unable to parse color '%s'", word)
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return Color{}, errors.Syntaxf("unable to parse color '%s'", word)
		}
		return TrueColor(uint8(r), uint8(g), uint8(b)), nil
	default:
		for i, name := range ansiNames {
			if word == name {
				return Standard(uint8(i)), nil
			}
		}
		return Color{}, errors.Syntaxf("unable to parse color '%s'", word)
	}
}

// ParseStyle parses a style definition string as written in theme and
// pattern files, e.g. "bold #ffcc00 on color(17)". Words are separated
// by whitespace; "on" switches from foreground to background; "none"
// or an empty string yields the empty style. Commas between words are
// tolerated. An unrecognized word fails with a syntax error.
func ParseStyle(def string) (Style, error) {
	var s Style

	def = strings.TrimSpace(def)
	if def == "" || def == "none" {
		return s, nil
	}

	background := false
	for _, word := range strings.Fields(strings.ReplaceAll(def, ",", " ")) {
		lower := strings.ToLower(word)

		if lower == "on" {
			background = true
			continue
		}
		if set, ok := attributeWords[lower]; ok {
			set(&s)
			continue
		}

		color, err := ParseColor(lower)
		if err != nil {
			return Style{}, errors.Syntaxf("unable to parse style '%s': unknown word '%s'", def, word)
		}
		if background {
			s.Background = &color
		} else {
			s.Foreground = &color
		}
	}

	return s, nil
}
