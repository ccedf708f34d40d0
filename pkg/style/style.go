package style

import "strings"

// Style is a resolved style value: optional foreground and background
// colors plus boolean text attributes. A nil color pointer means the
// style does not set that color, which is different from setting it to
// the Default variant.
type Style struct {
	Foreground *Color
	Background *Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
	Reverse    bool
	Strike     bool
}

// IsEmpty reports whether the style sets nothing at all. Agents treat
// empty styles as "emit nothing for this entry".
func (s Style) IsEmpty() bool {
	return s.Foreground == nil && s.Background == nil &&
		!s.Bold && !s.Dim && !s.Italic && !s.Underline && !s.Reverse && !s.Strike
}

// SGR returns the style's ANSI Select Graphic Rendition parameter
// list, semicolon-joined: attributes in ascending code order, then the
// foreground, then the background. This string is consumed verbatim by
// LS_COLORS-family variables, so it must match what a conforming ANSI
// renderer emits.
func (s Style) SGR() string {
	var params []string
	if s.Bold {
		params = append(params, "1")
	}
	if s.Dim {
		params = append(params, "2")
	}
	if s.Italic {
		params = append(params, "3")
	}
	if s.Underline {
		params = append(params, "4")
	}
	if s.Reverse {
		params = append(params, "7")
	}
	if s.Strike {
		params = append(params, "9")
	}
	if s.Foreground != nil {
		params = append(params, s.Foreground.Sequence(false))
	}
	if s.Background != nil {
		params = append(params, s.Background.Sequence(true))
	}
	return strings.Join(params, ";")
}

// Render wraps text in the style's escape sequence. Empty styles
// return the text unchanged.
func (s Style) Render(text string) string {
	if s.IsEmpty() {
		return text
	}
	return "\x1b[" + s.SGR() + "m" + text + "\x1b[0m"
}
