package agents

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
	"github.com/dyeshell/dye/pkg/style"
)

// Iterm renders iTerm proprietary escape sequences, wrapped in
// builtin echo commands so the shell can emit them when it sources
// our output. The whole sequence is assembled in memory and returned
// as one unit; on error nothing reaches the terminal, so a half
// written control sequence can never corrupt it.
type Iterm struct {
	scope *pattern.Scope
}

var itermCursorShapes = map[string]string{
	"block":        "0",
	"box":          "0",
	"vertical_bar": "1",
	"vertical":     "1",
	"bar":          "1",
	"pipe":         "1",
	"underline":    "2",
}

func (a *Iterm) Run() (string, error) {
	var out []string
	out = a.profile(out)
	out = a.tab(out)
	out = a.palette(out, "foreground", "fg")
	out = a.palette(out, "background", "bg")
	out, err := a.cursorShape(out)
	if err != nil {
		return "", err
	}
	// iterm has curbg and curfg color codes, but curfg is a noop
	out = a.palette(out, "cursor", "curbg")
	return strings.Join(out, "\n"), nil
}

// profile switches iTerm to a named profile.
func (a *Iterm) profile(out []string) []string {
	profile, ok := a.scope.StringKey("profile")
	if !ok {
		return out
	}
	return append(out, fmt.Sprintf(`builtin echo -en "\e]1337;SetProfile=%s\a"`, profile))
}

// tab sets the tab or window title background color. A default
// foreground resets the tab back to whatever the profile defines;
// anything else decomposes into three brightness commands, one per
// channel.
func (a *Iterm) tab(out []string) []string {
	entry, ok := a.scope.Style("tab")
	if !ok || entry.Style.Foreground == nil {
		return out
	}
	fg := *entry.Style.Foreground
	if fg.Kind == style.ColorDefault {
		return append(out, `builtin echo -en "\e]6;1;bg;*;default\a"`)
	}
	r, g, b := fg.RGB()
	return append(out,
		fmt.Sprintf(`builtin echo -en "\e]6;1;bg;red;brightness;%d\a"`, r),
		fmt.Sprintf(`builtin echo -en "\e]6;1;bg;green;brightness;%d\a"`, g),
		fmt.Sprintf(`builtin echo -en "\e]6;1;bg;blue;brightness;%d\a"`, b),
	)
}

// palette points one of iTerm's palette slots at a style's foreground
// color.
func (a *Iterm) palette(out []string, styleName, itermKey string) []string {
	entry, ok := a.scope.Style(styleName)
	if !ok || entry.Style.Foreground == nil {
		return out
	}
	hex := strings.TrimPrefix(entry.Style.Foreground.Hex(), "#")
	return append(out, fmt.Sprintf(`builtin echo -en "\e]1337;SetColors=%s=%s\a"`, itermKey, hex))
}

// cursorShape handles the cursor configuration key. The value
// "profile" restores the profile's cursor; the shape aliases map to
// iTerm's numeric shapes; anything else is the user's mistake.
func (a *Iterm) cursorShape(out []string) ([]string, error) {
	cursor, _ := a.scope.StringKey("cursor")
	if cursor == "" {
		return out, nil
	}
	if cursor == "profile" {
		return append(out, `builtin echo -en "\e[0q"`), nil
	}
	if shape, ok := itermCursorShapes[cursor]; ok {
		return append(out, fmt.Sprintf(`builtin echo -en "\e]1337;CursorShape=%s\a"`, shape)), nil
	}
	return nil, errors.Syntaxf(
		"unknown cursor '%s' while processing scope '%s'", cursor, a.scope.Name)
}
