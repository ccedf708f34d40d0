package agents

import (
	"fmt"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/style"
)

// codePair maps one friendly style name to the native code the target
// tool actually reads. The lister agents keep their pairs in slices so
// clear_builtin processing walks them in a stable order.
type codePair struct {
	friendly string
	native   string
}

// codeMap builds the lookup table for lsColorsFromStyle: every
// friendly name maps to its native code, and every native code maps
// to itself, so users may write either form.
func codeMap(pairs []codePair) map[string]string {
	m := make(map[string]string, len(pairs)*2)
	for _, p := range pairs {
		m[p.friendly] = p.native
		m[p.native] = p.native
	}
	return m
}

// lsColorsFromStyle resolves one style entry into an LS_COLORS type
// fragment. name may be a friendly name ("directory"), a native code
// ("di"), or, when allowUnknown is true, anything at all (eza accepts
// arbitrary extension globs). The ANSI code is "0" when the style's
// foreground is the terminal default, otherwise the style's SGR
// parameter string, which the target tool splices into its own escape
// sequences. An empty style resolves to two empty strings so callers
// can skip the entry.
func lsColorsFromStyle(name string, st style.Style, codes map[string]string, scopeName string, allowUnknown bool) (string, string, error) {
	if st.IsEmpty() {
		return "", "", nil
	}
	mapname, ok := codes[name]
	if !ok {
		if !allowUnknown {
			return "", "", errors.Syntaxf(
				"unknown style '%s' while processing scope '%s'", name, scopeName)
		}
		mapname = name
	}
	var ansicodes string
	if st.Foreground != nil && st.Foreground.Kind == style.ColorDefault {
		ansicodes = "0"
	} else {
		ansicodes = st.SGR()
	}
	return mapname, fmt.Sprintf("%s=%s", mapname, ansicodes), nil
}
