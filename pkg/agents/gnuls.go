package agents

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/pattern"
	"github.com/dyeshell/dye/pkg/style"
)

// GnuLs renders the LS_COLORS environment variable for GNU ls.
type GnuLs struct {
	scope *pattern.Scope
}

// gnuLsBaseCodes lists the builtin entries GNU ls knows about. Users
// may write the friendly name or the native code.
var gnuLsBaseCodes = []codePair{
	{"text", "no"},
	{"file", "fi"},
	{"directory", "di"},
	{"symlink", "ln"},
	{"multi_hard_link", "mh"},
	{"pipe", "pi"},
	{"socket", "so"},
	{"door", "do"},
	{"block_device", "bd"},
	{"character_device", "cd"},
	{"broken_symlink", "or"},
	{"missing_symlink_target", "mi"},
	{"setuid", "su"},
	{"setgid", "sg"},
	{"sticky", "st"},
	{"other_writable", "ow"},
	{"sticky_other_writable", "tw"},
	{"executable_file", "ex"},
	{"file_with_capability", "ca"},
}

var gnuLsCodes = codeMap(gnuLsBaseCodes)

func (a *GnuLs) Run() (string, error) {
	var outlist []string
	havecodes := make(map[string]bool)

	clearBuiltin, _, err := a.scope.BoolKey("clear_builtin")
	if err != nil {
		return "", err
	}

	for _, entry := range a.scope.Styles() {
		if entry.Style.IsEmpty() {
			continue
		}
		code, fragment, err := lsColorsFromStyle(
			entry.Name, entry.Style, gnuLsCodes, a.scope.Name, false)
		if err != nil {
			return "", err
		}
		havecodes[code] = true
		outlist = append(outlist, fragment)
	}

	if clearBuiltin {
		// neutralize every builtin the user did not override, so ls
		// falls back to the terminal default instead of its hardcoded
		// colors
		fg := style.DefaultColor()
		neutral := style.Style{Foreground: &fg}
		for _, pair := range gnuLsBaseCodes {
			if havecodes[pair.native] {
				continue
			}
			_, fragment, err := lsColorsFromStyle(
				pair.friendly, neutral, gnuLsCodes, a.scope.Name, false)
			if err != nil {
				return "", err
			}
			outlist = append(outlist, fragment)
		}
	}

	varname, ok := a.scope.StringKey("environment_variable")
	if !ok {
		varname = "LS_COLORS"
	}

	// always set the variable, even to "": a previous invocation may
	// have left a value in the environment and it must not leak into
	// this one
	return fmt.Sprintf(`export %s="%s"`, varname, strings.Join(outlist, ":")), nil
}
