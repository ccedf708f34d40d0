package agents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyeshell/dye/pkg/pattern"
	"github.com/dyeshell/dye/pkg/style"
)

// Fzf renders the FZF_DEFAULT_OPTS environment variable: command line
// options from the scope's opts table plus a --color specification
// built from the scope's styles.
type Fzf struct {
	scope *pattern.Scope
}

// fzf uses separate keys for the foreground and background halves of
// these elements; dye combines them into one style.
var fzfPairedNames = map[string][2]string{
	"text":          {"fg", "bg"},
	"current-line":  {"fg+", "bg+"},
	"selected-line": {"selected-fg", "selected-bg"},
	"preview":       {"preview-fg", "preview-bg"},
}

func (a *Fzf) Run() (string, error) {
	opts, err := a.scope.TableKey("opts")
	if err != nil {
		return "", err
	}
	var optstr strings.Builder
	for _, key := range opts.Keys() {
		v, _ := opts.Get(key)
		switch val := v.(type) {
		case string:
			fmt.Fprintf(&optstr, " %s='%s'", key, val)
		case bool:
			if val {
				fmt.Fprintf(&optstr, " %s", key)
			}
		}
	}

	var colors []string
	for _, entry := range a.scope.Styles() {
		if entry.Style.IsEmpty() {
			continue
		}
		colors = append(colors, fzfClause(entry.Name, entry.Style))
	}

	colorbase := ""
	if base, ok := a.scope.StringKey("colorbase"); ok {
		colorbase = base + ","
	}
	colorstr := ""
	if colorbase != "" || len(colors) > 0 {
		colorstr = fmt.Sprintf(" --color='%s%s'", colorbase, strings.Join(colors, ","))
	}

	varname, ok := a.scope.StringKey("environment_variable")
	if !ok {
		varname = "FZF_DEFAULT_OPTS"
	}
	return fmt.Sprintf(`export %s="%s%s"`, varname, optstr.String(), colorstr), nil
}

// fzfClause renders one style into fzf's name:color:attributes form.
// Paired names get a foreground clause and, when a background color is
// set, a second background clause with no attributes. Everything else
// is a direct fzf key where only the foreground half applies.
func fzfClause(name string, st style.Style) string {
	var clauses []string
	if pair, ok := fzfPairedNames[name]; ok {
		if st.Foreground != nil {
			clauses = append(clauses,
				fmt.Sprintf("%s:%s:%s", pair[0], fzfColor(*st.Foreground), fzfAttribs(st)))
		}
		if st.Background != nil {
			clauses = append(clauses,
				fmt.Sprintf("%s:%s", pair[1], fzfColor(*st.Background)))
		}
	} else if st.Foreground != nil {
		clauses = append(clauses,
			fmt.Sprintf("%s:%s:%s", name, fzfColor(*st.Foreground), fzfAttribs(st)))
	}
	return strings.Join(clauses, ",")
}

func fzfColor(c style.Color) string {
	switch c.Kind {
	case style.ColorDefault:
		return "-1"
	case style.ColorStandard, style.ColorExtended:
		return strconv.Itoa(int(c.Index))
	case style.ColorTrueColor:
		return c.Hex()
	}
	return ""
}

func fzfAttribs(st style.Style) string {
	attribs := "regular"
	if st.Bold {
		attribs += ":bold"
	}
	if st.Underline {
		attribs += ":underline"
	}
	if st.Reverse {
		attribs += ":reverse"
	}
	if st.Dim {
		attribs += ":dim"
	}
	if st.Italic {
		attribs += ":italic"
	}
	if st.Strike {
		attribs += ":strikethrough"
	}
	return attribs
}
