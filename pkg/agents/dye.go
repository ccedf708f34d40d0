package agents

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/pattern"
)

// Dye renders the DYE_COLORS environment variable, which dye itself
// reads back to style its own tables, comments, and error messages.
// Style definitions are emitted verbatim rather than as escape codes,
// so the next dye invocation can parse them again.
type Dye struct {
	scope *pattern.Scope
}

func (a *Dye) Run() (string, error) {
	var clauses []string
	for _, entry := range a.scope.Styles() {
		if entry.Style.IsEmpty() {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s=%s", entry.Name, entry.Def))
	}

	varname, ok := a.scope.StringKey("environment_variable")
	if !ok {
		varname = "DYE_COLORS"
	}
	return fmt.Sprintf(`export %s="%s"`, varname, strings.Join(clauses, ":")), nil
}
