package agents

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
)

// EnvironmentVariables unsets and exports environment variables
// straight from the scope configuration, with no color translation.
// Unsets come first so a variable can be cleared and re-exported in
// one scope without ordering surprises.
type EnvironmentVariables struct {
	scope *pattern.Scope
}

func (a *EnvironmentVariables) Run() (string, error) {
	var out []string

	unsets, err := a.scope.StringListKey("unset")
	if err != nil {
		return "", err
	}
	for _, name := range unsets {
		out = append(out, fmt.Sprintf("unset %s", name))
	}

	exports, err := a.scope.TableKey("export")
	if err != nil {
		return "", err
	}
	for _, name := range exports.Keys() {
		value, ok := exports.String(name)
		if !ok {
			return "", errors.Syntaxf(
				"scope '%s' requires exported variable '%s' to be a string", a.scope.Name, name)
		}
		out = append(out, fmt.Sprintf(`export %s="%s"`, name, value))
	}

	return strings.Join(out, "\n"), nil
}
