package agents

import (
	"strings"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
)

// Shell emits arbitrary commands from the scope's command table, one
// per line, exactly as written. No quoting, no validation: this is
// the escape hatch for anything dye has no agent for.
type Shell struct {
	scope *pattern.Scope
}

func (a *Shell) Run() (string, error) {
	commands, err := a.scope.TableKey("command")
	if err != nil {
		return "", err
	}
	var out []string
	for _, name := range commands.Keys() {
		cmd, ok := commands.String(name)
		if !ok {
			return "", errors.Syntaxf(
				"scope '%s' requires command '%s' to be a string", a.scope.Name, name)
		}
		out = append(out, cmd)
	}
	return strings.Join(out, "\n"), nil
}
