// Package agents holds the translators that turn one resolved scope
// into output for a specific target tool: LS_COLORS for GNU ls,
// EZA_COLORS for eza, FZF_DEFAULT_OPTS for fzf, escape sequences for
// iTerm, and plain environment variable exports. Agents are pure:
// the same scope always renders the same bytes, and the caller decides
// where the text goes.
package agents

import (
	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
	"github.com/dyeshell/dye/pkg/registry"
)

// Agent renders one scope into text for the user's shell to consume.
type Agent interface {
	Run() (string, error)
}

// Factory binds an agent to one scope.
type Factory func(scope *pattern.Scope) Agent

// Canonical agent names, as written in the `agent` key of a scope.
const (
	EnvironmentVariablesName = "environment_variables"
	GnuLsName                = "gnu_ls"
	EzaName                  = "eza"
	FzfName                  = "fzf"
	ItermName                = "iterm"
	DyeName                  = "dye"
	ShellName                = "shell"
)

// entry pairs a factory with the one-line description that
// `dye agents` shows next to each name.
type entry struct {
	factory     Factory
	description string
}

var agentRegistry = registry.New[entry]()

func init() {
	registry.MustRegister(agentRegistry, EnvironmentVariablesName, entry{
		description: "Export and unset environment variables",
		factory:     func(s *pattern.Scope) Agent { return &EnvironmentVariables{scope: s} },
	})
	registry.MustRegister(agentRegistry, GnuLsName, entry{
		description: "Create LS_COLORS environment variable for use with GNU ls",
		factory:     func(s *pattern.Scope) Agent { return &GnuLs{scope: s} },
	})
	registry.MustRegister(agentRegistry, EzaName, entry{
		description: "Create EZA_COLORS environment variable for use with ls replacement eza",
		factory:     func(s *pattern.Scope) Agent { return &Eza{scope: s} },
	})
	registry.MustRegister(agentRegistry, FzfName, entry{
		description: "Set fzf options and environment variables",
		factory:     func(s *pattern.Scope) Agent { return &Fzf{scope: s} },
	})
	registry.MustRegister(agentRegistry, ItermName, entry{
		description: "Send escape sequences to iTerm terminal emulator",
		factory:     func(s *pattern.Scope) Agent { return &Iterm{scope: s} },
	})
	registry.MustRegister(agentRegistry, DyeName, entry{
		description: "Set DYE_COLORS environment variable to style dye's own output",
		factory:     func(s *pattern.Scope) Agent { return &Dye{scope: s} },
	})
	registry.MustRegister(agentRegistry, ShellName, entry{
		description: "Run arbitrary shell commands",
		factory:     func(s *pattern.Scope) Agent { return &Shell{scope: s} },
	})
}

// For looks up the agent a scope names and binds it to the scope.
func For(scope *pattern.Scope) (Agent, error) {
	e, err := agentRegistry.Get(scope.AgentName)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnknownAgent,
			"unknown agent '%s' while processing scope '%s'", scope.AgentName, scope.Name)
	}
	return e.factory(scope), nil
}

// Names returns the registered agent names, sorted.
func Names() []string {
	return agentRegistry.List()
}

// Describe returns the one-line description for a registered agent.
func Describe(name string) (string, bool) {
	e, err := agentRegistry.Get(name)
	if err != nil {
		return "", false
	}
	return e.description, true
}
