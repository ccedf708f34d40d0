package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyeshell/dye/pkg/agents"
	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		patternFile string
		themeFile   string
		noTheme     bool
		scopes      string
		comment     bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: MsgApplyShort,
		Long: `Apply renders every scope of a pattern through its agent and writes
the resulting shell commands to standard output. The output is meant
to be executed by your shell:

  source <(dye apply)`,
		Example: `  # Apply every scope of the pattern named in $DYE_PATTERN_FILE
  source <(dye apply)

  # Apply a specific pattern and theme
  source <(dye apply -f ocean.toml -t dracula.toml)

  # Only apply two scopes, with a comment above each
  source <(dye apply -s fzf,iterm --comment)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(themeFile, noTheme, false)
			if err != nil {
				return err
			}
			pat, err := loadPattern(patternFile, false, true, theme)
			if err != nil {
				return err
			}

			toApply := pat.ScopeNames()
			if scopes != "" {
				toApply = strings.Split(scopes, ",")
			}

			for _, name := range toApply {
				scope, ok := pat.Scope(name)
				if !ok {
					return errors.Newf(errors.ErrNotFound, "%s: no such scope", name)
				}
				agent, err := agents.For(scope)
				if err != nil {
					return err
				}
				output, err := agent.Run()
				if err != nil {
					return err
				}
				if comment {
					a.out.Println(commentLine(a, scope))
				}
				if output != "" {
					a.out.Println(output)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternFile, "pattern-file", "f", "", MsgFlagPatternFile)
	cmd.Flags().StringVarP(&themeFile, "theme-file", "t", "", MsgFlagThemeFile)
	cmd.Flags().BoolVar(&noTheme, "no-theme", false, MsgFlagNoTheme)
	cmd.Flags().StringVarP(&scopes, "scope", "s", "", MsgFlagScope)
	cmd.Flags().BoolVarP(&comment, "comment", "c", false, MsgFlagComment)
	cmd.MarkFlagsMutuallyExclusive("theme-file", "no-theme")

	return cmd
}

// commentLine renders the marker apply writes above a scope's output
// when --comment is given. The leading `# ` takes the comment_begin
// element, the rest comment_text.
func commentLine(a *app, scope *pattern.Scope) string {
	return a.elements.Styled(a.out, "comment_begin", "# ") +
		a.elements.Styled(a.out, "comment_text",
			fmt.Sprintf("scope '%s' rendered by agent '%s'", scope.Name, scope.AgentName))
}
