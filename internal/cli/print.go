package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	var (
		patternFile string
		noPattern   bool
		themeFile   string
		noTheme     bool
		styleName   string
		noNewline   bool
	)

	cmd := &cobra.Command{
		Use:   "print [strings...]",
		Short: MsgPrintShort,
		Long: `Print writes its arguments to standard output, joined by spaces and
rendered in a named style from the theme or pattern. Use it in shell
prompts and scripts so your colors come from one place. A style name
that is not defined prints the text unstyled.`,
		Example: `  # Print a message in the pattern's 'warning' style
  dye print -s warning "file not found"

  # Without a trailing newline, for building up prompt strings
  dye print -n -s prompt "$ "`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(themeFile, noTheme, false)
			if err != nil {
				return err
			}
			pat, err := loadPattern(patternFile, noPattern, false, theme)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if styleName != "" {
				if entry, ok := pat.Style(styleName); ok {
					text = a.out.Styled(text, entry.Style)
				}
			}

			if noNewline {
				a.out.Print(text)
			} else {
				a.out.Println(text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternFile, "pattern-file", "f", "", MsgFlagPatternFile)
	cmd.Flags().BoolVar(&noPattern, "no-pattern", false, MsgFlagNoPattern)
	cmd.Flags().StringVarP(&themeFile, "theme-file", "t", "", MsgFlagThemeFile)
	cmd.Flags().BoolVar(&noTheme, "no-theme", false, MsgFlagNoTheme)
	cmd.Flags().StringVarP(&styleName, "style", "s", "", MsgFlagStyle)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.MarkFlagsMutuallyExclusive("pattern-file", "no-pattern")
	cmd.MarkFlagsMutuallyExclusive("theme-file", "no-theme")

	return cmd
}
