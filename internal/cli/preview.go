package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/ui"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		patternFile string
		noPattern   bool
		themeFile   string
		noTheme     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: MsgPreviewShort,
		Long: `Preview shows every color and style of a theme and pattern in a
panel, each one rendered in its own definition, so you can check a
file without applying it. A 'text' style must be defined; it sets the
panel's foreground and background.`,
		Example: `  # Preview the theme and pattern from the environment
  dye preview

  # Preview a theme by itself
  dye preview -t dracula.toml --no-pattern`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme(themeFile, noTheme, false)
			if err != nil {
				return err
			}
			pat, err := loadPattern(patternFile, noPattern, false, theme)
			if err != nil {
				return err
			}

			if theme.IsEmpty() && pat.Filename == "" {
				return errors.New(errors.ErrInvalidInput, "nothing to preview")
			}

			panel, err := ui.Preview(a.out, a.elements, theme, pat)
			if err != nil {
				return err
			}
			a.out.Println(panel)
			return nil
		},
	}

	cmd.Flags().StringVarP(&patternFile, "pattern-file", "f", "", MsgFlagPatternFile)
	cmd.Flags().BoolVar(&noPattern, "no-pattern", false, MsgFlagNoPattern)
	cmd.Flags().StringVarP(&themeFile, "theme-file", "t", "", MsgFlagThemeFile)
	cmd.Flags().BoolVar(&noTheme, "no-theme", false, MsgFlagNoTheme)
	cmd.MarkFlagsMutuallyExclusive("pattern-file", "no-pattern")
	cmd.MarkFlagsMutuallyExclusive("theme-file", "no-theme")

	return cmd
}
