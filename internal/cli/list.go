package cli

import (
	"github.com/spf13/cobra"

	"github.com/dyeshell/dye/pkg/agents"
	"github.com/dyeshell/dye/pkg/paths"
	"github.com/dyeshell/dye/pkg/ui"
)

func newAgentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: MsgAgentsShort,
		Long:  `List every agent that can render a scope, with a description of the tool it drives.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, name := range agents.Names() {
				desc, _ := agents.Describe(name)
				rows = append(rows, []string{name, desc})
			}
			return a.out.PrintTable(a.elements, []string{"Agent", "Description"}, rows)
		},
	}
}

func newElementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: MsgElementsShort,
		Long: `List the elements of dye's own output that can be styled through the
$DYE_COLORS environment variable, as in:

  DYE_COLORS="error_text=bold #ff2200:ui_border=#5f87ff"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, name := range ui.ElementNames() {
				desc, _ := ui.DescribeElement(name)
				rows = append(rows, []string{name, desc})
			}
			return a.out.PrintTable(a.elements, []string{"Element", "Description"}, rows)
		},
	}
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: MsgThemesShort,
		Long: `List the themes in the themes directory, one per line. The directory
is $DYE_DIR/themes, or the dye directory under the XDG config home
when $DYE_DIR is not set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("")
			if err != nil {
				return err
			}
			names, err := p.ThemeNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				a.out.Println(name)
			}
			return nil
		},
	}
}
