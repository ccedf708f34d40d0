package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/dyeshell/dye/internal/version"
	"github.com/dyeshell/dye/pkg/cobrax/topics"
	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/logging"
)

//go:embed docs
var docsFS embed.FS

// helpTopics returns the embedded help topic tree.
func helpTopics() fs.FS {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return nil
	}
	return sub
}

// NewRootCmd creates and returns the root command
func NewRootCmd(a *app) *cobra.Command {
	var (
		verbosity  int
		forceColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "dye",
		Short: MsgRootShort,
		Long: `dye turns one declarative description of your colors into the
configuration every command line tool expects: LS_COLORS for ls,
EZA_COLORS for eza, --color options for fzf, escape sequences for
iTerm, plain environment variables for everything else.

Write a theme (named colors and styles) and a pattern (how your tools
use them), then put this in your shell startup:

  source <(dye apply)`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			a.configure(forceColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{errors.Newf(errors.ErrInvalidInput,
					"%s: unknown command", args[0])}
			}
			// Bare `dye` is a usage error, so help goes to stderr.
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Help()
			return errUsageShown
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&forceColor, "force-color", "F", false, MsgFlagForceColor)

	// Flag mistakes are usage errors, not runtime failures
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	// Add all commands
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newPreviewCmd(a))
	rootCmd.AddCommand(newPrintCmd(a))
	rootCmd.AddCommand(newAgentsCmd(a))
	rootCmd.AddCommand(newElementsCmd(a))
	rootCmd.AddCommand(newThemesCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help from the embedded docs tree. Scanning an
	// embedded FS cannot fail at runtime, and logging is not set up
	// yet, so the error is dropped.
	_ = topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dye version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(dye completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ dye completion bash > /etc/bash_completion.d/dye
  # macOS:
  $ dye completion bash > /usr/local/etc/bash_completion.d/dye

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ dye completion zsh > "${fpath[1]}/_dye"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dye completion fish | source
  # To load completions for each session, execute once:
  $ dye completion fish > ~/.config/fish/completions/dye.fish

PowerShell:
  PS> dye completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> dye completion powershell > dye.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man [directory]",
		Short: MsgManShort,
		Long:  `Generate man pages for dye and write them to the given directory (default /tmp).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "/tmp"
			if len(args) > 0 {
				dir = args[0]
			}
			header := &doc.GenManHeader{
				Title:   "DYE",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
}
