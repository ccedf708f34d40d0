// Package cli wires the dye commands together: cobra command
// definitions, theme and pattern loading, console setup, and error
// presentation. Everything user-visible that is not agent output
// happens here.
package cli

import (
	stderrors "errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/ui"
)

// Exit codes. Usage mistakes are distinguished from failures while
// doing the work, the way argparse-era shell tools behave.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// usageError marks errors caused by how the command line was written.
// They exit with ExitUsage instead of ExitError.
type usageError struct {
	err error
}

func (u *usageError) Error() string { return u.err.Error() }
func (u *usageError) Unwrap() error { return u.err }

// errUsageShown means help already went to stderr and only the exit
// code is left to set.
var errUsageShown = stderrors.New("usage shown")

// app carries the consoles and output elements the commands share.
// The zero configuration is safe for errors that happen before flag
// parsing finishes; configure upgrades it once flags are known.
type app struct {
	out      *ui.Console
	errOut   *ui.Console
	elements *ui.Elements
}

func newApp() *app {
	return &app{
		out:      ui.NewConsole(os.Stdout, false),
		errOut:   ui.NewConsole(os.Stderr, false),
		elements: ui.NoElements(),
	}
}

// configure rebuilds the consoles once flags are parsed, honoring
// --force-color, and loads the output elements from $DYE_COLORS. The
// pterm and lipgloss globals follow the stdout console so tables and
// the preview panel degrade together.
func (a *app) configure(forceColor bool) {
	a.out = ui.NewConsole(os.Stdout, forceColor)
	a.errOut = ui.NewConsole(os.Stderr, forceColor)
	a.elements = ui.LoadElements()

	if forceColor {
		pterm.EnableColor()
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else if !a.out.Colored() {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// printError writes `dye: <message>` to stderr, the program name
// styled with the error_progname element and the message with
// error_text.
func (a *app) printError(prog string, err error) {
	line := a.elements.Styled(a.errOut, "error_progname", prog+": ") +
		a.elements.Styled(a.errOut, "error_text", errors.UserMessage(err))
	a.errOut.Println(line)
}

// Main runs the CLI and returns the process exit code.
func Main(args []string) int {
	a := newApp()
	rootCmd := NewRootCmd(a)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if stderrors.Is(err, errUsageShown) {
		return ExitUsage
	}

	a.printError(rootCmd.Name(), err)

	var usage *usageError
	if stderrors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}
