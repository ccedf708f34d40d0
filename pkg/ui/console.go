package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/dyeshell/dye/pkg/style"
)

// Console writes to one output stream and knows whether that stream
// should receive color. Agent output always goes through the stdout
// console unstyled; the styling methods exist for dye's own tables,
// comments, and error messages.
type Console struct {
	out     io.Writer
	colored bool
	profile termenv.Profile
}

// NewConsole builds a console for a file, detecting color capability
// from the environment and the file itself. forceColor overrides the
// detection, which is what the --force-color flag does so output
// stays styled through pipes like `dye preview | less -R`. NO_COLOR
// beats both.
func NewConsole(f *os.File, forceColor bool) *Console {
	colored := forceColor || DetectFormat(f) == FormatTerminal
	if os.Getenv("NO_COLOR") != "" {
		colored = false
	}
	profile := termenv.ColorProfile()
	if forceColor && profile == termenv.Ascii {
		profile = termenv.TrueColor
	}
	return &Console{out: f, colored: colored, profile: profile}
}

// newConsole builds a console with explicit capabilities, for tests.
func newConsole(out io.Writer, colored bool, profile termenv.Profile) *Console {
	return &Console{out: out, colored: colored, profile: profile}
}

// Colored reports whether this console emits escape sequences.
func (c *Console) Colored() bool {
	return c.colored
}

// Writer returns the underlying output stream.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Print writes its arguments to the console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Println writes its arguments to the console followed by a newline.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes a formatted string to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Styled renders text in the given style, downgrading colors to what
// the terminal supports. On an uncolored console the text comes back
// unchanged.
func (c *Console) Styled(text string, st style.Style) string {
	if !c.colored || st.IsEmpty() {
		return text
	}
	// bind to this console's profile, not the process-wide detected
	// one, so --force-color works when stdout is not a terminal
	s := c.profile.String(text)
	if st.Foreground != nil && st.Foreground.Kind != style.ColorDefault {
		s = s.Foreground(c.profile.Convert(st.Foreground.Terminal()))
	}
	if st.Background != nil && st.Background.Kind != style.ColorDefault {
		s = s.Background(c.profile.Convert(st.Background.Terminal()))
	}
	if st.Bold {
		s = s.Bold()
	}
	if st.Dim {
		s = s.Faint()
	}
	if st.Italic {
		s = s.Italic()
	}
	if st.Underline {
		s = s.Underline()
	}
	if st.Reverse {
		s = s.Reverse()
	}
	if st.Strike {
		s = s.CrossOut()
	}
	return s.String()
}
