package ui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
)

func previewPattern(t *testing.T) (*pattern.Theme, *pattern.Pattern) {
	t.Helper()
	theme, err := pattern.LoadTheme([]byte(`
description = "a dark theme"
type = "dark"
version = "2.0"

[colors]
background = "#282a36"
orange = "#ffb86c"

[styles]
text = "#f8f8f2 on {{ colors.background }}"
`), pattern.FormatTOML, "themes/dracula.toml")
	require.NoError(t, err)

	p, err := pattern.LoadPattern([]byte(`
description = "my pattern"

[colors]
orange = "#ff9000"

[styles]
accent = "bold {{ colors.orange }}"
ghost = ""
`), pattern.FormatTOML, "pattern.toml", theme)
	require.NoError(t, err)
	return theme, p
}

func TestPreviewContents(t *testing.T) {
	theme, p := previewPattern(t)
	var out bytes.Buffer
	c := newConsole(&out, false, termenv.Ascii)

	panel, err := Preview(c, NoElements(), theme, p)
	require.NoError(t, err)

	assert.Contains(t, panel, "Theme file: themes/dracula.toml")
	assert.Contains(t, panel, `description = "a dark theme"`)
	assert.Contains(t, panel, "Pattern file: pattern.toml")
	assert.Contains(t, panel, "[colors]")
	assert.Contains(t, panel, "[styles]")

	// the pattern overrides orange, so its definition comes from there
	assert.Contains(t, panel, `# from pattern`)
	assert.Contains(t, panel, `"#ff9000"`)
	assert.Contains(t, panel, `# from theme`)
	assert.Contains(t, panel, `"#282a36"`)

	// resolved style definitions, not the template text
	assert.Contains(t, panel, `"bold #ff9000"`)

	// empty styles show the no-definition marker
	assert.Contains(t, panel, "∅ ghost")

	// rounded border from lipgloss
	assert.Contains(t, panel, "╭")
	assert.Contains(t, panel, "╰")
}

func TestPreviewNoThemeFile(t *testing.T) {
	p, err := pattern.LoadPattern([]byte(`
[styles]
text = "default"
`), pattern.FormatTOML, "pattern.toml", nil)
	require.NoError(t, err)

	var out bytes.Buffer
	c := newConsole(&out, false, termenv.Ascii)

	panel, err := Preview(c, NoElements(), pattern.EmptyTheme(), p)
	require.NoError(t, err)
	assert.Contains(t, panel, "No theme file.")
}

func TestPreviewRequiresTextStyle(t *testing.T) {
	p, err := pattern.LoadPattern([]byte(`
[styles]
accent = "bold"
`), pattern.FormatTOML, "pattern.toml", nil)
	require.NoError(t, err)

	var out bytes.Buffer
	c := newConsole(&out, false, termenv.Ascii)

	_, err = Preview(c, NoElements(), pattern.EmptyTheme(), p)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
	assert.Equal(t, "no 'text' style defined", errors.UserMessage(err))
}
