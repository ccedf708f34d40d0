package pattern

import (
	"os"

	"github.com/dyeshell/dye/internal/version"
	"github.com/dyeshell/dye/pkg/errors"
)

// Theme holds the reusable half of a configuration: named colors and
// styles that patterns reference and may override. Definitions stay
// raw here; they resolve against templates when a pattern is built.
type Theme struct {
	Filename    string
	Description string
	Type        string
	Version     string
	RequiresDye string

	Colors *Table
	Styles *Table
}

// EmptyTheme returns a theme with no colors or styles, used when the
// user passes --no-theme or no theme file is configured.
func EmptyTheme() *Theme {
	return &Theme{Colors: NewTable(), Styles: NewTable()}
}

// IsEmpty reports whether the theme came from nowhere and defines
// nothing. Preview uses this to tell "no theme" from a loaded one.
func (t *Theme) IsEmpty() bool {
	return t.Filename == "" && t.Colors.Len() == 0 && t.Styles.Len() == 0
}

// LoadTheme parses theme data. The filename is only used in messages
// and may be empty.
func LoadTheme(data []byte, format Format, filename string) (*Theme, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "unable to parse theme '%s'", filename)
	}
	theme := &Theme{Filename: filename}
	theme.Description, _ = doc.String("description")
	theme.Type, _ = doc.String("type")
	theme.Version, _ = doc.String("version")
	theme.RequiresDye, _ = doc.String("requires_dye")
	if theme.Colors = doc.Table("colors"); theme.Colors == nil {
		theme.Colors = NewTable()
	}
	if theme.Styles = doc.Table("styles"); theme.Styles == nil {
		theme.Styles = NewTable()
	}
	if theme.RequiresDye != "" {
		if err := version.Satisfies(theme.RequiresDye); err != nil {
			return nil, err
		}
	}
	return theme, nil
}

// LoadThemeFile reads and parses a theme file, picking the format
// from the extension.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "unable to read theme file '%s'", path)
	}
	return LoadTheme(data, FormatForPath(path), path)
}
