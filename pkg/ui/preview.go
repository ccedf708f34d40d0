package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/pattern"
	"github.com/dyeshell/dye/pkg/style"
)

// Preview renders a bordered panel summarizing a resolved pattern:
// which files went in, every color with a swatch, and every style
// rendered in itself. The pattern must define a 'text' style; its
// colors tint the whole panel.
func Preview(c *Console, elements *Elements, theme *pattern.Theme, pat *pattern.Pattern) (string, error) {
	textEntry, ok := pat.Style("text")
	if !ok {
		return "", errors.New(errors.ErrSyntax, "no 'text' style defined")
	}

	var lines []string
	lines = append(lines, "Inputs")
	lines = append(lines, summaryLines(theme, pat)...)
	lines = append(lines, "", "[colors]")
	lines = append(lines, colorLines(c, pat)...)
	lines = append(lines, "", "[styles]")
	lines = append(lines, styleLines(c, pat)...)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if border, ok := elements.Style("ui_border"); ok && border.Foreground != nil {
		panel = panel.BorderForeground(lipglossColor(*border.Foreground))
	}
	if fg := textEntry.Style.Foreground; fg != nil && fg.Kind != style.ColorDefault {
		panel = panel.Foreground(lipglossColor(*fg))
	}
	if bg := textEntry.Style.Background; bg != nil && bg.Kind != style.ColorDefault {
		panel = panel.Background(lipglossColor(*bg))
	}
	return panel.Render(strings.Join(lines, "\n")), nil
}

func summaryLines(theme *pattern.Theme, pat *pattern.Pattern) []string {
	var lines []string
	if theme != nil && !theme.IsEmpty() {
		lines = append(lines,
			"Theme file: "+theme.Filename,
			metadataLine("description", theme.Description),
			metadataLine("type", theme.Type),
			metadataLine("version", theme.Version),
		)
	} else {
		lines = append(lines, "No theme file.")
	}
	lines = append(lines, "")
	if pat.Filename != "" {
		lines = append(lines,
			"Pattern file: "+pat.Filename,
			metadataLine("description", pat.Description),
			metadataLine("type", pat.Type),
			metadataLine("version", pat.Version),
		)
	} else {
		lines = append(lines, "No pattern file.")
	}
	return lines
}

func metadataLine(key, value string) string {
	if value == "" {
		return fmt.Sprintf("  %s =", key)
	}
	return fmt.Sprintf("  %s = \"%s\"", key, value)
}

func colorLines(c *Console, pat *pattern.Pattern) []string {
	width := 0
	for _, name := range pat.Colors.Keys() {
		if len(name) > width {
			width = len(name)
		}
	}

	var lines []string
	for _, name := range pat.Colors.Keys() {
		def, _ := pat.Colors.String(name)
		prefix := " ∅ "
		if def != "" {
			if col, err := style.ParseColor(def); err == nil {
				prefix = c.Styled("██", style.Style{Foreground: &col}) + " "
			}
		}
		lines = append(lines, fmt.Sprintf(`%s%-*s = "%s"  # from %s`,
			prefix, width, name, def, pat.ColorSource[name]))
	}
	return lines
}

func styleLines(c *Console, pat *pattern.Pattern) []string {
	width := 0
	for _, entry := range pat.Styles {
		if len(entry.Name) > width {
			width = len(entry.Name)
		}
	}

	var lines []string
	for _, entry := range pat.Styles {
		pad := strings.Repeat(" ", width-len(entry.Name))
		var col1 string
		if entry.Style.IsEmpty() {
			col1 = "∅ " + entry.Name + pad
		} else {
			col1 = "  " + c.Styled(entry.Name, entry.Style) + pad
		}
		lines = append(lines, fmt.Sprintf(`%s = "%s"  # from %s`,
			col1, entry.Def, entry.Source))
	}
	return lines
}

// lipglossColor converts a resolved color for lipgloss, which takes
// palette indexes as decimal strings and everything else as hex.
func lipglossColor(col style.Color) lipgloss.Color {
	switch col.Kind {
	case style.ColorStandard, style.ColorExtended:
		return lipgloss.Color(strconv.Itoa(int(col.Index)))
	default:
		return lipgloss.Color(col.Hex())
	}
}
