package ui

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dyeshell/dye/pkg/logging"
	"github.com/dyeshell/dye/pkg/style"
)

// EnvDyeColors is the environment variable that styles dye's own
// output. Its value is what the dye agent emits: style definitions
// keyed by element name, `element=styledef:element=styledef`.
const EnvDyeColors = "DYE_COLORS"

// outputElements are the parts of dye's own output that can be styled
// through DYE_COLORS, in the order `dye elements` lists them.
var outputElements = []struct {
	name        string
	description string
}{
	{"ui_border", "Borders around tables and the preview panel"},
	{"ui_column_header", "Column headings in tables"},
	{"error_progname", "The program name prefix of an error message"},
	{"error_text", "The text of an error message"},
	{"comment_begin", "The leading '#' of comments printed by apply --comment"},
	{"comment_text", "The text of comments printed by apply --comment"},
}

// ElementNames returns the styleable element names in listing order.
func ElementNames() []string {
	names := make([]string, len(outputElements))
	for i, e := range outputElements {
		names[i] = e.name
	}
	return names
}

// DescribeElement returns the one-line description of an element.
func DescribeElement(name string) (string, bool) {
	for _, e := range outputElements {
		if e.name == name {
			return e.description, true
		}
	}
	return "", false
}

func isElement(name string) bool {
	_, ok := DescribeElement(name)
	return ok
}

// Elements holds the parsed styles for dye's own output. Missing
// elements just mean unstyled output, so lookups never fail hard.
type Elements struct {
	styles map[string]style.Style
}

// NoElements returns an Elements with nothing styled.
func NoElements() *Elements {
	return &Elements{styles: make(map[string]style.Style)}
}

// LoadElements reads DYE_COLORS from the environment. NO_COLOR wins
// over everything; a set-but-empty DYE_COLORS disables styling, which
// is different from the variable being unset. Unknown elements and
// malformed clauses are skipped with a debug log, never an error:
// dye's diagnostics must keep working no matter what is in the
// environment.
func LoadElements() *Elements {
	logger := logging.GetLogger("ui")
	e := NoElements()

	if os.Getenv("NO_COLOR") != "" {
		logger.Debug().Msg("no color output because NO_COLOR is set")
		return e
	}

	spec, found := os.LookupEnv(EnvDyeColors)
	switch {
	case !found:
		logger.Debug().Msg("no color output because $DYE_COLORS is not set")
	case spec == "":
		logger.Debug().Msg("no color output because $DYE_COLORS is an empty string")
	default:
		e.styles = parseColorspec(spec, logger)
		logger.Debug().Msg("output colors set from $DYE_COLORS")
	}
	return e
}

// parseColorspec parses a DYE_COLORS value into element styles.
func parseColorspec(colorspec string, logger zerolog.Logger) map[string]style.Style {
	styles := make(map[string]style.Style)
	for _, clause := range strings.Split(colorspec, ":") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			logger.Debug().Str("clause", clause).
				Msg("skipping invalid expression in DYE_COLORS")
			continue
		}
		element, def := parts[0], parts[1]
		if !isElement(element) {
			logger.Debug().Str("element", element).
				Msg("skipping invalid element in DYE_COLORS")
			continue
		}
		parsed, err := style.ParseStyle(def)
		if err != nil {
			logger.Debug().Str("element", element).Str("style", def).
				Msg("skipping unparsable style in DYE_COLORS")
			continue
		}
		styles[element] = parsed
	}
	return styles
}

// Style returns the style for an element, if one was configured.
func (e *Elements) Style(name string) (style.Style, bool) {
	st, ok := e.styles[name]
	return st, ok
}

// Styled renders text in an element's style on the given console.
// Unconfigured elements render plain.
func (e *Elements) Styled(c *Console, name, text string) string {
	st, ok := e.styles[name]
	if !ok {
		return text
	}
	return c.Styled(text, st)
}
