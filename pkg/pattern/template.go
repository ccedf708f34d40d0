package pattern

import (
	"strings"
	"text/template"

	"github.com/dyeshell/dye/pkg/errors"
)

// templateContext holds the lookup tables behind {{ colors.NAME }},
// {{ variables.NAME }}, and {{ styles.NAME }} references. The maps
// grow as resolution proceeds, so a color can reference a color
// declared above it and a scope can reference any style.
type templateContext struct {
	colors    map[string]any
	variables map[string]any
	styles    map[string]any
}

func newTemplateContext() *templateContext {
	return &templateContext{
		colors:    make(map[string]any),
		variables: make(map[string]any),
		styles:    make(map[string]any),
	}
}

func (c *templateContext) funcs() template.FuncMap {
	return template.FuncMap{
		"colors":    func() map[string]any { return c.colors },
		"variables": func() map[string]any { return c.variables },
		"styles":    func() map[string]any { return c.styles },
	}
}

// render resolves template references in raw. Strings without "{{"
// pass through untouched. A reference to an unknown name is a syntax
// error so typos surface instead of silently producing empty styles.
func (c *templateContext) render(raw string) (string, error) {
	if !strings.Contains(raw, "{{") {
		return raw, nil
	}
	tmpl, err := template.New("value").Option("missingkey=error").Funcs(c.funcs()).Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSyntax, "unable to parse '%s'", raw)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", errors.Wrapf(err, errors.ErrSyntax, "unable to resolve '%s'", raw)
	}
	return buf.String(), nil
}

// renderTable returns a copy of t with every string value resolved,
// recursing into nested tables. Non-string scalars and arrays of
// non-strings pass through unchanged.
func (c *templateContext) renderTable(t *Table) (*Table, error) {
	if t == nil {
		return nil, nil
	}
	out := NewTable()
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		rv, err := c.renderValue(v)
		if err != nil {
			return nil, err
		}
		out.Set(key, rv)
	}
	return out, nil
}

func (c *templateContext) renderValue(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return c.render(val)
	case *Table:
		return c.renderTable(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			rv, err := c.renderValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		return out, nil
	default:
		return v, nil
	}
}
