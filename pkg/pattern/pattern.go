package pattern

import (
	"os"

	"github.com/dyeshell/dye/internal/version"
	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/style"
)

// StyleEntry is one resolved top-level style. Source records whether
// the winning definition came from the theme or the pattern, which
// preview surfaces so users can see what their pattern overrides.
type StyleEntry struct {
	Name   string
	Def    string
	Style  style.Style
	Source string
}

// Pattern is a fully resolved configuration: theme and pattern merged,
// every template reference substituted, every style parsed, scopes in
// declaration order and ready to hand to agents.
type Pattern struct {
	Filename    string
	Description string
	Type        string
	Version     string
	RequiresDye string

	Theme *Theme

	Colors      *Table
	ColorSource map[string]string
	Variables   *Table
	Styles      []StyleEntry

	Scopes []*Scope

	styleIdx map[string]int
	scopeIdx map[string]*Scope
}

// LoadPattern parses pattern data and resolves it against theme. A
// nil theme behaves like EmptyTheme.
func LoadPattern(data []byte, format Format, filename string, theme *Theme) (*Pattern, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternParse, "unable to parse pattern '%s'", filename)
	}
	return resolve(doc, theme, filename)
}

// LoadPatternFile reads and resolves a pattern file, picking the
// format from the extension.
func LoadPatternFile(path string, theme *Theme) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternLoad, "unable to read pattern file '%s'", path)
	}
	return LoadPattern(data, FormatForPath(path), path, theme)
}

// FromTheme resolves a theme with no pattern on top, which is what
// preview shows when the user passes --no-pattern.
func FromTheme(theme *Theme) (*Pattern, error) {
	return resolve(NewTable(), theme, "")
}

// Style looks up a resolved top-level style by name.
func (p *Pattern) Style(name string) (StyleEntry, bool) {
	i, ok := p.styleIdx[name]
	if !ok {
		return StyleEntry{}, false
	}
	return p.Styles[i], true
}

// Scope looks up a scope by name.
func (p *Pattern) Scope(name string) (*Scope, bool) {
	s, ok := p.scopeIdx[name]
	return s, ok
}

// ScopeNames returns scope names in declaration order.
func (p *Pattern) ScopeNames() []string {
	names := make([]string, len(p.Scopes))
	for i, s := range p.Scopes {
		names[i] = s.Name
	}
	return names
}

// resolve merges theme and pattern documents and substitutes template
// references. Order matters throughout: colors resolve top to bottom
// so later colors can reference earlier ones, then variables, then
// styles, then scope contents, which may reference any of the three.
func resolve(doc *Table, theme *Theme, filename string) (*Pattern, error) {
	if theme == nil {
		theme = EmptyTheme()
	}
	p := &Pattern{
		Filename:    filename,
		Theme:       theme,
		Colors:      NewTable(),
		ColorSource: make(map[string]string),
		Variables:   NewTable(),
		styleIdx:    make(map[string]int),
		scopeIdx:    make(map[string]*Scope),
	}
	p.Description, _ = doc.String("description")
	p.Type, _ = doc.String("type")
	p.Version, _ = doc.String("version")
	p.RequiresDye, _ = doc.String("requires_dye")
	if p.RequiresDye != "" {
		if err := version.Satisfies(p.RequiresDye); err != nil {
			return nil, err
		}
	}

	ctx := newTemplateContext()
	if err := p.resolveColors(doc, theme, ctx); err != nil {
		return nil, err
	}
	if err := p.resolveVariables(doc, ctx); err != nil {
		return nil, err
	}
	if err := p.resolveStyles(doc, theme, ctx); err != nil {
		return nil, err
	}
	if err := p.resolveScopes(doc, ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// mergedEntries yields theme entries first, then pattern entries, with
// pattern definitions replacing same-named theme ones in place.
type mergedEntry struct {
	name   string
	value  any
	source string
}

func mergeTables(themeTable, patternTable *Table) []mergedEntry {
	var out []mergedEntry
	idx := make(map[string]int)
	for _, name := range themeTable.Keys() {
		v, _ := themeTable.Get(name)
		idx[name] = len(out)
		out = append(out, mergedEntry{name: name, value: v, source: "theme"})
	}
	for _, name := range patternTable.Keys() {
		v, _ := patternTable.Get(name)
		if i, ok := idx[name]; ok {
			out[i] = mergedEntry{name: name, value: v, source: "pattern"}
			continue
		}
		idx[name] = len(out)
		out = append(out, mergedEntry{name: name, value: v, source: "pattern"})
	}
	return out
}

func (p *Pattern) resolveColors(doc *Table, theme *Theme, ctx *templateContext) error {
	patternColors := doc.Table("colors")
	if patternColors == nil {
		patternColors = NewTable()
	}
	for _, entry := range mergeTables(theme.Colors, patternColors) {
		def, ok := scalarString(entry.value)
		if !ok {
			return errors.Syntaxf("color '%s' must be a string", entry.name)
		}
		resolved, err := ctx.render(def)
		if err != nil {
			return err
		}
		p.Colors.Set(entry.name, resolved)
		p.ColorSource[entry.name] = entry.source
		ctx.colors[entry.name] = resolved
	}
	return nil
}

func (p *Pattern) resolveVariables(doc *Table, ctx *templateContext) error {
	vars := doc.Table("variables")
	if vars == nil {
		return nil
	}
	for _, name := range vars.Keys() {
		v, _ := vars.Get(name)
		rv, err := ctx.renderValue(v)
		if err != nil {
			return err
		}
		p.Variables.Set(name, rv)
		ctx.variables[name] = rv
	}
	return nil
}

func (p *Pattern) resolveStyles(doc *Table, theme *Theme, ctx *templateContext) error {
	patternStyles := doc.Table("styles")
	if patternStyles == nil {
		patternStyles = NewTable()
	}
	for _, entry := range mergeTables(theme.Styles, patternStyles) {
		def, ok := scalarString(entry.value)
		if !ok {
			return errors.Syntaxf("style '%s' must be a string", entry.name)
		}
		resolved, err := ctx.render(def)
		if err != nil {
			return err
		}
		parsed, err := style.ParseStyle(resolved)
		if err != nil {
			return errors.Wrapf(err, errors.ErrSyntax, "invalid definition for style '%s'", entry.name)
		}
		p.styleIdx[entry.name] = len(p.Styles)
		p.Styles = append(p.Styles, StyleEntry{
			Name:   entry.name,
			Def:    resolved,
			Style:  parsed,
			Source: entry.source,
		})
		ctx.styles[entry.name] = resolved
	}
	return nil
}

func (p *Pattern) resolveScopes(doc *Table, ctx *templateContext) error {
	if !doc.Has("scopes") {
		return nil
	}
	scopes := doc.Table("scopes")
	if scopes == nil {
		return errors.Syntaxf("'scopes' must be a table")
	}
	for _, name := range scopes.Keys() {
		raw, _ := scopes.Get(name)
		scopeTable, ok := raw.(*Table)
		if !ok {
			return errors.Syntaxf("scope '%s' must be a table", name)
		}
		rendered, err := ctx.renderTable(scopeTable)
		if err != nil {
			return errors.Wrapf(err, errors.ErrSyntax, "while processing scope '%s'", name)
		}
		scope, err := buildScope(name, rendered)
		if err != nil {
			return err
		}
		p.Scopes = append(p.Scopes, scope)
		p.scopeIdx[name] = scope
	}
	return nil
}

func buildScope(name string, t *Table) (*Scope, error) {
	scope := &Scope{
		Name:     name,
		styleIdx: make(map[string]int),
		config:   NewTable(),
	}
	agent, ok := t.String("agent")
	if !ok || agent == "" {
		return nil, errors.Syntaxf("scope '%s' does not have an agent", name)
	}
	scope.AgentName = agent

	if t.Has("style") {
		styles := t.Table("style")
		if styles == nil {
			return nil, errors.Syntaxf("scope '%s' requires 'style' to be a table", name)
		}
		for _, styleName := range styles.Keys() {
			v, _ := styles.Get(styleName)
			def, ok := scalarString(v)
			if !ok {
				return nil, errors.Syntaxf("style '%s' must be a string while processing scope '%s'", styleName, name)
			}
			parsed, err := style.ParseStyle(def)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrSyntax, "while processing scope '%s'", name)
			}
			scope.styleIdx[styleName] = len(scope.styles)
			scope.styles = append(scope.styles, ScopeStyle{
				Name:  styleName,
				Def:   def,
				Style: parsed,
			})
		}
	}

	for _, key := range t.Keys() {
		if key == "agent" || key == "style" {
			continue
		}
		v, _ := t.Get(key)
		scope.config.Set(key, v)
	}
	return scope, nil
}
