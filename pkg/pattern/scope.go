package pattern

import (
	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/style"
)

// ScopeStyle is one `style.NAME = "definition"` entry of a scope. Def
// keeps the resolved definition text because some agents emit it
// verbatim rather than as escape codes.
type ScopeStyle struct {
	Name  string
	Def   string
	Style style.Style
}

// Scope is one [scopes.NAME] block of a pattern: the agent that
// renders it, its styles in declaration order, and whatever other
// keys the agent understands.
type Scope struct {
	Name      string
	AgentName string

	styles   []ScopeStyle
	styleIdx map[string]int
	config   *Table
}

func (s *Scope) String() string {
	return s.Name
}

// Styles returns the scope's styles in declaration order.
func (s *Scope) Styles() []ScopeStyle {
	return s.styles
}

// Style looks up a scope style by name.
func (s *Scope) Style(name string) (ScopeStyle, bool) {
	i, ok := s.styleIdx[name]
	if !ok {
		return ScopeStyle{}, false
	}
	return s.styles[i], true
}

// StringKey returns a scalar config value rendered as a string, so an
// agent asking for "environment_variable" or "cursor" does not care
// whether the user quoted it.
func (s *Scope) StringKey(key string) (string, bool) {
	if s.config == nil {
		return "", false
	}
	return s.config.String(key)
}

// BoolKey returns a config flag. Present but non-boolean values are a
// syntax error naming the scope, since a quoted "true" in a pattern
// file is a mistake the user needs to see.
func (s *Scope) BoolKey(key string) (value, present bool, err error) {
	if s.config == nil {
		return false, false, nil
	}
	v, ok := s.config.Get(key)
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, errors.Syntaxf("scope '%s' requires '%s' to be true or false", s.Name, key)
	}
	return b, true, nil
}

// TableKey returns an ordered sub-table such as opts, export, or
// command. Absent keys return nil without error.
func (s *Scope) TableKey(key string) (*Table, error) {
	if s.config == nil {
		return nil, nil
	}
	v, ok := s.config.Get(key)
	if !ok {
		return nil, nil
	}
	t, ok := v.(*Table)
	if !ok {
		return nil, errors.Syntaxf("scope '%s' requires '%s' to be a table", s.Name, key)
	}
	return t, nil
}

// StringListKey returns a config value that may be written as either
// a single string or an array of strings.
func (s *Scope) StringListKey(key string) ([]string, error) {
	if s.config == nil {
		return nil, nil
	}
	v, ok := s.config.Get(key)
	if !ok {
		return nil, nil
	}
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			str, ok := scalarString(item)
			if !ok {
				return nil, errors.Syntaxf("scope '%s' requires '%s' to be a string or an array of strings", s.Name, key)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, errors.Syntaxf("scope '%s' requires '%s' to be a string or an array of strings", s.Name, key)
	}
}
