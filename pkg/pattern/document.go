package pattern

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"

	"github.com/dyeshell/dye/pkg/errors"
)

// Format identifies the serialization of a theme or pattern file.
type Format int

const (
	// FormatTOML is the default file format.
	FormatTOML Format = iota
	// FormatYAML covers .yaml and .yml files.
	FormatYAML
)

// FormatForPath picks the format from a file extension. Anything that
// is not .yaml or .yml decodes as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode parses data into an ordered table tree.
func Decode(data []byte, format Format) (*Table, error) {
	if format == FormatYAML {
		return decodeYAML(data)
	}
	return decodeTOML(data)
}

// decodeTOML unmarshals values the usual way and then re-reads the
// document with the low level parser to recover the order keys were
// declared in. toml.Unmarshal alone hands back plain Go maps, which
// would scramble the styles and options that agents must emit in file
// order.
func decodeTOML(data []byte) (*Table, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, err
	}
	return buildTable(root, order, nil), nil
}

// keyOrder records, for every table in a document, the order its
// child keys appeared in. Paths are joined with a unit separator
// because user keys can themselves contain dots ("*.md") or slashes.
type keyOrder struct {
	order map[string][]string
	seen  map[string]map[string]bool
}

func newKeyOrder() *keyOrder {
	return &keyOrder{
		order: make(map[string][]string),
		seen:  make(map[string]map[string]bool),
	}
}

func (k *keyOrder) add(path []string, key string) {
	parent := strings.Join(path, "\x1f")
	if k.seen[parent] == nil {
		k.seen[parent] = make(map[string]bool)
	}
	if k.seen[parent][key] {
		return
	}
	k.seen[parent][key] = true
	k.order[parent] = append(k.order[parent], key)
}

// addPath registers every prefix of full, so `[scopes.ls]` records
// "scopes" at the root and "ls" under scopes.
func (k *keyOrder) addPath(full []string) {
	for i := range full {
		k.add(full[:i], full[i])
	}
}

func (k *keyOrder) keys(path []string) []string {
	return k.order[strings.Join(path, "\x1f")]
}

func tomlKeyOrder(data []byte) (*keyOrder, error) {
	ko := newKeyOrder()
	var parser unstable.Parser
	parser.Reset(data)
	var tablePath []string
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			tablePath = keyParts(expr)
			ko.addPath(tablePath)
		case unstable.KeyValue:
			full := childPath(tablePath, keyParts(expr)...)
			ko.addPath(full)
			inlineOrder(ko, full, expr.Value())
		}
	}
	if err := parser.Error(); err != nil {
		return nil, err
	}
	return ko, nil
}

func keyParts(node *unstable.Node) []string {
	var parts []string
	it := node.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// inlineOrder descends into `opts = { "--height" = "40%" }` style
// values, whose keys are not separate expressions.
func inlineOrder(ko *keyOrder, path []string, value *unstable.Node) {
	if value == nil || value.Kind != unstable.InlineTable {
		return
	}
	it := value.Children()
	for it.Next() {
		child := it.Node()
		if child.Kind != unstable.KeyValue {
			continue
		}
		full := childPath(path, keyParts(child)...)
		ko.addPath(full)
		inlineOrder(ko, full, child.Value())
	}
}

func childPath(path []string, keys ...string) []string {
	full := make([]string, 0, len(path)+len(keys))
	full = append(full, path...)
	return append(full, keys...)
}

// buildTable assembles an ordered Table from plain decoded values plus
// the recorded key order. Keys the order walk did not see (none in
// practice) land at the end, sorted, so output stays deterministic.
func buildTable(values map[string]any, ko *keyOrder, path []string) *Table {
	t := NewTable()
	for _, key := range ko.keys(path) {
		v, ok := values[key]
		if !ok {
			continue
		}
		t.Set(key, convertValue(v, ko, childPath(path, key)))
	}
	var rest []string
	for key := range values {
		if !t.Has(key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		t.Set(key, convertValue(values[key], ko, childPath(path, key)))
	}
	return t
}

func convertValue(v any, ko *keyOrder, path []string) any {
	switch val := v.(type) {
	case map[string]any:
		return buildTable(val, ko, path)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = buildTable(item, ko, path)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = convertValue(item, ko, path)
		}
		return out
	case int:
		return int64(val)
	default:
		return val
	}
}

// decodeYAML walks the yaml node tree directly. gopkg.in/yaml.v3
// exposes mapping entries in document order through Node.Content, so
// no second pass is needed.
func decodeYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewTable(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrSyntax, "top level of a YAML theme or pattern must be a mapping")
	}
	return yamlTable(root)
}

func yamlTable(node *yaml.Node) (*Table, error) {
	t := NewTable()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		v, err := yamlValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		t.Set(key, v)
	}
	return t, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return yamlTable(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	}
}
