package pattern

import "fmt"

// Table is a map whose keys iterate in declaration order. TOML and
// YAML decoders in this package produce Tables for every mapping in a
// document, so downstream consumers never see Go's randomized map
// iteration.
type Table struct {
	keys []string
	vals map[string]any
}

// NewTable returns an empty ordered table.
func NewTable() *Table {
	return &Table{vals: make(map[string]any)}
}

// Set stores a value under key, appending the key on first use. A
// repeated Set keeps the key's original position.
func (t *Table) Set(key string, value any) {
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = value
}

// Get returns the raw value for key.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.vals[key]
	return ok
}

// Keys returns the keys in declaration order. The slice is shared;
// callers must not modify it.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return t.keys
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Table returns the nested table under key, or nil when the key is
// absent or holds a scalar.
func (t *Table) Table(key string) *Table {
	v, ok := t.vals[key]
	if !ok {
		return nil
	}
	sub, ok := v.(*Table)
	if !ok {
		return nil
	}
	return sub
}

// String returns the value under key rendered as a string. Non-string
// scalars render the way fmt prints them, so a TOML `42` becomes "42"
// and `true` becomes "true". Tables and absent keys return ok=false.
func (t *Table) String(key string) (string, bool) {
	v, ok := t.vals[key]
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// scalarString renders a decoded scalar as the string an end user
// would expect to see interpolated into shell output.
func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return fmt.Sprintf("%v", val), true
	case int64:
		return fmt.Sprintf("%d", val), true
	case float64:
		return fmt.Sprintf("%v", val), true
	case *Table, []any:
		return "", false
	default:
		return fmt.Sprintf("%v", val), true
	}
}
