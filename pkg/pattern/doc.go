// Package pattern loads theme and pattern files and resolves them into
// the scopes that agents consume. Files are TOML or YAML; declaration
// order of colors, variables, styles, scopes, and nested tables is
// preserved because agents iterate styles and options in the order the
// user wrote them. String values may reference {{ colors.NAME }},
// {{ variables.NAME }}, and {{ styles.NAME }} and are resolved before
// any agent runs.
package pattern
