package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"pretty.toml", FormatTOML},
		{"pretty.yaml", FormatYAML},
		{"pretty.yml", FormatYAML},
		{"PRETTY.YAML", FormatYAML},
		{"noextension", FormatTOML},
		{"/some/dir/theme.toml", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForPath(tt.path))
		})
	}
}

func TestDecodeTOMLPreservesOrder(t *testing.T) {
	doc := `
[colors]
zebra = "#ff0000"
apple = "#00ff00"
mango = "#0000ff"
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	colors := tbl.Table("colors")
	require.NotNil(t, colors)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, colors.Keys())
}

func TestDecodeTOMLDottedKeys(t *testing.T) {
	doc := `
[scopes.ls]
agent = "gnu_ls"
style.directory = "blue"
style.file = "default"
style.executable_file = "bold green"
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	scope := tbl.Table("scopes").Table("ls")
	require.NotNil(t, scope)
	assert.Equal(t, []string{"agent", "style"}, scope.Keys())

	styles := scope.Table("style")
	require.NotNil(t, styles)
	assert.Equal(t, []string{"directory", "file", "executable_file"}, styles.Keys())
}

func TestDecodeTOMLInlineTable(t *testing.T) {
	doc := `
[scopes.fzf]
agent = "fzf"
opts = { "--height" = "40%", "--border" = true, "--prompt" = "> " }
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	opts := tbl.Table("scopes").Table("fzf").Table("opts")
	require.NotNil(t, opts)
	assert.Equal(t, []string{"--height", "--border", "--prompt"}, opts.Keys())

	border, ok := opts.Get("--border")
	require.True(t, ok)
	assert.Equal(t, true, border)
}

func TestDecodeTOMLSubTableHeader(t *testing.T) {
	doc := `
[scopes.env]
agent = "environment_variables"

[scopes.env.export]
EDITOR = "vim"
PAGER = "less"
VISUAL = "vim"
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	export := tbl.Table("scopes").Table("env").Table("export")
	require.NotNil(t, export)
	assert.Equal(t, []string{"EDITOR", "PAGER", "VISUAL"}, export.Keys())
}

func TestDecodeTOMLScopeOrder(t *testing.T) {
	doc := `
[scopes.iterm]
agent = "iterm"

[scopes.ls]
agent = "gnu_ls"

[scopes.fzf]
agent = "fzf"
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"iterm", "ls", "fzf"}, tbl.Table("scopes").Keys())
}

func TestDecodeTOMLQuotedKeys(t *testing.T) {
	doc := `
[scopes.lsc.style]
"*.md" = "yellow"
"*.toml" = "green"
"README" = "bold white"
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	styles := tbl.Table("scopes").Table("lsc").Table("style")
	require.NotNil(t, styles)
	assert.Equal(t, []string{"*.md", "*.toml", "README"}, styles.Keys())
}

func TestDecodeTOMLScalars(t *testing.T) {
	doc := `
count = 3
ratio = 0.5
flag = true
name = "dye"
list = ["a", "b"]
`
	tbl, err := Decode([]byte(doc), FormatTOML)
	require.NoError(t, err)

	count, ok := tbl.Get("count")
	require.True(t, ok)
	assert.Equal(t, int64(3), count)

	list, ok := tbl.Get("list")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, list)
}

func TestDecodeTOMLError(t *testing.T) {
	_, err := Decode([]byte("not = valid = toml"), FormatTOML)
	assert.Error(t, err)
}

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	doc := `
colors:
  zebra: "#ff0000"
  apple: "#00ff00"
  mango: "#0000ff"
scopes:
  ls:
    agent: gnu_ls
    style:
      directory: blue
      file: default
`
	tbl, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	colors := tbl.Table("colors")
	require.NotNil(t, colors)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, colors.Keys())

	styles := tbl.Table("scopes").Table("ls").Table("style")
	require.NotNil(t, styles)
	assert.Equal(t, []string{"directory", "file"}, styles.Keys())
}

func TestDecodeYAMLScalars(t *testing.T) {
	doc := `
count: 3
flag: true
name: dye
list:
  - a
  - b
`
	tbl, err := Decode([]byte(doc), FormatYAML)
	require.NoError(t, err)

	count, ok := tbl.Get("count")
	require.True(t, ok)
	assert.Equal(t, int64(3), count)

	flag, ok := tbl.Get("flag")
	require.True(t, ok)
	assert.Equal(t, true, flag)

	list, ok := tbl.Get("list")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, list)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	tbl, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestDecodeYAMLTopLevelNotMapping(t *testing.T) {
	_, err := Decode([]byte("- just\n- a\n- list\n"), FormatYAML)
	assert.Error(t, err)
}
