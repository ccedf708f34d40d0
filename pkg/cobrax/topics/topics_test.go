package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"patterns.md":      &fstest.MapFile{Data: []byte("# Patterns\n\nHow pattern files work.")},
		"themes.txt":       &fstest.MapFile{Data: []byte("Themes are color definitions.")},
		"notes.json":       &fstest.MapFile{Data: []byte(`{"ignored": true}`)},
		"guides/agents.md": &fstest.MapFile{Data: []byte("# Agents\n\nOne per scope.")},
	}
}

func TestManagerScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m := New(topicFS())
		require.NoError(t, m.scan())

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"patterns", true, "# Patterns\n\nHow pattern files work."},
			{"themes", true, "Themes are color definitions."},
			{"notes", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := m.Get(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		m := NewWithOptions(topicFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, m.scan())

		_, ok := m.Get("notes")
		assert.True(t, ok)
		_, ok = m.Get("patterns")
		assert.False(t, ok)
	})

	t.Run("subdirectory files become topics by basename", func(t *testing.T) {
		m := New(topicFS())
		require.NoError(t, m.scan())

		topic, ok := m.Get("agents")
		require.True(t, ok)
		assert.Equal(t, ".md", topic.Ext)
		assert.Contains(t, topic.Content, "One per scope.")
	})

	t.Run("nil filesystem means no topics", func(t *testing.T) {
		m := New(nil)
		require.NoError(t, m.scan())
		assert.Empty(t, m.Names())
	})

	t.Run("empty filesystem means no topics", func(t *testing.T) {
		m := New(fstest.MapFS{})
		require.NoError(t, m.scan())
		assert.Empty(t, m.Names())
	})
}

func TestManagerGet(t *testing.T) {
	m := New(topicFS())
	require.NoError(t, m.scan())

	tests := []struct {
		input  string
		exists bool
	}{
		{"patterns", true},
		{"--patterns", true},
		{"-patterns", true},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := m.Get(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, "patterns", topic.Name)
			}
		})
	}
}

func TestManagerNames(t *testing.T) {
	m := New(topicFS())
	require.NoError(t, m.scan())

	assert.Equal(t, []string{"agents", "patterns", "themes"}, m.Names())
}

func TestInitializeInstallsHelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Do the thing",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, topicFS()))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestHelpCommandShowsTopic(t *testing.T) {
	var buf bytes.Buffer
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	require.NoError(t, InitializeWithOptions(rootCmd, topicFS(), Options{Output: &buf}))

	rootCmd.SetArgs([]string{"help", "themes"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Themes are color definitions.")
}

func TestHelpCommandListsTopics(t *testing.T) {
	var buf bytes.Buffer
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	require.NoError(t, InitializeWithOptions(rootCmd, topicFS(), Options{Output: &buf}))

	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Available help topics:")
	assert.Contains(t, out, "  patterns\n")
	assert.Contains(t, out, "  themes\n")
	assert.Contains(t, out, "Use 'testapp help <topic>' to read about a specific topic.")
}

func TestHelpCommandListingWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	require.NoError(t, InitializeWithOptions(rootCmd, fstest.MapFS{}, Options{Output: &buf}))

	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "No help topics available.")
}

func TestPlainRendererPassthrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "raw content", r.Render("raw content", ".md"))
}

func TestGlamourRendererPassthroughForNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Heading\n\nBody text.", ".md")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "Body text.")
}
