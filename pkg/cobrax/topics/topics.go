// Package topics extends Cobra's help system with free-form help
// topics rendered from a file tree, typically one embedded in the
// binary with go:embed.
//
// Topics live alongside commands in `help <name>`: if the argument
// names no command, the help system looks for a topic file with that
// name and renders it instead of failing.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is a single help page loaded from the topic tree.
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions lists the file extensions treated as topic files.
	// Defaults to .md and .txt.
	Extensions []string

	// Renderer formats topic content for the terminal. Defaults to
	// PlainRenderer.
	Renderer Renderer

	// Output receives rendered topics and the topic listing.
	// Defaults to os.Stdout.
	Output io.Writer
}

// Manager resolves help topics from a file tree.
type Manager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	extensions   []string
	renderer     Renderer
	out          io.Writer
	originalHelp func(*cobra.Command, []string)
}

// New creates a Manager reading topics from fsys with default options.
func New(fsys fs.FS) *Manager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a Manager with explicit options.
func NewWithOptions(fsys fs.FS, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
		out:        opts.Output,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	return m
}

// scan loads every topic file from the tree. Subdirectories are
// walked, but only the basename becomes the topic name.
func (m *Manager) scan() error {
	if m.fsys == nil {
		return nil
	}
	return fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// A missing or unreadable root just means no topics.
			if p == "." {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !m.supported(ext) {
			return nil
		}
		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Get returns the topic for name. Leading dashes are stripped so
// `help --theme-file` finds a topic named theme-file.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	t, ok := m.topics[name]
	return t, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// show renders the named topic, reporting whether it existed.
func (m *Manager) show(name string) bool {
	topic, ok := m.Get(name)
	if !ok {
		return false
	}
	fmt.Fprint(m.out, m.renderer.Render(topic.Content, topic.Ext))
	return true
}

// printListing writes the sorted topic index. prog is the program
// name used in the trailing usage hint.
func (m *Manager) printListing(prog string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(m.out, "No help topics available.")
		return
	}
	fmt.Fprintln(m.out, "Available help topics:")
	for _, name := range names {
		fmt.Fprintf(m.out, "  %s\n", name)
	}
	fmt.Fprintf(m.out, "\nUse '%s help <topic>' to read about a specific topic.\n", prog)
}

// Initialize installs the topic-aware help command on rootCmd with
// default options.
func Initialize(rootCmd *cobra.Command, fsys fs.FS) error {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions replaces cobra's built-in help command with
// one that also knows the topics in fsys. Anything that is not a
// topic falls through to the original help.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) error {
	m := NewWithOptions(fsys, opts)
	if err := m.scan(); err != nil {
		return fmt.Errorf("failed to scan help topics: %w", err)
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			switch {
			case len(args) == 0:
				m.originalHelp(rootCmd, []string{})
			case args[0] == "topics":
				m.printListing(rootCmd.Name())
			case m.show(args[0]):
			default:
				m.originalHelp(rootCmd, args)
			}
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	// `--help <topic>` should work the same way as `help <topic>`.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && m.show(args[0]) {
			return
		}
		m.originalHelp(cmd, args)
	})

	return nil
}
