package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dyeshell/dye/pkg/errors"
)

// Environment variable names
const (
	// EnvDyeDir is the primary environment variable for the dye
	// configuration directory
	EnvDyeDir = "DYE_DIR"

	// EnvThemeFile names a theme file to load when --theme-file is not given
	EnvThemeFile = "DYE_THEME_FILE"

	// EnvPatternFile names a pattern file to load when --pattern-file is not given
	EnvPatternFile = "DYE_PATTERN_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DyeDirName is the directory name for dye-specific files
	DyeDirName = "dye"

	// ThemesDirName is the subdirectory of the dye directory that holds themes
	ThemesDirName = "themes"

	// LogFileName is the name of the log file
	LogFileName = "dye.log"
)

// themeExtensions are the file extensions recognized as theme files
var themeExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// Paths provides centralized path management for dye
type Paths interface {
	DyeDir() string
	UsedFallback() bool
	ThemesDir() string
	LogFilePath() string
	ThemeNames() ([]string, error)
}

type paths struct {
	// dyeDir is the root directory for dye configuration
	dyeDir string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates we fell back to the XDG config home
	// because $DYE_DIR was not set
	usedFallback bool
}

// New creates a new Paths instance rooted at the given dye directory.
// If dyeDir is empty, it will be determined from the DYE_DIR
// environment variable, falling back to the dye directory under the
// XDG config home.
func New(dyeDir string) (Paths, error) {
	p := &paths{}

	if dyeDir == "" {
		if root := os.Getenv(EnvDyeDir); root != "" {
			p.dyeDir = ExpandHome(root)
		} else {
			p.dyeDir = filepath.Join(xdg.ConfigHome, DyeDirName)
			p.usedFallback = true
		}
	} else {
		p.dyeDir = ExpandHome(dyeDir)
	}

	// Ensure the dye directory is absolute
	absRoot, err := filepath.Abs(p.dyeDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dye directory")
	}
	p.dyeDir = absRoot

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, DyeDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", DyeDirName)
	}

	return p, nil
}

// ExpandHome expands the ~ prefix in a path to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// DyeDir returns the root directory for dye configuration
func (p *paths) DyeDir() string {
	return p.dyeDir
}

// UsedFallback returns true if the XDG config home fallback was used
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// ThemesDir returns the directory that holds theme files
func (p *paths) ThemesDir() string {
	return filepath.Join(p.dyeDir, ThemesDirName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ThemeNames returns the sorted stems of every theme file in the
// themes directory.
func (p *paths) ThemeNames() ([]string, error) {
	dir := p.ThemesDir()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound, "%s: is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "unable to read theme directory '%s'", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if themeExtensions[strings.ToLower(ext)] {
			names = append(names, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	sort.Strings(names)
	return names, nil
}
