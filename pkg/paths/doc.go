// Package paths provides centralized path handling for dye.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for locating the dye configuration directory, the theme
// directory inside it, and the log file. It handles:
//
//   - Dye directory discovery and configuration
//   - Theme directory location and theme file listing
//   - Log file location in the XDG state directory
//   - Home directory expansion
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - DYE_DIR: Primary location for dye configuration (default: $XDG_CONFIG_HOME/dye)
//   - XDG_STATE_HOME: Override the state directory used for the log file
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//		return err
//	}
//	themes, err := p.ThemeNames()
package paths
