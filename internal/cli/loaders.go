package cli

import (
	"os"

	"github.com/dyeshell/dye/pkg/errors"
	"github.com/dyeshell/dye/pkg/logging"
	"github.com/dyeshell/dye/pkg/paths"
	"github.com/dyeshell/dye/pkg/pattern"
)

// loadTheme resolves the theme for a command. Resolution order:
//
//  1. --theme-file / -t from the command line
//  2. $DYE_THEME_FILE
//
// With required false a missing theme is fine and an empty one comes
// back. --no-theme suppresses the environment variable too.
func loadTheme(themeFile string, noTheme, required bool) (*pattern.Theme, error) {
	logger := logging.GetLogger("cli")

	if required && noTheme {
		return nil, errors.New(errors.ErrInvalidInput,
			"a theme is required and you specified --no-theme")
	}
	if noTheme {
		logger.Debug().Msg("skipping theme because --no-theme was specified")
		return pattern.EmptyTheme(), nil
	}

	fname := themeFile
	if fname == "" {
		if env := os.Getenv(paths.EnvThemeFile); env != "" {
			fname = env
			logger.Debug().Str("file", fname).Msg("found theme in $DYE_THEME_FILE")
		}
	}

	if fname != "" {
		logger.Debug().Str("file", fname).Msg("loading theme")
		return pattern.LoadThemeFile(paths.ExpandHome(fname))
	}

	if required {
		return nil, errors.New(errors.ErrInvalidInput, "no theme specified")
	}
	logger.Debug().Msg("no theme specified")
	return pattern.EmptyTheme(), nil
}

// loadPattern resolves the pattern for a command against an already
// loaded theme. Resolution order:
//
//  1. --pattern-file / -f from the command line
//  2. $DYE_PATTERN_FILE
//
// With required false and no pattern file, the theme resolves on its
// own so commands like preview can still show it.
func loadPattern(patternFile string, noPattern, required bool, theme *pattern.Theme) (*pattern.Pattern, error) {
	logger := logging.GetLogger("cli")

	if required && noPattern {
		return nil, errors.New(errors.ErrInvalidInput,
			"a pattern is required and you specified --no-pattern")
	}
	if noPattern {
		logger.Debug().Msg("skipping pattern because --no-pattern was specified")
		return pattern.FromTheme(theme)
	}

	fname := patternFile
	if fname == "" {
		if env := os.Getenv(paths.EnvPatternFile); env != "" {
			fname = env
			logger.Debug().Str("file", fname).Msg("found pattern in $DYE_PATTERN_FILE")
		}
	}

	if fname != "" {
		logger.Debug().Str("file", fname).Msg("loading pattern")
		return pattern.LoadPatternFile(paths.ExpandHome(fname), theme)
	}

	if required {
		return nil, errors.New(errors.ErrInvalidInput, "no pattern specified")
	}
	logger.Debug().Msg("no pattern specified")
	return pattern.FromTheme(theme)
}
