package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Activate color output in shell commands using themes and patterns"
	MsgApplyShort    = "Render every scope of a pattern as shell commands"
	MsgPreviewShort  = "Show the colors and styles of a theme and pattern"
	MsgPrintShort    = "Print text using styles from a theme or pattern"
	MsgAgentsShort   = "List all available agents"
	MsgElementsShort = "List the output elements styleable through $DYE_COLORS"
	MsgThemesShort   = "List available themes"
	MsgVersionShort  = "Print version information"
	MsgManShort      = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForceColor  = "Force color output even when not writing to a terminal"
	MsgFlagPatternFile = "Pattern file to load, instead of $DYE_PATTERN_FILE"
	MsgFlagNoPattern   = "Do not load a pattern file, even if $DYE_PATTERN_FILE is set"
	MsgFlagThemeFile   = "Theme file to load, instead of $DYE_THEME_FILE"
	MsgFlagNoTheme     = "Do not load a theme file, even if $DYE_THEME_FILE is set"
	MsgFlagScope       = "Comma separated list of scopes to apply, instead of all of them"
	MsgFlagComment     = "Write a comment line above each scope's output"
	MsgFlagStyle       = "Name of a style to render the text with"
	MsgFlagNoNewline   = "Do not write a trailing newline"
)
