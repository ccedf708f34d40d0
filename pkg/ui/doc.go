// Package ui renders dye's own terminal output: consoles with color
// capability detection, the output elements users style through the
// DYE_COLORS environment variable, boxed tables, and the preview
// panel.
//
// Everything here is about dye talking to the user on a terminal. The
// text agents emit for the shell to source never passes through this
// package.
package ui
