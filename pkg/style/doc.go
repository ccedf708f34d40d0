// Package style implements the resolved color and style model that
// agents translate into target-specific encodings. A Color is one of
// four variants (terminal default, 16-color palette index, 256-color
// palette index, or a 24-bit triplet); a Style combines an optional
// foreground, an optional background, and boolean text attributes.
// Styles are written in theme and pattern files as definition strings
// like "bold #ffcc00 on color(17)" and parsed with ParseStyle.
package style
