// Package registry provides a generic, type-safe registry system
// for managing agent factories and other named components. It
// supports automatic registration through init() functions.
package registry
