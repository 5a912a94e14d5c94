// Package ui renders action results for the terminal.
//
// The record file always gets plain text; stdout gets either the same plain
// text or a styled rendition when the output is a color-capable terminal.
package ui
