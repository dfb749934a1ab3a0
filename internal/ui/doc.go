// Package ui provides the color themes and text styles used by the command
// line presenters. Colors are plain ANSI escape sequences selected from the
// active Theme; section headings are rendered with lipgloss.
package ui
