// Package ui centralizes terminal color themes for both the plain CLI
// (ANSI escape codes) and the TUI dashboard (lipgloss colors), including
// NO_COLOR handling.
package ui
