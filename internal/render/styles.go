// Package render draws calendar and tracker views as terminal text.
// The CLI prints these directly and the TUI embeds them in its screens.
package render

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	QuoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1)

	DoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	PartialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	MissedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	SelectedStyle = lipgloss.NewStyle().
			Reverse(true)

	StreakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)
)

const (
	GlyphDone    = "✓"
	GlyphMissed  = "✗"
	GlyphPartial = "◐"
	GlyphNone    = "·"
	GlyphOpen    = "○"
)
