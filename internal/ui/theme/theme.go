// Package theme holds the mentora color palette and the shared text
// styles built from it. Screens compose these rather than picking
// colors of their own.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: cool dark background with a sky-blue brand color, violet as
// the supporting tone.
var (
	Primary   = lipgloss.Color("#38BDF8") // sky blue
	Secondary = lipgloss.Color("#A78BFA") // violet
	Accent    = lipgloss.Color("#FBBF24") // amber
	Success   = lipgloss.Color("#4ADE80")
	Error     = lipgloss.Color("#F87171")
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#64748B")
	BgCard    = lipgloss.Color("#1B2432")
	Border    = lipgloss.Color("#3B4A63")
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().Foreground(Text)

	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Card frames a block of content.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// Selection and grading states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
