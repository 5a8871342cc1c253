package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"mentora/internal/ui/theme"
)

// Stepper renders wizard progress as numbered dots with step names.
type Stepper struct {
	Names   []string
	Current int // 1-indexed
}

// View renders the stepper on a single line.
func (st Stepper) View() string {
	parts := make([]string, 0, len(st.Names))
	for i, name := range st.Names {
		n := i + 1
		label := fmt.Sprintf("%d %s", n, name)
		switch {
		case n == st.Current:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("● "+label))
		case n < st.Current:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Success).
				Render("● "+label))
		default:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("○ "+label))
		}
	}
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render(" ── ")
	return strings.Join(parts, sep)
}
