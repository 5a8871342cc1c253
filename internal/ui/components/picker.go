package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mentora/internal/ui/theme"
)

// Picker cycles through a fixed option list with the arrow keys.
type Picker struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker on the first option.
func NewPicker(options []string) Picker {
	return Picker{Options: options}
}

// Value returns the selected option.
func (p Picker) Value() string {
	return p.Options[p.Selected]
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}
	return p, nil
}

// View renders the options side by side with the selection highlighted.
func (p Picker) View() string {
	parts := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		if i == p.Selected {
			style := theme.Selected
			if p.Focused {
				style = style.Underline(true)
			}
			parts = append(parts, style.Render("["+opt+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" "+opt+" "))
		}
	}
	return strings.Join(parts, "  ")
}
