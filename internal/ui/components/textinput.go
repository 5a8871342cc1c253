package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line wizard field. When numericOnly is set it
// swallows every printable key that is not a digit, so downstream code
// can parse the value without re-validating each keystroke.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if charLimit > 0 {
		m.CharLimit = charLimit
	}
	m.Focus()

	return TextInput{Model: m, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if key, ok := msg.(tea.KeyMsg); ok {
			if s := key.String(); len(s) == 1 && (s[0] < '0' || s[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}
