package reviewscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"mentora/internal/api"
	"mentora/internal/review"
	"mentora/internal/ui/components"
	"mentora/internal/ui/theme"
)

var ratingLabels = []string{"blank", "hard", "shaky", "good", "easy"}

func (s *Screen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = theme.Hint.Render("Loading due cards...")
	case s.loadErr != nil:
		content = theme.Incorrect.Render(api.Message(s.loadErr))
	case s.empty:
		content = theme.Body.Render("Nothing due right now. Come back later!")
	case s.sess.Phase() == review.PhaseResults:
		content = s.viewResults()
	default:
		content = s.viewCard(width)
	}

	card := theme.Card.Width(cardWidth(width)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) viewCard(width int) string {
	var b strings.Builder
	current := s.sess.Current()

	progress := float64(s.sess.Index()) / float64(s.sess.Count())
	bar := components.NewProgressBar(s.sess.Progress(), progress, false, cardWidth(width)-6)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	face := current.Front
	label := "Q"
	if s.sess.Flipped() {
		face = current.Back
		label = "A"
	}
	b.WriteString(theme.Selected.Render(label + ":"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(face))
	b.WriteString("\n")

	if len(current.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(strings.Join(current.Tags, " · ")))
		b.WriteString("\n")
	}

	if err := s.sess.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(api.Message(err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.sess.Submitting():
		b.WriteString(theme.Hint.Render("Saving..."))
	case s.sess.Flipped():
		b.WriteString(s.viewRatingBar())
	default:
		b.WriteString(theme.Hint.Render("Space to reveal the answer."))
	}
	return b.String()
}

func (s *Screen) viewRatingBar() string {
	parts := make([]string, 0, len(ratingLabels))
	for i, label := range ratingLabels {
		item := fmt.Sprintf("%d %s", i, label)
		if i >= api.QualityPass {
			parts = append(parts, theme.Correct.Render(item))
		} else {
			parts = append(parts, theme.Incorrect.Render(item))
		}
	}
	return strings.Join(parts, "   ")
}

func (s *Screen) viewResults() string {
	stats := s.sess.Stats()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Reviewed:   %d\n", stats.Reviewed))
	b.WriteString(theme.Correct.Render(fmt.Sprintf("  Correct:    %d", stats.Correct)))
	b.WriteString("\n")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  Missed:     %d", stats.Incorrect)))
	b.WriteString("\n\n")
	b.WriteString(theme.Selected.Render(fmt.Sprintf("  Accuracy:   %d%%", stats.Accuracy())))
	return b.String()
}

func cardWidth(width int) int {
	cw := width - 12
	if cw > 76 {
		cw = 76
	}
	if cw < 40 {
		cw = 40
	}
	return cw
}
