package roadmap

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"mentora/internal/api"
	"mentora/internal/flow"
	"mentora/internal/ui/components"
	"mentora/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	stepper := components.Stepper{
		Names:   []string{"Goal", "Details", "Review"},
		Current: s.sess.CurrentStep(),
	}
	b.WriteString(stepper.View())
	b.WriteString("\n\n")

	switch s.sess.State().Phase() {
	case flow.PhaseSubmitting:
		b.WriteString(theme.Hint.Render("Generating your roadmap..."))
	case flow.PhaseSucceeded:
		b.WriteString(s.viewResult())
	default:
		if err := s.sess.State().Err(); err != nil {
			b.WriteString(theme.Incorrect.Render(api.Message(err)))
			b.WriteString("\n\n")
		}
		b.WriteString(s.viewStep())
	}

	card := theme.Card.Width(contentWidth(width)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) viewStep() string {
	var b strings.Builder
	switch s.sess.CurrentStep() {
	case stepGoal:
		b.WriteString(theme.Body.Render("What do you want to learn?"))
		b.WriteString("\n\n")
		b.WriteString(s.goal.View())
	case stepDetails:
		b.WriteString(theme.Body.Render("Your experience level"))
		b.WriteString("\n")
		b.WriteString(s.level.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Hours per week"))
		b.WriteString("\n")
		b.WriteString(s.hours.View())
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d-%d)", hoursClamp.Min, hoursClamp.Max)))
	case stepReview:
		form := s.sess.Form()
		b.WriteString(theme.Body.Render("Ready to generate:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Goal:   %s\n", form.Get("goal")))
		b.WriteString(fmt.Sprintf("  Level:  %s\n", form.Get("level")))
		b.WriteString(fmt.Sprintf("  Pace:   %d hours/week\n", form.Int("hours", hoursClamp.Default)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press Enter to generate."))
	}
	return b.String()
}

func (s *Screen) viewResult() string {
	roadmap, ok := s.sess.State().Payload().(*api.Roadmap)
	if !ok || roadmap == nil {
		return theme.Hint.Render("Roadmap generated.")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(roadmap.Title))
	b.WriteString("\n\n")
	totalWeeks := 0
	for i, m := range roadmap.Milestones {
		b.WriteString(theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, m.Title)))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ~%d wk", m.Weeks)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("   " + m.Description))
		b.WriteString("\n\n")
		totalWeeks += m.Weeks
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Estimated total: %d weeks at your pace.", totalWeeks)))
	return b.String()
}

func contentWidth(width int) int {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}
	if cw < 40 {
		cw = 40
	}
	return cw
}
