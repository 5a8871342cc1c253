package course

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
		Names:   []string{"Prompt", "Similar", "Review", "Preview", "Generate"},
		Current: s.sess.CurrentStep(),
	}
	b.WriteString(stepper.View())
	b.WriteString("\n\n")

	switch s.sess.State().Phase() {
	case flow.PhaseSubmitting:
		b.WriteString(s.viewWaiting())
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

func (s *Screen) viewWaiting() string {
	switch s.sess.CurrentStep() {
	case stepSimilar:
		return theme.Hint.Render("Checking for similar courses...")
	case stepPreview:
		return theme.Hint.Render("Sketching the course outline...")
	default:
		return theme.Hint.Render("Generating the full course. This can take a minute...")
	}
}

func (s *Screen) viewStep() string {
	var b strings.Builder
	form := s.sess.Form()

	switch s.sess.CurrentStep() {
	case stepPrompt:
		b.WriteString(theme.Body.Render("Describe the course you want"))
		b.WriteString("\n\n")
		b.WriteString(s.prompt.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Level     "))
		b.WriteString(s.level.View())
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Modules   "))
		b.WriteString(s.modules.View())
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d-%d)", modulesClamp.Min, modulesClamp.Max)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Lessons   "))
		b.WriteString(s.lessons.View())
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d-%d per module)", lessonsClamp.Min, lessonsClamp.Max)))

	case stepSimilar:
		b.WriteString(theme.Body.Render(fmt.Sprintf("Prompt: %s", form.Get("prompt"))))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press Enter to check whether a similar course already exists."))

	case stepReview:
		matches := s.similarCourses()
		b.WriteString(theme.Body.Render(fmt.Sprintf("%d similar course(s) found:", len(matches))))
		b.WriteString("\n\n")
		for i, m := range matches {
			line := fmt.Sprintf("%s  (%s)", m.Title, m.Level)
			if i == s.similarIdx {
				b.WriteString(theme.Selected.Render("  ▸ " + line))
			} else {
				b.WriteString(theme.Unselected.Render("    " + line))
			}
			b.WriteString("\n")
			if m.Description != "" {
				b.WriteString(theme.Hint.Render("      " + m.Description))
				b.WriteString("\n")
			}
		}
		if s.notice != "" {
			b.WriteString("\n")
			b.WriteString(theme.Correct.Render(s.notice))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enroll in one with E, or press Enter to create your own anyway."))

	case stepPreview:
		b.WriteString(theme.Body.Render("Outline parameters"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Prompt:   %s\n", form.Get("prompt")))
		b.WriteString(fmt.Sprintf("  Level:    %s\n", form.Get("level")))
		b.WriteString(fmt.Sprintf("  Modules:  %d\n", form.Int("modules", modulesClamp.Default)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press Enter to fetch a preview."))

	case stepGenerate:
		preview, _ := s.sess.LookupItems(stepPreview).(*api.CoursePreview)
		if preview != nil {
			b.WriteString(theme.Title.Render(preview.Title))
			b.WriteString("\n\n")
			b.WriteString(theme.Body.Render(preview.Description))
			b.WriteString("\n\n")
			for i, m := range preview.ModuleTitles {
				b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, m))
			}
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Estimated duration: %s", preview.EstimatedDuration)))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("Generate %d modules with %d lessons each?",
			form.Int("modules", modulesClamp.Default), form.Int("lessons", lessonsClamp.Default))))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press Enter to generate the full course."))
	}
	return b.String()
}

func (s *Screen) viewResult() string {
	course, ok := s.sess.State().Payload().(*api.Course)
	if !ok || course == nil {
		return theme.Hint.Render("Course generated.")
	}

	var b strings.Builder
	b.WriteString(theme.Correct.Render("Course ready!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(course.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(course.Description))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Modules:    %d\n", course.Stats.Modules))
	b.WriteString(fmt.Sprintf("  Lessons:    %d\n", course.Stats.Lessons))
	b.WriteString(fmt.Sprintf("  Exercises:  %d\n", course.Stats.Exercises))
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render(s.notice))
	}
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
