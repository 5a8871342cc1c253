// Package roadmap is the three-step roadmap wizard: goal, details,
// review. Submitting calls the backend and shows the generated roadmap
// in place.
package roadmap

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"mentora/internal/api"
	"mentora/internal/flow"
	"mentora/internal/screen"
	"mentora/internal/store"
	"mentora/internal/ui/components"
	"mentora/internal/ui/layout"
)

const (
	stepGoal    = 1
	stepDetails = 2
	stepReview  = 3
)

// hoursClamp bounds the weekly hours field.
var hoursClamp = flow.IntClamp{Min: 1, Max: 40, Default: 5}

// submitDoneMsg reports the terminal GenerateRoadmap call.
type submitDoneMsg struct {
	tok     flow.Token
	roadmap *api.Roadmap
	err     error
}

// Screen is the roadmap wizard.
type Screen struct {
	sess    *flow.Session
	backend api.Backend
	events  store.EventRepo
	logger  *zap.Logger

	goal     components.TextInput
	level    components.Picker
	hours    components.TextInput
	focusRow int // details step: 0 = level, 1 = hours
}

var _ screen.Screen = (*Screen)(nil)

// definition builds the wizard definition against the backend.
func definition(backend api.Backend) flow.Definition {
	return flow.Definition{
		Name: "roadmap",
		Steps: []flow.Step{
			{
				Name: "Goal",
				Precondition: func(f *flow.Form) bool {
					return f.Get("goal") != ""
				},
			},
			{Name: "Details"},
			{Name: "Review"},
		},
		Submit: func(ctx context.Context, f *flow.Form) (any, error) {
			return backend.GenerateRoadmap(ctx, requestFrom(f))
		},
		Defaults: func(f *flow.Form) {
			f.Set("level", string(api.LevelBeginner))
			f.SetInt("hours", hoursClamp.Default)
		},
	}
}

// requestFrom maps the collected form to the API request.
func requestFrom(f *flow.Form) api.RoadmapRequest {
	return api.RoadmapRequest{
		Goal:         f.Get("goal"),
		Level:        api.ExperienceLevel(f.Get("level")),
		HoursPerWeek: f.Int("hours", hoursClamp.Default),
	}
}

// New creates the roadmap wizard screen.
func New(backend api.Backend, events store.EventRepo, clock flow.Clock, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := flow.NewSession(context.Background(), definition(backend), clock)

	levels := make([]string, len(api.Levels))
	for i, l := range api.Levels {
		levels[i] = string(l)
	}

	s := &Screen{
		sess:    sess,
		backend: backend,
		events:  events,
		logger:  logger,
		goal:    components.NewTextInput("e.g. become a backend Go developer", false, 120),
		level:   components.NewPicker(levels),
		hours:   components.NewTextInput(fmt.Sprintf("%d", hoursClamp.Default), true, 2),
	}
	s.logEvent("start", nil)
	return s
}

// Close tears down the wizard session when the screen is popped.
func (s *Screen) Close() {
	s.sess.Close()
}

func (s *Screen) Init() tea.Cmd {
	return s.goal.Init()
}

func (s *Screen) Title() string {
	return "New Roadmap"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(submitDoneMsg); ok {
		s.sess.ResolveSubmit(done.tok, done.roadmap, done.err)
		if done.err != nil {
			s.logEvent("fail", done.err)
		} else {
			s.logEvent("succeed", nil)
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateInputs(msg)
	}

	if s.sess.State().Phase() == flow.PhaseSucceeded {
		if kmsg.String() == "r" {
			s.sess.Restart()
			s.goal = components.NewTextInput("e.g. become a backend Go developer", false, 120)
			s.logEvent("restart", nil)
			return s, s.goal.Init()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.onEnter()
	case "shift+tab":
		if s.sess.Retreat() {
			s.logEvent("retreat", nil)
			if s.sess.CurrentStep() == stepDetails {
				s.syncDetailFocus()
			}
		}
		return s, nil
	case "tab":
		if s.sess.CurrentStep() == stepDetails {
			s.focusRow = 1 - s.focusRow
			s.syncDetailFocus()
		}
		return s, nil
	}

	return s, s.updateInputs(msg)
}

// onEnter advances a step or launches the submit from the review step.
func (s *Screen) onEnter() tea.Cmd {
	switch s.sess.CurrentStep() {
	case stepGoal, stepDetails:
		if s.sess.Advance() {
			s.logEvent("advance", nil)
			if s.sess.CurrentStep() == stepDetails {
				s.focusRow = 0
				s.syncDetailFocus()
			}
		}
		return nil
	case stepReview:
		tok, ok := s.sess.BeginSubmit()
		if !ok {
			return nil
		}
		s.logEvent("submit", nil)
		ctx := s.sess.Context()
		req := requestFrom(s.sess.Form())
		return func() tea.Msg {
			roadmap, err := s.backend.GenerateRoadmap(ctx, req)
			return submitDoneMsg{tok: tok, roadmap: roadmap, err: err}
		}
	}
	return nil
}

// updateInputs routes non-navigation input to the active step's widgets
// and mirrors their values into the session form.
func (s *Screen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.sess.CurrentStep() {
	case stepGoal:
		s.goal, cmd = s.goal.Update(msg)
		s.sess.SetValue("goal", s.goal.Value())
	case stepDetails:
		if s.focusRow == 0 {
			s.level, cmd = s.level.Update(msg)
			s.sess.SetValue("level", s.level.Value())
		} else {
			s.hours, cmd = s.hours.Update(msg)
			s.sess.SetClamped("hours", s.hours.Value(), hoursClamp)
		}
	}
	return cmd
}

func (s *Screen) syncDetailFocus() {
	s.level.Focused = s.focusRow == 0
	if s.focusRow == 1 {
		s.hours.Model.Focus()
	} else {
		s.hours.Model.Blur()
	}
}

// logEvent appends a flow event; logging failures are not user-facing.
func (s *Screen) logEvent(action string, cause error) {
	if s.events == nil {
		return
	}
	data := store.FlowEventData{
		FlowID: s.sess.ID(),
		Flow:   s.sess.Name(),
		Action: action,
		Step:   s.sess.CurrentStep(),
	}
	if cause != nil {
		data.Detail = cause.Error()
	}
	if action == "succeed" || action == "fail" {
		data.DurationSecs = int(s.sess.Elapsed().Seconds())
	}
	if err := s.events.AppendFlowEvent(context.Background(), data); err != nil {
		s.logger.Warn("append flow event", zap.Error(err))
	}
}

// KeyHints provides the footer hints for the active step.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.sess.State().Phase() == flow.PhaseSucceeded {
		return []layout.KeyHint{
			{Key: "R", Description: "New roadmap"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.sess.CurrentStep() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
	}
	if s.sess.CurrentStep() == stepDetails {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next field"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	return hints
}
