// Package course is the five-step course wizard: prompt, similar-check,
// similar-review, preview, generate. The similar check short-circuits
// past the review step when nothing matches, and the preview step fetches
// an outline before full generation is committed.
package course

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
	stepPrompt   = 1
	stepSimilar  = 2
	stepReview   = 3
	stepPreview  = 4
	stepGenerate = 5
)

var (
	modulesClamp = flow.IntClamp{Min: 1, Max: 10, Default: 5}
	lessonsClamp = flow.IntClamp{Min: 1, Max: 8, Default: 4}
)

// lookupDoneMsg reports a step lookup (similar check or preview fetch).
type lookupDoneMsg struct {
	tok flow.Token
	res flow.LookupResult
	err error
}

// submitDoneMsg reports the terminal GenerateFull call.
type submitDoneMsg struct {
	tok    flow.Token
	course *api.Course
	err    error
}

// actionDoneMsg reports a post-generation publish or enroll.
type actionDoneMsg struct {
	action string
	err    error
}

// Screen is the course wizard.
type Screen struct {
	sess    *flow.Session
	backend api.Backend
	events  store.EventRepo
	logger  *zap.Logger

	prompt   components.TextInput
	level    components.Picker
	modules  components.TextInput
	lessons  components.TextInput
	focusRow int // prompt step: 0 prompt, 1 level, 2 modules, 3 lessons

	similarIdx int    // selection on the similar-review step
	notice     string // post-generation publish/enroll feedback
}

var _ screen.Screen = (*Screen)(nil)

func definition(backend api.Backend) flow.Definition {
	return flow.Definition{
		Name: "course",
		Steps: []flow.Step{
			{
				Name: "Prompt",
				Precondition: func(f *flow.Form) bool {
					return f.Get("prompt") != ""
				},
			},
			{
				Name: "Similar",
				Lookup: &flow.Lookup{
					Run: func(ctx context.Context, f *flow.Form) (flow.LookupResult, error) {
						matches, err := backend.CheckSimilar(ctx, f.Get("prompt"), api.ExperienceLevel(f.Get("level")))
						if err != nil {
							return flow.LookupResult{}, err
						}
						return flow.LookupResult{Items: matches, Count: len(matches)}, nil
					},
					SkipTo: stepPreview,
				},
			},
			{Name: "Review"},
			{
				Name: "Preview",
				Lookup: &flow.Lookup{
					Run: func(ctx context.Context, f *flow.Form) (flow.LookupResult, error) {
						preview, err := backend.GeneratePreview(ctx, previewRequestFrom(f))
						if err != nil {
							return flow.LookupResult{}, err
						}
						return flow.LookupResult{Items: preview, Count: 1}, nil
					},
					SkipTo: stepGenerate,
				},
			},
			{Name: "Generate"},
		},
		Submit: func(ctx context.Context, f *flow.Form) (any, error) {
			return backend.GenerateFull(ctx, generateRequestFrom(f))
		},
		Defaults: func(f *flow.Form) {
			f.Set("level", string(api.LevelBeginner))
			f.SetInt("modules", modulesClamp.Default)
			f.SetInt("lessons", lessonsClamp.Default)
		},
	}
}

func previewRequestFrom(f *flow.Form) api.PreviewRequest {
	return api.PreviewRequest{
		Prompt:     f.Get("prompt"),
		Level:      api.ExperienceLevel(f.Get("level")),
		NumModules: f.Int("modules", modulesClamp.Default),
	}
}

func generateRequestFrom(f *flow.Form) api.GenerateRequest {
	return api.GenerateRequest{
		Prompt:           f.Get("prompt"),
		Level:            api.ExperienceLevel(f.Get("level")),
		NumModules:       f.Int("modules", modulesClamp.Default),
		LessonsPerModule: f.Int("lessons", lessonsClamp.Default),
	}
}

// New creates the course wizard screen.
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
		prompt:  components.NewTextInput("e.g. practical SQL for analysts", false, 120),
		level:   components.NewPicker(levels),
		modules: components.NewTextInput("5", true, 2),
		lessons: components.NewTextInput("4", true, 1),
	}
	s.logEvent("start", "")
	return s
}

// Close tears down the wizard session when the screen is popped.
func (s *Screen) Close() {
	s.sess.Close()
}

func (s *Screen) Init() tea.Cmd {
	return s.prompt.Init()
}

func (s *Screen) Title() string {
	return "New Course"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		s.sess.ResolveLookup(msg.tok, msg.res, msg.err)
		s.similarIdx = 0
		s.logLookup(msg.res.Count, msg.err)
		return s, nil

	case submitDoneMsg:
		s.sess.ResolveSubmit(msg.tok, msg.course, msg.err)
		if msg.err != nil {
			s.logEvent("fail", msg.err.Error())
		} else {
			s.logEvent("succeed", "")
		}
		return s, nil

	case actionDoneMsg:
		if msg.err != nil {
			s.notice = api.Message(msg.err)
		} else {
			s.notice = "Course " + msg.action + "ed."
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.updateInputs(msg)
	}

	if s.sess.State().Phase() == flow.PhaseSucceeded {
		return s, s.onResultKey(kmsg.String())
	}

	switch kmsg.String() {
	case "enter":
		return s, s.onEnter()
	case "shift+tab":
		if s.sess.Retreat() {
			s.logEvent("retreat", "")
			s.syncFocus()
		}
		return s, nil
	case "tab":
		if s.sess.CurrentStep() == stepPrompt {
			s.focusRow = (s.focusRow + 1) % 4
			s.syncFocus()
		}
		return s, nil
	case "up", "k":
		if s.sess.CurrentStep() == stepReview && s.similarIdx > 0 {
			s.similarIdx--
			return s, nil
		}
	case "down", "j":
		if s.sess.CurrentStep() == stepReview && s.similarIdx < len(s.similarCourses())-1 {
			s.similarIdx++
			return s, nil
		}
	case "e":
		if s.sess.CurrentStep() == stepReview {
			return s, s.enrollExisting()
		}
	}

	return s, s.updateInputs(msg)
}

// onEnter moves the wizard forward from the current step.
func (s *Screen) onEnter() tea.Cmd {
	switch s.sess.CurrentStep() {
	case stepPrompt:
		if s.sess.Advance() {
			s.logEvent("advance", "")
		}
		return nil

	case stepSimilar, stepPreview:
		lookup := s.sess.Lookup()
		tok, ok := s.sess.BeginLookup()
		if !ok || lookup == nil {
			return nil
		}
		ctx := s.sess.Context()
		form := s.sess.Form()
		return func() tea.Msg {
			res, err := lookup.Run(ctx, form)
			return lookupDoneMsg{tok: tok, res: res, err: err}
		}

	case stepReview:
		if s.sess.Advance() {
			s.logEvent("advance", "")
		}
		return nil

	case stepGenerate:
		tok, ok := s.sess.BeginSubmit()
		if !ok {
			return nil
		}
		s.logEvent("submit", "")
		ctx := s.sess.Context()
		req := generateRequestFrom(s.sess.Form())
		return func() tea.Msg {
			course, err := s.backend.GenerateFull(ctx, req)
			return submitDoneMsg{tok: tok, course: course, err: err}
		}
	}
	return nil
}

// onResultKey handles the terminal state: publish, enroll or restart.
func (s *Screen) onResultKey(key string) tea.Cmd {
	course, _ := s.sess.State().Payload().(*api.Course)
	switch key {
	case "p":
		if course == nil {
			return nil
		}
		ctx := s.sess.Context()
		id := course.ID
		return func() tea.Msg {
			return actionDoneMsg{action: "publish", err: s.backend.Publish(ctx, id)}
		}
	case "e":
		if course == nil {
			return nil
		}
		ctx := s.sess.Context()
		id := course.ID
		return func() tea.Msg {
			return actionDoneMsg{action: "enroll", err: s.backend.Enroll(ctx, id)}
		}
	case "r":
		s.sess.Restart()
		s.notice = ""
		s.focusRow = 0
		s.prompt = components.NewTextInput("e.g. practical SQL for analysts", false, 120)
		s.modules = components.NewTextInput("5", true, 2)
		s.lessons = components.NewTextInput("4", true, 1)
		s.logEvent("restart", "")
		return s.prompt.Init()
	}
	return nil
}

// enrollExisting enrolls in the selected similar course instead of
// generating a new one.
func (s *Screen) enrollExisting() tea.Cmd {
	matches := s.similarCourses()
	if s.similarIdx >= len(matches) {
		return nil
	}
	ctx := s.sess.Context()
	id := matches[s.similarIdx].ID
	return func() tea.Msg {
		return actionDoneMsg{action: "enroll", err: s.backend.Enroll(ctx, id)}
	}
}

// similarCourses returns the stored lookup matches on the review step.
func (s *Screen) similarCourses() []api.SimilarCourse {
	matches, _ := s.sess.LookupItems(stepSimilar).([]api.SimilarCourse)
	return matches
}

func (s *Screen) updateInputs(msg tea.Msg) tea.Cmd {
	if s.sess.CurrentStep() != stepPrompt {
		return nil
	}
	var cmd tea.Cmd
	switch s.focusRow {
	case 0:
		s.prompt, cmd = s.prompt.Update(msg)
		s.sess.SetValue("prompt", s.prompt.Value())
	case 1:
		s.level, cmd = s.level.Update(msg)
		s.sess.SetValue("level", s.level.Value())
	case 2:
		s.modules, cmd = s.modules.Update(msg)
		s.sess.SetClamped("modules", s.modules.Value(), modulesClamp)
	case 3:
		s.lessons, cmd = s.lessons.Update(msg)
		s.sess.SetClamped("lessons", s.lessons.Value(), lessonsClamp)
	}
	return cmd
}

func (s *Screen) syncFocus() {
	onPrompt := s.sess.CurrentStep() == stepPrompt
	s.level.Focused = onPrompt && s.focusRow == 1
	if onPrompt && s.focusRow == 0 {
		s.prompt.Model.Focus()
	} else {
		s.prompt.Model.Blur()
	}
	if onPrompt && s.focusRow == 2 {
		s.modules.Model.Focus()
	} else {
		s.modules.Model.Blur()
	}
	if onPrompt && s.focusRow == 3 {
		s.lessons.Model.Focus()
	} else {
		s.lessons.Model.Blur()
	}
}

func (s *Screen) logLookup(count int, cause error) {
	if cause != nil {
		s.logEvent("fail", cause.Error())
		return
	}
	s.logEvent("lookup", fmt.Sprintf("%d matches", count))
}

func (s *Screen) logEvent(action, detail string) {
	if s.events == nil {
		return
	}
	data := store.FlowEventData{
		FlowID: s.sess.ID(),
		Flow:   s.sess.Name(),
		Action: action,
		Step:   s.sess.CurrentStep(),
		Detail: detail,
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
			{Key: "P", Description: "Publish"},
			{Key: "E", Description: "Enroll"},
			{Key: "R", Description: "New course"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	switch s.sess.CurrentStep() {
	case stepPrompt:
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next field"})
	case stepReview:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "E", Description: "Enroll in selected"})
	}
	if s.sess.CurrentStep() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	return hints
}
