package flow

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// threeStepDef builds a wizard where step 1 requires a non-empty "goal".
func threeStepDef() Definition {
	return Definition{
		Name: "test",
		Steps: []Step{
			{Name: "goal", Precondition: func(f *Form) bool { return f.Get("goal") != "" }},
			{Name: "details"},
			{Name: "confirm"},
		},
		Submit: func(_ context.Context, _ *Form) (any, error) {
			return "payload", nil
		},
	}
}

func newTestSession(def Definition) *Session {
	return NewSession(context.Background(), def, newFakeClock())
}

func TestAdvance_PreconditionBlocks(t *testing.T) {
	s := newTestSession(threeStepDef())

	if s.Advance() {
		t.Error("expected Advance to be blocked with empty goal")
	}
	if s.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep())
	}

	s.SetValue("goal", "learn Go")
	if !s.Advance() {
		t.Error("expected Advance to succeed once goal is set")
	}
	if s.CurrentStep() != 2 {
		t.Errorf("CurrentStep = %d, want 2", s.CurrentStep())
	}
}

func TestAdvance_StopsAtLastStep(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.Advance()

	if s.CurrentStep() != 3 {
		t.Fatalf("CurrentStep = %d, want 3", s.CurrentStep())
	}
	if s.Advance() {
		t.Error("expected Advance from last step to be a no-op")
	}
	if s.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d, want 3 after blocked advance", s.CurrentStep())
	}
}

func TestRetreat_NoOpOnFirstStep(t *testing.T) {
	s := newTestSession(threeStepDef())

	if s.Retreat() {
		t.Error("expected Retreat from step 1 to be a no-op")
	}
	if s.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep())
	}
}

func TestRetreat_KeepsFormData(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.SetValue("notes", "evenings only")

	if !s.Retreat() {
		t.Fatal("expected Retreat to succeed")
	}
	if s.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep())
	}
	if got := s.Form().Get("goal"); got != "learn Go" {
		t.Errorf("goal = %q, want %q", got, "learn Go")
	}
	if got := s.Form().Get("notes"); got != "evenings only" {
		t.Errorf("notes = %q, want %q", got, "evenings only")
	}
}

func TestSubmit_Success(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.Advance()

	tok, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("expected BeginSubmit to be accepted on the last step")
	}
	if s.State().Phase() != PhaseSubmitting {
		t.Fatalf("phase = %v, want PhaseSubmitting", s.State().Phase())
	}
	// A second begin while one is in flight must be rejected.
	if _, ok := s.BeginSubmit(); ok {
		t.Error("expected second BeginSubmit to be rejected while in flight")
	}

	s.ResolveSubmit(tok, "course-42", nil)
	if s.State().Phase() != PhaseSucceeded {
		t.Fatalf("phase = %v, want PhaseSucceeded", s.State().Phase())
	}
	if got := s.State().Payload(); got != "course-42" {
		t.Errorf("payload = %v, want course-42", got)
	}
}

func TestSubmit_NotFromEarlierStep(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")

	if _, ok := s.BeginSubmit(); ok {
		t.Error("expected BeginSubmit to be rejected before the last step")
	}
}

func TestSubmit_FailureKeepsForm(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.Advance()

	tok, _ := s.BeginSubmit()
	s.ResolveSubmit(tok, nil, errors.New("backend exploded"))

	if s.State().Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", s.State().Phase())
	}
	if s.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d, want 3 (returned to pre-submit step)", s.CurrentStep())
	}
	if s.State().Err() == nil {
		t.Error("expected a non-nil error attached to the failed state")
	}
	if got := s.Form().Get("goal"); got != "learn Go" {
		t.Errorf("goal = %q, want %q (form must survive failure)", got, "learn Go")
	}
}

func TestSetValue_ClearsFailure(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.Advance()

	tok, _ := s.BeginSubmit()
	s.ResolveSubmit(tok, nil, errors.New("boom"))

	s.SetValue("goal", "learn Go deeply")
	if s.State().Phase() != PhaseStep {
		t.Errorf("phase = %v, want PhaseStep after input change", s.State().Phase())
	}
	if s.State().Err() != nil {
		t.Error("expected error to be cleared on input change")
	}
}

func TestRestart_ResetsToDefaults(t *testing.T) {
	def := threeStepDef()
	def.Defaults = func(f *Form) {
		f.SetInt("numModules", 5)
	}
	s := newTestSession(def)
	s.SetValue("goal", "learn Go")
	s.SetClamped("numModules", "9", IntClamp{Min: 1, Max: 10, Default: 5})
	s.Advance()
	s.Advance()
	tok, _ := s.BeginSubmit()
	s.ResolveSubmit(tok, "id-1", nil)

	s.Restart()

	if s.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep())
	}
	if got := s.Form().Get("goal"); got != "" {
		t.Errorf("goal = %q, want empty after restart", got)
	}
	if got := s.Form().Int("numModules", 0); got != 5 {
		t.Errorf("numModules = %d, want default 5 after restart", got)
	}
}

func TestResolveSubmit_StaleTokenIgnored(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.SetValue("goal", "learn Go")
	s.Advance()
	s.Advance()

	tok, _ := s.BeginSubmit()
	s.Restart()

	// The remote call from before the restart finally lands.
	s.ResolveSubmit(tok, "stale", nil)

	if s.State().Phase() != PhaseStep {
		t.Errorf("phase = %v, want PhaseStep (stale resolve dropped)", s.State().Phase())
	}
	if s.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep())
	}
}

func lookupDef(run func(ctx context.Context, f *Form) (LookupResult, error)) Definition {
	return Definition{
		Name: "course",
		Steps: []Step{
			{Name: "prompt", Precondition: func(f *Form) bool { return f.Get("prompt") != "" }},
			{Name: "similar-check", Lookup: &Lookup{Run: run, SkipTo: 4}},
			{Name: "similar-review"},
			{Name: "preview"},
			{Name: "generate"},
		},
		Submit: func(_ context.Context, _ *Form) (any, error) { return nil, nil },
	}
}

func TestLookup_EmptyResultShortCircuits(t *testing.T) {
	def := lookupDef(func(_ context.Context, _ *Form) (LookupResult, error) {
		return LookupResult{}, nil
	})
	s := newTestSession(def)
	s.SetValue("prompt", "rust for gophers")
	s.Advance()

	tok, ok := s.BeginLookup()
	if !ok {
		t.Fatal("expected BeginLookup to be accepted")
	}
	s.ResolveLookup(tok, LookupResult{Count: 0}, nil)

	if s.CurrentStep() != 4 {
		t.Errorf("CurrentStep = %d, want 4 (skipped past similar-review)", s.CurrentStep())
	}
}

func TestLookup_ResultsAdvanceOneStep(t *testing.T) {
	s := newTestSession(lookupDef(nil))
	s.SetValue("prompt", "rust for gophers")
	s.Advance()

	items := []string{"Existing course"}
	tok, _ := s.BeginLookup()
	s.ResolveLookup(tok, LookupResult{Items: items, Count: 1}, nil)

	if s.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d, want 3", s.CurrentStep())
	}
	got, ok := s.LookupItems(2).([]string)
	if !ok || len(got) != 1 {
		t.Errorf("LookupItems(2) = %#v, want the stored slice", s.LookupItems(2))
	}
}

func TestLookup_StepsKeepSeparateResults(t *testing.T) {
	def := Definition{
		Name: "course",
		Steps: []Step{
			{Name: "prompt", Precondition: func(f *Form) bool { return f.Get("prompt") != "" }},
			{Name: "similar-check", Lookup: &Lookup{SkipTo: 4}},
			{Name: "similar-review"},
			{Name: "preview", Lookup: &Lookup{SkipTo: 5}},
			{Name: "generate"},
		},
		Submit: func(_ context.Context, _ *Form) (any, error) { return nil, nil },
	}
	s := newTestSession(def)
	s.SetValue("prompt", "rust for gophers")
	s.Advance()

	matches := []string{"Existing course"}
	tok, _ := s.BeginLookup()
	s.ResolveLookup(tok, LookupResult{Items: matches, Count: 1}, nil)
	s.Advance()

	tok, _ = s.BeginLookup()
	s.ResolveLookup(tok, LookupResult{Items: "an outline", Count: 1}, nil)
	if s.CurrentStep() != 5 {
		t.Fatalf("CurrentStep = %d, want 5", s.CurrentStep())
	}

	s.Retreat()
	s.Retreat()
	if s.CurrentStep() != 3 {
		t.Fatalf("CurrentStep = %d, want 3", s.CurrentStep())
	}
	got, ok := s.LookupItems(2).([]string)
	if !ok || len(got) != 1 || got[0] != "Existing course" {
		t.Errorf("LookupItems(2) = %#v, want the similar-check matches intact", s.LookupItems(2))
	}
	if outline, _ := s.LookupItems(4).(string); outline != "an outline" {
		t.Errorf("LookupItems(4) = %#v, want the preview result", s.LookupItems(4))
	}
}

func TestLookup_FailureStaysOnStep(t *testing.T) {
	s := newTestSession(lookupDef(nil))
	s.SetValue("prompt", "rust for gophers")
	s.Advance()

	tok, _ := s.BeginLookup()
	s.ResolveLookup(tok, LookupResult{}, errors.New("lookup down"))

	if s.State().Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want PhaseFailed", s.State().Phase())
	}
	if s.CurrentStep() != 2 {
		t.Errorf("CurrentStep = %d, want 2", s.CurrentStep())
	}
	if got := s.Form().Get("prompt"); got != "rust for gophers" {
		t.Errorf("prompt = %q, want preserved", got)
	}
}

func TestLookupStep_PlainAdvanceRejected(t *testing.T) {
	s := newTestSession(lookupDef(nil))
	s.SetValue("prompt", "rust for gophers")
	s.Advance()

	if s.Advance() {
		t.Error("expected plain Advance to be rejected on a lookup step")
	}
}

func TestClose_CancelsSessionContext(t *testing.T) {
	s := newTestSession(threeStepDef())
	s.Close()

	select {
	case <-s.Context().Done():
	default:
		t.Error("expected session context to be cancelled after Close")
	}
}
