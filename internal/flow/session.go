package flow

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Token pairs a Begin* transition with its Resolve*. A resolution whose
// token no longer matches the session's current in-flight call (because
// the session was restarted or another call superseded it) is dropped,
// so a stale remote response can never corrupt state.
type Token uint64

// Session drives a user through a wizard Definition: a linear, numbered
// step sequence collecting form input, ending in one terminal remote
// call. Sessions are ephemeral and single-threaded: all transitions run
// on the UI goroutine, and remote calls report back through
// ResolveLookup/ResolveSubmit.
type Session struct {
	def   Definition
	form  *Form
	state State
	clock Clock

	id        string
	startedAt time.Time

	// epoch invalidates outstanding tokens on restart; token is the
	// currently live in-flight call, if any.
	epoch   Token
	pending Token

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession creates a session positioned on step 1 with defaulted form
// values. The session derives its context from parent; Close cancels it,
// which aborts any in-flight remote call.
func NewSession(parent context.Context, def Definition, clock Clock) *Session {
	if len(def.Steps) == 0 {
		panic("flow: definition has no steps")
	}
	if clock == nil {
		clock = SystemClock()
	}
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		def:    def,
		form:   NewForm(),
		clock:  clock,
		id:     uuid.New().String(),
		ctx:    ctx,
		cancel: cancel,
	}
	s.reset()
	return s
}

// ID returns the session UUID, used to correlate logged events.
func (s *Session) ID() string { return s.id }

// Name returns the flow name from the definition.
func (s *Session) Name() string { return s.def.Name }

// Context returns the session context. Remote calls issued on behalf of
// this session must use it so teardown aborts them.
func (s *Session) Context() context.Context { return s.ctx }

// Close tears the session down, cancelling any in-flight call.
func (s *Session) Close() { s.cancel() }

// State returns the current tagged state.
func (s *Session) State() State { return s.state }

// Form returns the accumulated form. Mutate it only through SetValue and
// SetClamped so error clearing stays consistent.
func (s *Session) Form() *Form { return s.form }

// StartedAt returns when the session was created or last restarted.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// StepCount returns N, the number of data-entry steps.
func (s *Session) StepCount() int { return s.def.lastStep() }

// CurrentStep returns the 1-indexed step the user is on.
func (s *Session) CurrentStep() int { return s.state.Step() }

// StepName returns the display name of the current step.
func (s *Session) StepName() string { return s.def.stepAt(s.state.Step()).Name }

// CanAdvance reports whether Advance (or BeginLookup) would be accepted:
// on a data-entry step before the last, with the precondition satisfied.
func (s *Session) CanAdvance() bool {
	if !s.onEntryStep() {
		return false
	}
	i := s.state.Step()
	return i < s.def.lastStep() && s.def.precondition(i, s.form)
}

// CanSubmit reports whether BeginSubmit would be accepted.
func (s *Session) CanSubmit() bool {
	if !s.onEntryStep() {
		return false
	}
	i := s.state.Step()
	return i == s.def.lastStep() && s.def.precondition(i, s.form)
}

// HasLookup reports whether the current step advances through a lookup.
func (s *Session) HasLookup() bool {
	return s.onEntryStep() && s.def.stepAt(s.state.Step()).Lookup != nil
}

// SetValue stores a text field and clears a pending failure, returning
// the session to plain data entry on the same step.
func (s *Session) SetValue(name, value string) {
	s.form.Set(name, value)
	s.clearFailure()
}

// SetClamped normalizes and stores a numeric field. Clamping happens on
// every edit. Like SetValue, it clears a pending failure.
func (s *Session) SetClamped(name, raw string, clamp IntClamp) int {
	n := s.form.SetClamped(name, raw, clamp)
	s.clearFailure()
	return n
}

// Advance moves from step i to i+1. It is a no-op (returning false) when
// the session is not on a data-entry step, the precondition fails, the
// step is the last, or the step requires a lookup.
func (s *Session) Advance() bool {
	if !s.CanAdvance() || s.HasLookup() {
		return false
	}
	s.state = stepState(s.state.Step() + 1)
	return true
}

// Retreat moves from step i to i-1. From step 1 it is a no-op. Form
// values are never cleared by retreating.
func (s *Session) Retreat() bool {
	if !s.onEntryStep() {
		return false
	}
	i := s.state.Step()
	if i <= 1 {
		return false
	}
	s.state = stepState(i - 1)
	return true
}

// BeginLookup starts the current step's lookup call, entering the
// in-flight state. The caller runs Lookup().Run on the session context
// and reports back through ResolveLookup with the returned token.
func (s *Session) BeginLookup() (Token, bool) {
	if !s.CanAdvance() || !s.HasLookup() {
		return 0, false
	}
	return s.begin(), true
}

// Lookup returns the current step's lookup definition, or nil.
func (s *Session) Lookup() *Lookup {
	if s.state.Step() < 1 || s.state.Step() > s.def.lastStep() {
		return nil
	}
	return s.def.stepAt(s.state.Step()).Lookup
}

// ResolveLookup completes a lookup started with BeginLookup. An empty
// result short-circuits to the lookup's SkipTo step; a non-empty result
// stores the items and advances one step; a failure returns to the
// originating step with the error attached. Stale tokens are ignored.
func (s *Session) ResolveLookup(tok Token, res LookupResult, err error) {
	if !s.settle(tok) {
		return
	}
	from := s.state.Step()
	lookup := s.def.stepAt(from).Lookup

	if err != nil {
		s.state = failedState(from, err)
		return
	}
	if res.Count == 0 {
		s.state = stepState(lookup.SkipTo)
		return
	}
	s.form.lookups[from] = res.Items
	s.state = stepState(from + 1)
}

// LookupItems returns the items stored by the given step's last
// non-empty lookup, or nil when that step has none.
func (s *Session) LookupItems(step int) any { return s.form.lookups[step] }

// BeginSubmit starts the terminal remote call from the final step. The
// caller runs Definition.Submit on the session context and reports back
// through ResolveSubmit.
func (s *Session) BeginSubmit() (Token, bool) {
	if !s.CanSubmit() {
		return 0, false
	}
	return s.begin(), true
}

// ResolveSubmit completes the terminal call: success reaches the
// Succeeded terminal state with the payload attached; failure returns to
// the final step with the error attached and the form intact. Stale
// tokens are ignored.
func (s *Session) ResolveSubmit(tok Token, payload any, err error) {
	if !s.settle(tok) {
		return
	}
	from := s.state.Step()
	if err != nil {
		s.state = failedState(from, err)
		return
	}
	s.state = succeededState(from, payload)
}

// Restart returns a terminal session to step 1, clearing all collected
// form data back to defaults. Outstanding remote calls become stale.
func (s *Session) Restart() {
	s.epoch++
	s.pending = 0
	s.reset()
}

// Elapsed returns time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.startedAt)
}

func (s *Session) reset() {
	s.form.reset()
	if s.def.Defaults != nil {
		s.def.Defaults(s.form)
	}
	s.state = stepState(1)
	s.startedAt = s.clock.Now()
}

// onEntryStep reports whether the user is on a data-entry step, with or
// without an attached failure.
func (s *Session) onEntryStep() bool {
	return s.state.Phase() == PhaseStep || s.state.Phase() == PhaseFailed
}

func (s *Session) clearFailure() {
	if s.state.Phase() == PhaseFailed {
		s.state = stepState(s.state.Step())
	}
}

// begin enters the in-flight state from the current step and mints the
// resolution token. At most one call is in flight: while pending is set,
// CanAdvance/CanSubmit are false, so a second begin cannot happen.
func (s *Session) begin() Token {
	s.epoch++
	s.pending = s.epoch
	s.state = submittingState(s.state.Step())
	return s.pending
}

// settle validates a resolution token, returning the session to the
// originating data-entry step if it is live. A false return means the
// resolution was stale and must be dropped.
func (s *Session) settle(tok Token) bool {
	if s.state.Phase() != PhaseSubmitting || tok == 0 || tok != s.pending {
		return false
	}
	s.pending = 0
	return true
}
