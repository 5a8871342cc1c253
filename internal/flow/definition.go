package flow

import "context"

// LookupResult carries the outcome of a step's side-effecting lookup.
// Items is the payload handed back to the next step (a typed slice in
// practice); Count is its length. A zero Count short-circuits the wizard.
type LookupResult struct {
	Items any
	Count int
}

// Lookup is an optional remote call bound to a step. Leaving the step
// forward runs it: an empty result skips ahead to SkipTo, a non-empty
// result stores the items and moves to the next step, and a failure keeps
// the session on the same step with the error attached.
type Lookup struct {
	// Run performs the lookup. It must honor ctx.
	Run func(ctx context.Context, form *Form) (LookupResult, error)

	// SkipTo is the 1-indexed step to jump to when the lookup comes back
	// empty. Required when Run is set.
	SkipTo int
}

// Step is one data-entry step of a wizard.
type Step struct {
	// Name identifies the step for display and event logging.
	Name string

	// Precondition gates Advance and, on the final step, BeginSubmit.
	// A nil precondition always passes. Failing it blocks the transition
	// silently (the UI disables the control); no error is surfaced.
	Precondition func(form *Form) bool

	// Lookup, when set, replaces the plain advance from this step.
	Lookup *Lookup
}

// Definition describes a complete wizard: an ordered step sequence and
// the single terminal submit action.
type Definition struct {
	// Name identifies the flow ("roadmap", "course") for event logging.
	Name string

	// Steps are the data-entry steps, in order. Must be non-empty.
	Steps []Step

	// Submit issues the terminal remote call with the collected form.
	// It must honor ctx.
	Submit func(ctx context.Context, form *Form) (any, error)

	// Defaults seeds the form on session creation and restart.
	Defaults func(form *Form)
}

// stepAt returns the step definition for a 1-indexed position.
func (d Definition) stepAt(i int) Step {
	return d.Steps[i-1]
}

// lastStep returns N, the index of the final step.
func (d Definition) lastStep() int {
	return len(d.Steps)
}

// precondition evaluates the gate for a 1-indexed step.
func (d Definition) precondition(i int, form *Form) bool {
	pre := d.stepAt(i).Precondition
	return pre == nil || pre(form)
}
