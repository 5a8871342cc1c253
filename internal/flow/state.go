package flow

// Phase discriminates the session state union.
type Phase int

const (
	PhaseStep       Phase = iota // collecting input on a data-entry step
	PhaseSubmitting              // exactly one remote call in flight
	PhaseSucceeded               // terminal, payload attached
	PhaseFailed                  // back on a data-entry step with an error attached
)

// State is the session state as a single tagged value. The step index is
// meaningful for PhaseStep, PhaseSubmitting and PhaseFailed; the payload
// only for PhaseSucceeded; the error only for PhaseFailed. Values are
// built through the constructors below so an illegal combination (say, a
// payload alongside an error) cannot be constructed.
type State struct {
	phase   Phase
	step    int
	payload any
	err     error
}

// Phase returns the discriminant.
func (s State) Phase() Phase { return s.phase }

// Step returns the 1-indexed step this state is anchored to. For
// PhaseSubmitting it is the step the call was issued from; for
// PhaseSucceeded it is the final step.
func (s State) Step() int { return s.step }

// Payload returns the submit response, valid only in PhaseSucceeded.
func (s State) Payload() any { return s.payload }

// Err returns the attached failure, valid only in PhaseFailed.
func (s State) Err() error { return s.err }

func stepState(i int) State {
	return State{phase: PhaseStep, step: i}
}

func submittingState(i int) State {
	return State{phase: PhaseSubmitting, step: i}
}

func succeededState(step int, payload any) State {
	return State{phase: PhaseSucceeded, step: step, payload: payload}
}

func failedState(step int, err error) State {
	return State{phase: PhaseFailed, step: step, err: err}
}
